// Package trendspot provides a CLI-based travel trend dashboard.
// Given a city name it retrieves recent web search results about
// travel and food hotspots, extracts frequency-ranked trend keywords
// from the result snippets, and renders them alongside the raw results
// and an optional streamed AI summary.
//
// This package contains domain types, interfaces, and pure text
// processing following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., duckduckgo/, gemini/, sqlite/).
package trendspot
