package main

import (
	"context"
	"io"

	"github.com/fwojciec/trendspot"
	"github.com/fwojciec/trendspot/sqlite"
	"github.com/fwojciec/trendspot/trend"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	History    trendspot.SearchService
	Analyzer   *trend.Analyzer
	Summarizer trendspot.Summarizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Trends    TrendsCmd    `cmd:"" help:"Analyze trend keywords for one or more cities"`
	Summarize SummarizeCmd `cmd:"" help:"Stream an AI summary of travel trends for a city"`
	History   HistoryCmd   `cmd:"" help:"List stored search runs"`
	Clear     ClearCmd     `cmd:"" help:"Delete stored search runs for a city"`

	Debug bool `help:"Enable debug logging to stderr"`
}

// TrendsCmd is the "trends" subcommand.
type TrendsCmd struct {
	Cities      []string `arg:"" help:"City names to analyze"`
	Top         int      `short:"t" default:"10" help:"Number of keywords to display"`
	MaxResults  int      `short:"n" default:"15" help:"Maximum search results per city"`
	Width       int      `short:"w" default:"40" help:"Bar chart width in cells"`
	Results     bool     `short:"r" help:"Also show the raw search results"`
	NoFallback  bool     `help:"Fail instead of substituting placeholder data"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent city limit"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	City       string `arg:"" help:"City name"`
	MaxResults int    `short:"n" default:"15" help:"Maximum search results to summarize"`
	NoFallback bool   `help:"Fail instead of substituting placeholder data"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	City  string `arg:"" optional:"" help:"Filter by city name"`
	Limit int    `default:"20" help:"Maximum runs to list"`
	Full  bool   `help:"Show stored results for each run"`
}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	City  string `arg:"" help:"City name"`
	Force bool   `help:"Confirm deletion"`
}
