package trendspot

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultTopKeywords is the number of keywords returned when topN is not positive.
const DefaultTopKeywords = 10

// KeywordCount is a keyword and the number of times it occurs in the
// analyzed snippet text. Result sequences are ordered by descending
// frequency, ties broken by first occurrence in the token stream.
type KeywordCount struct {
	Keyword   string `json:"keyword"`
	Frequency int    `json:"frequency"`
}

// Stopwords is a set of tokens excluded from keyword counting regardless
// of their frequency.
type Stopwords map[string]struct{}

// Contains reports whether the token is a member of the set.
// A nil set contains nothing.
func (s Stopwords) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// defaultStopwordTerms are Korean travel-domain noise terms that dominate
// hotspot search snippets without carrying trend signal.
var defaultStopwordTerms = []string{
	"", " ", "여행", "추천", "맛집", "핫플", "핫플레이스",
	"정보", "블로그", "후기", "리뷰", "지도", "예약",
	"호텔", "숙소", "여기", "소개", "사진", "영상",
	"코스", "박일", "정말", "너무", "위치", "사람",
}

// DefaultStopwords returns the fixed stop-word set used for travel trend
// extraction. Callers may pass their own set to ExtractKeywords instead.
func DefaultStopwords() Stopwords {
	s := make(Stopwords, len(defaultStopwordTerms))
	for _, term := range defaultStopwordTerms {
		s[term] = struct{}{}
	}
	return s
}

// ExtractKeywords turns unstructured snippet text into a de-noised,
// frequency-ranked keyword list suitable for visualization.
//
// The subject (normalized) is treated as an additional stop word so the
// query term does not dominate its own trend list. Tokens of a single
// character, all-digit tokens, and stop words are dropped. The result is
// ordered by descending frequency; tied keywords keep the order in which
// they were first seen in the token stream. At most topN entries are
// returned (DefaultTopKeywords when topN is not positive).
//
// The function is pure and total: degenerate input yields an empty
// result, never an error.
//
// Known limitation: Hangul is compared by raw code-point sequence; no
// Unicode normalization of composed vs decomposed forms is performed.
// Scripts other than Hangul and ASCII are stripped entirely.
func ExtractKeywords(subject string, snippets []string, stopwords Stopwords, topN int) []KeywordCount {
	if topN <= 0 {
		topN = DefaultTopKeywords
	}

	blob := strings.Join(snippets, " ")
	tokens := strings.Fields(strings.ToLower(cleanText(blob)))

	subject = strings.ToLower(strings.TrimSpace(subject))

	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if utf8.RuneCountInString(token) <= 1 {
			continue
		}
		if allDigits(token) {
			continue
		}
		if stopwords.Contains(token) || token == subject {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	// order holds distinct tokens in first-seen order; a stable sort by
	// descending frequency preserves that order among ties.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}

	keywords := make([]KeywordCount, 0, len(order))
	for _, token := range order {
		keywords = append(keywords, KeywordCount{Keyword: token, Frequency: counts[token]})
	}
	return keywords
}

// cleanText replaces every rune that is not an ASCII letter, an ASCII
// digit, a Hangul syllable, or whitespace with a single space. Replacing
// (rather than deleting) keeps adjacent non-matching runs from merging
// into one token.
func cleanText(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '가' && r <= '힣': // Hangul syllables
			sb.WriteRune(r)
		case unicode.IsSpace(r):
			sb.WriteRune(r)
		default:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// allDigits reports whether s consists entirely of ASCII decimal digits.
// Mixed digit+Hangul tokens (e.g. "3박4일") are not all-digit and survive.
func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
