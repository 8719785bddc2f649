// Package quality scores raw OCR text for usefulness before tier selection.
package quality

import (
	"regexp"
	"strings"

	"github.com/forecourt-labs/shiftscan/constants"
)

// Recommendation is the tier the scorer suggests for a given text.
type Recommendation string

const (
	AcceptDeterministic Recommendation = "accept_deterministic"
	NormalizeText       Recommendation = "normalize_text"
	UseVision           Recommendation = "use_vision"
)

// Result carries the 0-100 score plus the diagnostic counts behind it.
type Result struct {
	Score             int            `json:"score"`
	TextLength        int            `json:"textLength"`
	MoneyPatternCount int            `json:"moneyPatternCount"`
	KeywordHits       int            `json:"keywordHits"`
	WeirdCharRatio    float64        `json:"weirdCharRatio"`
	Recommendation    Recommendation `json:"recommendation"`
}

var reMoney = regexp.MustCompile(`\$\s?\d{1,3}(,\d{3})*(\.\d{1,2})?|\$\s?\d+(\.\d{1,2})?`)

// Score rates raw recognized text 0-100. Pure and deterministic: four signals
// (length, currency patterns, domain keywords, weird-character ratio) are summed
// and clamped, then mapped to a tier recommendation.
func Score(text string) Result {
	res := Result{
		TextLength:        len(text),
		MoneyPatternCount: len(reMoney.FindAllString(text, -1)),
		KeywordHits:       countKeywords(text),
		WeirdCharRatio:    weirdCharRatio(text),
	}

	score := lengthBonus(res.TextLength) +
		moneyBonus(res.MoneyPatternCount) +
		keywordBonus(res.KeywordHits) +
		weirdPenalty(res.WeirdCharRatio)

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	res.Score = score

	switch {
	case score >= constants.ScoreAcceptDeterministic:
		res.Recommendation = AcceptDeterministic
	case score >= constants.ScoreNormalizeText:
		res.Recommendation = NormalizeText
	default:
		res.Recommendation = UseVision
	}
	return res
}

func lengthBonus(n int) int {
	switch {
	case n > 500:
		return 25
	case n > 300:
		return 20
	case n > 200:
		return 15
	case n > 100:
		return 10
	case n > 50:
		return 5
	default:
		return 0
	}
}

func moneyBonus(n int) int {
	switch {
	case n >= 10:
		return 30
	case n >= 5:
		return 25
	case n >= 3:
		return 20
	case n >= 1:
		return 10
	default:
		return 0
	}
}

func keywordBonus(n int) int {
	switch {
	case n >= 10:
		return 30
	case n >= 7:
		return 25
	case n >= 5:
		return 20
	case n >= 3:
		return 15
	case n >= 1:
		return 5
	default:
		return 0
	}
}

func weirdPenalty(ratio float64) int {
	switch {
	case ratio > 0.3:
		return -15
	case ratio > 0.2:
		return -10
	case ratio > 0.1:
		return -5
	default:
		return 0
	}
}

func countKeywords(text string) int {
	lower := strings.ToLower(text)
	hits := 0
	for _, kw := range constants.ReportKeywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	return hits
}

// weirdCharRatio is the fraction of characters outside the allow-list of
// letters, digits, common punctuation, whitespace and currency symbols.
// Empty text counts as fully weird, which drives empty OCR to the vision tier.
func weirdCharRatio(text string) float64 {
	if len(text) == 0 {
		return 1.0
	}
	weird := 0
	total := 0
	for _, r := range text {
		total++
		if !allowedChar(r) {
			weird++
		}
	}
	return float64(weird) / float64(total)
}

func allowedChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ' ', r == '\t', r == '\n', r == '\r':
		return true
	}
	switch r {
	case '.', ',', ':', ';', '-', '+', '/', '\\', '(', ')', '[', ']', '#', '*', '%', '&', '@', '\'', '"', '!', '?', '=', '_', '|',
		'$', '£', '€':
		return true
	}
	return false
}
