package quality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const goodReportText = `SHIFT REPORT
REGISTER: 3
CASHIER: 117
SHIFT START: 01/15/2024 6:00 AM
SHIFT END: 01/15/2024 2:00 PM

GROSS SALES: $1,245.67
NET SALES: $1,138.22
REFUNDS: $12.50
TAX: $95.95
TRANSACTION COUNT: 187

FUEL SALES: $780.45
GALLONS SOLD: 245.81
INSIDE SALES: $465.22
MERCHANDISE: $341.10

CASH: 45 $512.10
CREDIT: 98 $601.12
DEBIT: 30 $125.00
TENDER TOTAL: $1,238.22

BEGINNING BALANCE: $150.00
ENDING BALANCE: $137.50
CASH SHORT: $12.50

SAFE DROPS: 4 $1,200.00
PAID OUT: 2 $45.00
VOIDS: 3 $21.40
NO SALES: 5
`

func TestScoreEmptyText(t *testing.T) {
	res := Score("")

	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 0, res.TextLength)
	assert.Equal(t, 1.0, res.WeirdCharRatio)
	assert.Equal(t, UseVision, res.Recommendation)
}

func TestScoreCleanReportAcceptsDeterministic(t *testing.T) {
	res := Score(goodReportText)

	assert.GreaterOrEqual(t, res.Score, 70)
	assert.Equal(t, AcceptDeterministic, res.Recommendation)
	assert.GreaterOrEqual(t, res.MoneyPatternCount, 10)
	assert.GreaterOrEqual(t, res.KeywordHits, 10)
	assert.Less(t, res.WeirdCharRatio, 0.1)
}

func TestScoreMediumTextRecommendsTextTier(t *testing.T) {
	// ~150 chars, a few money patterns, a few keywords: lands in the middle band.
	text := "register shift summary for the morning crew\n" +
		"gross sales $120.00\n" +
		"tax $8.40\n" +
		"cash tendered $128.40\n" +
		strings.Repeat("x", 40)
	res := Score(text)

	assert.GreaterOrEqual(t, res.Score, 40)
	assert.Less(t, res.Score, 70)
	assert.Equal(t, NormalizeText, res.Recommendation)
}

func TestScoreGarbageRecommendsVision(t *testing.T) {
	res := Score(strings.Repeat("¤", 200))

	assert.Less(t, res.Score, 40)
	assert.Equal(t, UseVision, res.Recommendation)
	assert.Greater(t, res.WeirdCharRatio, 0.3)
}

func TestScoreIsDeterministic(t *testing.T) {
	a := Score(goodReportText)
	b := Score(goodReportText)
	assert.Equal(t, a, b)
}

func TestScoreNeverLeavesRange(t *testing.T) {
	inputs := []string{
		"",
		"a",
		strings.Repeat("$1.00 ", 500),
		strings.Repeat("\x01\x02", 300),
		goodReportText + goodReportText,
	}
	for _, in := range inputs {
		res := Score(in)
		assert.GreaterOrEqual(t, res.Score, 0)
		assert.LessOrEqual(t, res.Score, 100)
	}
}
