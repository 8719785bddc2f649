package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forecourt-labs/shiftscan/internal/extract"
)

const cleanReportText = `SHIFT REPORT
REGISTER: 3
CASHIER: 117
TILL: 2
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
`

// mediumText scores into the normalize_text band: long enough for the text
// tier, too noisy for the deterministic one.
const mediumText = `register shift summary for the morning crew
gross sales $120.00
tax $8.40
cash tendered $128.40
xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx`

const validCompletion = `{"salesSummary":{"grossSales":1245.67,"netSales":1138.22,"confidence":0.9},` +
	`"fuel":{"fuelSales":780.45,"confidence":0.85}}`

type fakeRecognizer struct {
	text string
	err  error
}

func (f *fakeRecognizer) Recognize(context.Context, []byte) (string, error) {
	return f.text, f.err
}

type fakeCompleter struct {
	textResp   string
	textErr    error
	visionResp string
	visionErr  error

	textCalls   int
	visionCalls int
}

func (f *fakeCompleter) CompleteText(context.Context, string, string) (string, error) {
	f.textCalls++
	return f.textResp, f.textErr
}

func (f *fakeCompleter) CompleteVision(context.Context, string, []byte, string) (string, error) {
	f.visionCalls++
	return f.visionResp, f.visionErr
}

func TestAnalyzeUnsupportedMimeType(t *testing.T) {
	a := NewAnalyzer(&fakeRecognizer{}, &fakeCompleter{}, nil)

	_, err := a.Analyze(context.Background(), []byte("x"), "text/plain")
	assert.Error(t, err)
}

func TestAnalyzeCleanTextStaysDeterministic(t *testing.T) {
	comp := &fakeCompleter{}
	a := NewAnalyzer(&fakeRecognizer{text: cleanReportText}, comp, nil)

	res, err := a.Analyze(context.Background(), []byte("img"), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, extract.MethodDeterministic, res.Method)
	assert.Equal(t, cleanReportText, res.Extract.RawText)
	require.NotNil(t, res.Extract.SalesSummary)
	assert.Equal(t, 1245.67, *res.Extract.SalesSummary.GrossSales)
	assert.Zero(t, comp.textCalls, "completion service must not be called")
	assert.Zero(t, comp.visionCalls)
}

func TestAnalyzeMediumTextUsesTextTier(t *testing.T) {
	comp := &fakeCompleter{textResp: validCompletion}
	a := NewAnalyzer(&fakeRecognizer{text: mediumText}, comp, nil)

	res, err := a.Analyze(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, extract.MethodAIText, res.Method)
	assert.Equal(t, 1, comp.textCalls)
	assert.Zero(t, comp.visionCalls)
	assert.Equal(t, mediumText, res.Extract.RawText)
	// stamped confidence is the mean of the returned sections, not the
	// completion's own claims
	assert.InDelta(t, (0.9+0.85)/2, float64(res.Extract.ExtractionConfidence), 1e-4)
}

func TestAnalyzeTextTierFailureFallsToVision(t *testing.T) {
	comp := &fakeCompleter{
		textErr:    errors.New("rate limited"),
		visionResp: validCompletion,
	}
	a := NewAnalyzer(&fakeRecognizer{text: mediumText}, comp, nil)

	res, err := a.Analyze(context.Background(), []byte("img"), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, extract.MethodAIVision, res.Method)
	assert.Equal(t, 1, comp.textCalls)
	assert.Equal(t, 1, comp.visionCalls)
}

func TestAnalyzeMalformedTextCompletionFallsToVision(t *testing.T) {
	comp := &fakeCompleter{
		textResp:   "I'm sorry, I can't produce JSON today",
		visionResp: validCompletion,
	}
	a := NewAnalyzer(&fakeRecognizer{text: mediumText}, comp, nil)

	res, err := a.Analyze(context.Background(), []byte("img"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, extract.MethodAIVision, res.Method)
}

func TestAnalyzePDFGoesStraightToVision(t *testing.T) {
	comp := &fakeCompleter{visionResp: "```json\n" + validCompletion + "\n```"}
	a := NewAnalyzer(&fakeRecognizer{text: "should never be used"}, comp, nil)

	res, err := a.Analyze(context.Background(), []byte("%PDF-1.7"), "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, extract.MethodAIVision, res.Method)
	assert.Zero(t, comp.textCalls)
	assert.Equal(t, 1, comp.visionCalls)
	assert.Equal(t, "", res.Extract.RawText)
}

func TestAnalyzeOCRFailureDegradesToVision(t *testing.T) {
	comp := &fakeCompleter{visionResp: validCompletion}
	a := NewAnalyzer(&fakeRecognizer{err: errors.New("tesseract exploded")}, comp, nil)

	res, err := a.Analyze(context.Background(), []byte("img"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, extract.MethodAIVision, res.Method)
}

func TestAnalyzeVisionFailureIsFatal(t *testing.T) {
	comp := &fakeCompleter{visionErr: errors.New("model unavailable")}
	a := NewAnalyzer(&fakeRecognizer{text: ""}, comp, nil)

	_, err := a.Analyze(context.Background(), []byte("img"), "image/jpeg")
	assert.Error(t, err)
}

func TestAnalyzeVisionMalformedResponseIsFatal(t *testing.T) {
	comp := &fakeCompleter{visionResp: `{"salesSummary":{"grossSales":"not a number","confidence":0.9}}`}
	a := NewAnalyzer(&fakeRecognizer{text: ""}, comp, nil)

	_, err := a.Analyze(context.Background(), []byte("img"), "image/jpeg")
	assert.Error(t, err)
}
