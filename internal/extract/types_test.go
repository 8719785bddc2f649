package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverallConfidenceIsMeanOfPresentSections(t *testing.T) {
	rep := &ShiftReport{
		StoreMetadata: &StoreMetadata{Confidence: 0.7},
		SalesSummary:  &SalesSummary{Confidence: 0.4},
		Tenders:       &Tenders{Confidence: 0.7},
	}

	assert.InDelta(t, (0.7+0.4+0.7)/3, rep.OverallConfidence(), 1e-6)
}

func TestOverallConfidenceFloorWhenEmpty(t *testing.T) {
	rep := &ShiftReport{}
	assert.InDelta(t, 0.2, rep.OverallConfidence(), 1e-6)
}

func TestLineArraysDoNotAffectOverallConfidence(t *testing.T) {
	rep := &ShiftReport{
		SalesSummary: &SalesSummary{Confidence: 0.6},
		Fuel:         &Fuel{Confidence: 0.6},
		DepartmentSales: []LineItem{
			{Name: "GROCERY", Amount: 10, Confidence: 0.1},
		},
		Exceptions: []Exception{{Type: "void", Count: 1}},
	}

	assert.InDelta(t, 0.6, rep.OverallConfidence(), 1e-6)
}

func TestStampRecomputesConfidence(t *testing.T) {
	rep := &ShiftReport{
		Balances:             &Balances{Confidence: 0.7},
		ExtractionConfidence: 0.99, // whatever the completion claimed
	}
	rep.Stamp("raw text", MethodAIText)

	assert.Equal(t, "raw text", rep.RawText)
	assert.Equal(t, MethodAIText, rep.ExtractionMethod)
	assert.InDelta(t, 0.7, rep.ExtractionConfidence, 1e-6)
}

func TestSectionConfidencesOrderAndPresence(t *testing.T) {
	rep := &ShiftReport{
		Balances:     &Balances{Confidence: 0.4},
		SafeActivity: &SafeActivity{Confidence: 0.7},
	}

	assert.Equal(t, []float32{0.4, 0.7}, rep.SectionConfidences())
}
