package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
		{"brace right after fence", "```{\"a\":1}\n```", `{"a":1}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripCodeFences(tc.in))
		})
	}
}

func TestSanitizeDropsUnknownAndNullKeys(t *testing.T) {
	raw := []byte(`{
		"salesSummary": {"grossSales": 100.0, "confidence": 0.8},
		"balances": null,
		"rawText": "should not be here",
		"extractionMethod": "ai_text",
		"totallyMadeUp": {"x": 1}
	}`)

	out, dropped, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Contains(t, m, "salesSummary")
	assert.NotContains(t, m, "balances")
	assert.NotContains(t, m, "rawText")
	assert.NotContains(t, m, "extractionMethod")
	assert.NotContains(t, m, "totallyMadeUp")
	assert.Len(t, dropped, 4)
}

func TestSanitizeClampsAndDefaultsConfidence(t *testing.T) {
	raw := []byte(`{
		"salesSummary": {"grossSales": 100.0, "confidence": 1.7},
		"fuel": {"fuelSales": 50.0, "confidence": -0.2},
		"balances": {"endingBalance": 10.0}
	}`)

	out, dropped, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	var m map[string]map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, 1.0, m["salesSummary"]["confidence"])
	assert.Equal(t, 0.0, m["fuel"]["confidence"])
	assert.Equal(t, 0.5, m["balances"]["confidence"])
	assert.Contains(t, dropped, "balances.confidence(defaulted)")
}

func TestSanitizeRejectsNonJSON(t *testing.T) {
	_, _, err := NormalizeAndSanitizeJSON([]byte("sorry, I cannot help with that"), nil)
	assert.Error(t, err)
}

func TestSanitizedOutputPassesSchema(t *testing.T) {
	raw := []byte(`{
		"salesSummary": {"grossSales": 1245.67, "netSales": 1138.22, "confidence": 0.9},
		"hallucinated": 42,
		"tenders": null
	}`)

	out, _, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(BuildShiftReportJSONSchema(), out))
}
