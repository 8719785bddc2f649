package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTextUserPromptEmbedsSchemaAndText(t *testing.T) {
	p := BuildTextUserPrompt("GROSS SALES: $100.00")

	assert.Contains(t, p, "GROSS SALES: $100.00")
	assert.Contains(t, p, `"salesSummary"`)
	assert.Contains(t, p, "Return ONLY JSON")
}

func TestBuildTextUserPromptTruncatesLongText(t *testing.T) {
	long := strings.Repeat("A", maxPromptTextBytes+500)
	p := BuildTextUserPrompt(long)

	assert.Contains(t, p, "(truncated)")
	assert.NotContains(t, p, strings.Repeat("A", maxPromptTextBytes+1))
}

func TestBuildVisionPromptMentionsSignedVariance(t *testing.T) {
	p := BuildVisionPrompt()
	assert.Contains(t, p, "variance is signed")
	assert.Contains(t, p, `"cashVariance"`)
}
