package llm

import (
	"encoding/json"
	"strings"
)

// maxPromptTextBytes caps how much OCR text is sent on the text tier.
const maxPromptTextBytes = 6000

// BuildSystemPrompt composes the fixed system message for the text tier.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a parser for gas-station and convenience-store register shift reports.",
		"Return ONLY JSON that matches the provided JSON Schema.",
		"Populate only the sections the report actually shows; omit everything else.",
		"Amounts are plain numbers without currency symbols or thousands separators.",
		"Cash variance is signed: positive means overage, negative means shortage; a parenthesized amount is negative.",
		"Dates and timestamps are ISO-8601 strings.",
		"Every populated section MUST include a 'confidence' between 0 and 1 reflecting how certain you are of that section.",
		"Never output null. If a field is not present, omit it.",
	}
	return strings.Join(parts, " ")
}

// BuildTextUserPrompt packages the raw OCR text for the normalization tier.
func BuildTextUserPrompt(rawText string) string {
	var b strings.Builder
	b.WriteString("The following text was recognized from a printed shift report. ")
	b.WriteString("It may contain OCR noise; reconstruct the structured record from it.\n\n")
	b.WriteString("Recognized text:\n")
	if len(rawText) > maxPromptTextBytes {
		b.WriteString(rawText[:maxPromptTextBytes])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(rawText)
	}
	b.WriteString("\n\nJSON Schema:\n")
	b.WriteString(mustJSON(BuildShiftReportJSONSchema()))
	b.WriteString("\n\nReturn ONLY JSON that matches the schema.")
	return b.String()
}

// BuildVisionPrompt is the single user-message text for the vision tier; the
// image itself is attached alongside as a base64 data URL.
func BuildVisionPrompt() string {
	var b strings.Builder
	b.WriteString("The attached image is a printed register shift report from a gas station ")
	b.WriteString("or convenience store. Read it and extract the structured record.\n\n")
	b.WriteString(BuildSystemPrompt())
	b.WriteString("\n\nJSON Schema:\n")
	b.WriteString(mustJSON(BuildShiftReportJSONSchema()))
	b.WriteString("\n\nReturn ONLY JSON that matches the schema.")
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
