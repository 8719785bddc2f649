package constants

// ReportKeywords is the fixed vocabulary used by the quality scorer to judge
// whether recognized text looks like a register shift report. Matching is
// case-insensitive containment, not tokenized.
var ReportKeywords = []string{
	"sales",
	"gross",
	"net",
	"cash",
	"credit",
	"debit",
	"check",
	"ebt",
	"tender",
	"total",
	"tax",
	"refund",
	"discount",
	"variance",
	"short",
	"over",
	"register",
	"till",
	"drawer",
	"shift",
	"cashier",
	"operator",
	"fuel",
	"gallons",
	"prepay",
	"merchandise",
	"inside",
	"safe drop",
	"paid out",
	"paid in",
	"loan",
	"void",
	"no sale",
	"drive off",
	"transaction",
}

// Quality score thresholds for tier selection.
const (
	ScoreAcceptDeterministic = 70
	ScoreNormalizeText       = 40
)

// Deterministic parser confidence constants.
const (
	// SectionConfidenceHigh is assigned when a section matched 3+ fields.
	SectionConfidenceHigh = 0.7
	// SectionConfidenceLow is assigned when a section matched exactly 2 fields.
	SectionConfidenceLow = 0.4
	// EmptyExtractConfidence is the floor when no section matched at all.
	EmptyExtractConfidence = 0.2
	// MinDeterministicConfidence is the parse-confidence floor below which a
	// high text-quality score is still not trusted (pipeline falls to AI tiers).
	MinDeterministicConfidence = 0.5
)

// MinTextLenForAIText is the minimum raw text length worth sending to the
// text-normalization completion tier; anything shorter goes straight to vision.
const MinTextLenForAIText = 100
