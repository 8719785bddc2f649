package parser

import "regexp"

// The parser is table-driven: each section owns an ordered list of field
// patterns, so a new POS vendor format means new rows here, not new control
// flow. All patterns are case-insensitive and anchored loosely around the
// label, with the value in the first capture group.

// reDateTime captures a date with an optional trailing time, in the loose
// shapes register printers actually emit (01/31/2024 10:45 PM, 2024-01-31 22:45).
const reDateTime = `(\d{1,4}[/\-]\d{1,2}[/\-]\d{2,4}(?:\s+\d{1,2}:\d{2}(?::\d{2})?\s*(?:am|pm)?)?)`

// reAmount captures a money value with optional thousands separators.
const reAmount = `\$?\s*(-?[\d,]+\.?\d*)`

type fieldPattern struct {
	field string
	re    *regexp.Regexp
}

func pat(field, expr string) fieldPattern {
	return fieldPattern{field: field, re: regexp.MustCompile(`(?i)` + expr)}
}

var storeMetadataPatterns = []fieldPattern{
	pat("registerId", `register\s*(?:#|no\.?|id)?\s*[:\s]\s*([A-Za-z0-9\-]+)`),
	pat("operatorId", `(?:operator|cashier|clerk)\s*(?:#|no\.?|id)?\s*[:\s]\s*([A-Za-z0-9\-]+)`),
	pat("tillId", `(?:till|drawer)\s*(?:#|no\.?|id)?\s*[:\s]\s*([A-Za-z0-9\-]+)`),
	pat("shiftStart", `shift\s*(?:start|open(?:ed)?)\s*[:\s]\s*`+reDateTime),
	pat("shiftEnd", `shift\s*(?:end|close[d]?)\s*[:\s]\s*`+reDateTime),
	pat("printedAt", `printed\s*(?:at|on)?\s*[:\s]\s*`+reDateTime),
	pat("reportDate", `(?:report|business)\s*date\s*[:\s]\s*`+reDateTime),
}

var balancesPatterns = []fieldPattern{
	pat("beginningBalance", `beg(?:in|inning)?\.?\s*(?:drawer\s*)?bal(?:ance)?\s*[:\s]\s*`+reAmount),
	pat("endingBalance", `end(?:ing)?\.?\s*(?:drawer\s*)?bal(?:ance)?\s*[:\s]\s*`+reAmount),
	pat("closingAccountability", `clos(?:e|ing)\s*account(?:ability)?\s*[:\s]\s*`+reAmount),
	pat("countedCash", `(?:counted\s*cash|cash\s*counted|actual\s*cash)\s*[:\s]\s*`+reAmount),
}

// Variance lines carry sign semantics in the label ("short" means negative) and
// often wrap the amount in parentheses, so they are matched separately.
var (
	reCashShort    = regexp.MustCompile(`(?i)cash\s*short(?:age)?\s*[:\s]\s*\(?\$?\s*(-?[\d,]+\.?\d*)\)?`)
	reCashOver     = regexp.MustCompile(`(?i)cash\s*over(?:age)?\s*[:\s]\s*\(?\$?\s*(-?[\d,]+\.?\d*)\)?`)
	reCashVariance = regexp.MustCompile(`(?i)(?:cash\s*)?variance\s*[:\s]\s*(\()?\$?\s*(-?[\d,]+\.?\d*)\)?`)
)

var salesSummaryPatterns = []fieldPattern{
	pat("grossSales", `gross\s*sales\s*[:\s]\s*`+reAmount),
	pat("netSales", `net\s*sales\s*[:\s]\s*`+reAmount),
	pat("refunds", `refunds?\s*[:\s]\s*`+reAmount),
	pat("discounts", `discounts?\s*[:\s]\s*`+reAmount),
	pat("tax", `(?:sales\s*)?tax(?:es)?\s*[:\s]\s*`+reAmount),
	pat("transactionCount", `(?:transaction|customer|cust)\s*(?:count|cnt)\s*[:\s]\s*(\d+)`),
}

var fuelPatterns = []fieldPattern{
	pat("fuelSales", `fuel\s*sales\s*[:\s]\s*`+reAmount),
	pat("fuelGross", `fuel\s*gross\s*[:\s]\s*`+reAmount),
	pat("gallons", `(?:total\s*)?gallons\s*(?:sold|pumped)?\s*[:\s]\s*([\d,]+\.?\d*)`),
}

var insideSalesPatterns = []fieldPattern{
	pat("insideSales", `inside\s*sales\s*[:\s]\s*`+reAmount),
	pat("merchandise", `merch(?:andise)?\s*(?:sales)?\s*[:\s]\s*`+reAmount),
	pat("prepayInitiated", `prepay\s*init(?:iated)?\s*[:\s]\s*`+reAmount),
	pat("prepayPumped", `prepay\s*pump(?:ed)?\s*[:\s]\s*`+reAmount),
}

// Tender lines come as "CASH   12   $345.67" or "CASH: $345.67"; count is
// optional and precedes the amount when present.
func tenderPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^\s*` + label + `\s*[:\s]\s*(?:(\d+)\s+)?\$?\s*(-?[\d,]+\.\d{2})\s*$`)
}

var (
	reTenderCash   = tenderPattern(`cash`)
	reTenderCredit = tenderPattern(`credit(?:\s*card)?`)
	reTenderDebit  = tenderPattern(`debit(?:\s*card)?`)
	reTenderCheck  = tenderPattern(`checks?`)
	reTenderEBT    = tenderPattern(`ebt(?:\s*food)?`)
	reTenderOther  = tenderPattern(`other(?:\s*tender)?`)
	reTenderTotal  = regexp.MustCompile(`(?i)(?:tender|payment)s?\s*total\s*[:\s]\s*` + reAmount)
)

// Safe activity lines: "SAFE DROPS 4 $1,200.00", "PAID OUT 2 $45.00".
func safePattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^\s*` + label + `\s*[:\s]\s*(?:(\d+)\s+)?\$?\s*(-?[\d,]+\.\d{2})\s*$`)
}

var (
	reSafeDrop = safePattern(`safe\s*drops?`)
	reSafeLoan = safePattern(`(?:safe\s*)?loans?`)
	rePaidIn   = safePattern(`paid\s*-?\s*ins?`)
	rePaidOut  = safePattern(`paid\s*-?\s*outs?`)
)

// Exceptions: count first, optional amount after.
var exceptionPatterns = []struct {
	typ string
	re  *regexp.Regexp
}{
	{"void", regexp.MustCompile(`(?i)voids?\s*[:\s]\s*(\d+)(?:\s+\$?\s*(-?[\d,]+\.?\d*))?`)},
	{"no_sale", regexp.MustCompile(`(?i)no\s*-?\s*sales?\s*[:\s]\s*(\d+)(?:\s+\$?\s*(-?[\d,]+\.?\d*))?`)},
	{"drive_off", regexp.MustCompile(`(?i)drive\s*-?\s*offs?\s*[:\s]\s*(\d+)(?:\s+\$?\s*(-?[\d,]+\.?\d*))?`)},
}

// Department block extraction.
var (
	reDeptHeader = regexp.MustCompile(`(?i)^.*dep(?:artmen)?t`)
	// name, optional quantity, amount; amount must have cents to avoid
	// swallowing bare counts.
	reDeptLine = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9&/.\- ]{1,30}?)\s+(?:(\d+(?:\.\d+)?)\s+)?\$?\s*(-?[\d,]+\.\d{2})\s*$`)
)

// deptStopWords excludes summary lines from being misread as departments.
var deptStopWords = []string{
	"total", "subtotal", "tax", "cash", "credit", "debit", "check",
	"tender", "change", "balance", "variance",
}
