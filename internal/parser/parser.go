// Package parser is the deterministic, regex-driven extraction tier.
// It is pure: Parse never fails, never does I/O, and simply omits any
// section it cannot ground in at least two matched fields.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/forecourt-labs/shiftscan/constants"
	"github.com/forecourt-labs/shiftscan/internal/extract"
)

// Parse runs every section's pattern table over the raw text and assembles a
// ShiftReport with ExtractionMethod = deterministic. A section is emitted only
// when at least two of its fields matched; single-field matches are treated as
// noise. Per-section confidence is a fixed heuristic, not a matched-field ratio.
func Parse(text string) *extract.ShiftReport {
	rep := &extract.ShiftReport{
		StoreMetadata:   parseStoreMetadata(text),
		Balances:        parseBalances(text),
		SalesSummary:    parseSalesSummary(text),
		Fuel:            parseFuel(text),
		InsideSales:     parseInsideSales(text),
		Tenders:         parseTenders(text),
		SafeActivity:    parseSafeActivity(text),
		DepartmentSales: parseDepartmentSales(text),
		Exceptions:      parseExceptions(text),
	}
	rep.Stamp(text, extract.MethodDeterministic)
	return rep
}

func parseStoreMetadata(text string) *extract.StoreMetadata {
	m := matchFields(storeMetadataPatterns, text)
	if len(m) < 2 {
		return nil
	}
	return &extract.StoreMetadata{
		RegisterID: m["registerId"],
		OperatorID: m["operatorId"],
		TillID:     m["tillId"],
		ShiftStart: m["shiftStart"],
		ShiftEnd:   m["shiftEnd"],
		PrintedAt:  m["printedAt"],
		ReportDate: m["reportDate"],
		Confidence: sectionConfidence(len(m)),
	}
}

func parseBalances(text string) *extract.Balances {
	m := matchFields(balancesPatterns, text)
	variance, varianceOK := parseCashVariance(text)

	matched := len(m)
	if varianceOK {
		matched++
	}
	if matched < 2 {
		return nil
	}
	b := &extract.Balances{
		BeginningBalance:      moneyPtr(m["beginningBalance"]),
		EndingBalance:         moneyPtr(m["endingBalance"]),
		ClosingAccountability: moneyPtr(m["closingAccountability"]),
		CountedCash:           moneyPtr(m["countedCash"]),
		Confidence:            sectionConfidence(matched),
	}
	if varianceOK {
		b.CashVariance = &variance
	}
	return b
}

// parseCashVariance resolves the signed drawer variance: "short" lines are
// negative, "over" lines positive, and a bare "variance" line is negative when
// parenthesized (accounting convention).
func parseCashVariance(text string) (float64, bool) {
	if g := reCashShort.FindStringSubmatch(text); g != nil {
		if v := parseMoney(g[1]); v != nil {
			if *v > 0 {
				return -*v, true
			}
			return *v, true
		}
	}
	if g := reCashOver.FindStringSubmatch(text); g != nil {
		if v := parseMoney(g[1]); v != nil {
			return *v, true
		}
	}
	if g := reCashVariance.FindStringSubmatch(text); g != nil {
		if v := parseMoney(g[2]); v != nil {
			if g[1] == "(" && *v > 0 {
				return -*v, true
			}
			return *v, true
		}
	}
	return 0, false
}

func parseSalesSummary(text string) *extract.SalesSummary {
	m := matchFields(salesSummaryPatterns, text)
	if len(m) < 2 {
		return nil
	}
	return &extract.SalesSummary{
		GrossSales:       moneyPtr(m["grossSales"]),
		NetSales:         moneyPtr(m["netSales"]),
		Refunds:          moneyPtr(m["refunds"]),
		Discounts:        moneyPtr(m["discounts"]),
		Tax:              moneyPtr(m["tax"]),
		TransactionCount: intPtr(m["transactionCount"]),
		Confidence:       sectionConfidence(len(m)),
	}
}

func parseFuel(text string) *extract.Fuel {
	m := matchFields(fuelPatterns, text)
	if len(m) < 2 {
		return nil
	}
	return &extract.Fuel{
		FuelSales:  moneyPtr(m["fuelSales"]),
		FuelGross:  moneyPtr(m["fuelGross"]),
		Gallons:    moneyPtr(m["gallons"]),
		Confidence: sectionConfidence(len(m)),
	}
}

func parseInsideSales(text string) *extract.InsideSales {
	m := matchFields(insideSalesPatterns, text)
	if len(m) < 2 {
		return nil
	}
	return &extract.InsideSales{
		InsideSales:     moneyPtr(m["insideSales"]),
		Merchandise:     moneyPtr(m["merchandise"]),
		PrepayInitiated: moneyPtr(m["prepayInitiated"]),
		PrepayPumped:    moneyPtr(m["prepayPumped"]),
		Confidence:      sectionConfidence(len(m)),
	}
}

func parseTenders(text string) *extract.Tenders {
	matched := 0
	line := func(re *regexp.Regexp) *extract.TenderLine {
		g := re.FindStringSubmatch(text)
		if g == nil {
			return nil
		}
		matched++
		return &extract.TenderLine{
			Count:  intPtr(g[1]),
			Amount: parseMoney(g[2]),
		}
	}

	t := &extract.Tenders{
		Cash:   line(reTenderCash),
		Credit: line(reTenderCredit),
		Debit:  line(reTenderDebit),
		Check:  line(reTenderCheck),
		EBT:    line(reTenderEBT),
		Other:  line(reTenderOther),
	}
	if g := reTenderTotal.FindStringSubmatch(text); g != nil {
		t.Total = parseMoney(g[1])
		matched++
	}
	if matched < 2 {
		return nil
	}
	t.Confidence = sectionConfidence(matched)
	return t
}

func parseSafeActivity(text string) *extract.SafeActivity {
	matched := 0
	grab := func(re *regexp.Regexp) (*int, *float64) {
		g := re.FindStringSubmatch(text)
		if g == nil {
			return nil, nil
		}
		matched++
		return intPtr(g[1]), parseMoney(g[2])
	}

	s := &extract.SafeActivity{}
	s.DropCount, s.DropAmount = grab(reSafeDrop)
	s.LoanCount, s.LoanAmount = grab(reSafeLoan)
	s.PaidInCount, s.PaidInAmount = grab(rePaidIn)
	s.PaidOutCount, s.PaidOutAmount = grab(rePaidOut)
	if matched < 2 {
		return nil
	}
	s.Confidence = sectionConfidence(matched)
	return s
}

func parseExceptions(text string) []extract.Exception {
	var out []extract.Exception
	for _, ep := range exceptionPatterns {
		g := ep.re.FindStringSubmatch(text)
		if g == nil {
			continue
		}
		count, err := strconv.Atoi(g[1])
		if err != nil {
			continue
		}
		out = append(out, extract.Exception{
			Type:   ep.typ,
			Count:  count,
			Amount: parseMoney(g[2]),
		})
	}
	return out
}

// matchFields runs a section's pattern table and returns field -> first capture.
func matchFields(patterns []fieldPattern, text string) map[string]string {
	m := make(map[string]string, len(patterns))
	for _, p := range patterns {
		if g := p.re.FindStringSubmatch(text); g != nil {
			v := strings.TrimSpace(g[1])
			if v != "" {
				m[p.field] = v
			}
		}
	}
	return m
}

func sectionConfidence(matched int) float32 {
	if matched >= 3 {
		return constants.SectionConfidenceHigh
	}
	return constants.SectionConfidenceLow
}

func parseMoney(s string) *float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func moneyPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	return parseMoney(s)
}

func intPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
