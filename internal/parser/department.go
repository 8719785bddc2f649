package parser

import (
	"strings"

	"github.com/forecourt-labs/shiftscan/internal/extract"
)

// deptLineConfidence is the fixed per-line confidence for deterministically
// extracted department rows.
const deptLineConfidence = 0.6

// maxDeptLines caps how far past the header the block scan runs.
const maxDeptLines = 40

// parseDepartmentSales heuristically locates a "department" sub-block (first
// line whose text mentions departments) and reads generic name/quantity/amount
// lines from it until the block ends. Summary lines (totals, tax, tenders) are
// excluded via a stop-list so they are not misread as departments.
func parseDepartmentSales(text string) []extract.LineItem {
	lines := strings.Split(text, "\n")
	start := -1
	for i, ln := range lines {
		if reDeptHeader.MatchString(strings.TrimSpace(ln)) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var out []extract.LineItem
	blanks := 0
	for i := start; i < len(lines) && i < start+maxDeptLines; i++ {
		ln := strings.TrimRight(lines[i], " ")
		if strings.TrimSpace(ln) == "" {
			// a single blank inside the block is tolerated; two ends it
			blanks++
			if blanks > 1 {
				break
			}
			continue
		}
		blanks = 0

		g := reDeptLine.FindStringSubmatch(ln)
		if g == nil {
			continue
		}
		name := strings.TrimSpace(g[1])
		if name == "" || isDeptStopWord(name) {
			continue
		}
		amount := parseMoney(g[3])
		if amount == nil {
			continue
		}
		out = append(out, extract.LineItem{
			Name:       name,
			Quantity:   moneyPtr(g[2]),
			Amount:     *amount,
			Confidence: deptLineConfidence,
		})
	}
	return out
}

func isDeptStopWord(name string) bool {
	lower := strings.ToLower(name)
	for _, sw := range deptStopWords {
		if strings.Contains(lower, sw) {
			return true
		}
	}
	return false
}
