package repository

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/forecourt-labs/shiftscan/constants"
	"github.com/forecourt-labs/shiftscan/internal/extract"
)

// The create/replace/upgrade decision and the business-date derivation are
// pure functions so they can be tested without a database.

// ReceiptHash is the dedup key for a physical document: a sha256 hex digest of
// the raw recognized text.
func ReceiptHash(rawText string) string {
	sum := sha256.Sum256([]byte(rawText))
	return hex.EncodeToString(sum[:])
}

// DecideSave classifies a save against the stored row with the same receipt
// hash. A strictly higher confidence is a quality upgrade (a vision re-analysis
// superseding an earlier deterministic pass); same or lower is a plain
// duplicate replace. Rows are never duplicated for the same hash.
func DecideSave(exists bool, storedConfidence, incomingConfidence float32) (constants.SaveStatus, constants.UploadReason) {
	if !exists {
		return constants.SaveCreated, constants.ReasonInitial
	}
	if incomingConfidence > storedConfidence {
		return constants.SaveQualityUpgrade, constants.ReasonQualityUpgrade
	}
	return constants.SaveReplacedDuplicate, constants.ReasonDuplicateReplace
}

// dateLayouts covers the timestamp shapes register printers and the completion
// service emit. Tried in order; first hit wins.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 3:04 PM",
	"01/02/2006 3:04 pm",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006 3:04 PM",
	"1/2/2006 3:04 pm",
	"1/2/2006",
	"01-02-2006",
}

// DeriveReportDate attributes a report to a business date, preferring shift-end
// time (so overnight shifts land on the day they end), then printed-at, then
// the explicit report date, then "now". The result is date-only in UTC.
func DeriveReportDate(meta *extract.StoreMetadata, now time.Time) time.Time {
	if meta != nil {
		for _, candidate := range []string{meta.ShiftEnd, meta.PrintedAt, meta.ReportDate} {
			if t, ok := parseFlexibleTime(candidate); ok {
				return toDate(t)
			}
		}
	}
	return toDate(now)
}

func parseFlexibleTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func toDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
