package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forecourt-labs/shiftscan/constants"
	"github.com/forecourt-labs/shiftscan/internal/extract"
)

func TestReceiptHashIsStableAndDistinct(t *testing.T) {
	a := ReceiptHash("GROSS SALES: $100.00")
	b := ReceiptHash("GROSS SALES: $100.00")
	c := ReceiptHash("GROSS SALES: $100.01")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestDecideSave(t *testing.T) {
	tests := []struct {
		name       string
		exists     bool
		stored     float32
		incoming   float32
		wantStatus constants.SaveStatus
		wantReason constants.UploadReason
	}{
		{"first upload", false, 0, 0.4, constants.SaveCreated, constants.ReasonInitial},
		{"same confidence replaces", true, 0.7, 0.7, constants.SaveReplacedDuplicate, constants.ReasonDuplicateReplace},
		{"lower confidence replaces", true, 0.7, 0.4, constants.SaveReplacedDuplicate, constants.ReasonDuplicateReplace},
		{"strictly higher upgrades", true, 0.4, 0.7, constants.SaveQualityUpgrade, constants.ReasonQualityUpgrade},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, reason := DecideSave(tc.exists, tc.stored, tc.incoming)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantReason, reason)
		})
	}
}

func TestDeriveReportDatePrefersShiftEnd(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	meta := &extract.StoreMetadata{
		ShiftEnd:   "01/16/2024 6:00 am",
		PrintedAt:  "01/17/2024 6:05 am",
		ReportDate: "01/18/2024",
	}

	got := DeriveReportDate(meta, now)
	assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), got)
}

func TestDeriveReportDateOvernightShiftLandsOnEndDay(t *testing.T) {
	// shift opened on the 15th, closed at 6am on the 16th
	meta := &extract.StoreMetadata{
		ShiftStart: "01/15/2024 10:00 pm",
		ShiftEnd:   "01/16/2024 6:00 am",
	}

	got := DeriveReportDate(meta, time.Now())
	assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), got)
}

func TestDeriveReportDateFallbackChain(t *testing.T) {
	now := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)

	t.Run("printedAt when shiftEnd missing", func(t *testing.T) {
		meta := &extract.StoreMetadata{PrintedAt: "2024-02-02 14:05"}
		assert.Equal(t, time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), DeriveReportDate(meta, now))
	})

	t.Run("reportDate when only it is set", func(t *testing.T) {
		meta := &extract.StoreMetadata{ReportDate: "2024-02-03"}
		assert.Equal(t, time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC), DeriveReportDate(meta, now))
	})

	t.Run("now when metadata is nil", func(t *testing.T) {
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), DeriveReportDate(nil, now))
	})

	t.Run("now when timestamps unparseable", func(t *testing.T) {
		meta := &extract.StoreMetadata{ShiftEnd: "sometime yesterday"}
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), DeriveReportDate(meta, now))
	})
}

func TestDeriveReportDateParsesRegisterFormats(t *testing.T) {
	cases := map[string]time.Time{
		"2024-01-31T22:45:00Z":  time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		"2024-01-31 22:45:10":   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		"01/31/2024 10:45 PM":   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		"1/2/2024 3:04 pm":      time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		"01/31/2024":            time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		"  2024-01-31 22:45  ":  time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		meta := &extract.StoreMetadata{ShiftEnd: in}
		got := DeriveReportDate(meta, time.Now())
		require.Equal(t, want, got, "input %q", in)
	}
}
