package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forecourt-labs/shiftscan/internal/extract"
)

const sampleReport = `SHIFT REPORT
REGISTER: 3
CASHIER: 117
TILL: 2
SHIFT START: 01/15/2024 6:00 AM
SHIFT END: 01/15/2024 2:00 PM

GROSS SALES: $1,245.67
NET SALES: $1,138.22
REFUNDS: $12.50
TAX: $95.95
TRANSACTION COUNT: 187

FUEL SALES: $780.45
GALLONS SOLD: 245.81

INSIDE SALES: $465.22
MERCHANDISE: $341.10

DEPARTMENT SALES
GROCERY 34 120.50
TOBACCO 12 96.40
BEER 8 54.20
TOTAL 271.10

CASH: 45 $512.10
CREDIT: 98 $601.12
DEBIT: 30 $125.00
TENDER TOTAL: $1,238.22

BEGINNING BALANCE: $150.00
ENDING BALANCE: $137.50
CASH SHORT: $12.50

SAFE DROPS: 4 $1,200.00
PAID OUT: 2 $45.00

VOIDS: 3 $21.40
NO SALES: 5
`

func TestParseFullReport(t *testing.T) {
	rep := Parse(sampleReport)

	require.NotNil(t, rep.StoreMetadata)
	assert.Equal(t, "3", rep.StoreMetadata.RegisterID)
	assert.Equal(t, "117", rep.StoreMetadata.OperatorID)
	assert.Equal(t, "2", rep.StoreMetadata.TillID)
	assert.Equal(t, "01/15/2024 2:00 PM", rep.StoreMetadata.ShiftEnd)
	assert.InDelta(t, 0.7, rep.StoreMetadata.Confidence, 1e-6)

	require.NotNil(t, rep.SalesSummary)
	require.NotNil(t, rep.SalesSummary.GrossSales)
	assert.Equal(t, 1245.67, *rep.SalesSummary.GrossSales)
	require.NotNil(t, rep.SalesSummary.NetSales)
	assert.Equal(t, 1138.22, *rep.SalesSummary.NetSales)
	require.NotNil(t, rep.SalesSummary.TransactionCount)
	assert.Equal(t, 187, *rep.SalesSummary.TransactionCount)
	assert.InDelta(t, 0.7, rep.SalesSummary.Confidence, 1e-6)

	require.NotNil(t, rep.Balances)
	require.NotNil(t, rep.Balances.CashVariance)
	assert.Equal(t, -12.50, *rep.Balances.CashVariance)

	require.NotNil(t, rep.Fuel)
	require.NotNil(t, rep.Fuel.Gallons)
	assert.Equal(t, 245.81, *rep.Fuel.Gallons)
	assert.InDelta(t, 0.4, rep.Fuel.Confidence, 1e-6)

	require.NotNil(t, rep.Tenders)
	require.NotNil(t, rep.Tenders.Cash)
	require.NotNil(t, rep.Tenders.Cash.Count)
	assert.Equal(t, 45, *rep.Tenders.Cash.Count)
	require.NotNil(t, rep.Tenders.Cash.Amount)
	assert.Equal(t, 512.10, *rep.Tenders.Cash.Amount)
	require.NotNil(t, rep.Tenders.Total)
	assert.Equal(t, 1238.22, *rep.Tenders.Total)

	require.NotNil(t, rep.SafeActivity)
	require.NotNil(t, rep.SafeActivity.DropCount)
	assert.Equal(t, 4, *rep.SafeActivity.DropCount)
	require.NotNil(t, rep.SafeActivity.DropAmount)
	assert.Equal(t, 1200.00, *rep.SafeActivity.DropAmount)

	assert.Equal(t, extract.MethodDeterministic, rep.ExtractionMethod)
	assert.Equal(t, sampleReport, rep.RawText)
	assert.Greater(t, rep.ExtractionConfidence, float32(0.5))
}

func TestParseDepartmentBlock(t *testing.T) {
	rep := Parse(sampleReport)

	require.Len(t, rep.DepartmentSales, 3)
	assert.Equal(t, "GROCERY", rep.DepartmentSales[0].Name)
	require.NotNil(t, rep.DepartmentSales[0].Quantity)
	assert.Equal(t, 34.0, *rep.DepartmentSales[0].Quantity)
	assert.Equal(t, 120.50, rep.DepartmentSales[0].Amount)
	assert.InDelta(t, 0.6, rep.DepartmentSales[0].Confidence, 1e-6)

	// the TOTAL summary line must not be read as a department
	for _, d := range rep.DepartmentSales {
		assert.NotEqual(t, "TOTAL", d.Name)
	}
}

func TestParseExceptions(t *testing.T) {
	rep := Parse(sampleReport)

	require.Len(t, rep.Exceptions, 2)
	assert.Equal(t, "void", rep.Exceptions[0].Type)
	assert.Equal(t, 3, rep.Exceptions[0].Count)
	require.NotNil(t, rep.Exceptions[0].Amount)
	assert.Equal(t, 21.40, *rep.Exceptions[0].Amount)

	assert.Equal(t, "no_sale", rep.Exceptions[1].Type)
	assert.Equal(t, 5, rep.Exceptions[1].Count)
	assert.Nil(t, rep.Exceptions[1].Amount)
}

func TestParseSingleFieldSectionIsDropped(t *testing.T) {
	rep := Parse("GROSS SALES: $10.00")

	assert.Nil(t, rep.SalesSummary)
	assert.Nil(t, rep.StoreMetadata)
	assert.Nil(t, rep.Balances)
	assert.InDelta(t, 0.2, rep.ExtractionConfidence, 1e-6)
}

func TestParseEmptyTextNeverFails(t *testing.T) {
	rep := Parse("")

	assert.Nil(t, rep.StoreMetadata)
	assert.Nil(t, rep.SalesSummary)
	assert.Empty(t, rep.DepartmentSales)
	assert.Empty(t, rep.Exceptions)
	assert.Equal(t, extract.MethodDeterministic, rep.ExtractionMethod)
	assert.InDelta(t, 0.2, rep.ExtractionConfidence, 1e-6)
}

func TestParseCashVarianceSigns(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "short is negative",
			text: "BEGINNING BALANCE: $100.00\nCASH SHORT: $7.25",
			want: -7.25,
		},
		{
			name: "over is positive",
			text: "BEGINNING BALANCE: $100.00\nCASH OVER: $3.10",
			want: 3.10,
		},
		{
			name: "parenthesized variance is negative",
			text: "ENDING BALANCE: $100.00\nVARIANCE: ($5.25)",
			want: -5.25,
		},
		{
			name: "bare variance keeps its sign",
			text: "ENDING BALANCE: $100.00\nVARIANCE: $2.00",
			want: 2.00,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rep := Parse(tc.text)
			require.NotNil(t, rep.Balances)
			require.NotNil(t, rep.Balances.CashVariance)
			assert.Equal(t, tc.want, *rep.Balances.CashVariance)
		})
	}
}

func TestParseTwoFieldSectionGetsLowConfidence(t *testing.T) {
	rep := Parse("FUEL SALES: $500.00\nGALLONS SOLD: 150.00")

	require.NotNil(t, rep.Fuel)
	assert.InDelta(t, 0.4, rep.Fuel.Confidence, 1e-6)
	require.NotNil(t, rep.Fuel.FuelSales)
	assert.Equal(t, 500.00, *rep.Fuel.FuelSales)
}
