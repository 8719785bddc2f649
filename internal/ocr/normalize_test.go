package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	in := "GROSS  SALES:\t\t$100.00\r\nNET SALES:   $90.00\r\n"
	out := Normalize(in)

	assert.Equal(t, "GROSS SALES: $100.00\nNET SALES: $90.00", out)
}

func TestNormalizeStripsRuledLines(t *testing.T) {
	in := "DEPARTMENT SALES\n----------\nGROCERY 34 120.50\n__________\nTOTAL 271.10"
	out := Normalize(in)

	assert.NotContains(t, out, "----------")
	assert.NotContains(t, out, "__________")
	assert.Contains(t, out, "GROCERY 34 120.50")
}

func TestNormalizeKeepsLineBreaks(t *testing.T) {
	in := "LINE ONE\nLINE TWO\n\n\n\n\nLINE THREE"
	out := Normalize(in)

	assert.Equal(t, "LINE ONE\nLINE TWO\n\nLINE THREE", out)
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \n\n  "))
}
