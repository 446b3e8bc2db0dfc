package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerissecure/reportsheet/report"
)

func TestIsMarkerRow(t *testing.T) {
	tests := []struct {
		name    string
		row     Row
		want    bool
		kind    report.Kind
		payload string
	}{
		{"heading", Strings("HEADING:Q1 Report"), true, report.KindHeading, "Q1 Report"},
		{"paragraph", Strings("TEXT:Some text"), true, report.KindParagraph, "Some text"},
		{"chart", Strings("CHART:Sales"), true, report.KindChart, "Sales"},
		{"table", Strings("TABLE:A, B"), true, report.KindTable, "A, B"},
		{"leading space", Strings("   HEADING:  Padded  "), true, report.KindHeading, "Padded"},
		{"empty payload", Strings("TEXT:"), true, report.KindParagraph, ""},
		{"extra cells", Row{String("CHART:x"), Number(1)}, true, report.KindChart, "x"},
		{"lower case", Strings("heading:nope"), false, 0, ""},
		{"not at start", Strings("x HEADING:nope"), false, 0, ""},
		{"unknown prefix", Strings("IMAGE:logo.png"), false, 0, ""},
		{"number cell", Row{Number(3)}, false, 0, ""},
		{"empty cell", Row{{}}, false, 0, ""},
		{"no cells", Row{}, false, 0, ""},
		{"second cell only", Row{{}, String("HEADING:x")}, false, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := IsMarkerRow(tt.row)
			require.Equal(t, tt.want, ok)
			if !tt.want {
				return
			}
			assert.Equal(t, tt.kind, m.Kind)
			assert.Equal(t, tt.payload, m.Payload)
			assert.Equal(t, PrefixFor(tt.kind), m.Prefix)
		})
	}
}

func TestIsBlankRow(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want bool
	}{
		{"nil", nil, true},
		{"no cells", Row{}, true},
		{"empty cells", Row{{}, {}}, true},
		{"empty strings", Strings("", ""), true},
		{"mixed empties", Row{{}, String("")}, true},
		{"space is content", Strings(" "), false},
		{"zero is content", Row{Number(0)}, false},
		{"trailing text", Row{{}, String("x")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBlankRow(tt.row))
		})
	}
}

func TestPrefixFor(t *testing.T) {
	assert.Equal(t, "HEADING:", PrefixFor(report.KindHeading))
	assert.Equal(t, "TEXT:", PrefixFor(report.KindParagraph))
	assert.Equal(t, "CHART:", PrefixFor(report.KindChart))
	assert.Equal(t, "TABLE:", PrefixFor(report.KindTable))
	assert.Equal(t, "", PrefixFor(report.Kind(42)))
}

func TestCell(t *testing.T) {
	assert.Equal(t, "10", Number(10).Text())
	assert.Equal(t, "2.5", Number(2.5).Text())
	assert.Equal(t, "", Cell{}.Text())

	f, ok := String(" 12.5 ").Float()
	assert.True(t, ok)
	assert.Equal(t, 12.5, f)

	_, ok = String("abc").Float()
	assert.False(t, ok)
	_, ok = Cell{}.Float()
	assert.False(t, ok)
}
