package tabular

import (
	"strings"

	"github.com/aerissecure/reportsheet/report"
)

// Marker prefixes. Matching is case-sensitive and anchored at the start of
// the trimmed first cell of a row.
const (
	PrefixHeading   = "HEADING:"
	PrefixParagraph = "TEXT:"
	PrefixChart     = "CHART:"
	PrefixTable     = "TABLE:"
)

// grammar is consulted in order by IsMarkerRow. No prefix is a prefix of
// another, so the order only matters for readability.
var grammar = []struct {
	prefix string
	kind   report.Kind
}{
	{PrefixHeading, report.KindHeading},
	{PrefixParagraph, report.KindParagraph},
	{PrefixChart, report.KindChart},
	{PrefixTable, report.KindTable},
}

// Marker describes a recognised marker row.
type Marker struct {
	Prefix string
	Kind   report.Kind
	// Payload is the text after the prefix, trimmed.
	Payload string
}

// PrefixFor returns the marker prefix used for blocks of kind k.
func PrefixFor(k report.Kind) string {
	for _, g := range grammar {
		if g.kind == k {
			return g.prefix
		}
	}
	return ""
}

// IsMarkerRow reports whether the first cell of row opens a block.
func IsMarkerRow(row Row) (Marker, bool) {
	if len(row) == 0 || row[0].Kind != CellString {
		return Marker{}, false
	}
	first := strings.TrimSpace(row[0].Str)
	for _, g := range grammar {
		if strings.HasPrefix(first, g.prefix) {
			return Marker{
				Prefix:  g.prefix,
				Kind:    g.kind,
				Payload: strings.TrimSpace(first[len(g.prefix):]),
			}, true
		}
	}
	return Marker{}, false
}

// IsBlankRow reports whether every cell of row is empty. A row without cells
// is blank.
func IsBlankRow(row Row) bool {
	for _, c := range row {
		if !c.IsBlank() {
			return false
		}
	}
	return true
}
