package tabular

import (
	"fmt"

	"github.com/aerissecure/reportsheet/report"
)

// DiagnosticKind classifies a correction made while decoding.
type DiagnosticKind int

const (
	// SkippedRow is a non-blank row outside any block that was ignored.
	SkippedRow DiagnosticKind = iota
	// CoercedValue is a chart value that was not a number and became 0.
	CoercedValue
	// RaggedRow is a table row whose width differs from the header.
	RaggedRow
	// MissingHeader is a chart or table marker not followed by a header row.
	MissingHeader
)

func (k DiagnosticKind) String() string {
	switch k {
	case SkippedRow:
		return "skipped row"
	case CoercedValue:
		return "coerced value"
	case RaggedRow:
		return "ragged row"
	case MissingHeader:
		return "missing header"
	default:
		return "unknown"
	}
}

// Diagnostic records one place where decoding recovered from malformed input
// instead of failing.
type Diagnostic struct {
	Row    int // 0-based sheet row
	Kind   DiagnosticKind
	Detail string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("row %d: %s: %s", d.Row+1, d.Kind, d.Detail)
}

// Decode rebuilds the document held in sheet.
//
// Decoding is lenient: unknown rows are skipped, truncated blocks are kept as
// far as they go and unparsable chart values become 0. The only error is
// ErrEmptySheet for a sheet without rows.
func Decode(sheet Sheet) (report.Document, error) {
	doc, _, err := DecodeWithDiagnostics(sheet)
	return doc, err
}

// DecodeWithDiagnostics is Decode that also reports every correction it made.
// The returned document is identical to the one Decode returns.
func DecodeWithDiagnostics(sheet Sheet) (report.Document, []Diagnostic, error) {
	if len(sheet.Rows) == 0 {
		return report.Document{}, nil, ErrEmptySheet
	}
	d := &decoder{rows: sheet.Rows}
	d.run()
	return report.Document{Blocks: d.blocks}, d.diags, nil
}

type decoder struct {
	rows   []Row
	pos    int
	blocks []report.Block
	diags  []Diagnostic
	// started is set once the first marker has been seen; rows before it are
	// the sheet preamble and skipped silently.
	started bool
}

func (d *decoder) note(row int, kind DiagnosticKind, format string, args ...interface{}) {
	d.diags = append(d.diags, Diagnostic{Row: row, Kind: kind, Detail: fmt.Sprintf(format, args...)})
}

func (d *decoder) run() {
	d.blocks = []report.Block{}
	for d.pos < len(d.rows) {
		row := d.rows[d.pos]
		m, ok := IsMarkerRow(row)
		if !ok {
			if d.started && !IsBlankRow(row) {
				d.note(d.pos, SkippedRow, "not part of any block")
			}
			d.pos++
			continue
		}
		d.started = true
		d.pos++

		switch m.Kind {
		case report.KindHeading:
			d.blocks = append(d.blocks, report.Heading{Text: m.Payload})
		case report.KindParagraph:
			d.blocks = append(d.blocks, report.Paragraph{Text: m.Payload})
		case report.KindChart:
			d.blocks = append(d.blocks, d.chart(m))
		case report.KindTable:
			d.blocks = append(d.blocks, d.table())
		}
	}
}

// chart consumes the discarded Label/Value header and the series rows that
// follow a CHART: marker.
func (d *decoder) chart(m Marker) report.Chart {
	c := report.Chart{Title: m.Payload, Series: []report.Point{}}
	if d.pos >= len(d.rows) || IsBlankRow(d.rows[d.pos]) {
		d.note(d.pos-1, MissingHeader, "chart %q has no header row", m.Payload)
		return c
	}
	if _, ok := IsMarkerRow(d.rows[d.pos]); ok {
		d.note(d.pos-1, MissingHeader, "chart %q has no header row", m.Payload)
		return c
	}
	d.pos++

	for d.pos < len(d.rows) {
		cells, ok := seriesCells(d.rows[d.pos])
		if !ok {
			break
		}
		v, ok := cells[1].Float()
		if !ok {
			d.note(d.pos, CoercedValue, "value %q is not a number", cells[1].Text())
		}
		c.Series = append(c.Series, report.Point{Label: cells[0].Text(), Value: v})
		d.pos++
	}
	return c
}

// seriesCells returns the label and value cells of a chart data row: a row
// with exactly two cells once trailing blanks are dropped.
func seriesCells(row Row) (Row, bool) {
	cells := row.trimmed()
	if len(cells) != 2 {
		return nil, false
	}
	return cells, true
}

// table consumes the header row and the data rows that follow a TABLE:
// marker. The marker text itself is cosmetic and ignored.
func (d *decoder) table() report.Table {
	t := report.Table{Headers: []string{}, Rows: [][]string{}}
	if d.pos >= len(d.rows) || IsBlankRow(d.rows[d.pos]) {
		d.note(d.pos-1, MissingHeader, "table has no header row")
		return t
	}
	t.Headers = d.rows[d.pos].Texts()
	d.pos++

	for d.pos < len(d.rows) && !IsBlankRow(d.rows[d.pos]) {
		row := d.rows[d.pos].Texts()
		if len(row) != len(t.Headers) {
			d.note(d.pos, RaggedRow, "%d cells, header has %d", len(row), len(t.Headers))
		}
		t.Rows = append(t.Rows, row)
		d.pos++
	}
	return t
}

// SheetTitle returns the title written in the first row of an encoded sheet,
// or "" when the sheet starts with a block or has no rows.
func SheetTitle(sheet Sheet) string {
	if len(sheet.Rows) == 0 || len(sheet.Rows[0]) == 0 {
		return ""
	}
	if _, ok := IsMarkerRow(sheet.Rows[0]); ok {
		return ""
	}
	return sheet.Rows[0][0].Text()
}
