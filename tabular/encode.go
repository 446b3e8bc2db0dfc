package tabular

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/aerissecure/reportsheet/report"
)

// Chart data header row written after every CHART: marker.
const (
	ChartLabelHeader = "Label"
	ChartValueHeader = "Value"
)

// DefaultHeaderDelimiter joins table headers in the TABLE: marker cell.
const DefaultHeaderDelimiter = ", "

// DefaultSheetName names the primary sheet when the Encoder has none.
const DefaultSheetName = "Report"

// Encoder flattens documents into sheets. The zero value is ready to use.
type Encoder struct {
	// SheetName names the produced sheet. Defaults to DefaultSheetName.
	SheetName string
	// HeaderDelimiter joins the headers shown in a TABLE: marker. The joined
	// text is cosmetic and is never parsed back. Defaults to
	// DefaultHeaderDelimiter.
	HeaderDelimiter string
}

// Encode flattens doc with the default Encoder.
func Encode(doc report.Document, title string) (Sheet, error) {
	return Encoder{}.Encode(doc, title)
}

// Encode flattens doc into a sheet whose first row holds title. Every block
// is written as a marker row, its data rows and one blank separator row.
//
// The whole document is validated first; on failure an
// *EncodePreconditionError is returned together with an empty Sheet.
func (e Encoder) Encode(doc report.Document, title string) (Sheet, error) {
	if err := validate(doc, title); err != nil {
		return Sheet{}, err
	}

	name := e.SheetName
	if name == "" {
		name = DefaultSheetName
	}
	sheet := Sheet{Name: name}
	sheet.Rows = append(sheet.Rows, Strings(title), Row{})
	for _, b := range doc.Blocks {
		sheet.Rows = append(sheet.Rows, e.encodeBlock(b)...)
		sheet.Rows = append(sheet.Rows, Row{})
	}
	return sheet, nil
}

func (e Encoder) encodeBlock(b report.Block) []Row {
	switch b := b.(type) {
	case report.Heading:
		return []Row{Strings(PrefixHeading + b.Text)}
	case report.Paragraph:
		return []Row{Strings(PrefixParagraph + b.Text)}
	case report.Chart:
		rows := make([]Row, 0, len(b.Series)+2)
		rows = append(rows,
			Strings(PrefixChart+b.Title),
			Strings(ChartLabelHeader, ChartValueHeader),
		)
		for _, p := range b.Series {
			rows = append(rows, Row{String(p.Label), Number(p.Value)})
		}
		return rows
	case report.Table:
		delim := e.HeaderDelimiter
		if delim == "" {
			delim = DefaultHeaderDelimiter
		}
		rows := make([]Row, 0, len(b.Rows)+2)
		rows = append(rows,
			Strings(PrefixTable+strings.Join(b.Headers, delim)),
			Strings(b.Headers...),
		)
		for _, r := range b.Rows {
			rows = append(rows, Strings(r...))
		}
		return rows
	default:
		panic("tabular: unhandled block type")
	}
}

// validate checks every condition under which the encoded sheet would not
// decode back to doc.
func validate(doc report.Document, title string) error {
	if _, ok := IsMarkerRow(Strings(title)); ok {
		return &EncodePreconditionError{Block: TitleBlock, Row: -1, Reason: "title starts with a marker prefix and would decode as a block"}
	}
	for i, b := range doc.Blocks {
		switch b := b.(type) {
		case report.Heading, report.Paragraph:
		case report.Chart:
			for j, p := range b.Series {
				if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
					return &EncodePreconditionError{Block: i, Row: j, Reason: "chart value is NaN or infinite and cannot be written as a number"}
				}
			}
		case report.Table:
			var we *report.RowWidthError
			if err := b.Validate(); errors.As(err, &we) {
				return &EncodePreconditionError{Block: i, Row: we.Row, Want: we.Want, Got: we.Got, Reason: "row width differs from header width"}
			}
			if len(b.Headers) == 0 && len(b.Rows) > 0 {
				return &EncodePreconditionError{Block: i, Row: -1, Reason: "table has rows but no header columns"}
			}
			if len(b.Headers) > 0 && IsBlankRow(Strings(b.Headers...)) {
				return &EncodePreconditionError{Block: i, Row: -1, Reason: "header cells are all empty and would read as a block boundary"}
			}
			for j, r := range b.Rows {
				if IsBlankRow(Strings(r...)) {
					return &EncodePreconditionError{Block: i, Row: j, Want: len(b.Headers), Got: len(r), Reason: "cells are all empty and the row would read as a block boundary"}
				}
			}
		case nil:
			return &EncodePreconditionError{Block: i, Row: -1, Reason: "nil block"}
		default:
			return &EncodePreconditionError{Block: i, Row: -1, Reason: fmt.Sprintf("unsupported block type %T", b)}
		}
	}
	return nil
}

// ColumnWidths returns, per column, the length in runes of the longest cell
// text found in rows.
func ColumnWidths(rows []Row) []int {
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, make([]int, c-len(widths)+1)...)
			}
			if n := utf8.RuneCountInString(cell.Text()); n > widths[c] {
				widths[c] = n
			}
		}
	}
	return widths
}
