// Package tabular converts report documents to and from the flat row/column
// shape shared with spreadsheet files.
//
// Structure is carried in-band by marker rows whose first cell starts with
// one of the prefixes HEADING:, TEXT:, CHART: or TABLE:. Everything else is
// positional: the rows that follow a marker, up to the next blank row, belong
// to that block.
package tabular

import (
	"fmt"
	"strconv"
	"strings"
)

// CellKind is the type of value held by a Cell.
type CellKind int

const (
	// CellEmpty is a cell with no value at all.
	CellEmpty CellKind = iota
	// CellString holds text.
	CellString
	// CellNumber holds a float.
	CellNumber
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellString:
		return "string"
	case CellNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Cell is a spreadsheet-native primitive value. The zero Cell is empty.
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
}

// String returns a text cell.
func String(s string) Cell { return Cell{Kind: CellString, Str: s} }

// Number returns a numeric cell.
func Number(f float64) Cell { return Cell{Kind: CellNumber, Num: f} }

// IsBlank reports whether the cell is empty or holds the empty string.
func (c Cell) IsBlank() bool {
	return c.Kind == CellEmpty || (c.Kind == CellString && c.Str == "")
}

// Text returns the cell as display text. Numbers use the shortest decimal
// form that parses back to the same value.
func (c Cell) Text() string {
	switch c.Kind {
	case CellString:
		return c.Str
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	default:
		return ""
	}
}

// Float returns the numeric value of the cell. Text cells are parsed after
// trimming; ok is false when there is no usable number.
func (c Cell) Float() (f float64, ok bool) {
	switch c.Kind {
	case CellNumber:
		return c.Num, true
	case CellString:
		f, err := strconv.ParseFloat(strings.TrimSpace(c.Str), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func (c Cell) GoString() string {
	switch c.Kind {
	case CellString:
		return fmt.Sprintf("%q", c.Str)
	case CellNumber:
		return c.Text()
	default:
		return "<empty>"
	}
}

// Row is one line of a sheet.
type Row []Cell

// Strings builds a row of text cells.
func Strings(ss ...string) Row {
	row := make(Row, len(ss))
	for i, s := range ss {
		row[i] = String(s)
	}
	return row
}

// Texts returns the display text of every cell.
func (r Row) Texts() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.Text()
	}
	return out
}

// trimmed returns r without its trailing blank cells.
func (r Row) trimmed() Row {
	n := len(r)
	for n > 0 && r[n-1].IsBlank() {
		n--
	}
	return r[:n]
}

// Sheet is a named two-dimensional array of cells.
type Sheet struct {
	Name string
	Rows []Row
}

func (s Sheet) String() string {
	return fmt.Sprintf("Name: %s, Rows: %d", s.Name, len(s.Rows))
}
