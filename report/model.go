// Package report holds the document model shared by every import and export
// path: an ordered sequence of typed content blocks.
package report

import (
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Block kinds
// -----------------------------------------------------------------------------

// Kind identifies the concrete type of a Block.
type Kind int

const (
	KindHeading Kind = iota
	KindParagraph
	KindChart
	KindTable
)

// Kinds lists every block kind in a stable order.
var Kinds = []Kind{KindHeading, KindParagraph, KindChart, KindTable}

func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindChart:
		return "chart"
	case KindTable:
		return "table"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == strings.ToLower(strings.TrimSpace(s)) {
			return k, true
		}
	}
	return 0, false
}

// -----------------------------------------------------------------------------
// Blocks
// -----------------------------------------------------------------------------

// Block is one typed unit of report content. The set of implementations is
// closed: Heading, Paragraph, Chart and Table.
type Block interface {
	Kind() Kind
	block()
}

// Heading is a section title.
type Heading struct {
	Text string
}

func (Heading) Kind() Kind { return KindHeading }
func (Heading) block()     {}

func (h Heading) String() string {
	return fmt.Sprintf("Heading: %q", h.Text)
}

// Paragraph is a run of body text.
type Paragraph struct {
	Text string
}

func (Paragraph) Kind() Kind { return KindParagraph }
func (Paragraph) block()     {}

func (p Paragraph) String() string {
	return fmt.Sprintf("Paragraph: %q", p.Text)
}

// Point is a single labelled value of a chart series.
type Point struct {
	Label string
	Value float64
}

// Chart is a titled series of labelled values.
type Chart struct {
	Title  string
	Series []Point
}

func (Chart) Kind() Kind { return KindChart }
func (Chart) block()     {}

func (c Chart) String() string {
	return fmt.Sprintf("Chart: %q, Points: %d", c.Title, len(c.Series))
}

// Table is a grid of text cells under a header row. Every row must be as wide
// as Headers when the table is exported; decoded tables may carry ragged rows.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (Table) Kind() Kind { return KindTable }
func (Table) block()     {}

func (t Table) String() string {
	return fmt.Sprintf("Table: Columns: %d, Rows: %d", len(t.Headers), len(t.Rows))
}

// RowWidthError reports a table row whose cell count differs from the header.
type RowWidthError struct {
	Row  int
	Want int
	Got  int
}

func (e *RowWidthError) Error() string {
	return fmt.Sprintf("row %d has %d cells, header has %d", e.Row, e.Got, e.Want)
}

// Validate returns a *RowWidthError for the first row whose width does not
// match the header width.
func (t Table) Validate() error {
	for i, row := range t.Rows {
		if len(row) != len(t.Headers) {
			return &RowWidthError{Row: i, Want: len(t.Headers), Got: len(row)}
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
// Document
// -----------------------------------------------------------------------------

// Document is the durable representation of a report. Block order is
// significant.
type Document struct {
	Blocks []Block
}

// Counts returns the number of blocks of every kind. All kinds are present in
// the result, zero counts included.
func (d Document) Counts() map[Kind]int {
	counts := make(map[Kind]int, len(Kinds))
	for _, k := range Kinds {
		counts[k] = 0
	}
	for _, b := range d.Blocks {
		counts[b.Kind()]++
	}
	return counts
}

func (d Document) String() string {
	c := d.Counts()
	return fmt.Sprintf("Blocks: %d, Headings: %d, Paragraphs: %d, Charts: %d, Tables: %d",
		len(d.Blocks), c[KindHeading], c[KindParagraph], c[KindChart], c[KindTable])
}
