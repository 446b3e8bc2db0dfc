package docx

import (
	"fmt"
	"strings"

	"github.com/aerissecure/reportsheet/report"
)

// Paragraph style IDs written on export and recognised on import.
const (
	StyleHeading = "Heading1"
	StyleNormal  = "Normal"
	StyleTitle   = "Title"
	// StyleCaption marks the paragraph holding a chart title. The chart data
	// follows it as a two-column Label/Value table.
	StyleCaption = "Caption"
)

// isHeadingStyle reports whether a paragraph style is one of the built-in
// heading styles ("Heading1" to "Heading9").
func isHeadingStyle(style string) bool {
	return strings.HasPrefix(style, "Heading")
}

// element is one top-level body element in document order: exactly one of
// paragraph/table is set.
type element struct {
	paragraph *paragraph
	table     [][]string
}

type paragraph struct {
	style string
	text  string
}

func (p paragraph) String() string {
	return fmt.Sprintf("Style: %s, Text: %q", p.style, p.text)
}

// Report is a titled document as held in a DOCX file. The title is the
// leading Title-styled paragraph.
type Report struct {
	Title    string
	Document report.Document
}

func (r Report) String() string {
	return fmt.Sprintf("Title: %q, %s", r.Title, r.Document.String())
}
