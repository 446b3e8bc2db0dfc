// Package docx exports report documents as Word files and imports them back.
package docx

import (
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/unidoc/unioffice/document"

	"github.com/aerissecure/reportsheet/report"
	"github.com/aerissecure/reportsheet/tabular"
)

// Write saves rep as a DOCX file to w.
func Write(w io.Writer, rep Report) error {
	doc, err := build(rep)
	if err != nil {
		return err
	}
	if err := doc.Save(w); err != nil {
		return errors.Wrap(err, "saving document")
	}
	return nil
}

// WriteFile is Write to a file at path.
func WriteFile(path string, rep Report) error {
	doc, err := build(rep)
	if err != nil {
		return err
	}
	if err := doc.SaveToFile(path); err != nil {
		return errors.Wrapf(err, "saving document to %s", path)
	}
	return nil
}

func build(rep Report) (*document.Document, error) {
	doc := document.New()

	if rep.Title != "" {
		addParagraph(doc, StyleTitle, rep.Title)
	}

	for i, b := range rep.Document.Blocks {
		switch b := b.(type) {
		case report.Heading:
			addParagraph(doc, StyleHeading, b.Text)
		case report.Paragraph:
			addParagraph(doc, StyleNormal, b.Text)
		case report.Chart:
			addParagraph(doc, StyleCaption, b.Title)
			rows := [][]string{{tabular.ChartLabelHeader, tabular.ChartValueHeader}}
			for _, p := range b.Series {
				rows = append(rows, []string{p.Label, strconv.FormatFloat(p.Value, 'f', -1, 64)})
			}
			addTable(doc, rows)
		case report.Table:
			var rows [][]string
			if len(b.Headers) > 0 {
				rows = append(rows, b.Headers)
			}
			rows = append(rows, b.Rows...)
			addTable(doc, rows)
		default:
			return nil, errors.Newf("block %d: unsupported block type %T", i, b)
		}
	}
	return doc, nil
}

func addParagraph(doc *document.Document, style, text string) {
	p := doc.AddParagraph()
	p.SetStyle(style)
	p.AddRun().AddText(text)
}

// addTable writes rows as a table. A table needs at least one row holding
// one cell to be valid, so an empty table is written as a single empty cell,
// which Parse reads back as an empty table.
func addTable(doc *document.Document, rows [][]string) {
	tbl := doc.AddTable()
	if len(rows) == 0 {
		rows = [][]string{{""}}
	}
	for _, r := range rows {
		if len(r) == 0 {
			r = []string{""}
		}
		row := tbl.AddRow()
		for _, text := range r {
			row.AddCell().AddParagraph().AddRun().AddText(text)
		}
	}
}
