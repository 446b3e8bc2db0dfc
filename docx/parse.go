package docx

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/schema/soo/wml"

	"github.com/aerissecure/reportsheet/report"
	"github.com/aerissecure/reportsheet/tabular"
)

// Parse reads a DOCX document from r/size and rebuilds the report it holds.
//
// Heading-styled paragraphs become headings, other non-empty paragraphs
// become paragraphs, and tables become tables with their first row as
// header. A Caption paragraph directly followed by a Label/Value table is
// read back as a chart.
func Parse(r io.ReaderAt, size int64) (Report, error) {
	doc, err := document.Read(r, size)
	if err != nil {
		return Report{}, errors.Wrap(err, "reading document")
	}
	return fold(elements(doc)), nil
}

// ParseFile is Parse on the file at path.
func ParseFile(path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Report{}, err
	}
	return Parse(f, info.Size())
}

// elements walks the body in order and flattens paragraphs and tables.
func elements(doc *document.Document) []element {
	// ---- Build lookup maps from underlying XML ptr -> high-level wrapper ----
	pMap := make(map[*wml.CT_P]document.Paragraph)
	for _, p := range doc.Paragraphs() {
		pMap[p.X()] = p
	}
	tMap := make(map[*wml.CT_Tbl]document.Table)
	for _, tbl := range doc.Tables() {
		tMap[tbl.X()] = tbl
	}

	body := doc.X().Body
	if body == nil {
		return nil
	}

	var out []element
	for _, bl := range body.EG_BlockLevelElts {
		for _, c := range bl.EG_ContentBlockContent {
			for _, cp := range c.P {
				if par, ok := pMap[cp]; ok {
					out = append(out, element{paragraph: &paragraph{style: par.Style(), text: paragraphText(par)}})
				}
			}
			for _, ct := range c.Tbl {
				if tbl, ok := tMap[ct]; ok {
					out = append(out, element{table: tableText(tbl)})
				}
			}
		}
	}
	return out
}

func paragraphText(p document.Paragraph) string {
	var b strings.Builder
	for _, run := range p.Runs() {
		b.WriteString(run.Text())
	}
	return b.String()
}

func tableText(t document.Table) [][]string {
	rows := [][]string{}
	for _, row := range t.Rows() {
		var cells []string
		for _, cell := range row.Cells() {
			var paras []string
			for _, p := range cell.Paragraphs() {
				paras = append(paras, paragraphText(p))
			}
			cells = append(cells, strings.Join(paras, "\n"))
		}
		rows = append(rows, cells)
	}
	return rows
}

// fold turns the flat element list into report blocks.
func fold(els []element) Report {
	rep := Report{Document: report.Document{Blocks: []report.Block{}}}
	add := func(b report.Block) { rep.Document.Blocks = append(rep.Document.Blocks, b) }

	for i := 0; i < len(els); i++ {
		el := els[i]
		if el.table != nil {
			add(toTable(el.table))
			continue
		}

		p := el.paragraph
		switch {
		case p.style == StyleTitle && rep.Title == "" && len(rep.Document.Blocks) == 0:
			rep.Title = p.text
		case isHeadingStyle(p.style):
			add(report.Heading{Text: p.text})
		case p.style == StyleCaption && i+1 < len(els) && isSeriesTable(els[i+1].table):
			add(toChart(p.text, els[i+1].table))
			i++
		case p.style == "" && strings.TrimSpace(p.text) == "":
			// unstyled empty paragraphs are layout spacing
		default:
			add(report.Paragraph{Text: p.text})
		}
	}
	return rep
}

// isEmptyTable matches what addTable writes for a table without rows.
func isEmptyTable(rows [][]string) bool {
	return len(rows) == 1 && len(rows[0]) == 1 && rows[0][0] == ""
}

func isSeriesTable(rows [][]string) bool {
	if len(rows) == 0 || len(rows[0]) != 2 {
		return false
	}
	return rows[0][0] == tabular.ChartLabelHeader && rows[0][1] == tabular.ChartValueHeader
}

func toChart(title string, rows [][]string) report.Chart {
	c := report.Chart{Title: title, Series: []report.Point{}}
	for _, r := range rows[1:] {
		p := report.Point{}
		if len(r) > 0 {
			p.Label = r[0]
		}
		if len(r) > 1 {
			// same leniency as spreadsheet import: unreadable values are 0
			p.Value, _ = strconv.ParseFloat(strings.TrimSpace(r[1]), 64)
		}
		c.Series = append(c.Series, p)
	}
	return c
}

func toTable(rows [][]string) report.Table {
	t := report.Table{Headers: []string{}, Rows: [][]string{}}
	if len(rows) == 0 || isEmptyTable(rows) {
		return t
	}
	if rows[0] != nil {
		t.Headers = rows[0]
	}
	for _, r := range rows[1:] {
		if r == nil {
			r = []string{}
		}
		t.Rows = append(t.Rows, r)
	}
	return t
}
