// Package xlsx reads and writes tabular sheets as Office Open XML workbooks.
package xlsx

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/aerissecure/reportsheet/tabular"
)

// Write saves wb as an XLSX file to w. Sheets keep their order; the first
// one is the sheet imports will read.
func Write(w io.Writer, wb Workbook) error {
	ss, err := build(wb)
	if err != nil {
		return err
	}
	if err := ss.Save(w); err != nil {
		return errors.Wrap(err, "saving workbook")
	}
	return nil
}

// WriteFile is Write to a file at path.
func WriteFile(path string, wb Workbook) error {
	ss, err := build(wb)
	if err != nil {
		return err
	}
	if err := ss.SaveToFile(path); err != nil {
		return errors.Wrapf(err, "saving workbook to %s", path)
	}
	return nil
}

func build(wb Workbook) (*spreadsheet.Workbook, error) {
	if len(wb.Sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	seen := make(map[string]bool, len(wb.Sheets))
	for _, s := range wb.Sheets {
		if s.Name == "" {
			return nil, errors.New("sheet without a name")
		}
		if seen[s.Name] {
			return nil, errors.Newf("duplicate sheet name %q", s.Name)
		}
		seen[s.Name] = true
		if err := checkText(s); err != nil {
			return nil, err
		}
	}

	ss := spreadsheet.New()
	for _, s := range wb.Sheets {
		addSheet(ss, s)
	}
	return ss, nil
}

// checkText rejects text cells holding characters XML 1.0 cannot carry.
// Writing them would not fail, but they would read back as U+FFFD.
func checkText(s tabular.Sheet) error {
	for r, row := range s.Rows {
		for c, cell := range row {
			if cell.Kind != tabular.CellString {
				continue
			}
			for _, ch := range cell.Str {
				if !isXMLChar(ch) {
					return errors.Newf("sheet %q row %d column %d: text contains %U, which XML cannot hold", s.Name, r+1, c+1, ch)
				}
			}
		}
	}
	return nil
}

// isXMLChar reports whether ch matches the Char production of XML 1.0.
func isXMLChar(ch rune) bool {
	switch {
	case ch == '\t' || ch == '\n' || ch == '\r':
		return true
	case ch >= 0x20 && ch <= 0xD7FF:
		return true
	case ch >= 0xE000 && ch <= 0xFFFD:
		return true
	case ch >= 0x10000 && ch <= 0x10FFFF:
		return true
	default:
		return false
	}
}

func addSheet(ss *spreadsheet.Workbook, s tabular.Sheet) {
	sheet := ss.AddSheet()
	sheet.SetName(s.Name)

	for _, r := range s.Rows {
		row := sheet.AddRow()
		for _, c := range r {
			cell := row.AddCell()
			switch c.Kind {
			case tabular.CellString:
				cell.SetString(c.Str)
			case tabular.CellNumber:
				cell.SetNumber(c.Num)
			}
		}
	}

	// Column widths only help people reading the file; decoding ignores them.
	for c, runes := range tabular.ColumnWidths(s.Rows) {
		sheet.Column(uint32(c + 1)).SetWidth(measurement.Distance(columnWidth(runes)) * measurement.Character)
	}
}
