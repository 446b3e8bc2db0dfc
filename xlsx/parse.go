package xlsx

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"

	"github.com/aerissecure/reportsheet/tabular"
)

// ParseWorkbook reads an XLSX from r/size into a Workbook of tabular sheets.
func ParseWorkbook(r io.ReaderAt, size int64) (Workbook, error) {
	ss, err := spreadsheet.Read(r, size)
	if err != nil {
		return Workbook{}, errors.Wrap(err, "reading workbook")
	}

	var wb Workbook
	for _, sheet := range ss.Sheets() {
		wb.Sheets = append(wb.Sheets, parseSheet(sheet))
	}
	return wb, nil
}

// ParseFile is ParseWorkbook on the file at path.
func ParseFile(path string) (Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return Workbook{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Workbook{}, err
	}
	return ParseWorkbook(f, info.Size())
}

// ReadFirstSheet returns the primary worksheet of the XLSX in r/size.
// Any further sheets, such as the summary, are ignored.
func ReadFirstSheet(r io.ReaderAt, size int64) (tabular.Sheet, error) {
	wb, err := ParseWorkbook(r, size)
	if err != nil {
		return tabular.Sheet{}, err
	}
	first, ok := wb.First()
	if !ok {
		return tabular.Sheet{}, errors.New("workbook has no sheets")
	}
	return first, nil
}

func parseSheet(sheet spreadsheet.Sheet) tabular.Sheet {
	ts := tabular.Sheet{Name: sheet.Name()}

	for _, row := range sheet.Rows() {
		rowIdx := int(row.RowNumber()) - 1
		if rowIdx < 0 {
			continue
		}
		if rowIdx >= len(ts.Rows) {
			// grow slice to accommodate sparse rows
			ts.Rows = append(ts.Rows, make([]tabular.Row, rowIdx-len(ts.Rows)+1)...)
		}

		// cells may be sparse too; place each by its column reference
		var cells tabular.Row
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			colIdx := int(reference.ColumnToIndex(colName))
			if colIdx >= len(cells) {
				cells = append(cells, make(tabular.Row, colIdx-len(cells)+1)...)
			}
			cells[colIdx] = convertCell(cell)
		}
		ts.Rows[rowIdx] = cells
	}

	return ts
}

func convertCell(cell spreadsheet.Cell) tabular.Cell {
	if cell.IsEmpty() {
		return tabular.Cell{}
	}
	if cell.IsNumber() {
		if f, err := cell.GetValueAsNumber(); err == nil {
			return tabular.Number(f)
		}
	}
	return tabular.String(cell.GetFormattedValue())
}
