package reportsheet

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/aerissecure/reportsheet/report"
	"github.com/aerissecure/reportsheet/tabular"
	"github.com/aerissecure/reportsheet/xlsx"
)

// BuildWorkbook encodes doc into the primary sheet and adds the summary
// sheet after it. Nothing is built when doc cannot be encoded; the error is
// then a *tabular.EncodePreconditionError.
func BuildWorkbook(doc report.Document, title string, opts Options) (xlsx.Workbook, error) {
	primary, err := opts.Encoder.Encode(doc, title)
	if err != nil {
		return xlsx.Workbook{}, err
	}
	summary := tabular.Summarize(doc, title, opts.now())
	summary.Name = opts.summarySheetName()
	if summary.Name == primary.Name {
		return xlsx.Workbook{}, errors.Newf("summary sheet name %q collides with the primary sheet", summary.Name)
	}
	return xlsx.Workbook{Sheets: []tabular.Sheet{primary, summary}}, nil
}

// ExportXLSX writes doc as an XLSX workbook to w. Nothing is written when doc
// cannot be encoded.
func ExportXLSX(w io.Writer, doc report.Document, title string, opts Options) error {
	wb, err := BuildWorkbook(doc, title, opts)
	if err != nil {
		return err
	}
	return xlsx.Write(w, wb)
}

// ImportXLSX rebuilds the document held in the first sheet of the XLSX in
// r/size, along with every correction the lenient decoder made.
func ImportXLSX(r io.ReaderAt, size int64) (Import, error) {
	sheet, err := xlsx.ReadFirstSheet(r, size)
	if err != nil {
		return Import{}, err
	}
	doc, diags, err := tabular.DecodeWithDiagnostics(sheet)
	if err != nil {
		return Import{}, errors.Wrapf(err, "decoding sheet %q", sheet.Name)
	}
	return Import{Title: tabular.SheetTitle(sheet), Document: doc, Diagnostics: diags}, nil
}
