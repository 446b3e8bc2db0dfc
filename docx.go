package reportsheet

import (
	"io"

	"github.com/aerissecure/reportsheet/docx"
	"github.com/aerissecure/reportsheet/report"
)

// ExportDOCX writes doc as a Word document to w, with title as its Title
// paragraph.
func ExportDOCX(w io.Writer, doc report.Document, title string) error {
	return docx.Write(w, docx.Report{Title: title, Document: doc})
}

// ImportDOCX rebuilds the title and document of the Word file in r/size.
// Word import makes no corrections, so Diagnostics is always empty.
func ImportDOCX(r io.ReaderAt, size int64) (Import, error) {
	rep, err := docx.Parse(r, size)
	if err != nil {
		return Import{}, err
	}
	return Import{Title: rep.Title, Document: rep.Document}, nil
}
