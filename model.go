// Package reportsheet converts report documents to and from spreadsheet and
// word-processor files.
//
// A document is flattened into a single worksheet using sentinel marker rows
// (HEADING:, TEXT:, CHART:, TABLE:) and can be rebuilt from that worksheet.
// Exported workbooks carry a second, metadata-only summary sheet.
package reportsheet

import (
	"time"

	"github.com/aerissecure/reportsheet/report"
	"github.com/aerissecure/reportsheet/tabular"
)

// Import is a document read back from a file.
type Import struct {
	Title    string
	Document report.Document
	// Diagnostics lists the rows the lenient decoder skipped or corrected.
	Diagnostics []tabular.Diagnostic
}

// Options controls XLSX export.
type Options struct {
	// Encoder flattens the document into the primary sheet.
	Encoder tabular.Encoder
	// SummarySheetName names the summary sheet. Defaults to
	// tabular.DefaultSummarySheetName.
	SummarySheetName string
	// Now stamps the summary sheet. Defaults to time.Now.
	Now func() time.Time
}

func (o Options) summarySheetName() string {
	if o.SummarySheetName == "" {
		return tabular.DefaultSummarySheetName
	}
	return o.SummarySheetName
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}
