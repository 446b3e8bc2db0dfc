package tabular

import (
	"time"

	"github.com/golang-module/carbon/v2"

	"github.com/aerissecure/reportsheet/report"
)

// DefaultSummarySheetName names the summary sheet when none is given.
const DefaultSummarySheetName = "Summary"

// Summary field labels, in the order they are written.
const (
	SummaryTitle      = "Title"
	SummaryGenerated  = "Generated"
	SummaryBlocks     = "Blocks"
	SummaryHeadings   = "Headings"
	SummaryParagraphs = "Paragraphs"
	SummaryCharts     = "Charts"
	SummaryTables     = "Tables"
)

// Summarize builds the metadata sheet written next to the encoded document:
// title, generation time, block count and per-kind counts. It is for people
// to read; Decode never looks at it.
func Summarize(doc report.Document, title string, generated time.Time) Sheet {
	counts := doc.Counts()
	stamp := carbon.CreateFromStdTime(generated.UTC()).ToDateTimeString()

	return Sheet{
		Name: DefaultSummarySheetName,
		Rows: []Row{
			Strings("Field", "Value"),
			Strings(SummaryTitle, title),
			Strings(SummaryGenerated, stamp+" UTC"),
			{String(SummaryBlocks), Number(float64(len(doc.Blocks)))},
			{String(SummaryHeadings), Number(float64(counts[report.KindHeading]))},
			{String(SummaryParagraphs), Number(float64(counts[report.KindParagraph]))},
			{String(SummaryCharts), Number(float64(counts[report.KindChart]))},
			{String(SummaryTables), Number(float64(counts[report.KindTable]))},
		},
	}
}
