package reportsheet

import (
	"bytes"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerissecure/reportsheet/report"
	"github.com/aerissecure/reportsheet/tabular"
	"github.com/aerissecure/reportsheet/xlsx"
)

func sampleDocument() report.Document {
	return report.Document{Blocks: []report.Block{
		report.Heading{Text: "Overview"},
		report.Paragraph{Text: "Revenue grew in every region."},
		report.Chart{Title: "Sales", Series: []report.Point{{Label: "Jan", Value: 10}, {Label: "Feb", Value: 20.5}}},
		report.Table{Headers: []string{"Region", "Owner"}, Rows: [][]string{{"North", "Ann"}, {"", "Bob"}}},
		report.Chart{Title: "Empty"},
	}}
}

func fixedNow() time.Time {
	return time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
}

func TestExportImportXLSX(t *testing.T) {
	doc := sampleDocument()

	var buf bytes.Buffer
	require.NoError(t, ExportXLSX(&buf, doc, "Q1", Options{Now: fixedNow}))

	got, err := ImportXLSX(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, "Q1", got.Title)
	assert.Empty(t, got.Diagnostics)
	if diff := cmp.Diff(doc, got.Document, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestExportXLSXSheets(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{
		Encoder:          tabular.Encoder{SheetName: "Blocks"},
		SummarySheetName: "Meta",
		Now:              fixedNow,
	}
	require.NoError(t, ExportXLSX(&buf, sampleDocument(), "Q1", opts))

	wb, err := xlsx.ParseWorkbook(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 2)
	assert.Equal(t, "Blocks", wb.Sheets[0].Name)

	meta, ok := wb.Sheet("Meta")
	require.True(t, ok)
	require.Len(t, meta.Rows, 8)
	assert.Equal(t, []string{"Title", "Q1"}, meta.Rows[1].Texts())
	assert.Equal(t, []string{"Generated", "2026-10-15 09:30:00 UTC"}, meta.Rows[2].Texts())
	assert.Equal(t, []string{"Blocks", "5"}, meta.Rows[3].Texts())
	assert.Equal(t, []string{"Charts", "2"}, meta.Rows[6].Texts())
}

func TestExportXLSXWritesNothingOnPrecondition(t *testing.T) {
	doc := report.Document{Blocks: []report.Block{
		report.Heading{Text: "ok"},
		report.Table{Headers: []string{"a", "b"}, Rows: [][]string{{"1"}}},
	}}

	var buf bytes.Buffer
	err := ExportXLSX(&buf, doc, "bad", Options{})
	require.Error(t, err)

	var pe *tabular.EncodePreconditionError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Block)
	assert.Zero(t, buf.Len())
}

func TestExportXLSXRejectsControlCharacters(t *testing.T) {
	doc := report.Document{Blocks: []report.Block{report.Paragraph{Text: "a\x01b"}}}

	var buf bytes.Buffer
	err := ExportXLSX(&buf, doc, "Q1", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "U+0001")
	assert.Zero(t, buf.Len())
}

func TestBuildWorkbookSheetNameCollision(t *testing.T) {
	_, err := BuildWorkbook(sampleDocument(), "Q1", Options{
		Encoder:          tabular.Encoder{SheetName: "Same"},
		SummarySheetName: "Same",
	})
	assert.Error(t, err)
}

func TestImportXLSXRejectsGarbage(t *testing.T) {
	data := []byte("definitely not a zip")
	_, err := ImportXLSX(bytes.NewReader(data), int64(len(data)))
	assert.Error(t, err)
}

func TestExportImportDOCX(t *testing.T) {
	doc := sampleDocument()

	var buf bytes.Buffer
	require.NoError(t, ExportDOCX(&buf, doc, "Q1"))

	got, err := ImportDOCX(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, "Q1", got.Title)
	if diff := cmp.Diff(doc, got.Document, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}
