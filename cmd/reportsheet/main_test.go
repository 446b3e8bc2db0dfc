package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aerissecure/reportsheet/internal/config"
	"github.com/aerissecure/reportsheet/report"
)

const sampleYAML = `title: Q1 Report
blocks:
  - kind: heading
    text: Overview
  - kind: paragraph
    text: Revenue grew in every region.
  - kind: chart
    title: Sales
    series:
      - label: Jan
        value: 10
      - label: Feb
        value: 20.5
  - kind: table
    headers: [Region, Owner]
    rows:
      - [North, Ann]
      - [South, Bob]
`

// env prepares a scratch directory with a sample document and a store path
// and returns the directory.
func env(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvStorePath, filepath.Join(dir, "store"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.yaml"), []byte(sampleYAML), 0644))
	return dir
}

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", filepath.Join(dir, "config.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func parseDocument(t *testing.T, data string) (string, report.Document) {
	t.Helper()
	var rec report.DocumentRecord
	require.NoError(t, yaml.Unmarshal([]byte(data), &rec))
	doc, err := rec.Document()
	require.NoError(t, err)
	return rec.Title, doc
}

func sampleDocument(t *testing.T) report.Document {
	_, doc := parseDocument(t, sampleYAML)
	return doc
}

func TestExportImport(t *testing.T) {
	dir := env(t)
	out := filepath.Join(dir, "report.xlsx")

	_, err := run(t, dir, "export", filepath.Join(dir, "doc.yaml"), "-o", out)
	require.NoError(t, err)
	require.FileExists(t, out)

	stdout, err := run(t, dir, "import", out)
	require.NoError(t, err)

	title, doc := parseDocument(t, stdout)
	assert.Equal(t, "Q1 Report", title)
	if diff := cmp.Diff(sampleDocument(t), doc, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestExportAbortsBeforeWriting(t *testing.T) {
	dir := env(t)
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`title: bad
blocks:
  - kind: table
    headers: [a, b]
    rows:
      - ["1"]
`), 0644))
	out := filepath.Join(dir, "bad.xlsx")

	_, err := run(t, dir, "export", bad, "-o", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0 has 1 cells, header has 2")
	assert.NoFileExists(t, out)
}

func TestStoreCommands(t *testing.T) {
	dir := env(t)

	_, err := run(t, dir, "store", "put", "q1", filepath.Join(dir, "doc.yaml"))
	require.NoError(t, err)

	stdout, err := run(t, dir, "store", "list")
	require.NoError(t, err)
	assert.Equal(t, "q1\n", stdout)

	stdout, err = run(t, dir, "store", "get", "q1")
	require.NoError(t, err)
	title, doc := parseDocument(t, stdout)
	assert.Equal(t, "Q1 Report", title)
	assert.Len(t, doc.Blocks, 4)

	out := filepath.Join(dir, "stored.xlsx")
	_, err = run(t, dir, "export", "--from-store", "q1", "-o", out)
	require.NoError(t, err)
	assert.FileExists(t, out)

	_, err = run(t, dir, "store", "delete", "q1")
	require.NoError(t, err)
	_, err = run(t, dir, "store", "get", "q1")
	assert.Error(t, err)
}

func TestImportToStore(t *testing.T) {
	dir := env(t)
	out := filepath.Join(dir, "report.xlsx")
	_, err := run(t, dir, "export", filepath.Join(dir, "doc.yaml"), "-o", out)
	require.NoError(t, err)

	_, err = run(t, dir, "import", out, "--to-store", "imported")
	require.NoError(t, err)

	stdout, err := run(t, dir, "store", "list")
	require.NoError(t, err)
	assert.Equal(t, "imported\n", stdout)
}

func TestDocxCommands(t *testing.T) {
	dir := env(t)
	out := filepath.Join(dir, "report.docx")

	_, err := run(t, dir, "docx", "export", filepath.Join(dir, "doc.yaml"), "-o", out)
	require.NoError(t, err)

	stdout, err := run(t, dir, "docx", "import", out)
	require.NoError(t, err)
	title, doc := parseDocument(t, stdout)
	assert.Equal(t, "Q1 Report", title)
	if diff := cmp.Diff(sampleDocument(t), doc, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestSummary(t *testing.T) {
	dir := env(t)

	stdout, err := run(t, dir, "summary", filepath.Join(dir, "doc.yaml"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Title")
	assert.Contains(t, stdout, "Q1 Report")
	assert.Regexp(t, `Blocks\s+4\n`, stdout)
	assert.Regexp(t, `Tables\s+1\n`, stdout)
}

func TestSourceConflict(t *testing.T) {
	dir := env(t)
	_, err := run(t, dir, "summary", filepath.Join(dir, "doc.yaml"), "--from-store", "q1")
	assert.Error(t, err)
}
