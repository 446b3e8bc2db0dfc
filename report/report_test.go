package report

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	for _, k := range Kinds {
		got, ok := ParseKind(k.String())
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}

	k, ok := ParseKind(" Table ")
	assert.True(t, ok)
	assert.Equal(t, KindTable, k)

	_, ok = ParseKind("image")
	assert.False(t, ok)
	assert.Equal(t, "kind(9)", Kind(9).String())
}

func TestTableValidate(t *testing.T) {
	ok := Table{Headers: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}}
	assert.NoError(t, ok.Validate())

	bad := Table{Headers: []string{"a", "b"}, Rows: [][]string{{"1", "2"}, {"3"}}}
	err := bad.Validate()
	var we *RowWidthError
	require.True(t, errors.As(err, &we))
	assert.Equal(t, 1, we.Row)
	assert.Equal(t, 2, we.Want)
	assert.Equal(t, 1, we.Got)
	assert.Equal(t, "row 1 has 1 cells, header has 2", err.Error())
}

func TestDocumentCounts(t *testing.T) {
	doc := Document{Blocks: []Block{
		Heading{Text: "h"},
		Paragraph{Text: "p1"},
		Paragraph{Text: "p2"},
		Table{},
	}}
	assert.Equal(t, map[Kind]int{
		KindHeading:   1,
		KindParagraph: 2,
		KindChart:     0,
		KindTable:     1,
	}, doc.Counts())
	assert.Equal(t, "Blocks: 4, Headings: 1, Paragraphs: 2, Charts: 0, Tables: 1", doc.String())
}

func TestStore(t *testing.T) {
	s := NewStore("Report", Document{Blocks: []Block{Heading{Text: "a"}, Paragraph{Text: "b"}}})
	require.Equal(t, 2, s.Len())
	assert.Equal(t, ID(3), s.NextID())

	entries := s.Entries()
	assert.Equal(t, ID(1), entries[0].ID)
	assert.Equal(t, ID(2), entries[1].ID)

	c := s.Add(Chart{Title: "c"})
	assert.Equal(t, ID(3), c)

	first := s.Insert(0, Heading{Text: "first"})
	assert.Equal(t, ID(4), first)
	assert.Equal(t, Heading{Text: "first"}, s.Document().Blocks[0])

	require.NoError(t, s.Update(2, Paragraph{Text: "B"}))
	b, ok := s.Get(2)
	require.True(t, ok)
	assert.Equal(t, Paragraph{Text: "B"}, b)

	require.NoError(t, s.Move(first, 99))
	assert.Equal(t, []Block{
		Heading{Text: "a"},
		Paragraph{Text: "B"},
		Chart{Title: "c"},
		Heading{Text: "first"},
	}, s.Document().Blocks)

	require.NoError(t, s.Move(c, 0))
	assert.Equal(t, Chart{Title: "c"}, s.Document().Blocks[0])

	require.NoError(t, s.Remove(1))
	assert.Equal(t, 3, s.Len())
	_, ok = s.Get(1)
	assert.False(t, ok)

	err := s.Remove(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBlockNotFound))
	assert.True(t, errors.Is(s.Update(42, Heading{}), ErrBlockNotFound))
	assert.True(t, errors.Is(s.Move(42, 0), ErrBlockNotFound))
}

func TestStoreIDsNeverReused(t *testing.T) {
	var s Store
	a := s.Add(Heading{Text: "a"})
	assert.Equal(t, ID(1), a)
	require.NoError(t, s.Remove(a))

	s.Replace(Document{Blocks: []Block{Paragraph{Text: "x"}}})
	assert.Equal(t, ID(2), s.Entries()[0].ID)
	assert.Equal(t, ID(3), s.Add(Paragraph{}))
}

func TestStoreEntriesIsCopy(t *testing.T) {
	s := NewStore("", Document{Blocks: []Block{Heading{Text: "a"}}})
	entries := s.Entries()
	entries[0].Block = Heading{Text: "changed"}

	b, _ := s.Get(1)
	assert.Equal(t, Heading{Text: "a"}, b)
}

func TestRecord(t *testing.T) {
	doc := Document{Blocks: []Block{
		Heading{Text: "h"},
		Paragraph{Text: "p"},
		Chart{Title: "c", Series: []Point{{Label: "x", Value: 1.5}}},
		Table{Headers: []string{"a"}, Rows: [][]string{{"1"}}},
	}}

	rec := NewDocumentRecord("T", doc)
	assert.Equal(t, "T", rec.Title)
	require.Len(t, rec.Blocks, 4)
	assert.Equal(t, "chart", rec.Blocks[2].Kind)
	assert.Equal(t, []PointRecord{{Label: "x", Value: 1.5}}, rec.Blocks[2].Series)

	got, err := rec.Document()
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestRecordUnknownKind(t *testing.T) {
	rec := DocumentRecord{Blocks: []Record{{Kind: "heading"}, {Kind: "image"}}}
	_, err := rec.Document()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "block 1")
	assert.Contains(t, err.Error(), `unknown block kind "image"`)
}
