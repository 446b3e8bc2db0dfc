package report

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Record is the flat, serialisable form of a Block used by document files and
// by the persistent store. Only the fields relevant to Kind are set.
type Record struct {
	Kind    string        `yaml:"kind" msgpack:"kind"`
	Text    string        `yaml:"text,omitempty" msgpack:"text,omitempty"`
	Title   string        `yaml:"title,omitempty" msgpack:"title,omitempty"`
	Series  []PointRecord `yaml:"series,omitempty" msgpack:"series,omitempty"`
	Headers []string      `yaml:"headers,omitempty" msgpack:"headers,omitempty"`
	Rows    [][]string    `yaml:"rows,omitempty" msgpack:"rows,omitempty"`
}

// PointRecord is the serialisable form of a Point.
type PointRecord struct {
	Label string  `yaml:"label" msgpack:"label"`
	Value float64 `yaml:"value" msgpack:"value"`
}

// DocumentRecord is the serialisable form of a titled Document.
type DocumentRecord struct {
	Title  string   `yaml:"title" msgpack:"title"`
	Blocks []Record `yaml:"blocks" msgpack:"blocks"`
}

// ToRecord flattens b.
func ToRecord(b Block) Record {
	switch b := b.(type) {
	case Heading:
		return Record{Kind: KindHeading.String(), Text: b.Text}
	case Paragraph:
		return Record{Kind: KindParagraph.String(), Text: b.Text}
	case Chart:
		r := Record{Kind: KindChart.String(), Title: b.Title}
		for _, p := range b.Series {
			r.Series = append(r.Series, PointRecord{Label: p.Label, Value: p.Value})
		}
		return r
	case Table:
		return Record{Kind: KindTable.String(), Headers: b.Headers, Rows: b.Rows}
	default:
		panic(fmt.Sprintf("report: unhandled block type %T", b))
	}
}

// Block rebuilds the Block described by r.
func (r Record) Block() (Block, error) {
	kind, ok := ParseKind(r.Kind)
	if !ok {
		return nil, errors.Newf("unknown block kind %q", r.Kind)
	}
	switch kind {
	case KindHeading:
		return Heading{Text: r.Text}, nil
	case KindParagraph:
		return Paragraph{Text: r.Text}, nil
	case KindChart:
		c := Chart{Title: r.Title}
		for _, p := range r.Series {
			c.Series = append(c.Series, Point{Label: p.Label, Value: p.Value})
		}
		return c, nil
	case KindTable:
		return Table{Headers: r.Headers, Rows: r.Rows}, nil
	default:
		return nil, errors.Newf("unknown block kind %q", r.Kind)
	}
}

// NewDocumentRecord flattens doc under title.
func NewDocumentRecord(title string, doc Document) DocumentRecord {
	rec := DocumentRecord{Title: title, Blocks: make([]Record, 0, len(doc.Blocks))}
	for _, b := range doc.Blocks {
		rec.Blocks = append(rec.Blocks, ToRecord(b))
	}
	return rec
}

// Document rebuilds the Document described by d.
func (d DocumentRecord) Document() (Document, error) {
	doc := Document{Blocks: make([]Block, 0, len(d.Blocks))}
	for i, r := range d.Blocks {
		b, err := r.Block()
		if err != nil {
			return Document{}, errors.Wrapf(err, "block %d", i)
		}
		doc.Blocks = append(doc.Blocks, b)
	}
	return doc, nil
}
