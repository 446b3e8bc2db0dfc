package main

import (
	"context"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/aerissecure/reportsheet/report"
	"github.com/aerissecure/reportsheet/store"
)

// source selects where a command reads its document from: a YAML document
// file given as argument, or a document in the store.
type source struct {
	storeName string
}

func (s *source) load(ctx context.Context, a *app, args []string) (string, report.Document, error) {
	switch {
	case s.storeName != "" && len(args) > 0:
		return "", report.Document{}, errors.New("give either a document file or --from-store, not both")
	case s.storeName != "":
		st, err := a.openStore()
		if err != nil {
			return "", report.Document{}, err
		}
		defer st.Close()
		return st.Get(ctx, s.storeName)
	case len(args) == 1:
		return readDocumentFile(args[0])
	default:
		return "", report.Document{}, errors.New("no document given")
	}
}

func (a *app) openStore() (*store.Store, error) {
	return store.Open(a.cfg.StorePath, &store.Options{Logger: a.logger})
}

// readDocumentFile reads a YAML document file. "-" reads standard input.
func readDocumentFile(path string) (string, report.Document, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", report.Document{}, errors.Wrapf(err, "reading %s", path)
	}

	var rec report.DocumentRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return "", report.Document{}, errors.Wrapf(err, "parsing %s", path)
	}
	doc, err := rec.Document()
	if err != nil {
		return "", report.Document{}, errors.Wrapf(err, "parsing %s", path)
	}
	return rec.Title, doc, nil
}

// writeDocument writes doc as YAML to path, or to w when path is empty.
func writeDocument(w io.Writer, path, title string, doc report.Document) error {
	data, err := yaml.Marshal(report.NewDocumentRecord(title, doc))
	if err != nil {
		return errors.Wrap(err, "encoding document")
	}
	if path == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

// openInput opens path for the ReaderAt based importers.
func openInput(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, info.Size(), nil
}
