// Package store persists named report documents in a pebble key-value
// store.
package store

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/aerissecure/reportsheet/report"
)

// ErrNotFound is returned when no document is stored under a name.
var ErrNotFound = errors.New("document not found")

// keyPrefix namespaces document keys so the keyspace can hold other records
// later.
var keyPrefix = []byte("doc/")

func key(name string) []byte {
	k := make([]byte, 0, len(keyPrefix)+len(name))
	k = append(k, keyPrefix...)
	return append(k, name...)
}

// Store is a pebble-backed collection of documents keyed by name. It is safe
// for concurrent use.
type Store struct {
	db     *pebble.DB
	logger *slog.Logger
}

// Options configures Open.
type Options struct {
	// Pebble is passed to pebble.Open. A nil value uses pebble defaults.
	Pebble *pebble.Options
	// Logger receives debug records for every write. Defaults to a logger
	// that discards everything.
	Logger *slog.Logger
}

// Open opens, creating if needed, the store at dir.
func Open(dir string, opts *Options) (*Store, error) {
	if opts == nil {
		opts = &Options{}
	}
	po := opts.Pebble
	if po == nil {
		po = &pebble.Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	db, err := pebble.Open(dir, po)
	if err != nil {
		return nil, errors.Wrapf(err, "opening store at %q", dir)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores doc under name, replacing any previous version.
func (s *Store) Put(ctx context.Context, name, title string, doc report.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" {
		return errors.New("cannot store a document without a name")
	}
	v, err := msgpack.Marshal(report.NewDocumentRecord(title, doc))
	if err != nil {
		return errors.Wrapf(err, "encoding document %q", name)
	}
	if err := s.db.Set(key(name), v, pebble.Sync); err != nil {
		return errors.Wrapf(err, "storing document %q", name)
	}
	s.logger.DebugContext(ctx, "document stored", "name", name, "blocks", len(doc.Blocks), "bytes", len(v))
	return nil
}

// Get returns the title and document stored under name.
func (s *Store) Get(ctx context.Context, name string) (string, report.Document, error) {
	if err := ctx.Err(); err != nil {
		return "", report.Document{}, err
	}
	v, closer, err := s.db.Get(key(name))
	if errors.Is(err, pebble.ErrNotFound) {
		return "", report.Document{}, errors.Wrapf(ErrNotFound, "%q", name)
	}
	if err != nil {
		return "", report.Document{}, errors.Wrapf(err, "loading document %q", name)
	}
	defer closer.Close()

	var rec report.DocumentRecord
	if err := msgpack.Unmarshal(v, &rec); err != nil {
		return "", report.Document{}, errors.Wrapf(err, "decoding document %q", name)
	}
	doc, err := rec.Document()
	if err != nil {
		return "", report.Document{}, errors.Wrapf(err, "decoding document %q", name)
	}
	return rec.Title, doc, nil
}

// Delete removes the document stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, closer, err := s.db.Get(key(name))
	if errors.Is(err, pebble.ErrNotFound) {
		return errors.Wrapf(ErrNotFound, "%q", name)
	}
	if err != nil {
		return errors.Wrapf(err, "loading document %q", name)
	}
	closer.Close()

	if err := s.db.Delete(key(name), pebble.Sync); err != nil {
		return errors.Wrapf(err, "deleting document %q", name)
	}
	s.logger.DebugContext(ctx, "document deleted", "name", name)
	return nil
}

// List returns the names of all stored documents in byte order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	upper := append(bytes.Clone(keyPrefix[:len(keyPrefix)-1]), keyPrefix[len(keyPrefix)-1]+1)
	it := s.db.NewIter(&pebble.IterOptions{
		LowerBound: keyPrefix,
		UpperBound: upper,
	})
	defer it.Close()

	var names []string
	for it.First(); it.Valid(); it.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		names = append(names, string(it.Key()[len(keyPrefix):]))
	}
	if err := it.Error(); err != nil {
		return nil, errors.Wrap(err, "listing documents")
	}
	return names, nil
}
