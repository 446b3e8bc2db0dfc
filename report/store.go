package report

import (
	"github.com/cockroachdb/errors"
)

// ErrBlockNotFound is returned when no block is stored under the given ID.
var ErrBlockNotFound = errors.New("block not found")

// ID identifies a block within a Store. IDs are never reused.
type ID int

// Entry is a block together with the ID the store assigned to it.
type Entry struct {
	ID    ID
	Block Block
}

// Store is the editable working copy of a document. It is a plain value owned
// by its caller; it performs no locking.
type Store struct {
	Title   string
	entries []Entry
	nextID  ID
}

// NewStore returns a store holding doc, with IDs assigned in block order.
func NewStore(title string, doc Document) *Store {
	s := &Store{Title: title, nextID: 1}
	s.Replace(doc)
	return s
}

// NextID is the ID the next added block will receive.
func (s *Store) NextID() ID {
	if s.nextID == 0 {
		return 1
	}
	return s.nextID
}

func (s *Store) assign() ID {
	id := s.NextID()
	s.nextID = id + 1
	return id
}

// Add appends b and returns its new ID.
func (s *Store) Add(b Block) ID {
	id := s.assign()
	s.entries = append(s.entries, Entry{ID: id, Block: b})
	return id
}

// Insert places b at position pos (clamped to the valid range) and returns its
// new ID.
func (s *Store) Insert(pos int, b Block) ID {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.entries) {
		pos = len(s.entries)
	}
	id := s.assign()
	s.entries = append(s.entries, Entry{})
	copy(s.entries[pos+1:], s.entries[pos:])
	s.entries[pos] = Entry{ID: id, Block: b}
	return id
}

// Update replaces the block stored under id.
func (s *Store) Update(id ID, b Block) error {
	i := s.index(id)
	if i < 0 {
		return errors.Wrapf(ErrBlockNotFound, "block %d", id)
	}
	s.entries[i].Block = b
	return nil
}

// Remove deletes the block stored under id.
func (s *Store) Remove(id ID) error {
	i := s.index(id)
	if i < 0 {
		return errors.Wrapf(ErrBlockNotFound, "block %d", id)
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return nil
}

// Move relocates the block stored under id to position pos, counted after the
// block has been taken out.
func (s *Store) Move(id ID, pos int) error {
	i := s.index(id)
	if i < 0 {
		return errors.Wrapf(ErrBlockNotFound, "block %d", id)
	}
	e := s.entries[i]
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.entries) {
		pos = len(s.entries)
	}
	s.entries = append(s.entries, Entry{})
	copy(s.entries[pos+1:], s.entries[pos:])
	s.entries[pos] = e
	return nil
}

// Replace discards the current blocks and loads doc. The ID counter keeps
// counting so IDs handed out before the replace stay unique.
func (s *Store) Replace(doc Document) {
	s.entries = make([]Entry, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		s.Add(b)
	}
}

// Get returns the block stored under id.
func (s *Store) Get(id ID) (Block, bool) {
	i := s.index(id)
	if i < 0 {
		return nil, false
	}
	return s.entries[i].Block, true
}

// Entries returns a copy of the stored blocks with their IDs, in order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len is the number of stored blocks.
func (s *Store) Len() int { return len(s.entries) }

// Document returns the stored blocks as a Document.
func (s *Store) Document() Document {
	blocks := make([]Block, len(s.entries))
	for i, e := range s.entries {
		blocks[i] = e.Block
	}
	return Document{Blocks: blocks}
}

func (s *Store) index(id ID) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
