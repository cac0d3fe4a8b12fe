// Package store holds uploaded document text and extraction results for the
// lifetime of a session. Storage is in-memory only; entries expire after a
// TTL and nothing survives a restart.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skillfit/internal/types"
)

// DefaultTTL is how long a stored document stays retrievable.
const DefaultTTL = time.Hour

// Document is one stored text with its extraction state. Extracted is nil
// until extraction has run for this document.
type Document struct {
	ID         string
	SourceType string
	Text       string
	Extracted  *types.SkillExtractionResult
	StoredAt   time.Time
}

// Store is a TTL-bound in-memory document store. Safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	docs map[string]*Document
	ttl  time.Duration
	now  func() time.Time
}

// New returns a Store with the default TTL.
func New() *Store {
	return NewWithTTL(DefaultTTL)
}

// NewWithTTL returns a Store whose entries expire after ttl.
func NewWithTTL(ttl time.Duration) *Store {
	return &Store{
		docs: make(map[string]*Document),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Put stores a document and returns its generated id.
func (s *Store) Put(text, sourceType string) string {
	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[id] = &Document{
		ID:         id,
		SourceType: sourceType,
		Text:       text,
		StoredAt:   s.now(),
	}
	return id
}

// Get returns the document for id, or nil if it does not exist or its
// session has expired. Expired entries are removed on read.
func (s *Store) Get(id string) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil
	}
	if s.expired(doc) {
		delete(s.docs, id)
		return nil
	}
	return doc
}

// SetExtraction attaches an extraction result to a stored document. Returns
// false if the document is missing or expired.
func (s *Store) SetExtraction(id string, result *types.SkillExtractionResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok || s.expired(doc) {
		return false
	}
	doc.Extracted = result
	return true
}

// Delete removes a document. Returns false if it was not present.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return false
	}
	delete(s.docs, id)
	return true
}

// CleanupExpired removes all expired documents and reports how many.
func (s *Store) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, doc := range s.docs {
		if s.expired(doc) {
			delete(s.docs, id)
			removed++
		}
	}
	return removed
}

// Count returns the number of stored documents, expired entries included.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

func (s *Store) expired(doc *Document) bool {
	return s.now().Sub(doc.StoredAt) > s.ttl
}
