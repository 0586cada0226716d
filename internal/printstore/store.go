package printstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Document is a rendered print page waiting to be opened by a print surface.
type Document struct {
	ID        string
	Title     string
	HTML      string
	ETag      string
	CreatedAt time.Time
}

// Store is a thread-safe in-memory registry of print documents with TTL
// eviction and a size bound.
type Store struct {
	mu   sync.Mutex
	docs map[string]*Document
	ttl  time.Duration
	max  int
	now  func() time.Time
}

func New(ttl time.Duration, max int) *Store {
	if max <= 0 {
		max = 256
	}
	return &Store{
		docs: make(map[string]*Document),
		ttl:  ttl,
		max:  max,
		now:  time.Now,
	}
}

// Put stores a rendered page under a fresh id. When the store is full the
// oldest document is evicted first.
func (s *Store) Put(title, html, etag string) *Document {
	doc := &Document{
		ID:    uuid.NewString(),
		Title: title,
		HTML:  html,
		ETag:  etag,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	doc.CreatedAt = s.now()
	for len(s.docs) >= s.max {
		s.evictOldestLocked()
	}
	s.docs[doc.ID] = doc
	return doc
}

// Get returns the document for id, or nil if it is unknown or expired.
func (s *Store) Get(id string) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.docs[id]
	if doc == nil || s.expiredLocked(doc, s.now()) {
		return nil
	}
	return doc
}

// Len reports the number of stored documents, expired ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

// Cleanup removes expired documents and returns how many were removed.
func (s *Store) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for id, doc := range s.docs {
		if s.expiredLocked(doc, now) {
			delete(s.docs, id)
			removed++
		}
	}
	return removed
}

// Run calls Cleanup every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration, onCleanup func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := s.Cleanup()
			if onCleanup != nil && n > 0 {
				onCleanup(n)
			}
		}
	}
}

func (s *Store) expiredLocked(doc *Document, now time.Time) bool {
	return s.ttl > 0 && now.Sub(doc.CreatedAt) > s.ttl
}

func (s *Store) evictOldestLocked() {
	var oldest *Document
	for _, d := range s.docs {
		if oldest == nil || d.CreatedAt.Before(oldest.CreatedAt) {
			oldest = d
		}
	}
	if oldest != nil {
		delete(s.docs, oldest.ID)
	}
}
