package printstore

import (
	"context"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestStore(ttl time.Duration, max int) (*Store, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	s := New(ttl, max)
	s.now = clock.Now
	return s, clock
}

func TestStore_PutGet(t *testing.T) {
	s, _ := newTestStore(time.Hour, 10)
	doc := s.Put("Worksheet", "<html></html>", "etag-1")
	if doc.ID == "" {
		t.Fatal("expected an id")
	}

	got := s.Get(doc.ID)
	if got == nil {
		t.Fatal("expected to get document back")
	}
	if got.HTML != "<html></html>" || got.Title != "Worksheet" || got.ETag != "etag-1" {
		t.Errorf("unexpected document: %+v", got)
	}
}

func TestStore_UniqueIDs(t *testing.T) {
	s, _ := newTestStore(time.Hour, 10)
	a := s.Put("a", "", "")
	b := s.Put("b", "", "")
	if a.ID == b.ID {
		t.Errorf("expected distinct ids, got %q twice", a.ID)
	}
}

func TestStore_GetMissing(t *testing.T) {
	s, _ := newTestStore(time.Hour, 10)
	if s.Get("nonexistent") != nil {
		t.Error("expected nil for missing document")
	}
}

func TestStore_ExpiredNotReturned(t *testing.T) {
	s, clock := newTestStore(time.Minute, 10)
	doc := s.Put("old", "x", "")
	clock.Advance(2 * time.Minute)
	if s.Get(doc.ID) != nil {
		t.Error("expected expired document to be hidden")
	}
}

func TestStore_TTLCleanup(t *testing.T) {
	s, clock := newTestStore(time.Minute, 10)
	old := s.Put("old", "x", "")
	clock.Advance(2 * time.Minute)
	fresh := s.Put("new", "y", "")

	if n := s.Cleanup(); n != 1 {
		t.Errorf("expected 1 removed, got %d", n)
	}
	if s.Get(old.ID) != nil {
		t.Error("expected expired document to be cleaned up")
	}
	if s.Get(fresh.ID) == nil {
		t.Error("expected fresh document to survive cleanup")
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 document left, got %d", s.Len())
	}
}

func TestStore_EvictsOldestWhenFull(t *testing.T) {
	s, clock := newTestStore(time.Hour, 2)
	first := s.Put("1", "", "")
	clock.Advance(time.Second)
	second := s.Put("2", "", "")
	clock.Advance(time.Second)
	third := s.Put("3", "", "")

	if s.Len() != 2 {
		t.Fatalf("expected 2 documents, got %d", s.Len())
	}
	if s.Get(first.ID) != nil {
		t.Error("expected oldest document to be evicted")
	}
	if s.Get(second.ID) == nil || s.Get(third.ID) == nil {
		t.Error("expected newer documents to remain")
	}
}

func TestStore_CleanupEmpty(t *testing.T) {
	s, _ := newTestStore(time.Hour, 10)
	if n := s.Cleanup(); n != 0 {
		t.Errorf("expected 0 removed, got %d", n)
	}
}

func TestStore_RunStopsOnCancel(t *testing.T) {
	s := New(time.Nanosecond, 10)
	s.Put("x", "", "")

	ctx, cancel := context.WithCancel(context.Background())
	removed := make(chan int, 1)
	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond, func(n int) {
			select {
			case removed <- n:
			default:
			}
		})
		close(done)
	}()

	select {
	case n := <-removed:
		if n != 1 {
			t.Errorf("expected 1 removed, got %d", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup loop never ran")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
