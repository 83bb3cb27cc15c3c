package cache

import (
	"sync/atomic"
	"time"

	"github.com/yameogo/gestock/internal/models"
)

// provisionalSeq issues locally-unique placeholder IDs. Seeded from the
// clock and incremented atomically, so two creates within the same
// millisecond never collide. IDs are negated before use: server IDs are
// positive, so the two ranges cannot overlap.
var provisionalSeq = func() *atomic.Int64 {
	var seq atomic.Int64
	seq.Store(time.Now().UnixMilli())
	return &seq
}()

// NextProvisionalID returns a fresh placeholder identifier.
func NextProvisionalID() int64 {
	return -provisionalSeq.Add(1)
}

// IsProvisional reports whether an ID is a local placeholder rather
// than a server-assigned identifier.
func IsProvisional(id int64) bool { return id < 0 }

// Mutation is one optimistic mutation in flight: it snapshots the whole
// collection at Begin, patches pages synchronously, and must settle with
// exactly one of Commit / CommitDelete / Rollback.
type Mutation[T models.Entity] struct {
	cache         *Cache[T]
	snaps         map[string]Page[T]
	provisionalID int64
	settled       bool
}

// Begin snapshots every cached page of the collection. The snapshot is
// deep enough that Rollback restores the exact pre-mutation state.
func (c *Cache[T]) Begin() *Mutation[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	snaps := make(map[string]Page[T], len(c.pages))
	for key, page := range c.pages {
		snaps[key] = page.clone()
	}
	return &Mutation[T]{cache: c, snaps: snaps}
}

// InsertHead inserts a provisional record at the head of every cached
// page and increments each page's total count. Most-recent-first is the
// fixed ordering convention for new records.
func (m *Mutation[T]) InsertHead(provisional T) {
	c := m.cache
	c.mu.Lock()
	defer c.mu.Unlock()
	m.provisionalID = provisional.EntityID()
	for key, page := range c.pages {
		updated := page.clone()
		updated.Results = append([]T{provisional}, updated.Results...)
		updated.Count = page.Count + 1
		c.pages[key] = updated
	}
}

// Remove deletes the record with the given ID from every cached page
// and decrements the count of each page it was removed from.
func (m *Mutation[T]) Remove(id int64) {
	c := m.cache
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, page := range c.pages {
		kept := make([]T, 0, len(page.Results))
		removed := 0
		for _, row := range page.Results {
			if row.EntityID() == id {
				removed++
				continue
			}
			kept = append(kept, row)
		}
		if removed == 0 {
			continue
		}
		updated := page
		updated.Results = kept
		updated.Count = page.Count - removed
		c.pages[key] = updated
	}
}

// Commit replaces the provisional record with the authoritative server
// entity, preserving its list position, and marks the collection stale
// for reconciliation.
func (m *Mutation[T]) Commit(entity T) {
	c := m.cache
	c.mu.Lock()
	for key, page := range c.pages {
		for i, row := range page.Results {
			if row.EntityID() == m.provisionalID {
				updated := page.clone()
				updated.Results[i] = entity
				c.pages[key] = updated
				break
			}
		}
	}
	c.details[entity.EntityID()] = entity
	m.settled = true
	c.mu.Unlock()
	c.MarkAllStale()
}

// CommitDelete settles a successful delete. The optimistic removal
// stands; the stale marks let a later refetch absorb any server-side
// cascade.
func (m *Mutation[T]) CommitDelete() {
	m.settled = true
	m.cache.MarkAllStale()
}

// Rollback restores every page to its Begin-time snapshot and marks the
// collection stale. Safe to call only once per mutation.
func (m *Mutation[T]) Rollback() {
	c := m.cache
	c.mu.Lock()
	for key, snap := range m.snaps {
		c.pages[key] = snap.clone()
	}
	// Pages cached after Begin but before the failure are not covered by
	// the snapshot; drop them rather than keep a possibly patched copy.
	for key := range c.pages {
		if _, ok := m.snaps[key]; !ok {
			delete(c.pages, key)
		}
	}
	m.settled = true
	c.mu.Unlock()
	c.MarkAllStale()
}

// Settled reports whether the mutation has been committed or rolled back.
func (m *Mutation[T]) Settled() bool { return m.settled }
