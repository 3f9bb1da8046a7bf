// Package memstore provides the generic in-memory table that backs every
// entity repository.
//
// A Table maps id to record, remembers insertion order for deterministic
// iteration and maintains optional secondary indexes (username, setting key,
// branch code...). Each index maps a key to the ids holding it, ordered by
// insertion, so FindBy returns the earliest inserted match. All methods are
// safe for concurrent use and each one is atomic.
package memstore

import (
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/bankportal/internal/common"
)

type row[T any] struct {
	seq uint64
	val T
}

type index[T any] struct {
	key func(T) string
	ids map[string][]string
}

// Table is an in-memory collection of T keyed by id.
type Table[T any] struct {
	mu      sync.RWMutex
	idOf    func(T) string
	clone   func(T) T
	seq     uint64
	rows    map[string]row[T]
	indexes map[string]*index[T]
}

// Option configures a Table at construction.
type Option[T any] func(*Table[T])

// WithIndex registers a secondary index called name over key(record).
func WithIndex[T any](name string, key func(T) string) Option[T] {
	return func(t *Table[T]) {
		t.indexes[name] = &index[T]{key: key, ids: make(map[string][]string)}
	}
}

// WithClone sets a deep-copy function applied to records on the way in and
// out, for records that hold pointers.
func WithClone[T any](clone func(T) T) Option[T] {
	return func(t *Table[T]) {
		t.clone = clone
	}
}

// NewTable creates an empty table. idOf extracts the primary key.
func NewTable[T any](idOf func(T) string, opts ...Option[T]) *Table[T] {
	t := &Table[T]{
		idOf:    idOf,
		clone:   func(v T) T { return v },
		rows:    make(map[string]row[T]),
		indexes: make(map[string]*index[T]),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Insert stores v. It fails with common.ErrorAlreadyExists if the id is taken.
func (t *Table[T]) Insert(v T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.insertLocked(v)
}

func (t *Table[T]) insertLocked(v T) (T, error) {
	id := t.idOf(v)
	if _, ok := t.rows[id]; ok {
		var zero T
		return zero, fmt.Errorf("id %s: %w", id, common.ErrorAlreadyExists)
	}

	t.seq++
	v = t.clone(v)
	t.rows[id] = row[T]{seq: t.seq, val: v}
	for _, ix := range t.indexes {
		t.addToIndexLocked(ix, ix.key(v), id)
	}
	return t.clone(v), nil
}

// Get returns the record with the given id.
func (t *Table[T]) Get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	r, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.clone(r.val), true
}

// All returns every record in insertion order.
func (t *Table[T]) All() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows := make([]row[T], 0, len(t.rows))
	for _, r := range t.rows {
		rows = append(rows, r)
	}
	slices.SortFunc(rows, func(a, b row[T]) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})

	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = t.clone(r.val)
	}
	return out
}

// Len reports the number of stored records.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Update applies fn to a copy of the record and stores the result. fn may
// abort the update by returning an error, which is passed through. Missing
// ids yield common.ErrorNotFound. The primary key cannot be changed.
func (t *Table[T]) Update(id string, fn func(*T) error) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.updateLocked(id, fn)
}

func (t *Table[T]) updateLocked(id string, fn func(*T) error) (T, error) {
	var zero T

	r, ok := t.rows[id]
	if !ok {
		return zero, fmt.Errorf("id %s: %w", id, common.ErrorNotFound)
	}

	next := t.clone(r.val)
	if err := fn(&next); err != nil {
		return zero, err
	}
	if t.idOf(next) != id {
		return zero, fmt.Errorf("memstore: update changed id %s to %s", id, t.idOf(next))
	}

	for _, ix := range t.indexes {
		oldKey, newKey := ix.key(r.val), ix.key(next)
		if oldKey != newKey {
			t.removeFromIndexLocked(ix, oldKey, id)
			t.addToIndexLocked(ix, newKey, id)
		}
	}
	t.rows[id] = row[T]{seq: r.seq, val: next}
	return t.clone(next), nil
}

// Delete removes the record and reports whether it existed.
func (t *Table[T]) Delete(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, ok := t.rows[id]
	if !ok {
		return false
	}
	for _, ix := range t.indexes {
		t.removeFromIndexLocked(ix, ix.key(r.val), id)
	}
	delete(t.rows, id)
	return true
}

// FindBy returns the earliest inserted record whose indexed key equals key.
func (t *Table[T]) FindBy(indexName, key string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := t.mustIndex(indexName).ids[key]
	if len(ids) == 0 {
		var zero T
		return zero, false
	}
	return t.clone(t.rows[ids[0]].val), true
}

// FilterBy returns all records whose indexed key equals key, in insertion order.
func (t *Table[T]) FilterBy(indexName, key string) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := t.mustIndex(indexName).ids[key]
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.clone(t.rows[id].val))
	}
	return out
}

// Upsert looks up key in the named index under a single lock. When a record
// exists, update is applied to it; otherwise create builds a new record which
// is inserted. The stored record is returned along with whether it was
// created.
func (t *Table[T]) Upsert(indexName, key string, update func(*T) error, create func() T) (T, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if ids := t.mustIndex(indexName).ids[key]; len(ids) > 0 {
		v, err := t.updateLocked(ids[0], update)
		return v, false, err
	}

	v, err := t.insertLocked(create())
	return v, err == nil, err
}

func (t *Table[T]) mustIndex(name string) *index[T] {
	ix, ok := t.indexes[name]
	if !ok {
		panic(fmt.Sprintf("memstore: unknown index %q", name))
	}
	return ix
}

// addToIndexLocked keeps ids ordered by row sequence.
func (t *Table[T]) addToIndexLocked(ix *index[T], key, id string) {
	ids := ix.ids[key]
	seq := t.rows[id].seq
	pos, _ := slices.BinarySearchFunc(ids, seq, func(e string, target uint64) int {
		s := t.rows[e].seq
		switch {
		case s < target:
			return -1
		case s > target:
			return 1
		}
		return 0
	})
	ix.ids[key] = slices.Insert(ids, pos, id)
}

func (t *Table[T]) removeFromIndexLocked(ix *index[T], key, id string) {
	ids := ix.ids[key]
	if i := slices.Index(ids, id); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
	}
	if len(ids) == 0 {
		delete(ix.ids, key)
		return
	}
	ix.ids[key] = ids
}
