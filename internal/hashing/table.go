package hashing

import (
	"sync"

	"github.com/ilygor/chessjerk/internal/chess"
)

// Table counts how often each position fingerprint has been seen.
type Table struct {
	counts map[uint64]int
	total  int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{counts: make(map[uint64]int)}
}

// Add records a position and returns how many times it has now been seen.
func (t *Table) Add(pos *chess.Position) int {
	return t.AddHash(Hash(pos))
}

// AddHash records a fingerprint and returns its updated count.
func (t *Table) AddHash(h uint64) int {
	t.counts[h]++
	t.total++
	return t.counts[h]
}

// Count returns how many times a position has been seen.
func (t *Table) Count(pos *chess.Position) int {
	return t.counts[Hash(pos)]
}

// UniqueCount returns the number of distinct positions.
func (t *Table) UniqueCount() int {
	return len(t.counts)
}

// TotalCount returns the number of positions added, repeats included.
func (t *Table) TotalCount() int {
	return t.total
}

// Reset clears the table.
func (t *Table) Reset() {
	t.counts = make(map[uint64]int)
	t.total = 0
}

// SyncTable wraps Table with mutex protection for concurrent search branches.
type SyncTable struct {
	table *Table
	mu    sync.RWMutex
}

// NewSyncTable creates an empty thread-safe table.
func NewSyncTable() *SyncTable {
	return &SyncTable{table: NewTable()}
}

// Add atomically records a position and returns its updated count.
func (s *SyncTable) Add(pos *chess.Position) int {
	h := Hash(pos)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.AddHash(h)
}

// UniqueCount returns the number of distinct positions.
func (s *SyncTable) UniqueCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.UniqueCount()
}

// TotalCount returns the number of positions added.
func (s *SyncTable) TotalCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.TotalCount()
}
