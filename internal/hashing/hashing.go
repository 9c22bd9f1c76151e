// Package hashing provides position keys and a cache of legal move lists
// keyed by them.
package hashing

import "github.com/lgbarn/chessrules-go/internal/chess"

// MoveCache remembers the legal moves (as UCI strings) of positions that
// have already been generated. It is not safe for concurrent use; see
// ThreadSafeMoveCache.
type MoveCache struct {
	entries     map[uint64][]string
	maxCapacity int // 0 means unlimited
	hits        int
	misses      int
}

// NewMoveCache creates a cache holding at most maxCapacity positions.
// maxCapacity of 0 means unlimited capacity.
func NewMoveCache(maxCapacity int) *MoveCache {
	return &MoveCache{
		entries:     make(map[uint64][]string),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the cached moves of board's position.
func (c *MoveCache) Lookup(board *chess.Board) ([]string, bool) {
	moves, ok := c.entries[GenerateZobristHash(board)]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return moves, ok
}

// Store records the moves of board's position. Once full, new positions
// are dropped; existing entries are never evicted.
func (c *MoveCache) Store(board *chess.Board, moves []string) bool {
	key := GenerateZobristHash(board)
	if _, ok := c.entries[key]; !ok && c.IsFull() {
		return false
	}
	c.entries[key] = moves
	return true
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *MoveCache) IsFull() bool {
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}

// Len returns the number of cached positions.
func (c *MoveCache) Len() int {
	return len(c.entries)
}

// Stats returns the hit and miss counts.
func (c *MoveCache) Stats() (hits, misses int) {
	return c.hits, c.misses
}

// Reset clears the cache.
func (c *MoveCache) Reset() {
	c.entries = make(map[uint64][]string)
	c.hits, c.misses = 0, 0
}
