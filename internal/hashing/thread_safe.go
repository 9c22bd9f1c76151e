package hashing

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ThreadSafeMoveCache wraps MoveCache with mutex protection for concurrent access.
type ThreadSafeMoveCache struct {
	cache *MoveCache
	mu    sync.Mutex
}

// NewThreadSafeMoveCache creates a new thread-safe cache.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeMoveCache(maxCapacity int) *ThreadSafeMoveCache {
	return &ThreadSafeMoveCache{cache: NewMoveCache(maxCapacity)}
}

// Lookup returns the cached moves of board's position. The caller must
// hold whatever lock protects board.
func (c *ThreadSafeMoveCache) Lookup(board *chess.Board) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Lookup(board)
}

// Store records the moves of board's position.
func (c *ThreadSafeMoveCache) Store(board *chess.Board, moves []string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Store(board, moves)
}

// Len returns the number of cached positions.
func (c *ThreadSafeMoveCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}

// Stats returns the hit and miss counts.
func (c *ThreadSafeMoveCache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Stats()
}
