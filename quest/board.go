package quest

import (
	"context"
	"sync"

	"github.com/lixenwraith/pixel-survivor/components"
	"github.com/lixenwraith/pixel-survivor/core"
)

// Board collects generated quests, newest first, with at most one request in flight
type Board struct {
	gen Generator

	mu      sync.Mutex
	quests  []components.Quest
	pending bool
	epoch   uint64 // bumped by Restore; results from older epochs are dropped
	wg      sync.WaitGroup
}

// NewBoard creates an empty board backed by gen
func NewBoard(gen Generator) *Board {
	return &Board{gen: gen}
}

// Request starts generation for a snapshot of the player
// Returns false when a request is already running
func (b *Board) Request(ctx context.Context, p components.Player) bool {
	b.mu.Lock()
	if b.pending {
		b.mu.Unlock()
		return false
	}
	b.pending = true
	epoch := b.epoch
	b.wg.Add(1)
	b.mu.Unlock()

	core.Go(func() {
		defer b.wg.Done()
		q := b.gen.Generate(ctx, p)

		b.mu.Lock()
		defer b.mu.Unlock()
		if epoch != b.epoch {
			return
		}
		b.quests = append([]components.Quest{q}, b.quests...)
		b.pending = false
	})
	return true
}

// Pending reports whether a request is running
func (b *Board) Pending() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pending
}

// Quests returns a copy of the board, newest first
func (b *Board) Quests() []components.Quest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]components.Quest(nil), b.quests...)
}

// Restore replaces the board contents for a new or continued game
// A request still running for the previous game is discarded when it completes
func (b *Board) Restore(qs []components.Quest) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.epoch++
	b.pending = false
	b.quests = append([]components.Quest(nil), qs...)
}

// Wait blocks until the running request, if any, has finished
func (b *Board) Wait() {
	b.wg.Wait()
}
