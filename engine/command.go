package engine

import "sync"

// Command is a deferred world mutation applied at frame start on the loop goroutine
type Command func(w *World)

type commandQueue struct {
	mu      sync.Mutex
	pending []Command
}

func (q *commandQueue) push(cmd Command) {
	if cmd == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, cmd)
	q.mu.Unlock()
}

func (q *commandQueue) drain(w *World) {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, cmd := range batch {
		cmd(w)
	}
}

// ConsumeItem uses the inventory item at index; food heals clamped to max HP
func ConsumeItem(index int) Command {
	return func(w *World) {
		w.Player.Consume(index)
	}
}
