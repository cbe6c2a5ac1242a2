package asset

import (
	"context"
)

// Configure sets the source loaded for slot when the service starts
func (s *Store) Configure(slot Slot, src string) {
	if slot < 0 || slot >= slotCount {
		return
	}
	s.sources[slot] = src
}

// Name implements service.Service
func (s *Store) Name() string {
	return "assets"
}

// Dependencies implements service.Service
func (s *Store) Dependencies() []string {
	return nil
}

// Init implements service.Service
func (s *Store) Init() error {
	return nil
}

// Start implements service.Service, loads every configured slot in the background
func (s *Store) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	for slot := Slot(0); slot < slotCount; slot++ {
		s.Load(ctx, slot, s.sources[slot])
	}
	return nil
}

// Stop implements service.Service, aborting downloads in flight
func (s *Store) Stop() error {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.Wait()
	return nil
}
