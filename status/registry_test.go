package status

import (
	"sync"
	"testing"
)

func TestMetricMapReturnsCachedPointer(t *testing.T) {
	reg := NewRegistry()
	a := reg.Ints.Get("engine.frames")
	b := reg.Ints.Get("engine.frames")

	if a != b {
		t.Error("Expected the same pointer for repeated Get")
	}
	if _, ok := reg.Ints.Lookup("missing"); ok {
		t.Error("Expected Lookup not to create metrics")
	}
	if reg.TotalCount() != 1 {
		t.Errorf("Expected 1 metric, got %d", reg.TotalCount())
	}
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()

	if got := f.Get(); got != 2500 {
		t.Errorf("Expected 2500, got %v", got)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	s.Store("this string is definitely longer than the limit")
	if got := len(s.Load()); got != MaxStringLen {
		t.Errorf("Expected length %d, got %d", MaxStringLen, got)
	}
}

func TestSnapshotOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Ints.Get("world.enemies").Store(12)
	reg.Ints.Get("engine.frames").Store(600)
	reg.Floats.Get("engine.frame_us").Set(812.4)
	reg.Bools.Get("audio.muted").Store(true)
	reg.Strings.Get("session.state").Store("PLAYING")

	want := []Metric{
		{"session.state", "PLAYING"},
		{"engine.frames", "600"},
		{"world.enemies", "12"},
		{"engine.frame_us", "812.4"},
		{"audio.muted", "true"},
	}
	got := reg.Snapshot()
	if len(got) != len(want) {
		t.Fatalf("Expected %d metrics, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v at %d, got %v", want[i], i, got[i])
		}
	}
}
