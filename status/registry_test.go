package status

import (
	"sync"
	"testing"
)

func TestMetricMapCachesPointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("x")
	b := m.Get("x")
	if a != b {
		t.Error("Get should return the same pointer for a key")
	}
	if !m.Has("x") || m.Has("y") || m.Count() != 1 {
		t.Errorf("unexpected registry contents: count=%d", m.Count())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Ints.Get(KeyFrames).Add(1)
			}
		}()
	}
	wg.Wait()

	if got := r.Ints.Get(KeyFrames).Load(); got != 1600 {
		t.Errorf("expected 1600 frames, got %d", got)
	}
}

func TestAtomicFloatAdd(t *testing.T) {
	var f AtomicFloat
	f.Set(1.5)
	if got := f.Add(2); got != 3.5 {
		t.Errorf("Add returned %v", got)
	}
	if f.Get() != 3.5 {
		t.Errorf("Get returned %v", f.Get())
	}
}

func TestRegistryFormat(t *testing.T) {
	r := NewRegistry()
	if r.Format() != "" {
		t.Errorf("empty registry should format empty, got %q", r.Format())
	}

	r.Ints.Get(KeyFrames).Store(42)
	r.Ints.Get(KeyErrors).Store(0)
	r.Floats.Get(KeyFPS).Set(29.97)
	r.Strings.Get(KeyState).Store("paused")

	want := "player.errors=0 player.fps=30.0 player.frames=42 player.state=paused"
	if got := r.Format(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
	if r.TotalCount() != 4 {
		t.Errorf("TotalCount() = %d", r.TotalCount())
	}
}
