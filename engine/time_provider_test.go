package engine

import (
	"sync"
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestManualClock(t *testing.T) {
	clock := NewManualClock(epoch)

	if now := clock.Now(); !now.Equal(epoch) {
		t.Errorf("Expected initial time %v, got %v", epoch, now)
	}

	clock.Advance(time.Hour)
	clock.Advance(30 * time.Minute)
	if want := epoch.Add(90 * time.Minute); !clock.Now().Equal(want) {
		t.Errorf("Expected %v after advances, got %v", want, clock.Now())
	}

	clock.Set(epoch)
	if !clock.Now().Equal(epoch) {
		t.Errorf("Expected Set to jump back to %v, got %v", epoch, clock.Now())
	}
}

func TestManualClockConcurrency(t *testing.T) {
	clock := NewManualClock(epoch)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = clock.Now()
			}
		}()
	}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				clock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if want := epoch.Add(250 * time.Millisecond); !clock.Now().Equal(want) {
		t.Errorf("Expected %v after concurrent advances, got %v", want, clock.Now())
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &ManualClock{}
	var _ TimeProvider = &PausableClock{}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	base := NewManualClock(epoch)
	pc := NewPausableClock(base)

	base.Advance(time.Second)
	pc.Pause()
	frozen := pc.Now()

	base.Advance(5 * time.Second)
	if !pc.Now().Equal(frozen) {
		t.Errorf("Expected time frozen at %v, got %v", frozen, pc.Now())
	}
	if d := pc.TotalPauseDuration(); d != 5*time.Second {
		t.Errorf("Expected 5s ongoing pause, got %v", d)
	}

	pc.Resume()
	if !pc.Now().Equal(frozen) {
		t.Errorf("Expected no jump on resume, got %v want %v", pc.Now(), frozen)
	}

	base.Advance(time.Second)
	if want := frozen.Add(time.Second); !pc.Now().Equal(want) {
		t.Errorf("Expected %v after resume, got %v", want, pc.Now())
	}
}

func TestPausableClockIdempotentTransitions(t *testing.T) {
	base := NewManualClock(epoch)
	pc := NewPausableClock(base)

	pc.Resume()
	if pc.IsPaused() {
		t.Fatal("Resume on running clock should not pause it")
	}

	pc.Pause()
	base.Advance(time.Second)
	pc.Pause()
	base.Advance(time.Second)
	pc.Resume()

	if d := pc.TotalPauseDuration(); d != 2*time.Second {
		t.Errorf("Expected second Pause to be a no-op, total pause %v", d)
	}

	if !pc.Toggle() || !pc.IsPaused() {
		t.Error("Toggle should pause a running clock")
	}
	if pc.Toggle() || pc.IsPaused() {
		t.Error("Toggle should resume a paused clock")
	}
}
