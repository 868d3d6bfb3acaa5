package progress

import (
	"sync"
	"testing"
	"time"
)

func TestTracker_Transitions(t *testing.T) {
	var mu sync.Mutex
	var seen []Snapshot
	tr := NewTracker(func(s Snapshot) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	})

	if got := tr.Snapshot().State; got != StateIdle {
		t.Fatalf("initial state = %v, want idle", got)
	}

	tr.Start()
	tr.Transferring(42)
	tr.Verifying()
	tr.Succeed()

	mu.Lock()
	defer mu.Unlock()
	wantStates := []State{StateStarting, StateTransferring, StateVerifying, StateSucceeded}
	if len(seen) != len(wantStates) {
		t.Fatalf("got %d transitions, want %d", len(seen), len(wantStates))
	}
	for i, w := range wantStates {
		if seen[i].State != w {
			t.Fatalf("transition %d = %v, want %v", i, seen[i].State, w)
		}
	}
	if seen[3].Percent != 100 {
		t.Fatalf("success percent = %d, want exactly 100", seen[3].Percent)
	}
}

func TestTracker_ClampsTransferPercent(t *testing.T) {
	tr := NewTracker(nil)

	tr.Transferring(150)
	if got := tr.Snapshot().Percent; got != 99 {
		t.Fatalf("percent = %d, want 99 (never 100 before success)", got)
	}

	tr.Transferring(-5)
	if got := tr.Snapshot().Percent; got != 0 {
		t.Fatalf("percent = %d, want 0", got)
	}
}

func TestTracker_FailResetsToZero(t *testing.T) {
	tr := NewTracker(nil)
	tr.Transferring(70)
	tr.Fail()

	snap := tr.Snapshot()
	if snap.State != StateFailed || snap.Percent != 0 {
		t.Fatalf("snapshot = %+v, want failed/0", snap)
	}
}

func TestEstimator_SyntheticProgressStaysBelowCeiling(t *testing.T) {
	tr := NewTracker(nil)
	e := NewEstimator(tr)
	e.interval = 5 * time.Millisecond

	e.Start()
	time.Sleep(60 * time.Millisecond)

	snap := tr.Snapshot()
	if snap.State != StateTransferring {
		t.Fatalf("state = %v, want transferring", snap.State)
	}
	if snap.Percent < e.initial || snap.Percent > e.ceiling {
		t.Fatalf("percent = %d, want within [%d,%d]", snap.Percent, e.initial, e.ceiling)
	}

	e.Succeed()
	snap = tr.Snapshot()
	if snap.State != StateSucceeded || snap.Percent != 100 {
		t.Fatalf("snapshot = %+v, want succeeded/100", snap)
	}
}

func TestEstimator_FailStopsTimerAndResets(t *testing.T) {
	tr := NewTracker(nil)
	e := NewEstimator(tr)
	e.interval = 5 * time.Millisecond

	e.Start()
	time.Sleep(20 * time.Millisecond)
	e.Fail()

	snap := tr.Snapshot()
	if snap.State != StateFailed || snap.Percent != 0 {
		t.Fatalf("snapshot = %+v, want failed/0", snap)
	}

	// timer must be stopped; the snapshot may not move afterwards
	time.Sleep(20 * time.Millisecond)
	if got := tr.Snapshot(); got != snap {
		t.Fatalf("snapshot changed after terminal state: %+v", got)
	}
}

func TestEstimator_RealSignalOverridesEstimate(t *testing.T) {
	tr := NewTracker(nil)
	e := NewEstimator(tr)
	e.interval = time.Hour // no synthetic ticks during the test

	e.Start()
	e.Transferring(55)
	if got := tr.Snapshot().Percent; got != 55 {
		t.Fatalf("percent = %d, want 55", got)
	}
	e.Succeed()
}

func TestEstimator_TerminalIsIdempotent(t *testing.T) {
	tr := NewTracker(nil)
	e := NewEstimator(tr)
	e.interval = 5 * time.Millisecond

	e.Start()
	e.Succeed()
	e.Fail() // must not panic on double close
}
