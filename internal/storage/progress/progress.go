// Package progress models upload progress as an explicit state machine.
// Transports that expose real transfer callbacks drive a Tracker directly;
// transports with no signal wrap it in an Estimator that synthesizes
// progress on a timer. Both sides of the split sit behind the same
// Reporter interface, so callers never know which one they got.
package progress

import (
	"math/rand"
	"sync"
	"time"
)

// State enumerates the phases of one upload session.
type State int

const (
	StateIdle State = iota
	StateStarting
	StateTransferring
	StateVerifying
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StateTransferring:
		return "transferring"
	case StateVerifying:
		return "verifying"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Snapshot is an immutable view of the session state.
type Snapshot struct {
	State   State
	Percent int
}

// Reporter receives progress transitions for a single upload session.
// A Reporter instance must not be shared between concurrent uploads.
type Reporter interface {
	Start()
	Transferring(pct int)
	Verifying()
	Succeed()
	Fail()
}

// Nop is a Reporter that discards everything.
type Nop struct{}

func (Nop) Start()           {}
func (Nop) Transferring(int) {}
func (Nop) Verifying()       {}
func (Nop) Succeed()         {}
func (Nop) Fail()            {}

// Tracker is the canonical state machine. Percent is clamped to [0,99]
// while transferring; it reaches exactly 100 only on Succeed and resets to
// 0 on Fail.
type Tracker struct {
	mu       sync.Mutex
	snap     Snapshot
	onChange func(Snapshot)
}

// NewTracker builds a Tracker in StateIdle. onChange may be nil; when set it
// is invoked after every transition with the new snapshot.
func NewTracker(onChange func(Snapshot)) *Tracker {
	return &Tracker{snap: Snapshot{State: StateIdle}, onChange: onChange}
}

func (t *Tracker) set(s Snapshot) {
	t.mu.Lock()
	t.snap = s
	cb := t.onChange
	t.mu.Unlock()
	if cb != nil {
		cb(s)
	}
}

func (t *Tracker) Start() {
	t.set(Snapshot{State: StateStarting})
}

func (t *Tracker) Transferring(pct int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 99 {
		pct = 99
	}
	t.set(Snapshot{State: StateTransferring, Percent: pct})
}

func (t *Tracker) Verifying() {
	t.mu.Lock()
	pct := t.snap.Percent
	t.mu.Unlock()
	t.set(Snapshot{State: StateVerifying, Percent: pct})
}

func (t *Tracker) Succeed() {
	t.set(Snapshot{State: StateSucceeded, Percent: 100})
}

func (t *Tracker) Fail() {
	t.set(Snapshot{State: StateFailed, Percent: 0})
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap
}

// Estimator drives a Reporter with synthetic progress: an initial jump on
// Start, then bounded random increments on a fixed interval up to a ceiling
// below 100. Terminal transitions stop the timer and pass through.
type Estimator struct {
	r        Reporter
	interval time.Duration
	initial  int
	ceiling  int
	maxStep  int

	mu     sync.Mutex
	pct    int
	halted bool
	stop   chan struct{}
	once   *sync.Once
}

// NewEstimator wraps r with timer-driven estimation. Defaults: 300ms
// interval, jump to 10%, random steps of 1-15%, ceiling 90%.
func NewEstimator(r Reporter) *Estimator {
	return &Estimator{
		r:        r,
		interval: 300 * time.Millisecond,
		initial:  10,
		ceiling:  90,
		maxStep:  15,
	}
}

// Start begins the session and launches the estimation timer.
func (e *Estimator) Start() {
	e.mu.Lock()
	e.pct = e.initial
	e.halted = false
	e.stop = make(chan struct{})
	e.once = &sync.Once{}
	stop := e.stop
	e.mu.Unlock()

	e.r.Start()
	e.r.Transferring(e.initial)

	go func() {
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				e.mu.Lock()
				// a tick can land after a terminal transition; drop it
				if e.halted {
					e.mu.Unlock()
					return
				}
				if e.pct < e.ceiling {
					e.pct += rand.Intn(e.maxStep) + 1
					if e.pct > e.ceiling {
						e.pct = e.ceiling
					}
				}
				// report under the lock so halt() cannot interleave a
				// terminal transition before a stale tick lands
				e.r.Transferring(e.pct)
				e.mu.Unlock()
			case <-stop:
				return
			}
		}
	}()
}

// Transferring feeds a real progress signal through, overriding the estimate.
func (e *Estimator) Transferring(pct int) {
	e.mu.Lock()
	if pct > e.pct {
		e.pct = pct
	}
	e.mu.Unlock()
	e.r.Transferring(pct)
}

func (e *Estimator) Verifying() {
	e.halt()
	e.r.Verifying()
}

func (e *Estimator) Succeed() {
	e.halt()
	e.r.Succeed()
}

func (e *Estimator) Fail() {
	e.halt()
	e.r.Fail()
}

func (e *Estimator) halt() {
	e.mu.Lock()
	e.halted = true
	once, stop := e.once, e.stop
	e.mu.Unlock()
	if once == nil {
		return
	}
	once.Do(func() { close(stop) })
}
