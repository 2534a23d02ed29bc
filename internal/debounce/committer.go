// Package debounce coalesces bursts of UI-driven changes into single
// deferred commits.
package debounce

import (
	"sync"
	"time"
)

// Policy controls how a burst of Schedule calls maps onto the timer.
type Policy int

const (
	// FixedWindow starts one timer on the first call of a burst and never
	// resets it. A continuous drag still commits at a steady rate.
	FixedWindow Policy = iota
	// Trailing restarts the timer on every call, committing only once the
	// calls stop for the full delay.
	Trailing
)

func (p Policy) String() string {
	switch p {
	case FixedWindow:
		return "fixed"
	case Trailing:
		return "trailing"
	default:
		return "unknown"
	}
}

// ParsePolicy maps a config value onto a Policy. The empty string selects
// FixedWindow.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "", "fixed":
		return FixedWindow, true
	case "trailing":
		return Trailing, true
	}
	return FixedWindow, false
}

// Option configures a Committer.
type Option func(*Committer)

// WithPolicy selects the timer policy.
func WithPolicy(p Policy) Option {
	return func(c *Committer) { c.policy = p }
}

// CommitFunc persists a value.
type CommitFunc func(value string)

// Committer is either idle or holds one pending value and one timer. The
// zero value is not usable; call New.
type Committer struct {
	policy Policy

	// commitMu orders commits: a value is taken and committed under it, so
	// a timer commit can never land after a newer Flush.
	commitMu sync.Mutex

	mu      sync.Mutex
	pending bool
	value   string
	commit  CommitFunc
	timer   *time.Timer
	done    chan struct{}
	gen     uint64
}

// New returns an idle Committer.
func New(opts ...Option) *Committer {
	c := &Committer{policy: FixedWindow}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Policy returns the committer's timer policy.
func (c *Committer) Policy() Policy { return c.policy }

// Schedule records value as the latest value to commit. The first call of a
// burst arms a timer for delay; later calls only replace the value (and
// restart the timer under Trailing). When the timer fires commit is called
// with the latest value and the returned channel is closed. Every call in
// the same burst gets the same channel.
func (c *Committer) Schedule(value string, delay time.Duration, commit CommitFunc) <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = value
	c.commit = commit

	if !c.pending {
		c.pending = true
		c.done = make(chan struct{})
		c.arm(delay)
		return c.done
	}
	if c.policy == Trailing {
		c.timer.Stop()
		c.arm(delay)
	}
	return c.done
}

// arm must be called with mu held.
func (c *Committer) arm(delay time.Duration) {
	c.gen++
	gen := c.gen
	c.timer = time.AfterFunc(delay, func() { c.fire(gen) })
}

func (c *Committer) fire(gen uint64) {
	c.commitMu.Lock()
	defer c.commitMu.Unlock()

	c.mu.Lock()
	if !c.pending || gen != c.gen {
		// superseded by a restart, Flush or Stop
		c.mu.Unlock()
		return
	}
	value, commit, done := c.takeLocked()
	c.mu.Unlock()

	if commit != nil {
		commit(value)
	}
	close(done)
}

func (c *Committer) takeLocked() (string, CommitFunc, chan struct{}) {
	value, commit, done := c.value, c.commit, c.done
	if c.timer != nil {
		c.timer.Stop()
	}
	c.pending = false
	c.value = ""
	c.commit = nil
	c.timer = nil
	c.done = nil
	c.gen++
	return value, commit, done
}

// Pending returns the value waiting to be committed, if any.
func (c *Committer) Pending() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.pending
}

// Flush commits the pending value immediately on the calling goroutine.
// It reports whether there was anything to commit.
func (c *Committer) Flush() bool {
	c.commitMu.Lock()
	defer c.commitMu.Unlock()

	c.mu.Lock()
	if !c.pending {
		c.mu.Unlock()
		return false
	}
	value, commit, done := c.takeLocked()
	c.mu.Unlock()

	if commit != nil {
		commit(value)
	}
	close(done)
	return true
}

// Stop drops any pending value without committing it. Waiters on the
// completed channel are released.
func (c *Committer) Stop() {
	c.mu.Lock()
	if !c.pending {
		c.mu.Unlock()
		return
	}
	_, _, done := c.takeLocked()
	c.mu.Unlock()
	close(done)
}
