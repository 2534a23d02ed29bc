package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) commit(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("commit did not complete")
	}
}

func TestSchedule_CoalescesBurst(t *testing.T) {
	c := New()
	var r recorder

	var chans []<-chan struct{}
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		chans = append(chans, c.Schedule(v, 20*time.Millisecond, r.commit))
	}
	for _, ch := range chans[1:] {
		assert.Equal(t, chans[0], ch, "every call in a burst shares the completed channel")
	}

	pending, ok := c.Pending()
	assert.True(t, ok)
	assert.Equal(t, "e", pending)

	waitDone(t, chans[0])
	assert.Equal(t, []string{"e"}, r.got())

	_, ok = c.Pending()
	assert.False(t, ok)
}

func TestSchedule_NewBurstAfterCommit(t *testing.T) {
	c := New()
	var r recorder

	first := c.Schedule("one", 10*time.Millisecond, r.commit)
	waitDone(t, first)

	second := c.Schedule("two", 10*time.Millisecond, r.commit)
	assert.NotEqual(t, first, second)
	waitDone(t, second)

	assert.Equal(t, []string{"one", "two"}, r.got())
}

func TestSchedule_FixedWindowDoesNotReset(t *testing.T) {
	c := New()
	var r recorder

	done := c.Schedule("a", 100*time.Millisecond, r.commit)
	time.Sleep(60 * time.Millisecond)
	c.Schedule("b", 100*time.Millisecond, r.commit)

	select {
	case <-done:
	case <-time.After(80 * time.Millisecond):
		t.Fatal("fixed window should fire 100ms after the first call")
	}
	assert.Equal(t, []string{"b"}, r.got())
}

func TestSchedule_TrailingRestartsTimer(t *testing.T) {
	c := New(WithPolicy(Trailing))
	require.Equal(t, Trailing, c.Policy())
	var r recorder

	done := c.Schedule("a", 100*time.Millisecond, r.commit)
	time.Sleep(60 * time.Millisecond)
	c.Schedule("b", 100*time.Millisecond, r.commit)
	time.Sleep(60 * time.Millisecond)

	assert.Empty(t, r.got(), "trailing timer should have been restarted")
	waitDone(t, done)
	assert.Equal(t, []string{"b"}, r.got())
}

func TestFlush(t *testing.T) {
	c := New()
	var r recorder

	assert.False(t, c.Flush())

	done := c.Schedule("x", time.Hour, r.commit)
	assert.True(t, c.Flush())
	assert.Equal(t, []string{"x"}, r.got())

	select {
	case <-done:
	default:
		t.Fatal("flush should close the completed channel")
	}
	_, ok := c.Pending()
	assert.False(t, ok)
}

func TestFlush_WaitsForRunningCommit(t *testing.T) {
	c := New()
	var r recorder
	entered := make(chan struct{})
	release := make(chan struct{})
	commit := func(v string) {
		r.commit(v)
		if v == "old" {
			close(entered)
			<-release
		}
	}

	c.Schedule("old", time.Millisecond, commit)
	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("timer commit did not start")
	}

	c.Schedule("new", time.Hour, commit)
	flushed := make(chan struct{})
	go func() {
		c.Flush()
		close(flushed)
	}()

	select {
	case <-flushed:
		t.Fatal("Flush committed while an older commit was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	waitDone(t, flushed)
	assert.Equal(t, []string{"old", "new"}, r.got())
}

func TestStop(t *testing.T) {
	c := New()
	var r recorder

	done := c.Schedule("x", 20*time.Millisecond, r.commit)
	c.Stop()
	waitDone(t, done)

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, r.got())

	c.Stop()
}

func TestSchedule_ConcurrentCallers(t *testing.T) {
	c := New()
	var r recorder

	var wg sync.WaitGroup
	chans := make(chan (<-chan struct{}), 50)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			chans <- c.Schedule("v", 30*time.Millisecond, r.commit)
		}()
	}
	wg.Wait()
	close(chans)

	for ch := range chans {
		waitDone(t, ch)
	}
	// A straggler may start a second burst; nothing else may be committed.
	got := r.got()
	require.NotEmpty(t, got)
	for _, v := range got {
		assert.Equal(t, "v", v)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want Policy
		ok   bool
	}{
		{"", FixedWindow, true},
		{"fixed", FixedWindow, true},
		{"trailing", Trailing, true},
		{"leading", FixedWindow, false},
	}
	for _, tt := range tests {
		got, ok := ParsePolicy(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParsePolicy(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	assert.Equal(t, "trailing", Trailing.String())
}
