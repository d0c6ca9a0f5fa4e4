package clock

import "time"

// Clock abstracts the wall clock so deadline math and the tick loop can be
// tested deterministically. Production code uses Real; tests substitute Fake.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// Since returns the duration elapsed since t.
	Since(t time.Time) time.Duration
	// NewTicker returns a Ticker that fires every d.
	NewTicker(d time.Duration) Ticker
}

// Ticker abstracts time.Ticker so fake clocks can drive ticks by hand.
type Ticker interface {
	// C returns the channel on which ticks are delivered.
	C() <-chan time.Time
	// Stop shuts the ticker down. It is safe to call more than once.
	Stop()
}

// Real is a zero-value Clock backed by the time package.
type Real struct{}

func (Real) Now() time.Time                  { return time.Now() }
func (Real) Since(t time.Time) time.Duration { return time.Since(t) }

func (Real) NewTicker(d time.Duration) Ticker {
	return &realTicker{inner: time.NewTicker(d)}
}

type realTicker struct {
	inner *time.Ticker
}

func (t *realTicker) C() <-chan time.Time { return t.inner.C }
func (t *realTicker) Stop()               { t.inner.Stop() }

// Fake is a manually-advanced Clock for tests. It is not safe for concurrent
// use; tests drive it from a single goroutine.
type Fake struct {
	Current time.Time
	tickers []*FakeTicker
}

// NewFake returns a Fake clock pinned at start.
func NewFake(start time.Time) *Fake {
	return &Fake{Current: start}
}

func (f *Fake) Now() time.Time                  { return f.Current }
func (f *Fake) Since(t time.Time) time.Duration { return f.Current.Sub(t) }

// NewTicker returns a ticker that honors its interval: it fires during an
// Advance only once at least d has elapsed since its creation or previous
// fire, and at most once per Advance.
func (f *Fake) NewTicker(d time.Duration) Ticker {
	t := &FakeTicker{
		ch:       make(chan time.Time, 1),
		active:   true,
		interval: d,
		next:     f.Current.Add(d),
	}
	f.tickers = append(f.tickers, t)
	return t
}

// Advance moves the clock forward and fires every active ticker whose
// interval has elapsed.
func (f *Fake) Advance(d time.Duration) {
	f.Current = f.Current.Add(d)
	for _, t := range f.tickers {
		t.fire(f.Current)
	}
}

// ActiveTickers reports how many tickers have been created but not stopped.
func (f *Fake) ActiveTickers() int {
	n := 0
	for _, t := range f.tickers {
		if t.active {
			n++
		}
	}
	return n
}

// FakeTicker is a Ticker fired by Fake.Advance.
type FakeTicker struct {
	ch       chan time.Time
	active   bool
	interval time.Duration
	next     time.Time
}

func (t *FakeTicker) C() <-chan time.Time { return t.ch }
func (t *FakeTicker) Stop()               { t.active = false }

func (t *FakeTicker) fire(now time.Time) {
	if !t.active || now.Before(t.next) {
		return
	}
	t.next = now.Add(t.interval)
	select {
	case t.ch <- now:
	default:
	}
}
