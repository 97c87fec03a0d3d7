package clock

import (
	"sync"
	"time"
)

// Ticker publishes the current wall-clock second to any number of subscribers.
// It owns exactly one goroutine, started by NewTicker and ended by Stop.
type Ticker struct {
	interval time.Duration
	now      func() time.Time

	mu     sync.Mutex
	cur    time.Time
	subs   map[uint64]chan time.Time
	nextID uint64
	closed bool

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func NewTicker(interval time.Duration, now func() time.Time) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	if now == nil {
		now = time.Now
	}

	t := &Ticker{
		interval: interval,
		now:      now,
		cur:      now().Truncate(time.Second),
		subs:     make(map[uint64]chan time.Time),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go t.run()
	return t
}

func (t *Ticker) run() {
	defer close(t.done)

	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-tk.C:
			t.publish(t.now().Truncate(time.Second))
		}
	}
}

func (t *Ticker) publish(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cur = now
	for _, ch := range t.subs {
		// Slow readers only ever see the latest tick.
		select {
		case <-ch:
		default:
		}
		ch <- now
	}
}

// Now returns the most recent tick.
func (t *Ticker) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.cur
}

// Subscribe returns a channel receiving every tick until cancel is called or
// the ticker is stopped; either closes the channel. The current time is
// delivered immediately.
func (t *Ticker) Subscribe() (<-chan time.Time, func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ch := make(chan time.Time, 1)
	if t.closed {
		close(ch)
		return ch, func() {}
	}

	id := t.nextID
	t.nextID++
	t.subs[id] = ch
	ch <- t.cur

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()

			if c, ok := t.subs[id]; ok {
				delete(t.subs, id)
				close(c)
			}
		})
	}
	return ch, cancel
}

// Subscribers reports how many subscriptions are live.
func (t *Ticker) Subscribers() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.subs)
}

// Stop ends the ticker goroutine and closes every subscriber channel.
// It is safe to call more than once.
func (t *Ticker) Stop() {
	t.once.Do(func() {
		close(t.stop)
		<-t.done

		t.mu.Lock()
		defer t.mu.Unlock()

		t.closed = true
		for id, ch := range t.subs {
			delete(t.subs, id)
			close(ch)
		}
	})
}
