package tinsel

// Timer is a one-shot callback scheduled on a Timers queue.
type Timer struct {
	remaining float64
	fn        func()
	stopped   bool
}

// Stop cancels the timer. Stopping a fired or stopped timer is a no-op.
func (t *Timer) Stop() {
	if t != nil {
		t.stopped = true
	}
}

// Pending reports whether the timer has neither fired nor been stopped.
func (t *Timer) Pending() bool {
	return t != nil && !t.stopped
}

// Timers is a frame-driven queue of one-shot timers. Time advances only when
// Advance is called; callbacks run synchronously inside Advance.
type Timers struct {
	queue  []*Timer
	firing []*Timer
}

// After schedules fn to run once d seconds of Advance time have elapsed.
func (q *Timers) After(d float64, fn func()) *Timer {
	t := &Timer{remaining: d, fn: fn}
	q.queue = append(q.queue, t)
	return t
}

// Advance moves time forward by dt and fires every timer that expires.
// Timers scheduled by a callback start counting on the next Advance.
func (q *Timers) Advance(dt float64) {
	due := q.queue
	q.queue = nil
	q.firing = due
	defer func() { q.firing = nil }()
	for _, t := range due {
		if t.stopped {
			continue
		}
		t.remaining -= dt
		if t.remaining > 0 {
			q.queue = append(q.queue, t)
			continue
		}
		t.stopped = true
		t.fn()
	}
}

// Len returns the number of pending timers.
func (q *Timers) Len() int {
	n := 0
	for _, t := range q.queue {
		if !t.stopped {
			n++
		}
	}
	return n
}

// StopAll cancels every pending timer.
func (q *Timers) StopAll() {
	for _, t := range q.firing {
		t.stopped = true
	}
	for _, t := range q.queue {
		t.stopped = true
	}
	q.queue = nil
}
