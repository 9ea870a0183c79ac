package frame

import "time"

// RequestID identifies a scheduled frame callback. Zero is never issued.
type RequestID uint64

// Callback runs once, on the frame after it was requested.
type Callback func(now time.Duration)

// Scheduler is the "run once before the next repaint" contract.
type Scheduler interface {
	Schedule(cb Callback) RequestID
	Cancel(id RequestID)
}

type request struct {
	id RequestID
	cb Callback
}

// Loop is a single-threaded frame scheduler modelled on requestAnimationFrame.
// Callbacks requested while a frame is running are deferred to the next frame,
// so a self-rescheduling callback runs exactly once per RunFrame.
type Loop struct {
	clock   Clock
	nextID  RequestID
	pending []request
	running []request
}

// NewLoop creates a frame loop that stamps frames with the given clock.
func NewLoop(clock Clock) *Loop {
	return &Loop{clock: clock}
}

// Schedule requests cb for the next frame.
func (l *Loop) Schedule(cb Callback) RequestID {
	l.nextID++
	l.pending = append(l.pending, request{id: l.nextID, cb: cb})
	return l.nextID
}

// Cancel removes a pending request. Unknown or already-run ids are ignored.
func (l *Loop) Cancel(id RequestID) {
	if id == 0 {
		return
	}
	for i, r := range l.pending {
		if r.id == id {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
	// Cancelling a callback that is queued later in the frame currently running.
	for i := range l.running {
		if l.running[i].id == id {
			l.running[i].cb = nil
			return
		}
	}
}

// RunFrame runs every callback requested before this call and returns how many ran.
func (l *Loop) RunFrame() int {
	if len(l.pending) == 0 {
		return 0
	}
	now := l.clock.Now()

	l.running, l.pending = l.pending, l.running[:0]
	ran := 0
	for i := range l.running {
		cb := l.running[i].cb
		if cb == nil {
			continue
		}
		l.running[i].cb = nil
		cb(now)
		ran++
	}
	l.running = l.running[:0]
	return ran
}

// Pending reports how many callbacks are waiting for the next frame.
func (l *Loop) Pending() int {
	return len(l.pending)
}
