package mainloop

import (
	"sync"

	"github.com/bnema/sash/internal/application/port"
)

// FrameQueue implements port.FrameScheduler for hosts that tick at a fixed
// frame rate. The first request after an idle period calls arm, which should
// schedule a call to RunFrame on the UI loop.
type FrameQueue struct {
	mu      sync.Mutex
	nextID  port.FrameID
	pending []frame
	// running holds the IDs of the batch RunFrame is working through that
	// have not run or been cancelled yet.
	running map[port.FrameID]struct{}
	armed   bool
	arm     func()
}

type frame struct {
	id port.FrameID
	fn func()
}

var _ port.FrameScheduler = (*FrameQueue)(nil)

// NewFrameQueue creates a queue. arm must not be nil.
func NewFrameQueue(arm func()) *FrameQueue {
	if arm == nil {
		panic("mainloop.NewFrameQueue: arm function cannot be nil")
	}
	return &FrameQueue{arm: arm}
}

// RequestFrame queues fn for the next frame.
func (q *FrameQueue) RequestFrame(fn func()) port.FrameID {
	q.mu.Lock()
	q.nextID++
	id := q.nextID
	q.pending = append(q.pending, frame{id: id, fn: fn})
	needArm := !q.armed
	q.armed = true
	q.mu.Unlock()

	if needArm {
		q.arm()
	}
	return id
}

// CancelFrame drops a queued callback. A callback in the batch of a running
// frame is skipped if it has not run yet.
func (q *FrameQueue) CancelFrame(id port.FrameID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, f := range q.pending {
		if f.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	delete(q.running, id)
}

// RunFrame runs the callbacks queued before the call and reports how many
// ran. Callbacks requested while running wait for the next frame.
func (q *FrameQueue) RunFrame() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.armed = false
	q.running = make(map[port.FrameID]struct{}, len(batch))
	for _, f := range batch {
		q.running[f.id] = struct{}{}
	}
	q.mu.Unlock()

	ran := 0
	for _, f := range batch {
		q.mu.Lock()
		_, live := q.running[f.id]
		delete(q.running, f.id)
		q.mu.Unlock()
		if !live {
			continue
		}
		f.fn()
		ran++
	}
	return ran
}

// Pending returns the number of queued callbacks.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
