package input

// DefaultQueueCapacity is the queue size used by hosts when none is given.
const DefaultQueueCapacity = 256

// Queue is a bounded FIFO of raw events, filled by the host between frames
// and drained once per frame. It is not safe for concurrent use.
type Queue struct {
	events  []Event
	dropped int
}

// NewQueue creates a queue holding at most capacity events.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Queue{events: make([]Event, 0, capacity)}
}

// Push appends an event. It returns false and counts a drop when the queue is full.
func (q *Queue) Push(e Event) bool {
	if len(q.events) == cap(q.events) {
		q.dropped++
		return false
	}
	q.events = append(q.events, e)
	return true
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Dropped returns the number of events rejected since the queue was created.
func (q *Queue) Dropped() int {
	return q.dropped
}

// Drain returns the queued events in arrival order and empties the queue.
// The returned slice is owned by the caller.
func (q *Queue) Drain() []Event {
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
