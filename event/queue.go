package event

// Queue is a single-threaded FIFO drained once per tick
// Producers push during the tick, every consumer reads Events, the owner calls Clear at the tick boundary
type Queue[T any] struct {
	items []T
}

// NewQueue creates a queue with the given initial capacity
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Push appends an item
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Events returns pending items in FIFO order without removing them
// The slice is only valid until the next Clear
func (q *Queue[T]) Events() []T {
	return q.items
}

// Consume returns a copy of all pending items and clears the queue
func (q *Queue[T]) Consume() []T {
	if len(q.items) == 0 {
		return nil
	}
	out := make([]T, len(q.items))
	copy(out, q.items)
	q.Clear()
	return out
}

// Clear drops pending items, keeping the backing array
func (q *Queue[T]) Clear() {
	var zero T
	for i := range q.items {
		q.items[i] = zero
	}
	q.items = q.items[:0]
}

// Len returns the pending item count
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// EventQueue carries game events between systems within a frame
type EventQueue = Queue[GameEvent]

// NewEventQueue creates an empty game event queue
func NewEventQueue() *EventQueue {
	return NewQueue[GameEvent](16)
}
