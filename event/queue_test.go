package event

import "testing"

func TestQueueFIFOAndClear(t *testing.T) {
	q := NewQueue[int](2)
	for i := 1; i <= 5; i++ {
		q.Push(i)
	}

	got := q.Events()
	if len(got) != 5 {
		t.Fatalf("expected 5 events, got %d", len(got))
	}
	for i, v := range got {
		if v != i+1 {
			t.Errorf("event %d = %d, want %d", i, v, i+1)
		}
	}

	// Events does not drain
	if q.Len() != 5 {
		t.Errorf("Events must not drain, len = %d", q.Len())
	}

	q.Clear()
	if q.Len() != 0 || len(q.Events()) != 0 {
		t.Errorf("expected empty queue after Clear, len = %d", q.Len())
	}
}

func TestQueueConsume(t *testing.T) {
	q := NewEventQueue()
	if q.Consume() != nil {
		t.Error("Consume on empty queue should return nil")
	}

	q.Push(GameEvent{Type: EventPointScored, Frame: 3})
	q.Push(GameEvent{Type: EventBallSpawned, Frame: 3})

	events := q.Consume()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Type != EventPointScored || events[1].Type != EventBallSpawned {
		t.Errorf("unexpected order: %v, %v", events[0].Type, events[1].Type)
	}
	if q.Len() != 0 {
		t.Error("Consume must drain the queue")
	}

	// Consumed slice survives further pushes
	q.Push(GameEvent{Type: EventWallHit})
	if events[0].Type != EventPointScored {
		t.Error("consumed slice was overwritten by later push")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventPointScored.String() != "PointScored" {
		t.Errorf("got %q", EventPointScored.String())
	}
	if EventType(999).String() != "EventType(999)" {
		t.Errorf("got %q", EventType(999).String())
	}
}
