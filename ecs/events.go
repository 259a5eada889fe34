package ecs

// Event is a payload raised by one system for systems later in the tick.
// Tick is the world tick the event was raised on.
type Event struct {
	Type string
	Tick uint64
	Data any
}

// EventQueue is a FIFO drained by the stats system at the end of each tick.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Emit queues an event stamped with the current tick.
func (w *World) Emit(typ string, data any) {
	if w == nil {
		return
	}
	w.events.Push(Event{Type: typ, Tick: w.tick, Data: data})
}
