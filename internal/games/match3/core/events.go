package core

// Event is a notification emitted by the engine.
type Event interface {
	engineEvent()
}

// TilesDestroyed is emitted once per removal wave that destroyed tiles.
type TilesDestroyed struct {
	Wave  int // 1-based wave index within the cascade session
	Count int // Tiles removed in this wave
}

func (TilesDestroyed) engineEvent() {}

// CascadeFinished is emitted once per settle-to-quiescence cycle.
// Scoring uses it to reset the combo.
type CascadeFinished struct {
	Waves     int
	Destroyed int
}

func (CascadeFinished) engineEvent() {}

// Shuffled is emitted after each reshuffle of an unplayable grid.
type Shuffled struct {
	Attempt int
}

func (Shuffled) engineEvent() {}

// PhaseChanged is emitted on every board phase transition.
type PhaseChanged struct {
	From Phase
	To   Phase
}

func (PhaseChanged) engineEvent() {}

// Listener receives engine events synchronously.
type Listener func(Event)

// Fanout returns a listener that forwards to every non-nil listener in order.
func Fanout(listeners ...Listener) Listener {
	return func(e Event) {
		for _, l := range listeners {
			if l != nil {
				l(e)
			}
		}
	}
}

// ChannelListener returns a listener that writes events into ch.
// Events are dropped when ch is full so the engine never blocks.
func ChannelListener(ch chan<- Event) Listener {
	return func(e Event) {
		select {
		case ch <- e:
		default:
		}
	}
}

// EventLog records events for later draining.
type EventLog struct {
	events []Event
}

// Listener returns a listener appending to the log.
func (l *EventLog) Listener() Listener {
	return func(e Event) {
		l.events = append(l.events, e)
	}
}

// Events returns the recorded events without clearing them.
func (l *EventLog) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Drain returns the recorded events and clears the log.
func (l *EventLog) Drain() []Event {
	out := l.events
	l.events = nil
	return out
}

// DestroyedCounts returns the Count of every recorded TilesDestroyed event.
func (l *EventLog) DestroyedCounts() []int {
	var counts []int
	for _, e := range l.events {
		if td, ok := e.(TilesDestroyed); ok {
			counts = append(counts, td.Count)
		}
	}
	return counts
}
