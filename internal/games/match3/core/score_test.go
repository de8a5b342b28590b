package core

import "testing"

func TestScorerCombo(t *testing.T) {
	s := NewScorer(0)

	events := []Event{
		TilesDestroyed{Wave: 1, Count: 3},
		TilesDestroyed{Wave: 2, Count: 4},
		CascadeFinished{Waves: 2, Destroyed: 7},
		TilesDestroyed{Wave: 1, Count: 3},
		Shuffled{Attempt: 1},
	}
	for _, e := range events {
		s.Handle(e)
	}

	// 100*3*1 + 100*4*2 + 100*3*1
	if s.Total() != 1400 {
		t.Errorf("Total() = %d, expected 1400", s.Total())
	}
	if s.BestCombo() != 2 {
		t.Errorf("BestCombo() = %d, expected 2", s.BestCombo())
	}
	if s.Combo() != 1 {
		t.Errorf("Combo() = %d, expected 1", s.Combo())
	}
	if s.Destroyed() != 10 {
		t.Errorf("Destroyed() = %d, expected 10", s.Destroyed())
	}

	s.Reset()
	if s.Total() != 0 || s.Combo() != 0 || s.BestCombo() != 0 {
		t.Error("Reset did not clear the scorer")
	}
}

func TestScorerCustomPerTile(t *testing.T) {
	s := NewScorer(10)
	s.Listener()(TilesDestroyed{Count: 5})
	if s.Total() != 50 {
		t.Errorf("Total() = %d, expected 50", s.Total())
	}
}

func TestFanoutAndChannelListener(t *testing.T) {
	var log EventLog
	ch := make(chan Event, 1)
	l := Fanout(log.Listener(), nil, ChannelListener(ch))

	l(Shuffled{Attempt: 1})
	l(Shuffled{Attempt: 2}) // Dropped by the full channel.

	if len(log.Events()) != 2 {
		t.Errorf("log has %d events, expected 2", len(log.Events()))
	}
	if e := <-ch; e != (Shuffled{Attempt: 1}) {
		t.Errorf("channel event = %#v", e)
	}
	if len(log.Drain()) != 2 || len(log.Events()) != 0 {
		t.Error("Drain should empty the log")
	}
}
