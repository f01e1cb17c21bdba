package event

import "testing"

type countingListener struct{ n int }

func (c *countingListener) OnEvent(Event) { c.n++ }

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(EnemyKilled, a)
	d.Subscribe(EnemyKilled, b)
	d.Subscribe(LevelUp, a)

	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: LevelUp})
	if a.n != 2 || b.n != 1 {
		t.Fatalf("a=%d b=%d, expected 2 and 1", a.n, b.n)
	}

	d.Dispatch(Event{Type: GameOver})
	if a.n != 2 || b.n != 1 {
		t.Errorf("unsubscribed type delivered: a=%d b=%d", a.n, b.n)
	}
}

func TestRecorder(t *testing.T) {
	d := NewDispatcher()
	r := NewRecorder(d)
	d.Dispatch(Event{Type: LevelUp, Data: LevelUpData{Level: 2}})
	d.Dispatch(Event{Type: LevelUp, Data: LevelUpData{Level: 3}})
	if r.Counts[LevelUp] != 2 {
		t.Errorf("Counts[LevelUp] = %d", r.Counts[LevelUp])
	}
	if got := r.Last[LevelUp].Data.(LevelUpData).Level; got != 3 {
		t.Errorf("last level = %d", got)
	}
}
