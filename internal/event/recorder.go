// internal/event/recorder.go
package event

// Recorder counts events by type and keeps the last one of each.
type Recorder struct {
	Counts map[EventType]int
	Last   map[EventType]Event
}

// NewRecorder creates a recorder subscribed to every type on d.
func NewRecorder(d *Dispatcher) *Recorder {
	r := &Recorder{
		Counts: make(map[EventType]int),
		Last:   make(map[EventType]Event),
	}
	for _, t := range AllTypes {
		d.Subscribe(t, r)
	}
	return r
}

// OnEvent implements Listener.
func (r *Recorder) OnEvent(e Event) {
	r.Counts[e.Type]++
	r.Last[e.Type] = e
}
