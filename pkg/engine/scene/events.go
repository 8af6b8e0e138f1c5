package scene

// Event names a message published on the event bus.
type Event string

// Listener receives an event payload.
type Listener func(payload any)

type subscription struct {
	id int
	fn Listener
}

// Emitter is a synchronous publish/subscribe bus shared by all scenes.
type Emitter struct {
	nextID    int
	listeners map[Event][]subscription
}

// NewEmitter creates an empty event bus.
func NewEmitter() *Emitter {
	return &Emitter{listeners: make(map[Event][]subscription)}
}

// On subscribes fn to an event. The returned func removes the subscription.
func (e *Emitter) On(event Event, fn Listener) (off func()) {
	e.nextID++
	id := e.nextID
	e.listeners[event] = append(e.listeners[event], subscription{id: id, fn: fn})

	return func() {
		subs := e.listeners[event]
		for i, s := range subs {
			if s.id == id {
				e.listeners[event] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers payload to every listener of event, in subscription order.
func (e *Emitter) Emit(event Event, payload any) {
	subs := e.listeners[event]
	if len(subs) == 0 {
		return
	}
	// Listeners may unsubscribe while being called
	snapshot := make([]subscription, len(subs))
	copy(snapshot, subs)
	for _, s := range snapshot {
		s.fn(payload)
	}
}

// ListenerCount returns the number of listeners for an event.
func (e *Emitter) ListenerCount(event Event) int {
	return len(e.listeners[event])
}
