package scheme

// Event names published by the renderer. The before/after pair brackets
// every paint pass; their order is part of the observable contract.
const (
	// EventBeforeRenderAll fires after the surface is cleared, before any
	// object is drawn.
	EventBeforeRenderAll = "beforeRenderAll"
	// EventAfterRenderAll fires once all visible objects have been drawn.
	EventAfterRenderAll = "afterRenderAll"
	// EventObjectRenderError fires when a single object's render fails.
	// Its payload is an ObjectRenderError; the paint pass continues.
	EventObjectRenderError = "objectRenderError"
)

// Event is a published notification.
type Event struct {
	Name    string
	Payload any
}

// ObjectRenderError is the payload of an objectRenderError event: the
// object whose render capability failed and the failure itself. A panic in
// a render capability is converted to an error.
type ObjectRenderError struct {
	Object SchemeObject
	Err    error
}

// EventHandler receives published events.
type EventHandler func(Event)

// Events is the scheme's publish/subscribe hub. Handlers run synchronously
// on the cooperative thread, in subscription order.
type Events struct {
	handlers map[string][]EventHandler
}

func newEvents() *Events {
	return &Events{handlers: make(map[string][]EventHandler)}
}

// On subscribes a handler to the named event.
func (e *Events) On(name string, h EventHandler) {
	e.handlers[name] = append(e.handlers[name], h)
}

// send publishes an event to all handlers subscribed to its name.
func (e *Events) send(name string, payload any) {
	for _, h := range e.handlers[name] {
		h(Event{Name: name, Payload: payload})
	}
}
