package drive

const (
	DRIVE_ADDED EventType = iota
	DRIVE_REMOVED
	DRIVE_REBUILT
	DRIVE_INVALID
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

type DriveAddedEvent struct {
	Drive *Drive
}

func (e DriveAddedEvent) Type() EventType { return DRIVE_ADDED }

type DriveRemovedEvent struct {
	Drive *Drive
}

func (e DriveRemovedEvent) Type() EventType { return DRIVE_REMOVED }

// DriveRebuiltEvent is sent when a drive's snapshot was rebuilt because its
// joint was reconfigured.
type DriveRebuiltEvent struct {
	Drive *Drive
}

func (e DriveRebuiltEvent) Type() EventType { return DRIVE_REBUILT }

// DriveInvalidEvent is sent once, on the step a drive stops being applied.
type DriveInvalidEvent struct {
	Drive *Drive
	Err   error
}

func (e DriveInvalidEvent) Type() EventType { return DRIVE_INVALID }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 64),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	clear(e.buffer)
	e.buffer = e.buffer[:0]
}
