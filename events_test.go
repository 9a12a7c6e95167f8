package drive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type eventCapture struct {
	events []Event
}

func (ec *eventCapture) capture(event Event) {
	ec.events = append(ec.events, event)
}

func (ec *eventCapture) reset() {
	ec.events = ec.events[:0]
}

func (ec *eventCapture) count() int {
	return len(ec.events)
}

func (ec *eventCapture) hasEventType(eventType EventType) bool {
	for _, e := range ec.events {
		if e.Type() == eventType {
			return true
		}
	}
	return false
}

// =============================================================================
// Subscribe and Listeners Tests
// =============================================================================

func TestEvents_Subscribe(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}

	events.Subscribe(DRIVE_ADDED, capture.capture)

	if len(events.listeners[DRIVE_ADDED]) != 1 {
		t.Errorf("Expected 1 listener for DRIVE_ADDED, got %d", len(events.listeners[DRIVE_ADDED]))
	}
}

func TestEvents_SubscribeOnZeroValue(t *testing.T) {
	var events Events
	capture := &eventCapture{}

	events.Subscribe(DRIVE_REMOVED, capture.capture)
	events.emit(DriveRemovedEvent{})
	events.flush()

	assert.Equal(t, 1, capture.count())
}

func TestEvents_MultipleListeners(t *testing.T) {
	events := NewEvents()
	first := &eventCapture{}
	second := &eventCapture{}

	events.Subscribe(DRIVE_REBUILT, first.capture)
	events.Subscribe(DRIVE_REBUILT, second.capture)

	events.emit(DriveRebuiltEvent{})
	events.flush()

	assert.Equal(t, 1, first.count())
	assert.Equal(t, 1, second.count())
}

func TestEvents_OnlyMatchingTypeIsDelivered(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	events.Subscribe(DRIVE_INVALID, capture.capture)

	events.emit(DriveAddedEvent{})
	events.emit(DriveInvalidEvent{})
	events.emit(DriveRemovedEvent{})
	events.flush()

	assert.Equal(t, 1, capture.count())
	assert.True(t, capture.hasEventType(DRIVE_INVALID))
	assert.False(t, capture.hasEventType(DRIVE_ADDED))
}

// =============================================================================
// Flush Tests
// =============================================================================

func TestEvents_FlushClearsBuffer(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	events.Subscribe(DRIVE_ADDED, capture.capture)

	events.emit(DriveAddedEvent{})
	events.flush()
	assert.Equal(t, 1, capture.count())
	assert.Empty(t, events.buffer)

	capture.reset()
	events.flush()
	assert.Equal(t, 0, capture.count(), "a second flush must not resend events")
}

func TestEvents_FlushKeepsOrder(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	for _, eventType := range []EventType{DRIVE_ADDED, DRIVE_REMOVED, DRIVE_REBUILT, DRIVE_INVALID} {
		events.Subscribe(eventType, capture.capture)
	}

	events.emit(DriveAddedEvent{})
	events.emit(DriveRebuiltEvent{})
	events.emit(DriveInvalidEvent{})
	events.emit(DriveRemovedEvent{})
	events.flush()

	want := []EventType{DRIVE_ADDED, DRIVE_REBUILT, DRIVE_INVALID, DRIVE_REMOVED}
	got := make([]EventType, 0, capture.count())
	for _, e := range capture.events {
		got = append(got, e.Type())
	}
	assert.Equal(t, want, got)
}

func TestEvents_Types(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  EventType
	}{
		{"added", DriveAddedEvent{}, DRIVE_ADDED},
		{"removed", DriveRemovedEvent{}, DRIVE_REMOVED},
		{"rebuilt", DriveRebuiltEvent{}, DRIVE_REBUILT},
		{"invalid", DriveInvalidEvent{}, DRIVE_INVALID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.Type())
		})
	}
}
