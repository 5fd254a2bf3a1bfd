package domain

import "encoding/json"

// EventName identifies a push event. The payload is always the full current
// record so recipients can replace-or-insert without prior state.
type EventName string

const (
	EventLeaveRequestUpdated    EventName = "leaveRequestUpdated"
	EventOvertimeRequestUpdated EventName = "overtimeRequestUpdated"
	EventOffsetRequestUpdated   EventName = "offsetRequestUpdated"
	EventDocumentUpdated        EventName = "documentUpdated"
	EventDocumentDeleted        EventName = "documentDeleted"
	EventIncidentCreated        EventName = "incidentCreated"
	EventIncidentUpdated        EventName = "incidentUpdated"
	EventIncidentDeleted        EventName = "incidentDeleted"
)

// Event is the wire envelope for one push notification. Events are derived
// from mutations and never persisted.
type Event struct {
	Name    EventName       `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

func NewEvent(name EventName, record any) (Event, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return Event{}, err
	}
	return Event{Name: name, Payload: payload}, nil
}
