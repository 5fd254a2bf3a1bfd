package client

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"employee-portal/internal/domain"
)

// Kind is the client-side collection an event belongs to.
type Kind string

const (
	KindRequests  Kind = "requests"
	KindDocuments Kind = "documents"
	KindIncidents Kind = "incidents"
)

// Entry is one record in a collection: the id extracted from the payload
// plus the full record as received. Payloads are always complete, so an
// entry can be replaced without consulting prior state.
type Entry struct {
	ID     uuid.UUID
	Record json.RawMessage
}

// Reconciler merges inbound push events into in-memory collections keyed by
// entity kind and id, shared by the admin and employee dashboard states.
// Applying the same event twice yields the same state as applying it once.
type Reconciler struct {
	mu          sync.RWMutex
	collections map[Kind][]Entry
}

func NewReconciler() *Reconciler {
	return &Reconciler{collections: make(map[Kind][]Entry)}
}

// KindForEvent maps an event name to its collection; the second return is
// true when the event removes the record instead of upserting it.
func KindForEvent(name domain.EventName) (Kind, bool, bool) {
	switch name {
	case domain.EventLeaveRequestUpdated, domain.EventOvertimeRequestUpdated, domain.EventOffsetRequestUpdated:
		return KindRequests, false, true
	case domain.EventDocumentUpdated:
		return KindDocuments, false, true
	case domain.EventDocumentDeleted:
		return KindDocuments, true, true
	case domain.EventIncidentCreated, domain.EventIncidentUpdated:
		return KindIncidents, false, true
	case domain.EventIncidentDeleted:
		return KindIncidents, true, true
	}
	return "", false, false
}

// Apply merges one event. Unknown events are ignored so older clients
// survive newer servers.
func (r *Reconciler) Apply(event domain.Event) error {
	kind, removal, ok := KindForEvent(event.Name)
	if !ok {
		return nil
	}

	var probe struct {
		ID uuid.UUID `json:"id"`
	}
	if err := json.Unmarshal(event.Payload, &probe); err != nil {
		return err
	}

	if removal {
		r.Remove(kind, probe.ID)
		return nil
	}
	r.Upsert(kind, Entry{ID: probe.ID, Record: event.Payload})
	return nil
}

// Upsert replaces an existing entry in place, preserving its position;
// otherwise the record is new and goes to the front (lists are newest
// first).
func (r *Reconciler) Upsert(kind Kind, entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.collections[kind]
	for i := range entries {
		if entries[i].ID == entry.ID {
			entries[i] = entry
			return
		}
	}
	r.collections[kind] = append([]Entry{entry}, entries...)
}

func (r *Reconciler) Remove(kind Kind, id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.collections[kind]
	for i := range entries {
		if entries[i].ID == id {
			r.collections[kind] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// Reset replaces a collection wholesale; used after a refetch repairs state
// missed while disconnected.
func (r *Reconciler) Reset(kind Kind, entries []Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.collections[kind] = append([]Entry(nil), entries...)
}

// Snapshot returns a copy of a collection in display order.
func (r *Reconciler) Snapshot(kind Kind) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Entry(nil), r.collections[kind]...)
}

// View returns the entries matching a tab filter without mutating the
// collection: records for other tabs stay stored and reappear when the user
// switches back.
func (r *Reconciler) View(kind Kind, keep func(record json.RawMessage) bool) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Entry
	for _, entry := range r.collections[kind] {
		if keep(entry.Record) {
			out = append(out, entry)
		}
	}
	return out
}

// RequestTypeFilter keeps only requests of one type; used for the
// Leave/Overtime/Off-set tabs.
func RequestTypeFilter(t domain.RequestType) func(json.RawMessage) bool {
	return func(record json.RawMessage) bool {
		var probe struct {
			RequestType domain.RequestType `json:"request_type"`
		}
		if err := json.Unmarshal(record, &probe); err != nil {
			return false
		}
		return probe.RequestType == t
	}
}
