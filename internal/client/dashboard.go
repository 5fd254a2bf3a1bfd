package client

import (
	"context"
	"encoding/json"
	"log"

	"employee-portal/internal/domain"
)

// RefetchFunc reloads a collection from the REST API. It is the repair path
// for events missed while disconnected.
type RefetchFunc func(ctx context.Context, kind Kind) ([]Entry, error)

// Dashboard is the in-memory state behind one portal view (admin or
// employee). Push events flow through the shared Reconciler; the REST API
// stays the source of truth via refetch.
type Dashboard struct {
	conn    Connection
	rec     *Reconciler
	refetch RefetchFunc
}

func NewDashboard(conn Connection, refetch RefetchFunc) *Dashboard {
	return &Dashboard{
		conn:    conn,
		rec:     NewReconciler(),
		refetch: refetch,
	}
}

// Start connects, joins the channel for the given identity and begins
// merging events. The initial collections load through the same refetch
// path used after reconnects.
func (d *Dashboard) Start(ctx context.Context, token string) error {
	d.conn.OnEvent(func(event domain.Event) {
		if err := d.rec.Apply(event); err != nil {
			log.Printf("dashboard: failed to apply %s event: %v", event.Name, err)
		}
	})
	d.conn.OnReconnect(func() {
		d.Reload(ctx)
	})

	if err := d.conn.JoinChannel(token); err != nil {
		return err
	}
	if err := d.conn.Connect(ctx); err != nil {
		return err
	}

	d.Reload(ctx)
	return nil
}

// Reload refetches every collection and resets local state.
func (d *Dashboard) Reload(ctx context.Context) {
	if d.refetch == nil {
		return
	}
	for _, kind := range []Kind{KindRequests, KindDocuments, KindIncidents} {
		entries, err := d.refetch(ctx, kind)
		if err != nil {
			log.Printf("dashboard: refetch of %s failed: %v", kind, err)
			continue
		}
		d.rec.Reset(kind, entries)
	}
}

// SwitchIdentity joins the channel of a different login without tearing the
// socket down, then reloads since the visible collections change entirely.
func (d *Dashboard) SwitchIdentity(ctx context.Context, token string) error {
	if err := d.conn.JoinChannel(token); err != nil {
		return err
	}
	d.Reload(ctx)
	return nil
}

// Requests returns the decoded request list, optionally narrowed to one tab.
// Filtering never drops stored records of other types.
func (d *Dashboard) Requests(tab *domain.RequestType) []domain.Request {
	entries := d.rec.Snapshot(KindRequests)
	if tab != nil {
		entries = d.rec.View(KindRequests, RequestTypeFilter(*tab))
	}

	out := make([]domain.Request, 0, len(entries))
	for _, entry := range entries {
		var req domain.Request
		if err := json.Unmarshal(entry.Record, &req); err != nil {
			continue
		}
		out = append(out, req)
	}
	return out
}

func (d *Dashboard) Documents() []Entry {
	return d.rec.Snapshot(KindDocuments)
}

func (d *Dashboard) Incidents() []Entry {
	return d.rec.Snapshot(KindIncidents)
}

func (d *Dashboard) Close() error {
	return d.conn.Close()
}
