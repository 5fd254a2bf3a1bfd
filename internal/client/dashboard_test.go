package client_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-portal/internal/client"
	"employee-portal/internal/domain"
)

// fakeConnection stands in for the websocket transport: the test pushes
// events and triggers reconnects directly.
type fakeConnection struct {
	onEvent     func(domain.Event)
	onReconnect func()
	joinedWith  []string
	closed      bool
}

func (f *fakeConnection) Connect(ctx context.Context) error { return nil }

func (f *fakeConnection) JoinChannel(token string) error {
	f.joinedWith = append(f.joinedWith, token)
	return nil
}

func (f *fakeConnection) LeaveChannel() error { return nil }

func (f *fakeConnection) OnEvent(fn func(domain.Event)) { f.onEvent = fn }

func (f *fakeConnection) OnReconnect(fn func()) { f.onReconnect = fn }

func (f *fakeConnection) Close() error {
	f.closed = true
	return nil
}

func (f *fakeConnection) push(t *testing.T, event domain.Event) {
	t.Helper()
	require.NotNil(t, f.onEvent)
	f.onEvent(event)
}

func TestDashboard_MergesPushedEventsInOrder(t *testing.T) {
	conn := &fakeConnection{}
	dash := client.NewDashboard(conn, nil)
	require.NoError(t, dash.Start(context.Background(), "employee-token"))

	id := uuid.New()
	conn.push(t, requestEvent(t, id, domain.TypeOvertime, domain.StatusPending))
	conn.push(t, requestEvent(t, id, domain.TypeOvertime, domain.StatusPartial))
	conn.push(t, requestEvent(t, id, domain.TypeOvertime, domain.StatusApproved))

	requests := dash.Requests(nil)
	require.Len(t, requests, 1)
	assert.Equal(t, domain.StatusApproved, requests[0].Status)
}

func TestDashboard_ReconnectRepairsThroughRefetch(t *testing.T) {
	conn := &fakeConnection{}

	missedID := uuid.New()
	record, _ := json.Marshal(domain.Request{
		ID:          missedID,
		RequestType: domain.TypeLeave,
		Status:      domain.StatusApproved,
	})
	refetch := func(ctx context.Context, kind client.Kind) ([]client.Entry, error) {
		if kind != client.KindRequests {
			return nil, nil
		}
		return []client.Entry{{ID: missedID, Record: record}}, nil
	}

	dash := client.NewDashboard(conn, refetch)
	require.NoError(t, dash.Start(context.Background(), "employee-token"))

	// The approval happened while the socket was down; the reconnect hook
	// pulls it in via refetch.
	require.NotNil(t, conn.onReconnect)
	conn.onReconnect()

	requests := dash.Requests(nil)
	require.Len(t, requests, 1)
	assert.Equal(t, missedID, requests[0].ID)
	assert.Equal(t, domain.StatusApproved, requests[0].Status)
}

func TestDashboard_SwitchIdentityRejoinsAndReloads(t *testing.T) {
	conn := &fakeConnection{}
	dash := client.NewDashboard(conn, func(ctx context.Context, kind client.Kind) ([]client.Entry, error) {
		return nil, nil
	})
	require.NoError(t, dash.Start(context.Background(), "employee-token"))

	conn.push(t, requestEvent(t, uuid.New(), domain.TypeLeave, domain.StatusPending))
	require.Len(t, dash.Requests(nil), 1)

	require.NoError(t, dash.SwitchIdentity(context.Background(), "admin-token"))

	assert.Equal(t, []string{"employee-token", "admin-token"}, conn.joinedWith)
	assert.Empty(t, dash.Requests(nil))
}

func TestDashboard_TabFiltering(t *testing.T) {
	conn := &fakeConnection{}
	dash := client.NewDashboard(conn, nil)
	require.NoError(t, dash.Start(context.Background(), "employee-token"))

	conn.push(t, requestEvent(t, uuid.New(), domain.TypeLeave, domain.StatusPending))
	conn.push(t, requestEvent(t, uuid.New(), domain.TypeOvertime, domain.StatusPending))
	conn.push(t, requestEvent(t, uuid.New(), domain.TypeOffset, domain.StatusPending))

	overtime := domain.TypeOvertime
	tab := dash.Requests(&overtime)
	require.Len(t, tab, 1)
	assert.Equal(t, domain.TypeOvertime, tab[0].RequestType)

	// All three are still there once the filter is lifted.
	assert.Len(t, dash.Requests(nil), 3)
}
