package realtime

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_JoinIsIdempotent(t *testing.T) {
	hub := NewHub()
	conn := newConn(nil)
	channel := EmployeeChannel(uuid.New())

	hub.Join(conn, channel)
	hub.Join(conn, channel)

	assert.Len(t, hub.Recipients(channel), 1)
}

func TestHub_JoinMovesBetweenChannels(t *testing.T) {
	hub := NewHub()
	conn := newConn(nil)
	employee := EmployeeChannel(uuid.New())

	hub.Join(conn, employee)
	hub.Join(conn, AdminChannel)

	// A connection is in at most one channel; re-login swapped it over.
	assert.Empty(t, hub.Recipients(employee))
	assert.Len(t, hub.Recipients(AdminChannel), 1)

	current, ok := hub.Channel(conn)
	require.True(t, ok)
	assert.Equal(t, AdminChannel, current)
}

func TestHub_LeaveOnlyAffectsNamedChannel(t *testing.T) {
	hub := NewHub()
	conn := newConn(nil)

	hub.Join(conn, AdminChannel)
	hub.Leave(conn, EmployeeChannel(uuid.New()))
	assert.Len(t, hub.Recipients(AdminChannel), 1)

	hub.Leave(conn, AdminChannel)
	assert.Empty(t, hub.Recipients(AdminChannel))
	_, ok := hub.Channel(conn)
	assert.False(t, ok)
}

func TestHub_UnregisterRemovesImmediately(t *testing.T) {
	hub := NewHub()
	conn := newConn(nil)
	channel := EmployeeChannel(uuid.New())

	hub.Join(conn, channel)
	hub.Unregister(conn)

	assert.Empty(t, hub.Recipients(channel))

	// Events after disconnect go nowhere and do not panic.
	hub.Deliver(channel, []byte(`{"event":"leaveRequestUpdated"}`))
}

func TestHub_DeliverPreservesOrder(t *testing.T) {
	hub := NewHub()
	conn := newConn(nil)
	channel := EmployeeChannel(uuid.New())
	hub.Join(conn, channel)

	messages := [][]byte{
		[]byte(`{"seq":1}`),
		[]byte(`{"seq":2}`),
		[]byte(`{"seq":3}`),
	}
	for _, m := range messages {
		hub.Deliver(channel, m)
	}

	for _, want := range messages {
		select {
		case got := <-conn.send:
			assert.Equal(t, want, got)
		default:
			t.Fatal("expected a queued message")
		}
	}
}

func TestHub_DeliverDropsSlowConsumer(t *testing.T) {
	hub := NewHub()
	conn := newConn(nil)
	channel := EmployeeChannel(uuid.New())
	hub.Join(conn, channel)

	// Nothing drains the queue, so it eventually overflows and the hub cuts
	// the connection loose instead of blocking.
	for i := 0; i < sendBufferSize+1; i++ {
		hub.Deliver(channel, []byte(`{}`))
	}

	assert.Empty(t, hub.Recipients(channel))
}

func TestHub_DeliverOnlyReachesChannelMembers(t *testing.T) {
	hub := NewHub()
	mine := newConn(nil)
	other := newConn(nil)

	hub.Join(mine, EmployeeChannel(uuid.New()))
	otherChannel := EmployeeChannel(uuid.New())
	hub.Join(other, otherChannel)

	hub.Deliver(otherChannel, []byte(`{"private":true}`))

	assert.Empty(t, mine.send)
	assert.Len(t, other.send, 1)
}
