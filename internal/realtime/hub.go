package realtime

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// AdminChannel receives every mutation; admin dashboards watch the
	// aggregate approval queue.
	AdminChannel = "admins"

	channelPrefix = "rt:"

	// Outbound buffer per connection. A slow consumer loses the connection
	// rather than blocking the hub; it repairs state by refetching.
	sendBufferSize = 64
)

// EmployeeChannel names the channel scoped to one employee's own records.
func EmployeeChannel(employeeID uuid.UUID) string {
	return "employee:" + employeeID.String()
}

// Hub tracks which live connection belongs to which logical channel. A
// connection is in at most one channel at a time; joining a different
// channel leaves the previous one, and disconnect removes membership
// immediately.
type Hub struct {
	mu       sync.RWMutex
	channels map[string]map[*Conn]struct{}
	members  map[*Conn]string
}

func NewHub() *Hub {
	return &Hub{
		channels: make(map[string]map[*Conn]struct{}),
		members:  make(map[*Conn]string),
	}
}

// Join is idempotent. A connection already in a different channel is moved.
func (h *Hub) Join(c *Conn, channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current, ok := h.members[c]; ok {
		if current == channel {
			return
		}
		h.removeLocked(c, current)
	}

	if h.channels[channel] == nil {
		h.channels[channel] = make(map[*Conn]struct{})
	}
	h.channels[channel][c] = struct{}{}
	h.members[c] = channel
}

func (h *Hub) Leave(c *Conn, channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current, ok := h.members[c]; ok && current == channel {
		h.removeLocked(c, channel)
		delete(h.members, c)
	}
}

// Unregister drops the connection from whatever channel it is in. Called on
// disconnect; there is no grace period.
func (h *Hub) Unregister(c *Conn) {
	h.mu.Lock()
	if channel, ok := h.members[c]; ok {
		h.removeLocked(c, channel)
		delete(h.members, c)
	}
	h.mu.Unlock()
	c.close()
}

func (h *Hub) removeLocked(c *Conn, channel string) {
	if conns, ok := h.channels[channel]; ok {
		delete(conns, c)
		if len(conns) == 0 {
			delete(h.channels, channel)
		}
	}
}

// Recipients returns the current members of a channel.
func (h *Hub) Recipients(channel string) []*Conn {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns := make([]*Conn, 0, len(h.channels[channel]))
	for c := range h.channels[channel] {
		conns = append(conns, c)
	}
	return conns
}

// Channel reports the channel a connection currently belongs to.
func (h *Hub) Channel(c *Conn) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	channel, ok := h.members[c]
	return channel, ok
}

// Deliver writes a raw event to every member of a channel. Connections whose
// outbound buffer is full are dropped; push delivery is best effort.
func (h *Hub) Deliver(channel string, message []byte) {
	for _, c := range h.Recipients(channel) {
		if !c.enqueue(message) {
			log.Printf("realtime: dropping slow connection in channel %s", channel)
			h.Unregister(c)
		}
	}
}

// RunSubscriber consumes the redis pattern subscription that the
// Broadcaster publishes to and fans events out to local members. Runs until
// the context is cancelled.
func (h *Hub) RunSubscriber(ctx context.Context, rdb *redis.Client) {
	sub := rdb.PSubscribe(ctx, channelPrefix+"*")
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			h.Deliver(strings.TrimPrefix(msg.Channel, channelPrefix), []byte(msg.Payload))
		}
	}
}
