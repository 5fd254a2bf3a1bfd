package client

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"employee-portal/internal/domain"
)

// Connection is the transport a dashboard talks through. It is injected so
// tests can substitute a fake; the real implementation dials the portal's
// websocket endpoint.
type Connection interface {
	Connect(ctx context.Context) error
	JoinChannel(token string) error
	LeaveChannel() error
	OnEvent(fn func(domain.Event))
	OnReconnect(fn func())
	Close() error
}

const (
	reconnectBaseDelay = time.Second
	reconnectMaxDelay  = 30 * time.Second
)

// WSConnection maintains one websocket to the server, re-dialing with
// backoff when it drops. After a reconnect it re-joins with the stored
// token and fires the reconnect hook so the dashboard can refetch whatever
// was missed; push delivery alone is best effort.
type WSConnection struct {
	endpoint string

	mu          sync.Mutex
	token       string
	ws          *websocket.Conn
	onEvent     func(domain.Event)
	onReconnect func()
	closed      bool
	cancel      context.CancelFunc
}

func NewWSConnection(endpoint string) *WSConnection {
	return &WSConnection{endpoint: endpoint}
}

func (c *WSConnection) OnEvent(fn func(domain.Event)) {
	c.mu.Lock()
	c.onEvent = fn
	c.mu.Unlock()
}

func (c *WSConnection) OnReconnect(fn func()) {
	c.mu.Lock()
	c.onReconnect = fn
	c.mu.Unlock()
}

func (c *WSConnection) Connect(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()

	if err := c.dial(runCtx); err != nil {
		cancel()
		return err
	}

	go c.readLoop(runCtx)
	return nil
}

func (c *WSConnection) dial(ctx context.Context) error {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return err
	}
	if token != "" {
		q := u.Query()
		q.Set("token", token)
		u.RawQuery = q.Encode()
	}

	ws, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.ws = ws
	c.mu.Unlock()
	return nil
}

func (c *WSConnection) readLoop(ctx context.Context) {
	for {
		c.mu.Lock()
		ws := c.ws
		closed := c.closed
		c.mu.Unlock()
		if closed || ws == nil {
			return
		}

		_, message, err := ws.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.reconnect(ctx)
			continue
		}

		var event domain.Event
		if err := json.Unmarshal(message, &event); err != nil {
			continue
		}
		c.mu.Lock()
		handler := c.onEvent
		c.mu.Unlock()
		if handler != nil {
			handler(event)
		}
	}
}

func (c *WSConnection) reconnect(ctx context.Context) {
	delay := reconnectBaseDelay
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}

		if err := c.dial(ctx); err == nil {
			c.mu.Lock()
			hook := c.onReconnect
			c.mu.Unlock()
			if hook != nil {
				hook()
			}
			return
		}

		log.Printf("client: reconnect to %s failed, retrying", c.endpoint)
		delay *= 2
		if delay > reconnectMaxDelay {
			delay = reconnectMaxDelay
		}
	}
}

// JoinChannel stores the identity token and sends the auth message; the
// server derives the channel from the token's claims. Calling it again with
// a different token is the login-swap path: the server moves the connection
// to the new channel.
func (c *WSConnection) JoinChannel(token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
	if c.ws == nil {
		return nil
	}
	return c.ws.WriteJSON(map[string]string{"action": "auth", "token": token})
}

func (c *WSConnection) LeaveChannel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
	if c.ws == nil {
		return nil
	}
	return c.ws.WriteJSON(map[string]string{"action": "auth", "token": ""})
}

func (c *WSConnection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.cancel != nil {
		c.cancel()
	}
	if c.ws != nil {
		return c.ws.Close()
	}
	return nil
}
