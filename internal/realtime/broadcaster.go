package realtime

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"employee-portal/internal/domain"
)

// Scope selects which channels an event reaches: the owning employee's
// channel, the admin broadcast channel, or both.
type Scope struct {
	EmployeeID *uuid.UUID
	Admins     bool
}

func ScopeEmployee(employeeID uuid.UUID) Scope {
	return Scope{EmployeeID: &employeeID}
}

func ScopeAdmins() Scope {
	return Scope{Admins: true}
}

// ScopeBoth reaches the owning employee and all admins; status changes use
// this so both sides of a request see the same record.
func ScopeBoth(employeeID uuid.UUID) Scope {
	return Scope{EmployeeID: &employeeID, Admins: true}
}

func (s Scope) channels() []string {
	var out []string
	if s.EmployeeID != nil {
		out = append(out, EmployeeChannel(*s.EmployeeID))
	}
	if s.Admins {
		out = append(out, AdminChannel)
	}
	return out
}

// Broadcaster emits one event per successful mutation, carrying the full
// updated record. Emission never blocks the caller and carries no delivery
// guarantee; clients repair missed events by refetching.
type Broadcaster interface {
	Broadcast(name domain.EventName, record any, scope Scope)
}

type publishJob struct {
	channels []string
	payload  []byte
}

// redisBroadcaster publishes to redis pub/sub so fan-out works across
// server instances. A single worker drains the queue, preserving the order
// mutations were committed in.
type redisBroadcaster struct {
	rdb   *redis.Client
	queue chan publishJob
}

func NewBroadcaster(ctx context.Context, rdb *redis.Client) Broadcaster {
	b := &redisBroadcaster{
		rdb:   rdb,
		queue: make(chan publishJob, 256),
	}
	go b.run(ctx)
	return b
}

func (b *redisBroadcaster) Broadcast(name domain.EventName, record any, scope Scope) {
	event, err := domain.NewEvent(name, record)
	if err != nil {
		log.Printf("realtime: failed to encode %s event: %v", name, err)
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("realtime: failed to encode %s envelope: %v", name, err)
		return
	}

	select {
	case b.queue <- publishJob{channels: scope.channels(), payload: payload}:
	default:
		log.Printf("realtime: broadcast queue full, dropping %s event", name)
	}
}

func (b *redisBroadcaster) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-b.queue:
			for _, channel := range job.channels {
				pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				if err := b.rdb.Publish(pubCtx, channelPrefix+channel, job.payload).Err(); err != nil {
					log.Printf("realtime: publish to %s failed: %v", channel, err)
				}
				cancel()
			}
		}
	}
}
