// Package pagingbus mirrors paging subsystem events onto a Redis Pub/Sub
// channel for external observers (e.g. a BSC-side dashboard). The mirror
// is advisory only: nothing in the paging subsystem reads it back, and a
// publish failure never affects the subsystem's own state.
//
// Grounded on internal/dmr/calltracker/call_tracker.go's publishCall:
// json.Marshal an event struct, Publish to a fixed channel, log and
// swallow any error.
package pagingbus

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Channel is the Redis Pub/Sub channel paging events are mirrored to.
const Channel = "paging:events"

// Event is one mirrored occurrence, either an Add or a Generate outcome.
type Event struct {
	Kind        string    `json:"kind"` // "add" or "generate"
	Group       int       `json:"group"`
	Format      string    `json:"format,omitempty"`
	NumSelected int       `json:"num_selected,omitempty"`
	NumRetired  int       `json:"num_retired,omitempty"`
	NumRequeued int       `json:"num_requeued,omitempty"`
	Outcome     string    `json:"outcome,omitempty"`
	Time        time.Time `json:"time"`
}

// Mirror publishes Events to Redis. A nil *Mirror is valid and a no-op,
// so callers can wire one in only when a Redis client is configured.
type Mirror struct {
	client *redis.Client
	logger *slog.Logger
}

// NewMirror wraps an existing Redis client. logger may be nil.
func NewMirror(client *redis.Client, logger *slog.Logger) *Mirror {
	return &Mirror{client: client, logger: logger}
}

// Publish mirrors ev, logging (not returning) any failure.
func (m *Mirror) Publish(ctx context.Context, ev Event) {
	if m == nil || m.client == nil {
		return
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		m.log("marshal paging event", err)
		return
	}
	if _, err := m.client.Publish(ctx, Channel, payload).Result(); err != nil {
		m.log("publish paging event", err)
	}
}

func (m *Mirror) log(msg string, err error) {
	if m.logger == nil {
		return
	}
	m.logger.Warn(msg, slog.String("error", err.Error()))
}
