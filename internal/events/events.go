// Package events defines roster change payloads and their Kafka delivery.
package events

import (
	"context"
	"time"
)

// Change values carried by RosterChanged events.
const (
	ChangeSignup     = "signup"
	ChangeUnregister = "unregister"
)

// EventTypeRosterChanged is the event_type header stamped on every record.
const EventTypeRosterChanged = "activity.roster_changed"

// RosterChanged is emitted after an enroll or withdraw commits to the registry.
type RosterChanged struct {
	EventID    string    `json:"event_id"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	Change     string    `json:"change"`
	RosterSize int       `json:"roster_size"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers roster events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event RosterChanged) error
}

// NopPublisher discards events. Used when no broker is configured and in tests.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, RosterChanged) error { return nil }
