package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"example.com/signup/internal/events"
)

// AuditHandler keeps a bounded in-memory trail of roster changes, most recent
// first, and logs each one.
type AuditHandler struct {
	logger *zap.Logger
	limit  int

	mu    sync.Mutex
	trail []events.RosterChanged
}

// NewAuditHandler constructs an AuditHandler retaining at most limit entries.
func NewAuditHandler(logger *zap.Logger, limit int) *AuditHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limit <= 0 {
		limit = 100
	}
	return &AuditHandler{logger: logger, limit: limit}
}

// Handle implements Handler.
func (h *AuditHandler) Handle(ctx context.Context, msg Message) error {
	if msg.EventType != events.EventTypeRosterChanged {
		// Unknown events are committed and ignored rather than retried.
		h.logger.Debug("skipping event", zap.String("event_type", msg.EventType))
		return nil
	}

	var event events.RosterChanged
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return fmt.Errorf("unmarshal roster event: %w", err)
	}

	h.mu.Lock()
	h.trail = append([]events.RosterChanged{event}, h.trail...)
	if len(h.trail) > h.limit {
		h.trail = h.trail[:h.limit]
	}
	h.mu.Unlock()

	h.logger.Info("roster changed",
		zap.String("activity", event.Activity),
		zap.String("email", event.Email),
		zap.String("change", event.Change),
		zap.Int("roster_size", event.RosterSize))
	return nil
}

// Trail returns a copy of the retained roster changes, most recent first.
func (h *AuditHandler) Trail() []events.RosterChanged {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]events.RosterChanged, len(h.trail))
	copy(out, h.trail)
	return out
}
