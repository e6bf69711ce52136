package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"example.com/signup/internal/events"
)

func auditMessage(t *testing.T, event events.RosterChanged) Message {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return Message{
		Topic:     "activity.roster",
		EventType: events.EventTypeRosterChanged,
		Payload:   payload,
	}
}

func TestAuditHandlerKeepsMostRecentFirst(t *testing.T) {
	handler := NewAuditHandler(zaptest.NewLogger(t), 10)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		event := events.RosterChanged{
			Activity:   "Chess Club",
			Email:      fmt.Sprintf("student%d@mergington.edu", i),
			Change:     events.ChangeSignup,
			RosterSize: 2 + i,
			OccurredAt: time.Now().UTC(),
		}
		require.NoError(t, handler.Handle(ctx, auditMessage(t, event)))
	}

	trail := handler.Trail()
	require.Len(t, trail, 3)
	require.Equal(t, "student2@mergington.edu", trail[0].Email)
	require.Equal(t, "student0@mergington.edu", trail[2].Email)
}

func TestAuditHandlerBoundsTrail(t *testing.T) {
	handler := NewAuditHandler(zaptest.NewLogger(t), 2)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		event := events.RosterChanged{
			Activity: "Gym Class",
			Email:    fmt.Sprintf("student%d@mergington.edu", i),
			Change:   events.ChangeSignup,
		}
		require.NoError(t, handler.Handle(ctx, auditMessage(t, event)))
	}

	trail := handler.Trail()
	require.Len(t, trail, 2)
	require.Equal(t, "student4@mergington.edu", trail[0].Email)
}

func TestAuditHandlerIgnoresUnknownEvents(t *testing.T) {
	handler := NewAuditHandler(zaptest.NewLogger(t), 10)

	msg := Message{
		Topic:     "activity.roster",
		EventType: "activity.unknown",
		Payload:   json.RawMessage(`{}`),
	}
	require.NoError(t, handler.Handle(context.Background(), msg))
	require.Empty(t, handler.Trail())
}

func TestAuditHandlerRejectsBadPayload(t *testing.T) {
	handler := NewAuditHandler(zaptest.NewLogger(t), 10)

	msg := Message{
		Topic:     "activity.roster",
		EventType: events.EventTypeRosterChanged,
		Payload:   json.RawMessage(`[1,2,3]`),
	}
	require.Error(t, handler.Handle(context.Background(), msg))
}
