// Package domain defines the business logic for the signup service.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"example.com/signup/internal/events"
	"example.com/signup/internal/observability"
)

var (
	// ErrActivityNotFound is returned when an activity name is not in the registry.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered is returned when the email is already on the roster.
	ErrAlreadyRegistered = errors.New("participant already signed up")
	// ErrNotRegistered is returned when the email is not on the roster.
	ErrNotRegistered = errors.New("participant not registered")
)

// RosterRepository captures the registry operations the service depends on.
type RosterRepository interface {
	List(ctx context.Context) (map[string]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	AddParticipant(ctx context.Context, name, email string) (*Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (*Activity, error)
}

// Service orchestrates signup workflows over the registry.
type Service struct {
	repo      RosterRepository
	publisher events.Publisher
	logger    *zap.Logger
}

// NewService constructs a Service. A nil publisher disables event emission.
func NewService(repo RosterRepository, publisher events.Publisher, logger *zap.Logger) *Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, publisher: publisher, logger: logger}
}

// ListActivities returns a snapshot of every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.repo.List(ctx)
}

// Signup appends email to the activity roster and returns a confirmation message.
func (s *Service) Signup(ctx context.Context, activityName, email string) (string, error) {
	activity, err := s.repo.AddParticipant(ctx, activityName, email)
	if err != nil {
		return "", err
	}

	observability.RecordSignup(activity.Name, len(activity.Participants))
	s.publish(ctx, events.ChangeSignup, activity.Name, email, len(activity.Participants))

	return fmt.Sprintf("Signed up %s for %s", email, activity.Name), nil
}

// Unregister removes email from the activity roster and returns a confirmation message.
func (s *Service) Unregister(ctx context.Context, activityName, email string) (string, error) {
	activity, err := s.repo.RemoveParticipant(ctx, activityName, email)
	if err != nil {
		return "", err
	}

	observability.RecordUnregister(activity.Name, len(activity.Participants))
	s.publish(ctx, events.ChangeUnregister, activity.Name, email, len(activity.Participants))

	return fmt.Sprintf("Unregistered %s from %s", email, activity.Name), nil
}

// publish emits a roster change event. Failures are logged and swallowed; the
// mutation has already committed and must not be rolled back by broker issues.
func (s *Service) publish(ctx context.Context, change, activityName, email string, rosterSize int) {
	event := events.RosterChanged{
		Activity:   activityName,
		Email:      email,
		Change:     change,
		RosterSize: rosterSize,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("roster event publish failed",
			zap.String("activity", activityName),
			zap.String("change", change),
			zap.Error(err))
	}
}

// ValidateEmail performs the existence check applied to signup input.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("email is required")
	}
	return nil
}
