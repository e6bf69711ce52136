package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/signup/internal/domain"
)

func TestSeedCatalog(t *testing.T) {
	store := NewMemoryRegistry(SeedCatalog())

	activities, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 9)

	soccer, ok := activities["Soccer Team"]
	require.True(t, ok)
	require.Equal(t, 25, soccer.MaxParticipants)
	require.Equal(t, []string{"alex@mergington.edu", "sarah@mergington.edu"}, soccer.Participants)

	for name, activity := range activities {
		require.NotEmpty(t, activity.Description, "activity %s", name)
		require.NotEmpty(t, activity.Schedule, "activity %s", name)
		require.Positive(t, activity.MaxParticipants, "activity %s", name)
		require.Len(t, activity.Participants, 2, "activity %s", name)
	}
}

func TestAddParticipantPreservesOrder(t *testing.T) {
	store := NewMemoryRegistry(SeedCatalog())
	ctx := context.Background()

	_, err := store.AddParticipant(ctx, "Chess Club", "first@mergington.edu")
	require.NoError(t, err)
	activity, err := store.AddParticipant(ctx, "Chess Club", "second@mergington.edu")
	require.NoError(t, err)

	require.Equal(t, []string{
		"michael@mergington.edu",
		"daniel@mergington.edu",
		"first@mergington.edu",
		"second@mergington.edu",
	}, activity.Participants)
}

func TestAddParticipantRejectsDuplicate(t *testing.T) {
	store := NewMemoryRegistry(SeedCatalog())

	_, err := store.AddParticipant(context.Background(), "Soccer Team", "alex@mergington.edu")
	require.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestAddParticipantUnknownActivity(t *testing.T) {
	store := NewMemoryRegistry(SeedCatalog())

	_, err := store.AddParticipant(context.Background(), "Quidditch", "alex@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestRemoveParticipant(t *testing.T) {
	store := NewMemoryRegistry(SeedCatalog())
	ctx := context.Background()

	activity, err := store.RemoveParticipant(ctx, "Soccer Team", "alex@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"sarah@mergington.edu"}, activity.Participants)

	_, err = store.RemoveParticipant(ctx, "Soccer Team", "alex@mergington.edu")
	require.ErrorIs(t, err, domain.ErrNotRegistered)

	_, err = store.RemoveParticipant(ctx, "Quidditch", "alex@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestListReturnsIsolatedSnapshot(t *testing.T) {
	store := NewMemoryRegistry(SeedCatalog())
	ctx := context.Background()

	before, err := store.List(ctx)
	require.NoError(t, err)

	soccer := before["Soccer Team"]
	soccer.Participants[0] = "mutated@mergington.edu"

	after, err := store.Get(ctx, "Soccer Team")
	require.NoError(t, err)
	require.Equal(t, "alex@mergington.edu", after.Participants[0])
}

func TestConcurrentSignupsKeepRosterUnique(t *testing.T) {
	store := NewMemoryRegistry(SeedCatalog())
	ctx := context.Background()

	const writers = 32
	var wg sync.WaitGroup
	duplicates := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("student%d@mergington.edu", i%8)
			if _, err := store.AddParticipant(ctx, "Gym Class", email); err != nil {
				duplicates <- err
			}
		}(i)
	}
	wg.Wait()
	close(duplicates)

	for err := range duplicates {
		require.True(t, errors.Is(err, domain.ErrAlreadyRegistered), "unexpected error: %v", err)
	}

	activity, err := store.Get(ctx, "Gym Class")
	require.NoError(t, err)
	require.Len(t, activity.Participants, 2+8)

	seen := make(map[string]bool, len(activity.Participants))
	for _, email := range activity.Participants {
		require.False(t, seen[email], "duplicate roster entry %s", email)
		seen[email] = true
	}
}
