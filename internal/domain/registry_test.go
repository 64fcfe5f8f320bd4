package domain

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func seedActivities() []Activity {
	return []Activity{
		{
			Name:        "Chess Club",
			Description: "Learn strategies and compete in chess tournaments",
			Schedule:    "Fridays, 3:30 PM - 5:00 PM",
			Capacity:    3,
			Roster:      []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:     "Math Club",
			Capacity: 10,
		},
	}
}

func TestEnrollAppendsInSignupOrder(t *testing.T) {
	registry := NewRegistry(seedActivities())

	require.NoError(t, registry.Enroll("Math Club", "a@mergington.edu"))
	require.NoError(t, registry.Enroll("Math Club", "b@mergington.edu"))
	require.NoError(t, registry.Enroll("Math Club", "c@mergington.edu"))

	activity, err := registry.Get("Math Club")
	require.NoError(t, err)
	require.Equal(t, []string{"a@mergington.edu", "b@mergington.edu", "c@mergington.edu"}, activity.Roster)
}

func TestEnrollUnknownActivity(t *testing.T) {
	registry := NewRegistry(seedActivities())

	err := registry.Enroll("Knitting Circle", "a@mergington.edu")
	require.ErrorIs(t, err, ErrActivityNotFound)
}

func TestEnrollDuplicateLeavesRosterUnchanged(t *testing.T) {
	registry := NewRegistry(seedActivities())

	err := registry.Enroll("Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, ErrAlreadyEnrolled)

	activity, err := registry.Get("Chess Club")
	require.NoError(t, err)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, activity.Roster)
}

func TestEnrollRejectsFullActivity(t *testing.T) {
	registry := NewRegistry(seedActivities(), WithCapacityEnforcement(true))

	require.NoError(t, registry.Enroll("Chess Club", "third@mergington.edu"))
	err := registry.Enroll("Chess Club", "fourth@mergington.edu")
	require.ErrorIs(t, err, ErrActivityFull)

	activity, err := registry.Get("Chess Club")
	require.NoError(t, err)
	require.Len(t, activity.Roster, activity.Capacity)
}

func TestEnrollWithoutCapacityEnforcement(t *testing.T) {
	registry := NewRegistry(seedActivities())

	// Upstream behaviour: the roster may grow past capacity when the
	// check is disabled.
	require.NoError(t, registry.Enroll("Chess Club", "third@mergington.edu"))
	require.NoError(t, registry.Enroll("Chess Club", "fourth@mergington.edu"))

	activity, err := registry.Get("Chess Club")
	require.NoError(t, err)
	require.Len(t, activity.Roster, 4)
}

func TestUnenrollRemovesSingleEntry(t *testing.T) {
	registry := NewRegistry(seedActivities())

	require.NoError(t, registry.Unenroll("Chess Club", "michael@mergington.edu"))

	activity, err := registry.Get("Chess Club")
	require.NoError(t, err)
	require.Equal(t, []string{"daniel@mergington.edu"}, activity.Roster)
}

func TestUnenrollNotEnrolled(t *testing.T) {
	registry := NewRegistry(seedActivities())

	err := registry.Unenroll("Chess Club", "stranger@mergington.edu")
	require.ErrorIs(t, err, ErrNotEnrolled)

	err = registry.Unenroll("Knitting Circle", "michael@mergington.edu")
	require.ErrorIs(t, err, ErrActivityNotFound)
}

func TestEnrollThenUnenrollRestoresRoster(t *testing.T) {
	registry := NewRegistry(seedActivities())

	before, err := registry.Get("Chess Club")
	require.NoError(t, err)

	require.NoError(t, registry.Enroll("Chess Club", "visitor@mergington.edu"))
	require.NoError(t, registry.Unenroll("Chess Club", "visitor@mergington.edu"))

	after, err := registry.Get("Chess Club")
	require.NoError(t, err)
	require.Equal(t, before.Roster, after.Roster)
}

func TestListReturnsIsolatedSnapshots(t *testing.T) {
	registry := NewRegistry(seedActivities())

	snapshot := registry.List()
	chess := snapshot["Chess Club"]
	chess.Roster[0] = "tampered@mergington.edu"

	activity, err := registry.Get("Chess Club")
	require.NoError(t, err)
	require.Equal(t, "michael@mergington.edu", activity.Roster[0])
}

func TestConcurrentEnrollmentsKeepRosterUnique(t *testing.T) {
	registry := NewRegistry([]Activity{{Name: "Gym Class", Capacity: 100}})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("student%d@mergington.edu", i)
			require.NoError(t, registry.Enroll("Gym Class", email))
		}(i)
	}
	wg.Wait()

	activity, err := registry.Get("Gym Class")
	require.NoError(t, err)
	require.Len(t, activity.Roster, 50)

	seen := make(map[string]bool, len(activity.Roster))
	for _, email := range activity.Roster {
		require.False(t, seen[email], "duplicate roster entry %s", email)
		seen[email] = true
	}
}
