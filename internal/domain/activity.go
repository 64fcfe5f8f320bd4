// Package domain defines the business logic for the activities service.
package domain

import "errors"

var (
	// ErrActivityNotFound is returned when an activity cannot be located.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyEnrolled is returned when the student is already on the roster.
	ErrAlreadyEnrolled = errors.New("student is already signed up")
	// ErrNotEnrolled is returned when the student is absent from the roster.
	ErrNotEnrolled = errors.New("student is not signed up for this activity")
	// ErrActivityFull is returned when the roster is at capacity and
	// enforcement is enabled.
	ErrActivityFull = errors.New("activity is full")
)

// Activity is one extracurricular offering and its ordered roster of
// enrolled student emails. Roster order is signup order; an email appears
// at most once.
type Activity struct {
	Name        string
	Description string
	Schedule    string
	Capacity    int
	Roster      []string
}

// SpotsLeft reports the remaining capacity of the activity.
func (a Activity) SpotsLeft() int {
	return a.Capacity - len(a.Roster)
}

func (a Activity) enrolled(email string) bool {
	for _, member := range a.Roster {
		if member == email {
			return true
		}
	}
	return false
}
