package domain

import "sync"

// Registry is the authoritative in-memory set of activities. A single
// RWMutex serializes the check-then-act sequences in Enroll and Unenroll
// so concurrent requests cannot double-append or double-remove.
type Registry struct {
	mu              sync.RWMutex
	activities      map[string]*Activity
	enforceCapacity bool
}

// RegistryOption customises Registry construction.
type RegistryOption func(*Registry)

// WithCapacityEnforcement toggles the roster capacity check on Enroll.
// The upstream service never enforced capacity, so the behaviour stays
// behind an explicit option.
func WithCapacityEnforcement(on bool) RegistryOption {
	return func(r *Registry) {
		r.enforceCapacity = on
	}
}

// NewRegistry constructs a Registry seeded with the given activities.
// The activity set is fixed for the lifetime of the process; only
// rosters mutate afterwards.
func NewRegistry(seed []Activity, opts ...RegistryOption) *Registry {
	r := &Registry{
		activities: make(map[string]*Activity, len(seed)),
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, activity := range seed {
		copied := activity
		copied.Roster = append([]string(nil), activity.Roster...)
		r.activities[copied.Name] = &copied
	}
	return r
}

// List returns a snapshot of every activity keyed by name. Rosters are
// copied so callers cannot alias registry state.
func (r *Registry) List() map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Activity, len(r.activities))
	for name, activity := range r.activities {
		snapshot := *activity
		snapshot.Roster = append([]string(nil), activity.Roster...)
		out[name] = snapshot
	}
	return out
}

// Get returns a snapshot of a single activity.
func (r *Registry) Get(name string) (Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return Activity{}, ErrActivityNotFound
	}
	snapshot := *activity
	snapshot.Roster = append([]string(nil), activity.Roster...)
	return snapshot, nil
}

// Enroll appends the student to the named activity's roster. All checks
// run before any mutation, so a rejected enrollment never partially
// applies.
func (r *Registry) Enroll(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if activity.enrolled(email) {
		return ErrAlreadyEnrolled
	}
	if r.enforceCapacity && len(activity.Roster) >= activity.Capacity {
		return ErrActivityFull
	}

	activity.Roster = append(activity.Roster, email)
	return nil
}

// Unenroll removes the first matching roster entry for the student.
func (r *Registry) Unenroll(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	for i, member := range activity.Roster {
		if member == email {
			activity.Roster = append(activity.Roster[:i], activity.Roster[i+1:]...)
			return nil
		}
	}
	return ErrNotEnrolled
}
