// pkg/registry/registry.go
package registry

import (
	"fmt"
	"sync"

	"activities-api/internal/models"

	apierrors "activities-api/internal/common/errors"
)

// Registry holds the activity catalog, keyed by activity name, and enforces
// the membership invariants on mutation. The HTTP server runs handlers on
// separate goroutines, so all access goes through the mutex.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
	seed       map[string]*models.Activity
}

// New builds a registry from a catalog. The catalog is copied so the caller's
// map and the registry never alias; it is also retained as the reset target.
func New(catalog map[string]*models.Activity) *Registry {
	return &Registry{
		activities: cloneCatalog(catalog),
		seed:       cloneCatalog(catalog),
	}
}

// NewFromSeed builds a registry from the built-in catalog.
func NewFromSeed() (*Registry, error) {
	catalog, err := SeedCatalog()
	if err != nil {
		return nil, err
	}
	return New(catalog), nil
}

// List returns a copy of the full name -> record mapping as held.
func (r *Registry) List() map[string]*models.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneCatalog(r.activities)
}

// Get returns a copy of one activity record.
func (r *Registry) Get(name string) (*models.Activity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	activity, ok := r.activities[name]
	if !ok {
		return nil, false
	}
	return activity.Clone(), true
}

// Signup appends email to the activity's participant list. It fails with
// ACTIVITY_NOT_FOUND for an unknown name and ALREADY_SIGNED_UP for a
// duplicate email. Capacity (max_participants) is intentionally not checked:
// the system this reproduces never enforced it, and enforcing it would add a
// new failure mode to the API.
func (r *Registry) Signup(name, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return "", apierrors.NewActivityNotFoundError(name)
	}

	if activity.HasParticipant(email) {
		return "", apierrors.NewAlreadySignedUpError(email, name)
	}

	activity.Participants = append(activity.Participants, email)
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister removes email from the activity's participant list. It fails
// with ACTIVITY_NOT_FOUND for an unknown name and NOT_SIGNED_UP when the
// email is not on the list.
func (r *Registry) Unregister(name, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return "", apierrors.NewActivityNotFoundError(name)
	}

	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return fmt.Sprintf("Unregistered %s from %s", email, name), nil
		}
	}

	return "", apierrors.NewNotSignedUpError(email, name)
}

// ParticipantCount returns the current participant count for an activity.
func (r *Registry) ParticipantCount(name string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	activity, ok := r.activities[name]
	if !ok {
		return 0, false
	}
	return len(activity.Participants), true
}

// Reset restores the registry to its seeded catalog.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities = cloneCatalog(r.seed)
}

func cloneCatalog(catalog map[string]*models.Activity) map[string]*models.Activity {
	out := make(map[string]*models.Activity, len(catalog))
	for name, activity := range catalog {
		out[name] = activity.Clone()
	}
	return out
}
