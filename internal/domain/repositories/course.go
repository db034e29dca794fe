package repositories

import (
	"context"

	"maestria/internal/domain/models"
)

// CourseRepository defines data access operations for courses
type CourseRepository interface {
	// Create persists a new course with its pre-assigned ID and timestamps
	Create(ctx context.Context, course *models.Course) error

	// GetByID retrieves a course by ID.
	// Returns domain.ErrNotFound if no course exists with that ID.
	GetByID(ctx context.Context, id string) (*models.Course, error)

	// List retrieves all courses in insertion order
	List(ctx context.Context) ([]models.Course, error)

	// Update persists the mutable fields (title, description, price) and
	// updated_at of an existing course.
	// Returns domain.ErrNotFound if the course no longer exists.
	Update(ctx context.Context, course *models.Course) error

	// Delete removes a course by ID. Idempotent: deleting an absent ID is
	// not an error at this layer.
	Delete(ctx context.Context, id string) error

	// ResolveOwner maps a course ID to its current owner's subject ID.
	// Returns domain.ErrNotFound if the course does not exist. Queried
	// fresh for every authorization decision, never cached: ownership is
	// immutable but the course may have been deleted concurrently.
	ResolveOwner(ctx context.Context, id string) (string, error)
}
