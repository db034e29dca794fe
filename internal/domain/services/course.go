package services

import (
	"context"

	"maestria/internal/domain/models"
)

// CreateCourseRequest represents a request to create a course.
// Owner and tenant are never taken from the payload; they are stamped from
// the authenticated principal.
type CreateCourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
}

// UpdateCourseRequest represents a request to update a course. There are no
// partial-patch semantics: every call replaces title, description and price.
type UpdateCourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
}

// CourseService defines business logic operations for courses
type CourseService interface {
	// CreateCourse creates a new course owned by the principal.
	// Fails with domain.ErrMissingTenant if the principal has no tenant.
	CreateCourse(ctx context.Context, principal *models.Principal, req *CreateCourseRequest) (*models.Course, error)

	// GetCourse retrieves a course by ID. No authorization gate: reads are
	// open, across tenants.
	GetCourse(ctx context.Context, id string) (*models.Course, error)

	// ListCourses retrieves all courses in insertion order. No pagination
	// or tenant scoping; callers needing scoping must wrap this.
	ListCourses(ctx context.Context) ([]models.Course, error)

	// UpdateCourse replaces the mutable fields of a course. Requires the
	// principal to be the owner or carry the ADMIN role.
	UpdateCourse(ctx context.Context, principal *models.Principal, id string, req *UpdateCourseRequest) (*models.Course, error)

	// DeleteCourse removes a course. Requires the principal to be the owner
	// or carry the ADMIN role.
	DeleteCourse(ctx context.Context, principal *models.Principal, id string) error
}
