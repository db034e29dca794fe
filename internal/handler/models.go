package handler

import (
	"time"

	"maestria/internal/domain/models"
)

// CourseResponse is the outward-facing course representation. The tenant id
// is deliberately excluded: it is an internal isolation marker.
type CourseResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       *float64  `json:"price,omitempty"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CourseListResponse wraps the full course collection
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
	Total   int              `json:"total"`
}

// toCourseResponse converts a domain course to its API representation
func toCourseResponse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		Price:       course.Price,
		OwnerID:     course.OwnerID,
		CreatedAt:   course.CreatedAt,
		UpdatedAt:   course.UpdatedAt,
	}
}

// toCourseListResponse converts a course slice to its API representation
func toCourseListResponse(courses []models.Course) CourseListResponse {
	out := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, toCourseResponse(&courses[i]))
	}
	return CourseListResponse{
		Courses: out,
		Total:   len(out),
	}
}
