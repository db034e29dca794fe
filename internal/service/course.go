package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"maestria/internal/config"
	"maestria/internal/domain"
	"maestria/internal/domain/models"
	"maestria/internal/domain/repositories"
	"maestria/internal/domain/services"
	authSvc "maestria/internal/service/auth"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// courseService implements the CourseService interface
type courseService struct {
	courseRepo repositories.CourseRepository
	authorizer services.CourseAuthorizer
	logger     *slog.Logger
}

// NewCourseService creates a new course service
func NewCourseService(
	courseRepo repositories.CourseRepository,
	authorizer services.CourseAuthorizer,
	logger *slog.Logger,
) services.CourseService {
	return &courseService{
		courseRepo: courseRepo,
		authorizer: authorizer,
		logger:     logger,
	}
}

// CreateCourse creates a new course owned by the principal. Any
// authenticated principal may create; no role is checked at creation.
// Owner and tenant come from the principal, never from the payload.
func (s *courseService) CreateCourse(ctx context.Context, principal *models.Principal, req *services.CreateCourseRequest) (*models.Course, error) {
	if err := authSvc.RequireTenant(principal); err != nil {
		return nil, err
	}

	if err := s.validateCourseFields(req.Title, req.Description, req.Price); err != nil {
		return nil, &domain.ValidationError{Message: fmt.Sprintf("validation failed: %v", err)}
	}

	now := time.Now()
	course := &models.Course{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		OwnerID:     principal.SubjectID,
		TenantID:    principal.TenantID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info("course created",
		"id", course.ID,
		"title", course.Title,
		"owner_id", course.OwnerID,
		"tenant_id", course.TenantID,
	)

	return course, nil
}

// GetCourse retrieves a course by ID. Reads are open: no principal needed.
func (s *courseService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// ListCourses retrieves all courses in insertion order
func (s *courseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.courseRepo.List(ctx)
}

// UpdateCourse replaces title, description and price of an existing course.
// Non-supplied fields are overwritten too: there is no partial patch.
func (s *courseService) UpdateCourse(ctx context.Context, principal *models.Principal, id string, req *services.UpdateCourseRequest) (*models.Course, error) {
	if err := s.authorizeMutation(ctx, principal, id); err != nil {
		return nil, err
	}

	if err := s.validateCourseFields(req.Title, req.Description, req.Price); err != nil {
		return nil, &domain.ValidationError{Message: fmt.Sprintf("validation failed: %v", err)}
	}

	// Load after the decision: an admin passes authorization even for a
	// course that no longer exists, and learns about it here.
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.Title = strings.TrimSpace(req.Title)
	course.Description = strings.TrimSpace(req.Description)
	course.Price = req.Price
	course.UpdatedAt = time.Now()

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info("course updated",
		"id", course.ID,
		"title", course.Title,
		"subject_id", principal.SubjectID,
	)

	return course, nil
}

// DeleteCourse removes a course. The delete itself is idempotent at the
// storage boundary; for non-admin callers the authorization decision has
// already reported not-found.
func (s *courseService) DeleteCourse(ctx context.Context, principal *models.Principal, id string) error {
	if err := s.authorizeMutation(ctx, principal, id); err != nil {
		return err
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("course deleted",
		"id", id,
		"subject_id", principal.SubjectID,
	)

	return nil
}

// authorizeMutation maps the authorization decision onto the error taxonomy:
// deny becomes Forbidden, an absent course becomes NotFound. The 403 vs 404
// distinction reveals existence to non-owners; deliberate in this design.
func (s *courseService) authorizeMutation(ctx context.Context, principal *models.Principal, id string) error {
	decision, err := s.authorizer.Authorize(ctx, principal, services.CapabilityMutate, id)
	if err != nil {
		return err
	}

	switch decision {
	case services.DecisionAllow:
		return nil
	case services.DecisionDenyNotFound:
		return &domain.NotFoundError{Message: fmt.Sprintf("course %s not found", id)}
	default:
		return &domain.ForbiddenError{Message: fmt.Sprintf("not allowed to modify course %s", id)}
	}
}

// validateCourseFields validates the mutable course fields shared by create
// and update requests
func (s *courseService) validateCourseFields(title, description string, price *float64) error {
	if err := validation.Validate(strings.TrimSpace(title),
		validation.Required.Error("title cannot be empty"),
		validation.Length(1, config.MaxCourseTitleLength),
	); err != nil {
		return fmt.Errorf("title: %v", err)
	}

	if err := validation.Validate(strings.TrimSpace(description),
		validation.Required.Error("description cannot be empty"),
		validation.Length(1, config.MaxCourseDescriptionLength),
	); err != nil {
		return fmt.Errorf("description: %v", err)
	}

	if price != nil && *price < 0 {
		return fmt.Errorf("price: must be no less than 0")
	}

	return nil
}
