package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"maestria/internal/domain"
	"maestria/internal/domain/models"
	"maestria/internal/domain/repositories"
)

// PostgresCourseRepository implements the CourseRepository interface
type PostgresCourseRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(config *RepositoryConfig) repositories.CourseRepository {
	return &PostgresCourseRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create persists a new course
func (r *PostgresCourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, title, description, price, owner_id, tenant_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.tables.Courses)

	_, err := r.pool.Exec(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.Price,
		course.OwnerID,
		course.TenantID,
		course.CreatedAt,
		course.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *PostgresCourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := fmt.Sprintf(`
		SELECT id, title, description, price, owner_id, tenant_id, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Courses)

	var course models.Course
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Price,
		&course.OwnerID,
		&course.TenantID,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		if isPgNoRowsError(err) || isPgInvalidUUIDError(err) {
			return nil, fmt.Errorf("course %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get course: %w", err)
	}

	return &course, nil
}

// List retrieves all courses ordered by insertion time
func (r *PostgresCourseRepository) List(ctx context.Context) ([]models.Course, error) {
	query := fmt.Sprintf(`
		SELECT id, title, description, price, owner_id, tenant_id, created_at, updated_at
		FROM %s
		ORDER BY created_at ASC
	`, r.tables.Courses)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Description,
			&course.Price,
			&course.OwnerID,
			&course.TenantID,
			&course.CreatedAt,
			&course.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", err)
	}

	// Return empty slice instead of nil if no courses
	if courses == nil {
		courses = []models.Course{}
	}

	return courses, nil
}

// Update persists the mutable fields and updated_at of an existing course.
// Owner and tenant are immutable and never part of the SET list.
func (r *PostgresCourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, description = $2, price = $3, updated_at = $4
		WHERE id = $5
	`, r.tables.Courses)

	result, err := r.pool.Exec(ctx, query,
		course.Title,
		course.Description,
		course.Price,
		course.UpdatedAt,
		course.ID,
	)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("course %s: %w", course.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a course by ID. Deleting an absent ID is not an error.
func (r *PostgresCourseRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Courses)

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		if isPgInvalidUUIDError(err) {
			return nil
		}
		return fmt.Errorf("delete course: %w", err)
	}

	return nil
}

// ResolveOwner maps a course ID to its owner's subject ID
func (r *PostgresCourseRepository) ResolveOwner(ctx context.Context, id string) (string, error) {
	query := fmt.Sprintf(`
		SELECT owner_id
		FROM %s
		WHERE id = $1
	`, r.tables.Courses)

	var ownerID string
	err := r.pool.QueryRow(ctx, query, id).Scan(&ownerID)
	if err != nil {
		if isPgNoRowsError(err) || isPgInvalidUUIDError(err) {
			return "", fmt.Errorf("course %s: %w", id, domain.ErrNotFound)
		}
		return "", fmt.Errorf("resolve owner: %w", err)
	}

	return ownerID, nil
}
