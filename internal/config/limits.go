package config

const (
	// MaxCourseTitleLength is the maximum length for course titles.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (titles should be short and descriptive).
	MaxCourseTitleLength = 255

	// MaxCourseDescriptionLength is the maximum length for course
	// descriptions. Long-form content belongs in course materials, not the
	// catalog entry.
	MaxCourseDescriptionLength = 4000
)
