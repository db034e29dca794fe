package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogFile []byte

// Catalog is the embedded demo course catalog
type Catalog struct {
	Tenants []TenantCourses `yaml:"tenants"`
}

// TenantCourses groups seed courses under one tenant
type TenantCourses struct {
	TenantID string       `yaml:"tenant_id"`
	Courses  []SeedCourse `yaml:"courses"`
}

// SeedCourse is one demo course entry
type SeedCourse struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Price       *float64 `yaml:"price"`
	OwnerID     string   `yaml:"owner_id"`
}

// LoadCatalog parses the embedded demo catalog
func LoadCatalog() (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(catalogFile, &catalog); err != nil {
		return nil, fmt.Errorf("unmarshal seed catalog: %w", err)
	}

	for _, tenant := range catalog.Tenants {
		if tenant.TenantID == "" {
			return nil, fmt.Errorf("seed catalog: tenant with empty tenant_id")
		}
		for _, course := range tenant.Courses {
			if course.Title == "" || course.OwnerID == "" {
				return nil, fmt.Errorf("seed catalog: course under tenant %s missing title or owner_id", tenant.TenantID)
			}
		}
	}

	return &catalog, nil
}
