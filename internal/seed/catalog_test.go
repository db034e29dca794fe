package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)
	require.NotEmpty(t, catalog.Tenants)

	for _, tenant := range catalog.Tenants {
		assert.NotEmpty(t, tenant.TenantID)
		require.NotEmpty(t, tenant.Courses)
		for _, course := range tenant.Courses {
			assert.NotEmpty(t, course.Title)
			assert.NotEmpty(t, course.OwnerID)
			if course.Price != nil {
				assert.GreaterOrEqual(t, *course.Price, 0.0)
			}
		}
	}
}
