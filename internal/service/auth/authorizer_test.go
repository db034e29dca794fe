package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"maestria/internal/domain"
	"maestria/internal/domain/models"
	"maestria/internal/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOwnershipResolver serves owner lookups from a map and records how many
// lookups were made.
type fakeOwnershipResolver struct {
	owners  map[string]string
	failure error
	lookups int
}

func (f *fakeOwnershipResolver) ResolveOwner(ctx context.Context, id string) (string, error) {
	f.lookups++
	if f.failure != nil {
		return "", f.failure
	}
	ownerID, ok := f.owners[id]
	if !ok {
		return "", fmt.Errorf("course %s: %w", id, domain.ErrNotFound)
	}
	return ownerID, nil
}

func principalWithRoles(subjectID string, roles ...string) *models.Principal {
	return &models.Principal{
		SubjectID: subjectID,
		TenantID:  "2e9a27d4-4f4f-4ce0-9a7e-49c5a30bdb5f",
		Roles:     roles,
	}
}

func TestAuthorizeMutate(t *testing.T) {
	const (
		courseID = "5c3f7a88-04a9-4b9f-9a56-0a4a1c2d3e4f"
		ownerID  = "11111111-1111-4111-8111-111111111111"
		otherID  = "22222222-2222-4222-8222-222222222222"
	)

	tests := []struct {
		name      string
		principal *models.Principal
		owners    map[string]string
		want      services.Decision
	}{
		{
			name:      "owner is allowed",
			principal: principalWithRoles(ownerID),
			owners:    map[string]string{courseID: ownerID},
			want:      services.DecisionAllow,
		},
		{
			name:      "non-owner is denied",
			principal: principalWithRoles(otherID),
			owners:    map[string]string{courseID: ownerID},
			want:      services.DecisionDeny,
		},
		{
			name:      "admin is allowed regardless of ownership",
			principal: principalWithRoles(otherID, models.RoleAdmin),
			owners:    map[string]string{courseID: ownerID},
			want:      services.DecisionAllow,
		},
		{
			name:      "admin is allowed even when course is absent",
			principal: principalWithRoles(otherID, models.RoleAdmin),
			owners:    map[string]string{},
			want:      services.DecisionAllow,
		},
		{
			name:      "non-admin gets not-found when course is absent",
			principal: principalWithRoles(otherID),
			owners:    map[string]string{},
			want:      services.DecisionDenyNotFound,
		},
		{
			name:      "instructor role alone grants nothing",
			principal: principalWithRoles(otherID, "INSTRUCTOR"),
			owners:    map[string]string{courseID: ownerID},
			want:      services.DecisionDeny,
		},
		{
			name:      "role comparison is case-sensitive",
			principal: principalWithRoles(otherID, "admin"),
			owners:    map[string]string{courseID: ownerID},
			want:      services.DecisionDeny,
		},
		{
			name:      "empty role set falls back to ownership",
			principal: principalWithRoles(ownerID),
			owners:    map[string]string{courseID: ownerID},
			want:      services.DecisionAllow,
		},
		{
			name:      "nil principal is denied",
			principal: nil,
			owners:    map[string]string{courseID: ownerID},
			want:      services.DecisionDeny,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &fakeOwnershipResolver{owners: tt.owners}
			authorizer := NewOwnerAdminAuthorizer(resolver)

			decision, err := authorizer.Authorize(context.Background(), tt.principal, services.CapabilityMutate, courseID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, decision)
		})
	}
}

func TestAuthorizeAdminSkipsOwnershipLookup(t *testing.T) {
	// The role check must short-circuit before any ownership lookup.
	resolver := &fakeOwnershipResolver{owners: map[string]string{}}
	authorizer := NewOwnerAdminAuthorizer(resolver)

	admin := principalWithRoles("33333333-3333-4333-8333-333333333333", models.RoleAdmin)
	decision, err := authorizer.Authorize(context.Background(), admin, services.CapabilityMutate, "any-id")
	require.NoError(t, err)
	assert.Equal(t, services.DecisionAllow, decision)
	assert.Zero(t, resolver.lookups)
}

func TestAuthorizeReadsAreUnrestricted(t *testing.T) {
	resolver := &fakeOwnershipResolver{owners: map[string]string{}}
	authorizer := NewOwnerAdminAuthorizer(resolver)

	for _, capability := range []services.Capability{services.CapabilityReadOne, services.CapabilityReadAll} {
		decision, err := authorizer.Authorize(context.Background(), nil, capability, "any-id")
		require.NoError(t, err)
		assert.Equal(t, services.DecisionAllow, decision)
	}
	assert.Zero(t, resolver.lookups)
}

func TestAuthorizeStorageFailure(t *testing.T) {
	// A storage failure is surfaced as an error, not conflated with deny.
	resolver := &fakeOwnershipResolver{failure: errors.New("connection refused")}
	authorizer := NewOwnerAdminAuthorizer(resolver)

	principal := principalWithRoles("44444444-4444-4444-8444-444444444444")
	_, err := authorizer.Authorize(context.Background(), principal, services.CapabilityMutate, "some-id")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestAuthorizeUnknownCapability(t *testing.T) {
	authorizer := NewOwnerAdminAuthorizer(&fakeOwnershipResolver{})

	decision, err := authorizer.Authorize(context.Background(), principalWithRoles("55555555-5555-4555-8555-555555555555"), "GRANT", "some-id")
	require.Error(t, err)
	assert.Equal(t, services.DecisionDeny, decision)
}
