package auth

import (
	"context"
	"errors"
	"fmt"

	"maestria/internal/domain"
	"maestria/internal/domain/models"
	"maestria/internal/domain/services"
)

// OwnerAdminAuthorizer implements CourseAuthorizer with the "ADMIN role OR
// ownership" rule. No other role grants mutation rights.
//
// Decision order for MUTATE:
//  1. ADMIN role allows unconditionally, before any ownership lookup. An
//     admin is never blocked by a missing course; the lifecycle layer
//     reports not-found independently.
//  2. The owner is resolved fresh from storage. An absent course yields
//     DecisionDenyNotFound, kept distinct from a plain deny.
//  3. A subject ID matching the owner allows; anything else denies.
//
// The authorizer logs nothing itself; decision telemetry belongs to callers.
type OwnerAdminAuthorizer struct {
	owners services.OwnershipResolver
}

// NewOwnerAdminAuthorizer creates a new role-or-ownership authorizer
func NewOwnerAdminAuthorizer(owners services.OwnershipResolver) *OwnerAdminAuthorizer {
	return &OwnerAdminAuthorizer{owners: owners}
}

// Authorize returns the decision for the principal and capability.
func (a *OwnerAdminAuthorizer) Authorize(ctx context.Context, principal *models.Principal, capability services.Capability, courseID string) (services.Decision, error) {
	switch capability {
	case services.CapabilityReadOne, services.CapabilityReadAll:
		// Reads are intentionally unrestricted, across tenants.
		return services.DecisionAllow, nil
	case services.CapabilityMutate:
		// fall through
	default:
		return services.DecisionDeny, fmt.Errorf("unknown capability %q", capability)
	}

	if principal == nil {
		return services.DecisionDeny, nil
	}

	if principal.IsAdmin() {
		return services.DecisionAllow, nil
	}

	ownerID, err := a.owners.ResolveOwner(ctx, courseID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return services.DecisionDenyNotFound, nil
		}
		return services.DecisionDeny, fmt.Errorf("resolve owner of course %s: %w", courseID, err)
	}

	if principal.SubjectID == ownerID {
		return services.DecisionAllow, nil
	}

	return services.DecisionDeny, nil
}
