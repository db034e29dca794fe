package auth

import (
	"fmt"

	"maestria/internal/domain"
	"maestria/internal/domain/models"

	"github.com/google/uuid"
)

// ExtractPrincipal reduces verified token claims to a Principal. Pure: no
// side effects, no I/O. The token is assumed already cryptographically
// verified; this only shapes its claims.
//
// The subject claim must be an identifier-shaped (UUID) string, otherwise
// domain.ErrMalformedIdentity. An absent roles claim yields an empty role
// set, not an error. The tenant claim is optional here; creation flows
// enforce its presence via Principal.RequireTenant.
func ExtractPrincipal(claims *models.CourseClaims) (*models.Principal, error) {
	if claims == nil {
		return nil, fmt.Errorf("nil claims: %w", domain.ErrMalformedIdentity)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("subject claim absent: %w", domain.ErrMalformedIdentity)
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, fmt.Errorf("subject claim %q is not an identifier: %w", claims.Subject, domain.ErrMalformedIdentity)
	}

	roles := claims.Roles
	if roles == nil {
		roles = []string{}
	}

	return &models.Principal{
		SubjectID: claims.Subject,
		TenantID:  claims.TenantID,
		Roles:     roles,
	}, nil
}

// RequireTenant fails with domain.ErrMissingTenant when the principal has no
// tenant claim. Called on flows that stamp tenant onto a resource.
func RequireTenant(p *models.Principal) error {
	if p.TenantID == "" {
		return fmt.Errorf("principal %s: %w", p.SubjectID, domain.ErrMissingTenant)
	}
	return nil
}
