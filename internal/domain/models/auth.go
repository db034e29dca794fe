package models

import "github.com/golang-jwt/jwt/v5"

// RoleAdmin is the role name that grants unconditional mutation rights.
// Role names are case-sensitive.
const RoleAdmin = "ADMIN"

// CourseClaims represents the JWT claims structure issued by the identity
// provider. Tokens are verified cryptographically before these claims are
// trusted; the service only consumes them.
type CourseClaims struct {
	jwt.RegisteredClaims          // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	TenantID             string   `json:"tenant_id"`
	Roles                []string `json:"roles"`
	Email                string   `json:"email"`
}

// Principal is the authenticated caller's identity reduced to what the
// authorization decision needs: subject id, tenant id, and role set.
// Derived per-request from verified claims, never persisted.
type Principal struct {
	SubjectID string
	TenantID  string
	Roles     []string
}

// HasRole reports whether the principal carries the given role.
// Comparison is case-sensitive.
func (p *Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the principal carries the ADMIN role.
func (p *Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}
