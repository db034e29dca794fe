package services

import (
	"context"

	"maestria/internal/domain/models"
)

// Capability names what an operation needs from the authorization decision.
// Update and delete carry identical authorization semantics, so both map to
// CapabilityMutate. Reads are unrestricted in this design.
type Capability string

const (
	CapabilityMutate  Capability = "MUTATE"
	CapabilityReadOne Capability = "READ_ONE"
	CapabilityReadAll Capability = "READ_ALL"
)

// Decision is the output of an authorization check for a course operation.
type Decision int

const (
	// DecisionDeny means the principal may not perform the operation.
	DecisionDeny Decision = iota

	// DecisionAllow means the principal may perform the operation.
	DecisionAllow

	// DecisionDenyNotFound means the ownership lookup found no course.
	// Distinguished from DecisionDeny so callers can surface 404 instead of
	// 403; the two must not be conflated for audit clarity.
	DecisionDenyNotFound
)

// String returns the decision name for logging by callers.
func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "ALLOW"
	case DecisionDenyNotFound:
		return "DENY_NOT_FOUND"
	default:
		return "DENY"
	}
}

// OwnershipResolver maps a course ID to its current owner's subject ID,
// returning domain.ErrNotFound when the course does not exist. The single
// point where the authorization decision touches persisted state.
type OwnershipResolver interface {
	ResolveOwner(ctx context.Context, id string) (string, error)
}

// CourseAuthorizer decides whether a principal may perform an operation on a
// course, combining role-based access with ownership verification.
//
// Design principle: services call the authorizer imperatively before
// operating on resources. This separates authorization (who can access)
// from identification (which resource), and keeps the decision
// independently unit-testable.
type CourseAuthorizer interface {
	// Authorize returns the decision for the given principal, capability and
	// course ID. The returned error is reserved for lookup failures
	// (storage errors); a deny is a Decision, not an error.
	Authorize(ctx context.Context, principal *models.Principal, capability Capability, courseID string) (Decision, error)
}
