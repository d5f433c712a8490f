package service

import "github.com/google/uuid"

// Decision is the outcome of an ownership check.
type Decision int

const (
	// Denied means the caller does not own the resource. The delivery layer
	// must render this exactly like a missing resource so existence never
	// leaks across tenants.
	Denied Decision = iota
	// Allowed means the caller owns the resource.
	Allowed
)

// OwnershipGuard decides whether an authenticated caller may touch a
// resource. It is a pure function over the two identifiers; every task read,
// update and delete routes through it before any mutation happens.
type OwnershipGuard struct{}

// NewOwnershipGuard is the constructor for OwnershipGuard.
func NewOwnershipGuard() *OwnershipGuard {
	return &OwnershipGuard{}
}

// Authorize compares the caller's identity against the resource owner.
// The comparison runs over the canonical textual form of both identifiers so
// that differently-typed but equal IDs can never slip past the check.
func (g *OwnershipGuard) Authorize(callerID, ownerID uuid.UUID) Decision {
	if callerID == uuid.Nil || ownerID == uuid.Nil {
		return Denied
	}
	if callerID.String() != ownerID.String() {
		return Denied
	}

	return Allowed
}
