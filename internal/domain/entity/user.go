// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Each user owns a private
// collection of tasks; nothing a user creates is visible to another tenant.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // Display handle, unique across the system, 1-100 characters.
	Email        string    // The user's login identifier, unique across the system.
	PasswordHash string    // The bcrypt digest of the user's password. Never serialized to tenant-facing responses.
	Role         Role      // Authorization role carried into issued tokens.
	IsActive     bool      // Soft activation flag; accounts are never hard-deleted.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
