package identity

import "github.com/google/uuid"

// Role is the caller's role as resolved by the upstream authentication
// layer. The engine authorizes per operation but never verifies credentials.
type Role string

const (
	RoleRequester Role = "requester"
	RoleAgent     Role = "agent"
	RoleAdmin     Role = "admin"
)

// Caller is the opaque identity attached to every engine call.
type Caller struct {
	ID   uuid.UUID
	Role Role
}

func (c Caller) IsAdmin() bool { return c.Role == RoleAdmin }
