package model

import "github.com/google/uuid"

// Principal is the authenticated staff session extracted from the access
// token. The session provider itself lives outside this service.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Role     StaffRole
}
