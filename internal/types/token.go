package types

import (
	"github.com/google/uuid"
)

// TokenClaims is the caller identity extracted from a validated token.
type TokenClaims struct {
	UserID uuid.UUID
}
