package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet holds a user's money balance in integer minor units (poisha).
// Exactly one wallet exists per USER or AGENT account. The balance is
// mutated only by the transfer engine inside an atomic unit of work and
// must never go negative.
type Wallet struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Balance   int64     `json:"balance"`
	Blocked   bool      `json:"blocked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
