package domain

import (
	"errors"
	"time"
)

var (
	ErrInviteRequired = errors.New("an invitation is required to register")
	ErrInviteInvalid  = errors.New("invitation is invalid, used or expired")
)

const InviteTTL = 7 * 24 * time.Hour

// Invite lets one person register. It is consumed on first use.
type Invite struct {
	Token     string
	Email     string
	InvitedBy string
	ExpiresAt time.Time
	IsUsed    bool
	UsedAt    *time.Time
	CreatedAt time.Time
}

// Usable reports whether the invite can still be redeemed at now.
func (i *Invite) Usable(now time.Time) bool {
	return !i.IsUsed && now.Before(i.ExpiresAt)
}
