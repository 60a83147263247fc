package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chooselife/strongfoundations/services/auth-service/internal/domain"

	"github.com/google/uuid"
)

// CreateInvite stores a single-use invitation for email and mails it.
func (uc *AuthUseCase) CreateInvite(ctx context.Context, email, invitedBy string) (*domain.Invite, error) {
	email = strings.TrimSpace(email)
	if err := uc.validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: email is not valid", domain.ErrInvalidInput)
	}

	inv := &domain.Invite{
		Token:     uuid.NewString(),
		Email:     email,
		InvitedBy: invitedBy,
		ExpiresAt: uc.now().Add(domain.InviteTTL).UTC(),
	}
	if err := uc.inviteRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	uc.mail("invite", func(ctx context.Context) error {
		return uc.emailSender.SendInvite(ctx, inv.Email, inv.Token)
	})
	return inv, nil
}

// ValidateInvite reports whether token can still be redeemed and for which
// address. Unknown tokens are simply not valid.
func (uc *AuthUseCase) ValidateInvite(ctx context.Context, token string) (string, bool, error) {
	if token == "" {
		return "", false, nil
	}
	inv, err := uc.inviteRepo.Get(ctx, token)
	if errors.Is(err, domain.ErrInviteInvalid) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if !inv.Usable(uc.now()) {
		return "", false, nil
	}
	return inv.Email, true, nil
}
