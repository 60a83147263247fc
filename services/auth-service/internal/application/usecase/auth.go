package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/chooselife/strongfoundations/pkg/logger"
	"github.com/chooselife/strongfoundations/services/auth-service/internal/domain"
	"github.com/chooselife/strongfoundations/services/auth-service/internal/infrastructure/security"
	"github.com/chooselife/strongfoundations/services/user-service/pkg/userpb"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const mailTimeout = 30 * time.Second

type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, hash string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type InviteStore interface {
	Create(ctx context.Context, inv *domain.Invite) error
	Get(ctx context.Context, token string) (*domain.Invite, error)
	Consume(ctx context.Context, token string, now time.Time) error
	Release(ctx context.Context, token string) error
}

type TokenStore interface {
	SaveRefresh(ctx context.Context, userID, refreshToken string) error
	CheckRefresh(ctx context.Context, refreshToken string) (string, error)
	DeleteRefresh(ctx context.Context, refreshToken string) error
	SaveResetToken(ctx context.Context, token, userID string) error
	TakeResetToken(ctx context.Context, token string) (string, error)
}

type Mailer interface {
	SendInvite(ctx context.Context, toEmail, token string) error
	SendResetEmail(ctx context.Context, toEmail, token string) error
}

type Options struct {
	// InviteOnly refuses sign-ups that do not redeem an invitation.
	InviteOnly bool
}

type AuthUseCase struct {
	userRepo     UserStore
	inviteRepo   InviteStore
	tokenCache   TokenStore
	hasher       *security.PasswordHasher
	tokenManager *security.TokenManager
	emailSender  Mailer
	userClient   userpb.UserServiceClient
	validate     *validator.Validate
	log          *logger.Logger
	opts         Options
	now          func() time.Time

	background sync.WaitGroup
}

func NewAuthUseCase(
	ur UserStore,
	ir InviteStore,
	tc TokenStore,
	h *security.PasswordHasher,
	tm *security.TokenManager,
	es Mailer,
	uc userpb.UserServiceClient,
	log *logger.Logger,
	opts Options,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     ur,
		inviteRepo:   ir,
		tokenCache:   tc,
		hasher:       h,
		tokenManager: tm,
		emailSender:  es,
		userClient:   uc,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		log:          log,
		opts:         opts,
		now:          time.Now,
	}
}

// RegisterInput mirrors the sign-up form.
type RegisterInput struct {
	Email         string `validate:"required,email"`
	Password      string `validate:"required,min=6"`
	FirstName     string `validate:"required,min=2"`
	LastName      string `validate:"required,min=2"`
	ContactNumber string `validate:"omitempty,min=10"`
	Age           *int   `validate:"omitempty,min=13,max=120"`
	MaritalStatus string `validate:"omitempty,oneof=single married divorced widowed other"`
	InviteToken   string
}

// Register creates the account and the learner profile. When any step after
// the invite is consumed fails, the invite is reopened and a half-created
// account is removed.
func (uc *AuthUseCase) Register(ctx context.Context, in RegisterInput) (string, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if err := uc.validate.Struct(in); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, describe(err))
	}

	consumed := false
	if in.InviteToken != "" || uc.opts.InviteOnly {
		if in.InviteToken == "" {
			return "", domain.ErrInviteRequired
		}
		if err := uc.redeemInvite(ctx, in.InviteToken, in.Email); err != nil {
			return "", err
		}
		consumed = true
	}
	release := func() {
		if !consumed {
			return
		}
		if err := uc.inviteRepo.Release(context.WithoutCancel(ctx), in.InviteToken); err != nil {
			uc.log.Error("failed to reopen invite", "error", err)
		}
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		release()
		return "", err
	}

	user := &domain.User{ID: uuid.New(), Email: in.Email, PasswordHash: hash}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		release()
		return "", err
	}

	_, err = uc.userClient.CreateProfile(ctx, &userpb.CreateProfileRequest{
		UserID:        user.ID.String(),
		Email:         in.Email,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		ContactNumber: in.ContactNumber,
		Age:           in.Age,
		MaritalStatus: in.MaritalStatus,
	})
	if err != nil {
		uc.log.Error("create profile failed, rolling back sign-up", "user_id", user.ID.String(), "error", err)
		if delErr := uc.userRepo.Delete(context.WithoutCancel(ctx), user.ID); delErr != nil {
			uc.log.Error("rollback of user failed", "user_id", user.ID.String(), "error", delErr)
		}
		release()
		return "", err
	}

	uc.log.Info("user registered", "user_id", user.ID.String(), "invited", consumed)
	return user.ID.String(), nil
}

func (uc *AuthUseCase) redeemInvite(ctx context.Context, token, email string) error {
	inv, err := uc.inviteRepo.Get(ctx, token)
	if err != nil {
		return err
	}
	if inv.Email != "" && !strings.EqualFold(inv.Email, email) {
		return domain.ErrInviteInvalid
	}
	return uc.inviteRepo.Consume(ctx, token, uc.now())
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", "", err
	}
	if err := uc.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", "", domain.ErrInvalidCredentials
	}
	return uc.generateAndSaveTokens(ctx, user.ID.String(), user.Email)
}

// ValidateAccess returns the user id and e-mail carried by an access token.
func (uc *AuthUseCase) ValidateAccess(token string) (string, string, error) {
	claims, err := uc.tokenManager.ValidateAccessToken(token)
	if err != nil {
		return "", "", domain.ErrInvalidToken
	}
	return claims.Subject, claims.Email, nil
}

// Refresh rotates a refresh token: the presented one stops working.
func (uc *AuthUseCase) Refresh(ctx context.Context, oldRefreshToken string) (string, string, error) {
	claims, err := uc.tokenManager.ValidateRefreshToken(oldRefreshToken)
	if err != nil {
		return "", "", domain.ErrInvalidToken
	}

	cachedID, err := uc.tokenCache.CheckRefresh(ctx, oldRefreshToken)
	if err != nil {
		return "", "", err
	}
	if cachedID != claims.Subject {
		return "", "", domain.ErrInvalidToken
	}
	if err := uc.tokenCache.DeleteRefresh(ctx, oldRefreshToken); err != nil {
		return "", "", err
	}
	return uc.generateAndSaveTokens(ctx, claims.Subject, claims.Email)
}

func (uc *AuthUseCase) Logout(ctx context.Context, refreshToken string) error {
	return uc.tokenCache.DeleteRefresh(ctx, refreshToken)
}

func (uc *AuthUseCase) generateAndSaveTokens(ctx context.Context, userID, email string) (string, string, error) {
	access, refresh, err := uc.tokenManager.Generate(userID, email)
	if err != nil {
		return "", "", err
	}
	if err := uc.tokenCache.SaveRefresh(ctx, userID, refresh); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ForgotPassword mails a reset link. Unknown addresses succeed silently so
// the endpoint cannot reveal which accounts exist.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	resetToken := uuid.NewString()
	if err := uc.tokenCache.SaveResetToken(ctx, resetToken, user.ID.String()); err != nil {
		return err
	}

	uc.mail("reset", func(ctx context.Context) error {
		return uc.emailSender.SendResetEmail(ctx, user.Email, resetToken)
	})
	return nil
}

func (uc *AuthUseCase) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", domain.ErrInvalidInput)
	}
	userIDStr, err := uc.tokenCache.TakeResetToken(ctx, token)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return domain.ErrInvalidToken
	}

	hash, err := uc.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(ctx, userID, hash)
}

// mail sends in the background, detached from the request that triggered it.
func (uc *AuthUseCase) mail(kind string, send func(ctx context.Context) error) {
	uc.background.Add(1)
	go func() {
		defer uc.background.Done()
		ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
		defer cancel()
		if err := send(ctx); err != nil {
			uc.log.Error("failed to send email", "kind", kind, "error", err)
			return
		}
		uc.log.Info("email sent", "kind", kind)
	}()
}

// Wait blocks until background e-mails have been handed off.
func (uc *AuthUseCase) Wait() {
	uc.background.Wait()
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
