package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chooselife/strongfoundations/pkg/logger"
	"github.com/chooselife/strongfoundations/services/user-service/internal/domain"

	"github.com/go-playground/validator/v10"
)

type ProfileStore interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

// ProfileInput is the editable part of a profile. The rules mirror the
// sign-up and profile forms.
type ProfileInput struct {
	UserID        string `validate:"required"`
	Email         string `validate:"required,email"`
	FirstName     string `validate:"required,min=2"`
	LastName      string `validate:"required,min=2"`
	ContactNumber string `validate:"omitempty,min=10"`
	Age           *int   `validate:"omitempty,min=13,max=120"`
	MaritalStatus string `validate:"omitempty,oneof=single married divorced widowed other"`
}

type ProfileService struct {
	store    ProfileStore
	validate *validator.Validate
	log      *logger.Logger
}

func NewProfileService(store ProfileStore, log *logger.Logger) *ProfileService {
	return &ProfileService{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// Get returns the stored profile, or an empty learner profile carrying the
// account e-mail when the learner never saved one.
func (s *ProfileService) Get(ctx context.Context, userID, email string) (*domain.Profile, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	p, err := s.store.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return &domain.Profile{UserID: userID, Email: email, Type: domain.ProfileLearner}, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Save validates in and upserts it. The display name is always derived from
// the first and last names.
func (s *ProfileService) Save(ctx context.Context, in ProfileInput) (*domain.Profile, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.ContactNumber = strings.TrimSpace(in.ContactNumber)

	if in.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidProfile, describe(err))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := &domain.Profile{
		UserID:        in.UserID,
		Email:         in.Email,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		DisplayName:   domain.ComposeDisplayName(in.FirstName, in.LastName),
		ContactNumber: in.ContactNumber,
		Age:           in.Age,
		MaritalStatus: in.MaritalStatus,
		Type:          domain.ProfileLearner,
	}
	if err := s.store.Upsert(ctx, p); err != nil {
		s.log.Error("profile upsert failed", "user_id", in.UserID, "error", err)
		return nil, err
	}
	return s.store.GetByUserID(ctx, in.UserID)
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fieldName(fe.Field()), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

var fieldNames = map[string]string{
	"UserID":        "user_id",
	"Email":         "email",
	"FirstName":     "first_name",
	"LastName":      "last_name",
	"ContactNumber": "contact_number",
	"Age":           "age",
	"MaritalStatus": "marital_status",
}

func fieldName(f string) string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return f
}
