package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/chooselife/strongfoundations/services/auth-service/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserGorm struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string    `gorm:"column:password;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserGorm) TableName() string {
	return "users"
}

func (ug *UserGorm) ToDomain() *domain.User {
	return &domain.User{
		ID:           ug.ID,
		Email:        ug.Email,
		PasswordHash: ug.PasswordHash,
		CreatedAt:    ug.CreatedAt,
		UpdatedAt:    ug.UpdatedAt,
	}
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	gormUser := &UserGorm{
		ID:           user.ID,
		Email:        normalizeEmail(user.Email),
		PasswordHash: user.PasswordHash,
	}
	result := r.db.WithContext(ctx).Create(gormUser)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAlreadyExists
		}
		return result.Error
	}
	user.CreatedAt = gormUser.CreatedAt
	user.UpdatedAt = gormUser.UpdatedAt
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var userModel UserGorm
	err := r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&userModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return userModel.ToDomain(), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var userModel UserGorm
	err := r.db.WithContext(ctx).First(&userModel, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return userModel.ToDomain(), nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, hash string) error {
	res := r.db.WithContext(ctx).Model(&UserGorm{}).
		Where("id = ?", userID).
		Update("password", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes a user whose sign-up could not be completed.
func (r *UserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&UserGorm{}, "id = ?", userID).Error
}
