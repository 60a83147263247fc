package repository

import (
	"context"
	"errors"
	"time"

	"github.com/chooselife/strongfoundations/services/auth-service/internal/domain"

	"gorm.io/gorm"
)

type InviteGorm struct {
	Token     string    `gorm:"primaryKey;size:64"`
	Email     string    `gorm:"index;not null;size:255"`
	InvitedBy string    `gorm:"size:64"`
	ExpiresAt time.Time `gorm:"not null"`
	IsUsed    bool      `gorm:"not null;default:false"`
	UsedAt    *time.Time
	CreatedAt time.Time
}

func (InviteGorm) TableName() string {
	return "invites"
}

func (ig *InviteGorm) ToDomain() *domain.Invite {
	return &domain.Invite{
		Token:     ig.Token,
		Email:     ig.Email,
		InvitedBy: ig.InvitedBy,
		ExpiresAt: ig.ExpiresAt,
		IsUsed:    ig.IsUsed,
		UsedAt:    ig.UsedAt,
		CreatedAt: ig.CreatedAt,
	}
}

type InviteRepository struct {
	db *gorm.DB
}

func NewInviteRepository(db *gorm.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

func (r *InviteRepository) Create(ctx context.Context, inv *domain.Invite) error {
	row := &InviteGorm{
		Token:     inv.Token,
		Email:     normalizeEmail(inv.Email),
		InvitedBy: inv.InvitedBy,
		ExpiresAt: inv.ExpiresAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	inv.CreatedAt = row.CreatedAt
	return nil
}

func (r *InviteRepository) Get(ctx context.Context, token string) (*domain.Invite, error) {
	var row InviteGorm
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrInviteInvalid
	}
	if err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

// Consume marks the invite used if it is still open at now. The conditional
// update makes two racing redemptions of one token yield a single winner.
func (r *InviteRepository) Consume(ctx context.Context, token string, now time.Time) error {
	res := r.db.WithContext(ctx).Model(&InviteGorm{}).
		Where("token = ? AND is_used = ? AND expires_at > ?", token, false, now.UTC()).
		Updates(map[string]interface{}{"is_used": true, "used_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInviteInvalid
	}
	return nil
}

// Release reopens an invite whose registration failed after it was consumed.
func (r *InviteRepository) Release(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Model(&InviteGorm{}).
		Where("token = ?", token).
		Updates(map[string]interface{}{"is_used": false, "used_at": nil}).Error
}
