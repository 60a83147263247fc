package repository

import (
	"context"
	"errors"

	"github.com/chooselife/strongfoundations/services/user-service/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert writes the editable columns of p. The account type is only set when
// the row is first created, so an edit cannot promote a learner.
func (r *ProfileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	if p.Type == "" {
		p.Type = domain.ProfileLearner
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email", "first_name", "last_name", "display_name",
				"contact_number", "age", "marital_status", "updated_at",
			}),
		}).
		Create(p).Error
}

func (r *ProfileRepository) SetType(ctx context.Context, userID string, t domain.ProfileType) error {
	res := r.db.WithContext(ctx).Model(&domain.Profile{}).
		Where("user_id = ?", userID).
		Update("type", t)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
