package repository

import (
	"context"

	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type UserProfileRepository interface {
	Create(ctx context.Context, data *entity.UserProfile) error
	GetByUserID(ctx context.Context, userID string) (*entity.UserProfile, error)
	GetByNickname(ctx context.Context, nickname string) (*entity.UserProfile, error)
	Update(ctx context.Context, data *entity.UserProfile) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type userProfileRepository struct{}

func NewUserProfileRepository() *userProfileRepository {
	return &userProfileRepository{}
}

func (r *userProfileRepository) Create(ctx context.Context, data *entity.UserProfile) error {
	return xcontext.DB(ctx).Omit(clause.Associations).Create(data).Error
}

func (r *userProfileRepository) GetByUserID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	var record entity.UserProfile
	if err := xcontext.DB(ctx).Where("user_id=?", userID).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userProfileRepository) GetByNickname(ctx context.Context, nickname string) (*entity.UserProfile, error) {
	var record entity.UserProfile
	if err := xcontext.DB(ctx).Where("nickname=?", nickname).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userProfileRepository) Update(ctx context.Context, data *entity.UserProfile) error {
	return xcontext.DB(ctx).Omit(clause.Associations).Save(data).Error
}

func (r *userProfileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return xcontext.DB(ctx).Delete(&entity.UserProfile{}, "user_id=?", userID).Error
}
