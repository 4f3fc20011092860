package repository

import (
	"context"

	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type UserConfigRepository interface {
	Create(ctx context.Context, data *entity.UserConfig) error
	GetByUserID(ctx context.Context, userID string) (*entity.UserConfig, error)
	Update(ctx context.Context, data *entity.UserConfig) error
	Upsert(ctx context.Context, data *entity.UserConfig) error
	DeleteByUserID(ctx context.Context, userID string) error
	CountByThemeID(ctx context.Context, themeID string) (int64, error)
}

type userConfigRepository struct{}

func NewUserConfigRepository() *userConfigRepository {
	return &userConfigRepository{}
}

func (r *userConfigRepository) Create(ctx context.Context, data *entity.UserConfig) error {
	return xcontext.DB(ctx).Omit(clause.Associations).Create(data).Error
}

func (r *userConfigRepository) GetByUserID(ctx context.Context, userID string) (*entity.UserConfig, error) {
	var record entity.UserConfig
	if err := xcontext.DB(ctx).Where("user_id=?", userID).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userConfigRepository) Update(ctx context.Context, data *entity.UserConfig) error {
	return xcontext.DB(ctx).Omit(clause.Associations).Save(data).Error
}

func (r *userConfigRepository) Upsert(ctx context.Context, data *entity.UserConfig) error {
	return xcontext.DB(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"active_theme_id", "updated_at"}),
		}).
		Create(data).Error
}

func (r *userConfigRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return xcontext.DB(ctx).Delete(&entity.UserConfig{}, "user_id=?", userID).Error
}

func (r *userConfigRepository) CountByThemeID(ctx context.Context, themeID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).
		Model(&entity.UserConfig{}).
		Where("active_theme_id=?", themeID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
