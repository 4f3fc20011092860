package repository

import (
	"context"

	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/pkg/xcontext"
)

type ThemeRepository interface {
	Create(ctx context.Context, data *entity.Theme) error
	GetByID(ctx context.Context, id string) (*entity.Theme, error)
	GetByName(ctx context.Context, name string) (*entity.Theme, error)
	GetList(ctx context.Context) ([]entity.Theme, error)
	GetDefaults(ctx context.Context) ([]entity.Theme, error)
	Update(ctx context.Context, data *entity.Theme) error
	DeleteByID(ctx context.Context, id string) error
}

type themeRepository struct{}

func NewThemeRepository() *themeRepository {
	return &themeRepository{}
}

func (r *themeRepository) Create(ctx context.Context, data *entity.Theme) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *themeRepository) GetByID(ctx context.Context, id string) (*entity.Theme, error) {
	var record entity.Theme
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *themeRepository) GetByName(ctx context.Context, name string) (*entity.Theme, error) {
	var record entity.Theme
	if err := xcontext.DB(ctx).Where("name=?", name).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *themeRepository) GetList(ctx context.Context) ([]entity.Theme, error) {
	var result []entity.Theme
	if err := xcontext.DB(ctx).Order("created_at ASC, name ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *themeRepository) GetDefaults(ctx context.Context) ([]entity.Theme, error) {
	var result []entity.Theme
	err := xcontext.DB(ctx).
		Where("is_default=?", true).
		Order("created_at ASC, name ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *themeRepository) Update(ctx context.Context, data *entity.Theme) error {
	return xcontext.DB(ctx).Save(data).Error
}

func (r *themeRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Theme{}, "id=?", id).Error
}
