package repository

import (
	"context"

	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type AdminRepository interface {
	Create(ctx context.Context, data *entity.Admin) error
	GetByUserID(ctx context.Context, userID string) (*entity.Admin, error)
	GetList(ctx context.Context) ([]entity.Admin, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

type adminRepository struct{}

func NewAdminRepository() *adminRepository {
	return &adminRepository{}
}

func (r *adminRepository) Create(ctx context.Context, data *entity.Admin) error {
	return xcontext.DB(ctx).Omit(clause.Associations).Create(data).Error
}

func (r *adminRepository) GetByUserID(ctx context.Context, userID string) (*entity.Admin, error) {
	var record entity.Admin
	if err := xcontext.DB(ctx).Where("user_id=?", userID).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *adminRepository) GetList(ctx context.Context) ([]entity.Admin, error) {
	var result []entity.Admin
	if err := xcontext.DB(ctx).Order("created_at ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *adminRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return xcontext.DB(ctx).Delete(&entity.Admin{}, "user_id=?", userID).Error
}
