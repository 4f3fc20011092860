package repository

import (
	"context"

	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type GetListGameFilter struct {
	Round *int

	// A non-positive Limit returns every matching game.
	Offset int
	Limit  int
}

type GameRepository interface {
	Create(ctx context.Context, data *entity.Game) error
	GetByRound(ctx context.Context, round int) (*entity.Game, error)
	GetLatest(ctx context.Context) (*entity.Game, error)
	GetList(ctx context.Context, filter GetListGameFilter) ([]entity.Game, error)
	Count(ctx context.Context, filter GetListGameFilter) (int64, error)
	Update(ctx context.Context, data *entity.Game) error
}

type gameRepository struct{}

func NewGameRepository() *gameRepository {
	return &gameRepository{}
}

func (r *gameRepository) Create(ctx context.Context, data *entity.Game) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *gameRepository) GetByRound(ctx context.Context, round int) (*entity.Game, error) {
	var record entity.Game
	if err := xcontext.DB(ctx).Where("round=?", round).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *gameRepository) GetLatest(ctx context.Context) (*entity.Game, error) {
	var record entity.Game
	if err := xcontext.DB(ctx).Order("round DESC").Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *gameRepository) filter(ctx context.Context, filter GetListGameFilter) *gorm.DB {
	tx := xcontext.DB(ctx).Model(&entity.Game{})
	if filter.Round != nil {
		tx = tx.Where("round=?", *filter.Round)
	}

	return tx
}

func (r *gameRepository) GetList(ctx context.Context, filter GetListGameFilter) ([]entity.Game, error) {
	tx := r.filter(ctx, filter).Order("round DESC")
	if filter.Limit > 0 {
		tx = tx.Offset(filter.Offset).Limit(filter.Limit)
	}

	var result []entity.Game
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *gameRepository) Count(ctx context.Context, filter GetListGameFilter) (int64, error) {
	var count int64
	if err := r.filter(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// Update replaces every business field of the game identified by data.ID.
func (r *gameRepository) Update(ctx context.Context, data *entity.Game) error {
	return xcontext.DB(ctx).Save(data).Error
}
