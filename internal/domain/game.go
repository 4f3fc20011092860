package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nums-lab/backend/internal/common"
	"github.com/nums-lab/backend/internal/domain/gameutil"
	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/internal/model"
	"github.com/nums-lab/backend/internal/repository"
	"github.com/nums-lab/backend/pkg/errorx"
	"github.com/nums-lab/backend/pkg/xcontext"
)

type GameDomain interface {
	Upload(context.Context, *model.UploadGamesRequest) (*model.UploadGamesResponse, error)
	GetList(context.Context, *model.GetGamesRequest) (*model.GetGamesResponse, error)
	GetByRound(context.Context, *model.GetGameByRoundRequest) (*model.GetGameByRoundResponse, error)
	GetRecent(context.Context, *model.GetRecentGameRequest) (*model.GetRecentGameResponse, error)
	GetRecentStatus(context.Context, *model.GetRecentGameStatusRequest) (*model.GetRecentGameStatusResponse, error)
}

type gameDomain struct {
	gameRepo repository.GameRepository
	now      func() time.Time
}

func NewGameDomain(gameRepo repository.GameRepository) GameDomain {
	return &gameDomain{
		gameRepo: gameRepo,
		now:      time.Now,
	}
}

// Upload parses the export text and stores every record, creating missing
// rounds and replacing existing ones. Records are processed one by one and a
// failing record does not stop the others.
func (d *gameDomain) Upload(
	ctx context.Context, req *model.UploadGamesRequest,
) (*model.UploadGamesResponse, error) {
	if req.Data == "" {
		return nil, errorx.New(errorx.BadRequest, errorx.ReasonInvalidRequestBody,
			"Data is required as a string")
	}

	games, err := gameutil.ParseRows(req.Data)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot parse game data: %v", err)
		return nil, errorx.New(errorx.BadRequest, errorx.ReasonInvalidGameData, "%v", err)
	}

	if len(games) == 0 {
		return nil, errorx.New(errorx.BadRequest, errorx.ReasonParsedDataEmpty,
			"No game record could be parsed")
	}

	resp := &model.UploadGamesResponse{
		Status:  model.OK("Game data processed"),
		Total:   len(games),
		Results: []model.UploadResult{},
	}

	for i := range games {
		result, err := d.store(ctx, &games[i])
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot store game of round %d: %v", games[i].Round, err)
			resp.Errors = append(resp.Errors, model.UploadError{
				Round: games[i].Round,
				Error: err.Error(),
			})
			countIngested("failed")
			continue
		}

		resp.Results = append(resp.Results, *result)
		countIngested(result.Status)
	}

	resp.SuccessCount = len(resp.Results)
	resp.ErrorCount = len(resp.Errors)
	xcontext.Logger(ctx).Infof("Ingested %d game records (%d failed)", resp.Total, resp.ErrorCount)

	return resp, nil
}

func (d *gameDomain) store(ctx context.Context, game *entity.Game) (*model.UploadResult, error) {
	existing, err := d.gameRepo.GetByRound(ctx, game.Round)
	if err != nil && !isNotFound(err) {
		return nil, err
	}

	if err == nil {
		game.Base = existing.Base
		if err := d.gameRepo.Update(ctx, game); err != nil {
			return nil, err
		}

		return &model.UploadResult{
			Round:   game.Round,
			Status:  model.UploadStatusUpdated,
			Message: "Existing game record updated",
		}, nil
	}

	game.ID = uuid.NewString()
	if err := d.gameRepo.Create(ctx, game); err != nil {
		return nil, err
	}

	return &model.UploadResult{
		Round:   game.Round,
		Status:  model.UploadStatusCreated,
		Message: "New game record created",
	}, nil
}

func countIngested(status string) {
	for key, counter := range common.PromCounters {
		switch key {
		case common.GameIngestedTotal:
			counter.WithLabelValues(status).Inc()
		}
	}
}

func (d *gameDomain) GetList(
	ctx context.Context, req *model.GetGamesRequest,
) (*model.GetGamesResponse, error) {
	filter := repository.GetListGameFilter{Round: req.Round}

	if req.All == "true" || req.All == "1" {
		games, err := d.gameRepo.GetList(ctx, filter)
		if err != nil {
			return nil, storeError(ctx, err, "Cannot get game list")
		}

		total := int64(len(games))
		return &model.GetGamesResponse{
			Status:     model.OK(""),
			Games:      model.ConvertGames(games),
			TotalItems: &total,
		}, nil
	}

	cfg := xcontext.Configs(ctx).Game
	page := req.Page
	if page <= 0 {
		page = 1
	}

	limit := req.Limit
	if limit <= 0 {
		limit = cfg.DefaultLimit
	}
	if cfg.MaxLimit > 0 && limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if limit <= 0 {
		limit = 10
	}

	total, err := d.gameRepo.Count(ctx, filter)
	if err != nil {
		return nil, storeError(ctx, err, "Cannot count games")
	}

	filter.Offset = (page - 1) * limit
	filter.Limit = limit
	games, err := d.gameRepo.GetList(ctx, filter)
	if err != nil {
		return nil, storeError(ctx, err, "Cannot get game list")
	}

	return &model.GetGamesResponse{
		Status: model.OK(""),
		Games:  model.ConvertGames(games),
		Pagination: &model.Pagination{
			CurrentPage:  page,
			TotalPages:   int((total + int64(limit) - 1) / int64(limit)),
			TotalItems:   total,
			ItemsPerPage: limit,
		},
	}, nil
}

func (d *gameDomain) GetByRound(
	ctx context.Context, req *model.GetGameByRoundRequest,
) (*model.GetGameByRoundResponse, error) {
	game, err := d.gameRepo.GetByRound(ctx, req.Round)
	if err != nil {
		return nil, gameError(ctx, err)
	}

	return &model.GetGameByRoundResponse{
		Status: model.OK(""),
		Data:   model.ConvertGame(game),
	}, nil
}

func (d *gameDomain) GetRecent(
	ctx context.Context, req *model.GetRecentGameRequest,
) (*model.GetRecentGameResponse, error) {
	game, err := d.gameRepo.GetLatest(ctx)
	if err != nil {
		return nil, gameError(ctx, err)
	}

	return &model.GetRecentGameResponse{
		Status: model.OK(""),
		Data:   model.ConvertGame(game),
	}, nil
}

// GetRecentStatus tells whether the latest stored draw is recent enough.
func (d *gameDomain) GetRecentStatus(
	ctx context.Context, req *model.GetRecentGameStatusRequest,
) (*model.GetRecentGameStatusResponse, error) {
	game, err := d.gameRepo.GetLatest(ctx)
	if err != nil {
		return nil, gameError(ctx, err)
	}

	now := d.now()
	threshold := xcontext.Configs(ctx).Game.RecentThresholdDays
	daysElapsed := gameutil.DaysElapsed(game.DrawDate, now)

	return &model.GetRecentGameStatusResponse{
		Status: model.OK(""),
		Data: model.RecentGameStatus{
			Round:         game.Round,
			DrawDate:      game.DrawDate.Format(model.DefaultDateLayout),
			DaysElapsed:   daysElapsed,
			ThresholdDays: threshold,
			IsUpToDate:    daysElapsed <= threshold,
			ServerNow:     now.Format(model.DefaultTimeLayout),
			Game:          model.ConvertGame(game),
		},
	}, nil
}

func gameError(ctx context.Context, err error) error {
	if isNotFound(err) {
		return errorx.New(errorx.NotFound, errorx.ReasonGameNotFound, "Game not found")
	}

	return storeError(ctx, err, "Cannot get game")
}
