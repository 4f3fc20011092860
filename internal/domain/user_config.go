package domain

import (
	"context"

	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/internal/model"
	"github.com/nums-lab/backend/internal/repository"
	"github.com/nums-lab/backend/pkg/errorx"
)

type UserConfigDomain interface {
	Get(context.Context, *model.GetUserConfigRequest) (*model.GetUserConfigResponse, error)
	Create(context.Context, *model.CreateUserConfigRequest) (*model.CreateUserConfigResponse, error)
	Update(context.Context, *model.UpdateUserConfigRequest) (*model.UpdateUserConfigResponse, error)
	Delete(context.Context, *model.DeleteUserConfigRequest) (*model.DeleteUserConfigResponse, error)
}

type userConfigDomain struct {
	userConfigRepo repository.UserConfigRepository
	themeRepo      repository.ThemeRepository
}

func NewUserConfigDomain(
	userConfigRepo repository.UserConfigRepository,
	themeRepo repository.ThemeRepository,
) UserConfigDomain {
	return &userConfigDomain{
		userConfigRepo: userConfigRepo,
		themeRepo:      themeRepo,
	}
}

func (d *userConfigDomain) Get(
	ctx context.Context, req *model.GetUserConfigRequest,
) (*model.GetUserConfigResponse, error) {
	if err := requireOwner(ctx, req.UserID); err != nil {
		return nil, err
	}

	config, err := d.getConfig(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	theme, err := d.themeRepo.GetByID(ctx, config.ActiveThemeID)
	if err != nil && !isNotFound(err) {
		return nil, storeError(ctx, err, "Cannot get active theme")
	}

	return &model.GetUserConfigResponse{
		Status: model.OK(""),
		Config: model.ConvertUserConfig(config, theme),
	}, nil
}

func (d *userConfigDomain) Create(
	ctx context.Context, req *model.CreateUserConfigRequest,
) (*model.CreateUserConfigResponse, error) {
	if err := requireOwner(ctx, req.UserID); err != nil {
		return nil, err
	}

	if req.ActiveThemeID == "" {
		return nil, errorx.New(errorx.BadRequest, errorx.ReasonMissingRequiredFields,
			"Active theme id is required")
	}

	_, err := d.userConfigRepo.GetByUserID(ctx, req.UserID)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, errorx.ReasonUserConfigAlreadyExists,
			"User config already exists")
	}
	if !isNotFound(err) {
		return nil, storeError(ctx, err, "Cannot get user config")
	}

	theme, err := getTheme(ctx, d.themeRepo, req.ActiveThemeID)
	if err != nil {
		return nil, err
	}

	config := &entity.UserConfig{
		UserID:        req.UserID,
		ActiveThemeID: theme.ID,
	}
	if err := d.userConfigRepo.Create(ctx, config); err != nil {
		if errorx.FromDB(err).Code == errorx.AlreadyExists {
			return nil, errorx.New(errorx.AlreadyExists, errorx.ReasonUserConfigAlreadyExists,
				"User config already exists")
		}

		return nil, storeError(ctx, err, "Cannot create user config")
	}

	return &model.CreateUserConfigResponse{
		Status: model.OK("User config created successfully"),
		Config: model.ConvertUserConfig(config, theme),
	}, nil
}

func (d *userConfigDomain) Update(
	ctx context.Context, req *model.UpdateUserConfigRequest,
) (*model.UpdateUserConfigResponse, error) {
	if err := requireOwner(ctx, req.UserID); err != nil {
		return nil, err
	}

	config, err := d.getConfig(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	var theme *entity.Theme
	if req.ActiveThemeID != nil {
		theme, err = getTheme(ctx, d.themeRepo, *req.ActiveThemeID)
		if err != nil {
			return nil, err
		}

		config.ActiveThemeID = theme.ID
	}

	if err := d.userConfigRepo.Update(ctx, config); err != nil {
		return nil, storeError(ctx, err, "Cannot update user config")
	}

	return &model.UpdateUserConfigResponse{
		Status: model.OK("User config updated successfully"),
		Config: model.ConvertUserConfig(config, theme),
	}, nil
}

func (d *userConfigDomain) Delete(
	ctx context.Context, req *model.DeleteUserConfigRequest,
) (*model.DeleteUserConfigResponse, error) {
	if err := requireOwner(ctx, req.UserID); err != nil {
		return nil, err
	}

	if _, err := d.getConfig(ctx, req.UserID); err != nil {
		return nil, err
	}

	if err := d.userConfigRepo.DeleteByUserID(ctx, req.UserID); err != nil {
		return nil, storeError(ctx, err, "Cannot delete user config")
	}

	return &model.DeleteUserConfigResponse{
		Status: model.OK("User config deleted successfully"),
	}, nil
}

func (d *userConfigDomain) getConfig(ctx context.Context, userID string) (*entity.UserConfig, error) {
	config, err := d.userConfigRepo.GetByUserID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, errorx.New(errorx.NotFound, errorx.ReasonUserConfigNotFound,
				"User config not found")
		}

		return nil, storeError(ctx, err, "Cannot get user config")
	}

	return config, nil
}
