package domain

import (
	"context"

	"github.com/mitchellh/mapstructure"
	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/internal/model"
	"github.com/nums-lab/backend/internal/repository"
	"github.com/nums-lab/backend/pkg/enum"
	"github.com/nums-lab/backend/pkg/errorx"
	"github.com/nums-lab/backend/pkg/xcontext"

	"github.com/google/uuid"
)

type ThemeDomain interface {
	GetList(context.Context, *model.GetThemesRequest) (*model.GetThemesResponse, error)
	Get(context.Context, *model.GetThemeRequest) (*model.GetThemeResponse, error)
	Create(context.Context, *model.CreateThemeRequest) (*model.CreateThemeResponse, error)
	Update(context.Context, *model.UpdateThemeRequest) (*model.UpdateThemeResponse, error)
	Delete(context.Context, *model.DeleteThemeRequest) (*model.DeleteThemeResponse, error)
}

type themeDomain struct {
	themeRepo      repository.ThemeRepository
	userConfigRepo repository.UserConfigRepository
}

func NewThemeDomain(
	themeRepo repository.ThemeRepository,
	userConfigRepo repository.UserConfigRepository,
) ThemeDomain {
	return &themeDomain{
		themeRepo:      themeRepo,
		userConfigRepo: userConfigRepo,
	}
}

// GetList returns every theme. When the request carries a session, the
// caller's active theme id is returned too.
func (d *themeDomain) GetList(
	ctx context.Context, req *model.GetThemesRequest,
) (*model.GetThemesResponse, error) {
	themes, err := d.themeRepo.GetList(ctx)
	if err != nil {
		return nil, storeError(ctx, err, "Cannot get theme list")
	}

	resp := &model.GetThemesResponse{
		Status: model.OK(""),
		Themes: model.ConvertThemes(themes),
	}

	if userID := xcontext.RequestUserID(ctx); userID != "" {
		config, err := d.userConfigRepo.GetByUserID(ctx, userID)
		if err != nil && !isNotFound(err) {
			return nil, storeError(ctx, err, "Cannot get user config")
		}

		if err == nil {
			resp.ActiveThemeID = &config.ActiveThemeID
		}
	}

	return resp, nil
}

func (d *themeDomain) Get(
	ctx context.Context, req *model.GetThemeRequest,
) (*model.GetThemeResponse, error) {
	theme, err := getTheme(ctx, d.themeRepo, req.ThemeID)
	if err != nil {
		return nil, err
	}

	return &model.GetThemeResponse{
		Status: model.OK(""),
		Theme:  model.ConvertTheme(theme),
	}, nil
}

func (d *themeDomain) Create(
	ctx context.Context, req *model.CreateThemeRequest,
) (*model.CreateThemeResponse, error) {
	if req.Name == "" || req.Mode == "" || len(req.Colors) == 0 {
		return nil, errorx.New(errorx.BadRequest, errorx.ReasonMissingRequiredFields,
			"Name, mode and colors are required")
	}

	mode, err := toThemeMode(req.Mode)
	if err != nil {
		return nil, err
	}

	colors, err := toThemeColors(req.Colors)
	if err != nil {
		return nil, err
	}

	if err := d.checkNameAvailable(ctx, req.Name); err != nil {
		return nil, err
	}

	theme := &entity.Theme{
		Base:      entity.Base{ID: uuid.NewString()},
		Name:      req.Name,
		NameKR:    req.NameKR,
		Mode:      mode,
		Colors:    colors,
		Variables: entity.Map(req.Variables),
		IsDefault: req.IsDefault,
	}

	if err := d.themeRepo.Create(ctx, theme); err != nil {
		if errorx.FromDB(err).Code == errorx.AlreadyExists {
			return nil, errThemeNameExists
		}

		return nil, storeError(ctx, err, "Cannot create theme")
	}

	return &model.CreateThemeResponse{
		Status: model.OK("Theme created successfully"),
		Theme:  model.ConvertTheme(theme),
	}, nil
}

func (d *themeDomain) Update(
	ctx context.Context, req *model.UpdateThemeRequest,
) (*model.UpdateThemeResponse, error) {
	theme, err := getTheme(ctx, d.themeRepo, req.ThemeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != theme.Name {
		if *req.Name == "" {
			return nil, errorx.New(errorx.BadRequest, errorx.ReasonMissingRequiredFields,
				"Name must not be empty")
		}

		if err := d.checkNameAvailable(ctx, *req.Name); err != nil {
			return nil, err
		}

		theme.Name = *req.Name
	}

	if req.NameKR != nil {
		theme.NameKR = *req.NameKR
	}

	if req.Mode != nil {
		mode, err := toThemeMode(*req.Mode)
		if err != nil {
			return nil, err
		}

		theme.Mode = mode
	}

	if len(req.Colors) > 0 {
		// Colours not given keep their current value.
		merged := theme.Colors.ToMap()
		for k, v := range req.Colors {
			merged[k] = v
		}

		colors, err := toThemeColors(merged)
		if err != nil {
			return nil, err
		}

		theme.Colors = colors
	}

	if req.Variables != nil {
		theme.Variables = entity.Map(req.Variables)
	}

	if req.IsDefault != nil {
		theme.IsDefault = *req.IsDefault
	}

	if err := d.themeRepo.Update(ctx, theme); err != nil {
		if errorx.FromDB(err).Code == errorx.AlreadyExists {
			return nil, errThemeNameExists
		}

		return nil, storeError(ctx, err, "Cannot update theme")
	}

	return &model.UpdateThemeResponse{
		Status: model.OK("Theme updated successfully"),
		Theme:  model.ConvertTheme(theme),
	}, nil
}

func (d *themeDomain) Delete(
	ctx context.Context, req *model.DeleteThemeRequest,
) (*model.DeleteThemeResponse, error) {
	theme, err := getTheme(ctx, d.themeRepo, req.ThemeID)
	if err != nil {
		return nil, err
	}

	if theme.IsDefault {
		return nil, errorx.New(errorx.BadRequest, errorx.ReasonCannotDeleteDefault,
			"Default themes cannot be deleted")
	}

	count, err := d.userConfigRepo.CountByThemeID(ctx, theme.ID)
	if err != nil {
		return nil, storeError(ctx, err, "Cannot count users of theme")
	}

	if count > 0 {
		return nil, errThemeInUse
	}

	if err := d.themeRepo.DeleteByID(ctx, theme.ID); err != nil {
		// A config may have picked the theme after the count above.
		if errorx.FromDB(err).Code == errorx.AlreadyExists {
			return nil, errThemeInUse
		}

		return nil, storeError(ctx, err, "Cannot delete theme")
	}

	return &model.DeleteThemeResponse{Status: model.OK("Theme deleted successfully")}, nil
}

var (
	errThemeNameExists = errorx.New(errorx.AlreadyExists, errorx.ReasonThemeNameAlreadyExists,
		"Theme name already exists")
	errThemeInUse = errorx.New(errorx.AlreadyExists, errorx.ReasonThemeInUse,
		"Theme is used by at least one user")
)

func (d *themeDomain) checkNameAvailable(ctx context.Context, name string) error {
	_, err := d.themeRepo.GetByName(ctx, name)
	if err == nil {
		return errThemeNameExists
	}

	if !isNotFound(err) {
		return storeError(ctx, err, "Cannot get theme by name")
	}

	return nil
}

func getTheme(ctx context.Context, themeRepo repository.ThemeRepository, themeID string) (*entity.Theme, error) {
	theme, err := themeRepo.GetByID(ctx, themeID)
	if err != nil {
		if isNotFound(err) {
			return nil, errorx.New(errorx.NotFound, errorx.ReasonThemeNotFound, "Theme not found")
		}

		return nil, storeError(ctx, err, "Cannot get theme")
	}

	return theme, nil
}

func toThemeMode(s string) (entity.ThemeMode, error) {
	mode, err := enum.ToEnum[entity.ThemeMode](s)
	if err != nil {
		return "", errorx.New(errorx.BadRequest, errorx.ReasonInvalidThemeMode,
			"Mode must be light or dark")
	}

	return mode, nil
}

func toThemeColors(m map[string]string) (entity.ThemeColors, error) {
	var colors entity.ThemeColors
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &colors,
	})
	if err != nil {
		return colors, err
	}

	if err := decoder.Decode(m); err != nil {
		return colors, errorx.New(errorx.BadRequest, errorx.ReasonInvalidThemeColors,
			"Invalid colors: %v", err)
	}

	if err := colors.Validate(); err != nil {
		return colors, errorx.New(errorx.BadRequest, errorx.ReasonInvalidThemeColors,
			"Invalid colors: %v", err)
	}

	return colors, nil
}
