package domain

import (
	"context"

	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/internal/model"
	"github.com/nums-lab/backend/internal/repository"
	"github.com/nums-lab/backend/pkg/errorx"
	"github.com/nums-lab/backend/pkg/xcontext"
)

type UserDomain interface {
	GetUsers(context.Context, *model.GetUsersRequest) (*model.GetUsersResponse, error)
	GetUser(context.Context, *model.GetUserRequest) (*model.GetUserResponse, error)
	GetMe(context.Context, *model.GetMeRequest) (*model.GetMeResponse, error)
	UpdateMe(context.Context, *model.UpdateMeRequest) (*model.UpdateMeResponse, error)
	DeleteMe(context.Context, *model.DeleteMeRequest) (*model.DeleteMeResponse, error)
	GetMyThemes(context.Context, *model.GetMyThemesRequest) (*model.GetMyThemesResponse, error)
	UpdateMyTheme(context.Context, *model.UpdateMyThemeRequest) (*model.UpdateMyThemeResponse, error)
}

type userDomain struct {
	userRepo        repository.UserRepository
	userProfileRepo repository.UserProfileRepository
	userConfigRepo  repository.UserConfigRepository
	themeRepo       repository.ThemeRepository
	accountRemover  *accountRemover
}

func NewUserDomain(
	userRepo repository.UserRepository,
	userProfileRepo repository.UserProfileRepository,
	userConfigRepo repository.UserConfigRepository,
	themeRepo repository.ThemeRepository,
	adminRepo repository.AdminRepository,
) UserDomain {
	return &userDomain{
		userRepo:        userRepo,
		userProfileRepo: userProfileRepo,
		userConfigRepo:  userConfigRepo,
		themeRepo:       themeRepo,
		accountRemover: &accountRemover{
			userRepo:        userRepo,
			userProfileRepo: userProfileRepo,
			userConfigRepo:  userConfigRepo,
			adminRepo:       adminRepo,
		},
	}
}

func (d *userDomain) GetUsers(
	ctx context.Context, req *model.GetUsersRequest,
) (*model.GetUsersResponse, error) {
	users, err := d.userRepo.GetList(ctx)
	if err != nil {
		return nil, storeError(ctx, err, "Cannot get user list")
	}

	return &model.GetUsersResponse{
		Status: model.OK(""),
		Users:  model.ConvertUsers(users),
	}, nil
}

func (d *userDomain) GetUser(
	ctx context.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
	user, err := getUser(ctx, d.userRepo, req.UserID)
	if err != nil {
		return nil, err
	}

	return &model.GetUserResponse{
		Status: model.OK(""),
		User:   model.ConvertUser(user),
	}, nil
}

func (d *userDomain) GetMe(
	ctx context.Context, req *model.GetMeRequest,
) (*model.GetMeResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	profile, err := d.userProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, errorx.New(errorx.NotFound, errorx.ReasonUserProfileNotFound,
				"User profile not found")
		}

		return nil, storeError(ctx, err, "Cannot get user profile")
	}

	var activeTheme *string
	config, err := d.userConfigRepo.GetByUserID(ctx, userID)
	if err != nil && !isNotFound(err) {
		return nil, storeError(ctx, err, "Cannot get user config")
	}
	if err == nil {
		activeTheme = &config.ActiveThemeID
	}

	return &model.GetMeResponse{
		Status:      model.OK(""),
		Profile:     model.ConvertUserProfile(profile),
		ActiveTheme: activeTheme,
	}, nil
}

func (d *userDomain) UpdateMe(
	ctx context.Context, req *model.UpdateMeRequest,
) (*model.UpdateMeResponse, error) {
	user, err := getUser(ctx, d.userRepo, xcontext.RequestUserID(ctx))
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		if err := checkUsername(*req.Username); err != nil {
			return nil, err
		}

		if err := checkUsernameAvailable(ctx, d.userRepo, *req.Username); err != nil {
			return nil, err
		}

		user.Username = *req.Username
	}

	if req.Password != nil {
		hash, err := hashPassword(ctx, *req.Password)
		if err != nil {
			return nil, err
		}

		user.Password = hash
	}

	updateProfile := req.Nickname != nil || req.Level != nil || req.Experience != nil
	profile, err := d.userProfileRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		if !isNotFound(err) {
			return nil, storeError(ctx, err, "Cannot get user profile")
		}

		if updateProfile {
			return nil, errorx.New(errorx.NotFound, errorx.ReasonUserProfileNotFound,
				"User profile not found")
		}

		profile = nil
	}

	if updateProfile {
		if err := applyProfileChanges(ctx, d.userProfileRepo, profile,
			req.Nickname, req.Level, req.Experience); err != nil {
			return nil, err
		}
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.userRepo.Update(ctx, user); err != nil {
		if errorx.FromDB(err).Code == errorx.AlreadyExists {
			return nil, errorx.New(errorx.AlreadyExists, errorx.ReasonUsernameAlreadyExists,
				"Username already exists")
		}

		return nil, storeError(ctx, err, "Cannot update user")
	}

	if updateProfile {
		if err := d.userProfileRepo.Update(ctx, profile); err != nil {
			if errorx.FromDB(err).Code == errorx.AlreadyExists {
				return nil, errorx.New(errorx.AlreadyExists, errorx.ReasonNicknameAlreadyExists,
					"Nickname already exists")
			}

			return nil, storeError(ctx, err, "Cannot update user profile")
		}
	}

	if err := xcontext.WithCommitDBTransaction(ctx); err != nil {
		return nil, storeError(ctx, err, "Cannot commit user update")
	}

	return &model.UpdateMeResponse{
		Status:  model.OK("User updated successfully"),
		User:    model.ConvertUser(user),
		Profile: model.ConvertUserProfile(profile),
	}, nil
}

func (d *userDomain) DeleteMe(
	ctx context.Context, req *model.DeleteMeRequest,
) (*model.DeleteMeResponse, error) {
	if err := d.accountRemover.Remove(ctx, xcontext.RequestUserID(ctx)); err != nil {
		return nil, err
	}

	return &model.DeleteMeResponse{Status: model.OK("User deleted successfully")}, nil
}

func (d *userDomain) GetMyThemes(
	ctx context.Context, req *model.GetMyThemesRequest,
) (*model.GetMyThemesResponse, error) {
	themes, err := d.themeRepo.GetDefaults(ctx)
	if err != nil {
		return nil, storeError(ctx, err, "Cannot get default themes")
	}

	var activeTheme *model.Theme
	config, err := d.userConfigRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil && !isNotFound(err) {
		return nil, storeError(ctx, err, "Cannot get user config")
	}

	if err == nil {
		theme, err := d.themeRepo.GetByID(ctx, config.ActiveThemeID)
		if err != nil && !isNotFound(err) {
			return nil, storeError(ctx, err, "Cannot get active theme")
		}

		if err == nil {
			t := model.ConvertTheme(theme)
			activeTheme = &t
		}
	}

	return &model.GetMyThemesResponse{
		Status:          model.OK(""),
		AvailableThemes: model.ConvertThemes(themes),
		ActiveTheme:     activeTheme,
	}, nil
}

func (d *userDomain) UpdateMyTheme(
	ctx context.Context, req *model.UpdateMyThemeRequest,
) (*model.UpdateMyThemeResponse, error) {
	if req.ThemeID == "" {
		return nil, errorx.New(errorx.BadRequest, errorx.ReasonMissingRequiredFields,
			"Theme id is required")
	}

	theme, err := getTheme(ctx, d.themeRepo, req.ThemeID)
	if err != nil {
		return nil, err
	}

	userID := xcontext.RequestUserID(ctx)
	err = d.userConfigRepo.Upsert(ctx, &entity.UserConfig{
		UserID:        userID,
		ActiveThemeID: theme.ID,
	})
	if err != nil {
		return nil, storeError(ctx, err, "Cannot upsert user config")
	}

	config, err := d.userConfigRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, storeError(ctx, err, "Cannot get user config")
	}

	return &model.UpdateMyThemeResponse{
		Status:     model.OK("Theme updated successfully"),
		UserConfig: model.ConvertUserConfig(config, theme),
	}, nil
}

func getUser(ctx context.Context, userRepo repository.UserRepository, userID string) (*entity.User, error) {
	user, err := userRepo.GetByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, errorx.New(errorx.NotFound, errorx.ReasonUserNotFound, "User not found")
		}

		return nil, storeError(ctx, err, "Cannot get user")
	}

	return user, nil
}

func checkUsernameAvailable(ctx context.Context, userRepo repository.UserRepository, username string) error {
	_, err := userRepo.GetByUsername(ctx, username)
	if err == nil {
		return errorx.New(errorx.AlreadyExists, errorx.ReasonUsernameAlreadyExists,
			"Username already exists")
	}

	if !isNotFound(err) {
		return storeError(ctx, err, "Cannot get user by username")
	}

	return nil
}

// accountRemover deletes a user together with everything keyed by it.
type accountRemover struct {
	userRepo        repository.UserRepository
	userProfileRepo repository.UserProfileRepository
	userConfigRepo  repository.UserConfigRepository
	adminRepo       repository.AdminRepository
}

func (r *accountRemover) Remove(ctx context.Context, userID string) error {
	if _, err := getUser(ctx, r.userRepo, userID); err != nil {
		return err
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := r.userProfileRepo.DeleteByUserID(ctx, userID); err != nil {
		return storeError(ctx, err, "Cannot delete user profile")
	}

	if err := r.userConfigRepo.DeleteByUserID(ctx, userID); err != nil {
		return storeError(ctx, err, "Cannot delete user config")
	}

	if err := r.adminRepo.DeleteByUserID(ctx, userID); err != nil {
		return storeError(ctx, err, "Cannot delete admin grant")
	}

	if err := r.userRepo.DeleteByID(ctx, userID); err != nil {
		return storeError(ctx, err, "Cannot delete user")
	}

	if err := xcontext.WithCommitDBTransaction(ctx); err != nil {
		return storeError(ctx, err, "Cannot commit account removal")
	}

	return nil
}
