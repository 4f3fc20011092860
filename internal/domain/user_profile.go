package domain

import (
	"context"

	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/internal/model"
	"github.com/nums-lab/backend/internal/repository"
	"github.com/nums-lab/backend/pkg/errorx"
	"github.com/nums-lab/backend/pkg/xcontext"
)

type UserProfileDomain interface {
	Create(context.Context, *model.CreateUserProfileRequest) (*model.CreateUserProfileResponse, error)
	Update(context.Context, *model.UpdateUserProfileRequest) (*model.UpdateUserProfileResponse, error)
}

type userProfileDomain struct {
	userRepo        repository.UserRepository
	userProfileRepo repository.UserProfileRepository
}

func NewUserProfileDomain(
	userRepo repository.UserRepository,
	userProfileRepo repository.UserProfileRepository,
) UserProfileDomain {
	return &userProfileDomain{
		userRepo:        userRepo,
		userProfileRepo: userProfileRepo,
	}
}

func (d *userProfileDomain) Create(
	ctx context.Context, req *model.CreateUserProfileRequest,
) (*model.CreateUserProfileResponse, error) {
	if req.Nickname == "" {
		return nil, errorx.New(errorx.BadRequest, errorx.ReasonMissingRequiredFields,
			"Nickname is required")
	}

	user, err := getUser(ctx, d.userRepo, xcontext.RequestUserID(ctx))
	if err != nil {
		return nil, err
	}

	_, err = d.userProfileRepo.GetByUserID(ctx, user.ID)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, errorx.ReasonUserProfileAlreadyExists,
			"User profile already exists")
	}
	if !isNotFound(err) {
		return nil, storeError(ctx, err, "Cannot get user profile")
	}

	profile := &entity.UserProfile{UserID: user.ID}
	if err := applyProfileChanges(ctx, d.userProfileRepo, profile,
		&req.Nickname, req.Level, req.Experience); err != nil {
		return nil, err
	}

	if err := d.userProfileRepo.Create(ctx, profile); err != nil {
		if errorx.FromDB(err).Code == errorx.AlreadyExists {
			return nil, errorx.New(errorx.AlreadyExists, errorx.ReasonNicknameAlreadyExists,
				"Nickname already exists")
		}

		return nil, storeError(ctx, err, "Cannot create user profile")
	}

	return &model.CreateUserProfileResponse{
		Status:  model.OK("User profile created successfully"),
		Profile: model.ConvertUserProfile(profile),
	}, nil
}

func (d *userProfileDomain) Update(
	ctx context.Context, req *model.UpdateUserProfileRequest,
) (*model.UpdateUserProfileResponse, error) {
	profile, err := d.userProfileRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		if isNotFound(err) {
			return nil, errorx.New(errorx.NotFound, errorx.ReasonUserProfileNotFound,
				"User profile not found")
		}

		return nil, storeError(ctx, err, "Cannot get user profile")
	}

	if err := applyProfileChanges(ctx, d.userProfileRepo, profile,
		req.Nickname, req.Level, req.Experience); err != nil {
		return nil, err
	}

	if err := d.userProfileRepo.Update(ctx, profile); err != nil {
		if errorx.FromDB(err).Code == errorx.AlreadyExists {
			return nil, errorx.New(errorx.AlreadyExists, errorx.ReasonNicknameAlreadyExists,
				"Nickname already exists")
		}

		return nil, storeError(ctx, err, "Cannot update user profile")
	}

	return &model.UpdateUserProfileResponse{
		Status:  model.OK("User profile updated successfully"),
		Profile: model.ConvertUserProfile(profile),
	}, nil
}

// applyProfileChanges validates the given fields and copies them into
// profile. Nil fields are left unchanged.
func applyProfileChanges(
	ctx context.Context,
	userProfileRepo repository.UserProfileRepository,
	profile *entity.UserProfile,
	nickname *string,
	level, experience *int,
) error {
	if nickname != nil && *nickname != profile.Nickname {
		if err := checkNickname(*nickname); err != nil {
			return err
		}

		_, err := userProfileRepo.GetByNickname(ctx, *nickname)
		if err == nil {
			return errorx.New(errorx.AlreadyExists, errorx.ReasonNicknameAlreadyExists,
				"Nickname already exists")
		}
		if !isNotFound(err) {
			return storeError(ctx, err, "Cannot get user profile by nickname")
		}

		profile.Nickname = *nickname
	}

	if level != nil {
		if err := checkLevel(*level); err != nil {
			return err
		}

		profile.Level = *level
	}

	if experience != nil {
		if err := checkExperience(*experience); err != nil {
			return err
		}

		profile.Experience = *experience
	}

	return nil
}
