package domain

import (
	"context"

	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/internal/model"
	"github.com/nums-lab/backend/internal/repository"
	"github.com/nums-lab/backend/pkg/crypto"
	"github.com/nums-lab/backend/pkg/errorx"
	"github.com/nums-lab/backend/pkg/xcontext"

	"github.com/google/uuid"
)

type AuthDomain interface {
	Register(context.Context, *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error)
}

type authDomain struct {
	userRepo        repository.UserRepository
	userProfileRepo repository.UserProfileRepository
}

func NewAuthDomain(
	userRepo repository.UserRepository,
	userProfileRepo repository.UserProfileRepository,
) AuthDomain {
	return &authDomain{
		userRepo:        userRepo,
		userProfileRepo: userProfileRepo,
	}
}

func (d *authDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, errorx.ReasonMissingRequiredFields,
			"Username and password are required")
	}

	if err := checkUsername(req.Username); err != nil {
		return nil, err
	}

	hash, err := hashPassword(ctx, req.Password)
	if err != nil {
		return nil, err
	}

	_, err = d.userRepo.GetByUsername(ctx, req.Username)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, errorx.ReasonUsernameAlreadyExists,
			"Username already exists")
	}
	if !isNotFound(err) {
		return nil, storeError(ctx, err, "Cannot get user by username")
	}

	user := &entity.User{
		Base:     entity.Base{ID: uuid.NewString()},
		Username: req.Username,
		Password: hash,
		IsActive: true,
	}

	profile := &entity.UserProfile{
		UserID:     user.ID,
		Nickname:   user.Username,
		Level:      0,
		Experience: 0,
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.userRepo.Create(ctx, user); err != nil {
		if errorx.FromDB(err).Code == errorx.AlreadyExists {
			return nil, errorx.New(errorx.AlreadyExists, errorx.ReasonUsernameAlreadyExists,
				"Username already exists")
		}

		return nil, storeError(ctx, err, "Cannot create user")
	}

	if err := d.userProfileRepo.Create(ctx, profile); err != nil {
		if errorx.FromDB(err).Code == errorx.AlreadyExists {
			return nil, errorx.New(errorx.AlreadyExists, errorx.ReasonNicknameAlreadyExists,
				"Nickname already exists")
		}

		return nil, storeError(ctx, err, "Cannot create user profile")
	}

	if err := xcontext.WithCommitDBTransaction(ctx); err != nil {
		return nil, storeError(ctx, err, "Cannot commit user registration")
	}

	return &model.RegisterResponse{
		Status:  model.OK("User registered successfully"),
		User:    model.ConvertUser(user),
		Profile: model.ConvertUserProfile(profile),
	}, nil
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, errorx.ReasonMissingRequiredFields,
			"Username and password are required")
	}

	invalidCredentials := errorx.New(errorx.Unauthenticated, errorx.ReasonInvalidCredentials,
		"Invalid username or password")

	user, err := d.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if isNotFound(err) {
			return nil, invalidCredentials
		}

		return nil, storeError(ctx, err, "Cannot get user by username")
	}

	if !crypto.ComparePassword(user.Password, req.Password) {
		return nil, invalidCredentials
	}

	if !user.IsActive {
		return nil, errorx.New(errorx.PermissionDenied, errorx.ReasonAccountDisabled,
			"Account is disabled")
	}

	token, err := xcontext.TokenEngine(ctx).Generate(user.ID, model.AccessToken{
		ID:       user.ID,
		Username: user.Username,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LoginResponse{
		Status: model.OK("Login successful"),
		Token:  token,
		User:   model.ConvertUser(user),
	}, nil
}
