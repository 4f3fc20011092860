package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/internal/model"
	"github.com/nums-lab/backend/internal/repository"
	"github.com/nums-lab/backend/pkg/enum"
	"github.com/nums-lab/backend/pkg/errorx"
	"github.com/nums-lab/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
)

type AdminDomain interface {
	GetUsers(context.Context, *model.GetUsersRequest) (*model.GetUsersResponse, error)
	GetUser(context.Context, *model.GetUserRequest) (*model.GetUserResponse, error)
	UpdateUser(context.Context, *model.AdminUpdateUserRequest) (*model.AdminUpdateUserResponse, error)
	DeleteUser(context.Context, *model.AdminDeleteUserRequest) (*model.AdminDeleteUserResponse, error)
	GetAdmins(context.Context, *model.GetAdminsRequest) (*model.GetAdminsResponse, error)
	CreateAdmin(context.Context, *model.CreateAdminRequest) (*model.CreateAdminResponse, error)
	DeleteAdmin(context.Context, *model.DeleteAdminRequest) (*model.DeleteAdminResponse, error)
}

type adminDomain struct {
	userRepo       repository.UserRepository
	adminRepo      repository.AdminRepository
	accountRemover *accountRemover
}

func NewAdminDomain(
	userRepo repository.UserRepository,
	userProfileRepo repository.UserProfileRepository,
	userConfigRepo repository.UserConfigRepository,
	adminRepo repository.AdminRepository,
) AdminDomain {
	return &adminDomain{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		accountRemover: &accountRemover{
			userRepo:        userRepo,
			userProfileRepo: userProfileRepo,
			userConfigRepo:  userConfigRepo,
			adminRepo:       adminRepo,
		},
	}
}

func (d *adminDomain) GetUsers(
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

func (d *adminDomain) GetUser(
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

func (d *adminDomain) UpdateUser(
	ctx context.Context, req *model.AdminUpdateUserRequest,
) (*model.AdminUpdateUserResponse, error) {
	user, err := getUser(ctx, d.userRepo, req.UserID)
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

	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := d.userRepo.Update(ctx, user); err != nil {
		if errorx.FromDB(err).Code == errorx.AlreadyExists {
			return nil, errorx.New(errorx.AlreadyExists, errorx.ReasonUsernameAlreadyExists,
				"Username already exists")
		}

		return nil, storeError(ctx, err, "Cannot update user")
	}

	return &model.AdminUpdateUserResponse{
		Status: model.OK("User updated successfully"),
		User:   model.ConvertUser(user),
	}, nil
}

func (d *adminDomain) DeleteUser(
	ctx context.Context, req *model.AdminDeleteUserRequest,
) (*model.AdminDeleteUserResponse, error) {
	if err := d.accountRemover.Remove(ctx, req.UserID); err != nil {
		return nil, err
	}

	return &model.AdminDeleteUserResponse{Status: model.OK("User deleted successfully")}, nil
}

func (d *adminDomain) GetAdmins(
	ctx context.Context, req *model.GetAdminsRequest,
) (*model.GetAdminsResponse, error) {
	admins, err := d.adminRepo.GetList(ctx)
	if err != nil {
		return nil, storeError(ctx, err, "Cannot get admin list")
	}

	result := []model.Admin{}
	for i := range admins {
		result = append(result, model.ConvertAdmin(&admins[i]))
	}

	return &model.GetAdminsResponse{
		Status: model.OK(""),
		Admins: result,
	}, nil
}

func (d *adminDomain) CreateAdmin(
	ctx context.Context, req *model.CreateAdminRequest,
) (*model.CreateAdminResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, errorx.ReasonMissingRequiredFields,
			"User id is required")
	}

	role := entity.AdminRoleAdmin
	if req.Role != "" {
		var err error
		role, err = enum.ToEnum[entity.AdminRole](req.Role)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, errorx.ReasonInvalidAdminRole,
				"Invalid admin role %s", req.Role)
		}
	}

	// Only a super admin may create another one.
	if role == entity.AdminRoleSuperAdmin &&
		xcontext.AdminRole(ctx) != string(entity.AdminRoleSuperAdmin) {
		return nil, errorx.New(errorx.PermissionDenied, errorx.ReasonPermissionDenied,
			"Only a super admin can grant the super admin role")
	}

	permissions := entity.Array[entity.Permission]{}
	for _, p := range req.Permissions {
		permission, err := enum.ToEnum[entity.Permission](p)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, errorx.ReasonInvalidPermission,
				"Invalid permission %s", p)
		}

		if !slices.Contains(permissions, permission) {
			permissions = append(permissions, permission)
		}
	}

	if _, err := getUser(ctx, d.userRepo, req.UserID); err != nil {
		return nil, err
	}

	_, err := d.adminRepo.GetByUserID(ctx, req.UserID)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, errorx.ReasonAdminAlreadyExists,
			"User is already an admin")
	}
	if !isNotFound(err) {
		return nil, storeError(ctx, err, "Cannot get admin grant")
	}

	admin := &entity.Admin{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      req.UserID,
		Role:        role,
		Permissions: permissions,
		IsActive:    true,
	}
	if err := d.adminRepo.Create(ctx, admin); err != nil {
		if errorx.FromDB(err).Code == errorx.AlreadyExists {
			return nil, errorx.New(errorx.AlreadyExists, errorx.ReasonAdminAlreadyExists,
				"User is already an admin")
		}

		return nil, storeError(ctx, err, "Cannot create admin grant")
	}

	return &model.CreateAdminResponse{
		Status: model.OK("Admin created successfully"),
		Admin:  model.ConvertAdmin(admin),
	}, nil
}

func (d *adminDomain) DeleteAdmin(
	ctx context.Context, req *model.DeleteAdminRequest,
) (*model.DeleteAdminResponse, error) {
	if req.UserID == xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, errorx.ReasonPermissionDenied,
			"Cannot revoke your own admin grant")
	}

	admin, err := d.adminRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, errorx.New(errorx.NotFound, errorx.ReasonAdminNotFound, "Admin not found")
		}

		return nil, storeError(ctx, err, "Cannot get admin grant")
	}

	if admin.Role == entity.AdminRoleSuperAdmin &&
		xcontext.AdminRole(ctx) != string(entity.AdminRoleSuperAdmin) {
		return nil, errorx.New(errorx.PermissionDenied, errorx.ReasonPermissionDenied,
			"Only a super admin can revoke a super admin")
	}

	if err := d.adminRepo.DeleteByUserID(ctx, req.UserID); err != nil {
		return nil, storeError(ctx, err, "Cannot delete admin grant")
	}

	return &model.DeleteAdminResponse{Status: model.OK("Admin deleted successfully")}, nil
}
