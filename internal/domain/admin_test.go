package domain

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/internal/model"
	"github.com/nums-lab/backend/internal/repository"
	"github.com/nums-lab/backend/pkg/errorx"
	"github.com/nums-lab/backend/pkg/testutil"
	"github.com/nums-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newAdminDomain() AdminDomain {
	return NewAdminDomain(
		repository.NewUserRepository(),
		repository.NewUserProfileRepository(),
		repository.NewUserConfigRepository(),
		repository.NewAdminRepository(),
	)
}

func Test_adminDomain_Users(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newAdminDomain()
	_, user, _ := sampleAccount(t, ctx)
	_, other, _ := sampleAccount(t, ctx)

	listResp, err := domain.GetUsers(ctx, &model.GetUsersRequest{})
	require.NoError(t, err)
	require.Len(t, listResp.Users, 2)

	updateResp, err := domain.UpdateUser(ctx, &model.AdminUpdateUserRequest{
		UserID:   user.ID,
		Username: ptr("moderated"),
		IsActive: ptr(false),
	})
	require.NoError(t, err)
	require.Equal(t, "moderated", updateResp.User.Username)
	require.False(t, updateResp.User.IsActive)

	getResp, err := domain.GetUser(ctx, &model.GetUserRequest{UserID: user.ID})
	require.NoError(t, err)
	require.False(t, getResp.User.IsActive)

	_, err = domain.UpdateUser(ctx, &model.AdminUpdateUserRequest{UserID: user.ID, Username: ptr(other.Username)})
	requireErrorReason(t, err, errorx.AlreadyExists, errorx.ReasonUsernameAlreadyExists)

	_, err = domain.UpdateUser(ctx, &model.AdminUpdateUserRequest{UserID: "unknown", IsActive: ptr(true)})
	requireErrorReason(t, err, errorx.NotFound, errorx.ReasonUserNotFound)

	_, err = domain.DeleteUser(ctx, &model.AdminDeleteUserRequest{UserID: user.ID})
	require.NoError(t, err)

	_, err = domain.GetUser(ctx, &model.GetUserRequest{UserID: user.ID})
	requireErrorReason(t, err, errorx.NotFound, errorx.ReasonUserNotFound)

	_, err = repository.NewUserProfileRepository().GetByUserID(ctx, user.ID)
	require.True(t, isNotFound(err))
}

func Test_adminDomain_Admins(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newAdminDomain()

	_, caller, _ := sampleAccount(t, ctx)
	_, user, _ := sampleAccount(t, ctx)
	adminCtx := xcontext.WithRequestUserID(ctx, caller.ID)
	adminCtx = xcontext.WithAdminRole(adminCtx, string(entity.AdminRoleAdmin))

	createResp, err := domain.CreateAdmin(adminCtx, &model.CreateAdminRequest{
		UserID:      user.ID,
		Permissions: []string{"game_manage", "theme_manage", "game_manage"},
	})
	require.NoError(t, err)
	require.Equal(t, 201, createResp.StatusCode())
	require.Equal(t, "admin", createResp.Admin.Role)
	require.Equal(t, []string{"game_manage", "theme_manage"}, createResp.Admin.Permissions)

	grant, err := repository.NewAdminRepository().GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, grant.HasPermissions(entity.PermissionGameManage))
	require.False(t, grant.HasPermissions(entity.PermissionUserManage))

	listResp, err := domain.GetAdmins(adminCtx, &model.GetAdminsRequest{})
	require.NoError(t, err)
	require.Len(t, listResp.Admins, 1)

	_, err = domain.CreateAdmin(adminCtx, &model.CreateAdminRequest{UserID: user.ID})
	requireErrorReason(t, err, errorx.AlreadyExists, errorx.ReasonAdminAlreadyExists)

	_, err = domain.CreateAdmin(adminCtx, &model.CreateAdminRequest{UserID: caller.ID, Role: "owner"})
	requireErrorReason(t, err, errorx.BadRequest, errorx.ReasonInvalidAdminRole)

	_, err = domain.CreateAdmin(adminCtx, &model.CreateAdminRequest{UserID: caller.ID, Permissions: []string{"everything"}})
	requireErrorReason(t, err, errorx.BadRequest, errorx.ReasonInvalidPermission)

	_, err = domain.CreateAdmin(adminCtx, &model.CreateAdminRequest{UserID: caller.ID, Role: "super_admin"})
	requireErrorReason(t, err, errorx.PermissionDenied, errorx.ReasonPermissionDenied)

	_, err = domain.CreateAdmin(adminCtx, &model.CreateAdminRequest{UserID: "unknown"})
	requireErrorReason(t, err, errorx.NotFound, errorx.ReasonUserNotFound)

	superCtx := xcontext.WithAdminRole(adminCtx, string(entity.AdminRoleSuperAdmin))
	_, err = domain.CreateAdmin(superCtx, &model.CreateAdminRequest{UserID: caller.ID, Role: "super_admin"})
	require.NoError(t, err)

	_, err = domain.DeleteAdmin(adminCtx, &model.DeleteAdminRequest{UserID: caller.ID})
	requireErrorReason(t, err, errorx.PermissionDenied, errorx.ReasonPermissionDenied)

	_, err = domain.DeleteAdmin(adminCtx, &model.DeleteAdminRequest{UserID: user.ID})
	require.NoError(t, err)

	_, err = domain.DeleteAdmin(adminCtx, &model.DeleteAdminRequest{UserID: user.ID})
	requireErrorReason(t, err, errorx.NotFound, errorx.ReasonAdminNotFound)
}

func Test_adminDomain_DeleteUser_CommitFails(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "is_active"}).
			AddRow("user-1", "alice123", "hash", true))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "user_profiles"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "user_configs"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "admins"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "users"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("connection reset by peer"))

	ctx := xcontext.WithDB(testutil.MockContext(), db)
	resp, err := newAdminDomain().DeleteUser(ctx, &model.AdminDeleteUserRequest{UserID: "user-1"})
	require.Nil(t, resp)
	requireErrorReason(t, err, errorx.Internal, errorx.ReasonInternal)
	require.NoError(t, mock.ExpectationsWereMet())
}
