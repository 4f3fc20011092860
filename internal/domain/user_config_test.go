package domain

import (
	"testing"

	"github.com/nums-lab/backend/internal/model"
	"github.com/nums-lab/backend/internal/repository"
	"github.com/nums-lab/backend/pkg/errorx"
	"github.com/nums-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newUserConfigDomain() UserConfigDomain {
	return NewUserConfigDomain(
		repository.NewUserConfigRepository(),
		repository.NewThemeRepository(),
	)
}

func Test_userConfigDomain(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newUserConfigDomain()
	userCtx, user, _ := sampleAccount(t, ctx)

	light, err := testutil.SampleTheme(ctx, nil)
	require.NoError(t, err)
	dark, err := testutil.SampleTheme(ctx, nil)
	require.NoError(t, err)

	_, err = domain.Get(userCtx, &model.GetUserConfigRequest{UserID: user.ID})
	requireErrorReason(t, err, errorx.NotFound, errorx.ReasonUserConfigNotFound)

	_, err = domain.Create(userCtx, &model.CreateUserConfigRequest{UserID: user.ID, ActiveThemeID: "unknown"})
	requireErrorReason(t, err, errorx.NotFound, errorx.ReasonThemeNotFound)

	createResp, err := domain.Create(userCtx, &model.CreateUserConfigRequest{
		UserID:        user.ID,
		ActiveThemeID: light.ID,
	})
	require.NoError(t, err)
	require.Equal(t, 201, createResp.StatusCode())
	require.Equal(t, light.ID, createResp.Config.ActiveThemeID)

	_, err = domain.Create(userCtx, &model.CreateUserConfigRequest{UserID: user.ID, ActiveThemeID: dark.ID})
	requireErrorReason(t, err, errorx.AlreadyExists, errorx.ReasonUserConfigAlreadyExists)

	updateResp, err := domain.Update(userCtx, &model.UpdateUserConfigRequest{
		UserID:        user.ID,
		ActiveThemeID: ptr(dark.ID),
	})
	require.NoError(t, err)
	require.Equal(t, dark.ID, updateResp.Config.ActiveThemeID)

	_, err = domain.Update(userCtx, &model.UpdateUserConfigRequest{UserID: user.ID, ActiveThemeID: ptr("unknown")})
	requireErrorReason(t, err, errorx.NotFound, errorx.ReasonThemeNotFound)

	getResp, err := domain.Get(userCtx, &model.GetUserConfigRequest{UserID: user.ID})
	require.NoError(t, err)
	require.Equal(t, dark.ID, getResp.Config.ActiveThemeID)
	require.NotNil(t, getResp.Config.Theme)
	require.Equal(t, dark.Name, getResp.Config.Theme.Name)

	_, err = domain.Delete(userCtx, &model.DeleteUserConfigRequest{UserID: user.ID})
	require.NoError(t, err)

	_, err = domain.Delete(userCtx, &model.DeleteUserConfigRequest{UserID: user.ID})
	requireErrorReason(t, err, errorx.NotFound, errorx.ReasonUserConfigNotFound)
}

func Test_userConfigDomain_Ownership(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newUserConfigDomain()
	userCtx, _, _ := sampleAccount(t, ctx)
	_, other, _ := sampleAccount(t, ctx)

	theme, err := testutil.SampleTheme(ctx, nil)
	require.NoError(t, err)

	_, err = domain.Create(userCtx, &model.CreateUserConfigRequest{UserID: other.ID, ActiveThemeID: theme.ID})
	requireErrorReason(t, err, errorx.PermissionDenied, errorx.ReasonOwnershipRequired)

	_, err = domain.Get(userCtx, &model.GetUserConfigRequest{UserID: other.ID})
	requireErrorReason(t, err, errorx.PermissionDenied, errorx.ReasonOwnershipRequired)

	_, err = domain.Update(userCtx, &model.UpdateUserConfigRequest{UserID: other.ID})
	requireErrorReason(t, err, errorx.PermissionDenied, errorx.ReasonOwnershipRequired)

	_, err = domain.Delete(userCtx, &model.DeleteUserConfigRequest{UserID: other.ID})
	requireErrorReason(t, err, errorx.PermissionDenied, errorx.ReasonOwnershipRequired)
}
