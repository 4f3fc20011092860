package repository_test

import (
	"testing"

	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/internal/repository"
	"github.com/nums-lab/backend/pkg/errorx"
	"github.com/nums-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_userConfigRepository_Upsert(t *testing.T) {
	ctx := testutil.MockContext()
	repo := repository.NewUserConfigRepository()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	light, err := testutil.SampleTheme(ctx, nil)
	require.NoError(t, err)
	dark, err := testutil.SampleTheme(ctx, &entity.Theme{Mode: entity.ThemeModeDark})
	require.NoError(t, err)

	require.NoError(t, repo.Upsert(ctx, &entity.UserConfig{UserID: user.ID, ActiveThemeID: light.ID}))
	require.NoError(t, repo.Upsert(ctx, &entity.UserConfig{UserID: user.ID, ActiveThemeID: dark.ID}))

	config, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, dark.ID, config.ActiveThemeID)

	count, err := repo.CountByThemeID(ctx, light.ID)
	require.NoError(t, err)
	require.Zero(t, count)

	count, err = repo.CountByThemeID(ctx, dark.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func Test_userConfigRepository_Create(t *testing.T) {
	ctx := testutil.MockContext()
	repo := repository.NewUserConfigRepository()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	theme, err := testutil.SampleTheme(ctx, nil)
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, &entity.UserConfig{UserID: user.ID, ActiveThemeID: theme.ID}))

	err = repo.Create(ctx, &entity.UserConfig{UserID: user.ID, ActiveThemeID: theme.ID})
	require.Equal(t, errorx.AlreadyExists, errorx.FromDB(err).Code)

	err = repo.Create(ctx, &entity.UserConfig{UserID: "unknown", ActiveThemeID: theme.ID})
	require.Error(t, err)

	require.NoError(t, repo.DeleteByUserID(ctx, user.ID))
	_, err = repo.GetByUserID(ctx, user.ID)
	require.Equal(t, errorx.NotFound, errorx.FromDB(err).Code)
}

func Test_themeRepository_GetDefaults(t *testing.T) {
	ctx := testutil.MockContext()
	repo := repository.NewThemeRepository()

	_, err := testutil.SampleTheme(ctx, &entity.Theme{Name: "b_default", IsDefault: true})
	require.NoError(t, err)
	_, err = testutil.SampleTheme(ctx, &entity.Theme{Name: "custom"})
	require.NoError(t, err)
	_, err = testutil.SampleTheme(ctx, &entity.Theme{Name: "a_default", IsDefault: true})
	require.NoError(t, err)

	defaults, err := repo.GetDefaults(ctx)
	require.NoError(t, err)
	require.Len(t, defaults, 2)
	for _, theme := range defaults {
		require.True(t, theme.IsDefault)
	}

	all, err := repo.GetList(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	theme, err := repo.GetByName(ctx, "custom")
	require.NoError(t, err)
	require.False(t, theme.IsDefault)
}
