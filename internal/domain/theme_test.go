package domain

import (
	"testing"

	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/internal/model"
	"github.com/nums-lab/backend/internal/repository"
	"github.com/nums-lab/backend/pkg/errorx"
	"github.com/nums-lab/backend/pkg/testutil"
	"github.com/nums-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newThemeDomain() ThemeDomain {
	return NewThemeDomain(
		repository.NewThemeRepository(),
		repository.NewUserConfigRepository(),
	)
}

func Test_themeDomain_GetList(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newThemeDomain()
	userCtx, user, _ := sampleAccount(t, ctx)

	theme, err := testutil.SampleTheme(ctx, nil)
	require.NoError(t, err)
	_, err = testutil.SampleTheme(ctx, nil)
	require.NoError(t, err)

	resp, err := domain.GetList(ctx, &model.GetThemesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Themes, 2)
	require.Nil(t, resp.ActiveThemeID)

	err = repository.NewUserConfigRepository().Create(ctx, &entity.UserConfig{
		UserID:        user.ID,
		ActiveThemeID: theme.ID,
	})
	require.NoError(t, err)

	resp, err = domain.GetList(userCtx, &model.GetThemesRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp.ActiveThemeID)
	require.Equal(t, theme.ID, *resp.ActiveThemeID)
}

func Test_themeDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newThemeDomain()

	resp, err := domain.Create(ctx, &model.CreateThemeRequest{
		Name:      "ocean",
		NameKR:    "바다",
		Mode:      "dark",
		Colors:    testutil.SampleColorMap(),
		Variables: map[string]any{"radius": "8px"},
	})
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode())
	require.Equal(t, "ocean", resp.Theme.Name)
	require.Equal(t, "dark", resp.Theme.Mode)
	require.Equal(t, testutil.SampleColorMap(), resp.Theme.Colors)

	getResp, err := domain.Get(ctx, &model.GetThemeRequest{ThemeID: resp.Theme.ID})
	require.NoError(t, err)
	require.Equal(t, "바다", getResp.Theme.NameKR)
	require.Equal(t, testutil.SampleColorMap(), getResp.Theme.Colors)
	require.Equal(t, "8px", getResp.Theme.Variables["radius"])
	require.False(t, getResp.Theme.IsDefault)
}

func Test_themeDomain_Create_Invalid(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newThemeDomain()

	_, err := testutil.SampleTheme(ctx, &entity.Theme{Name: "taken"})
	require.NoError(t, err)

	missingColor := testutil.SampleColorMap()
	delete(missingColor, "on-surface")

	badColor := testutil.SampleColorMap()
	badColor["primary"] = "blue"

	testCases := []struct {
		name   string
		req    model.CreateThemeRequest
		code   errorx.Code
		reason string
	}{
		{
			name:   "missing colors",
			req:    model.CreateThemeRequest{Name: "new", Mode: "light"},
			code:   errorx.BadRequest,
			reason: errorx.ReasonMissingRequiredFields,
		},
		{
			name:   "invalid mode",
			req:    model.CreateThemeRequest{Name: "new", Mode: "sepia", Colors: testutil.SampleColorMap()},
			code:   errorx.BadRequest,
			reason: errorx.ReasonInvalidThemeMode,
		},
		{
			name:   "missing color",
			req:    model.CreateThemeRequest{Name: "new", Mode: "light", Colors: missingColor},
			code:   errorx.BadRequest,
			reason: errorx.ReasonInvalidThemeColors,
		},
		{
			name:   "invalid color",
			req:    model.CreateThemeRequest{Name: "new", Mode: "light", Colors: badColor},
			code:   errorx.BadRequest,
			reason: errorx.ReasonInvalidThemeColors,
		},
		{
			name:   "duplicated name",
			req:    model.CreateThemeRequest{Name: "taken", Mode: "light", Colors: testutil.SampleColorMap()},
			code:   errorx.AlreadyExists,
			reason: errorx.ReasonThemeNameAlreadyExists,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.Create(ctx, &tt.req)
			requireErrorReason(t, err, tt.code, tt.reason)
		})
	}
}

func Test_themeDomain_Update(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newThemeDomain()

	theme, err := testutil.SampleTheme(ctx, nil)
	require.NoError(t, err)
	other, err := testutil.SampleTheme(ctx, nil)
	require.NoError(t, err)

	resp, err := domain.Update(ctx, &model.UpdateThemeRequest{
		ThemeID: theme.ID,
		Mode:    ptr("dark"),
		Colors:  map[string]string{"primary": "#000000"},
	})
	require.NoError(t, err)
	require.Equal(t, "dark", resp.Theme.Mode)
	require.Equal(t, "#000000", resp.Theme.Colors["primary"])
	require.Equal(t, testutil.SampleColors().Secondary, resp.Theme.Colors["secondary"])

	_, err = domain.Update(ctx, &model.UpdateThemeRequest{ThemeID: theme.ID, Name: ptr(other.Name)})
	requireErrorReason(t, err, errorx.AlreadyExists, errorx.ReasonThemeNameAlreadyExists)

	_, err = domain.Update(ctx, &model.UpdateThemeRequest{ThemeID: theme.ID, Mode: ptr("sepia")})
	requireErrorReason(t, err, errorx.BadRequest, errorx.ReasonInvalidThemeMode)

	_, err = domain.Update(ctx, &model.UpdateThemeRequest{
		ThemeID: theme.ID,
		Colors:  map[string]string{"accent": "#12"},
	})
	requireErrorReason(t, err, errorx.BadRequest, errorx.ReasonInvalidThemeColors)

	_, err = domain.Update(ctx, &model.UpdateThemeRequest{ThemeID: "unknown"})
	requireErrorReason(t, err, errorx.NotFound, errorx.ReasonThemeNotFound)
}

func Test_themeDomain_Delete(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newThemeDomain()
	_, user, _ := sampleAccount(t, ctx)

	defaultTheme, err := testutil.SampleTheme(ctx, &entity.Theme{IsDefault: true})
	require.NoError(t, err)
	usedTheme, err := testutil.SampleTheme(ctx, nil)
	require.NoError(t, err)
	unusedTheme, err := testutil.SampleTheme(ctx, nil)
	require.NoError(t, err)

	err = repository.NewUserConfigRepository().Create(ctx, &entity.UserConfig{
		UserID:        user.ID,
		ActiveThemeID: usedTheme.ID,
	})
	require.NoError(t, err)

	_, err = domain.Delete(ctx, &model.DeleteThemeRequest{ThemeID: defaultTheme.ID})
	requireErrorReason(t, err, errorx.BadRequest, errorx.ReasonCannotDeleteDefault)

	_, err = domain.Delete(ctx, &model.DeleteThemeRequest{ThemeID: usedTheme.ID})
	requireErrorReason(t, err, errorx.AlreadyExists, errorx.ReasonThemeInUse)

	_, err = domain.Delete(ctx, &model.DeleteThemeRequest{ThemeID: unusedTheme.ID})
	require.NoError(t, err)

	_, err = domain.Get(ctx, &model.GetThemeRequest{ThemeID: unusedTheme.ID})
	requireErrorReason(t, err, errorx.NotFound, errorx.ReasonThemeNotFound)

	_, err = domain.Delete(xcontext.WithRequestUserID(ctx, user.ID), &model.DeleteThemeRequest{ThemeID: "unknown"})
	requireErrorReason(t, err, errorx.NotFound, errorx.ReasonThemeNotFound)
}
