package middleware

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/nums-lab/backend/internal/model"
	"github.com/nums-lab/backend/pkg/errorx"
	"github.com/nums-lab/backend/pkg/testutil"
	"github.com/nums-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func withAuthorization(ctx context.Context, header string) context.Context {
	req := httptest.NewRequest("GET", "/api/users/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	return xcontext.WithHTTPRequest(ctx, req)
}

func requireReason(t *testing.T, err error, reason string) {
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, reason, errx.Reason)
}

func Test_AuthVerifier(t *testing.T) {
	ctx := testutil.MockContext()
	token, err := xcontext.TokenEngine(ctx).Generate("user-1", model.AccessToken{
		ID:       "user-1",
		Username: "alice",
	})
	require.NoError(t, err)

	testCases := []struct {
		name    string
		header  string
		wantErr string
	}{
		{name: "valid token", header: "Bearer " + token},
		{name: "no header", wantErr: errorx.ReasonMissingAuthToken},
		{name: "not bearer", header: "Basic " + token, wantErr: errorx.ReasonMissingAuthToken},
		{name: "empty bearer", header: "Bearer ", wantErr: errorx.ReasonMissingAuthToken},
		{name: "invalid token", header: "Bearer invalid", wantErr: errorx.ReasonTokenVerificationFail},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			verifier := NewAuthVerifier().WithAccessToken()
			newCtx, err := verifier.Middleware()(withAuthorization(ctx, tt.header))
			if tt.wantErr != "" {
				requireReason(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, "user-1", xcontext.RequestUserID(newCtx))
			require.Equal(t, "alice", xcontext.RequestUsername(newCtx))
		})
	}
}

func Test_AuthVerifier_Optional(t *testing.T) {
	ctx := testutil.MockContext()
	verifier := NewAuthVerifier().WithAccessToken().Optional()

	newCtx, err := verifier.Middleware()(withAuthorization(ctx, "Bearer invalid"))
	require.NoError(t, err)
	require.Nil(t, newCtx)

	token, err := xcontext.TokenEngine(ctx).Generate("user-2", model.AccessToken{ID: "user-2"})
	require.NoError(t, err)

	newCtx, err = verifier.Middleware()(withAuthorization(ctx, "Bearer "+token))
	require.NoError(t, err)
	require.Equal(t, "user-2", xcontext.RequestUserID(newCtx))
}

func Test_AuthVerifier_OptionalKeepsReceiverRequired(t *testing.T) {
	ctx := testutil.MockContext()
	verifier := NewAuthVerifier().WithAccessToken()
	required := verifier.Middleware()
	optional := verifier.Optional().Middleware()
	requiredAfter := verifier.Middleware()

	_, err := optional(withAuthorization(ctx, ""))
	require.NoError(t, err)

	_, err = required(withAuthorization(ctx, ""))
	requireReason(t, err, errorx.ReasonMissingAuthToken)

	_, err = requiredAfter(withAuthorization(ctx, "Bearer garbage.token.value"))
	requireReason(t, err, errorx.ReasonTokenVerificationFail)
}
