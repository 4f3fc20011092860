package middleware

import (
	"context"
	"strings"

	"github.com/nums-lab/backend/pkg/errorx"
	"github.com/nums-lab/backend/pkg/router"
	"github.com/nums-lab/backend/pkg/xcontext"
)

const bearerPrefix = "Bearer "

type AuthVerifier struct {
	verifiers []func(context.Context) (context.Context, error)
	optional  bool
}

func NewAuthVerifier() *AuthVerifier {
	return &AuthVerifier{}
}

// WithAccessToken returns a copy of the verifier which also accepts a signed
// access token in the Authorization header.
func (a *AuthVerifier) WithAccessToken() *AuthVerifier {
	clone := a.clone()
	clone.verifiers = append(clone.verifiers, verifyAccessToken)
	return clone
}

// Optional returns a copy of the verifier which leaves the identity unset
// instead of failing. The receiver keeps requiring a session.
func (a *AuthVerifier) Optional() *AuthVerifier {
	clone := a.clone()
	clone.optional = true
	return clone
}

func (a *AuthVerifier) clone() *AuthVerifier {
	return &AuthVerifier{
		verifiers: append([]func(context.Context) (context.Context, error){}, a.verifiers...),
		optional:  a.optional,
	}
}

func (a *AuthVerifier) Middleware() router.MiddlewareFunc {
	verifiers, optional := a.verifiers, a.optional

	return func(ctx context.Context) (context.Context, error) {
		var lastErr error
		for _, verify := range verifiers {
			newCtx, err := verify(ctx)
			if err == nil {
				return newCtx, nil
			}

			lastErr = err
		}

		if optional {
			return nil, nil
		}

		if lastErr == nil {
			lastErr = errMissingToken
		}

		return nil, lastErr
	}
}

var (
	errMissingToken = errorx.New(errorx.Unauthenticated, errorx.ReasonMissingAuthToken,
		"Access token is required")
	errInvalidToken = errorx.New(errorx.Unauthenticated, errorx.ReasonTokenVerificationFail,
		"Invalid or expired token")
)

func verifyAccessToken(ctx context.Context) (context.Context, error) {
	header := xcontext.HTTPRequest(ctx).Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, errMissingToken
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return nil, errMissingToken
	}

	accessToken, err := xcontext.TokenEngine(ctx).Verify(token)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
		return nil, errInvalidToken
	}

	ctx = xcontext.WithRequestUserID(ctx, accessToken.ID)
	ctx = xcontext.WithRequestUsername(ctx, accessToken.Username)
	return ctx, nil
}
