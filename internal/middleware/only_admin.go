package middleware

import (
	"context"
	"errors"

	"github.com/nums-lab/backend/internal/common"
	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/internal/repository"
	"github.com/nums-lab/backend/pkg/errorx"
	"github.com/nums-lab/backend/pkg/router"
	"github.com/nums-lab/backend/pkg/xcontext"
)

type OnlyAdmin struct {
	adminVerifier *common.AdminVerifier
	permissions   []entity.Permission
}

func NewOnlyAdmin(adminRepo repository.AdminRepository) *OnlyAdmin {
	return &OnlyAdmin{
		adminVerifier: common.NewAdminVerifier(adminRepo),
	}
}

// WithPermissions returns a copy which also requires every given permission.
func (a *OnlyAdmin) WithPermissions(permissions ...entity.Permission) *OnlyAdmin {
	return &OnlyAdmin{
		adminVerifier: a.adminVerifier,
		permissions:   append(append([]entity.Permission{}, a.permissions...), permissions...),
	}
}

func (a *OnlyAdmin) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if xcontext.RequestUserID(ctx) == "" {
			return nil, errorx.New(errorx.Unauthenticated, errorx.ReasonAuthenticationRequired,
				"Authentication required")
		}

		admin, err := a.adminVerifier.Verify(ctx, a.permissions...)
		switch {
		case errors.Is(err, common.ErrNotAdmin):
			return nil, errorx.New(errorx.PermissionDenied, errorx.ReasonAdminAccessRequired,
				"Admin access required")

		case errors.Is(err, common.ErrPermissionMissing):
			return nil, errorx.New(errorx.PermissionDenied, errorx.ReasonPermissionDenied,
				"Permission denied")

		case err != nil:
			xcontext.Logger(ctx).Errorf("Cannot verify admin grant: %v", err)
			return nil, errorx.New(errorx.Internal, errorx.ReasonAdminCheckError,
				"Error while checking admin access")
		}

		return xcontext.WithAdminRole(ctx, string(admin.Role)), nil
	}
}
