package middleware

import (
	"context"

	"github.com/nums-lab/backend/internal/common"
	"github.com/nums-lab/backend/pkg/errorx"
	"github.com/nums-lab/backend/pkg/router"
)

// RequireDB rejects requests while the last database probe failed.
func RequireDB(status *common.DBStatus) router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if !status.IsConnected() {
			return nil, errorx.New(errorx.Unavailable, errorx.ReasonDBUnavailable,
				"Database is not available")
		}

		return nil, nil
	}
}
