package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nums-lab/backend/pkg/router"
	"github.com/nums-lab/backend/pkg/xcontext"
)

func Logger() router.CloserFunc {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)
		status := router.Status(ctx)
		info := fmt.Sprintf("%s | %s | %d", req.Method, req.URL.Path, status)

		switch {
		case status >= http.StatusInternalServerError:
			xcontext.Logger(ctx).Errorf("%s | %s", info, router.Reason(ctx))
		case status >= http.StatusBadRequest:
			xcontext.Logger(ctx).Warnf("%s | %s", info, router.Reason(ctx))
		default:
			xcontext.Logger(ctx).Infof(info)
		}
	}
}
