package router

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/nums-lab/backend/config"
	"github.com/nums-lab/backend/internal/model"
	"github.com/nums-lab/backend/pkg/authenticator"
	"github.com/nums-lab/backend/pkg/errorx"
	"github.com/nums-lab/backend/pkg/logger"
	"github.com/nums-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// MiddlewareFunc may return a derived context. A nil context keeps the
// current one.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response has been written, whatever the outcome.
type CloserFunc func(ctx context.Context)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

type Router struct {
	mux *http.ServeMux

	db          *gorm.DB
	cfg         config.Configs
	logger      logger.Logger
	tokenEngine authenticator.TokenEngine[model.AccessToken]
	befores     []MiddlewareFunc
	afters      []MiddlewareFunc
	closers     []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	r := &Router{
		mux:         http.NewServeMux(),
		db:          db,
		cfg:         cfg,
		logger:      logger,
		tokenEngine: authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.TokenSecret, cfg.Auth.AccessToken),
	}

	r.mux.Handle("/", r.wrap(func(ctx context.Context) (any, error) {
		return nil, errorx.New(errorx.NotFound, errorx.ReasonNotFound, "Route not found")
	}))

	return r
}

// Branch returns a router sharing the same mux. Middlewares added to the
// branch do not affect the parent.
func (r *Router) Branch() *Router {
	return &Router{
		mux:         r.mux,
		db:          r.db,
		cfg:         r.cfg,
		logger:      r.logger,
		tokenEngine: r.tokenEngine,
		befores:     append([]MiddlewareFunc{}, r.befores...),
		afters:      append([]MiddlewareFunc{}, r.afters...),
		closers:     append([]CloserFunc{}, r.closers...),
	}
}

func (r *Router) Before(middlewares ...MiddlewareFunc) {
	r.befores = append(r.befores, middlewares...)
}

func (r *Router) After(middlewares ...MiddlewareFunc) {
	r.afters = append(r.afters, middlewares...)
}

func (r *Router) AddCloser(closers ...CloserFunc) {
	r.closers = append(r.closers, closers...)
}

// Handle mounts a plain http.Handler, bypassing middlewares.
func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	route(r, http.MethodGet, pattern, handler)
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	route(r, http.MethodPost, pattern, handler)
}

func PUT[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	route(r, http.MethodPut, pattern, handler)
}

func DELETE[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	route(r, http.MethodDelete, pattern, handler)
}

var wildcardRegex = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)(?:\.\.\.)?\}`)

func route[Request, Response any](
	r *Router, method, pattern string, handler HandlerFunc[Request, Response],
) {
	var params []string
	for _, match := range wildcardRegex.FindAllStringSubmatch(pattern, -1) {
		params = append(params, match[1])
	}

	r.mux.Handle(method+" "+pattern, r.wrap(func(ctx context.Context) (any, error) {
		var req Request
		if err := bind(xcontext.HTTPRequest(ctx), params, &req); err != nil {
			xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
			return nil, errorx.New(errorx.BadRequest, errorx.ReasonInvalidRequestBody, "Invalid request body")
		}

		resp, err := handler(ctx, &req)
		if err != nil || resp == nil {
			return nil, err
		}

		return resp, nil
	}))
}

func (r *Router) wrap(call func(ctx context.Context) (any, error)) http.Handler {
	befores, afters, closers := r.befores, r.afters, r.closers

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		ctx = xcontext.WithHTTPRequest(ctx, req)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithConfigs(ctx, r.cfg)
		ctx = xcontext.WithLogger(ctx, r.logger)
		ctx = xcontext.WithTokenEngine(ctx, r.tokenEngine)
		if r.db != nil {
			ctx = xcontext.WithDB(ctx, r.db)
		}

		ctx, err := runMiddlewares(ctx, befores)
		if err == nil {
			var resp any
			resp, err = call(ctx)
			if err == nil {
				ctx = xcontext.WithResponse(ctx, resp)
				ctx, err = runMiddlewares(ctx, afters)
			}
		}

		if err != nil {
			ctx = xcontext.WithError(ctx, err)
			writeError(ctx, w, err)
		} else {
			writeResponse(ctx, w, xcontext.Response(ctx))
		}

		for _, closer := range closers {
			closer(ctx)
		}
	})
}

func runMiddlewares(ctx context.Context, middlewares []MiddlewareFunc) (context.Context, error) {
	for _, m := range middlewares {
		newCtx, err := m(ctx)
		if err != nil {
			return ctx, err
		}

		if newCtx != nil {
			ctx = newCtx
		}
	}

	return ctx, nil
}

func isBodyMethod(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}

	return false
}
