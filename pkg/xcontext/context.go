package xcontext

import (
	"context"
	"net/http"
	"time"

	"github.com/nums-lab/backend/config"
	"github.com/nums-lab/backend/internal/model"
	"github.com/nums-lab/backend/pkg/authenticator"
	"github.com/nums-lab/backend/pkg/logger"
	"gorm.io/gorm"
)

type (
	dbKey            struct{}
	dbTransactionKey struct{}
	loggerKey        struct{}
	configsKey       struct{}
	httpRequestKey   struct{}
	httpWriterKey    struct{}
	requestUserIDKey struct{}
	requestUserKey   struct{}
	adminRoleKey     struct{}
	startTimeKey     struct{}
	tokenEngineKey   struct{}
	responseKey      struct{}
	errorKey         struct{}
)

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the active transaction if one was opened by WithDBTransaction,
// otherwise the database bound to the context.
func DB(ctx context.Context) *gorm.DB {
	if tx := ctx.Value(dbTransactionKey{}); tx != nil {
		return tx.(*gorm.DB)
	}

	db := ctx.Value(dbKey{})
	if db == nil {
		return nil
	}

	return db.(*gorm.DB).WithContext(ctx)
}

func WithDBTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, dbTransactionKey{}, DB(ctx).Begin())
}

// WithCommitDBTransaction commits the transaction opened by
// WithDBTransaction. A failed commit leaves nothing written.
func WithCommitDBTransaction(ctx context.Context) error {
	if tx := ctx.Value(dbTransactionKey{}); tx != nil {
		return tx.(*gorm.DB).Commit().Error
	}

	return nil
}

// WithRollbackDBTransaction is safe to defer after a commit. Rolling back a
// finished transaction is a no-op apart from the ErrTxDone it returns.
func WithRollbackDBTransaction(ctx context.Context) {
	if tx := ctx.Value(dbTransactionKey{}); tx != nil {
		tx.(*gorm.DB).Rollback()
	}
}

func WithLogger(ctx context.Context, logger logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func Logger(ctx context.Context) logger.Logger {
	l := ctx.Value(loggerKey{})
	if l == nil {
		return logger.NewLogger(logger.SILENCE)
	}

	return l.(logger.Logger)
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	cfg := ctx.Value(configsKey{})
	if cfg == nil {
		return config.Configs{}
	}

	return cfg.(config.Configs)
}

func WithHTTPRequest(ctx context.Context, req *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, req)
}

func HTTPRequest(ctx context.Context) *http.Request {
	req := ctx.Value(httpRequestKey{})
	if req == nil {
		return nil
	}

	return req.(*http.Request)
}

func WithHTTPWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, httpWriterKey{}, w)
}

func HTTPWriter(ctx context.Context) http.ResponseWriter {
	w := ctx.Value(httpWriterKey{})
	if w == nil {
		return nil
	}

	return w.(http.ResponseWriter)
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestUserIDKey{}, id)
}

func RequestUserID(ctx context.Context) string {
	id := ctx.Value(requestUserIDKey{})
	if id == nil {
		return ""
	}

	return id.(string)
}

func WithRequestUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, requestUserKey{}, username)
}

func RequestUsername(ctx context.Context) string {
	username := ctx.Value(requestUserKey{})
	if username == nil {
		return ""
	}

	return username.(string)
}

func WithAdminRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, adminRoleKey{}, role)
}

func AdminRole(ctx context.Context) string {
	role := ctx.Value(adminRoleKey{})
	if role == nil {
		return ""
	}

	return role.(string)
}

func WithStartTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, startTimeKey{}, t)
}

func StartTime(ctx context.Context) time.Time {
	t := ctx.Value(startTimeKey{})
	if t == nil {
		return time.Time{}
	}

	return t.(time.Time)
}

func WithResponse(ctx context.Context, resp any) context.Context {
	return context.WithValue(ctx, responseKey{}, resp)
}

func Response(ctx context.Context) any {
	return ctx.Value(responseKey{})
}

func WithError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, errorKey{}, err)
}

func Error(ctx context.Context) error {
	err := ctx.Value(errorKey{})
	if err == nil {
		return nil
	}

	return err.(error)
}

func WithTokenEngine(ctx context.Context, engine authenticator.TokenEngine[model.AccessToken]) context.Context {
	return context.WithValue(ctx, tokenEngineKey{}, engine)
}

func TokenEngine(ctx context.Context) authenticator.TokenEngine[model.AccessToken] {
	engine := ctx.Value(tokenEngineKey{})
	if engine == nil {
		return nil
	}

	return engine.(authenticator.TokenEngine[model.AccessToken])
}
