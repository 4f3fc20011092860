package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/nums-lab/backend/config"
	"github.com/nums-lab/backend/internal/domain/cron"
	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/internal/middleware"
	"github.com/nums-lab/backend/migration"
	"github.com/nums-lab/backend/pkg/prometheus"
	"github.com/nums-lab/backend/pkg/router"

	"github.com/urfave/cli/v2"
)

const shutdownTimeout = 10 * time.Second

func (s *srv) startApi(*cli.Context) error {
	if err := s.loadDatabase(); err != nil {
		return err
	}

	// The schema follows the entities in development.
	if s.configs.Env == config.EnvDevelopment && s.dbStatus.IsConnected() {
		if err := migration.Migrate(s.ctx); err != nil {
			s.logger.Errorf("Cannot migrate the database: %v", err)
		}
	}

	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	ctx, stop := signal.NotifyContext(s.ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cronJobManager := cron.NewCronJobManager()
	cronJobManager.Register(cron.NewDBHealthCronJob(
		s.db, s.dbStatus, s.configs.Database.Driver, s.configs.Monitor.DBCheckInterval))
	cronJobManager.Register(cron.NewGameFreshnessCronJob(
		s.gameRepo, s.configs.Monitor.FreshnessCheckInterval))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		cronJobManager.Start(s.ctx)
	}()

	cors := middleware.AllowCors(s.configs.ApiServer.AllowedOrigins, s.configs.Env == config.EnvDevelopment)
	httpSrv := &http.Server{
		Addr:              s.configs.ApiServer.Address(),
		Handler:           cors(s.router.Handler()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Infof("Starting server on port: %s", s.configs.ApiServer.Port)
		serveErr <- httpSrv.ListenAndServe()
	}()

	var err error
	select {
	case <-ctx.Done():
		s.logger.Infof("Received shutdown signal")
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
	}

	cronJobManager.Cancel(s.ctx)
	wg.Wait()

	shutdownCtx, cancel := context.WithTimeout(s.ctx, shutdownTimeout)
	defer cancel()
	if shutdownErr := httpSrv.Shutdown(shutdownCtx); shutdownErr != nil && err == nil {
		err = shutdownErr
	}

	if sqlDB, dbErr := s.db.DB(); dbErr == nil {
		sqlDB.Close()
	}

	s.logger.Infof("Server stopped")
	return err
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.Before(middleware.WithStartTime())
	s.router.AddCloser(middleware.Logger(), middleware.Prometheus())

	s.router.Handle("GET /metrics", prometheus.NewHandler())
	router.GET(s.router, "/api/health", s.healthDomain.Check)

	requireDB := middleware.RequireDB(s.dbStatus)
	authVerifier := middleware.NewAuthVerifier().WithAccessToken()

	// Public APIs.
	publicRouter := s.router.Branch()
	publicRouter.Before(requireDB)
	{
		router.POST(publicRouter, "/api/users/register", s.authDomain.Register)
		router.POST(publicRouter, "/api/users/login", s.authDomain.Login)

		router.GET(publicRouter, "/api/games", s.gameDomain.GetList)
		router.GET(publicRouter, "/api/games/recent", s.gameDomain.GetRecent)
		router.GET(publicRouter, "/api/games/{round}", s.gameDomain.GetByRound)
	}

	// The theme list adds the active theme of the caller when a token is given.
	optionalAuthRouter := s.router.Branch()
	optionalAuthRouter.Before(requireDB, authVerifier.Optional().Middleware())
	{
		router.GET(optionalAuthRouter, "/api/themes", s.themeDomain.GetList)
	}

	// These following APIs need authentication with only Access Token.
	authRouter := s.router.Branch()
	authRouter.Before(requireDB, authVerifier.Middleware())
	{
		router.GET(authRouter, "/api/users", s.userDomain.GetUsers)
		router.GET(authRouter, "/api/users/me", s.userDomain.GetMe)
		router.PUT(authRouter, "/api/users/me", s.userDomain.UpdateMe)
		router.DELETE(authRouter, "/api/users/me", s.userDomain.DeleteMe)
		router.GET(authRouter, "/api/users/me/themes", s.userDomain.GetMyThemes)
		router.PUT(authRouter, "/api/users/me/themes", s.userDomain.UpdateMyTheme)
		router.GET(authRouter, "/api/users/{user_id}", s.userDomain.GetUser)

		router.POST(authRouter, "/api/user-profiles", s.userProfileDomain.Create)
		router.PUT(authRouter, "/api/user-profiles/me", s.userProfileDomain.Update)

		router.GET(authRouter, "/api/user-configs/{user_id}", s.userConfigDomain.Get)
		router.POST(authRouter, "/api/user-configs/{user_id}", s.userConfigDomain.Create)
		router.PUT(authRouter, "/api/user-configs/{user_id}", s.userConfigDomain.Update)
		router.DELETE(authRouter, "/api/user-configs/{user_id}", s.userConfigDomain.Delete)
	}

	onlyAdmin := middleware.NewOnlyAdmin(s.adminRepo)

	gameAdminRouter := s.adminBranch(authRouter, onlyAdmin, entity.PermissionGameManage)
	{
		router.POST(gameAdminRouter, "/api/games/upload", s.gameDomain.Upload)
		router.GET(gameAdminRouter, "/api/admin/games/recent-status", s.gameDomain.GetRecentStatus)
	}

	userAdminRouter := s.adminBranch(authRouter, onlyAdmin, entity.PermissionUserManage)
	{
		router.GET(userAdminRouter, "/api/admin/users", s.adminDomain.GetUsers)
		router.GET(userAdminRouter, "/api/admin/users/{user_id}", s.adminDomain.GetUser)
		router.PUT(userAdminRouter, "/api/admin/users/{user_id}", s.adminDomain.UpdateUser)
		router.DELETE(userAdminRouter, "/api/admin/users/{user_id}", s.adminDomain.DeleteUser)
	}

	themeAdminRouter := s.adminBranch(authRouter, onlyAdmin, entity.PermissionThemeManage)
	{
		router.GET(themeAdminRouter, "/api/admin/themes", s.themeDomain.GetList)
		router.POST(themeAdminRouter, "/api/admin/themes", s.themeDomain.Create)
		router.GET(themeAdminRouter, "/api/admin/themes/{theme_id}", s.themeDomain.Get)
		router.PUT(themeAdminRouter, "/api/admin/themes/{theme_id}", s.themeDomain.Update)
		router.DELETE(themeAdminRouter, "/api/admin/themes/{theme_id}", s.themeDomain.Delete)
	}

	grantAdminRouter := s.adminBranch(authRouter, onlyAdmin, entity.PermissionAdminManage)
	{
		router.GET(grantAdminRouter, "/api/admin/admins", s.adminDomain.GetAdmins)
		router.POST(grantAdminRouter, "/api/admin/admins", s.adminDomain.CreateAdmin)
		router.DELETE(grantAdminRouter, "/api/admin/admins/{user_id}", s.adminDomain.DeleteAdmin)
	}
}

func (s *srv) adminBranch(
	parent *router.Router, onlyAdmin *middleware.OnlyAdmin, permission entity.Permission,
) *router.Router {
	r := parent.Branch()
	r.Before(onlyAdmin.WithPermissions(permission).Middleware())
	return r
}
