package main

import (
	"github.com/nums-lab/backend/internal/entity"
	"github.com/nums-lab/backend/internal/model"
	"github.com/nums-lab/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

// startGrantAdmin grants a role to an existing account. The operator acts as
// a super admin, so it can create the first super admin.
func (s *srv) startGrantAdmin(cctx *cli.Context) error {
	if err := s.connectDatabase(); err != nil {
		return err
	}

	s.loadRepos()
	s.loadDomains()

	user, err := s.userRepo.GetByUsername(s.ctx, cctx.String("username"))
	if err != nil {
		return err
	}

	ctx := xcontext.WithAdminRole(s.ctx, string(entity.AdminRoleSuperAdmin))
	resp, err := s.adminDomain.CreateAdmin(ctx, &model.CreateAdminRequest{
		UserID:      user.ID,
		Role:        cctx.String("role"),
		Permissions: cctx.StringSlice("permissions"),
	})
	if err != nil {
		return err
	}

	s.logger.Infof("Granted %s to %s", resp.Admin.Role, user.Username)
	return nil
}
