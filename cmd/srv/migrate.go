package main

import (
	"errors"

	"github.com/nums-lab/backend/migration"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(cctx *cli.Context) error {
	if err := s.connectDatabase(); err != nil {
		return err
	}

	if version := cctx.String("version"); version != "" {
		return migration.Run(s.ctx, version)
	}

	return migration.Migrate(s.ctx)
}

// connectDatabase is used by the commands which cannot do anything without
// a database.
func (s *srv) connectDatabase() error {
	if err := s.loadDatabase(); err != nil {
		return err
	}

	if !s.dbStatus.IsConnected() {
		return errors.New("database is unavailable")
	}

	return nil
}
