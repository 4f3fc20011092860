package main

import (
	"fmt"
	"os"

	"github.com/nums-lab/backend/internal/model"
	"github.com/urfave/cli/v2"
)

// startIngest runs the upload pipeline on a local export file.
func (s *srv) startIngest(cctx *cli.Context) error {
	data, err := os.ReadFile(cctx.String("file"))
	if err != nil {
		return err
	}

	if err := s.connectDatabase(); err != nil {
		return err
	}

	s.loadRepos()
	s.loadDomains()

	resp, err := s.gameDomain.Upload(s.ctx, &model.UploadGamesRequest{Data: string(data)})
	if err != nil {
		return err
	}

	for _, e := range resp.Errors {
		s.logger.Warnf("Round %d: %s", e.Round, e.Error)
	}

	if resp.ErrorCount > 0 {
		return fmt.Errorf("%d of %d records failed", resp.ErrorCount, resp.Total)
	}

	return nil
}
