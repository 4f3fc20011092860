package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

var server srv

func main() {
	server.ctx = context.Background()
	server.loadApp()

	if err := server.app.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func (s *srv) loadApp() {
	s.app = cli.NewApp()
	s.app.Action = cli.ShowAppHelp
	s.app.Name = "nums"
	s.app.Usage = "Lottery draw records backend"
	s.app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Value: "config.toml",
			Usage: "Path of the TOML configuration file, ignored when missing",
		},
		&cli.StringFlag{
			Name:  "env-file",
			Value: ".env",
			Usage: "Path of the dotenv file, ignored when missing",
		},
	}
	s.app.Before = s.setup
	s.app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Category:    "Api",
			Description: `Used for start service api, it serves every REST endpoint and the metrics.`,
		},
		{
			Action: s.startMigrate,
			Name:   "migrate",
			Usage:  "Migrate the database",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "version",
					Usage: "Run only this migration version, even if it was applied",
				},
			},
			Category:    "Database",
			Description: `Used to apply every pending migration, or a single one with --version.`,
		},
		{
			Action: s.startIngest,
			Name:   "ingest",
			Usage:  "Ingest a draw records export file",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "file",
					Usage:    "Path of the tab separated export",
					Required: true,
				},
			},
			Category:    "Database",
			Description: `Used to upsert draw records from a file without going through the api.`,
		},
		{
			Action: s.startGrantAdmin,
			Name:   "grant-admin",
			Usage:  "Grant the admin capability to an existing user",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "username",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "role",
					Value: "admin",
					Usage: "admin or super_admin",
				},
				&cli.StringSliceFlag{
					Name:  "permissions",
					Usage: "Permissions of an admin role, e.g. game_manage",
				},
			},
			Category:    "Database",
			Description: `Used to bootstrap the first administrators.`,
		},
	}
}
