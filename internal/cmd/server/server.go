// Package server wires configuration and startup for the web server command.
package server

import (
	"context"
	"flag"
	"fmt"
	"log"

	platformcmd "github.com/svyatk/vitae/internal/platform/cmd"
	"github.com/svyatk/vitae/internal/web"
)

// Config holds the server command configuration.
type Config struct {
	HTTPAddr     string `env:"VITAE_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath       string `env:"VITAE_DB_PATH" envDefault:"vitae.db"`
	PostsPerPage int    `env:"VITAE_POSTS_PER_PAGE" envDefault:"10"`
	// RememberKey signs remember-me tokens. Leaving it unset disables the
	// remember-me checkbox backend.
	RememberKey string `env:"VITAE_REMEMBER_KEY"`
}

// ParseConfig reads environment defaults and applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path")
	fs.IntVar(&cfg.PostsPerPage, "posts-per-page", cfg.PostsPerPage, "posts per timeline page")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server with telemetry and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr:     cfg.HTTPAddr,
			DBPath:       cfg.DBPath,
			PostsPerPage: cfg.PostsPerPage,
			RememberKey:  []byte(cfg.RememberKey),
			Logger:       log.Default(),
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
