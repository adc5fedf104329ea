package commands

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dyluth/advent/internal/config"
	"github.com/dyluth/advent/internal/input"
	"github.com/dyluth/advent/internal/logging"
	"github.com/dyluth/advent/internal/printer"
	"github.com/dyluth/advent/internal/session"
)

// environment is everything a command needs that depends on flags,
// advent.yml and the process environment.
type environment struct {
	config     *config.Config
	logger     *zap.Logger
	credential session.Credential
	runID      string
}

// env is populated by setup before any RunE executes.
var env *environment

func setup(cmd *cobra.Command, _ []string) error {
	path := cfgFile
	explicit := cmd.Flags().Changed("config")
	if path == "" {
		path = config.DefaultPath
	}

	cfg, err := config.Resolve(path, explicit, os.LookupEnv)
	if err != nil {
		return printer.ErrorWithContext(
			"invalid configuration",
			err.Error(),
			map[string]string{"Config": path},
			[]string{
				"Fix the reported field in advent.yml",
				"Unset the AOC_* environment variable that overrides it",
			},
		)
	}
	if cmd.Flags().Changed("input-dir") {
		cfg.InputDir = inputDir
	}
	if cmd.Flags().Changed("year") {
		cfg.Year = year
	}
	if err := cfg.Validate(); err != nil {
		return printer.Error("invalid flags", err.Error(), nil)
	}

	logger, err := logging.New(cfg.LogLevel, verbose)
	if err != nil {
		return printer.Error("failed to start logger", err.Error(), nil)
	}
	logger, runID := logging.WithRun(logger)

	credential, err := session.Load(cfg.Session, expandHome(cfg.SessionFile))
	if err != nil {
		return printer.Fail(&input.IOError{Op: "read session", Path: cfg.SessionFile, Err: err},
			"failed to read session file",
			err.Error(),
			nil,
			[]string{"Check the permissions of session_file, or set AOC_SESSION instead"},
		)
	}

	logger.Debug("Configuration resolved",
		zap.Int("year", cfg.Year),
		zap.String("input_dir", cfg.InputDir),
		zap.String("cache", cfg.Cache.Backend),
		zap.Stringer("session", credential))
	if !credential.Present() {
		printer.Warning("No session configured: only cached inputs are available (set AOC_SESSION to download)\n")
	}

	env = &environment{config: cfg, logger: logger, credential: credential, runID: runID}
	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	if env != nil {
		// Syncing stderr fails on some platforms; nothing useful to do about it.
		_ = env.logger.Sync()
	}
}

// provider opens the configured cache and wraps it with the HTTP fetcher.
// The returned func releases the cache connection.
func (e *environment) provider(ctx context.Context) (*input.Provider, func(), error) {
	cfg := e.config
	store, err := input.OpenStore(ctx, input.StoreConfig{
		Backend:        cfg.Cache.Backend,
		Dir:            cfg.InputDir,
		RedisURL:       cfg.Cache.RedisURL,
		Year:           cfg.Year,
		ScopeBySession: cfg.Cache.ScopeBySession,
	}, e.credential)
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		if c, ok := store.(io.Closer); ok {
			if err := c.Close(); err != nil {
				e.logger.Warn("Failed to close input cache", zap.Error(err))
			}
		}
	}

	fetcher, err := input.NewHTTPFetcher(input.FetcherConfig{
		BaseURL:   cfg.HTTP.BaseURL,
		Year:      cfg.Year,
		UserAgent: cfg.HTTP.UserAgent,
		Timeout:   cfg.HTTP.Timeout,
		Retries:   *cfg.HTTP.Retries,
	}, e.credential, e.logger)
	if err != nil {
		release()
		return nil, nil, err
	}

	return input.NewProvider(store, fetcher, e.logger), release, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
