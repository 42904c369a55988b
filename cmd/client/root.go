package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/mental-detox/internal/adapters/clients"
	"github.com/jsamuelsen/mental-detox/internal/adapters/clients/acl"
	"github.com/jsamuelsen/mental-detox/internal/adapters/http/middleware"
	"github.com/jsamuelsen/mental-detox/internal/adapters/storage/favorites"
	"github.com/jsamuelsen/mental-detox/internal/app"
	"github.com/jsamuelsen/mental-detox/internal/platform/config"
	"github.com/jsamuelsen/mental-detox/internal/platform/logging"
	"github.com/jsamuelsen/mental-detox/internal/tui"
)

// appDir is the per-user directory for favorites and the TUI log file.
const appDir = "mental-detox"

// options holds flag values shared by every command.
type options struct {
	profile   string
	backend   string
	favorites string
	timer     time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mental-detox",
		Short: "Browse quotes, videos and tips for a short mental detox",
		Long: `mental-detox talks to the dataset service and shows one random quote,
video and tip for the issue you pick. Without a subcommand it starts the
full-screen browser.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.profile, "profile", profileFromEnv(), "configuration profile, read from configs/<profile>.yaml")
	flags.StringVar(&opts.backend, "backend", "", "dataset service URL (overrides BACKEND_URL and config)")
	flags.StringVar(&opts.favorites, "favorites", "", "favorites file (default <user config dir>/mental-detox/favorites.json)")

	cmd.Flags().DurationVar(&opts.timer, "timer", 0, "reflection timer length (default from config)")

	cmd.AddCommand(
		newIssuesCmd(opts),
		newShowCmd(opts),
		newHealthCmd(opts),
	)

	return cmd
}

func profileFromEnv() string {
	if profile := os.Getenv("APP_ENVIRONMENT"); profile != "" {
		return profile
	}

	return "local"
}

// session is everything a command needs to talk to the dataset service.
type session struct {
	ctx     context.Context
	cfg     *config.Config
	logger  *slog.Logger
	adapter *acl.DatasetAdapter
}

// newSession loads config, builds the logger and the dataset adapter, and
// tags ctx with a fresh correlation ID. Interactive sessions log only to a
// file because the terminal belongs to the TUI.
func newSession(cmd *cobra.Command, opts *options, interactive bool) (*session, error) {
	cfg, err := config.Load(opts.profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if opts.backend != "" {
		cfg.Client.BaseURL = strings.TrimRight(opts.backend, "/")
	}

	if opts.timer > 0 {
		cfg.Timer.Duration = opts.timer
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := newLogger(cfg, cmd.ErrOrStderr(), interactive)
	logging.SetDefault(logger)

	client, err := clients.New(clients.ConfigFrom(&cfg.Client, acl.DatasetServiceName, logger))
	if err != nil {
		return nil, fmt.Errorf("creating dataset client: %w", err)
	}

	correlationID := uuid.NewString()

	ctx := middleware.ContextWithCorrelationID(cmd.Context(), correlationID)
	ctx = logging.WithCorrelationID(logging.WithContext(ctx, logger), correlationID)

	logger.DebugContext(ctx, "session started",
		slog.String("backend", cfg.Client.BaseURL),
		slog.String("correlation_id", correlationID),
	)

	return &session{
		ctx:     ctx,
		cfg:     cfg,
		logger:  logger,
		adapter: acl.NewDatasetAdapter(client),
	}, nil
}

func newLogger(cfg *config.Config, w io.Writer, interactive bool) *slog.Logger {
	file := logging.FileConfig{
		Enabled:    cfg.Log.File.Enabled,
		Path:       cfg.Log.File.Path,
		MaxSizeMB:  cfg.Log.File.MaxSizeMB,
		MaxBackups: cfg.Log.File.MaxBackups,
		MaxAgeDays: cfg.Log.File.MaxAgeDays,
		Compress:   cfg.Log.File.Compress,
	}

	if interactive && !file.Enabled {
		if dir, err := os.UserConfigDir(); err == nil {
			file.Enabled = true
			file.Path = filepath.Join(dir, appDir, "client.log")
		}
	}

	return logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name + "-client",
		Version: Version,
		File:    file,
		Quiet:   interactive,
	}, w)
}

// browse builds the session service with the favorites file attached.
func (s *session) browse(favoritesPath string) *app.BrowseService {
	store := favorites.New(favorites.Config{
		Path:       resolveFavoritesPath(favoritesPath, s.cfg.Favorites.Path),
		MaxEntries: s.cfg.Favorites.MaxEntries,
		Logger:     s.logger,
	})

	return app.NewBrowseService(app.BrowseServiceConfig{
		Client:       s.adapter,
		Favorites:    store,
		MaxFavorites: s.cfg.Favorites.MaxEntries,
		Logger:       s.logger,
	})
}

// resolveFavoritesPath picks the flag, then config, then the user config
// directory, then the working directory.
func resolveFavoritesPath(flag, configured string) string {
	switch {
	case flag != "":
		return flag
	case configured != "":
		return configured
	}

	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDir, "favorites.json")
	}

	return "favorites.json"
}

func runTUI(cmd *cobra.Command, opts *options) error {
	s, err := newSession(cmd, opts, true)
	if err != nil {
		return err
	}

	err = tui.Run(s.ctx, s.browse(opts.favorites), tui.Options{TimerDuration: s.cfg.Timer.Duration})
	if err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}

	return nil
}
