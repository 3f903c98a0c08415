package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/prepgenius/prepgenius/internal/api"
	"github.com/prepgenius/prepgenius/internal/config"
	"github.com/prepgenius/prepgenius/internal/logging"
	"github.com/prepgenius/prepgenius/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "prepgenius",
	Short: "AI study companion for the terminal",
	Long:  "PrepGenius turns study material into notes, quizzes and question banks, answers questions and plans study time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default $XDG_CONFIG_HOME/prepgenius/config.yaml)")
	rootCmd.PersistentFlags().String("server", "", "Backend base URL (overrides PREPGENIUS_SERVER_BASE_URL)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPGENIUS_STORE_PATH)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// env bundles what every command needs.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	closer io.Closer
}

func (e *env) Close() error {
	return e.closer.Close()
}

// loadEnv resolves the configuration (flags, environment, file, defaults)
// and opens the log file.
func loadEnv(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	server, _ := cmd.Flags().GetString("server")
	db, _ := cmd.Flags().GetString("db")

	cfg, err := config.Load(path, config.Overrides{BaseURL: server, DBPath: db})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	logger.Debug("Config loaded", "server", cfg.Server.BaseURL, "db", cfg.Store.Path)
	return &env{cfg: cfg, logger: logger, closer: closer}, nil
}

// newClient builds the API client for the configured backend.
func (e *env) newClient() *api.Client {
	return api.New(e.cfg.Server.BaseURL,
		api.WithLogger(e.logger),
		api.WithUserAgent("prepgenius/"+version),
	)
}

// openStore opens the local database, creating its directory first.
func (e *env) openStore() (*store.Store, error) {
	if err := store.EnsureDir(e.cfg.Store.Path); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	st, err := store.Open(e.cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
