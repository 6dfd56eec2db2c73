package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rtype/rtypeadmin/internal/config"
	"github.com/rtype/rtypeadmin/internal/database"
	"github.com/rtype/rtypeadmin/internal/database/repository"
	"github.com/rtype/rtypeadmin/internal/tui"
)

type globalFlags struct {
	configPath string
	dbPath     string
}

func newRootCmd() *cobra.Command {
	var flags globalFlags
	root := &cobra.Command{
		Use:   "rtype-admin",
		Short: "Operator console for the R-Type game database",
		Long: `rtype-admin inspects and moderates the R-Type server database:
registered players, banned IP addresses and score records.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd.Context(), flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (env: RTYPE_ADMIN_CONFIG)")
	root.PersistentFlags().StringVar(&flags.dbPath, "db", "", "database file, overrides database.path")

	root.AddCommand(newMigrateCmd(&flags))
	root.AddCommand(newSeedCmd(&flags))
	return root
}

func newMigrateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*flags)
			if err != nil {
				return err
			}
			if err := database.RunMigrations(cfg.Database.Path); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema up to date: %s\n", cfg.Database.Path)
			return nil
		},
	}
}

func newSeedCmd(flags *globalFlags) *cobra.Command {
	var opts database.SeedOptions
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with generated demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*flags)
			if err != nil {
				return err
			}
			db, err := openStore(cmd.Context(), cfg.Database.Path)
			if err != nil {
				return err
			}
			defer db.Close()
			res, err := database.Seed(cmd.Context(), db, opts)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d players, %d scores, %d bans\n", res.Players, res.Scores, res.Bans)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.Players, "players", 20, "number of players")
	cmd.Flags().IntVar(&opts.ScoresPerPlayer, "scores", 3, "scores per player")
	cmd.Flags().IntVar(&opts.Bans, "bans", 5, "number of bans")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 1, "random seed")
	return cmd
}

func runConsole(ctx context.Context, flags globalFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	db, err := openStore(ctx, cfg.Database.Path)
	if err != nil {
		logger.Error("database unavailable", slog.String("path", cfg.Database.Path), slog.String("error", err.Error()))
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	logger.Info("connected", slog.String("path", cfg.Database.Path))

	app := tui.New(ctx, repository.NewStore(db, logger), tui.Options{
		NoticeTTL:   cfg.UI.NoticeTTL,
		AutoRefresh: cfg.UI.AutoRefresh,
		Logger:      logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run console: %w", err)
	}
	return nil
}

func loadConfig(flags globalFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	if flags.dbPath != "" {
		cfg.Database.Path = flags.dbPath
	}
	return cfg, nil
}

// openStore opens the database, checks it answers and applies the schema.
// Any failure here is fatal for the console.
func openStore(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir db dir: %w", err)
		}
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.Ping(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	if err := database.RunMigrationsWithDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func newLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.Level))); err != nil {
		level = slog.LevelInfo
	}
	var w io.Writer = io.Discard
	closeFn := func() {}
	if cfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, closeFn, nil
}
