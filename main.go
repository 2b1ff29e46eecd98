package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"inkwell/app/routes"
	"inkwell/config"

	"github.com/dgraph-io/badger/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "1.0.0"

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "inkwell",
		Short:         "A server-rendered blog engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "inkwell.yaml", "path to config file")

	rootCmd.AddCommand(serveCmd(), initCmd(), cleanCmd(), backupCmd(), restoreCmd(), versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the blog HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.Logging.Level)
			if err != nil {
				return err
			}
			defer logger.Sync()

			db, err := openDB(cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			router := routes.SetupRoutes(db, logger, "")
			logger.Info("server starting",
				zap.String("addr", cfg.ListenAddr),
				zap.String("db", cfg.DBPath))
			return routes.StartServer(ctx, cfg.ListenAddr, router)
		},
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database directory and verify it opens",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			db, err := openDB(cfg.DBPath)
			if err != nil {
				return err
			}
			fmt.Println("Database initialized at", cfg.DBPath)
			return db.Close()
		},
	}
}

func cleanCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete all posts and comments",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete all data without --yes")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			db, err := openDB(cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.DropAll(); err != nil {
				return fmt.Errorf("failed to clean database: %w", err)
			}
			fmt.Println("Database cleaned")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion of all data")
	return cmd
}

func backupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <file>",
		Short: "Write a full database backup to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			db, err := openDB(cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create backup file: %w", err)
			}
			defer f.Close()

			if _, err := db.Backup(f, 0); err != nil {
				return fmt.Errorf("backup failed: %w", err)
			}
			fmt.Println("Backup written to", args[0])
			return nil
		},
	}
}

func restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "Load a database backup from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			db, err := openDB(cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open backup file: %w", err)
			}
			defer f.Close()

			if err := db.Load(f, 16); err != nil {
				return fmt.Errorf("restore failed: %w", err)
			}
			fmt.Println("Backup restored from", args[0])
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("inkwell version %s\n", version)
		},
	}
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}
	return db, nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
