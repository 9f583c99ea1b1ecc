package main

import (
	"fmt"
	"os"
	"time"

	"quiz-board/internal/config"
	"quiz-board/internal/database"
	"quiz-board/internal/logger"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply the embedded Oracle schema migrations",
		SilenceUsage: true,
	}
	cmd.AddCommand(newUpCmd(), newStatusCmd())
	return cmd
}

func newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect()
			if err != nil {
				return err
			}
			defer db.Close()
			defer logger.Sync()

			ran, err := database.NewMigrator(db, database.Migrations()).Up(cmd.Context())
			if err != nil {
				return err
			}
			if len(ran) == 0 {
				logger.Get().Info("Schema is up to date")
				return nil
			}
			logger.Get().Info("Migrations applied", zap.Strings("versions", ran))
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List migrations and when they were applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect()
			if err != nil {
				return err
			}
			defer db.Close()

			statuses, err := database.NewMigrator(db, database.Migrations()).Status(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, st := range statuses {
				applied := "pending"
				if st.AppliedAt != nil {
					applied = st.AppliedAt.Format(time.RFC3339)
				}
				fmt.Fprintf(out, "%-40s %s\n", st.Version, applied)
			}
			return nil
		},
	}
}

func connect() (*sqlx.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return database.NewSQLXOracleDB(cfg.DB, cfg.GetDSN())
}
