// Command repair recomputes leaderboard totals from the stored Results and can
// rebase quiz popularity on them. Use it after a best-effort aggregate update failed.
package main

import (
	"fmt"
	"os"

	"quiz-board/internal/adapter"
	"quiz-board/internal/cache"
	"quiz-board/internal/config"
	"quiz-board/internal/database"
	"quiz-board/internal/domain"
	"quiz-board/internal/logger"
	"quiz-board/internal/repository"
	"quiz-board/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var concurrency int
	cmd := &cobra.Command{
		Use:          "repair",
		Short:        "Recompute derived aggregates from stored results",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().IntVar(&concurrency, "concurrency", 4, "recomputes in flight at once")
	cmd.AddCommand(newLeaderboardCmd(&concurrency), newResetPopularityCmd(&concurrency))
	return cmd
}

func newLeaderboardCmd(concurrency *int) *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Re-sum leaderboard totals for one user or every user with results",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := bootstrap(*concurrency)
			if err != nil {
				return err
			}
			defer env.close()

			n, err := env.repair.RepairLeaderboard(cmd.Context(), userID)
			fmt.Fprintf(cmd.OutOrStdout(), "repaired %d leaderboard entries\n", n)
			return err
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "only this user id")
	return cmd
}

func newResetPopularityCmd(concurrency *int) *cobra.Command {
	var quizID string
	cmd := &cobra.Command{
		Use:   "reset-popularity",
		Short: "Rebase quiz popularity on the count and mean of stored results",
		Long: "Rebase quiz popularity on the count and mean of stored results.\n\n" +
			"The live counter includes resubmissions, which overwrite their Result,\n" +
			"so attempts drops to the number of distinct takers.",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := bootstrap(*concurrency)
			if err != nil {
				return err
			}
			defer env.close()

			n, err := env.repair.ResetPopularity(cmd.Context(), quizID)
			fmt.Fprintf(cmd.OutOrStdout(), "reset popularity of %d quizzes\n", n)
			return err
		},
	}
	cmd.Flags().StringVar(&quizID, "quiz", "", "only this quiz id")
	return cmd
}

type repairEnv struct {
	repair service.RepairService
	close  func()
}

func bootstrap(concurrency int) (*repairEnv, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.NewSQLXOracleDB(cfg.DB, cfg.GetDSN())
	if err != nil {
		return nil, err
	}
	closers := []func(){func() { db.Close() }}

	// Refresh invalidates cached leaderboards when Redis is reachable.
	var cacheAdapter domain.Cache
	if client, err := cache.NewRedisClient(cfg.Redis); err != nil {
		logger.Get().Warn("Redis unavailable, cached leaderboards expire on their own", zap.Error(err))
	} else {
		cacheAdapter = adapter.NewRedisCacheAdapter(client)
		closers = append(closers, func() { client.Close() })
	}

	quizzes := repository.NewQuizDatabaseAdapter(db)
	results := repository.NewSQLXResultRepository(db)
	board := service.NewLeaderboardService(
		repository.NewSQLXLeaderboardRepository(db), results, cacheAdapter,
		cfg.Cache.LeaderboardTTL, cfg.Leaderboard.WeekStart, nil,
	)

	return &repairEnv{
		repair: service.NewRepairService(quizzes, results, board, concurrency, logger.Get()),
		close: func() {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
			_ = logger.Sync()
		},
	}, nil
}

