package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"quiz-board/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RepairService recomputes the derived aggregates from stored Results. It backs
// cmd/repair and is safe to run while the API is serving.
type RepairService interface {
	// RepairLeaderboard refreshes userID, or every user with a Result when userID is empty.
	RepairLeaderboard(ctx context.Context, userID string) (int, error)
	// ResetPopularity rebases quizID, or every quiz when quizID is empty, on
	// {count(results), avg(score)}. The live counter also counts resubmissions,
	// so on a healthy quiz this lowers attempts to the number of distinct takers.
	ResetPopularity(ctx context.Context, quizID string) (int, error)
}

type repairService struct {
	quizzes     domain.QuizRepository
	results     domain.ResultRepository
	leaderboard LeaderboardService
	concurrency int
	logger      *zap.Logger
}

func NewRepairService(
	quizzes domain.QuizRepository,
	results domain.ResultRepository,
	leaderboard LeaderboardService,
	concurrency int,
	logger *zap.Logger,
) RepairService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &repairService{
		quizzes:     quizzes,
		results:     results,
		leaderboard: leaderboard,
		concurrency: concurrency,
		logger:      logger,
	}
}

func (s *repairService) RepairLeaderboard(ctx context.Context, userID string) (int, error) {
	userIDs := []string{userID}
	if userID == "" {
		ids, err := s.results.UserIDs(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to list users with results: %w", err)
		}
		userIDs = ids
	}

	s.logger.Info("Starting leaderboard repair", zap.Int("users", len(userIDs)), zap.Time("start_time", time.Now()))
	done, err := s.fanOut(ctx, userIDs, func(ctx context.Context, id string) error {
		entry, err := s.leaderboard.Refresh(ctx, id)
		if err != nil {
			return fmt.Errorf("user %s: %w", id, err)
		}
		s.logger.Debug("Leaderboard entry repaired", zap.String("userID", id), zap.Float64("totalPoints", entry.TotalPoints))
		return nil
	})
	if err != nil {
		s.logger.Error("Leaderboard repair aborted", zap.Int("repaired", done), zap.Error(err))
		return done, err
	}
	s.logger.Info("Leaderboard repair finished", zap.Int("repaired", done))
	return done, nil
}

func (s *repairService) ResetPopularity(ctx context.Context, quizID string) (int, error) {
	quizIDs := []string{quizID}
	if quizID == "" {
		ids, err := s.quizzes.ListIDs(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to list quizzes: %w", err)
		}
		quizIDs = ids
	}

	s.logger.Info("Starting popularity reset", zap.Int("quizzes", len(quizIDs)), zap.Time("start_time", time.Now()))
	done, err := s.fanOut(ctx, quizIDs, func(ctx context.Context, id string) error {
		stats, err := s.results.StatsByQuiz(ctx, id)
		if err != nil {
			return fmt.Errorf("quiz %s: %w", id, err)
		}
		p := domain.Popularity{Attempts: stats.Attempts, AverageScore: stats.AverageScore}
		if err := s.quizzes.SetPopularity(ctx, id, p); err != nil {
			return fmt.Errorf("quiz %s: %w", id, err)
		}
		s.logger.Debug("Popularity reset", zap.String("quizID", id), zap.Int("attempts", p.Attempts))
		return nil
	})
	if err != nil {
		s.logger.Error("Popularity reset aborted", zap.Int("repaired", done), zap.Error(err))
		return done, err
	}
	s.logger.Info("Popularity reset finished", zap.Int("repaired", done))
	return done, nil
}

// fanOut runs fn for every id with at most s.concurrency in flight and stops
// scheduling after the first failure.
func (s *repairService) fanOut(ctx context.Context, ids []string, fn func(context.Context, string) error) (int, error) {
	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, id := range ids {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := fn(gctx, id); err != nil {
				return err
			}
			done.Add(1)
			return nil
		})
	}
	err := g.Wait()
	return int(done.Load()), err
}
