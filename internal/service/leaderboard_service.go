package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quiz-board/internal/cache"
	"quiz-board/internal/domain"
	"quiz-board/internal/dto"
	"quiz-board/internal/logger"
	"quiz-board/internal/metrics"
	"quiz-board/internal/util"

	"go.uber.org/zap"
)

const leaderboardCacheName = "leaderboard"

// LeaderboardService maintains and serves the per-user score totals.
type LeaderboardService interface {
	// Refresh recomputes the user's total from every stored result.
	Refresh(ctx context.Context, userID string) (*domain.LeaderboardEntry, error)
	GetAll(ctx context.Context) ([]dto.LeaderboardEntryResponse, error)
	GetWeekly(ctx context.Context) ([]dto.LeaderboardEntryResponse, error)
	GetByUser(ctx context.Context, userID string) (*dto.LeaderboardEntryResponse, error)
}

type leaderboardService struct {
	entries   domain.LeaderboardRepository
	results   domain.ResultRepository
	cache     domain.Cache
	ttl       time.Duration
	weekStart time.Weekday
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewLeaderboardService(
	entries domain.LeaderboardRepository,
	results domain.ResultRepository,
	cache domain.Cache,
	ttl time.Duration,
	weekStart time.Weekday,
	m *metrics.Metrics,
) LeaderboardService {
	return &leaderboardService{
		entries:   entries,
		results:   results,
		cache:     cache,
		ttl:       ttl,
		weekStart: weekStart,
		metrics:   m,
		now:       time.Now,
	}
}

// Refresh is idempotent: it never adds a delta, it re-sums. Concurrent
// refreshes for one user converge on the last write.
func (s *leaderboardService) Refresh(ctx context.Context, userID string) (*domain.LeaderboardEntry, error) {
	scores, err := s.results.ScoresByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewStorageError("failed to load user scores", err)
	}
	total := domain.TotalPoints(scores)

	entry, err := s.entries.Upsert(ctx, userID, total)
	if err != nil {
		return nil, domain.NewStorageError("failed to update leaderboard entry", err)
	}

	s.invalidate(ctx)
	logger.Get().Debug("Leaderboard entry refreshed",
		zap.String("userID", userID),
		zap.Int("results", len(scores)),
		zap.Float64("totalPoints", total))
	return entry, nil
}

func (s *leaderboardService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, cache.LeaderboardVersionKey(), util.NewULID(), 0); err != nil {
		logger.Get().Warn("Failed to bump leaderboard cache version", zap.Error(err))
	}
	start, _ := domain.WeekWindow(s.now().UTC(), s.weekStart)
	if err := s.cache.Delete(ctx, cache.LeaderboardAllKey(), cache.LeaderboardWeeklyKey(start)); err != nil {
		logger.Get().Warn("Failed to invalidate leaderboard cache", zap.Error(err))
	}
}

func (s *leaderboardService) GetAll(ctx context.Context) ([]dto.LeaderboardEntryResponse, error) {
	return s.cached(ctx, cache.LeaderboardAllKey(), func() ([]dto.LeaderboardEntryResponse, error) {
		entries, err := s.entries.List(ctx)
		if err != nil {
			return nil, domain.NewStorageError("failed to load leaderboard", err)
		}
		return toLeaderboardResponses(domain.RankEntries(entries), true), nil
	})
}

// GetWeekly sums results completed in the current calendar week.
func (s *leaderboardService) GetWeekly(ctx context.Context) ([]dto.LeaderboardEntryResponse, error) {
	start, end := domain.WeekWindow(s.now().UTC(), s.weekStart)
	return s.cached(ctx, cache.LeaderboardWeeklyKey(start), func() ([]dto.LeaderboardEntryResponse, error) {
		totals, err := s.results.TotalsBetween(ctx, start, end)
		if err != nil {
			return nil, domain.NewStorageError("failed to load weekly leaderboard", err)
		}
		return toLeaderboardResponses(domain.RankEntries(totals), false), nil
	})
}

func (s *leaderboardService) GetByUser(ctx context.Context, userID string) (*dto.LeaderboardEntryResponse, error) {
	entry, err := s.entries.GetByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewStorageError("failed to load leaderboard entry", err)
	}
	if entry == nil {
		return nil, domain.NewLeaderboardEntryNotFoundError(userID)
	}
	return &dto.LeaderboardEntryResponse{
		UserID:      toUserProfileResponse(entry.UserID, entry.User),
		TotalPoints: entry.TotalPoints,
	}, nil
}

// cached serves key from the cache, or runs load and stores its JSON with the
// configured TTL. Cache failures degrade to load. A load that overlaps an
// invalidation is returned but not kept: the version is checked before the
// write, and a write that still lost the race is deleted again.
func (s *leaderboardService) cached(ctx context.Context, key string, load func() ([]dto.LeaderboardEntryResponse, error)) ([]dto.LeaderboardEntryResponse, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			var rows []dto.LeaderboardEntryResponse
			if jsonErr := json.Unmarshal([]byte(raw), &rows); jsonErr == nil {
				s.metrics.CacheHit(leaderboardCacheName)
				return rows, nil
			}
			logger.Get().Warn("Discarding malformed cached leaderboard", zap.String("key", key))
		case !errors.Is(err, domain.ErrCacheMiss):
			logger.Get().Warn("Leaderboard cache read failed", zap.String("key", key), zap.Error(err))
		}
	}
	s.metrics.CacheMiss(leaderboardCacheName)

	var version string
	if s.cache != nil {
		version = s.version(ctx)
	}

	rows, err := load()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.store(ctx, key, version, rows)
	}
	return rows, nil
}

func (s *leaderboardService) store(ctx context.Context, key, version string, rows []dto.LeaderboardEntryResponse) {
	if s.version(ctx) != version {
		return
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(b), s.ttl); err != nil {
		logger.Get().Warn("Leaderboard cache write failed", zap.String("key", key), zap.Error(err))
		return
	}
	if s.version(ctx) != version {
		if err := s.cache.Delete(ctx, key); err != nil {
			logger.Get().Warn("Failed to drop stale leaderboard view", zap.String("key", key), zap.Error(err))
		}
	}
}

// version is "" until the first invalidation or when the cache is unreadable.
func (s *leaderboardService) version(ctx context.Context) string {
	v, err := s.cache.Get(ctx, cache.LeaderboardVersionKey())
	if err != nil {
		return ""
	}
	return v
}
