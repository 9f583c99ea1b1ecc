package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"quiz-board/internal/cache"
	"quiz-board/internal/domain"
	"quiz-board/internal/logger"
	"quiz-board/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	answerKeyCacheName  = "answer_key"
	answerKeyCountField = "count"

	answerKeyLoadTimeout = 5 * time.Second
)

// AnswerKeyStore is the grading view over stored quizzes.
type AnswerKeyStore interface {
	// Get returns the quiz's answer key or a QuizNotFound error.
	Get(ctx context.Context, quizID string) (*domain.AnswerKey, error)
}

// answerKeyStore caches keys as Redis hashes: one field per question position
// plus a "count" field, so quizzes without questions are cacheable too.
// Questions are immutable after creation, hence no invalidation path.
type answerKeyStore struct {
	repo    domain.QuizRepository
	cache   domain.Cache
	ttl     time.Duration
	metrics *metrics.Metrics
	group   singleflight.Group
}

// NewAnswerKeyStore creates the store. cache may be nil, in which case every
// lookup goes to the repository.
func NewAnswerKeyStore(repo domain.QuizRepository, cache domain.Cache, ttl time.Duration, m *metrics.Metrics) AnswerKeyStore {
	return &answerKeyStore{repo: repo, cache: cache, ttl: ttl, metrics: m}
}

func (s *answerKeyStore) Get(ctx context.Context, quizID string) (*domain.AnswerKey, error) {
	if key, ok := s.fromCache(ctx, quizID); ok {
		s.metrics.CacheHit(answerKeyCacheName)
		return key, nil
	}
	s.metrics.CacheMiss(answerKeyCacheName)

	// The shared load must not inherit one caller's cancellation; each caller
	// stops waiting on its own ctx instead.
	ch := s.group.DoChan(quizID, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), answerKeyLoadTimeout)
		defer cancel()

		key, err := s.repo.GetAnswerKey(loadCtx, quizID)
		if err != nil {
			return nil, domain.NewStorageError("failed to load answer key", err)
		}
		if key == nil {
			return nil, domain.NewQuizNotFoundError(quizID)
		}
		s.toCache(loadCtx, key)
		return key, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	if res.Shared {
		logger.Get().Debug("Answer key load shared", zap.String("quizID", quizID))
	}
	return res.Val.(*domain.AnswerKey), nil
}

func (s *answerKeyStore) fromCache(ctx context.Context, quizID string) (*domain.AnswerKey, bool) {
	if s.cache == nil {
		return nil, false
	}
	fields, err := s.cache.HGetAll(ctx, cache.AnswerKeyKey(quizID))
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Answer key cache read failed", zap.String("quizID", quizID), zap.Error(err))
		}
		return nil, false
	}

	key, err := decodeAnswerKey(quizID, fields)
	if err != nil {
		logger.Get().Warn("Discarding malformed cached answer key", zap.String("quizID", quizID), zap.Error(err))
		return nil, false
	}
	return key, true
}

func (s *answerKeyStore) toCache(ctx context.Context, key *domain.AnswerKey) {
	if s.cache == nil {
		return
	}
	fields, err := encodeAnswerKey(key)
	if err != nil {
		logger.Get().Warn("Failed to encode answer key", zap.String("quizID", key.QuizID), zap.Error(err))
		return
	}
	if err := s.cache.HSetWithTTL(ctx, cache.AnswerKeyKey(key.QuizID), fields, s.ttl); err != nil {
		logger.Get().Warn("Answer key cache write failed", zap.String("quizID", key.QuizID), zap.Error(err))
	}
}

func encodeAnswerKey(key *domain.AnswerKey) (map[string]string, error) {
	fields := make(map[string]string, len(key.Questions)+1)
	fields[answerKeyCountField] = strconv.Itoa(len(key.Questions))
	for i, item := range key.Questions {
		b, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		fields[strconv.Itoa(i)] = string(b)
	}
	return fields, nil
}

func decodeAnswerKey(quizID string, fields map[string]string) (*domain.AnswerKey, error) {
	n, err := strconv.Atoi(fields[answerKeyCountField])
	if err != nil || n < 0 {
		return nil, errors.New("missing or invalid count field")
	}
	key := &domain.AnswerKey{QuizID: quizID, Questions: make([]domain.AnswerKeyItem, n)}
	for i := 0; i < n; i++ {
		raw, ok := fields[strconv.Itoa(i)]
		if !ok {
			return nil, errors.New("missing question field " + strconv.Itoa(i))
		}
		if err := json.Unmarshal([]byte(raw), &key.Questions[i]); err != nil {
			return nil, err
		}
	}
	return key, nil
}
