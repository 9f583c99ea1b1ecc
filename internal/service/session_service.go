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
	"quiz-board/internal/util"

	"go.uber.org/zap"
)

// SessionService drives a quiz one question at a time. Sessions live only in
// the cache; the final answer runs the same pipeline as a direct finish.
type SessionService interface {
	Start(ctx context.Context, userID, quizID string) (*dto.SessionResponse, error)
	Answer(ctx context.Context, userID, sessionID string, selected *int) (*dto.SessionResponse, error)
	Get(ctx context.Context, userID, sessionID string) (*dto.SessionResponse, error)
}

type sessionService struct {
	answerKeys  AnswerKeyStore
	submissions SubmissionService
	cache       domain.Cache
	ttl         time.Duration
	now         func() time.Time
}

func NewSessionService(answerKeys AnswerKeyStore, submissions SubmissionService, cache domain.Cache, ttl time.Duration) SessionService {
	return &sessionService{
		answerKeys:  answerKeys,
		submissions: submissions,
		cache:       cache,
		ttl:         ttl,
		now:         time.Now,
	}
}

func (s *sessionService) Start(ctx context.Context, userID, quizID string) (*dto.SessionResponse, error) {
	if s.cache == nil {
		return nil, domain.NewInternalError("session store is not configured", nil)
	}
	key, err := s.answerKeys.Get(ctx, quizID)
	if err != nil {
		return nil, err
	}

	session := domain.NewQuizSession(util.NewULID(), userID, quizID, len(key.Questions))
	if err := session.Start(s.now().UTC()); err != nil {
		return nil, err
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	logger.Get().Info("Quiz session started",
		zap.String("sessionID", session.ID),
		zap.String("userID", userID),
		zap.String("quizID", quizID))
	return toSessionResponse(session), nil
}

// Answer records the current question's selection. On the last question the
// session is graded and closed.
func (s *sessionService) Answer(ctx context.Context, userID, sessionID string, selected *int) (*dto.SessionResponse, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	last, err := session.Answer(selected)
	if err != nil {
		return nil, err
	}
	if !last {
		if err := s.save(ctx, session); err != nil {
			return nil, err
		}
		return toSessionResponse(session), nil
	}

	result, err := s.submissions.Submit(ctx, userID, session.QuizID, session.Answers)
	if err != nil {
		return nil, err
	}
	if err := session.Submit(result.Score, s.now().UTC()); err != nil {
		return nil, err
	}
	if err := s.save(ctx, session); err != nil {
		logger.Get().Warn("Failed to persist submitted session", zap.String("sessionID", sessionID), zap.Error(err))
	}

	resp := toSessionResponse(session)
	resp.Result = result
	return resp, nil
}

func (s *sessionService) Get(ctx context.Context, userID, sessionID string) (*dto.SessionResponse, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// load hides other users' sessions behind the same not-found error.
func (s *sessionService) load(ctx context.Context, userID, sessionID string) (*domain.QuizSession, error) {
	if s.cache == nil {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	raw, err := s.cache.Get(ctx, cache.SessionKey(sessionID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewSessionNotFoundError(sessionID)
		}
		return nil, domain.NewStorageError("failed to load session", err)
	}

	var session domain.QuizSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, domain.NewInternalError("stored session is malformed", err)
	}
	if session.UserID != userID {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	return &session, nil
}

func (s *sessionService) save(ctx context.Context, session *domain.QuizSession) error {
	b, err := json.Marshal(session)
	if err != nil {
		return domain.NewInternalError("failed to encode session", err)
	}
	if err := s.cache.Set(ctx, cache.SessionKey(session.ID), string(b), s.ttl); err != nil {
		return domain.NewStorageError("failed to save session", err)
	}
	return nil
}
