package service

import (
	"context"
	"time"

	"quiz-board/internal/domain"
	"quiz-board/internal/dto"
	"quiz-board/internal/logger"
	"quiz-board/internal/metrics"

	"go.uber.org/zap"
)

// SubmissionService grades a submission and stores its Result.
type SubmissionService interface {
	Finish(ctx context.Context, userID string, req *dto.FinishQuizRequest) (*dto.FinishQuizResponse, error)
	Submit(ctx context.Context, userID, quizID string, selected []*int) (*dto.FinishQuizResponse, error)
}

type submissionService struct {
	answerKeys  AnswerKeyStore
	results     domain.ResultRepository
	quizzes     domain.QuizRepository
	leaderboard LeaderboardService
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewSubmissionService(
	answerKeys AnswerKeyStore,
	results domain.ResultRepository,
	quizzes domain.QuizRepository,
	leaderboard LeaderboardService,
	m *metrics.Metrics,
) SubmissionService {
	return &submissionService{
		answerKeys:  answerKeys,
		results:     results,
		quizzes:     quizzes,
		leaderboard: leaderboard,
		metrics:     m,
		now:         time.Now,
	}
}

func (s *submissionService) Finish(ctx context.Context, userID string, req *dto.FinishQuizRequest) (*dto.FinishQuizResponse, error) {
	return s.Submit(ctx, userID, req.QuizID, req.SelectedAnswers)
}

// Submit runs grade -> upsert result -> popularity -> leaderboard refresh.
// Once the Result is stored the submission has succeeded; the two aggregate
// updates are best-effort and their failures are only logged and counted.
// A resubmission overwrites the stored Result.
func (s *submissionService) Submit(ctx context.Context, userID, quizID string, selected []*int) (*dto.FinishQuizResponse, error) {
	key, err := s.answerKeys.Get(ctx, quizID)
	if err != nil {
		return nil, err
	}

	outcome := domain.Grade(key, selected)

	stored, err := s.results.Upsert(ctx, &domain.Result{
		UserID:          userID,
		QuizID:          quizID,
		Score:           outcome.Score,
		SelectedAnswers: outcome.SelectedAnswers,
		CorrectAnswers:  outcome.CorrectAnswers,
		CompletedAt:     s.now().UTC(),
	})
	if err != nil {
		return nil, domain.NewStorageError("failed to save result", err)
	}
	s.metrics.SubmissionGraded()

	log := logger.Get().With(zap.String("userID", userID), zap.String("quizID", quizID))
	log.Info("Quiz submission graded",
		zap.Float64("score", outcome.Score),
		zap.Int("correct", outcome.CorrectCount),
		zap.Int("questions", len(key.Questions)))

	// The result is committed; the aggregates must not be lost to a client hang-up.
	bg := context.WithoutCancel(ctx)

	if _, err := s.quizzes.RecordAttempt(bg, quizID, outcome.Score); err != nil {
		s.metrics.SideEffectFailed(metrics.StepPopularity)
		log.Error("Failed to update quiz popularity", zap.Error(err))
	}
	if _, err := s.leaderboard.Refresh(bg, userID); err != nil {
		s.metrics.SideEffectFailed(metrics.StepLeaderboard)
		log.Error("Failed to refresh leaderboard entry", zap.Error(err))
	}

	return &dto.FinishQuizResponse{
		ResultID:        stored.ID,
		QuizID:          quizID,
		Score:           outcome.Score,
		CorrectCount:    outcome.CorrectCount,
		TotalQuestions:  len(key.Questions),
		SelectedAnswers: toSelectedAnswerResponses(outcome.SelectedAnswers),
		CorrectAnswers:  toCorrectAnswerResponses(outcome.CorrectAnswers),
		CompletedAt:     stored.CompletedAt,
	}, nil
}
