package service

import (
	"context"

	"quiz-board/internal/domain"
	"quiz-board/internal/dto"
)

// ResultService lists stored results.
type ResultService interface {
	ListByUser(ctx context.Context, userID string) ([]dto.ResultResponse, error)
	ListByQuiz(ctx context.Context, quizID string) ([]dto.ResultResponse, error)
}

type resultService struct {
	results domain.ResultRepository
}

func NewResultService(results domain.ResultRepository) ResultService {
	return &resultService{results: results}
}

// ListByUser returns newest first, each with its quiz and category.
func (s *resultService) ListByUser(ctx context.Context, userID string) ([]dto.ResultResponse, error) {
	results, err := s.results.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewStorageError("failed to load results", err)
	}
	return toResultResponses(results), nil
}

func (s *resultService) ListByQuiz(ctx context.Context, quizID string) ([]dto.ResultResponse, error) {
	results, err := s.results.ListByQuiz(ctx, quizID)
	if err != nil {
		return nil, domain.NewStorageError("failed to load results", err)
	}
	return toResultResponses(results), nil
}

func toResultResponses(results []*domain.Result) []dto.ResultResponse {
	out := make([]dto.ResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, toResultResponse(r))
	}
	return out
}
