package service

import (
	"context"
	"time"

	"quiz-board/internal/domain"
	"quiz-board/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockQuizRepository ---
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) Create(ctx context.Context, quiz *domain.Quiz) error {
	return m.Called(ctx, quiz).Error(0)
}

func (m *MockQuizRepository) GetByID(ctx context.Context, id string) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) GetBySlug(ctx context.Context, slug string) (*domain.Quiz, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuizRepository) List(ctx context.Context) ([]*domain.Quiz, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) ListByAuthor(ctx context.Context, authorID string) ([]*domain.Quiz, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) ListByCategory(ctx context.Context, categoryID string) ([]*domain.Quiz, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) ListIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockQuizRepository) GetAnswerKey(ctx context.Context, quizID string) (*domain.AnswerKey, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnswerKey), args.Error(1)
}

func (m *MockQuizRepository) RecordAttempt(ctx context.Context, quizID string, score float64) (*domain.Popularity, error) {
	args := m.Called(ctx, quizID, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Popularity), args.Error(1)
}

func (m *MockQuizRepository) SetPopularity(ctx context.Context, quizID string, p domain.Popularity) error {
	return m.Called(ctx, quizID, p).Error(0)
}

// --- MockResultRepository ---
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) Upsert(ctx context.Context, result *domain.Result) (*domain.Result, error) {
	args := m.Called(ctx, result)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Result), args.Error(1)
}

func (m *MockResultRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Result, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Result), args.Error(1)
}

func (m *MockResultRepository) ListByQuiz(ctx context.Context, quizID string) ([]*domain.Result, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Result), args.Error(1)
}

func (m *MockResultRepository) ScoresByUser(ctx context.Context, userID string) ([]float64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (m *MockResultRepository) StatsByQuiz(ctx context.Context, quizID string) (*domain.QuizStatistics, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizStatistics), args.Error(1)
}

func (m *MockResultRepository) TotalsBetween(ctx context.Context, from, to time.Time) ([]*domain.LeaderboardEntry, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LeaderboardEntry), args.Error(1)
}

func (m *MockResultRepository) UserIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- MockLeaderboardRepository ---
type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) Upsert(ctx context.Context, userID string, totalPoints float64) (*domain.LeaderboardEntry, error) {
	args := m.Called(ctx, userID, totalPoints)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardRepository) List(ctx context.Context) ([]*domain.LeaderboardEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardRepository) GetByUser(ctx context.Context, userID string) (*domain.LeaderboardEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaderboardEntry), args.Error(1)
}

// --- MockCategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context, filter domain.CategoryFilter) ([]*domain.Category, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

// --- MockAnswerKeyStore ---
type MockAnswerKeyStore struct {
	mock.Mock
}

func (m *MockAnswerKeyStore) Get(ctx context.Context, quizID string) (*domain.AnswerKey, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnswerKey), args.Error(1)
}

// --- MockLeaderboardService ---
type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) Refresh(ctx context.Context, userID string) (*domain.LeaderboardEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardService) GetAll(ctx context.Context) ([]dto.LeaderboardEntryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.LeaderboardEntryResponse), args.Error(1)
}

func (m *MockLeaderboardService) GetWeekly(ctx context.Context) ([]dto.LeaderboardEntryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.LeaderboardEntryResponse), args.Error(1)
}

func (m *MockLeaderboardService) GetByUser(ctx context.Context, userID string) (*dto.LeaderboardEntryResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LeaderboardEntryResponse), args.Error(1)
}

// --- MockSubmissionService ---
type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) Finish(ctx context.Context, userID string, req *dto.FinishQuizRequest) (*dto.FinishQuizResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FinishQuizResponse), args.Error(1)
}

func (m *MockSubmissionService) Submit(ctx context.Context, userID, quizID string, selected []*int) (*dto.FinishQuizResponse, error) {
	args := m.Called(ctx, userID, quizID, selected)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FinishQuizResponse), args.Error(1)
}
