package handler_test

import (
	"context"

	"quiz-board/internal/domain"
	"quiz-board/internal/dto"
)

// --- Manual Mocks ---

type MockQuizService struct {
	CreateQuizFunc            func(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error)
	GetQuizBySlugFunc         func(ctx context.Context, slug string) (*dto.QuizResponse, error)
	ListQuizzesFunc           func(ctx context.Context) ([]dto.QuizResponse, error)
	ListQuizzesByUserFunc     func(ctx context.Context, userID string) ([]dto.QuizResponse, error)
	ListQuizzesByCategoryFunc func(ctx context.Context, slug string) (*dto.CategoryQuizzesResponse, error)
	GetQuizStatisticsFunc     func(ctx context.Context, quizID string) (*dto.QuizStatisticsResponse, error)
}

func (m *MockQuizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	if m.CreateQuizFunc != nil {
		return m.CreateQuizFunc(ctx, req)
	}
	panic("MockQuizService.CreateQuizFunc not implemented")
}
func (m *MockQuizService) GetQuizBySlug(ctx context.Context, slug string) (*dto.QuizResponse, error) {
	if m.GetQuizBySlugFunc != nil {
		return m.GetQuizBySlugFunc(ctx, slug)
	}
	panic("MockQuizService.GetQuizBySlugFunc not implemented")
}
func (m *MockQuizService) ListQuizzes(ctx context.Context) ([]dto.QuizResponse, error) {
	if m.ListQuizzesFunc != nil {
		return m.ListQuizzesFunc(ctx)
	}
	panic("MockQuizService.ListQuizzesFunc not implemented")
}
func (m *MockQuizService) ListQuizzesByUser(ctx context.Context, userID string) ([]dto.QuizResponse, error) {
	if m.ListQuizzesByUserFunc != nil {
		return m.ListQuizzesByUserFunc(ctx, userID)
	}
	panic("MockQuizService.ListQuizzesByUserFunc not implemented")
}
func (m *MockQuizService) ListQuizzesByCategory(ctx context.Context, slug string) (*dto.CategoryQuizzesResponse, error) {
	if m.ListQuizzesByCategoryFunc != nil {
		return m.ListQuizzesByCategoryFunc(ctx, slug)
	}
	panic("MockQuizService.ListQuizzesByCategoryFunc not implemented")
}
func (m *MockQuizService) GetQuizStatistics(ctx context.Context, quizID string) (*dto.QuizStatisticsResponse, error) {
	if m.GetQuizStatisticsFunc != nil {
		return m.GetQuizStatisticsFunc(ctx, quizID)
	}
	panic("MockQuizService.GetQuizStatisticsFunc not implemented")
}

type MockSubmissionService struct {
	FinishFunc func(ctx context.Context, userID string, req *dto.FinishQuizRequest) (*dto.FinishQuizResponse, error)
}

func (m *MockSubmissionService) Finish(ctx context.Context, userID string, req *dto.FinishQuizRequest) (*dto.FinishQuizResponse, error) {
	if m.FinishFunc != nil {
		return m.FinishFunc(ctx, userID, req)
	}
	panic("MockSubmissionService.FinishFunc not implemented")
}
func (m *MockSubmissionService) Submit(ctx context.Context, userID, quizID string, selected []*int) (*dto.FinishQuizResponse, error) {
	panic("MockSubmissionService.Submit not used by handlers")
}

type MockResultService struct {
	ListByUserFunc func(ctx context.Context, userID string) ([]dto.ResultResponse, error)
	ListByQuizFunc func(ctx context.Context, quizID string) ([]dto.ResultResponse, error)
}

func (m *MockResultService) ListByUser(ctx context.Context, userID string) ([]dto.ResultResponse, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	panic("MockResultService.ListByUserFunc not implemented")
}
func (m *MockResultService) ListByQuiz(ctx context.Context, quizID string) ([]dto.ResultResponse, error) {
	if m.ListByQuizFunc != nil {
		return m.ListByQuizFunc(ctx, quizID)
	}
	panic("MockResultService.ListByQuizFunc not implemented")
}

type MockLeaderboardService struct {
	GetAllFunc    func(ctx context.Context) ([]dto.LeaderboardEntryResponse, error)
	GetWeeklyFunc func(ctx context.Context) ([]dto.LeaderboardEntryResponse, error)
	GetByUserFunc func(ctx context.Context, userID string) (*dto.LeaderboardEntryResponse, error)
}

func (m *MockLeaderboardService) Refresh(ctx context.Context, userID string) (*domain.LeaderboardEntry, error) {
	panic("MockLeaderboardService.Refresh not used by handlers")
}
func (m *MockLeaderboardService) GetAll(ctx context.Context) ([]dto.LeaderboardEntryResponse, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	panic("MockLeaderboardService.GetAllFunc not implemented")
}
func (m *MockLeaderboardService) GetWeekly(ctx context.Context) ([]dto.LeaderboardEntryResponse, error) {
	if m.GetWeeklyFunc != nil {
		return m.GetWeeklyFunc(ctx)
	}
	panic("MockLeaderboardService.GetWeeklyFunc not implemented")
}
func (m *MockLeaderboardService) GetByUser(ctx context.Context, userID string) (*dto.LeaderboardEntryResponse, error) {
	if m.GetByUserFunc != nil {
		return m.GetByUserFunc(ctx, userID)
	}
	panic("MockLeaderboardService.GetByUserFunc not implemented")
}

type MockCategoryService struct {
	CreateCategoryFunc func(ctx context.Context, authorID string, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	ListCategoriesFunc func(ctx context.Context, query dto.CategoryQuery) ([]dto.CategoryResponse, error)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, authorID string, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if m.CreateCategoryFunc != nil {
		return m.CreateCategoryFunc(ctx, authorID, req)
	}
	panic("MockCategoryService.CreateCategoryFunc not implemented")
}
func (m *MockCategoryService) ListCategories(ctx context.Context, query dto.CategoryQuery) ([]dto.CategoryResponse, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx, query)
	}
	panic("MockCategoryService.ListCategoriesFunc not implemented")
}

type MockSessionService struct {
	StartFunc  func(ctx context.Context, userID, quizID string) (*dto.SessionResponse, error)
	AnswerFunc func(ctx context.Context, userID, sessionID string, selected *int) (*dto.SessionResponse, error)
	GetFunc    func(ctx context.Context, userID, sessionID string) (*dto.SessionResponse, error)
}

func (m *MockSessionService) Start(ctx context.Context, userID, quizID string) (*dto.SessionResponse, error) {
	if m.StartFunc != nil {
		return m.StartFunc(ctx, userID, quizID)
	}
	panic("MockSessionService.StartFunc not implemented")
}
func (m *MockSessionService) Answer(ctx context.Context, userID, sessionID string, selected *int) (*dto.SessionResponse, error) {
	if m.AnswerFunc != nil {
		return m.AnswerFunc(ctx, userID, sessionID, selected)
	}
	panic("MockSessionService.AnswerFunc not implemented")
}
func (m *MockSessionService) Get(ctx context.Context, userID, sessionID string) (*dto.SessionResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, sessionID)
	}
	panic("MockSessionService.GetFunc not implemented")
}
