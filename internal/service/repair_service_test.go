package service

import (
	"context"
	"errors"
	"testing"

	"quiz-board/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepairService_RepairLeaderboard_AllUsers(t *testing.T) {
	results := new(MockResultRepository)
	board := new(MockLeaderboardService)
	svc := NewRepairService(new(MockQuizRepository), results, board, 2, zap.NewNop())

	results.On("UserIDs", mock.Anything).Return([]string{"userA", "userB", "userC"}, nil)
	for _, id := range []string{"userA", "userB", "userC"} {
		board.On("Refresh", mock.Anything, id).Return(&domain.LeaderboardEntry{UserID: id}, nil).Once()
	}

	n, err := svc.RepairLeaderboard(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	board.AssertExpectations(t)
}

func TestRepairService_RepairLeaderboard_OneUser(t *testing.T) {
	results := new(MockResultRepository)
	board := new(MockLeaderboardService)
	svc := NewRepairService(new(MockQuizRepository), results, board, 4, zap.NewNop())

	board.On("Refresh", mock.Anything, "userA").Return(&domain.LeaderboardEntry{UserID: "userA", TotalPoints: 140}, nil)

	n, err := svc.RepairLeaderboard(context.Background(), "userA")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	results.AssertNotCalled(t, "UserIDs", mock.Anything)
}

func TestRepairService_RepairLeaderboard_Failure(t *testing.T) {
	results := new(MockResultRepository)
	board := new(MockLeaderboardService)
	svc := NewRepairService(new(MockQuizRepository), results, board, 1, zap.NewNop())

	results.On("UserIDs", mock.Anything).Return([]string{"userA"}, nil)
	board.On("Refresh", mock.Anything, "userA").Return(nil, domain.NewStorageError("failed to update leaderboard entry", errors.New("ORA-00060")))

	n, err := svc.RepairLeaderboard(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "userA")
	assert.Equal(t, 0, n)
}

func TestRepairService_ResetPopularity(t *testing.T) {
	quizzes := new(MockQuizRepository)
	results := new(MockResultRepository)
	svc := NewRepairService(quizzes, results, new(MockLeaderboardService), 3, zap.NewNop())

	quizzes.On("ListIDs", mock.Anything).Return([]string{"q1", "q2"}, nil)
	results.On("StatsByQuiz", mock.Anything, "q1").Return(&domain.QuizStatistics{QuizID: "q1", Attempts: 3, AverageScore: 50}, nil)
	results.On("StatsByQuiz", mock.Anything, "q2").Return(&domain.QuizStatistics{QuizID: "q2"}, nil)
	quizzes.On("SetPopularity", mock.Anything, "q1", domain.Popularity{Attempts: 3, AverageScore: 50}).Return(nil).Once()
	quizzes.On("SetPopularity", mock.Anything, "q2", domain.Popularity{}).Return(nil).Once()

	n, err := svc.ResetPopularity(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	quizzes.AssertExpectations(t)
}

func TestRepairService_ResetPopularity_ListFails(t *testing.T) {
	quizzes := new(MockQuizRepository)
	svc := NewRepairService(quizzes, new(MockResultRepository), new(MockLeaderboardService), 0, zap.NewNop())

	quizzes.On("ListIDs", mock.Anything).Return(nil, errors.New("ORA-12541"))

	_, err := svc.ResetPopularity(context.Background(), "")
	assert.Error(t, err)
}
