package domain

import (
	"context"
	"time"
)

// Repositories return (nil, nil) when a single row is not found; services
// decide which NotFound error that becomes.

// QuizRepository persists quizzes with their questions and answers.
type QuizRepository interface {
	// Create inserts the quiz, its questions and their answers.
	Create(ctx context.Context, quiz *Quiz) error
	GetByID(ctx context.Context, id string) (*Quiz, error)
	GetBySlug(ctx context.Context, slug string) (*Quiz, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context) ([]*Quiz, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*Quiz, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*Quiz, error)
	ListIDs(ctx context.Context) ([]string, error)

	// GetAnswerKey loads correct indices in question order.
	GetAnswerKey(ctx context.Context, quizID string) (*AnswerKey, error)

	// RecordAttempt folds one score into the popularity aggregate in a single
	// storage-side update and returns the new value.
	RecordAttempt(ctx context.Context, quizID string, score float64) (*Popularity, error)
	SetPopularity(ctx context.Context, quizID string, p Popularity) error
}

// ResultRepository persists graded attempts, one per (user, quiz).
type ResultRepository interface {
	// Upsert creates or overwrites the Result for (UserID, QuizID) atomically.
	Upsert(ctx context.Context, result *Result) (*Result, error)
	ListByUser(ctx context.Context, userID string) ([]*Result, error)
	ListByQuiz(ctx context.Context, quizID string) ([]*Result, error)
	ScoresByUser(ctx context.Context, userID string) ([]float64, error)
	StatsByQuiz(ctx context.Context, quizID string) (*QuizStatistics, error)
	// TotalsBetween sums scores per user for results completed in [from, to).
	TotalsBetween(ctx context.Context, from, to time.Time) ([]*LeaderboardEntry, error)
	UserIDs(ctx context.Context) ([]string, error)
}

// LeaderboardRepository stores the derived per-user totals.
type LeaderboardRepository interface {
	Upsert(ctx context.Context, userID string, totalPoints float64) (*LeaderboardEntry, error)
	List(ctx context.Context) ([]*LeaderboardEntry, error)
	GetByUser(ctx context.Context, userID string) (*LeaderboardEntry, error)
}

// CategoryRepository persists quiz categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id string) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	List(ctx context.Context, filter CategoryFilter) ([]*Category, error)
}

// TransactionManager runs fn inside one transaction carried by ctx.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
