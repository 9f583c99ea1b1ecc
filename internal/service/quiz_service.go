package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"quiz-board/internal/domain"
	"quiz-board/internal/dto"
	"quiz-board/internal/logger"
	"quiz-board/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuizService covers quiz authoring and browsing.
type QuizService interface {
	CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error)
	GetQuizBySlug(ctx context.Context, slug string) (*dto.QuizResponse, error)
	ListQuizzes(ctx context.Context) ([]dto.QuizResponse, error)
	ListQuizzesByUser(ctx context.Context, userID string) ([]dto.QuizResponse, error)
	ListQuizzesByCategory(ctx context.Context, categorySlug string) (*dto.CategoryQuizzesResponse, error)
	GetQuizStatistics(ctx context.Context, quizID string) (*dto.QuizStatisticsResponse, error)
}

type quizService struct {
	quizzes    domain.QuizRepository
	categories domain.CategoryRepository
	results    domain.ResultRepository
	now        func() time.Time
}

func NewQuizService(quizzes domain.QuizRepository, categories domain.CategoryRepository, results domain.ResultRepository) QuizService {
	return &quizService{
		quizzes:    quizzes,
		categories: categories,
		results:    results,
		now:        time.Now,
	}
}

// CreateQuiz expects a validated request. The slug is derived from the title
// and must be unused.
func (s *quizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	category, err := s.categories.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, domain.NewStorageError("failed to load category", err)
	}
	if category == nil {
		return nil, domain.NewInvalidInputError("categoryId does not reference an existing category").
			WithContext("categoryId", req.CategoryID)
	}

	slug := domain.Slugify(strings.TrimSpace(req.Title))
	exists, err := s.quizzes.SlugExists(ctx, slug)
	if err != nil {
		return nil, domain.NewStorageError("failed to check quiz slug", err)
	}
	if exists {
		return nil, domain.NewConflictError("a quiz with this title already exists").WithContext("slug", slug)
	}

	now := s.now().UTC()
	quiz := &domain.Quiz{
		ID:          util.NewULID(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		CategoryID:  req.CategoryID,
		AuthorID:    req.UserID,
		Slug:        slug,
		Questions:   make([]*domain.Question, 0, len(req.Questions)),
		CreatedAt:   now,
		UpdatedAt:   now,
		Category:    category,
	}
	for i, q := range req.Questions {
		question := &domain.Question{
			ID:                 util.NewULID(),
			QuizID:             quiz.ID,
			Position:           i,
			Content:            q.Content,
			CorrectAnswerIndex: *q.CorrectAnswerIndex,
			Answers:            make([]*domain.Answer, 0, len(q.Answers)),
		}
		for j, content := range q.Answers {
			question.Answers = append(question.Answers, &domain.Answer{
				ID:         util.NewULID(),
				QuestionID: question.ID,
				Content:    content,
				Index:      j,
			})
		}
		if !question.HasValidAnswerKey() {
			return nil, domain.NewInvalidInputError("correctAnswerIndex must point at one of the answers").
				WithContext("question", i)
		}
		quiz.Questions = append(quiz.Questions, question)
	}

	if err := s.quizzes.Create(ctx, quiz); err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, domain.NewStorageError("failed to create quiz", err)
	}

	logger.Get().Info("Quiz created",
		zap.String("quizID", quiz.ID),
		zap.String("slug", quiz.Slug),
		zap.Int("questions", len(quiz.Questions)))

	resp := toQuizResponse(quiz, true)
	return &resp, nil
}

func (s *quizService) GetQuizBySlug(ctx context.Context, slug string) (*dto.QuizResponse, error) {
	quiz, err := s.quizzes.GetBySlug(ctx, slug)
	if err != nil {
		return nil, domain.NewStorageError("failed to load quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(slug)
	}
	resp := toQuizResponse(quiz, false)
	return &resp, nil
}

func (s *quizService) ListQuizzes(ctx context.Context) ([]dto.QuizResponse, error) {
	quizzes, err := s.quizzes.List(ctx)
	if err != nil {
		return nil, domain.NewStorageError("failed to list quizzes", err)
	}
	return toQuizResponses(quizzes), nil
}

func (s *quizService) ListQuizzesByUser(ctx context.Context, userID string) ([]dto.QuizResponse, error) {
	quizzes, err := s.quizzes.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, domain.NewStorageError("failed to list quizzes", err)
	}
	if len(quizzes) == 0 {
		return nil, domain.NewNotFoundError("no quizzes found for this user").WithContext("userId", userID)
	}
	return toQuizResponses(quizzes), nil
}

func (s *quizService) ListQuizzesByCategory(ctx context.Context, categorySlug string) (*dto.CategoryQuizzesResponse, error) {
	category, err := s.categories.GetBySlug(ctx, categorySlug)
	if err != nil {
		return nil, domain.NewStorageError("failed to load category", err)
	}
	if category == nil {
		return nil, domain.NewCategoryNotFoundError(categorySlug)
	}
	quizzes, err := s.quizzes.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, domain.NewStorageError("failed to list quizzes", err)
	}
	return &dto.CategoryQuizzesResponse{
		Category: toCategoryResponse(category),
		Quizzes:  toQuizResponses(quizzes),
	}, nil
}

// GetQuizStatistics aggregates stored results rather than the running
// popularity, so it stays correct after a resubmission overwrote a score.
func (s *quizService) GetQuizStatistics(ctx context.Context, quizID string) (*dto.QuizStatisticsResponse, error) {
	var (
		quiz  *domain.Quiz
		stats *domain.QuizStatistics
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quiz, err = s.quizzes.GetByID(gctx, quizID)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.results.StatsByQuiz(gctx, quizID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewStorageError("failed to compute quiz statistics", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	return &dto.QuizStatisticsResponse{
		QuizID:       quizID,
		Attempts:     stats.Attempts,
		AverageScore: stats.AverageScore,
	}, nil
}
