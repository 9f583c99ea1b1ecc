package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"quiz-board/cmd/seed_initial_data/internal/seedmodels"
	"quiz-board/internal/config"
	"quiz-board/internal/database"
	"quiz-board/internal/domain"
	"quiz-board/internal/dto"
	"quiz-board/internal/logger"
	"quiz-board/internal/repository"
	"quiz-board/internal/service"
	"quiz-board/internal/validation"

	"go.uber.org/zap"
)

const defaultSeedFilePath = "config/seed_data/initial_quizzes.json"

func main() {
	seedFilePath := flag.String("file", defaultSeedFilePath, "path to the JSON seed file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXOracleDB(cfg.DB, cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	byteValue, err := os.ReadFile(*seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", *seedFilePath), zap.Error(err))
	}
	var seedCategories []seedmodels.SeedCategory
	if err := json.Unmarshal(byteValue, &seedCategories); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Loaded seed data", zap.Int("categories", len(seedCategories)))

	categoryRepo := repository.NewSQLXCategoryRepository(db)
	s := &seeder{
		categories: service.NewCategoryService(categoryRepo),
		categoryDB: categoryRepo,
		quizzes:    service.NewQuizService(repository.NewQuizDatabaseAdapter(db), categoryRepo, repository.NewSQLXResultRepository(db)),
		validator:  validation.NewValidator(),
		log:        log,
	}
	for _, sc := range seedCategories {
		if err := s.seedCategory(ctx, sc); err != nil {
			log.Error("Error seeding category", zap.String("category", sc.Name), zap.Error(err))
		}
	}
	log.Info("Initial data seeding process completed.")
}

// seeder goes through the same services as the API so seeded quizzes get
// slugs, ids and validation exactly like authored ones. Re-running is safe:
// existing categories and quiz slugs are skipped.
type seeder struct {
	categories service.CategoryService
	categoryDB domain.CategoryRepository
	quizzes    service.QuizService
	validator  *validation.Validator
	log        *zap.Logger
}

func (s *seeder) seedCategory(ctx context.Context, sc seedmodels.SeedCategory) error {
	req := &dto.CreateCategoryRequest{Name: sc.Name, Description: sc.Description}
	if errs := s.validator.ValidateCreateCategoryRequest(req); len(errs) > 0 {
		return errs
	}

	categoryID, err := s.ensureCategory(ctx, sc.AuthorID, req)
	if err != nil {
		return err
	}

	for _, sq := range sc.Quizzes {
		quizReq := &dto.CreateQuizRequest{
			Title:       sq.Title,
			Description: sq.Description,
			CategoryID:  categoryID,
			UserID:      sc.AuthorID,
		}
		for _, q := range sq.Questions {
			idx := q.CorrectAnswerIndex
			quizReq.Questions = append(quizReq.Questions, dto.CreateQuestionRequest{
				Content: q.Content, Answers: q.Answers, CorrectAnswerIndex: &idx,
			})
		}
		if errs := s.validator.ValidateCreateQuizRequest(quizReq); len(errs) > 0 {
			s.log.Warn("Skipping invalid seed quiz", zap.String("title", sq.Title), zap.Error(errs))
			continue
		}

		created, err := s.quizzes.CreateQuiz(ctx, quizReq)
		switch {
		case isConflict(err):
			s.log.Info("Quiz already seeded", zap.String("title", sq.Title))
		case err != nil:
			return fmt.Errorf("failed to seed quiz %q: %w", sq.Title, err)
		default:
			s.log.Info("Seeded quiz", zap.String("slug", created.Slug), zap.Int("questions", len(created.Questions)))
		}
	}
	return nil
}

func (s *seeder) ensureCategory(ctx context.Context, authorID string, req *dto.CreateCategoryRequest) (string, error) {
	created, err := s.categories.CreateCategory(ctx, authorID, req)
	if err == nil {
		s.log.Info("Seeded category", zap.String("slug", created.Slug))
		return created.ID, nil
	}
	if !isConflict(err) {
		return "", err
	}

	existing, err := s.categoryDB.GetBySlug(ctx, domain.Slugify(req.Name))
	if err != nil {
		return "", err
	}
	if existing == nil {
		return "", fmt.Errorf("category %q reported as duplicate but not found", req.Name)
	}
	return existing.ID, nil
}

func isConflict(err error) bool {
	var domainErr *domain.DomainError
	return errors.As(err, &domainErr) && domainErr.Code == domain.CodeConflict
}
