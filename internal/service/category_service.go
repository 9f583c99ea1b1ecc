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
)

type CategoryService interface {
	CreateCategory(ctx context.Context, authorID string, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	ListCategories(ctx context.Context, query dto.CategoryQuery) ([]dto.CategoryResponse, error)
}

type categoryService struct {
	categories domain.CategoryRepository
	now        func() time.Time
}

func NewCategoryService(categories domain.CategoryRepository) CategoryService {
	return &categoryService{categories: categories, now: time.Now}
}

func (s *categoryService) CreateCategory(ctx context.Context, authorID string, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	slug := domain.Slugify(name)

	existing, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, domain.NewStorageError("failed to check category slug", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError("a category with this name already exists").WithContext("slug", slug)
	}

	now := s.now().UTC()
	category := &domain.Category{
		ID:          util.NewULID(),
		Name:        name,
		Slug:        slug,
		Description: req.Description,
		AuthorID:    authorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, domain.NewStorageError("failed to create category", err)
	}

	logger.Get().Info("Category created", zap.String("categoryID", category.ID), zap.String("slug", slug))
	resp := toCategoryResponse(category)
	return &resp, nil
}

func (s *categoryService) ListCategories(ctx context.Context, query dto.CategoryQuery) ([]dto.CategoryResponse, error) {
	categories, err := s.categories.List(ctx, domain.CategoryFilter{
		CategoryID: query.CategoryID,
		AuthorID:   query.UserID,
		Name:       query.Name,
		Slug:       query.Slug,
	})
	if err != nil {
		return nil, domain.NewStorageError("failed to list categories", err)
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}
