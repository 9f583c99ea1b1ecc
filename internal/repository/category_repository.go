package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"quiz-board/internal/domain"
	"quiz-board/internal/repository/models"
	"quiz-board/internal/util"

	"github.com/jmoiron/sqlx"
)

const categorySelect = `SELECT id, name, slug, description, author_id, created_at, updated_at FROM categories`

// SQLXCategoryRepository implements domain.CategoryRepository.
type SQLXCategoryRepository struct {
	db DBTX
}

func NewSQLXCategoryRepository(db *sqlx.DB) domain.CategoryRepository {
	return &SQLXCategoryRepository{db: db}
}

func (r *SQLXCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, `INSERT INTO categories
		(id, name, slug, description, author_id, created_at, updated_at)
		VALUES (:1, :2, :3, :4, :5, :6, :7)`,
		category.ID, category.Name, category.Slug,
		util.StringToNullString(category.Description), util.StringToNullString(category.AuthorID),
		category.CreatedAt, category.UpdatedAt)
	if err != nil {
		if util.IsUniqueViolation(err) {
			return domain.NewConflictError(fmt.Sprintf("a category with slug %q already exists", category.Slug))
		}
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

func (r *SQLXCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return r.getOne(ctx, categorySelect+` WHERE id = :1`, id)
}

func (r *SQLXCategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return r.getOne(ctx, categorySelect+` WHERE slug = :1`, slug)
}

func (r *SQLXCategoryRepository) getOne(ctx context.Context, query, arg string) (*domain.Category, error) {
	var row models.Category
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return toDomainCategory(&row), nil
}

// List applies every non-empty filter field with AND.
func (r *SQLXCategoryRepository) List(ctx context.Context, filter domain.CategoryFilter) ([]*domain.Category, error) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = :%d", column, len(args)))
	}
	add("id", filter.CategoryID)
	add("author_id", filter.AuthorID)
	add("name", filter.Name)
	add("slug", filter.Slug)

	query := categorySelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY name"

	var rows []models.Category
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	categories := make([]*domain.Category, 0, len(rows))
	for i := range rows {
		categories = append(categories, toDomainCategory(&rows[i]))
	}
	return categories, nil
}

func toDomainCategory(row *models.Category) *domain.Category {
	return &domain.Category{
		ID:          row.ID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description.String,
		AuthorID:    row.AuthorID.String,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
