package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quiz-board/internal/domain"
	"quiz-board/internal/repository/models"
	"quiz-board/internal/util"

	"github.com/jmoiron/sqlx"
)

const quizSelect = `SELECT q.id, q.title, q.description, q.category_id, q.author_id, q.slug,
       q.popularity_attempts, q.popularity_average_score, q.created_at, q.updated_at,
       c.name AS category_name, c.slug AS category_slug
  FROM quizzes q
  LEFT JOIN categories c ON c.id = q.category_id`

// QuizDatabaseAdapter implements domain.QuizRepository on Oracle.
type QuizDatabaseAdapter struct {
	db DBTX
	tm domain.TransactionManager
}

func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db, tm: NewTransactionManagerAdapter(db)}
}

func (a *QuizDatabaseAdapter) Create(ctx context.Context, quiz *domain.Quiz) error {
	return a.tm.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, a.db)
		row := fromDomainQuiz(quiz)

		_, err := exec.ExecContext(ctx, `INSERT INTO quizzes
			(id, title, description, category_id, author_id, slug,
			 popularity_attempts, popularity_average_score, created_at, updated_at)
			VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10)`,
			row.ID, row.Title, row.Description, row.CategoryID, row.AuthorID, row.Slug,
			row.PopularityAttempts, row.PopularityAverageScore, row.CreatedAt, row.UpdatedAt)
		if err != nil {
			if util.IsUniqueViolation(err) {
				return domain.NewConflictError(fmt.Sprintf("a quiz with slug %q already exists", quiz.Slug))
			}
			return fmt.Errorf("failed to insert quiz: %w", err)
		}

		for _, q := range quiz.Questions {
			_, err := exec.ExecContext(ctx, `INSERT INTO questions
				(id, quiz_id, position, content, correct_answer_index)
				VALUES (:1, :2, :3, :4, :5)`,
				q.ID, quiz.ID, q.Position, q.Content, q.CorrectAnswerIndex)
			if err != nil {
				return fmt.Errorf("failed to insert question %d: %w", q.Position, err)
			}
			for _, ans := range q.Answers {
				_, err := exec.ExecContext(ctx, `INSERT INTO answers
					(id, question_id, content, answer_index)
					VALUES (:1, :2, :3, :4)`,
					ans.ID, q.ID, ans.Content, ans.Index)
				if err != nil {
					return fmt.Errorf("failed to insert answer %d of question %d: %w", ans.Index, q.Position, err)
				}
			}
		}
		return nil
	})
}

func (a *QuizDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.Quiz, error) {
	return a.getOne(ctx, quizSelect+` WHERE q.id = :1`, id)
}

func (a *QuizDatabaseAdapter) GetBySlug(ctx context.Context, slug string) (*domain.Quiz, error) {
	return a.getOne(ctx, quizSelect+` WHERE q.slug = :1`, slug)
}

func (a *QuizDatabaseAdapter) getOne(ctx context.Context, query string, arg string) (*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)

	var row models.QuizWithCategory
	if err := exec.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	quiz := toDomainQuiz(&row)

	if err := a.loadQuestions(ctx, exec, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (a *QuizDatabaseAdapter) loadQuestions(ctx context.Context, exec DBTX, quiz *domain.Quiz) error {
	var questions []models.Question
	err := exec.SelectContext(ctx, &questions, `SELECT id, quiz_id, position, content, correct_answer_index
		  FROM questions
		 WHERE quiz_id = :1
		 ORDER BY position`, quiz.ID)
	if err != nil {
		return fmt.Errorf("failed to get questions for quiz %s: %w", quiz.ID, err)
	}

	var answers []models.Answer
	err = exec.SelectContext(ctx, &answers, `SELECT a.id, a.question_id, a.content, a.answer_index
		  FROM answers a
		  JOIN questions q ON q.id = a.question_id
		 WHERE q.quiz_id = :1
		 ORDER BY q.position, a.answer_index`, quiz.ID)
	if err != nil {
		return fmt.Errorf("failed to get answers for quiz %s: %w", quiz.ID, err)
	}

	byQuestion := make(map[string][]*domain.Answer, len(questions))
	for _, ans := range answers {
		byQuestion[ans.QuestionID] = append(byQuestion[ans.QuestionID], &domain.Answer{
			ID:         ans.ID,
			QuestionID: ans.QuestionID,
			Content:    ans.Content,
			Index:      ans.AnswerIndex,
		})
	}

	quiz.Questions = make([]*domain.Question, 0, len(questions))
	for _, q := range questions {
		quiz.Questions = append(quiz.Questions, &domain.Question{
			ID:                 q.ID,
			QuizID:             q.QuizID,
			Position:           q.Position,
			Content:            q.Content,
			CorrectAnswerIndex: q.CorrectAnswerIndex,
			Answers:            byQuestion[q.ID],
		})
	}
	return nil
}

func (a *QuizDatabaseAdapter) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int
	err := GetExecutor(ctx, a.db).GetContext(ctx, &count, `SELECT COUNT(*) FROM quizzes WHERE slug = :1`, slug)
	if err != nil {
		return false, fmt.Errorf("failed to check quiz slug: %w", err)
	}
	return count > 0, nil
}

func (a *QuizDatabaseAdapter) List(ctx context.Context) ([]*domain.Quiz, error) {
	return a.list(ctx, quizSelect+` ORDER BY q.created_at DESC`)
}

func (a *QuizDatabaseAdapter) ListByAuthor(ctx context.Context, authorID string) ([]*domain.Quiz, error) {
	return a.list(ctx, quizSelect+` WHERE q.author_id = :1 ORDER BY q.created_at DESC`, authorID)
}

func (a *QuizDatabaseAdapter) ListByCategory(ctx context.Context, categoryID string) ([]*domain.Quiz, error) {
	return a.list(ctx, quizSelect+` WHERE q.category_id = :1 ORDER BY q.created_at DESC`, categoryID)
}

// list returns quiz headers without questions.
func (a *QuizDatabaseAdapter) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Quiz, error) {
	var rows []models.QuizWithCategory
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	quizzes := make([]*domain.Quiz, 0, len(rows))
	for i := range rows {
		quizzes = append(quizzes, toDomainQuiz(&rows[i]))
	}
	return quizzes, nil
}

func (a *QuizDatabaseAdapter) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &ids, `SELECT id FROM quizzes ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list quiz ids: %w", err)
	}
	return ids, nil
}

func (a *QuizDatabaseAdapter) GetAnswerKey(ctx context.Context, quizID string) (*domain.AnswerKey, error) {
	exec := GetExecutor(ctx, a.db)

	var count int
	if err := exec.GetContext(ctx, &count, `SELECT COUNT(*) FROM quizzes WHERE id = :1`, quizID); err != nil {
		return nil, fmt.Errorf("failed to check quiz %s: %w", quizID, err)
	}
	if count == 0 {
		return nil, nil
	}

	var rows []models.AnswerKeyRow
	err := exec.SelectContext(ctx, &rows, `SELECT q.id AS question_id, q.correct_answer_index,
	       (SELECT COUNT(*) FROM answers a WHERE a.question_id = q.id) AS answer_count
	  FROM questions q
	 WHERE q.quiz_id = :1
	 ORDER BY q.position`, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answer key for quiz %s: %w", quizID, err)
	}

	key := &domain.AnswerKey{QuizID: quizID, Questions: make([]domain.AnswerKeyItem, 0, len(rows))}
	for _, r := range rows {
		key.Questions = append(key.Questions, domain.AnswerKeyItem{
			QuestionID:         r.QuestionID,
			CorrectAnswerIndex: r.CorrectAnswerIndex,
			AnswerCount:        r.AnswerCount,
		})
	}
	return key, nil
}

// RecordAttempt applies the running mean in one UPDATE. Every right-hand side
// reads the row as it was before the statement, and the row lock serializes
// concurrent attempts on the same quiz.
func (a *QuizDatabaseAdapter) RecordAttempt(ctx context.Context, quizID string, score float64) (*domain.Popularity, error) {
	var result *domain.Popularity
	err := a.tm.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, a.db)

		res, err := exec.ExecContext(ctx, `UPDATE quizzes
			   SET popularity_average_score = (popularity_average_score * popularity_attempts + :1) / (popularity_attempts + 1),
			       popularity_attempts = popularity_attempts + 1,
			       updated_at = :2
			 WHERE id = :3`,
			score, time.Now().UTC(), quizID)
		if err != nil {
			return fmt.Errorf("failed to record attempt for quiz %s: %w", quizID, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read rows affected: %w", err)
		}
		if affected == 0 {
			return nil
		}

		var p models.Popularity
		if err := exec.GetContext(ctx, &p, `SELECT popularity_attempts, popularity_average_score
			  FROM quizzes WHERE id = :1`, quizID); err != nil {
			return fmt.Errorf("failed to read popularity for quiz %s: %w", quizID, err)
		}
		result = &domain.Popularity{Attempts: p.Attempts, AverageScore: p.AverageScore}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (a *QuizDatabaseAdapter) SetPopularity(ctx context.Context, quizID string, p domain.Popularity) error {
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, `UPDATE quizzes
		   SET popularity_attempts = :1, popularity_average_score = :2, updated_at = :3
		 WHERE id = :4`,
		p.Attempts, p.AverageScore, time.Now().UTC(), quizID)
	if err != nil {
		return fmt.Errorf("failed to set popularity for quiz %s: %w", quizID, err)
	}
	return nil
}

func toDomainQuiz(row *models.QuizWithCategory) *domain.Quiz {
	quiz := &domain.Quiz{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description.String,
		CategoryID:  row.CategoryID,
		AuthorID:    row.AuthorID,
		Slug:        row.Slug,
		Popularity: domain.Popularity{
			Attempts:     row.PopularityAttempts,
			AverageScore: row.PopularityAverageScore,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.CategoryName.Valid {
		quiz.Category = &domain.Category{
			ID:   row.CategoryID,
			Name: row.CategoryName.String,
			Slug: row.CategorySlug.String,
		}
	}
	return quiz
}

func fromDomainQuiz(quiz *domain.Quiz) *models.Quiz {
	return &models.Quiz{
		ID:                     quiz.ID,
		Title:                  quiz.Title,
		Description:            util.StringToNullString(quiz.Description),
		CategoryID:             quiz.CategoryID,
		AuthorID:               quiz.AuthorID,
		Slug:                   quiz.Slug,
		PopularityAttempts:     quiz.Popularity.Attempts,
		PopularityAverageScore: quiz.Popularity.AverageScore,
		CreatedAt:              quiz.CreatedAt,
		UpdatedAt:              quiz.UpdatedAt,
	}
}
