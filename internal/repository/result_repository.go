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

const resultColumns = `r.id, r.user_id, r.quiz_id, r.score, r.selected_answers, r.correct_answers,
       r.completed_at, r.created_at, r.updated_at`

// upsertResultQuery keys on (user_id, quiz_id), backed by uq_results_user_quiz.
const upsertResultQuery = `MERGE INTO results r
USING (SELECT :1 AS user_id, :2 AS quiz_id FROM dual) src
   ON (r.user_id = src.user_id AND r.quiz_id = src.quiz_id)
 WHEN MATCHED THEN UPDATE SET
      r.score = :3,
      r.selected_answers = :4,
      r.correct_answers = :5,
      r.completed_at = :6,
      r.updated_at = :7
 WHEN NOT MATCHED THEN INSERT
      (id, user_id, quiz_id, score, selected_answers, correct_answers, completed_at, created_at, updated_at)
      VALUES (:8, src.user_id, src.quiz_id, :9, :10, :11, :12, :13, :14)`

// SQLXResultRepository implements domain.ResultRepository.
type SQLXResultRepository struct {
	db DBTX
	tm domain.TransactionManager
}

func NewSQLXResultRepository(db *sqlx.DB) domain.ResultRepository {
	return &SQLXResultRepository{db: db, tm: NewTransactionManagerAdapter(db)}
}

// Upsert writes the result and reads the stored row back in the same transaction,
// so the returned ID is the surviving row's on an overwrite.
func (r *SQLXResultRepository) Upsert(ctx context.Context, result *domain.Result) (*domain.Result, error) {
	row := fromDomainResult(result)
	now := time.Now().UTC()
	newID := util.NewULID()

	var stored *domain.Result
	err := r.tm.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, r.db)

		err := execMerge(ctx, exec, upsertResultQuery,
			row.UserID, row.QuizID,
			row.Score, row.SelectedAnswers, row.CorrectAnswers, row.CompletedAt, now,
			newID, row.Score, row.SelectedAnswers, row.CorrectAnswers, row.CompletedAt, now, now,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert result for user %s quiz %s: %w", row.UserID, row.QuizID, err)
		}

		var saved models.Result
		err = exec.GetContext(ctx, &saved, `SELECT `+resultColumns+`
			  FROM results r
			 WHERE r.user_id = :1 AND r.quiz_id = :2`, row.UserID, row.QuizID)
		if err != nil {
			return fmt.Errorf("failed to read back result: %w", err)
		}
		stored = toDomainResult(&saved)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func (r *SQLXResultRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Result, error) {
	var rows []models.ResultWithQuiz
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, `SELECT `+resultColumns+`,
	       q.title AS quiz_title, q.slug AS quiz_slug, q.description AS quiz_description,
	       c.id AS category_id, c.name AS category_name, c.slug AS category_slug
	  FROM results r
	  LEFT JOIN quizzes q ON q.id = r.quiz_id
	  LEFT JOIN categories c ON c.id = q.category_id
	 WHERE r.user_id = :1
	 ORDER BY r.completed_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results for user %s: %w", userID, err)
	}

	results := make([]*domain.Result, 0, len(rows))
	for i := range rows {
		res := toDomainResult(&rows[i].Result)
		if rows[i].QuizTitle.Valid {
			res.Quiz = &domain.Quiz{
				ID:          res.QuizID,
				Title:       rows[i].QuizTitle.String,
				Slug:        rows[i].QuizSlug.String,
				Description: rows[i].QuizDescription.String,
				CategoryID:  rows[i].CategoryID.String,
			}
			if rows[i].CategoryID.Valid {
				res.Quiz.Category = &domain.Category{
					ID:   rows[i].CategoryID.String,
					Name: rows[i].CategoryName.String,
					Slug: rows[i].CategorySlug.String,
				}
			}
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *SQLXResultRepository) ListByQuiz(ctx context.Context, quizID string) ([]*domain.Result, error) {
	var rows []models.Result
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, `SELECT `+resultColumns+`
	  FROM results r
	 WHERE r.quiz_id = :1
	 ORDER BY r.completed_at DESC`, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results for quiz %s: %w", quizID, err)
	}
	results := make([]*domain.Result, 0, len(rows))
	for i := range rows {
		results = append(results, toDomainResult(&rows[i]))
	}
	return results, nil
}

func (r *SQLXResultRepository) ScoresByUser(ctx context.Context, userID string) ([]float64, error) {
	var scores []float64
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &scores, `SELECT score FROM results WHERE user_id = :1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scores for user %s: %w", userID, err)
	}
	return scores, nil
}

func (r *SQLXResultRepository) StatsByQuiz(ctx context.Context, quizID string) (*domain.QuizStatistics, error) {
	var stats models.QuizStats
	err := GetExecutor(ctx, r.db).GetContext(ctx, &stats, `SELECT COUNT(*) AS attempts, AVG(score) AS average_score
	  FROM results
	 WHERE quiz_id = :1`, quizID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to compute statistics for quiz %s: %w", quizID, err)
	}
	return &domain.QuizStatistics{
		QuizID:       quizID,
		Attempts:     stats.Attempts,
		AverageScore: stats.AverageScore.Float64,
	}, nil
}

func (r *SQLXResultRepository) TotalsBetween(ctx context.Context, from, to time.Time) ([]*domain.LeaderboardEntry, error) {
	var rows []models.UserTotal
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, `SELECT r.user_id, SUM(r.score) AS total_points,
	       u.username, u.profile_photo
	  FROM results r
	  LEFT JOIN users u ON u.id = r.user_id
	 WHERE r.completed_at >= :1 AND r.completed_at < :2
	 GROUP BY r.user_id, u.username, u.profile_photo
	 ORDER BY total_points DESC, r.user_id`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum results between %s and %s: %w", from, to, err)
	}

	entries := make([]*domain.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &domain.LeaderboardEntry{
			UserID:      row.UserID,
			TotalPoints: row.TotalPoints,
			User:        toDomainProfile(row.UserID, row.Username, row.ProfilePhoto),
		})
	}
	return entries, nil
}

func (r *SQLXResultRepository) UserIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &ids, `SELECT DISTINCT user_id FROM results ORDER BY user_id`); err != nil {
		return nil, fmt.Errorf("failed to list result users: %w", err)
	}
	return ids, nil
}

func toDomainResult(row *models.Result) *domain.Result {
	res := &domain.Result{
		ID:              row.ID,
		UserID:          row.UserID,
		QuizID:          row.QuizID,
		Score:           row.Score,
		SelectedAnswers: make([]domain.SelectedAnswer, 0, len(row.SelectedAnswers)),
		CorrectAnswers:  make([]domain.CorrectAnswer, 0, len(row.CorrectAnswers)),
		CompletedAt:     row.CompletedAt,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	for _, s := range row.SelectedAnswers {
		res.SelectedAnswers = append(res.SelectedAnswers, domain.SelectedAnswer(s))
	}
	for _, c := range row.CorrectAnswers {
		res.CorrectAnswers = append(res.CorrectAnswers, domain.CorrectAnswer(c))
	}
	return res
}

func fromDomainResult(res *domain.Result) *models.Result {
	row := &models.Result{
		ID:              res.ID,
		UserID:          res.UserID,
		QuizID:          res.QuizID,
		Score:           res.Score,
		SelectedAnswers: make(models.SelectedAnswerList, 0, len(res.SelectedAnswers)),
		CorrectAnswers:  make(models.CorrectAnswerList, 0, len(res.CorrectAnswers)),
		CompletedAt:     res.CompletedAt,
		CreatedAt:       res.CreatedAt,
		UpdatedAt:       res.UpdatedAt,
	}
	for _, s := range res.SelectedAnswers {
		row.SelectedAnswers = append(row.SelectedAnswers, models.SelectedAnswer(s))
	}
	for _, c := range res.CorrectAnswers {
		row.CorrectAnswers = append(row.CorrectAnswers, models.CorrectAnswer(c))
	}
	return row
}

func toDomainProfile(userID string, username, photo sql.NullString) *domain.UserProfile {
	if !username.Valid {
		return nil
	}
	return &domain.UserProfile{ID: userID, Username: username.String, ProfilePhoto: photo.String}
}
