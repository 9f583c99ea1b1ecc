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

const leaderboardSelect = `SELECT l.id, l.user_id, l.total_points, l.created_at, l.updated_at,
       u.username, u.profile_photo
  FROM leaderboard_entries l
  LEFT JOIN users u ON u.id = l.user_id`

const upsertLeaderboardQuery = `MERGE INTO leaderboard_entries l
USING (SELECT :1 AS user_id FROM dual) src
   ON (l.user_id = src.user_id)
 WHEN MATCHED THEN UPDATE SET
      l.total_points = :2,
      l.updated_at = :3
 WHEN NOT MATCHED THEN INSERT
      (id, user_id, total_points, created_at, updated_at)
      VALUES (:4, src.user_id, :5, :6, :7)`

// SQLXLeaderboardRepository implements domain.LeaderboardRepository.
type SQLXLeaderboardRepository struct {
	db DBTX
	tm domain.TransactionManager
}

func NewSQLXLeaderboardRepository(db *sqlx.DB) domain.LeaderboardRepository {
	return &SQLXLeaderboardRepository{db: db, tm: NewTransactionManagerAdapter(db)}
}

// Upsert overwrites totalPoints for the user. Callers pass a freshly recomputed
// sum, so concurrent writers converge on last-write-wins.
func (r *SQLXLeaderboardRepository) Upsert(ctx context.Context, userID string, totalPoints float64) (*domain.LeaderboardEntry, error) {
	now := time.Now().UTC()

	var entry *domain.LeaderboardEntry
	err := r.tm.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, r.db)
		if err := execMerge(ctx, exec, upsertLeaderboardQuery,
			userID, totalPoints, now,
			util.NewULID(), totalPoints, now, now,
		); err != nil {
			return fmt.Errorf("failed to upsert leaderboard entry for user %s: %w", userID, err)
		}

		var err error
		entry, err = r.getByUser(ctx, exec, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns every entry ordered by totalPoints desc, userID asc.
func (r *SQLXLeaderboardRepository) List(ctx context.Context) ([]*domain.LeaderboardEntry, error) {
	var rows []models.LeaderboardEntry
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, leaderboardSelect+`
	 ORDER BY l.total_points DESC, l.user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard: %w", err)
	}
	entries := make([]*domain.LeaderboardEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, toDomainLeaderboardEntry(&rows[i]))
	}
	return entries, nil
}

func (r *SQLXLeaderboardRepository) GetByUser(ctx context.Context, userID string) (*domain.LeaderboardEntry, error) {
	return r.getByUser(ctx, GetExecutor(ctx, r.db), userID)
}

func (r *SQLXLeaderboardRepository) getByUser(ctx context.Context, exec DBTX, userID string) (*domain.LeaderboardEntry, error) {
	var row models.LeaderboardEntry
	if err := exec.GetContext(ctx, &row, leaderboardSelect+` WHERE l.user_id = :1`, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get leaderboard entry for user %s: %w", userID, err)
	}
	return toDomainLeaderboardEntry(&row), nil
}

func toDomainLeaderboardEntry(row *models.LeaderboardEntry) *domain.LeaderboardEntry {
	return &domain.LeaderboardEntry{
		ID:          row.ID,
		UserID:      row.UserID,
		TotalPoints: row.TotalPoints,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		User:        toDomainProfile(row.UserID, row.Username, row.ProfilePhoto),
	}
}
