package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var leaderboardColumns = []string{"ID", "USER_ID", "TOTAL_POINTS", "CREATED_AT", "UPDATED_AT", "USERNAME", "PROFILE_PHOTO"}

func TestLeaderboardRepository_Upsert(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXLeaderboardRepository(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("MERGE INTO leaderboard_entries l")).
		WithArgs("user1", 150.0, sqlmock.AnyArg(), sqlmock.AnyArg(), 150.0, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE l.user_id = :1")).
		WithArgs("user1").
		WillReturnRows(sqlmock.NewRows(leaderboardColumns).
			AddRow("entry1", "user1", 150.0, now, now, "alice", "https://img/alice.png"))
	mock.ExpectCommit()

	entry, err := repo.Upsert(context.Background(), "user1", 150)
	require.NoError(t, err)
	assert.Equal(t, "entry1", entry.ID)
	assert.Equal(t, 150.0, entry.TotalPoints)
	require.NotNil(t, entry.User)
	assert.Equal(t, "alice", entry.User.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaderboardRepository_UpsertFailureRollsBack(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXLeaderboardRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("MERGE INTO leaderboard_entries l")).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	entry, err := repo.Upsert(context.Background(), "user1", 10)
	assert.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Nil(t, entry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaderboardRepository_List(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXLeaderboardRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY l.total_points DESC, l.user_id")).
		WillReturnRows(sqlmock.NewRows(leaderboardColumns).
			AddRow("e2", "u2", 200.0, now, now, "bob", nil).
			AddRow("e1", "u1", 100.0, now, now, nil, nil))

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "u2", entries[0].UserID)
	assert.Nil(t, entries[1].User)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaderboardRepository_GetByUser_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXLeaderboardRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE l.user_id = :1")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(leaderboardColumns))

	entry, err := repo.GetByUser(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, entry)
	assert.NoError(t, mock.ExpectationsWereMet())
}
