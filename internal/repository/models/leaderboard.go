package models

import (
	"database/sql"
	"time"
)

// LeaderboardEntry maps leaderboard_entries LEFT JOIN users.
type LeaderboardEntry struct {
	ID           string         `db:"ID"`
	UserID       string         `db:"USER_ID"`
	TotalPoints  float64        `db:"TOTAL_POINTS"`
	CreatedAt    time.Time      `db:"CREATED_AT"`
	UpdatedAt    time.Time      `db:"UPDATED_AT"`
	Username     sql.NullString `db:"USERNAME"`
	ProfilePhoto sql.NullString `db:"PROFILE_PHOTO"`
}

// UserTotal is one row of a GROUP BY user_id aggregate over results.
type UserTotal struct {
	UserID       string         `db:"USER_ID"`
	TotalPoints  float64        `db:"TOTAL_POINTS"`
	Username     sql.NullString `db:"USERNAME"`
	ProfilePhoto sql.NullString `db:"PROFILE_PHOTO"`
}
