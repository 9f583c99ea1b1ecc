package domain

import (
	"sort"
	"time"
)

// LeaderboardEntry is the per-user sum of Result scores. It is derived state;
// Results are the source of truth.
type LeaderboardEntry struct {
	ID          string
	UserID      string
	TotalPoints float64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// User is populated by list queries joining users.
	User *UserProfile
}

// UserProfile is the read-only projection of a user shown on leaderboards.
type UserProfile struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
}

// RankedEntry is a leaderboard row with its 1-based position.
type RankedEntry struct {
	Rank        int          `json:"rank"`
	UserID      string       `json:"userId"`
	User        *UserProfile `json:"user,omitempty"`
	TotalPoints float64      `json:"totalPoints"`
}

// TotalPoints sums scores. It is the whole aggregation rule.
func TotalPoints(scores []float64) float64 {
	var total float64
	for _, s := range scores {
		total += s
	}
	return total
}

// RankEntries orders by TotalPoints desc, then UserID asc, and assigns ranks from 1.
func RankEntries(entries []*LeaderboardEntry) []RankedEntry {
	sorted := make([]*LeaderboardEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalPoints != sorted[j].TotalPoints {
			return sorted[i].TotalPoints > sorted[j].TotalPoints
		}
		return sorted[i].UserID < sorted[j].UserID
	})

	ranked := make([]RankedEntry, 0, len(sorted))
	for i, e := range sorted {
		ranked = append(ranked, RankedEntry{
			Rank:        i + 1,
			UserID:      e.UserID,
			User:        e.User,
			TotalPoints: e.TotalPoints,
		})
	}
	return ranked
}

// WeekWindow returns [start, end) of the calendar week containing now,
// starting at midnight of weekStart in now's location.
func WeekWindow(now time.Time, weekStart time.Weekday) (time.Time, time.Time) {
	offset := (int(now.Weekday()) - int(weekStart) + 7) % 7
	y, m, d := now.Date()
	start := time.Date(y, m, d-offset, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 7)
}
