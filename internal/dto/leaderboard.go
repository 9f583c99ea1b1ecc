package dto

// LeaderboardEntryResponse is one leaderboard row. UserID is the populated
// user, mirroring the shape clients already consume.
type LeaderboardEntryResponse struct {
	Rank        int                 `json:"rank,omitempty"`
	UserID      UserProfileResponse `json:"userId"`
	TotalPoints float64             `json:"totalPoints"`
}
