package cache

import (
	"strings"
	"time"
)

const (
	GlobalKeyPrefix = "quizboard"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// AnswerKeyKey is the hash holding one field per question of a quiz's answer key.
func AnswerKeyKey(quizID string) string {
	return GenerateCacheKey("quiz", "answerkey", quizID)
}

// LeaderboardAllKey holds the ranked all-time view.
func LeaderboardAllKey() string {
	return GenerateCacheKey("leaderboard", "ranked", "all")
}

// LeaderboardWeeklyKey holds the ranked view of the week starting at weekStart.
func LeaderboardWeeklyKey(weekStart time.Time) string {
	return GenerateCacheKey("leaderboard", "ranked", "weekly", weekStart.UTC().Format("2006-01-02"))
}

// LeaderboardVersionKey changes on every leaderboard invalidation so a view
// loaded before the change is not written back.
func LeaderboardVersionKey() string {
	return GenerateCacheKey("leaderboard", "version", "current")
}

func SessionKey(sessionID string) string {
	return GenerateCacheKey("session", "state", sessionID)
}
