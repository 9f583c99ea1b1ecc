package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "quiz",
			objectType:  "answerkey",
			identifier:  "123",
			expectedKey: "quizboard:quiz:answerkey:123",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "quiz",
			objectType:  "answerkey",
			identifier:  "123",
			paramsKey:   []string{},
			expectedKey: "quizboard:quiz:answerkey:123",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "leaderboard",
			objectType:  "ranked",
			identifier:  "weekly",
			paramsKey:   []string{"2026-03-01", "v2"},
			expectedKey: "quizboard:leaderboard:ranked:weekly:2026-03-01_v2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...))
		})
	}
}

func TestDomainKeys(t *testing.T) {
	assert.Equal(t, "quizboard:quiz:answerkey:q1", AnswerKeyKey("q1"))
	assert.Equal(t, "quizboard:leaderboard:ranked:all", LeaderboardAllKey())
	assert.Equal(t, "quizboard:leaderboard:version:current", LeaderboardVersionKey())
	assert.Equal(t, "quizboard:session:state:s1", SessionKey("s1"))

	kst := time.FixedZone("KST", 9*60*60)
	// 2026-03-01 00:00 KST is still Feb 28 in UTC.
	assert.Equal(t, "quizboard:leaderboard:ranked:weekly:2026-02-28",
		LeaderboardWeeklyKey(time.Date(2026, 3, 1, 0, 0, 0, 0, kst)))
}
