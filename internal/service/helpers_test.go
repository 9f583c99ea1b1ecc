package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"quiz-board/internal/adapter"
	"quiz-board/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func intPtr(v int) *int { return &v }

func picks(vals ...int) []*int {
	out := make([]*int, len(vals))
	for i, v := range vals {
		out[i] = intPtr(v)
	}
	return out
}

// newTestCache returns a domain.Cache backed by an in-process Redis.
func newTestCache(t *testing.T) (domain.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return adapter.NewRedisCacheAdapter(client), mr
}

func answerKey(quizID string, correct ...int) *domain.AnswerKey {
	key := &domain.AnswerKey{QuizID: quizID}
	for i, c := range correct {
		key.Questions = append(key.Questions, domain.AnswerKeyItem{
			QuestionID:         quizID + "-q" + string(rune('0'+i)),
			CorrectAnswerIndex: c,
			AnswerCount:        domain.AnswersPerQuestion,
		})
	}
	return key
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// memoryResults keeps one Result per (user, quiz) like the unique constraint does.
type memoryResults struct {
	mu   sync.Mutex
	rows map[[2]string]*domain.Result
	seq  int
}

func newMemoryResults() *memoryResults {
	return &memoryResults{rows: map[[2]string]*domain.Result{}}
}

func (m *memoryResults) Upsert(_ context.Context, r *domain.Result) (*domain.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := [2]string{r.UserID, r.QuizID}
	stored := *r
	if prev, ok := m.rows[k]; ok {
		stored.ID = prev.ID
		stored.CreatedAt = prev.CreatedAt
	} else {
		m.seq++
		stored.ID = "result-" + string(rune('0'+m.seq))
		stored.CreatedAt = r.CompletedAt
	}
	stored.UpdatedAt = r.CompletedAt
	m.rows[k] = &stored
	out := stored
	return &out, nil
}

func (m *memoryResults) ListByUser(_ context.Context, userID string) ([]*domain.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Result
	for k, r := range m.rows {
		if k[0] == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryResults) ListByQuiz(_ context.Context, quizID string) ([]*domain.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Result
	for k, r := range m.rows {
		if k[1] == quizID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryResults) ScoresByUser(_ context.Context, userID string) ([]float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []float64
	for k, r := range m.rows {
		if k[0] == userID {
			out = append(out, r.Score)
		}
	}
	return out, nil
}

func (m *memoryResults) StatsByQuiz(_ context.Context, quizID string) (*domain.QuizStatistics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := &domain.QuizStatistics{QuizID: quizID}
	var sum float64
	for k, r := range m.rows {
		if k[1] == quizID {
			stats.Attempts++
			sum += r.Score
		}
	}
	if stats.Attempts > 0 {
		stats.AverageScore = sum / float64(stats.Attempts)
	}
	return stats, nil
}

func (m *memoryResults) TotalsBetween(_ context.Context, from, to time.Time) ([]*domain.LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	totals := map[string]float64{}
	for k, r := range m.rows {
		if !r.CompletedAt.Before(from) && r.CompletedAt.Before(to) {
			totals[k[0]] += r.Score
		}
	}
	var out []*domain.LeaderboardEntry
	for u, t := range totals {
		out = append(out, &domain.LeaderboardEntry{UserID: u, TotalPoints: t})
	}
	return out, nil
}

func (m *memoryResults) UserIDs(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for k := range m.rows {
		if !seen[k[0]] {
			seen[k[0]] = true
			out = append(out, k[0])
		}
	}
	return out, nil
}

func (m *memoryResults) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type memoryLeaderboard struct {
	mu      sync.Mutex
	entries map[string]*domain.LeaderboardEntry
}

func newMemoryLeaderboard() *memoryLeaderboard {
	return &memoryLeaderboard{entries: map[string]*domain.LeaderboardEntry{}}
}

func (m *memoryLeaderboard) Upsert(_ context.Context, userID string, total float64) (*domain.LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[userID]
	if !ok {
		e = &domain.LeaderboardEntry{ID: "entry-" + userID, UserID: userID}
		m.entries[userID] = e
	}
	e.TotalPoints = total
	out := *e
	return &out, nil
}

func (m *memoryLeaderboard) List(_ context.Context) ([]*domain.LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.LeaderboardEntry, 0, len(m.entries))
	for _, e := range m.entries {
		c := *e
		out = append(out, &c)
	}
	return out, nil
}

func (m *memoryLeaderboard) GetByUser(_ context.Context, userID string) (*domain.LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[userID]
	if !ok {
		return nil, nil
	}
	c := *e
	return &c, nil
}
