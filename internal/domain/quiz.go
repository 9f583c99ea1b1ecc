package domain

import (
	"regexp"
	"strings"
	"time"
)

// AnswersPerQuestion is the fixed number of options a question carries.
const AnswersPerQuestion = 4

// Quiz is an authored set of multiple-choice questions.
type Quiz struct {
	ID          string
	Title       string
	Description string
	CategoryID  string
	AuthorID    string
	Slug        string
	Questions   []*Question
	Popularity  Popularity
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Category is populated by read paths that join categories.
	Category *Category
}

// Question belongs to exactly one quiz. Position is its 0-based order inside the quiz.
type Question struct {
	ID                 string
	QuizID             string
	Position           int
	Content            string
	Answers            []*Answer
	CorrectAnswerIndex int
}

// Answer is one option of a question; Index matches CorrectAnswerIndex semantics.
type Answer struct {
	ID         string
	QuestionID string
	Content    string
	Index      int
}

// HasValidAnswerKey reports whether CorrectAnswerIndex points into Answers.
func (q *Question) HasValidAnswerKey() bool {
	return q.CorrectAnswerIndex >= 0 && q.CorrectAnswerIndex < len(q.Answers)
}

// Popularity is the running aggregate of attempts and mean score for a quiz.
type Popularity struct {
	Attempts     int     `json:"attempts"`
	AverageScore float64 `json:"averageScore"`
}

// Next returns the popularity after one more attempt scoring score.
// Both fields are computed from the receiver's pre-update values.
func (p Popularity) Next(score float64) Popularity {
	attempts := p.Attempts + 1
	return Popularity{
		Attempts:     attempts,
		AverageScore: (p.AverageScore*float64(p.Attempts) + score) / float64(attempts),
	}
}

// QuizStatistics are computed from stored Results rather than the running aggregate.
type QuizStatistics struct {
	QuizID       string
	Attempts     int
	AverageScore float64
}

var slugStrip = regexp.MustCompile(`[^a-zA-Z0-9-]`)

// Slugify lowercases and hyphenates a title, dropping every other character.
//
//	"Go Concurrency 101!" -> "go-concurrency-101"
func Slugify(title string) string {
	hyphenated := strings.ToLower(strings.Join(strings.Split(title, " "), "-"))
	return slugStrip.ReplaceAllString(hyphenated, "")
}

// AnswerKey is the grading view over a quiz: correct indices in question order.
type AnswerKey struct {
	QuizID    string          `json:"quizId"`
	Questions []AnswerKeyItem `json:"questions"`
}

type AnswerKeyItem struct {
	QuestionID         string `json:"questionId"`
	CorrectAnswerIndex int    `json:"correctAnswerIndex"`
	AnswerCount        int    `json:"answerCount"`
}

// Accepts reports whether pick is the correct index. A pick outside the
// question's options never matches; AnswerCount 0 means the bound is unknown.
func (k AnswerKeyItem) Accepts(pick int) bool {
	if pick < 0 || (k.AnswerCount > 0 && pick >= k.AnswerCount) {
		return false
	}
	return pick == k.CorrectAnswerIndex
}

// Category groups quizzes.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	AuthorID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryFilter narrows category listings; empty fields are ignored.
type CategoryFilter struct {
	CategoryID string
	AuthorID   string
	Name       string
	Slug       string
}
