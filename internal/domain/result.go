package domain

import "time"

// Result is one user's graded attempt at one quiz. (UserID, QuizID) is unique.
type Result struct {
	ID              string
	UserID          string
	QuizID          string
	Score           float64
	SelectedAnswers []SelectedAnswer
	CorrectAnswers  []CorrectAnswer
	CompletedAt     time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Quiz is populated (with its Category) by ListByUser.
	Quiz *Quiz
}

// SelectedAnswer records what the user picked; nil means no answer.
type SelectedAnswer struct {
	QuestionID          string `json:"questionId"`
	SelectedAnswerIndex *int   `json:"selectedAnswerIndex"`
}

type CorrectAnswer struct {
	QuestionID         string `json:"questionId"`
	CorrectAnswerIndex int    `json:"correctAnswerIndex"`
}
