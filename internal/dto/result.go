package dto

import "time"

type ResultResponse struct {
	ID              string                   `json:"id"`
	UserID          string                   `json:"userId"`
	QuizID          string                   `json:"quizId"`
	Quiz            *QuizResponse            `json:"quiz,omitempty"`
	Score           float64                  `json:"score"`
	SelectedAnswers []SelectedAnswerResponse `json:"selectedAnswers"`
	CorrectAnswers  []CorrectAnswerResponse  `json:"correctAnswers"`
	CompletedAt     time.Time                `json:"completedAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
}
