package dto

import "time"

type StartSessionRequest struct {
	QuizID string `json:"quizId"`
}

// SessionAnswerRequest answers the session's current question; null or -1 skips it.
type SessionAnswerRequest struct {
	SelectedAnswer *int `json:"selectedAnswer"`
}

type SessionResponse struct {
	ID            string              `json:"id"`
	QuizID        string              `json:"quizId"`
	State         string              `json:"state"`
	QuestionIndex int                 `json:"questionIndex"`
	QuestionCount int                 `json:"questionCount"`
	Score         *float64            `json:"score,omitempty"`
	StartedAt     time.Time           `json:"startedAt"`
	SubmittedAt   *time.Time          `json:"submittedAt,omitempty"`
	Result        *FinishQuizResponse `json:"result,omitempty"`
}
