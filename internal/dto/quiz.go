package dto

import "time"

// CreateQuizRequest is the body of POST /api/quiz/create.
type CreateQuizRequest struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	CategoryID  string                  `json:"categoryId"`
	UserID      string                  `json:"userId"`
	Questions   []CreateQuestionRequest `json:"questions"`
}

type CreateQuestionRequest struct {
	Content            string   `json:"content"`
	Answers            []string `json:"answers"`
	CorrectAnswerIndex *int     `json:"correctAnswerIndex"`
}

// QuizResponse represents a quiz. Questions are omitted from list endpoints.
type QuizResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Slug        string             `json:"slug"`
	CategoryID  string             `json:"categoryId"`
	Category    *CategoryResponse  `json:"category,omitempty"`
	UserID      string             `json:"userId"`
	Questions   []QuestionResponse `json:"questions,omitempty"`
	Popularity  PopularityResponse `json:"popularity"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// QuestionResponse carries CorrectAnswerIndex only in the author's create response.
type QuestionResponse struct {
	ID                 string           `json:"id"`
	Content            string           `json:"content"`
	Answers            []AnswerResponse `json:"answers"`
	CorrectAnswerIndex *int             `json:"correctAnswerIndex,omitempty"`
}

type AnswerResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Index   int    `json:"index"`
}

type PopularityResponse struct {
	Attempts     int     `json:"attempts"`
	AverageScore float64 `json:"averageScore"`
}

// QuizStatisticsResponse is computed from stored results.
type QuizStatisticsResponse struct {
	QuizID       string  `json:"quizId"`
	Attempts     int     `json:"attempts"`
	AverageScore float64 `json:"averageScore"`
}

// CategoryQuizzesResponse is returned by GET /api/quiz/category/:slug.
type CategoryQuizzesResponse struct {
	Category CategoryResponse `json:"category"`
	Quizzes  []QuizResponse   `json:"quizzes"`
}

// FinishQuizRequest is the body of POST /api/quiz/finish.
// A null entry or -1 means the question was left unanswered.
type FinishQuizRequest struct {
	QuizID          string `json:"quizId"`
	SelectedAnswers []*int `json:"selectedAnswers"`
}

// FinishQuizResponse reports the graded submission.
type FinishQuizResponse struct {
	ResultID        string                   `json:"resultId"`
	QuizID          string                   `json:"quizId"`
	Score           float64                  `json:"score"`
	CorrectCount    int                      `json:"correctCount"`
	TotalQuestions  int                      `json:"totalQuestions"`
	SelectedAnswers []SelectedAnswerResponse `json:"selectedAnswers"`
	CorrectAnswers  []CorrectAnswerResponse  `json:"correctAnswers"`
	CompletedAt     time.Time                `json:"completedAt"`
}

type SelectedAnswerResponse struct {
	QuestionID          string `json:"questionId"`
	SelectedAnswerIndex *int   `json:"selectedAnswerIndex"`
}

type CorrectAnswerResponse struct {
	QuestionID         string `json:"questionId"`
	CorrectAnswerIndex int    `json:"correctAnswerIndex"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}
