package domain

import "time"

// SessionState is the lifecycle of one quiz-taking session.
type SessionState string

const (
	SessionNotStarted SessionState = "NOT_STARTED"
	SessionInProgress SessionState = "IN_PROGRESS"
	SessionSubmitted  SessionState = "SUBMITTED"
)

func (s SessionState) String() string {
	return string(s)
}

// QuizSession walks NotStarted -> InProgress(0..N-1) -> Submitted.
// It is serialized to the cache between requests, hence the json tags.
type QuizSession struct {
	ID            string       `json:"id"`
	UserID        string       `json:"userId"`
	QuizID        string       `json:"quizId"`
	QuestionCount int          `json:"questionCount"`
	State         SessionState `json:"state"`
	QuestionIndex int          `json:"questionIndex"`
	Answers       []*int       `json:"answers"`
	Score         *float64     `json:"score,omitempty"`
	StartedAt     time.Time    `json:"startedAt"`
	SubmittedAt   *time.Time   `json:"submittedAt,omitempty"`
}

func NewQuizSession(id, userID, quizID string, questionCount int) *QuizSession {
	return &QuizSession{
		ID:            id,
		UserID:        userID,
		QuizID:        quizID,
		QuestionCount: questionCount,
		State:         SessionNotStarted,
	}
}

// Start moves a fresh session to the first question. A quiz without questions
// cannot be started.
func (s *QuizSession) Start(now time.Time) error {
	if s.State != SessionNotStarted || s.QuestionCount == 0 {
		return NewInvalidTransitionError(s.State, "start")
	}
	s.State = SessionInProgress
	s.QuestionIndex = 0
	s.Answers = make([]*int, s.QuestionCount)
	s.StartedAt = now
	return nil
}

// Answer records the selection for the current question. It returns true when
// that was the last question and the session is ready to be graded.
func (s *QuizSession) Answer(selected *int) (bool, error) {
	if s.State != SessionInProgress {
		return false, NewInvalidTransitionError(s.State, "answer")
	}
	if selected != nil {
		v := *selected
		selected = &v
	}
	s.Answers[s.QuestionIndex] = selected

	if s.QuestionIndex < s.QuestionCount-1 {
		s.QuestionIndex++
		return false, nil
	}
	return true, nil
}

// Submit closes the session with its graded score. Only legal on the last question.
func (s *QuizSession) Submit(score float64, now time.Time) error {
	if s.State != SessionInProgress || s.QuestionIndex != s.QuestionCount-1 {
		return NewInvalidTransitionError(s.State, "submit")
	}
	s.State = SessionSubmitted
	s.Score = &score
	s.SubmittedAt = &now
	return nil
}
