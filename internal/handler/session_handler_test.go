package handler_test

import (
	"context"
	"net/http"
	"testing"

	"quiz-board/internal/domain"
	"quiz-board/internal/dto"
	"quiz-board/internal/handler"
	"quiz-board/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionHandler(t *testing.T) {
	quizID := util.NewULID()
	var answered *int
	sessions := &MockSessionService{
		StartFunc: func(ctx context.Context, userID, quizID string) (*dto.SessionResponse, error) {
			return &dto.SessionResponse{ID: "s1", QuizID: quizID, State: string(domain.SessionInProgress), QuestionCount: 2}, nil
		},
		AnswerFunc: func(ctx context.Context, userID, sessionID string, selected *int) (*dto.SessionResponse, error) {
			if sessionID != "s1" {
				return nil, domain.NewSessionNotFoundError(sessionID)
			}
			answered = selected
			return &dto.SessionResponse{ID: sessionID, State: string(domain.SessionInProgress), QuestionIndex: 1}, nil
		},
		GetFunc: func(ctx context.Context, userID, sessionID string) (*dto.SessionResponse, error) {
			return nil, domain.NewInvalidTransitionError(domain.SessionSubmitted, "answer")
		},
	}
	h := handler.NewSessionHandler(sessions)
	app := newTestApp()
	app.Post("/api/session/start", asUser("userA"), h.Start)
	app.Post("/api/session/:id/answer", asUser("userA"), h.Answer)
	app.Get("/api/session/:id", asUser("userA"), h.Get)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/session/start", dto.StartSessionRequest{QuizID: quizID}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var started dto.SessionResponse
	decode(t, resp, &started)
	assert.Equal(t, "IN_PROGRESS", started.State)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/session/start", dto.StartSessionRequest{}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/session/s1/answer", `{"selectedAnswer":2}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, answered)
	assert.Equal(t, 2, *answered)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/session/s1/answer", `{"selectedAnswer":null}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, answered)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/session/s1/answer", `{"selectedAnswer":-7}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/session/other/answer", `{"selectedAnswer":0}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/session/s1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
