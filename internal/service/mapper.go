package service

import (
	"quiz-board/internal/domain"
	"quiz-board/internal/dto"
)

func toQuizResponse(q *domain.Quiz, withKey bool) dto.QuizResponse {
	resp := dto.QuizResponse{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Slug:        q.Slug,
		CategoryID:  q.CategoryID,
		UserID:      q.AuthorID,
		Popularity: dto.PopularityResponse{
			Attempts:     q.Popularity.Attempts,
			AverageScore: q.Popularity.AverageScore,
		},
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
	if q.Category != nil {
		c := toCategoryResponse(q.Category)
		resp.Category = &c
	}
	if len(q.Questions) > 0 {
		resp.Questions = make([]dto.QuestionResponse, 0, len(q.Questions))
	}
	for _, question := range q.Questions {
		qr := dto.QuestionResponse{
			ID:      question.ID,
			Content: question.Content,
			Answers: make([]dto.AnswerResponse, 0, len(question.Answers)),
		}
		for _, a := range question.Answers {
			qr.Answers = append(qr.Answers, dto.AnswerResponse{ID: a.ID, Content: a.Content, Index: a.Index})
		}
		if withKey {
			idx := question.CorrectAnswerIndex
			qr.CorrectAnswerIndex = &idx
		}
		resp.Questions = append(resp.Questions, qr)
	}
	return resp
}

func toQuizResponses(quizzes []*domain.Quiz) []dto.QuizResponse {
	out := make([]dto.QuizResponse, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, toQuizResponse(q, false))
	}
	return out
}

func toCategoryResponse(c *domain.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		UserID:      c.AuthorID,
		CreatedAt:   c.CreatedAt,
	}
}

func toSelectedAnswerResponses(in []domain.SelectedAnswer) []dto.SelectedAnswerResponse {
	out := make([]dto.SelectedAnswerResponse, 0, len(in))
	for _, s := range in {
		out = append(out, dto.SelectedAnswerResponse{QuestionID: s.QuestionID, SelectedAnswerIndex: s.SelectedAnswerIndex})
	}
	return out
}

func toCorrectAnswerResponses(in []domain.CorrectAnswer) []dto.CorrectAnswerResponse {
	out := make([]dto.CorrectAnswerResponse, 0, len(in))
	for _, c := range in {
		out = append(out, dto.CorrectAnswerResponse{QuestionID: c.QuestionID, CorrectAnswerIndex: c.CorrectAnswerIndex})
	}
	return out
}

func toResultResponse(r *domain.Result) dto.ResultResponse {
	resp := dto.ResultResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		QuizID:          r.QuizID,
		Score:           r.Score,
		SelectedAnswers: toSelectedAnswerResponses(r.SelectedAnswers),
		CorrectAnswers:  toCorrectAnswerResponses(r.CorrectAnswers),
		CompletedAt:     r.CompletedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.Quiz != nil {
		q := toQuizResponse(r.Quiz, false)
		resp.Quiz = &q
	}
	return resp
}

// toLeaderboardResponses keeps rank only when withRank is set.
func toLeaderboardResponses(ranked []domain.RankedEntry, withRank bool) []dto.LeaderboardEntryResponse {
	out := make([]dto.LeaderboardEntryResponse, 0, len(ranked))
	for _, e := range ranked {
		row := dto.LeaderboardEntryResponse{
			UserID:      toUserProfileResponse(e.UserID, e.User),
			TotalPoints: e.TotalPoints,
		}
		if withRank {
			row.Rank = e.Rank
		}
		out = append(out, row)
	}
	return out
}

func toUserProfileResponse(userID string, p *domain.UserProfile) dto.UserProfileResponse {
	if p == nil {
		return dto.UserProfileResponse{ID: userID}
	}
	return dto.UserProfileResponse{ID: userID, Username: p.Username, ProfilePhoto: p.ProfilePhoto}
}

func toSessionResponse(s *domain.QuizSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		ID:            s.ID,
		QuizID:        s.QuizID,
		State:         s.State.String(),
		QuestionIndex: s.QuestionIndex,
		QuestionCount: s.QuestionCount,
		Score:         s.Score,
		StartedAt:     s.StartedAt,
		SubmittedAt:   s.SubmittedAt,
	}
}
