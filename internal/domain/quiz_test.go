package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Go Concurrency 101!", "go-concurrency-101"},
		{"  Leading spaces", "--leading-spaces"},
		{"Already-hyphenated Title", "already-hyphenated-title"},
		{"Ünïcode & Symbols?", "ncode--symbols"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestPopularity_Next_RunningMean(t *testing.T) {
	p := Popularity{}
	for _, score := range []float64{100, 0, 50} {
		p = p.Next(score)
	}
	assert.Equal(t, 3, p.Attempts)
	assert.InDelta(t, 50.0, p.AverageScore, 1e-9)
}

func TestPopularity_Next_UsesPreUpdateValues(t *testing.T) {
	p := Popularity{Attempts: 1, AverageScore: 100}
	next := p.Next(0)

	// Using post-update attempts for the old sum would give (100*2+0)/2 = 100.
	assert.Equal(t, 2, next.Attempts)
	assert.InDelta(t, 50.0, next.AverageScore, 1e-9)
	assert.Equal(t, 1, p.Attempts, "receiver must not change")
}

func TestQuestion_HasValidAnswerKey(t *testing.T) {
	q := &Question{Answers: []*Answer{{}, {}, {}, {}}}

	q.CorrectAnswerIndex = 3
	assert.True(t, q.HasValidAnswerKey())
	q.CorrectAnswerIndex = 4
	assert.False(t, q.HasValidAnswerKey())
	q.CorrectAnswerIndex = -1
	assert.False(t, q.HasValidAnswerKey())
}

func TestAnswerKeyItem_Accepts(t *testing.T) {
	item := AnswerKeyItem{QuestionID: "q1", CorrectAnswerIndex: 2, AnswerCount: 4}
	assert.True(t, item.Accepts(2))
	assert.False(t, item.Accepts(1))
	assert.False(t, item.Accepts(NoAnswer))

	corrupt := AnswerKeyItem{QuestionID: "q2", CorrectAnswerIndex: 5, AnswerCount: 4}
	assert.False(t, corrupt.Accepts(5), "an index past the options never scores")

	unbounded := AnswerKeyItem{QuestionID: "q3", CorrectAnswerIndex: 5}
	assert.True(t, unbounded.Accepts(5))
}
