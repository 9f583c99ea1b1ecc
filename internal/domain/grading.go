package domain

// NoAnswer is the sentinel clients send for an unanswered question.
const NoAnswer = -1

// GradeOutcome is the result of grading one submission against an answer key.
type GradeOutcome struct {
	Score              float64
	CorrectCount       int
	SelectedAnswers    []SelectedAnswer
	CorrectAnswers     []CorrectAnswer
	PerQuestionCorrect []bool
}

// Grade compares selected[i] with the key's i-th correct index.
//
// Grading is total: a missing entry, nil, NoAnswer or an index outside the
// question's options counts as incorrect. Entries past the last question are
// ignored. A key with no questions scores 0.
func Grade(key *AnswerKey, selected []*int) GradeOutcome {
	n := 0
	if key != nil {
		n = len(key.Questions)
	}

	out := GradeOutcome{
		SelectedAnswers:    make([]SelectedAnswer, n),
		CorrectAnswers:     make([]CorrectAnswer, n),
		PerQuestionCorrect: make([]bool, n),
	}
	if n == 0 {
		return out
	}

	for i, q := range key.Questions {
		var pick *int
		if i < len(selected) && selected[i] != nil {
			v := *selected[i]
			pick = &v
		}

		out.SelectedAnswers[i] = SelectedAnswer{QuestionID: q.QuestionID, SelectedAnswerIndex: pick}
		out.CorrectAnswers[i] = CorrectAnswer{QuestionID: q.QuestionID, CorrectAnswerIndex: q.CorrectAnswerIndex}

		if pick != nil && q.Accepts(*pick) {
			out.PerQuestionCorrect[i] = true
			out.CorrectCount++
		}
	}

	out.Score = 100 * float64(out.CorrectCount) / float64(n)
	return out
}
