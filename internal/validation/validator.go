package validation

import (
	"fmt"
	"strings"

	"quiz-board/internal/domain"
	"quiz-board/internal/dto"
	"quiz-board/internal/util"
)

const (
	MaxTitleLength        = 200
	MaxDescriptionLength  = 2000
	MaxQuestionsPerQuiz   = 100
	MaxCategoryNameLength = 100
	// MaxSelectedAnswers bounds a finish payload; entries past the quiz's
	// question count are ignored by grading anyway.
	MaxSelectedAnswers = 500
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateQuizRequest checks the quiz header and that every question
// has AnswersPerQuestion non-blank options and a correct index inside them.
func (v *Validator) ValidateCreateQuizRequest(req *dto.CreateQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	title := strings.TrimSpace(req.Title)
	switch {
	case title == "":
		errors = append(errors, domain.NewMissingFieldError("title"))
	case len(title) > MaxTitleLength:
		errors = append(errors, domain.NewOutOfRangeError("title", len(title), 1, MaxTitleLength))
	case !hasSlugCharacters(title):
		errors = append(errors, domain.NewInvalidFormatError("title", req.Title))
	}

	if len(req.Description) > MaxDescriptionLength {
		errors = append(errors, domain.NewOutOfRangeError("description", len(req.Description), 0, MaxDescriptionLength))
	}
	if strings.TrimSpace(req.CategoryID) == "" {
		errors = append(errors, domain.NewMissingFieldError("categoryId"))
	}
	if strings.TrimSpace(req.UserID) == "" {
		errors = append(errors, domain.NewMissingFieldError("userId"))
	}

	if len(req.Questions) > MaxQuestionsPerQuiz {
		errors = append(errors, domain.NewOutOfRangeError("questions", len(req.Questions), 0, MaxQuestionsPerQuiz))
		return errors
	}

	for i, q := range req.Questions {
		field := fmt.Sprintf("questions[%d]", i)
		if strings.TrimSpace(q.Content) == "" {
			errors = append(errors, domain.NewMissingFieldError(field+".content"))
		}
		if len(q.Answers) != domain.AnswersPerQuestion {
			errors = append(errors, domain.NewOutOfRangeError(field+".answers", len(q.Answers),
				domain.AnswersPerQuestion, domain.AnswersPerQuestion))
		}
		for j, a := range q.Answers {
			if strings.TrimSpace(a) == "" {
				errors = append(errors, domain.NewMissingFieldError(fmt.Sprintf("%s.answers[%d]", field, j)))
			}
		}
		switch {
		case q.CorrectAnswerIndex == nil:
			errors = append(errors, domain.NewMissingFieldError(field+".correctAnswerIndex"))
		case *q.CorrectAnswerIndex < 0 || *q.CorrectAnswerIndex >= len(q.Answers):
			errors = append(errors, domain.NewOutOfRangeError(field+".correctAnswerIndex",
				*q.CorrectAnswerIndex, 0, max(len(q.Answers)-1, 0)))
		}
	}

	return errors
}

// ValidateFinishQuizRequest checks shape only. Indices above a question's
// options are left to the grader, which scores them as incorrect.
func (v *Validator) ValidateFinishQuizRequest(req *dto.FinishQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, v.ValidateQuizID("quizId", req.QuizID)...)

	switch {
	case req.SelectedAnswers == nil:
		errors = append(errors, domain.NewMissingFieldError("selectedAnswers"))
	case len(req.SelectedAnswers) > MaxSelectedAnswers:
		errors = append(errors, domain.NewOutOfRangeError("selectedAnswers", len(req.SelectedAnswers), 0, MaxSelectedAnswers))
	default:
		for i, sel := range req.SelectedAnswers {
			if sel != nil && *sel < domain.NoAnswer {
				errors = append(errors, domain.NewInvalidFormatError(fmt.Sprintf("selectedAnswers[%d]", i), *sel))
			}
		}
	}

	return errors
}

// ValidateQuizID checks that id is a ULID, the format quiz ids are minted in.
func (v *Validator) ValidateQuizID(field, id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if !util.IsULID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, id)}
	}
	return nil
}

func (v *Validator) ValidateCreateCategoryRequest(req *dto.CreateCategoryRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		errors = append(errors, domain.NewMissingFieldError("name"))
	case len(name) > MaxCategoryNameLength:
		errors = append(errors, domain.NewOutOfRangeError("name", len(name), 1, MaxCategoryNameLength))
	case !hasSlugCharacters(name):
		errors = append(errors, domain.NewInvalidFormatError("name", req.Name))
	}
	if len(req.Description) > MaxDescriptionLength {
		errors = append(errors, domain.NewOutOfRangeError("description", len(req.Description), 0, MaxDescriptionLength))
	}

	return errors
}

func (v *Validator) ValidateSessionAnswer(req *dto.SessionAnswerRequest) domain.ValidationErrors {
	if req.SelectedAnswer != nil && *req.SelectedAnswer < domain.NoAnswer {
		return domain.ValidationErrors{domain.NewInvalidFormatError("selectedAnswer", *req.SelectedAnswer)}
	}
	return nil
}

// hasSlugCharacters reports whether s slugifies to something other than hyphens.
func hasSlugCharacters(s string) bool {
	return strings.Trim(domain.Slugify(s), "-") != ""
}
