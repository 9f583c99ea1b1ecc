package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	go_ora "github.com/sijms/go-ora/v2"
)

// Result maps a row of the results table. The answer lists are JSON in CLOB columns.
type Result struct {
	ID              string             `db:"ID"`
	UserID          string             `db:"USER_ID"`
	QuizID          string             `db:"QUIZ_ID"`
	Score           float64            `db:"SCORE"`
	SelectedAnswers SelectedAnswerList `db:"SELECTED_ANSWERS"`
	CorrectAnswers  CorrectAnswerList  `db:"CORRECT_ANSWERS"`
	CompletedAt     time.Time          `db:"COMPLETED_AT"`
	CreatedAt       time.Time          `db:"CREATED_AT"`
	UpdatedAt       time.Time          `db:"UPDATED_AT"`
}

// ResultWithQuiz is a result joined with its quiz and that quiz's category.
type ResultWithQuiz struct {
	Result
	QuizTitle       sql.NullString `db:"QUIZ_TITLE"`
	QuizSlug        sql.NullString `db:"QUIZ_SLUG"`
	QuizDescription sql.NullString `db:"QUIZ_DESCRIPTION"`
	CategoryID      sql.NullString `db:"CATEGORY_ID"`
	CategoryName    sql.NullString `db:"CATEGORY_NAME"`
	CategorySlug    sql.NullString `db:"CATEGORY_SLUG"`
}

type QuizStats struct {
	Attempts     int             `db:"ATTEMPTS"`
	AverageScore sql.NullFloat64 `db:"AVERAGE_SCORE"`
}

type SelectedAnswer struct {
	QuestionID          string `json:"questionId"`
	SelectedAnswerIndex *int   `json:"selectedAnswerIndex"`
}

type CorrectAnswer struct {
	QuestionID         string `json:"questionId"`
	CorrectAnswerIndex int    `json:"correctAnswerIndex"`
}

// SelectedAnswerList is stored as a JSON array.
type SelectedAnswerList []SelectedAnswer

func (l SelectedAnswerList) Value() (driver.Value, error) {
	return jsonValue(l)
}

func (l *SelectedAnswerList) Scan(value interface{}) error {
	return jsonScan(value, l)
}

// CorrectAnswerList is stored as a JSON array.
type CorrectAnswerList []CorrectAnswer

func (l CorrectAnswerList) Value() (driver.Value, error) {
	return jsonValue(l)
}

func (l *CorrectAnswerList) Scan(value interface{}) error {
	return jsonScan(value, l)
}

// jsonValue는 Oracle 호환을 위해 []byte 대신 string을 반환한다.
func jsonValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(data) == "null" {
		return "[]", nil
	}
	return string(data), nil
}

// jsonScan accepts the shapes the Oracle drivers hand back for a CLOB.
func jsonScan(value interface{}, dest interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case go_ora.Clob:
		if !v.Valid {
			return nil
		}
		data = []byte(v.String)
	default:
		return fmt.Errorf("unsupported CLOB scan type %T", value)
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}
