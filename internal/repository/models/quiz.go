package models

import (
	"database/sql"
	"time"
)

// Quiz maps a row of the quizzes table.
type Quiz struct {
	ID                     string         `db:"ID"`
	Title                  string         `db:"TITLE"`
	Description            sql.NullString `db:"DESCRIPTION"`
	CategoryID             string         `db:"CATEGORY_ID"`
	AuthorID               string         `db:"AUTHOR_ID"`
	Slug                   string         `db:"SLUG"`
	PopularityAttempts     int            `db:"POPULARITY_ATTEMPTS"`
	PopularityAverageScore float64        `db:"POPULARITY_AVERAGE_SCORE"`
	CreatedAt              time.Time      `db:"CREATED_AT"`
	UpdatedAt              time.Time      `db:"UPDATED_AT"`
}

// QuizWithCategory is a quiz row LEFT JOINed with its category.
type QuizWithCategory struct {
	Quiz
	CategoryName sql.NullString `db:"CATEGORY_NAME"`
	CategorySlug sql.NullString `db:"CATEGORY_SLUG"`
}

type Question struct {
	ID                 string `db:"ID"`
	QuizID             string `db:"QUIZ_ID"`
	Position           int    `db:"POSITION"`
	Content            string `db:"CONTENT"`
	CorrectAnswerIndex int    `db:"CORRECT_ANSWER_INDEX"`
}

type Answer struct {
	ID          string `db:"ID"`
	QuestionID  string `db:"QUESTION_ID"`
	Content     string `db:"CONTENT"`
	AnswerIndex int    `db:"ANSWER_INDEX"`
}

// AnswerKeyRow is one question of the grading view.
type AnswerKeyRow struct {
	QuestionID         string `db:"QUESTION_ID"`
	CorrectAnswerIndex int    `db:"CORRECT_ANSWER_INDEX"`
	AnswerCount        int    `db:"ANSWER_COUNT"`
}

// Popularity is the read-back of quizzes.popularity_* after RecordAttempt.
type Popularity struct {
	Attempts     int     `db:"POPULARITY_ATTEMPTS"`
	AverageScore float64 `db:"POPULARITY_AVERAGE_SCORE"`
}

type Category struct {
	ID          string         `db:"ID"`
	Name        string         `db:"NAME"`
	Slug        string         `db:"SLUG"`
	Description sql.NullString `db:"DESCRIPTION"`
	AuthorID    sql.NullString `db:"AUTHOR_ID"`
	CreatedAt   time.Time      `db:"CREATED_AT"`
	UpdatedAt   time.Time      `db:"UPDATED_AT"`
}
