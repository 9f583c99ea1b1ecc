package seedmodels

// SeedQuestion is one multiple-choice question in the JSON seed file.
type SeedQuestion struct {
	Content            string   `json:"content"`
	Answers            []string `json:"answers"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
}

// SeedQuiz defines the structure for a quiz item in the JSON seed file.
type SeedQuiz struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []SeedQuestion `json:"questions"`
}

// SeedCategory defines the structure for a category in the JSON seed file.
// Quizzes and the category itself are authored by AuthorID.
type SeedCategory struct {
	Name        string     `json:"category_name"`
	Description string     `json:"category_description"`
	AuthorID    string     `json:"author_id"`
	Quizzes     []SeedQuiz `json:"quizzes"`
}
