package dto

import "time"

// CreateCategoryRequest is the body of POST /api/category/create. The author
// is taken from the access token.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	UserID      string    `json:"userId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CategoryQuery holds the optional filters of GET /api/category/get.
type CategoryQuery struct {
	UserID     string `query:"userId"`
	Name       string `query:"name"`
	Slug       string `query:"slug"`
	CategoryID string `query:"categoryId"`
}
