package domain

import "time"

// Project is a portfolio entry. The ID is a caller-chosen slug.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Link        *string   `json:"link"`
	Github      *string   `json:"github"`
	Image       *string   `json:"image"`
	Featured    bool      `json:"featured"`
	Draft       bool      `json:"draft"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SortOrderUpdate is one element of a batch reorder request. Reorders are
// applied all-or-nothing.
type SortOrderUpdate struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sort_order"`
}
