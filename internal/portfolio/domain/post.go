package domain

import "time"

// Post is a blog entry. The ID doubles as the URL slug. Drafts are invisible
// on public routes; the listing projection omits Content to keep the index
// payload small.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content,omitempty"`
	Tags        []string   `json:"tags"`
	Featured    bool       `json:"featured"`
	Draft       bool       `json:"draft"`
	SortOrder   int        `json:"sort_order"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
