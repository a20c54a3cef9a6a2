package domain

import "time"

// Experience is one entry on the work timeline. The ID is a caller-chosen
// slug; Period is freeform display text ("2021 - 2023").
type Experience struct {
	ID           string    `json:"id"`
	Role         string    `json:"role"`
	Company      string    `json:"company"`
	Period       string    `json:"period"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
