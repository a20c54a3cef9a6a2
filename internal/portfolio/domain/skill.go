package domain

// Skill is one item in a skills category grid.
type Skill struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	SortOrder int    `json:"sort_order"`
}

// SkillSortOrderUpdate is one element of a skills reorder batch. Skills use
// autoincrement integer IDs, unlike slug-keyed content.
type SkillSortOrderUpdate struct {
	ID        int64 `json:"id"`
	SortOrder int   `json:"sort_order"`
}
