package models

import "time"

// CategoryAll is the filter sentinel meaning "no category filter". It is
// never stored on a post.
const CategoryAll = "all"

// Categories is the fixed set of storable post categories.
var Categories = []string{
	"technology",
	"lifestyle",
	"travel",
	"food",
	"health",
	"business",
	"education",
	"entertainment",
}

// Post represents a blog post. The excerpt is always derived from the
// content, never supplied by a caller.
type Post struct {
	ID        string     `json:"id" validate:"-"`
	Title     string     `json:"title" validate:"required,min=1,max=100"`
	Content   string     `json:"content" validate:"required,min=10,max=5000"`
	Author    string     `json:"author" validate:"required,min=1,max=50"`
	Category  string     `json:"category,omitempty" validate:"omitempty,category"`
	Excerpt   string     `json:"excerpt"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Comments  []*Comment `json:"comments,omitempty" validate:"-"`
}

// Comment represents a comment on a blog post. Comments are created once
// and never updated.
type Comment struct {
	ID        string    `json:"id" validate:"-"`
	PostID    string    `json:"postId" validate:"required"`
	Author    string    `json:"author" validate:"required,min=1,max=50"`
	Content   string    `json:"content" validate:"required,min=1,max=500"`
	CreatedAt time.Time `json:"createdAt"`
}
