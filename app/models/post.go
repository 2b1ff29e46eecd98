package models

import (
	"time"
)

// ExcerptLength is the number of leading characters of content kept in the
// derived excerpt.
const ExcerptLength = 150

// MakeExcerpt derives a preview from post content: the first 150
// characters, plus an ellipsis when the content was truncated.
func MakeExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= ExcerptLength {
		return content
	}
	return string(runes[:ExcerptLength]) + "..."
}

// Validate checks if the post meets all validation requirements. On
// failure it returns a FieldErrors map.
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fieldErrors(err)
	}
	return nil
}

// BeforeCreate sets up any necessary fields before creation: timestamps
// and the derived excerpt.
func (p *Post) BeforeCreate() {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	p.Excerpt = MakeExcerpt(p.Content)
}

// BeforeUpdate refreshes the update timestamp and re-derives the excerpt.
// CreatedAt is immutable for the lifetime of the post.
func (p *Post) BeforeUpdate() {
	p.UpdatedAt = time.Now()
	p.Excerpt = MakeExcerpt(p.Content)
}
