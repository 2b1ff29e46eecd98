package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostValidation(t *testing.T) {
	valid := func() *Post {
		return &Post{
			Title:   "Valid Title",
			Content: "This is valid content that meets the minimum length requirement",
			Author:  "Ann",
		}
	}

	tests := []struct {
		name     string
		mutate   func(*Post)
		wantErr  bool
		errField string
	}{
		{
			name:   "valid post",
			mutate: func(p *Post) {},
		},
		{
			name:    "valid post with category",
			mutate:  func(p *Post) { p.Category = "travel" },
			wantErr: false,
		},
		{
			name:     "missing title",
			mutate:   func(p *Post) { p.Title = "" },
			wantErr:  true,
			errField: "title",
		},
		{
			name:     "title too long",
			mutate:   func(p *Post) { p.Title = strings.Repeat("x", 101) },
			wantErr:  true,
			errField: "title",
		},
		{
			name:     "content too short",
			mutate:   func(p *Post) { p.Content = "Too short" },
			wantErr:  true,
			errField: "content",
		},
		{
			name:     "content too long",
			mutate:   func(p *Post) { p.Content = strings.Repeat("x", 5001) },
			wantErr:  true,
			errField: "content",
		},
		{
			name:     "missing author",
			mutate:   func(p *Post) { p.Author = "" },
			wantErr:  true,
			errField: "author",
		},
		{
			name:     "author too long",
			mutate:   func(p *Post) { p.Author = strings.Repeat("x", 51) },
			wantErr:  true,
			errField: "author",
		},
		{
			name:     "unknown category",
			mutate:   func(p *Post) { p.Category = "sports" },
			wantErr:  true,
			errField: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := valid()
			tt.mutate(post)
			err := post.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			fields, ok := err.(FieldErrors)
			assert.True(t, ok, "expected FieldErrors, got %T", err)
			assert.Contains(t, fields, tt.errField)
		})
	}
}

func TestMakeExcerpt(t *testing.T) {
	t.Run("short content is kept verbatim", func(t *testing.T) {
		content := strings.Repeat("a", 150)
		assert.Equal(t, content, MakeExcerpt(content))
	})

	t.Run("long content is truncated with ellipsis", func(t *testing.T) {
		content := strings.Repeat("a", 151)
		excerpt := MakeExcerpt(content)
		assert.Equal(t, strings.Repeat("a", 150)+"...", excerpt)
	})

	t.Run("truncation counts characters not bytes", func(t *testing.T) {
		content := strings.Repeat("é", 200)
		excerpt := MakeExcerpt(content)
		assert.Equal(t, strings.Repeat("é", 150)+"...", excerpt)
	})
}

func TestPostBeforeCreate(t *testing.T) {
	post := &Post{
		Title:   "Title",
		Content: strings.Repeat("content ", 30),
		Author:  "Ann",
	}
	post.BeforeCreate()

	assert.False(t, post.CreatedAt.IsZero())
	assert.False(t, post.UpdatedAt.IsZero())
	assert.Equal(t, MakeExcerpt(post.Content), post.Excerpt)
}

func TestPostBeforeUpdate(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	post := &Post{
		Title:     "Title",
		Content:   strings.Repeat("new content ", 20),
		Author:    "Ann",
		CreatedAt: created,
		Excerpt:   "stale excerpt",
	}
	post.BeforeUpdate()

	assert.Equal(t, created, post.CreatedAt, "creation time must not change on update")
	assert.Equal(t, MakeExcerpt(post.Content), post.Excerpt, "excerpt must be re-derived")
	assert.True(t, post.UpdatedAt.After(created))
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(c), c)
	}
	assert.False(t, ValidCategory("all"), "the filter sentinel is not storable")
	assert.False(t, ValidCategory("sports"))
}
