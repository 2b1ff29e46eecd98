package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentValidation(t *testing.T) {
	valid := func() *Comment {
		return &Comment{
			PostID:  "p1",
			Author:  "Ann",
			Content: "Hi",
		}
	}

	tests := []struct {
		name     string
		mutate   func(*Comment)
		wantErr  bool
		errField string
	}{
		{
			name:   "valid comment",
			mutate: func(c *Comment) {},
		},
		{
			name:     "missing post ID",
			mutate:   func(c *Comment) { c.PostID = "" },
			wantErr:  true,
			errField: "postid",
		},
		{
			name:     "missing author",
			mutate:   func(c *Comment) { c.Author = "" },
			wantErr:  true,
			errField: "author",
		},
		{
			name:     "author too long",
			mutate:   func(c *Comment) { c.Author = strings.Repeat("x", 51) },
			wantErr:  true,
			errField: "author",
		},
		{
			name:     "missing content",
			mutate:   func(c *Comment) { c.Content = "" },
			wantErr:  true,
			errField: "content",
		},
		{
			name:     "content too long",
			mutate:   func(c *Comment) { c.Content = strings.Repeat("x", 501) },
			wantErr:  true,
			errField: "content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comment := valid()
			tt.mutate(comment)
			err := comment.Validate()
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

func TestCommentBeforeCreate(t *testing.T) {
	comment := &Comment{PostID: "p1", Author: "Ann", Content: "Hi"}
	comment.BeforeCreate()
	assert.False(t, comment.CreatedAt.IsZero())
}
