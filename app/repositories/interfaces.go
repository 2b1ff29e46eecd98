package repositories

import (
	"time"

	"inkwell/app/models"
)

// PostListOptions narrows a descending creation-time scan over posts.
type PostListOptions struct {
	// Limit caps the number of returned posts; zero means no cap.
	Limit int
	// Category keeps only posts with an equal category; empty means any.
	Category string
	// Before keeps only posts created strictly before this instant; the
	// zero value means "from the newest".
	Before time.Time
}

// PostRepository defines the interface for post data access.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	// List returns posts ordered by creation time descending, newest
	// first, applying the options as store-level predicates.
	List(opts PostListOptions) ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id string) error
}

// CommentRepository defines the interface for comment data access.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id string) (*models.Comment, error)
	// ListByPost returns a post's comments most-recent-first.
	ListByPost(postID string) ([]*models.Comment, error)
	Delete(id string) error
}
