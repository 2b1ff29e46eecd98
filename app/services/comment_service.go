package services

import (
	"fmt"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment creates a new comment with validation. The referenced
// post must exist.
func (s *CommentService) CreateComment(comment *models.Comment) error {
	if err := comment.Validate(); err != nil {
		return err
	}

	if _, err := s.postRepo.GetByID(comment.PostID); err != nil {
		return err
	}

	comment.BeforeCreate()
	return s.commentRepo.Create(comment)
}

// GetComment retrieves a comment by ID
func (s *CommentService) GetComment(id string) (*models.Comment, error) {
	return s.commentRepo.GetByID(id)
}

// ListPostComments retrieves all comments for a post, most recent first.
func (s *CommentService) ListPostComments(postID string) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %v", err)
	}
	return comments, nil
}

// DeleteComment deletes a comment. Comments are immutable once created;
// deletion is the only write after create.
func (s *CommentService) DeleteComment(id string) error {
	if _, err := s.commentRepo.GetByID(id); err != nil {
		return err
	}

	return s.commentRepo.Delete(id)
}
