package services

import (
	"testing"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommentService() (*CommentService, *mockPostRepo, *mockCommentRepo) {
	postRepo := newMockPostRepo()
	commentRepo := newMockCommentRepo()
	return NewCommentService(commentRepo, postRepo), postRepo, commentRepo
}

func TestCreateComment(t *testing.T) {
	svc, postRepo, _ := newTestCommentService()
	post := seedPost(postRepo, "Discussed", "", time.Now())

	comment := &models.Comment{PostID: post.ID, Author: "Ann", Content: "Hi"}
	require.NoError(t, svc.CreateComment(comment))
	assert.NotEmpty(t, comment.ID)
	assert.False(t, comment.CreatedAt.IsZero())

	listed, err := svc.ListPostComments(post.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Ann", listed[0].Author)
	assert.Equal(t, "Hi", listed[0].Content)
}

func TestCreateCommentValidation(t *testing.T) {
	svc, postRepo, commentRepo := newTestCommentService()
	post := seedPost(postRepo, "Discussed", "", time.Now())

	err := svc.CreateComment(&models.Comment{PostID: post.ID, Author: "", Content: ""})
	var fields models.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "author")
	assert.Contains(t, fields, "content")
	assert.Empty(t, commentRepo.comments)
}

func TestCreateCommentRequiresExistingPost(t *testing.T) {
	svc, _, commentRepo := newTestCommentService()

	err := svc.CreateComment(&models.Comment{PostID: "ghost", Author: "Ann", Content: "Hi"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Empty(t, commentRepo.comments)
}

func TestListPostCommentsOrder(t *testing.T) {
	svc, postRepo, commentRepo := newTestCommentService()
	post := seedPost(postRepo, "Discussed", "", time.Now())

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i, content := range []string{"first", "second", "third"} {
		require.NoError(t, commentRepo.Create(&models.Comment{
			PostID:    post.ID,
			Author:    "Ann",
			Content:   content,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	comments, err := svc.ListPostComments(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "third", comments[0].Content, "most recent first")
	assert.Equal(t, "first", comments[2].Content)

	_, err = svc.ListPostComments("ghost")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDeleteComment(t *testing.T) {
	svc, postRepo, commentRepo := newTestCommentService()
	post := seedPost(postRepo, "Discussed", "", time.Now())

	comment := &models.Comment{PostID: post.ID, Author: "Ann", Content: "Hi"}
	require.NoError(t, svc.CreateComment(comment))

	require.NoError(t, svc.DeleteComment(comment.ID))
	assert.Empty(t, commentRepo.comments)

	assert.ErrorIs(t, svc.DeleteComment(comment.ID), repositories.ErrNotFound)
}
