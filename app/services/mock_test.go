package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// In-memory repository doubles honoring the same ordering and predicate
// contracts as the Badger implementations.

type mockPostRepo struct {
	posts   map[string]*models.Post
	nextID  int
	listErr error
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[string]*models.Post), nextID: 1}
}

func (m *mockPostRepo) Create(post *models.Post) error {
	if post.ID == "" {
		post.ID = fmt.Sprintf("post-%d", m.nextID)
		m.nextID++
	}
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) GetByID(id string) (*models.Post, error) {
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *mockPostRepo) Update(post *models.Post) error {
	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) Delete(id string) error {
	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *mockPostRepo) List(opts repositories.PostListOptions) ([]*models.Post, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}

	var posts []*models.Post
	for _, post := range m.posts {
		if opts.Category != "" && post.Category != opts.Category {
			continue
		}
		if !opts.Before.IsZero() && !post.CreatedAt.Before(opts.Before) {
			continue
		}
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	if opts.Limit > 0 && len(posts) > opts.Limit {
		posts = posts[:opts.Limit]
	}
	return posts, nil
}

type mockCommentRepo struct {
	comments map[string]*models.Comment
	nextID   int
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[string]*models.Comment), nextID: 1}
}

func (m *mockCommentRepo) Create(comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = fmt.Sprintf("comment-%d", m.nextID)
		m.nextID++
	}
	m.comments[comment.ID] = comment
	return nil
}

func (m *mockCommentRepo) GetByID(id string) (*models.Comment, error) {
	comment, exists := m.comments[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return comment, nil
}

func (m *mockCommentRepo) ListByPost(postID string) ([]*models.Comment, error) {
	var comments []*models.Comment
	for _, comment := range m.comments {
		if comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *mockCommentRepo) Delete(id string) error {
	if _, exists := m.comments[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.comments, id)
	return nil
}

var errStoreDown = errors.New("store unavailable")

// seedPost inserts a post with a fixed creation time, bypassing service
// validation.
func seedPost(repo *mockPostRepo, title, category string, createdAt time.Time) *models.Post {
	post := &models.Post{
		Title:     title,
		Content:   "Content for " + title + " long enough to pass validation",
		Author:    "Ann",
		Category:  category,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	_ = repo.Create(post)
	return post
}
