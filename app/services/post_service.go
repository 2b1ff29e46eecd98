package services

import (
	"fmt"
	"strings"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// DefaultPageSize is the listing page size used when a caller passes a
// non-positive one.
const DefaultPageSize = 9

// ListFilters narrow a post listing query.
type ListFilters struct {
	// Category is an exact store-level filter; empty or "all" means
	// unfiltered.
	Category string
	// SearchTerm is matched case-insensitively against title, content and
	// author of the fetched page only.
	SearchTerm string
	// AfterCursor resumes pagination strictly after a previous page.
	AfterCursor string
}

// PostPage is one page of listing results.
type PostPage struct {
	Posts       []*models.Post `json:"posts"`
	HasNextPage bool           `json:"hasNextPage"`
	NextCursor  string         `json:"nextCursor,omitempty"`
}

// PostService handles business logic for blog posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// ListPosts returns one page of posts ordered by creation time
// descending.
//
// The store query fetches pageSize+1 records under the category and
// cursor predicates; the extra record only signals that a next page
// exists and is discarded. The search term then narrows the fetched page
// in memory. The store has no full-text index, so search is page-local by
// design: a page may hold fewer than pageSize matches even when more
// matches exist further down the collection, and HasNextPage is computed
// before the search narrows anything.
func (s *PostService) ListPosts(pageSize int, filters ListFilters) (*PostPage, error) {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	opts := repositories.PostListOptions{Limit: pageSize + 1}
	if filters.Category != "" && filters.Category != models.CategoryAll {
		opts.Category = filters.Category
	}
	if filters.AfterCursor != "" {
		before, err := DecodeCursor(filters.AfterCursor)
		if err != nil {
			return nil, err
		}
		opts.Before = before
	}

	fetched, err := s.postRepo.List(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %v", err)
	}

	hasNext := len(fetched) > pageSize
	page := fetched
	if hasNext {
		page = fetched[:pageSize]
	}

	var nextCursor string
	if len(page) > 0 {
		nextCursor = EncodeCursor(page[len(page)-1].CreatedAt)
	}

	if term := strings.TrimSpace(filters.SearchTerm); term != "" {
		page = filterBySearchTerm(page, term)
	}

	return &PostPage{
		Posts:       page,
		HasNextPage: hasNext,
		NextCursor:  nextCursor,
	}, nil
}

// ListPostsPage derives page n by chaining cursors forward from the
// newest page. Cursor pagination has no random access; a deep link pays
// one store query per page walked. If n runs past the end of the
// collection the last real page is returned, along with its number.
func (s *PostService) ListPostsPage(page, pageSize int, filters ListFilters) (*PostPage, int, error) {
	if page < 1 {
		page = 1
	}

	filters.AfterCursor = ""
	for n := 1; ; n++ {
		result, err := s.ListPosts(pageSize, filters)
		if err != nil {
			return nil, 0, err
		}
		if n == page || !result.HasNextPage {
			return result, n, nil
		}
		filters.AfterCursor = result.NextCursor
	}
}

// filterBySearchTerm keeps posts whose title, content or author contains
// the term, case-insensitively.
func filterBySearchTerm(posts []*models.Post, term string) []*models.Post {
	term = strings.ToLower(term)
	matched := make([]*models.Post, 0, len(posts))
	for _, post := range posts {
		if strings.Contains(strings.ToLower(post.Title), term) ||
			strings.Contains(strings.ToLower(post.Content), term) ||
			strings.Contains(strings.ToLower(post.Author), term) {
			matched = append(matched, post)
		}
	}
	return matched
}

// CreatePost creates a new blog post with validation. The excerpt and
// timestamps are derived here, never taken from the caller.
func (s *PostService) CreatePost(post *models.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}

	post.BeforeCreate()
	return s.postRepo.Create(post)
}

// GetPost retrieves a post by ID with its comments
func (s *PostService) GetPost(id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %v", err)
	}
	post.Comments = comments

	return post, nil
}

// UpdatePost updates an existing post with validation. The creation time
// is preserved and the excerpt recomputed.
func (s *PostService) UpdatePost(post *models.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}

	existing, err := s.postRepo.GetByID(post.ID)
	if err != nil {
		return err
	}

	post.CreatedAt = existing.CreatedAt
	post.BeforeUpdate()

	return s.postRepo.Update(post)
}

// DeletePost deletes a post and all its comments
func (s *PostService) DeletePost(id string) error {
	if _, err := s.postRepo.GetByID(id); err != nil {
		return err
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return fmt.Errorf("failed to get comments: %v", err)
	}

	for _, comment := range comments {
		if err := s.commentRepo.Delete(comment.ID); err != nil {
			return fmt.Errorf("failed to delete comment %s: %v", comment.ID, err)
		}
	}

	return s.postRepo.Delete(id)
}
