package controllers

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"inkwell/app/listing"
	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts. Every endpoint
// serves HTML and JSON from the same handler, switched on the Accept
// header and the /api path prefix.
type PostController struct {
	postService *services.PostService
	templates   map[string]*template.Template
	pageSize    int
}

// NewPostControllerWithDB creates a new PostController with a DB instance
func NewPostControllerWithDB(db *badger.DB) *PostController {
	return NewPostControllerWithDBAndPath(db, "")
}

// NewPostControllerWithDBAndPath creates a new PostController with a DB
// instance and custom base path for template lookup.
func NewPostControllerWithDBAndPath(db *badger.DB, basePath string) *PostController {
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	return &PostController{
		postService: services.NewPostService(postRepo, commentRepo),
		templates:   loadTemplates(basePath),
		pageSize:    services.DefaultPageSize,
	}
}

// SetService sets the post service for testing
func (pc *PostController) SetService(service *services.PostService) {
	pc.postService = service
}

// SetPageSize overrides the default listing page size.
func (pc *PostController) SetPageSize(n int) {
	if n > 0 {
		pc.pageSize = n
	}
}

// indexData feeds the index template.
type indexData struct {
	Posts       []*models.Post
	Page        int
	HasNextPage bool
	Search      string
	Category    string
	Categories  []string
	PrevPageURL string
	NextPageURL string
}

// Index handles the post listing with search, category and page query
// parameters. API clients may instead pass an "after" cursor to drive
// pagination directly.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := 1
	if pageStr := query.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	pageSize := pc.pageSize
	if sizeStr := query.Get("pageSize"); sizeStr != "" {
		if n, err := strconv.Atoi(sizeStr); err == nil && n > 0 {
			pageSize = n
		}
	}

	filters := services.ListFilters{
		Category:   query.Get("category"),
		SearchTerm: query.Get("search"),
	}

	var result *services.PostPage
	var err error
	if after := query.Get("after"); after != "" {
		filters.AfterCursor = after
		result, err = pc.postService.ListPosts(pageSize, filters)
	} else {
		result, page, err = pc.postService.ListPostsPage(page, pageSize, filters)
	}
	if err != nil {
		sendError(w, r, "Failed to fetch posts", http.StatusInternalServerError)
		return
	}

	if isAPIRequest(r) {
		sendJSON(w, http.StatusOK, map[string]interface{}{
			"posts":       result.Posts,
			"page":        page,
			"hasNextPage": result.HasNextPage,
			"nextCursor":  result.NextCursor,
		})
		return
	}

	category := filters.Category
	if category == "" {
		category = models.CategoryAll
	}
	data := indexData{
		Posts:       result.Posts,
		Page:        page,
		HasNextPage: result.HasNextPage,
		Search:      filters.SearchTerm,
		Category:    category,
		Categories:  models.Categories,
	}
	shared := listing.Filters{Search: filters.SearchTerm, Category: category}
	if page > 1 {
		data.PrevPageURL = pageURL(shared, page-1)
	}
	if result.HasNextPage {
		data.NextPageURL = pageURL(shared, page+1)
	}

	if err := pc.templates["index"].ExecuteTemplate(w, "layout", data); err != nil {
		sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// pageURL builds a shareable listing link, omitting default parameters.
func pageURL(filters listing.Filters, page int) string {
	values := listing.URLValues(filters, page)
	if len(values) == 0 {
		return "/posts"
	}
	return "/posts?" + values.Encode()
}

// New displays the form for creating a new post
func (pc *PostController) New(w http.ResponseWriter, r *http.Request) {
	data := newPostData{Categories: models.Categories}
	if err := pc.templates["new"].ExecuteTemplate(w, "layout", data); err != nil {
		sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// newPostData feeds the post form template, carrying entered values and
// field errors back on validation failure.
type newPostData struct {
	Post       *models.Post
	Errors     models.FieldErrors
	Categories []string
}

// Show handles displaying a single post with its comments.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	post, err := pc.postService.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		pc.renderNotFound(w, r)
		return
	}
	if err != nil {
		sendError(w, r, "Failed to fetch post", http.StatusInternalServerError)
		return
	}

	if isAPIRequest(r) {
		sendJSON(w, http.StatusOK, post)
		return
	}

	data := showData{Post: post, Comments: post.Comments}
	if err := pc.templates["show"].ExecuteTemplate(w, "layout", data); err != nil {
		sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if isAPIRequest(r) {
		if err := decodeJSON(r, &post); err != nil {
			sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			sendError(w, r, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
			return
		}
		post.Title = r.FormValue("title")
		post.Content = r.FormValue("content")
		post.Author = r.FormValue("author")
		post.Category = r.FormValue("category")
	}

	if err := pc.postService.CreatePost(&post); err != nil {
		var fields models.FieldErrors
		if errors.As(err, &fields) {
			if isAPIRequest(r) {
				sendFieldErrors(w, fields)
				return
			}
			w.WriteHeader(http.StatusBadRequest)
			data := newPostData{Post: &post, Errors: fields, Categories: models.Categories}
			if terr := pc.templates["new"].ExecuteTemplate(w, "layout", data); terr != nil {
				sendError(w, r, "Template error: "+terr.Error(), http.StatusInternalServerError)
			}
			return
		}
		sendError(w, r, "Failed to create post", http.StatusInternalServerError)
		return
	}

	if isAPIRequest(r) {
		sendJSON(w, http.StatusCreated, post)
	} else {
		http.Redirect(w, r, "/posts/"+post.ID, http.StatusSeeOther)
	}
}

// Edit handles updating an existing post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if err := decodeJSON(r, &post); err != nil {
		sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	post.ID = mux.Vars(r)["id"]

	if err := pc.postService.UpdatePost(&post); err != nil {
		var fields models.FieldErrors
		switch {
		case errors.As(err, &fields):
			sendFieldErrors(w, fields)
		case errors.Is(err, repositories.ErrNotFound):
			sendError(w, r, "Post not found", http.StatusNotFound)
		default:
			sendError(w, r, "Failed to update post", http.StatusInternalServerError)
		}
		return
	}

	sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := pc.postService.DeletePost(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, r, "Post not found", http.StatusNotFound)
			return
		}
		sendError(w, r, "Failed to delete post", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// renderNotFound serves the dedicated not-found view, distinct from a
// generic error.
func (pc *PostController) renderNotFound(w http.ResponseWriter, r *http.Request) {
	if isAPIRequest(r) {
		sendJSON(w, http.StatusNotFound, map[string]string{"error": "post not found"})
		return
	}
	w.WriteHeader(http.StatusNotFound)
	if err := pc.templates["notfound"].ExecuteTemplate(w, "layout", nil); err != nil {
		http.Error(w, "Post not found", http.StatusNotFound)
	}
}
