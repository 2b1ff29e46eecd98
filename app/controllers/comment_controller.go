package controllers

import (
	"errors"
	"html/template"
	"net/http"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
	postService    *services.PostService
	templates      map[string]*template.Template
}

// NewCommentControllerWithDB creates a new CommentController with a DB instance
func NewCommentControllerWithDB(db *badger.DB) *CommentController {
	return NewCommentControllerWithDBAndPath(db, "")
}

// NewCommentControllerWithDBAndPath creates a new CommentController with
// a DB instance and custom base path for template lookup.
func NewCommentControllerWithDBAndPath(db *badger.DB, basePath string) *CommentController {
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	return &CommentController{
		commentService: services.NewCommentService(commentRepo, postRepo),
		postService:    services.NewPostService(postRepo, commentRepo),
		templates:      loadTemplates(basePath),
	}
}

// SetServices sets the services for testing
func (cc *CommentController) SetServices(commentService *services.CommentService, postService *services.PostService) {
	cc.commentService = commentService
	cc.postService = postService
}

// Index lists a post's comments, most recent first.
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	comments, err := cc.commentService.ListPostComments(postID)
	if errors.Is(err, repositories.ErrNotFound) {
		sendError(w, r, "Post not found", http.StatusNotFound)
		return
	}
	if err != nil {
		sendError(w, r, "Failed to fetch comments", http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusOK, comments)
}

// Create attaches a new comment to a post.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	var comment models.Comment
	if isAPIRequest(r) {
		if err := decodeJSON(r, &comment); err != nil {
			sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			sendError(w, r, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
			return
		}
		comment.Author = r.FormValue("author")
		comment.Content = r.FormValue("content")
	}
	comment.PostID = postID

	if err := cc.commentService.CreateComment(&comment); err != nil {
		var fields models.FieldErrors
		switch {
		case errors.As(err, &fields):
			if isAPIRequest(r) {
				sendFieldErrors(w, fields)
				return
			}
			cc.renderShowWithErrors(w, r, postID, &comment, fields)
		case errors.Is(err, repositories.ErrNotFound):
			sendError(w, r, "Post not found", http.StatusNotFound)
		default:
			sendError(w, r, "Failed to create comment", http.StatusInternalServerError)
		}
		return
	}

	if isAPIRequest(r) {
		sendJSON(w, http.StatusCreated, comment)
	} else {
		http.Redirect(w, r, "/posts/"+postID, http.StatusSeeOther)
	}
}

// Delete removes a comment.
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := cc.commentService.DeleteComment(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, r, "Comment not found", http.StatusNotFound)
			return
		}
		sendError(w, r, "Failed to delete comment", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// renderShowWithErrors re-renders the post detail view with the rejected
// comment inline next to its field errors.
func (cc *CommentController) renderShowWithErrors(w http.ResponseWriter, r *http.Request, postID string, comment *models.Comment, fields models.FieldErrors) {
	post, err := cc.postService.GetPost(postID)
	if err != nil {
		sendError(w, r, "Post not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusBadRequest)
	data := showData{
		Post:           post,
		Comments:       post.Comments,
		CommentErrors:  fields,
		CommentAuthor:  comment.Author,
		CommentContent: comment.Content,
	}
	if terr := cc.templates["show"].ExecuteTemplate(w, "layout", data); terr != nil {
		sendError(w, r, "Template error: "+terr.Error(), http.StatusInternalServerError)
	}
}
