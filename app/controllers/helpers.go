package controllers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"inkwell/app/models"
)

// showData feeds the post detail template. The comment fields carry a
// rejected comment submission back to the form.
type showData struct {
	Post           *models.Post
	Comments       []*models.Comment
	CommentErrors  models.FieldErrors
	CommentAuthor  string
	CommentContent string
}

func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// isAPIRequest reports whether the client wants JSON rather than HTML.
func isAPIRequest(r *http.Request) bool {
	return r.Header.Get("Accept") == "application/json" ||
		strings.HasPrefix(r.URL.Path, "/api")
}

// loadTemplates loads and parses all templates
func loadTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["index"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/index.html"),
	))
	templates["show"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/show.html"),
		filepath.Join(basePath, "app/views/shared/comments.html"),
	))
	templates["new"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/new.html"),
	))
	templates["notfound"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/notfound.html"),
	))
	return templates
}

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, r *http.Request, message string, status int) {
	if isAPIRequest(r) {
		sendJSON(w, status, map[string]string{"error": message})
	} else {
		http.Error(w, message, status)
	}
}

func sendFieldErrors(w http.ResponseWriter, fields map[string]string) {
	sendJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":  "validation failed",
		"fields": fields,
	})
}
