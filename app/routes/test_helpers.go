package routes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupTestTemplates writes a minimal template set into a temp dir so
// handlers can render without the real views.
func setupTestTemplates(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	viewsDir := filepath.Join(tmpDir, "app", "views")

	dirs := []string{
		filepath.Join(viewsDir, "posts"),
		filepath.Join(viewsDir, "shared"),
	}
	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	templates := map[string]string{
		filepath.Join(viewsDir, "layout.html"):          `{{define "layout"}}<!DOCTYPE html><html><body>{{template "content" .}}</body></html>{{end}}`,
		filepath.Join(viewsDir, "posts/index.html"):     `{{define "content"}}<div class="posts">{{range .Posts}}<h2>{{.Title}}</h2>{{end}}</div><span class="page">{{.Page}}</span>{{end}}`,
		filepath.Join(viewsDir, "posts/show.html"):      `{{define "content"}}<h1>{{.Post.Title}}</h1>{{template "comments" .}}{{end}}`,
		filepath.Join(viewsDir, "posts/new.html"):       `{{define "content"}}<form>{{range $f, $m := .Errors}}<span class="error">{{$f}}: {{$m}}</span>{{end}}</form>{{end}}`,
		filepath.Join(viewsDir, "posts/notfound.html"):  `{{define "content"}}<h1>Post not found</h1>{{end}}`,
		filepath.Join(viewsDir, "shared/comments.html"): `{{define "comments"}}<div class="comments">{{range .Comments}}<p>{{.Content}}</p>{{end}}</div>{{end}}`,
	}
	for path, content := range templates {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	return tmpDir
}

func setupTestDB(t *testing.T) *badger.DB {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestRouter(t *testing.T) (*mux.Router, *badger.DB) {
	t.Helper()
	db := setupTestDB(t)
	basePath := setupTestTemplates(t)
	router := SetupRoutes(db, zap.NewNop(), basePath)
	return router, db
}
