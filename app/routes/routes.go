package routes

import (
	"context"
	"net/http"
	"time"

	"inkwell/app/controllers"
	"inkwell/app/middleware"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SetupRoutes defines the application's routes and returns a router,
// using the provided Badger DB. basePath anchors template lookup and is
// empty in production.
func SetupRoutes(db *badger.DB, logger *zap.Logger, basePath string) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))

	postController := controllers.NewPostControllerWithDBAndPath(db, basePath)
	commentController := controllers.NewCommentControllerWithDBAndPath(db, basePath)

	// Web routes
	router.HandleFunc("/", postController.Index).Methods("GET")

	posts := router.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("/new", postController.New).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id}", postController.Edit).Methods("PUT")
	posts.HandleFunc("/{id}", postController.Delete).Methods("DELETE")

	posts.HandleFunc("/{postId}/comments", commentController.Index).Methods("GET")
	posts.HandleFunc("/{postId}/comments", commentController.Create).Methods("POST")
	router.HandleFunc("/comments/{id}", commentController.Delete).Methods("DELETE")

	// API routes with JSON content type
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	apiPosts := api.PathPrefix("/posts").Subrouter()
	apiPosts.HandleFunc("", postController.Index).Methods("GET")
	apiPosts.HandleFunc("", postController.Create).Methods("POST")
	apiPosts.HandleFunc("/{id}", postController.Show).Methods("GET")
	apiPosts.HandleFunc("/{id}", postController.Edit).Methods("PUT")
	apiPosts.HandleFunc("/{id}", postController.Delete).Methods("DELETE")

	apiPosts.HandleFunc("/{postId}/comments", commentController.Index).Methods("GET")
	apiPosts.HandleFunc("/{postId}/comments", commentController.Create).Methods("POST")
	api.HandleFunc("/comments/{id}", commentController.Delete).Methods("DELETE")

	return router
}

// StartServer runs the HTTP server until ctx is cancelled, then shuts it
// down gracefully.
func StartServer(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	return g.Wait()
}
