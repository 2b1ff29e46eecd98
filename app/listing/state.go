// Package listing holds the filter/pagination state machine for the post
// index: an explicit state value, pure reducer functions keyed by action
// type, and a controller that owns the single mutable copy.
package listing

import (
	"inkwell/app/models"
)

// Filters are the user-adjustable knobs narrowing the post listing.
type Filters struct {
	Search   string
	Category string
}

// State is the whole of the listing UI state. Reducers take it by value
// and return a modified copy; nothing outside the controller mutates it.
type State struct {
	Items       []*models.Post
	CurrentPage int
	HasNextPage bool
	Filters     Filters
	IsLoading   bool
	Err         string
}

// NewState returns the pre-hydration state.
func NewState() State {
	return State{
		CurrentPage: 1,
		Filters:     Filters{Category: models.CategoryAll},
		IsLoading:   true,
	}
}

// Action is a state transition request. Concrete action types carry the
// transition's payload.
type Action interface {
	isAction()
}

// SetInitialData replaces the state wholesale with a server-rendered
// initial page.
type SetInitialData struct {
	Posts       []*models.Post
	CurrentPage int
	HasNextPage bool
	Filters     Filters
}

// SetFilters records new filters without touching results.
type SetFilters struct {
	Filters Filters
}

// RequestStarted marks an in-flight query.
type RequestStarted struct{}

// RequestSucceeded installs a query's results.
type RequestSucceeded struct {
	Posts       []*models.Post
	CurrentPage int
	HasNextPage bool
}

// RequestFailed records a query failure. Items are left untouched so the
// view keeps showing stale-but-valid results instead of flickering empty.
type RequestFailed struct {
	Message string
}

func (SetInitialData) isAction()   {}
func (SetFilters) isAction()       {}
func (RequestStarted) isAction()   {}
func (RequestSucceeded) isAction() {}
func (RequestFailed) isAction()    {}

// Reduce applies one action to a state value and returns the next state.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetInitialData:
		s.Items = a.Posts
		s.CurrentPage = a.CurrentPage
		s.HasNextPage = a.HasNextPage
		s.Filters = a.Filters
		s.IsLoading = false
		s.Err = ""
	case SetFilters:
		s.Filters = a.Filters
	case RequestStarted:
		s.IsLoading = true
		s.Err = ""
	case RequestSucceeded:
		s.Items = a.Posts
		s.CurrentPage = a.CurrentPage
		s.HasNextPage = a.HasNextPage
		s.IsLoading = false
	case RequestFailed:
		s.IsLoading = false
		s.Err = a.Message
	}
	return s
}
