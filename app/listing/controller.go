package listing

import (
	"net/url"
	"strconv"
	"sync"
	"time"

	"inkwell/app/models"
	"inkwell/app/services"
)

// DebounceInterval is how long search input must stay quiet before a
// query is issued.
const DebounceInterval = 300 * time.Millisecond

// QueryFunc executes one listing page query.
type QueryFunc func(pageSize int, filters services.ListFilters) (*services.PostPage, error)

// Controller owns the listing state and drives the query service on
// filter and page changes.
//
// Every issued request carries a sequence number; a response only commits
// when its number is still the latest issued. This is last-request-wins:
// a category change racing a slow debounced search always ends up on the
// category change's results, regardless of completion order.
//
// Backward pagination keeps a cursor stack: cursors[n-1] is the cursor
// that fetches page n, recorded as page boundaries are crossed. Visited
// pages are reachable directly; pages past the stack are derived by
// walking cursors forward from the deepest recorded boundary.
type Controller struct {
	mu          sync.Mutex
	state       State
	seq         uint64
	cursors     []string
	searchInput string

	query    QueryFunc
	pageSize int
	debounce *Debouncer
	interval time.Duration
	onURL    func(url.Values)
}

// Option configures a Controller.
type Option func(*Controller)

// WithPageSize overrides the default listing page size.
func WithPageSize(n int) Option {
	return func(c *Controller) { c.pageSize = n }
}

// WithDebounceInterval overrides the search debounce interval.
func WithDebounceInterval(d time.Duration) Option {
	return func(c *Controller) { c.interval = d }
}

// WithURLSink registers a callback receiving the shareable query
// parameters whenever filters or page change.
func WithURLSink(fn func(url.Values)) Option {
	return func(c *Controller) { c.onURL = fn }
}

// NewController creates a controller around a query function.
func NewController(query QueryFunc, opts ...Option) *Controller {
	c := &Controller{
		state:    NewState(),
		cursors:  []string{""},
		query:    query,
		pageSize: services.DefaultPageSize,
		interval: DebounceInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.debounce = NewDebouncer(c.interval)
	return c
}

// State returns a snapshot of the current listing state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetInitialData hydrates the controller from a server-rendered initial
// page, replacing the state wholesale.
func (c *Controller) SetInitialData(posts []*models.Post, page int, hasNextPage bool, filters Filters) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if filters.Category == "" {
		filters.Category = models.CategoryAll
	}
	c.searchInput = filters.Search
	c.cursors = []string{""}
	c.seq++ // orphan any in-flight request
	c.state = Reduce(c.state, SetInitialData{
		Posts:       posts,
		CurrentPage: page,
		HasNextPage: hasNextPage,
		Filters:     filters,
	})
}

// SetSearchInput records a keystroke. The query fires only once the input
// has been quiet for the debounce interval, against the latest text.
func (c *Controller) SetSearchInput(term string) {
	c.mu.Lock()
	c.searchInput = term
	c.mu.Unlock()

	c.debounce.Debounce(func() {
		c.mu.Lock()
		category := c.state.Filters.Category
		c.mu.Unlock()
		c.ApplyFilters(term, category)
	})
}

// SetCategory applies a category change immediately, carrying along the
// latest typed search text. Any pending debounced search is superseded.
func (c *Controller) SetCategory(category string) {
	c.debounce.Cancel()

	c.mu.Lock()
	search := c.searchInput
	c.mu.Unlock()

	c.ApplyFilters(search, category)
}

// ApplyFilters resets to page 1, clears recorded cursors, issues a query
// with the new filters, and reports the shareable URL.
func (c *Controller) ApplyFilters(search, category string) {
	if category == "" {
		category = models.CategoryAll
	}
	filters := Filters{Search: search, Category: category}

	c.mu.Lock()
	c.searchInput = search
	c.cursors = []string{""}
	c.state = Reduce(c.state, SetFilters{Filters: filters})
	c.state = Reduce(c.state, RequestStarted{})
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	c.pushURL(filters, 1)
	go c.run(seq, 1, filters)
}

// ChangePage navigates to the given page under the current filters. Page
// 1 restarts from the newest post; other pages resume from the nearest
// recorded cursor.
func (c *Controller) ChangePage(page int) {
	if page < 1 {
		return
	}

	c.mu.Lock()
	filters := c.state.Filters
	c.state = Reduce(c.state, RequestStarted{})
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	c.pushURL(filters, page)
	go c.run(seq, page, filters)
}

// run executes one request generation: resume from the deepest recorded
// boundary at or before the target page, walk forward to the target, and
// commit the result if this generation is still the latest.
func (c *Controller) run(seq uint64, page int, filters Filters) {
	listFilters := services.ListFilters{
		Category:   filters.Category,
		SearchTerm: filters.Search,
	}

	c.mu.Lock()
	start := page
	if start > len(c.cursors) {
		start = len(c.cursors)
	}
	cursor := c.cursors[start-1]
	c.mu.Unlock()

	n := start
	for {
		listFilters.AfterCursor = cursor
		result, err := c.query(c.pageSize, listFilters)
		if err != nil {
			c.dispatch(seq, RequestFailed{Message: "Failed to fetch posts"})
			return
		}
		if result.HasNextPage {
			// A cursor for page n+1 only exists when that page does.
			c.recordCursor(seq, n+1, result.NextCursor)
		}

		if n >= page || !result.HasNextPage {
			c.dispatch(seq, RequestSucceeded{
				Posts:       result.Posts,
				CurrentPage: n,
				HasNextPage: result.HasNextPage,
			})
			return
		}
		cursor = result.NextCursor
		n++
	}
}

// dispatch commits an action unless a newer request generation owns the
// state by now.
func (c *Controller) dispatch(seq uint64, a Action) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return
	}
	c.state = Reduce(c.state, a)
}

// recordCursor remembers the cursor that fetches the given page, unless
// the generation is stale (its cursors belong to superseded filters).
func (c *Controller) recordCursor(seq uint64, page int, cursor string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq || cursor == "" {
		return
	}
	for len(c.cursors) < page {
		c.cursors = append(c.cursors, "")
	}
	c.cursors[page-1] = cursor
}

func (c *Controller) pushURL(filters Filters, page int) {
	if c.onURL != nil {
		c.onURL(URLValues(filters, page))
	}
}

// URLValues renders filters and page as shareable query parameters.
// Defaults are omitted: empty search, category "all" and page 1 produce
// no parameter.
func URLValues(f Filters, page int) url.Values {
	values := url.Values{}
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	if f.Category != "" && f.Category != models.CategoryAll {
		values.Set("category", f.Category)
	}
	if page > 1 {
		values.Set("page", strconv.Itoa(page))
	}
	return values
}
