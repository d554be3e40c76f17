// Package listview implements the collection view state machine shared by the
// poems, users and subscribers screens: one full fetch, then purely local
// search, filtering, sorting and pagination, plus confirm-then-apply deletes.
package listview

import (
	"context"
	"errors"
	"sort"
	"strings"
)

// Status of a view: idle -> loading -> loaded | errored.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusErrored Status = "errored"
)

// DefaultPageSize matches the richest revision of the poems screen.
const DefaultPageSize = 6

var ErrDeleteUnsupported = errors.New("view does not support delete")

// Config wires a View to its resource.
type Config[T any] struct {
	// Fetch loads the full collection. There is no server-side pagination.
	Fetch func(ctx context.Context) ([]T, error)
	// Remove issues the authenticated delete call. Optional; views without
	// it reject Delete.
	Remove func(ctx context.Context, id string) error
	// ID extracts the identity used for delete-by-id matching.
	ID func(T) string
	// SearchFields lists the values matched (case-insensitively) by Search.
	SearchFields func(T) []string
	// PageSize defaults to DefaultPageSize when zero or negative.
	PageSize int
}

// View holds one screen's collection state. It is not safe for concurrent
// use; the CLI drives it from a single goroutine.
type View[T any] struct {
	cfg Config[T]

	status  Status
	loadErr error

	items      []T
	filtered   []T
	query      string
	predicates map[string]func(T) bool
	less       func(a, b T) bool
	page       int
}

func New[T any](cfg Config[T]) *View[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	return &View[T]{cfg: cfg, status: StatusIdle, page: 1}
}

// Load fetches the full collection, replacing whatever was loaded before.
// On failure the view enters StatusErrored and keeps no items.
func (v *View[T]) Load(ctx context.Context) error {
	v.status = StatusLoading
	items, err := v.cfg.Fetch(ctx)
	if err != nil {
		v.status = StatusErrored
		v.loadErr = err
		v.items = nil
		v.filtered = nil
		return err
	}
	v.status = StatusLoaded
	v.loadErr = nil
	v.items = items
	v.page = 1
	v.apply()
	return nil
}

func (v *View[T]) Status() Status { return v.status }
func (v *View[T]) Err() error     { return v.loadErr }

// Len is the size of the full, unfiltered collection.
func (v *View[T]) Len() int { return len(v.items) }

// Search sets the substring query and resets to page 1. An empty query
// yields the full collection.
func (v *View[T]) Search(q string) {
	v.query = q
	v.page = 1
	v.apply()
}

func (v *View[T]) Query() string { return v.query }

// SetPredicate adds or replaces a named filter predicate and resets to page 1.
func (v *View[T]) SetPredicate(name string, p func(T) bool) {
	if v.predicates == nil {
		v.predicates = map[string]func(T) bool{}
	}
	v.predicates[name] = p
	v.page = 1
	v.apply()
}

// ClearPredicate removes a named filter predicate and resets to page 1.
func (v *View[T]) ClearPredicate(name string) {
	delete(v.predicates, name)
	v.page = 1
	v.apply()
}

// ClearFilters drops the query and all predicates and resets to page 1.
func (v *View[T]) ClearFilters() {
	v.query = ""
	v.predicates = nil
	v.page = 1
	v.apply()
}

// SortBy installs a sort order over the filtered collection and resets to
// page 1. A nil less keeps the backend's order.
func (v *View[T]) SortBy(less func(a, b T) bool) {
	v.less = less
	v.page = 1
	v.apply()
}

// Filtered returns the derived collection after search, predicates and sort.
func (v *View[T]) Filtered() []T { return v.filtered }

// Page returns the current 1-based page number.
func (v *View[T]) Page() int { return v.page }

// TotalPages is ceil(len(filtered)/pageSize), never less than 1.
func (v *View[T]) TotalPages() int {
	n := len(v.filtered)
	if n == 0 {
		return 1
	}
	return (n + v.cfg.PageSize - 1) / v.cfg.PageSize
}

// SetPage moves to page n. Out-of-range values are a no-op.
func (v *View[T]) SetPage(n int) {
	if n < 1 || n > v.TotalPages() {
		return
	}
	v.page = n
}

func (v *View[T]) NextPage() { v.SetPage(v.page + 1) }
func (v *View[T]) PrevPage() { v.SetPage(v.page - 1) }

// PageItems returns the current page's slice of the filtered collection.
func (v *View[T]) PageItems() []T {
	start := (v.page - 1) * v.cfg.PageSize
	if start >= len(v.filtered) {
		return nil
	}
	end := start + v.cfg.PageSize
	if end > len(v.filtered) {
		end = len(v.filtered)
	}
	return v.filtered[start:end]
}

// Delete is confirm-then-apply: the backend call goes first, and only on
// success is the matching item dropped from local state. On failure the
// collection is unchanged.
func (v *View[T]) Delete(ctx context.Context, id string) error {
	if v.cfg.Remove == nil {
		return ErrDeleteUnsupported
	}
	if err := v.cfg.Remove(ctx, id); err != nil {
		return err
	}
	for i, it := range v.items {
		if v.cfg.ID(it) == id {
			v.items = append(v.items[:i], v.items[i+1:]...)
			break
		}
	}
	v.apply()
	return nil
}

func (v *View[T]) apply() {
	q := strings.ToLower(strings.TrimSpace(v.query))

	out := make([]T, 0, len(v.items))
	for _, it := range v.items {
		if q != "" && !v.matches(it, q) {
			continue
		}
		keep := true
		for _, p := range v.predicates {
			if !p(it) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, it)
		}
	}

	if v.less != nil {
		sort.SliceStable(out, func(i, j int) bool { return v.less(out[i], out[j]) })
	}

	v.filtered = out
	if v.page > v.TotalPages() {
		v.page = v.TotalPages()
	}
	if v.page < 1 {
		v.page = 1
	}
}

func (v *View[T]) matches(it T, q string) bool {
	for _, f := range v.cfg.SearchFields(it) {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
