// Package window computes the bounded range of page numbers a paginated
// listing displays around the current page.
package window

import (
	"errors"
	"fmt"
	"math"
)

// DefaultSize is the number of page numbers shown when no size is configured.
const DefaultSize = 5

// MaxSize bounds the window size accepted outside the library API.
const MaxSize = 100

var (
	// ErrInvalidConfiguration is returned when the item count, items per page
	// or window size cannot produce a meaningful window.
	ErrInvalidConfiguration = errors.New("invalid pagination configuration")

	// ErrUnknownStrategy is returned when the requested strategy is neither center nor section.
	ErrUnknownStrategy = errors.New("unknown window strategy")
)

// Request holds everything needed to compute a window.
// CurrentPage accepts any value; it is clamped into the valid page range.
type Request struct {
	TotalItems   int64    `json:"total_items"`
	ItemsPerPage int      `json:"items_per_page"`
	CurrentPage  int      `json:"current_page"`
	Size         int      `json:"size"`
	Strategy     Strategy `json:"strategy"`
}

// Window is the inclusive range [Begin, End] of page numbers to display.
//
// For any non-empty window: 1 <= Begin <= Current <= End <= LastPage and
// End-Begin+1 never exceeds the requested size.
type Window struct {
	Begin    int `json:"begin"`
	End      int `json:"end"`
	Current  int `json:"current"`
	LastPage int `json:"last_page"`
}

// Empty reports whether the window holds no pages, which only happens
// when the listing has no items.
func (w Window) Empty() bool {
	return w.LastPage < 1 || w.End < w.Begin
}

// Len returns the number of pages in the window.
func (w Window) Len() int {
	if w.Empty() {
		return 0
	}
	return w.End - w.Begin + 1
}

// Pages returns the page numbers Begin..End in ascending order.
func (w Window) Pages() []int {
	n := w.Len()
	if n == 0 {
		return nil
	}
	pages := make([]int, n)
	for i := range pages {
		pages[i] = w.Begin + i
	}
	return pages
}

// Contains reports whether page falls inside the window.
func (w Window) Contains(page int) bool {
	return !w.Empty() && page >= w.Begin && page <= w.End
}

// HasPrevWindow reports whether pages exist before the window.
func (w Window) HasPrevWindow() bool {
	return !w.Empty() && w.Begin > 1
}

// HasNextWindow reports whether pages exist after the window.
func (w Window) HasNextWindow() bool {
	return !w.Empty() && w.End < w.LastPage
}

// ClampPage returns max if value > max, min if value < min, value otherwise.
// The caller guarantees min <= max.
func ClampPage(value, minPage, maxPage int) int {
	if value > maxPage {
		return maxPage
	}
	if value < minPage {
		return minPage
	}
	return value
}

// LastPage returns ceil(totalItems / itemsPerPage), the highest valid page number.
// It returns 0 when there are no items or itemsPerPage is not positive,
// and saturates at math.MaxInt where int is narrower than int64.
func LastPage(totalItems int64, itemsPerPage int) int {
	if totalItems <= 0 || itemsPerPage <= 0 {
		return 0
	}
	perPage := int64(itemsPerPage)
	pages := totalItems / perPage
	if totalItems%perPage != 0 {
		pages++
	}
	return int(min(pages, int64(math.MaxInt)))
}

// Validate checks the request before any arithmetic is done.
// CurrentPage is never rejected.
func (r Request) Validate() error {
	if r.TotalItems < 0 {
		return fmt.Errorf("%w: total items must be >= 0, got %d", ErrInvalidConfiguration, r.TotalItems)
	}
	if r.ItemsPerPage <= 0 {
		return fmt.Errorf("%w: items per page must be > 0, got %d", ErrInvalidConfiguration, r.ItemsPerPage)
	}
	if r.Size <= 0 {
		return fmt.Errorf("%w: window size must be > 0, got %d", ErrInvalidConfiguration, r.Size)
	}
	if !r.Strategy.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, string(r.Strategy))
	}
	return nil
}

// Compute validates the request and returns the window for its strategy.
// A listing without items yields the zero Window.
func Compute(r Request) (Window, error) {
	if err := r.Validate(); err != nil {
		return Window{}, err
	}

	lastPage := LastPage(r.TotalItems, r.ItemsPerPage)
	if lastPage == 0 {
		return Window{}, nil
	}
	current := ClampPage(r.CurrentPage, 1, lastPage)

	switch r.Strategy {
	case StrategyCenter:
		return center(current, lastPage, r.Size), nil
	default:
		return section(current, lastPage, r.Size), nil
	}
}

// Section computes the window with the section strategy.
func Section(totalItems int64, itemsPerPage, currentPage, size int) (Window, error) {
	return Compute(Request{
		TotalItems:   totalItems,
		ItemsPerPage: itemsPerPage,
		CurrentPage:  currentPage,
		Size:         size,
		Strategy:     StrategySection,
	})
}

// Center computes the window with the center strategy.
func Center(totalItems int64, itemsPerPage, currentPage, size int) (Window, error) {
	return Compute(Request{
		TotalItems:   totalItems,
		ItemsPerPage: itemsPerPage,
		CurrentPage:  currentPage,
		Size:         size,
		Strategy:     StrategyCenter,
	})
}

// section shows the whole fixed-size block containing current.
// Blocks start at 1, 1+size, 1+2*size, ...; the last block may be shorter.
func section(current, lastPage, size int) Window {
	sector := (current - 1) / size
	begin := sector*size + 1
	end := begin + min(size-1, lastPage-begin)

	return Window{Begin: begin, End: end, Current: current, LastPage: lastPage}
}

// center grows the window one page at a time around current, trying the
// page after the window first and then the page before it on every round.
// The loop stops once a round extends neither side. Bounds are checked
// before stepping so pages near math.MaxInt never wrap.
func center(current, lastPage, size int) Window {
	begin, end := current, current
	budget := size - 1

	for {
		extendedAfter := budget > 0 && end < lastPage
		if extendedAfter {
			end++
			budget--
		}

		extendedBefore := budget > 0 && begin > 1
		if extendedBefore {
			begin--
			budget--
		}

		if !extendedAfter && !extendedBefore {
			break
		}
	}

	return Window{Begin: begin, End: end, Current: current, LastPage: lastPage}
}
