package dto

import (
	"fmt"

	"github.com/sgaunet/pagewindow/pkg/window"
)

// PaginationInfo holds pagination metadata for paginated results.
// All page numbers are 1-indexed (first page is 1), while StartIndex and EndIndex
// are 0-indexed positions for array/slice operations.
type PaginationInfo struct {
	// CurrentPage is the current page number (1-indexed), clamped into [1, TotalPages].
	CurrentPage int `json:"currentPage"`

	// TotalPages is the total number of pages available.
	TotalPages int `json:"totalPages"`

	// TotalItems is the total number of items across all pages.
	TotalItems int64 `json:"totalItems"`

	// PageSize is the maximum number of items per page.
	PageSize int `json:"pageSize"`

	// HasPrevious indicates if there is a previous page available.
	HasPrevious bool `json:"hasPrevious"`

	// HasNext indicates if there is a next page available.
	HasNext bool `json:"hasNext"`

	// StartIndex is the 0-indexed position of the first item on this page
	// in the complete result set. Use this for array/slice operations.
	StartIndex int `json:"startIndex"`

	// EndIndex is the 0-indexed position (exclusive) of the last item on this page
	// in the complete result set. Use this for array/slice operations like items[StartIndex:EndIndex].
	EndIndex int `json:"endIndex"`

	// WindowBegin and WindowEnd delimit the page numbers to display (inclusive).
	WindowBegin int `json:"windowBegin"`
	WindowEnd   int `json:"windowEnd"`

	// Pages lists WindowBegin..WindowEnd.
	Pages []int `json:"pages"`

	// Strategy is the window strategy used to place the window.
	Strategy window.Strategy `json:"strategy"`
}

// WindowOptions configures the page window embedded in PaginationInfo.
type WindowOptions struct {
	Size     int
	Strategy window.Strategy
}

// DefaultWindowOptions returns a section window of window.DefaultSize pages.
func DefaultWindowOptions() WindowOptions {
	return WindowOptions{Size: window.DefaultSize, Strategy: window.DefaultStrategy}
}

// NewPaginationInfo creates a new PaginationInfo instance and calculates all derived fields.
// Parameters:
//   - totalItems: Total number of items across all pages
//   - pageSize: Maximum number of items per page
//   - currentPage: Requested page number (1-indexed), clamped when out of range
//   - opts: Window size and strategy
//
// Returns an error wrapping window.ErrInvalidConfiguration or window.ErrUnknownStrategy
// when the inputs cannot produce a window.
// Special case: When totalItems is 0, totalPages is set to 1 (not 0) and the window is [1, 1].
func NewPaginationInfo(totalItems int64, pageSize, currentPage int, opts WindowOptions) (PaginationInfo, error) {
	w, err := window.Compute(window.Request{
		TotalItems:   totalItems,
		ItemsPerPage: pageSize,
		CurrentPage:  currentPage,
		Size:         opts.Size,
		Strategy:     opts.Strategy,
	})
	if err != nil {
		return PaginationInfo{}, fmt.Errorf("failed to compute page window: %w", err)
	}

	// An empty listing still renders as a single page
	if w.Empty() {
		w = window.Window{Begin: 1, End: 1, Current: 1, LastPage: 1}
	}

	// Calculate 0-indexed start position for array slicing
	startIndex := min((w.Current-1)*pageSize, int(totalItems))

	// Calculate 0-indexed end position (exclusive) for array slicing
	endIndex := startIndex + min(pageSize, int(totalItems)-startIndex)

	return PaginationInfo{
		CurrentPage: w.Current,
		TotalPages:  w.LastPage,
		TotalItems:  totalItems,
		PageSize:    pageSize,
		HasPrevious: w.Current > 1,
		HasNext:     w.Current < w.LastPage,
		StartIndex:  startIndex,
		EndIndex:    endIndex,
		WindowBegin: w.Begin,
		WindowEnd:   w.End,
		Pages:       w.Pages(),
		Strategy:    opts.Strategy,
	}, nil
}
