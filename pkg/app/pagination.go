package app

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sgaunet/pagewindow/pkg/window"
)

// Query parameters understood by the window endpoints.
const (
	ParamTotal    = "total"
	ParamPerPage  = "per_page"
	ParamPage     = "page"
	ParamSize     = "size"
	ParamStrategy = "strategy"
)

// MaxWindowSize bounds the size parameter accepted from clients.
const MaxWindowSize = window.MaxSize

var (
	// ErrInvalidPageFormat is returned when the page parameter cannot be parsed as a number.
	ErrInvalidPageFormat = errors.New("invalid page parameter: must be a number")

	// ErrMissingTotal is returned when the total parameter is absent.
	ErrMissingTotal = errors.New("missing total parameter")

	// ErrInvalidNumber is returned when a numeric parameter other than page cannot be parsed.
	ErrInvalidNumber = errors.New("invalid numeric parameter")

	// ErrSizeTooLarge is returned when the size parameter exceeds MaxWindowSize.
	ErrSizeTooLarge = fmt.Errorf("size parameter must be <= %d", MaxWindowSize)
)

// ParsePaginationParams extracts the page number from HTTP request query parameters.
//
// Behavior:
//   - Missing parameter: Returns page=1, no error
//   - Empty parameter: Returns page=1, no error
//   - Any integer: Returns the number as is; out of range pages are clamped by the window calculator
//   - Invalid format (non-numeric): Returns 0, error
func ParsePaginationParams(r *http.Request) (int, error) {
	pageStr := r.URL.Query().Get(ParamPage)

	// Default to page 1 if not specified
	if pageStr == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidPageFormat, err)
	}
	return page, nil
}

// ParseWindowParams builds a window request from the query string.
// Parameters other than total fall back to defaults when absent.
// Range checks are left to window.Compute.
func ParseWindowParams(r *http.Request, defaults WindowDefaults) (window.Request, error) {
	q := r.URL.Query()
	req := window.Request{
		ItemsPerPage: defaults.PageSize,
		Size:         defaults.Size,
		Strategy:     defaults.Strategy,
	}

	totalStr := q.Get(ParamTotal)
	if totalStr == "" {
		return req, ErrMissingTotal
	}
	total, err := strconv.ParseInt(totalStr, 10, 64)
	if err != nil {
		return req, fmt.Errorf("%w %q: %w", ErrInvalidNumber, ParamTotal, err)
	}
	req.TotalItems = total

	if req.ItemsPerPage, err = optionalInt(q, ParamPerPage, defaults.PageSize); err != nil {
		return req, err
	}
	if req.Size, err = optionalInt(q, ParamSize, defaults.Size); err != nil {
		return req, err
	}
	if req.Size > MaxWindowSize {
		return req, ErrSizeTooLarge
	}
	if req.CurrentPage, err = ParsePaginationParams(r); err != nil {
		return req, err
	}

	if s := q.Get(ParamStrategy); s != "" {
		if req.Strategy, err = window.ParseStrategy(s); err != nil {
			return req, err
		}
	}
	return req, nil
}

func optionalInt(q url.Values, name string, fallback int) (int, error) {
	s := q.Get(name)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidNumber, name, err)
	}
	return v, nil
}

// WindowDefaults are applied to requests that omit a parameter.
type WindowDefaults struct {
	PageSize int
	Size     int
	Strategy window.Strategy
}
