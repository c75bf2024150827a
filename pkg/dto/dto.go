// Package dto provides the data transfer objects returned by the pagewindow API.
package dto

import "github.com/sgaunet/pagewindow/pkg/window"

// WindowResult is the API representation of a computed page window.
type WindowResult struct {
	window.Window
	Strategy window.Strategy `json:"strategy"`
	Size     int             `json:"size"`
	Pages    []int           `json:"pages"`
	HasPrev  bool            `json:"has_prev_window"`
	HasNext  bool            `json:"has_next_window"`
}

// NewWindowResult wraps w with the request settings that produced it.
func NewWindowResult(w window.Window, req window.Request) WindowResult {
	pages := w.Pages()
	if pages == nil {
		pages = []int{}
	}
	return WindowResult{
		Window:   w,
		Strategy: req.Strategy,
		Size:     req.Size,
		Pages:    pages,
		HasPrev:  w.HasPrevWindow(),
		HasNext:  w.HasNextWindow(),
	}
}
