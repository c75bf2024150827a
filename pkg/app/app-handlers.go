package app

import (
	"log/slog"
	"net/http"

	"github.com/sgaunet/pagewindow/pkg/dto"
	"github.com/sgaunet/pagewindow/pkg/window"
)

// parseRequest reads the window request and writes a 400 response when it is invalid.
// Callers return when ok is false.
func (s *App) parseRequest(w http.ResponseWriter, r *http.Request) (window.Request, bool) {
	req, err := ParseWindowParams(r, s.defaults())
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		s.log.Debug("Invalid window request",
			slog.String("query", r.URL.RawQuery),
			slog.String("error", err.Error()))
		WriteJSONError(w, http.StatusBadRequest, errorCode(err), err.Error())
		return req, false
	}
	return req, true
}

// WindowHandler returns the page window for the query parameters.
func (s *App) WindowHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := s.parseRequest(w, r)
	if !ok {
		return
	}

	win, err := window.Compute(req)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, errorCode(err), err.Error())
		return
	}

	s.log.Debug("Window computed",
		slog.Int64("total", req.TotalItems),
		slog.Int("page", win.Current),
		slog.Int("begin", win.Begin),
		slog.Int("end", win.End),
		slog.String("strategy", req.Strategy.String()))
	WriteJSONSuccess(w, http.StatusOK, dto.NewWindowResult(win, req))
}

// PaginationHandler returns the listing metadata, window included, for the query parameters.
func (s *App) PaginationHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := s.parseRequest(w, r)
	if !ok {
		return
	}

	paging, err := dto.NewPaginationInfo(req.TotalItems, req.ItemsPerPage, req.CurrentPage, dto.WindowOptions{
		Size:     req.Size,
		Strategy: req.Strategy,
	})
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, errorCode(err), err.Error())
		return
	}
	WriteJSONSuccess(w, http.StatusOK, paging)
}

// HealthHandler reports readiness; it answers 503 until the server listens and while it drains.
func (s *App) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	info := s.health.GetHealthInfo()
	if !s.health.IsHealthy() {
		WriteJSONSuccess(w, http.StatusServiceUnavailable, info)
		return
	}
	WriteJSONSuccess(w, http.StatusOK, info)
}
