package app

import "net/http"

// initRouter initializes the router of the App
func (s *App) initRouter() {
	s.router.Use(s.loggingMiddleware)
	s.router.HandleFunc("/api/window", s.WindowHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/api/pagination", s.PaginationHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.HealthHandler).Methods(http.MethodGet)
	s.srv.Handler = s.router
}
