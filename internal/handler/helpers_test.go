package handler

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
)

// routeWithID mounts a handler on a chi router so URL params resolve in tests
func routeWithID(t *testing.T, h http.HandlerFunc, pattern string) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	r.Get(pattern, h)
	return r
}
