package http

import (
	"context"
	"net/http"
	"strings"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

// customerIDKey is the context key for the authenticated customer ID.
const customerIDKey contextKey = "customer_id"

// CustomerIDFromHeader is middleware that reads the X-Customer-ID header and
// stores it in the request context. If the header is absent the request is
// rejected with 401 Unauthorized.
func CustomerIDFromHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cid := r.Header.Get("X-Customer-ID")
		if cid == "" {
			writeJSON(w, http.StatusUnauthorized, response{
				Error: &errorResponse{Code: "UNAUTHORIZED", Message: "authentication required"},
			})
			return
		}
		ctx := context.WithValue(r.Context(), customerIDKey, cid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// customerIDFromContext extracts the authenticated customer ID from the request
// context. Returns the customer ID and true if present, or empty string and
// false otherwise.
func customerIDFromContext(ctx context.Context) (string, bool) {
	cid, ok := ctx.Value(customerIDKey).(string)
	return cid, ok && cid != ""
}

// ContentTypeJSON enforces that requests with a body have Content-Type: application/json.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > 0 || r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct != "" && !strings.HasPrefix(ct, "application/json") {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnsupportedMediaType)
				_, _ = w.Write([]byte(`{"error":{"code":"UNSUPPORTED_MEDIA_TYPE","message":"Content-Type must be application/json"}}`))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
