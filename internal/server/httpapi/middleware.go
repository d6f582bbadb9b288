package httpapi

import (
	"context"
	"net/http"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// TokenHeaderName carries the bearer token on every gated request.
const TokenHeaderName = "X-Token"

// withAuth resolves the X-Token session and injects the acting user id into
// the request context. Missing, expired and revoked tokens all get the same
// 401.
func (s *Server) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := s.sessions.Resolve(r.Context(), r.Header.Get(TokenHeaderName))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// actingUser returns the user id stored by withAuth.
func actingUser(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

// requesterOrAnonymous resolves the token leniently for the content route:
// an invalid token reads the same as no token at all.
func (s *Server) requesterOrAnonymous(r *http.Request) string {
	token := r.Header.Get(TokenHeaderName)
	if token == "" {
		return ""
	}
	userID, err := s.sessions.Resolve(r.Context(), token)
	if err != nil {
		return ""
	}
	return userID
}
