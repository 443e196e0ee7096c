package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/controlhs/datacore/internal/core/domain"
	"github.com/controlhs/datacore/internal/core/service"
)

type ctxKey string

const sessionCtxKey ctxKey = "session"

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return auth[len(prefix):]
}

// withAuth resolves the bearer token into a session snapshot and
// requires a signed-in user of any role. An unreachable session backend
// answers 503 so the client can retry.
func (h *HTTPHandler) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := h.auth.Resolve(r.Context(), bearerToken(r))
		if state.Loading {
			writeError(w, http.StatusServiceUnavailable, "session backend unavailable")
			return
		}
		if state.User == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), sessionCtxKey, state.User)
		next(w, r.WithContext(ctx))
	}
}

// withAdmin gates a handler on the access policy. The three outcomes
// map to 503, 403 and handler execution.
func (h *HTTPHandler) withAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := h.auth.Resolve(r.Context(), bearerToken(r))

		switch h.access.Evaluate(state) {
		case service.ShowLoading:
			writeError(w, http.StatusServiceUnavailable, "session backend unavailable")
		case service.ShowDenied:
			writeError(w, http.StatusForbidden, "access denied")
		default:
			ctx := context.WithValue(r.Context(), sessionCtxKey, state.User)
			next(w, r.WithContext(ctx))
		}
	}
}

func sessionFromContext(ctx context.Context) *domain.SessionUser {
	user, _ := ctx.Value(sessionCtxKey).(*domain.SessionUser)
	return user
}
