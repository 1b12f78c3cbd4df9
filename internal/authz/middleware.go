package authz

import (
	"context"
	"encoding/json"
	"net/http"
)

type ctxViewerKey struct{}

// WithViewer attaches the viewer's authorization context to the request
// context. The session middleware calls this once per request.
func WithViewer(ctx context.Context, viewer Context) context.Context {
	return context.WithValue(ctx, ctxViewerKey{}, viewer)
}

// ViewerFromRequest extracts the viewer context set by WithViewer. Requests
// that never passed through the session middleware get an unauthenticated
// guest context.
func ViewerFromRequest(r *http.Request) Context {
	v := r.Context().Value(ctxViewerKey{})
	if v == nil {
		return Context{Role: RoleGuest}
	}
	viewer, ok := v.(Context)
	if !ok {
		return Context{Role: RoleGuest}
	}
	return viewer
}

// Require gates a subtree on the given requirement. Denials answer with a
// bare error body (the fallback presentation mode).
func Require(req Requirement) func(http.Handler) http.Handler {
	return guard(req, false)
}

// RequireWithNotice gates a subtree like Require, but denials carry the
// explanatory notice for the failed check.
func RequireWithNotice(req Requirement) func(http.Handler) http.Handler {
	return guard(req, true)
}

// Allow runs the guard for a single handler and writes the denial notice
// when the viewer is refused. Handlers whose requirement depends on
// per-request state (a resource id from the URL) use this instead of a
// subtree middleware.
func Allow(w http.ResponseWriter, viewer Context, req Requirement) bool {
	d := Decide(viewer, req)
	if d.Allowed {
		return true
	}
	status := http.StatusForbidden
	if d.Category == DenialAuthRequired {
		status = http.StatusUnauthorized
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(NoticeFor(d.Category))
	return false
}

func guard(req Requirement, notice bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := Decide(ViewerFromRequest(r), req)
			if d.Allowed {
				next.ServeHTTP(w, r)
				return
			}

			status := http.StatusForbidden
			msg := "forbidden"
			if d.Category == DenialAuthRequired {
				status = http.StatusUnauthorized
				msg = "authentication required"
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			if notice {
				_ = json.NewEncoder(w).Encode(NoticeFor(d.Category))
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": msg,
			})
		})
	}
}
