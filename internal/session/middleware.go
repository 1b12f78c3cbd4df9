package session

import (
	"net/http"
	"strings"

	"github.com/ichigoyakuza/findmydjapp-sub001/internal/authz"
)

// Middleware resolves the bearer token (if any) into a viewer context for
// the guard. Missing or invalid tokens degrade to a guest context rather
// than failing the request; protected routes decide what guests may see.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer := Guest()

		if raw := bearerToken(r); raw != "" {
			if claims, err := m.VerifyToken(raw); err == nil {
				if a, ok := m.Account(claims.UserID); ok {
					viewer = m.Viewer(a)
				}
			}
		}

		next.ServeHTTP(w, r.WithContext(authz.WithViewer(r.Context(), viewer)))
	})
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
