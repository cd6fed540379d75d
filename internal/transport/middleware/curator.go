package middleware

import (
	"net/http"
	"strings"

	"github.com/styleforge/backend/pkg/ctxutil"
)

// Curator reads the optional X-Curator header and stores the identity in the
// request context so refinements can be attributed. There is no
// authentication: the header is trusted as-is.
func Curator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		curator := strings.TrimSpace(r.Header.Get("X-Curator"))
		if curator != "" {
			r = r.WithContext(ctxutil.WithCurator(r.Context(), curator))
		}
		next.ServeHTTP(w, r)
	})
}
