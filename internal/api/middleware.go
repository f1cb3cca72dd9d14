// internal/api/middleware.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"balance-ledger/internal/api/handler"
	"balance-ledger/internal/auth"
	"balance-ledger/internal/logger"
	"balance-ledger/internal/util"
)

// Authenticate resolves the Authorization bearer token into an identity and
// stores it in the request context. Requests without a valid token are
// rejected with 401 before any handler logic runs.
func Authenticate(resolver auth.Resolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.Ctx(r.Context())

			header := r.Header.Get("Authorization")
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				log.Debug().Str("header", header).Msg("invalid Authorization header")
				handler.WriteError(w, http.StatusUnauthorized, util.ErrUnauthorized.Error())
				return
			}

			ident, err := resolver.Resolve(r.Context(), parts[1])
			if err != nil {
				log.Debug().Err(err).Msg("token resolution failed")
				handler.WriteError(w, http.StatusUnauthorized, util.ErrUnauthorized.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.NewContext(r.Context(), ident)))
		})
	}
}

// RequestLogger injects the application logger into the request context and
// logs one line per completed request.
func RequestLogger(l logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			ctx := l.Logger.WithContext(r.Context())

			defer func() {
				l.Info().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", ww.Status()).
					Dur("duration", time.Since(start)).
					Msg("request")
			}()

			next.ServeHTTP(ww, r.WithContext(ctx))
		})
	}
}
