package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/api-sage/corebank-client/src/internal/logger"
	"github.com/google/uuid"
)

const CorrelationIDHeader = "X-Correlation-ID"

const maxCorrelationIDLength = 128

type correlationKey struct{}

// CorrelationID makes sure every request carries a correlation id. A
// caller-supplied id is kept so a resubmitted intent reuses it; otherwise a
// fresh one is generated. The id is echoed back on the response.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(CorrelationIDHeader))
			if id == "" || len(id) > maxCorrelationIDLength {
				if id != "" {
					logger.Warn("correlation middleware replaced oversized id", logger.Fields{
						"method": r.Method,
						"path":   r.URL.Path,
					})
				}
				id = uuid.NewString()
			}

			w.Header().Set(CorrelationIDHeader, id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), correlationKey{}, id)))
		})
	}
}

func CorrelationIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}
