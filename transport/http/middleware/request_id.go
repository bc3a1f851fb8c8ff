package middleware

import (
	"context"
	"net/http"
	"salon/shared/constant"

	"github.com/google/uuid"
)

const maxRequestIDLength = 128

// RequestID keeps a caller supplied X-Request-ID or mints a new one, echoes it on the
// response and stores it in the request context for log correlation.
func (a *appMiddleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constant.RequestHeaderRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		w.Header().Set(constant.RequestHeaderRequestID, requestID)

		ctx := context.WithValue(r.Context(), constant.ContextKeyRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
