package transport

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/mahmudhasan/clothing-shop/model"
	auditrepo "github.com/mahmudhasan/clothing-shop/repository/auditlog"
	"github.com/mahmudhasan/clothing-shop/utils/logger"
	"go.uber.org/zap"
)

// AuditMiddleware records the raw request and its outcome after the handler
// runs. The append is best-effort: a failed write is logged and swallowed, it
// never changes the client-facing response.
func AuditMiddleware(auditRepo auditrepo.AuditLogRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "invalid request body", http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(payload))

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK, captureBody: true}
			next.ServeHTTP(wrapped, r)

			headers, err := json.Marshal(r.Header)
			if err != nil {
				headers = []byte("{}")
			}

			rec := &model.AuditRecord{
				Method:          r.Method,
				URL:             requestURL(r),
				Headers:         string(headers),
				Payload:         string(payload),
				ResponseCode:    wrapped.statusCode,
				ResponseContent: wrapped.body.String(),
			}

			if err := auditRepo.Append(r.Context(), rec); err != nil {
				logger.Error("audit log append failed", zap.String("error", err.Error()))
			}
		})
	}
}

func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
