package middleware

import (
	"net/http"

	"practice-management-api/pkg/response"

	"github.com/sirupsen/logrus"
)

// RecoveryMiddleware converts panics into a generic 500. The panic value is
// logged server-side and never reaches the client.
type RecoveryMiddleware struct {
	log *logrus.Logger
}

func NewRecoveryMiddleware(log *logrus.Logger) *RecoveryMiddleware {
	return &RecoveryMiddleware{log: log}
}

func (m *RecoveryMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.log.WithFields(logrus.Fields{
					"method": req.Method,
					"path":   req.URL.Path,
					"panic":  rec,
				}).Error("Recovered from panic in handler")
				response.InternalServerError(w)
			}
		}()

		next.ServeHTTP(w, req)
	})
}
