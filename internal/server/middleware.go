package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"h2hgym/internal"
	"h2hgym/internal/utils"

	"github.com/sirupsen/logrus"
)

// Context key types to avoid collisions
type contextKey string

const (
	contextKeyRequestID contextKey = "request_id"
	contextKeyVisitorID contextKey = "visitor_id"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Service) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.NanoID()
		w.Header().Set("X-Request-ID", requestID)

		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Service) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		requestID, _ := r.Context().Value(contextKeyRequestID).(string)

		s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration_ms": time.Since(started).Milliseconds(),
			"request_id":  requestID,
		}).Info("http request")
	})
}

// Visitor makes sure every page visit carries a stable visitor ID. The ID is what ties
// a pending trial submission to the page the visitor sees next.
func (s *Service) Visitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var visitorID string

		cookie, err := r.Cookie(internal.COOKIE_VISITOR_NAME)
		if err == nil {
			err = s.cookie.Decode(internal.COOKIE_VISITOR_NAME, cookie.Value, &visitorID)
			if err != nil {
				s.logger.WithError(err).Debug("discarding undecodable visitor cookie")
				visitorID = ""
			}
		}

		if visitorID == "" {
			visitorID = utils.NanoID()

			encoded, err := s.cookie.Encode(internal.COOKIE_VISITOR_NAME, visitorID)
			if err != nil {
				s.logger.WithError(err).Error("failed to encode visitor cookie")
			} else {
				http.SetCookie(w, &http.Cookie{
					Name:     internal.COOKIE_VISITOR_NAME,
					Value:    encoded,
					HttpOnly: true,
					Secure:   s.secureCookies(),
					SameSite: http.SameSiteLaxMode,
					MaxAge:   s.config.VisitorMaxAgeSec,
					Path:     "/",
				})
			}
		}

		ctx := context.WithValue(r.Context(), contextKeyVisitorID, visitorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Service) StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		// Only strip if path is not root and has trailing slash
		if path != "/" && strings.HasSuffix(path, "/") {
			newURL := *r.URL
			newURL.Path = strings.TrimSuffix(path, "/")

			http.Redirect(w, r, newURL.String(), http.StatusMovedPermanently)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func visitorIDFromContext(ctx context.Context) string {
	visitorID, _ := ctx.Value(contextKeyVisitorID).(string)
	return visitorID
}
