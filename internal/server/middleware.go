package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Context key types to avoid collisions.
type contextKey string

const (
	contextKeyUserID contextKey = "user_id"
	contextKeyRole   contextKey = "role"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Service) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration_ms": time.Since(started).Milliseconds(),
		}).Info("http request")
	})
}

// RequireAuth checks the bearer token issued at login and adds the caller
// to the request context.
func (s *Service) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			s.respondJSON(w, http.StatusUnauthorized, map[string]string{"message": "authentication required"})
			return
		}

		userID, ok := userIDFromToken(token)
		if !ok {
			s.respondJSON(w, http.StatusUnauthorized, map[string]string{"message": "authentication required"})
			return
		}

		user, err := s.store.GetUser(r.Context(), userID)
		if err != nil {
			s.logger.WithError(err).WithField("user_id", userID).Debug("bearer token rejected")
			s.respondJSON(w, http.StatusUnauthorized, map[string]string{"message": "authentication required"})
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, contextKeyUserID, user.ID)
		ctx = context.WithValue(ctx, contextKeyRole, user.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Service) StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if path != "/" && strings.HasSuffix(path, "/") {
			newURL := *r.URL
			newURL.Path = strings.TrimSuffix(path, "/")

			http.Redirect(w, r, newURL.String(), http.StatusMovedPermanently)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// Tokens have the shape "tok-<userID>-<suffix>".
func userIDFromToken(token string) (int, bool) {
	rest, ok := strings.CutPrefix(token, "tok-")
	if !ok {
		return 0, false
	}

	idPart, _, ok := strings.Cut(rest, "-")
	if !ok {
		return 0, false
	}

	id, err := strconv.Atoi(idPart)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
