package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// teeWriter keeps a copy of what the handler writes to the client.
type teeWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *teeWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.body.Write(b[:n])
	return n, err
}

func (w *teeWriter) WriteString(s string) (int, error) {
	n, err := w.ResponseWriter.WriteString(s)
	w.body.WriteString(s[:n])
	return n, err
}

// Logger logs every inbound request once it has been served. Response bodies
// are only captured in debug mode since they carry whole distance matrices.
func Logger(debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tee *teeWriter
		if debug {
			tee = &teeWriter{ResponseWriter: c.Writer}
			c.Writer = tee
		}

		t0 := time.Now()

		c.Next()

		body := "<redacted>"
		if tee != nil {
			body = tee.body.String()
		}

		slog.Log(c.Request.Context(), levelFor(c.Writer.Status()), "inbound request",
			slog.Group("http",
				slog.Group("request",
					"duration_ms", time.Since(t0).Milliseconds(),
					"method", c.Request.Method,
					"route", c.FullPath(),
					"content_length", c.Request.ContentLength,
					slog.Group("url",
						"path", c.Request.URL.Path,
						"query_params", redactQuery(c.Request),
					),
				),
				slog.Group("response",
					"status", c.Writer.Status(),
					"size", c.Writer.Size(),
					"body", body,
				),
			),
			"errors", c.Errors.ByType(gin.ErrorTypeAny).String(),
		)
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func redactQuery(r *http.Request) map[string][]string {
	q := r.URL.Query()
	for _, p := range []string{"key", "access_key"} {
		if q.Has(p) {
			q.Set(p, "*****")
		}
	}

	return q
}
