package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"strings"

	"github.com/gin-gonic/gin"
)

// Recovery logs panics with the frames that led to them and answers with a
// 500.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			slog.ErrorContext(c.Request.Context(), "recovered from panic",
				"panic", fmt.Sprint(r),
				"frames", panicFrames(32))

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": http.StatusText(http.StatusInternalServerError),
			})
		}()

		c.Next()
	}
}

// panicFrames lists up to limit "function file:line" entries starting at the
// function that panicked. Frames of the runtime itself are left out.
func panicFrames(limit int) []string {
	pcs := make([]uintptr, limit)
	frames := runtime.CallersFrames(pcs[:runtime.Callers(3, pcs)])

	var out []string
	for {
		f, more := frames.Next()
		if f.Function != "" && !strings.HasPrefix(f.Function, "runtime.") {
			out = append(out, fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line))
		}

		if !more {
			return out
		}
	}
}
