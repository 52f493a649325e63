package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/ksuid"
)

type CtxKey string

const CtxKeyTraceID CtxKey = "trace_id"

const HeaderTraceID = "X-Trace-Id"

// TraceID tags every request context with a trace id, reusing the one sent
// by the caller when present.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(HeaderTraceID)
		if traceID == "" {
			traceID = ksuid.New().String()
		}

		ctx := context.WithValue(c.Request.Context(), CtxKeyTraceID, traceID)
		c.Request = c.Request.Clone(ctx)
		c.Header(HeaderTraceID, traceID)

		c.Next()
	}
}

func TraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(CtxKeyTraceID).(string)
	return traceID, ok
}
