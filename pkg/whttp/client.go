package whttp

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// RedactedParams are query params whose values never make it to the logs.
var RedactedParams = []string{"key", "access_key", "appid"}

type LoggingRoundTripper struct {
	Proxied http.RoundTripper
}

func (lrt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	u := RedactURL(req.URL)

	t0 := time.Now()
	res, err := lrt.Proxied.RoundTrip(req)
	if err != nil {
		slog.ErrorContext(ctx, "outbound request failed",
			"http.request.method", req.Method,
			"http.request.url", u,
			"error", err.Error())
		return res, err
	}

	b := bytes.NewBuffer(make([]byte, 0))
	reader := io.TeeReader(res.Body, b)

	body, _ := io.ReadAll(reader)
	defer res.Body.Close()

	slog.InfoContext(ctx, "outbound request",
		"http.request.method", req.Method,
		"http.request.url", u,
		"http.request.duration_ms", time.Since(t0).Milliseconds(),
		"http.response.status", res.Status,
		"http.response.body", string(body))

	res.Body = io.NopCloser(b)

	return res, nil
}

// RedactURL renders u with the values of RedactedParams masked.
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	q := u.Query()
	var redacted bool
	for _, p := range RedactedParams {
		if q.Has(p) {
			q.Set(p, "*****")
			redacted = true
		}
	}

	if !redacted {
		return u.String()
	}

	c := *u
	c.RawQuery = q.Encode()
	return c.String()
}

func NewLoggingClient() *http.Client {
	return &http.Client{
		Transport: LoggingRoundTripper{Proxied: http.DefaultTransport},
		Timeout:   10 * time.Second,
	}
}
