package whttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetJSON issues a GET to url and decodes the response body into v. Transport
// errors are returned as they come from the client.
func GetJSON(ctx context.Context, h *http.Client, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	res, err := h.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		responseBody := &bytes.Buffer{}
		_, err := responseBody.ReadFrom(res.Body)
		if err != nil {
			return err
		}

		return fmt.Errorf("unexpected response: (%d) %s", res.StatusCode, responseBody.String())
	}

	return json.NewDecoder(res.Body).Decode(v)
}
