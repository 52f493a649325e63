package distancematrix

import (
	"context"
	"fmt"
	"net/http"

	"googlemaps.github.io/maps"

	"github.com/manzanit0/googletoolkit/pkg/query"
	"github.com/manzanit0/googletoolkit/pkg/whttp"
)

const DefaultBaseURL = "https://maps.googleapis.com/maps/api/distancematrix/json?"

type Client interface {
	GetDistanceMatrix(ctx context.Context, origins, destinations []string) (*Matrix, error)
}

// StatusError is returned when the API answers with a top-level status other
// than OK, e.g. REQUEST_DENIED for an invalid key.
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("distance matrix status %s", e.Status)
	}

	return fmt.Sprintf("distance matrix status %s: %s", e.Status, e.Message)
}

const (
	BackendHTTP = "http"
	BackendSDK  = "sdk"
)

// NewClient builds the client for backend, BackendHTTP or BackendSDK. Both
// send their requests through h and honour the same options.
func NewClient(backend string, h *http.Client, apiKey string, opts ...Option) (Client, error) {
	switch backend {
	case BackendHTTP, "":
		return NewGoogleClient(h, apiKey, opts...), nil
	case BackendSDK:
		c, err := maps.NewClient(maps.WithAPIKey(apiKey), maps.WithHTTPClient(h))
		if err != nil {
			return nil, fmt.Errorf("create maps client: %w", err)
		}

		return NewMapsClient(c, opts...), nil
	default:
		return nil, fmt.Errorf("unknown distance matrix backend %q", backend)
	}
}

type clientOptions struct {
	baseURL       string
	mode          string
	units         string
	language      string
	departureTime string
}

func newClientOptions(opts []Option) clientOptions {
	o := clientOptions{baseURL: DefaultBaseURL}
	for _, f := range opts {
		f(&o)
	}

	return o
}

// params are sent after the key, in a fixed order.
func (o clientOptions) params() query.Params {
	var p query.Params
	for _, kv := range [][2]string{
		{"mode", o.mode},
		{"units", o.units},
		{"language", o.language},
		{"departure_time", o.departureTime},
	} {
		if kv[1] != "" {
			p = p.Add(kv[0], query.Scalar(kv[1]))
		}
	}

	return p
}

type Option func(*clientOptions)

// WithBaseURL only applies to the HTTP backend.
func WithBaseURL(u string) Option {
	return func(o *clientOptions) {
		o.baseURL = u
	}
}

// WithMode sets the travel mode: driving, walking, bicycling or transit.
func WithMode(mode string) Option {
	return func(o *clientOptions) {
		o.mode = mode
	}
}

// WithUnits sets the unit system of the text fields: metric or imperial.
func WithUnits(units string) Option {
	return func(o *clientOptions) {
		o.units = units
	}
}

func WithLanguage(lang string) Option {
	return func(o *clientOptions) {
		o.language = lang
	}
}

// WithDepartureTime accepts a unix timestamp or "now".
func WithDepartureTime(t string) Option {
	return func(o *clientOptions) {
		o.departureTime = t
	}
}

func NewGoogleClient(h *http.Client, apiKey string, opts ...Option) *gdm {
	return &gdm{h: h, apiKey: apiKey, options: newClientOptions(opts)}
}

type gdm struct {
	h       *http.Client
	apiKey  string
	options clientOptions
}

var _ Client = (*gdm)(nil)

func (c *gdm) GetDistanceMatrix(ctx context.Context, origins, destinations []string) (*Matrix, error) {
	url := c.RequestURL(origins, destinations)

	var d Response
	if err := whttp.GetJSON(ctx, c.h, url, &d); err != nil {
		return nil, err
	}

	if d.Status != "" && d.Status != StatusOK {
		return nil, &StatusError{Status: d.Status, Message: d.ErrorMessage}
	}

	return NewMatrix(origins, destinations, &d), nil
}

// RequestURL is the URL GetDistanceMatrix issues its GET to.
func (c *gdm) RequestURL(origins, destinations []string) string {
	params := query.Params{}.
		Add("origins", places(origins)).
		Add("destinations", places(destinations)).
		Add("key", query.Scalar(c.apiKey))

	params = append(params, c.options.params()...)

	return query.Build(c.options.baseURL, params, query.SpaceToPlus)
}

// places encodes several addresses pipe separated, as the API expects.
func places(p []string) query.Value {
	if len(p) == 1 {
		return query.Scalar(p[0])
	}

	return query.NewList("|", p...)
}
