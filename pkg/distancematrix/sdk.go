package distancematrix

import (
	"context"

	"github.com/pkg/errors"
	"googlemaps.github.io/maps"
)

// NewMapsClient serves distance matrices through the official Maps SDK. The
// SDK decodes durations into time.Duration, so duration texts are rendered by
// Go (e.g. "8m24s") instead of coming from the API.
func NewMapsClient(c *maps.Client, opts ...Option) *sdkClient {
	return &sdkClient{client: c, options: newClientOptions(opts)}
}

type sdkClient struct {
	client  *maps.Client
	options clientOptions
}

var _ Client = (*sdkClient)(nil)

func (c *sdkClient) GetDistanceMatrix(ctx context.Context, origins, destinations []string) (*Matrix, error) {
	r := c.request(origins, destinations)

	res, err := c.client.DistanceMatrix(ctx, &r)
	if err != nil {
		return nil, errors.Wrap(err, "distancematrix.sdkClient.GetDistanceMatrix")
	}

	return NewMatrix(origins, destinations, fromSDKResponse(res)), nil
}

func (c *sdkClient) request(origins, destinations []string) maps.DistanceMatrixRequest {
	return maps.DistanceMatrixRequest{
		Origins:       origins,
		Destinations:  destinations,
		Mode:          maps.Mode(c.options.mode),
		Units:         maps.Units(c.options.units),
		Language:      c.options.language,
		DepartureTime: c.options.departureTime,
	}
}

func fromSDKResponse(res *maps.DistanceMatrixResponse) *Response {
	if res == nil {
		return &Response{}
	}

	r := &Response{
		Status:               StatusOK,
		OriginAddresses:      res.OriginAddresses,
		DestinationAddresses: res.DestinationAddresses,
		Rows:                 make([]Row, 0, len(res.Rows)),
	}

	for _, row := range res.Rows {
		elements := make([]Element, 0, len(row.Elements))
		for _, e := range row.Elements {
			if e == nil {
				elements = append(elements, Element{})
				continue
			}

			elements = append(elements, Element{
				Status: e.Status,
				Distance: Measure{
					Value: e.Distance.Meters,
					Text:  e.Distance.HumanReadable,
				},
				Duration: Measure{
					Value: int(e.Duration.Seconds()),
					Text:  e.Duration.String(),
				},
			})
		}

		r.Rows = append(r.Rows, Row{Elements: elements})
	}

	return r
}
