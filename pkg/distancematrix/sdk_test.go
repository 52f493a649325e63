package distancematrix

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"googlemaps.github.io/maps"
)

func TestFromSDKResponse(t *testing.T) {
	res := &maps.DistanceMatrixResponse{
		OriginAddresses:      []string{"17 Wiggens Ct"},
		DestinationAddresses: []string{"1235 Military Trail", "2260 Markham Rd"},
		Rows: []maps.DistanceMatrixElementsRow{
			{Elements: []*maps.DistanceMatrixElement{
				{
					Status:   "OK",
					Duration: 504 * time.Second,
					Distance: maps.Distance{HumanReadable: "5.1 km", Meters: 5099},
				},
				nil,
			}},
		},
	}

	want := &Response{
		Status:               StatusOK,
		OriginAddresses:      []string{"17 Wiggens Ct"},
		DestinationAddresses: []string{"1235 Military Trail", "2260 Markham Rd"},
		Rows: []Row{
			{Elements: []Element{
				{
					Status:   "OK",
					Distance: Measure{Value: 5099, Text: "5.1 km"},
					Duration: Measure{Value: 504, Text: "8m24s"},
				},
				{},
			}},
		},
	}

	if diff := cmp.Diff(want, fromSDKResponse(res)); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestFromSDKResponseNil(t *testing.T) {
	if got := fromSDKResponse(nil); len(got.Rows) != 0 {
		t.Errorf("expected empty response, got %v", got)
	}
}

func TestSDKRequestOptions(t *testing.T) {
	c := NewMapsClient(nil, WithMode("walking"), WithUnits("imperial"), WithLanguage("es"), WithDepartureTime("now"))

	want := maps.DistanceMatrixRequest{
		Origins:       []string{"a"},
		Destinations:  []string{"b", "c"},
		Mode:          maps.TravelModeWalking,
		Units:         maps.UnitsImperial,
		Language:      "es",
		DepartureTime: "now",
	}

	if diff := cmp.Diff(want, c.request([]string{"a"}, []string{"b", "c"})); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}
}
