package main

import (
	"strings"
	"testing"
)

func TestRunFailsBeforeCallingTheAPI(t *testing.T) {
	testCases := []struct {
		desc         string
		env          map[string]string
		origins      []string
		destinations []string
		wantErr      string
	}{
		{
			desc:         "missing destinations",
			origins:      []string{"a"},
			destinations: nil,
			wantErr:      "-destination",
		},
		{
			desc:         "missing api key",
			env:          map[string]string{"GOOGLE_MAPS_API_KEY": ""},
			origins:      []string{"a"},
			destinations: []string{"b"},
			wantErr:      "GOOGLE_MAPS_API_KEY",
		},
		{
			desc:         "unknown backend",
			env:          map[string]string{"GOOGLE_MAPS_API_KEY": "k", "DISTANCE_BACKEND": "grpc"},
			origins:      []string{"a"},
			destinations: []string{"b"},
			wantErr:      "DISTANCE_BACKEND",
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			for k, v := range tC.env {
				t.Setenv(k, v)
			}

			err := run("", "", tC.origins, tC.destinations)
			if err == nil || !strings.Contains(err.Error(), tC.wantErr) {
				t.Errorf("got %v, want an error mentioning %s", err, tC.wantErr)
			}
		})
	}
}
