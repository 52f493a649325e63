package distancematrix_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/manzanit0/googletoolkit/pkg/distancematrix"
)

func newTestMatrix() *distancematrix.Matrix {
	return distancematrix.NewMatrix(origins, destinations, &distancematrix.Response{
		Status: "OK",
		Rows: []distancematrix.Row{
			{Elements: []distancematrix.Element{
				{Status: "OK", Distance: distancematrix.Measure{Value: 5099, Text: "5.1 km"}, Duration: distancematrix.Measure{Value: 504, Text: "8 mins"}},
				{Status: "OK", Distance: distancematrix.Measure{Value: 3245, Text: "3.2 km"}, Duration: distancematrix.Measure{Value: 371, Text: "6 mins"}},
			}},
			{Elements: []distancematrix.Element{
				{Status: "OK", Distance: distancematrix.Measure{Value: 7921, Text: "7.9 km"}, Duration: distancematrix.Measure{Value: 713, Text: "12 mins"}},
				{Status: "OK", Distance: distancematrix.Measure{Value: 2418, Text: "2.4 km"}, Duration: distancematrix.Measure{Value: 297, Text: "5 mins"}},
			}},
		},
	})
}

func TestMatrixViews(t *testing.T) {
	m := newTestMatrix()

	if diff := cmp.Diff([][]string{
		{"5099(5.1 km)", "3245(3.2 km)"},
		{"7921(7.9 km)", "2418(2.4 km)"},
	}, m.DistanceTable()); diff != "" {
		t.Errorf("distance table mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([][]int{{5099, 3245}, {7921, 2418}}, m.DistanceMatrix()); diff != "" {
		t.Errorf("distance matrix mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([][]string{
		{"504(8 mins)", "371(6 mins)"},
		{"713(12 mins)", "297(5 mins)"},
	}, m.DurationTable()); diff != "" {
		t.Errorf("duration table mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([][]int{{504, 371}, {713, 297}}, m.DurationMatrix()); diff != "" {
		t.Errorf("duration matrix mismatch (-want +got):\n%s", diff)
	}

	raw := m.RawTable()
	if len(raw) != 2 || len(raw[1]) != 2 || raw[1][0].Distance.Value != 7921 {
		t.Errorf("unexpected raw table %v", raw)
	}
}

func TestMatrixTablesAreConsistent(t *testing.T) {
	m := newTestMatrix()

	table := m.DistanceTable()
	matrix := m.DistanceMatrix()
	for i := range table {
		for j := range table[i] {
			prefix := table[i][j][:strings.Index(table[i][j], "(")]
			v, err := strconv.Atoi(prefix)
			if err != nil {
				t.Fatalf("parse %q: %v", table[i][j], err)
			}

			if v != matrix[i][j] {
				t.Errorf("[%d][%d]: table says %d, matrix says %d", i, j, v, matrix[i][j])
			}
		}
	}
}

func TestDistanceBetween(t *testing.T) {
	testCases := []struct {
		desc        string
		origin      string
		destination string
		want        string
		found       bool
	}{
		{
			desc:        "known origin and destination",
			origin:      "28 rosebank dr",
			destination: "1235 Military Trail",
			want:        "7921(7.9 km)",
			found:       true,
		},
		{
			desc:        "unknown origin with a valid destination",
			origin:      "1 nowhere st",
			destination: "1235 Military Trail",
		},
		{
			desc:        "valid origin with an unknown destination",
			origin:      "17 wiggens crt",
			destination: "1 nowhere st",
		},
		{
			desc:        "labels are matched exactly",
			origin:      "17 Wiggens Crt",
			destination: "2260 Markham Rd",
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			got, found := newTestMatrix().DistanceBetween(tC.origin, tC.destination)
			if found != tC.found {
				t.Fatalf("got found %t, want %t", found, tC.found)
			}

			if got != tC.want {
				t.Errorf("got %q, want %q", got, tC.want)
			}
		})
	}
}

func TestDurationBetween(t *testing.T) {
	got, found := newTestMatrix().DurationBetween("17 wiggens crt", "2260 Markham Rd")
	if !found || got != "371(6 mins)" {
		t.Errorf("got %q (found %t), want 371(6 mins)", got, found)
	}
}

func TestBetweenWithShortResponse(t *testing.T) {
	m := distancematrix.NewMatrix(origins, destinations, &distancematrix.Response{Status: "OK"})

	if _, found := m.DistanceBetween("17 wiggens crt", "2260 Markham Rd"); found {
		t.Error("expected a miss when the response has no rows")
	}

	if len(m.DistanceTable()) != 0 {
		t.Errorf("expected empty table, got %v", m.DistanceTable())
	}
}

func TestMatrixIsImmutable(t *testing.T) {
	in := []string{"17 wiggens crt", "1235 military trail"}
	r := &distancematrix.Response{
		Status:          "OK",
		OriginAddresses: []string{"17 Wiggens Ct"},
		Rows: []distancematrix.Row{
			{Elements: []distancematrix.Element{{Distance: distancematrix.Measure{Value: 5099, Text: "5.1 km"}}}},
		},
	}
	m := distancematrix.NewMatrix(in, destinations, r)

	testCases := []struct {
		desc   string
		mutate func()
	}{
		{
			desc:   "caller origins",
			mutate: func() { in[0] = "changed" },
		},
		{
			desc:   "caller response",
			mutate: func() { r.Rows[0].Elements[0].Distance.Value = 1 },
		},
		{
			desc:   "raw table",
			mutate: func() { m.RawTable()[0][0].Distance.Value = 1 },
		},
		{
			desc:   "origins accessor",
			mutate: func() { m.Origins()[0] = "changed" },
		},
		{
			desc:   "response accessor",
			mutate: func() { m.Response().Rows[0].Elements[0].Distance.Value = 1 },
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			tC.mutate()

			if diff := cmp.Diff([][]string{{"5099(5.1 km)"}}, m.DistanceTable()); diff != "" {
				t.Errorf("distance table mismatch (-want +got):\n%s", diff)
			}

			if got, found := m.DistanceBetween("17 wiggens crt", destinations[0]); !found || got != "5099(5.1 km)" {
				t.Errorf("got %q (found %t), want 5099(5.1 km)", got, found)
			}

			if m.Response().OriginAddresses[0] != "17 Wiggens Ct" {
				t.Errorf("got origin address %q", m.Response().OriginAddresses[0])
			}
		})
	}
}
