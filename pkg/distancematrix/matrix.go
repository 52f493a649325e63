package distancematrix

import (
	"fmt"
	"slices"
)

const StatusOK = "OK"

type Response struct {
	Status               string   `json:"status"`
	ErrorMessage         string   `json:"error_message,omitempty"`
	OriginAddresses      []string `json:"origin_addresses"`
	DestinationAddresses []string `json:"destination_addresses"`
	Rows                 []Row    `json:"rows"`
}

type Row struct {
	Elements []Element `json:"elements"`
}

type Element struct {
	Status   string  `json:"status"`
	Distance Measure `json:"distance"`
	Duration Measure `json:"duration"`
}

// Measure is a value in meters or seconds with its human readable text,
// e.g. {5099, "5.1 km"}.
type Measure struct {
	Value int    `json:"value"`
	Text  string `json:"text"`
}

func (m Measure) String() string {
	return fmt.Sprintf("%d(%s)", m.Value, m.Text)
}

func (r Response) copy() Response {
	c := r
	c.OriginAddresses = slices.Clone(r.OriginAddresses)
	c.DestinationAddresses = slices.Clone(r.DestinationAddresses)
	c.Rows = make([]Row, 0, len(r.Rows))
	for _, row := range r.Rows {
		c.Rows = append(c.Rows, Row{Elements: slices.Clone(row.Elements)})
	}

	return c
}

// Matrix is the result of one distance matrix request. Rows follow the
// origins and columns the destinations, in the order the response lists them.
// A Matrix never changes once built: it keeps its own copy of the labels and
// the response, and accessors hand out copies.
type Matrix struct {
	origins      []string
	destinations []string
	response     Response
}

func NewMatrix(origins, destinations []string, r *Response) *Matrix {
	m := &Matrix{origins: slices.Clone(origins), destinations: slices.Clone(destinations)}
	if r != nil {
		m.response = r.copy()
	}

	return m
}

// Response returns a copy of the decoded payload.
func (m *Matrix) Response() *Response {
	r := m.response.copy()
	return &r
}

func (m *Matrix) Origins() []string {
	return slices.Clone(m.origins)
}

func (m *Matrix) Destinations() []string {
	return slices.Clone(m.destinations)
}

func (m *Matrix) RawTable() [][]Element {
	return project(m.response.Rows, func(e Element) Element { return e })
}

func (m *Matrix) DistanceTable() [][]string {
	return project(m.response.Rows, func(e Element) string { return e.Distance.String() })
}

func (m *Matrix) DistanceMatrix() [][]int {
	return project(m.response.Rows, func(e Element) int { return e.Distance.Value })
}

func (m *Matrix) DurationTable() [][]string {
	return project(m.response.Rows, func(e Element) string { return e.Duration.String() })
}

func (m *Matrix) DurationMatrix() [][]int {
	return project(m.response.Rows, func(e Element) int { return e.Duration.Value })
}

// DistanceBetween looks up the formatted distance between a requested origin
// and destination. It reports false when either label wasn't part of the
// request or the response has no such cell.
func (m *Matrix) DistanceBetween(origin, destination string) (string, bool) {
	e, ok := m.between(origin, destination)
	if !ok {
		return "", false
	}

	return e.Distance.String(), true
}

func (m *Matrix) DurationBetween(origin, destination string) (string, bool) {
	e, ok := m.between(origin, destination)
	if !ok {
		return "", false
	}

	return e.Duration.String(), true
}

func (m *Matrix) between(origin, destination string) (Element, bool) {
	row, col := indexOf(m.origins, origin), indexOf(m.destinations, destination)
	if row == -1 || col == -1 {
		return Element{}, false
	}

	rows := m.response.Rows
	if row >= len(rows) || col >= len(rows[row].Elements) {
		return Element{}, false
	}

	return rows[row].Elements[col], true
}

// indexOf returns the last index of s, mirroring a full linear scan where
// later duplicates win.
func indexOf(list []string, s string) int {
	idx := -1
	for i, v := range list {
		if v == s {
			idx = i
		}
	}

	return idx
}

func project[T any](rows []Row, f func(Element) T) [][]T {
	table := make([][]T, 0, len(rows))
	for _, row := range rows {
		r := make([]T, 0, len(row.Elements))
		for _, e := range row.Elements {
			r = append(r, f(e))
		}

		table = append(table, r)
	}

	return table
}
