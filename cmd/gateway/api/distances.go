package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/manzanit0/googletoolkit/pkg/distancematrix"
)

type DistancesRequest struct {
	Origins      []string `json:"origins" binding:"required,min=1,dive,required"`
	Destinations []string `json:"destinations" binding:"required,min=1,dive,required"`

	// Origin and Destination optionally pick one cell of the matrix.
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type DistancesResponse struct {
	Origins        []string   `json:"origins"`
	Destinations   []string   `json:"destinations"`
	DistanceTable  [][]string `json:"distance_table"`
	DistanceMatrix [][]int    `json:"distance_matrix"`
	DurationTable  [][]string `json:"duration_table"`
	DurationMatrix [][]int    `json:"duration_matrix"`
	Between        *Between   `json:"between,omitempty"`
}

type Between struct {
	Found    bool   `json:"found"`
	Distance string `json:"distance,omitempty"`
	Duration string `json:"duration,omitempty"`
}

type DistancesController struct {
	client distancematrix.Client
	cache  *cache.Cache
}

func NewDistancesController(c distancematrix.Client, ch *cache.Cache) *DistancesController {
	return &DistancesController{client: c, cache: ch}
}

func (g *DistancesController) FindDistances(c *gin.Context) {
	var r DistancesRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Errorf("invalid distances request: %w", err).Error()})
		return
	}

	m, err := g.getMatrix(c, r.Origins, r.Destinations)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "get distance matrix", "error", err.Error())
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	res := DistancesResponse{
		Origins:        m.Origins(),
		Destinations:   m.Destinations(),
		DistanceTable:  m.DistanceTable(),
		DistanceMatrix: m.DistanceMatrix(),
		DurationTable:  m.DurationTable(),
		DurationMatrix: m.DurationMatrix(),
	}

	if r.Origin != "" || r.Destination != "" {
		distance, found := m.DistanceBetween(r.Origin, r.Destination)
		duration, _ := m.DurationBetween(r.Origin, r.Destination)
		res.Between = &Between{Found: found, Distance: distance, Duration: duration}
	}

	c.JSON(http.StatusOK, res)
}

func (g *DistancesController) getMatrix(c *gin.Context, origins, destinations []string) (*distancematrix.Matrix, error) {
	key := fmt.Sprintf("distances:%q|%q", origins, destinations)
	if v, ok := g.cache.Get(key); ok {
		return v.(*distancematrix.Matrix), nil
	}

	m, err := g.client.GetDistanceMatrix(c.Request.Context(), origins, destinations)
	if err != nil {
		return nil, err
	}

	g.cache.Set(key, m, cache.DefaultExpiration)
	return m, nil
}
