package api

import (
	"github.com/gin-gonic/gin"

	"github.com/manzanit0/googletoolkit/pkg/middleware"
)

// NewRouter wires the gateway endpoints. A nil controller leaves its routes
// out, so the gateway can run with only one of the APIs configured.
func NewRouter(distances *DistancesController, translations *TranslationsController, debug bool) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceID())
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger(debug))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	if distances != nil {
		r.POST("/distances", distances.FindDistances)
	}

	if translations != nil {
		r.POST("/translations", translations.Translate)
	}

	return r
}
