package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/manzanit0/googletoolkit/pkg/translation"
)

type TranslationsRequest struct {
	Texts  []string `json:"texts" binding:"required,min=1"`
	Target string   `json:"target" binding:"required"`
	Source string   `json:"source"`
}

type TranslationsResponse struct {
	Translations map[string]string `json:"translations"`
}

type TranslationsController struct {
	client translation.Client
	cache  *cache.Cache
}

func NewTranslationsController(c translation.Client, ch *cache.Cache) *TranslationsController {
	return &TranslationsController{client: c, cache: ch}
}

func (g *TranslationsController) Translate(c *gin.Context) {
	var r TranslationsRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Errorf("invalid translations request: %w", err).Error()})
		return
	}

	key := fmt.Sprintf("translations:%s:%s:%q", r.Source, r.Target, r.Texts)
	if v, ok := g.cache.Get(key); ok {
		c.JSON(http.StatusOK, TranslationsResponse{Translations: v.(*translation.Result).TranslationMap()})
		return
	}

	var opts []translation.Option
	if r.Source != "" {
		opts = append(opts, translation.WithSource(r.Source))
	}

	res, err := g.client.Translate(c.Request.Context(), r.Texts, r.Target, opts...)
	var langErr *translation.LanguageError
	if errors.As(err, &langErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Errorf("invalid translations request: %w", err).Error()})
		return
	}

	if err != nil {
		slog.ErrorContext(c.Request.Context(), "translate texts", "error", err.Error(), "target", r.Target)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	g.cache.Set(key, res, cache.DefaultExpiration)
	c.JSON(http.StatusOK, TranslationsResponse{Translations: res.TranslationMap()})
}
