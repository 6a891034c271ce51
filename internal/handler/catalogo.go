package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/msambrenil/OjitosSinUsuarios/internal/apierror"
	"github.com/msambrenil/OjitosSinUsuarios/internal/dto"
	"github.com/msambrenil/OjitosSinUsuarios/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// CatalogoHandler serves the public product catalog. Stock status and the
// active price mode are resolved server side so the frontend only renders.
// Unfiltered requests are cached in Redis with a short TTL.
type CatalogoHandler struct {
	svc      service.ProductoService
	rdb      *redis.Client
	cacheTTL time.Duration
}

func NewCatalogoHandler(svc service.ProductoService, rdb *redis.Client, cacheTTL time.Duration) *CatalogoHandler {
	return &CatalogoHandler{svc: svc, rdb: rdb, cacheTTL: cacheTTL}
}

const catalogoCacheKey = "catalogo:full"

// Listar godoc
// @Summary  Catálogo público de productos
// @Tags     catalogo
// @Produce  json
// @Param    search_term  query string false "Búsqueda por nombre (parcial)"
// @Param    category_ids query string false "IDs de categoría separados por coma"
// @Param    tag_ids      query string false "IDs de etiqueta separados por coma"
// @Success  200 {array} dto.CatalogoItemResponse
// @Failure  400 {object} apierror.APIError
// @Router   /api/catalog [get]
func (h *CatalogoHandler) Listar(c *gin.Context) {
	var filter dto.CatalogoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	ctx := c.Request.Context()

	// Only the unfiltered view is cached; filtered combinations are too many
	// to be worth keys. A non-positive TTL disables caching entirely.
	cacheable := h.cacheTTL > 0 &&
		filter.SearchTerm == "" && filter.CategoriaIDs == "" && filter.EtiquetaIDs == ""

	if cacheable && h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, catalogoCacheKey).Bytes(); err == nil {
			var items []dto.CatalogoItemResponse
			if jsonErr := json.Unmarshal(cached, &items); jsonErr == nil {
				c.JSON(http.StatusOK, items)
				return
			}
		}
	}

	items, err := h.svc.Catalogo(ctx, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	// Populate cache — best effort, ignore errors
	if cacheable && h.rdb != nil {
		if b, jsonErr := json.Marshal(items); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), catalogoCacheKey, b, h.cacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, items)
}
