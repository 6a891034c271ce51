package handler

import (
	"net/http"

	"github.com/msambrenil/OjitosSinUsuarios/internal/dto"
	"github.com/msambrenil/OjitosSinUsuarios/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Crear godoc
// @Summary  Crear producto
// @Tags     productos
// @Accept   json
// @Produce  json
// @Param    body body dto.CrearProductoRequest true "Producto"
// @Success  201 {object} dto.ProductoResponse
// @Failure  400 {object} apierror.APIError
// @Router   /api/products [post]
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) Obtener(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AjustarStock godoc
// @Summary  Ajuste manual de stock
// @Description Aplica un delta con registro en el historial de movimientos. No permite stock negativo.
// @Tags     productos
// @Accept   json
// @Produce  json
// @Param    id   path string                  true "UUID del producto"
// @Param    body body dto.AjustarStockRequest true "Delta y motivo"
// @Success  200 {object} dto.ProductoResponse
// @Failure  400 {object} apierror.APIError
// @Router   /api/products/{id}/stock [patch]
func (h *ProductosHandler) AjustarStock(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AjustarStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AjustarStock(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) Movimientos(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	movs, err := h.svc.Movimientos(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movs)
}
