package handler

import (
	"net/http"

	"github.com/msambrenil/OjitosSinUsuarios/internal/apierror"
	"github.com/msambrenil/OjitosSinUsuarios/internal/dto"
	"github.com/msambrenil/OjitosSinUsuarios/internal/service"

	"github.com/gin-gonic/gin"
)

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler { return &VentasHandler{svc: svc} }

// Registrar godoc
// @Summary      Registrar una nueva venta
// @Description  Crea la venta y descuenta stock de forma atómica. Si algún ítem no tiene stock suficiente, no se persiste nada.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body body dto.RegistrarVentaRequest true "Detalle de la venta"
// @Success      201  {object} dto.VentaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /api/sales [post]
func (h *VentasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Produce      json
// @Param        status    query string false "Contactado | Armado | Entregado | Cobrado | Cancelado"
// @Param        client_id query string false "UUID del cliente"
// @Success      200 {array}  dto.VentaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/sales [get]
func (h *VentasHandler) Listar(c *gin.Context) {
	var filter dto.VentaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VentasHandler) Obtener(c *gin.Context) {
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

// CambiarEstado godoc
// @Summary      Cambiar estado de una venta
// @Description  Cancelar restaura stock; reactivar una venta cancelada vuelve a descontar validando contra el stock actual.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        id   path string                  true "UUID de la venta"
// @Param        body body dto.CambiarEstadoRequest true "Nuevo estado"
// @Success      200  {object} dto.VentaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /api/sales/{id} [put]
func (h *VentasHandler) CambiarEstado(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.CambiarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CambiarEstado(c.Request.Context(), id, req.Estado)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Eliminar venta
// @Description  Restaura el stock reservado (salvo ventas ya canceladas) y elimina la venta con sus ítems.
// @Tags         ventas
// @Produce      json
// @Param        id path string true "UUID de la venta"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /api/sales/{id} [delete]
func (h *VentasHandler) Eliminar(c *gin.Context) {
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
