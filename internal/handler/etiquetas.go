package handler

import (
	"net/http"

	"github.com/msambrenil/OjitosSinUsuarios/internal/dto"
	"github.com/msambrenil/OjitosSinUsuarios/internal/service"

	"github.com/gin-gonic/gin"
)

type EtiquetasHandler struct{ svc service.EtiquetaService }

func NewEtiquetasHandler(svc service.EtiquetaService) *EtiquetasHandler {
	return &EtiquetasHandler{svc: svc}
}

func (h *EtiquetasHandler) Crear(c *gin.Context) {
	var req dto.CrearEtiquetaRequest
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

func (h *EtiquetasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EtiquetasHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarEtiquetaRequest
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

func (h *EtiquetasHandler) Eliminar(c *gin.Context) {
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
