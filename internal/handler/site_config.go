package handler

import (
	"net/http"

	"github.com/msambrenil/OjitosSinUsuarios/internal/dto"
	"github.com/msambrenil/OjitosSinUsuarios/internal/service"

	"github.com/gin-gonic/gin"
)

type SiteConfigHandler struct{ svc service.ConfigService }

func NewSiteConfigHandler(svc service.ConfigService) *SiteConfigHandler {
	return &SiteConfigHandler{svc: svc}
}

func (h *SiteConfigHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar is a partial update — only the fields present in the body change.
func (h *SiteConfigHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarConfigRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
