package handler

import (
	"net/http"
	"strconv"

	"github.com/msambrenil/OjitosSinUsuarios/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct{ svc service.StatsService }

func NewStatsHandler(svc service.StatsService) *StatsHandler { return &StatsHandler{svc: svc} }

// Dashboard godoc
// @Summary  Resumen del dashboard
// @Tags     stats
// @Produce  json
// @Success  200 {object} dto.DashboardResponse
// @Router   /api/dashboard/summary [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VentasPorPeriodo godoc
// @Summary  Ventas agrupadas por período
// @Tags     stats
// @Produce  json
// @Param    period query string false "day | month | year (default month)"
// @Success  200 {array}  dto.VentasPorPeriodo
// @Failure  400 {object} apierror.ValidationError
// @Router   /api/stats/sales_over_time [get]
func (h *StatsHandler) VentasPorPeriodo(c *gin.Context) {
	period := c.DefaultQuery("period", "month")
	resp, err := h.svc.VentasPorPeriodo(c.Request.Context(), period)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StatsHandler) TopProductos(c *gin.Context) {
	by := c.DefaultQuery("by", "quantity")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	resp, err := h.svc.TopProductos(c.Request.Context(), by, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StatsHandler) TopClientes(c *gin.Context) {
	by := c.DefaultQuery("by", "frequency")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	resp, err := h.svc.TopClientes(c.Request.Context(), by, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StatsHandler) StockSummary(c *gin.Context) {
	resp, err := h.svc.StockSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
