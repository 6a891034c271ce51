package dto

import "github.com/shopspring/decimal"

// ResumenBucket is one dashboard card: how many sales and for how much.
type ResumenBucket struct {
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// DashboardResponse mirrors the five frontend cards. Each bucket is an
// independent filtered aggregate — never derived incrementally from another.
type DashboardResponse struct {
	VentasEntregadas ResumenBucket `json:"ventasEntregadas"` // Entregado
	VentasAEntregar  ResumenBucket `json:"ventasAEntregar"`  // Contactado | Armado
	VentasPorArmar   ResumenBucket `json:"ventasPorArmar"`   // Contactado
	VentasCobradas   ResumenBucket `json:"ventasCobradas"`   // Cobrado
	VentasACobrar    ResumenBucket `json:"ventasACobrar"`    // Entregado (pendiente de cobro)
}

// VentasPorPeriodo is one row of the sales-over-time series.
type VentasPorPeriodo struct {
	Periodo     string          `json:"period"` // YYYY-MM-DD | YYYY-MM | YYYY
	OrderCount  int             `json:"orderCount"`
	TotalVentas decimal.Decimal `json:"totalSales"`
}

// TopProductoResponse carries TotalVendido for by=quantity and TotalValor for
// by=value — only the requested metric is serialized.
type TopProductoResponse struct {
	Producto     string           `json:"productName"`
	TotalVendido *int             `json:"totalSold,omitempty"`
	TotalValor   *decimal.Decimal `json:"totalValue,omitempty"`
}

type TopClienteResponse struct {
	Cliente      string           `json:"clientName"`
	OrderCount   *int             `json:"orderCount,omitempty"`
	TotalGastado *decimal.Decimal `json:"totalSpent,omitempty"`
}

type StockSummaryResponse struct {
	CriticalStock []ProductoResponse `json:"criticalStock"`
	OutOfStock    []ProductoResponse `json:"outOfStock"`
}
