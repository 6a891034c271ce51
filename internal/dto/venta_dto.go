package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVentaRequest struct {
	ProductoID string `json:"product_id" validate:"required,uuid"`
	Cantidad   int    `json:"quantity"   validate:"required,min=1"`
	// PrecioVenta overrides the product's showroom price for this line.
	PrecioVenta *decimal.Decimal `json:"price_at_sale"`
}

type RegistrarVentaRequest struct {
	ClienteID string             `json:"client_id" validate:"required,uuid"`
	Items     []ItemVentaRequest `json:"items"     validate:"required,min=1,dive"`
}

type CambiarEstadoRequest struct {
	Estado string `json:"status" validate:"required"`
}

// VentaFilter is bound from the query string of GET /api/sales.
type VentaFilter struct {
	Estado    string `form:"status"`
	ClienteID string `form:"client_id" validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVentaResponse struct {
	ID          string          `json:"id"`
	ProductoID  string          `json:"product_id"`
	Producto    string          `json:"product_name"`
	Cantidad    int             `json:"quantity"`
	PrecioVenta decimal.Decimal `json:"price_at_sale"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID        string              `json:"id"`
	ClienteID string              `json:"client_id"`
	Cliente   string              `json:"client_name"`
	FechaAlta string              `json:"saleDate"`
	Total     decimal.Decimal     `json:"totalAmount"`
	Estado    string              `json:"status"`
	Items     []ItemVentaResponse `json:"items"`
}
