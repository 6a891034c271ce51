package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre          string           `json:"name"            validate:"required,min=1,max=120"`
	PrecioRevista   *decimal.Decimal `json:"priceRevista"`
	PrecioShowroom  decimal.Decimal  `json:"priceShowroom"   validate:"min=0"`
	PrecioFeria     *decimal.Decimal `json:"priceFeria"`
	StockActual     int              `json:"stockActual"     validate:"min=0"`
	StockCritico    int              `json:"stockCritico"    validate:"min=0"`
	ImageURL        *string          `json:"imageUrl"`
	CatalogImageURL *string          `json:"catalogImageUrl"`
	CatalogPrice    *decimal.Decimal `json:"catalogPrice"`
	EtiquetaIDs     []string         `json:"tag_ids"         validate:"omitempty,dive,uuid"`
	CategoriaIDs    []string         `json:"category_ids"    validate:"omitempty,dive,uuid"`
}

type ActualizarProductoRequest struct {
	Nombre          *string          `json:"name"            validate:"omitempty,min=1,max=120"`
	PrecioRevista   *decimal.Decimal `json:"priceRevista"`
	PrecioShowroom  *decimal.Decimal `json:"priceShowroom"`
	PrecioFeria     *decimal.Decimal `json:"priceFeria"`
	StockActual     *int             `json:"stockActual"     validate:"omitempty,min=0"`
	StockCritico    *int             `json:"stockCritico"    validate:"omitempty,min=0"`
	ImageURL        *string          `json:"imageUrl"`
	CatalogImageURL *string          `json:"catalogImageUrl"`
	CatalogPrice    *decimal.Decimal `json:"catalogPrice"`
	// nil = leave associations untouched; empty slice = clear them
	EtiquetaIDs  []string `json:"tag_ids"      validate:"omitempty,dive,uuid"`
	CategoriaIDs []string `json:"category_ids" validate:"omitempty,dive,uuid"`
}

// AjustarStockRequest is a manual stock correction (recorded in the movement
// ledger). Delta may be negative but must not take stock below zero.
type AjustarStockRequest struct {
	Delta  int    `json:"delta"  validate:"required"`
	Motivo string `json:"motivo"`
}

// ─── Catalog ─────────────────────────────────────────────────────────────────

// CatalogoFilter is bound from the query string of GET /api/catalog.
// ID lists arrive as comma-separated values.
type CatalogoFilter struct {
	SearchTerm   string `form:"search_term"`
	CategoriaIDs string `form:"category_ids"`
	EtiquetaIDs  string `form:"tag_ids"`
}

type CatalogoItemResponse struct {
	ID           string          `json:"id"`
	Nombre       string          `json:"name"`
	DisplayPrice decimal.Decimal `json:"displayPrice"`
	ImageURL     *string         `json:"imageUrl"`
	StockActual  int             `json:"stockActual"`
	StockCritico int             `json:"stockCritico"`
	StockStatus  string          `json:"stockStatus"` // "" | "Pocas unidades!" | "AGOTADO"
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID              string              `json:"id"`
	Nombre          string              `json:"name"`
	PrecioRevista   *decimal.Decimal    `json:"priceRevista"`
	PrecioShowroom  decimal.Decimal     `json:"priceShowroom"`
	PrecioFeria     *decimal.Decimal    `json:"priceFeria"`
	StockActual     int                 `json:"stockActual"`
	StockCritico    int                 `json:"stockCritico"`
	ImageURL        *string             `json:"imageUrl"`
	CatalogImageURL *string             `json:"catalogImageUrl"`
	CatalogPrice    *decimal.Decimal    `json:"catalogPrice"`
	Etiquetas       []EtiquetaResponse  `json:"tags"`
	Categorias      []CategoriaResponse `json:"categories"`
}
