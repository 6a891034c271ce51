package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a catalog product. PrecioShowroom is the default retail price;
// PrecioFeria (optional) applies while feria mode is active. Stock is mutated
// only through guarded updates inside sale transactions or explicit manual
// adjustments — never via Save of a stale struct.
type Producto struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre string    `gorm:"index;not null"`

	PrecioRevista  *decimal.Decimal `gorm:"type:decimal(10,2)"`
	PrecioShowroom decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	PrecioFeria    *decimal.Decimal `gorm:"type:decimal(10,2)"`

	StockActual  int `gorm:"not null;default:0"`
	StockCritico int `gorm:"not null;default:1"`

	ImageURL        *string
	CatalogImageURL *string
	CatalogPrice    *decimal.Decimal `gorm:"type:decimal(10,2)"`

	Categorias []Categoria `gorm:"many2many:producto_categorias"`
	Etiquetas  []Etiqueta  `gorm:"many2many:producto_etiquetas"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default pluralization for Spanish names.
func (Producto) TableName() string { return "productos" }
