package model

import (
	"time"

	"github.com/google/uuid"
)

// MovimientoStock registra cada cambio de stock en un producto. One row is
// written inside the same transaction as the stock update it describes, so the
// ledger and stock_actual can never drift apart.
type MovimientoStock struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProductoID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"productId"`
	Tipo          string     `gorm:"not null" json:"type"` // "venta" | "cancelacion" | "reactivacion" | "eliminacion" | "ajuste_manual"
	Cantidad      int        `gorm:"not null" json:"quantity"` // positive = entrada, negative = salida
	StockAnterior int        `gorm:"not null" json:"previousStock"`
	StockNuevo    int        `gorm:"not null" json:"newStock"`
	VentaID       *uuid.UUID `gorm:"type:uuid;index" json:"saleId"`
	CreatedAt     time.Time  `json:"createdAt"`

	Producto *Producto `gorm:"foreignKey:ProductoID" json:"-"`
}

// TableName overrides GORM's default pluralization.
func (MovimientoStock) TableName() string { return "movimientos_stock" }
