package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de venta — wire values consumed by the frontend, do not rename.
// Every estado except Cancelado is "stock-reserved": the items' quantities are
// already subtracted from productos.stock_actual.
const (
	EstadoContactado = "Contactado"
	EstadoArmado     = "Armado"
	EstadoEntregado  = "Entregado"
	EstadoCobrado    = "Cobrado"
	EstadoCancelado  = "Cancelado"
)

// EstadosVenta lists the valid estados in lifecycle order.
var EstadosVenta = []string{
	EstadoContactado, EstadoArmado, EstadoEntregado, EstadoCobrado, EstadoCancelado,
}

// EstadoValido reports whether s is one of the enumerated estados.
func EstadoValido(s string) bool {
	for _, e := range EstadosVenta {
		if e == s {
			return true
		}
	}
	return false
}

// Venta is a sale. Total is derived (= sum of its items' subtotals) at
// creation and never edited independently. ClienteID is immutable.
type Venta struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID uuid.UUID `gorm:"type:uuid;not null;index"`
	FechaAlta time.Time `gorm:"not null;default:now();index"`

	Total  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Estado string          `gorm:"not null;default:'Contactado';index"`

	Items   []VentaItem `gorm:"foreignKey:VentaID"`
	Cliente *Cliente    `gorm:"foreignKey:ClienteID"`
}

func (Venta) TableName() string { return "ventas" }

// VentaItem is a sale line. PrecioVenta is the price captured at creation
// time — a frozen snapshot, never recalculated from the current product price.
type VentaItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoID uuid.UUID `gorm:"type:uuid;not null;index"`

	Cantidad    int             `gorm:"not null"`
	PrecioVenta decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (VentaItem) TableName() string { return "venta_items" }
