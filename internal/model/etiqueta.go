package model

import (
	"time"

	"github.com/google/uuid"
)

// Etiqueta is a free-form product tag. Many-to-many with Producto.
type Etiqueta struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre string    `gorm:"uniqueIndex;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Etiqueta) TableName() string { return "etiquetas" }
