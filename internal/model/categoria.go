package model

import (
	"time"

	"github.com/google/uuid"
)

// Categoria classifies products. Many-to-many with Producto.
type Categoria struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre   string    `gorm:"uniqueIndex;not null"`
	ImageURL *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Categoria) TableName() string { return "categorias" }
