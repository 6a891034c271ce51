package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a showroom customer. A cliente cannot be deleted while any venta
// references it.
type Cliente struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre          string    `gorm:"index;not null"`
	Apodo           *string
	Whatsapp        *string
	Email           *string
	Genero          *string // F | M | Otro
	Nivel           string  `gorm:"not null;default:'Nuevo'"` // Nuevo | Frecuente | VIP
	ProfileImageURL *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cliente) TableName() string { return "clientes" }
