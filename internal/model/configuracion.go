package model

import (
	"time"

	"github.com/google/uuid"
)

// Configuracion is the single site configuration row. It is created with
// defaults on first access (FirstOrCreate) and injected where needed rather
// than held as ambient process state.
type Configuracion struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SiteName          string    `gorm:"not null;default:'Showroom Natura OjitOs'"`
	BrandColorPrimary string    `gorm:"not null;default:'#6750A4'"`
	LogoURL           *string
	ContactInfo       *string
	SocialInstagram   *string
	SocialTikTok      *string
	SocialWhatsApp    *string
	FeriaOnlineLink   *string
	ShowroomAddress   *string
	IsFeriaModeActive bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Configuracion) TableName() string { return "configuracion" }
