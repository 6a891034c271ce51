package repository

import (
	"context"

	"github.com/msambrenil/OjitosSinUsuarios/internal/model"

	"gorm.io/gorm"
)

type ConfigRepository interface {
	// Obtener returns the singleton configuration row, creating it with
	// defaults on first access.
	Obtener(ctx context.Context) (*model.Configuracion, error)
	Actualizar(ctx context.Context, c *model.Configuracion) error
}

type configRepo struct{ db *gorm.DB }

func NewConfigRepository(db *gorm.DB) ConfigRepository { return &configRepo{db: db} }

func (r *configRepo) Obtener(ctx context.Context) (*model.Configuracion, error) {
	var c model.Configuracion
	err := r.db.WithContext(ctx).FirstOrCreate(&c).Error
	return &c, err
}

func (r *configRepo) Actualizar(ctx context.Context, c *model.Configuracion) error {
	return r.db.WithContext(ctx).Save(c).Error
}
