package repository

import (
	"context"

	"github.com/msambrenil/OjitosSinUsuarios/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Crear(ctx context.Context, c *model.Cliente) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	Listar(ctx context.Context) ([]model.Cliente, error)
	Actualizar(ctx context.Context, c *model.Cliente) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Crear(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *clienteRepo) Listar(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Actualizar(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Cliente{}, "id = ?", id).Error
}
