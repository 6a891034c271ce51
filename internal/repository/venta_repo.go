package repository

import (
	"context"

	"github.com/msambrenil/OjitosSinUsuarios/internal/dto"
	"github.com/msambrenil/OjitosSinUsuarios/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, error)
	// ListAll feeds the reporting engine: every venta with items, products and
	// client preloaded.
	ListAll(ctx context.Context) ([]model.Venta, error)
	ExistsByClienteID(ctx context.Context, clienteID uuid.UUID) (bool, error)

	// Used inside transactions — callers must pass the tx instance
	UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error
	// DeleteTx removes the venta and all its items in the same transaction
	// (explicit cascade — not delegated to the storage engine).
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	// DB exposes the DB for transaction creation in the service layer
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	return tx.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").Preload("Cliente").
		First(&v, "id = ?", id).Error
	return &v, err
}

func (r *ventaRepo) List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, error) {
	q := r.db.WithContext(ctx).Model(&model.Venta{})

	if filter.Estado != "" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.ClienteID != "" {
		q = q.Where("cliente_id = ?", filter.ClienteID)
	}

	var ventas []model.Venta
	err := q.Preload("Items.Producto").Preload("Cliente").
		Order("fecha_alta DESC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ListAll(ctx context.Context) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").Preload("Cliente").
		Order("fecha_alta ASC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ExistsByClienteID(ctx context.Context, clienteID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("cliente_id = ?", clienteID).Count(&count).Error
	return count > 0, err
}

func (r *ventaRepo) UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error {
	return tx.Model(&model.Venta{}).Where("id = ?", id).Update("estado", estado).Error
}

func (r *ventaRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Where("venta_id = ?", id).Delete(&model.VentaItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Venta{}, "id = ?", id).Error
}
