package repository

import (
	"context"
	"errors"

	"github.com/msambrenil/OjitosSinUsuarios/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrStockInsuficiente is returned by DescontarStockTx when the guarded update
// matches no row: the product either does not exist or lacks the requested
// quantity. Callers translate it into an apierror with product context.
var ErrStockInsuficiente = errors.New("stock insuficiente")

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	List(ctx context.Context) ([]model.Producto, error)
	ListCatalogo(ctx context.Context, search string, categoriaIDs, etiquetaIDs []uuid.UUID) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	ReplaceCategorias(ctx context.Context, p *model.Producto, categorias []model.Categoria) error
	ReplaceEtiquetas(ctx context.Context, p *model.Producto, etiquetas []model.Etiqueta) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Stock lists for the reporting engine
	ListCriticos(ctx context.Context) ([]model.Producto, error)
	ListAgotados(ctx context.Context) ([]model.Producto, error)

	// Used inside transactions — callers must pass the tx instance.
	// FindByIDTx reads current stock inside the tx; DescontarStockTx performs a
	// guarded decrement (stock_actual >= cantidad) so stock can never go
	// negative, even under concurrent writers.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Producto, error)
	DescontarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error
	RestaurarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).
		Preload("Categorias").Preload("Etiquetas").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Preload("Categorias").Preload("Etiquetas").
		Order("nombre ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) ListCatalogo(ctx context.Context, search string, categoriaIDs, etiquetaIDs []uuid.UUID) ([]model.Producto, error) {
	q := r.db.WithContext(ctx).Model(&model.Producto{}).Distinct("productos.*")

	if search != "" {
		q = q.Where("productos.nombre ILIKE ?", "%"+search+"%")
	}
	if len(categoriaIDs) > 0 {
		q = q.Joins("JOIN producto_categorias pc ON pc.producto_id = productos.id").
			Where("pc.categoria_id IN ?", categoriaIDs)
	}
	if len(etiquetaIDs) > 0 {
		q = q.Joins("JOIN producto_etiquetas pe ON pe.producto_id = productos.id").
			Where("pe.etiqueta_id IN ?", etiquetaIDs)
	}

	var productos []model.Producto
	err := q.Order("productos.nombre ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Omit("Categorias", "Etiquetas").Save(p).Error
}

func (r *productoRepo) ReplaceCategorias(ctx context.Context, p *model.Producto, categorias []model.Categoria) error {
	return r.db.WithContext(ctx).Model(p).Association("Categorias").Replace(categorias)
}

func (r *productoRepo) ReplaceEtiquetas(ctx context.Context, p *model.Producto, etiquetas []model.Etiqueta) error {
	return r.db.WithContext(ctx).Model(p).Association("Etiquetas").Replace(etiquetas)
}

func (r *productoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Categorias", "Etiquetas").
		Delete(&model.Producto{ID: id}).Error
}

func (r *productoRepo) ListCriticos(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("stock_actual > 0 AND stock_actual <= stock_critico").
		Order("stock_actual ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) ListAgotados(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("stock_actual = 0").
		Order("nombre ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := tx.First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productoRepo) DescontarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error {
	res := tx.Model(&model.Producto{}).
		Where("id = ? AND stock_actual >= ?", id, cantidad).
		Update("stock_actual", gorm.Expr("stock_actual - ?", cantidad))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStockInsuficiente
	}
	return nil
}

func (r *productoRepo) RestaurarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error {
	return tx.Model(&model.Producto{}).Where("id = ?", id).
		Update("stock_actual", gorm.Expr("stock_actual + ?", cantidad)).Error
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
