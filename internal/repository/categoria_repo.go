package repository

import (
	"context"

	"github.com/msambrenil/OjitosSinUsuarios/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoriaRepository interface {
	Crear(ctx context.Context, c *model.Categoria) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Categoria, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error)
	ObtenerPorIDs(ctx context.Context, ids []uuid.UUID) ([]model.Categoria, error)
	Listar(ctx context.Context) ([]model.Categoria, error)
	Actualizar(ctx context.Context, c *model.Categoria) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	// EnUso reports whether any product still references the category.
	EnUso(ctx context.Context, id uuid.UUID) (bool, error)
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository { return &categoriaRepo{db: db} }

func (r *categoriaRepo) Crear(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *categoriaRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) ObtenerPorIDs(ctx context.Context, ids []uuid.UUID) ([]model.Categoria, error) {
	var categorias []model.Categoria
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categorias).Error
	return categorias, err
}

func (r *categoriaRepo) Listar(ctx context.Context) ([]model.Categoria, error) {
	var categorias []model.Categoria
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&categorias).Error
	return categorias, err
}

func (r *categoriaRepo) Actualizar(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoriaRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Categoria{}, "id = ?", id).Error
}

func (r *categoriaRepo) EnUso(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("producto_categorias").
		Where("categoria_id = ?", id).Count(&count).Error
	return count > 0, err
}
