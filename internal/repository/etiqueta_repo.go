package repository

import (
	"context"

	"github.com/msambrenil/OjitosSinUsuarios/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EtiquetaRepository interface {
	Crear(ctx context.Context, e *model.Etiqueta) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Etiqueta, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Etiqueta, error)
	ObtenerPorIDs(ctx context.Context, ids []uuid.UUID) ([]model.Etiqueta, error)
	Listar(ctx context.Context) ([]model.Etiqueta, error)
	Actualizar(ctx context.Context, e *model.Etiqueta) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	EnUso(ctx context.Context, id uuid.UUID) (bool, error)
}

type etiquetaRepo struct{ db *gorm.DB }

func NewEtiquetaRepository(db *gorm.DB) EtiquetaRepository { return &etiquetaRepo{db: db} }

func (r *etiquetaRepo) Crear(ctx context.Context, e *model.Etiqueta) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *etiquetaRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Etiqueta, error) {
	var e model.Etiqueta
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *etiquetaRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Etiqueta, error) {
	var e model.Etiqueta
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *etiquetaRepo) ObtenerPorIDs(ctx context.Context, ids []uuid.UUID) ([]model.Etiqueta, error) {
	var etiquetas []model.Etiqueta
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&etiquetas).Error
	return etiquetas, err
}

func (r *etiquetaRepo) Listar(ctx context.Context) ([]model.Etiqueta, error) {
	var etiquetas []model.Etiqueta
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&etiquetas).Error
	return etiquetas, err
}

func (r *etiquetaRepo) Actualizar(ctx context.Context, e *model.Etiqueta) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *etiquetaRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Etiqueta{}, "id = ?", id).Error
}

func (r *etiquetaRepo) EnUso(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("producto_etiquetas").
		Where("etiqueta_id = ?", id).Count(&count).Error
	return count > 0, err
}
