package service

import (
	"context"
	"errors"

	"github.com/msambrenil/OjitosSinUsuarios/internal/apierror"
	"github.com/msambrenil/OjitosSinUsuarios/internal/dto"
	"github.com/msambrenil/OjitosSinUsuarios/internal/model"
	"github.com/msambrenil/OjitosSinUsuarios/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoriaService manages the category taxonomy. Names are unique; a category
// still assigned to products cannot be deleted.
type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	if existing, err := s.repo.ObtenerPorNombre(ctx, req.Nombre); err == nil && existing != nil {
		return nil, apierror.NewConflict("Ya existe una categoría con el nombre \"" + req.Nombre + "\"")
	}

	c := model.Categoria{Nombre: req.Nombre, ImageURL: req.ImageURL}
	if err := s.repo.Crear(ctx, &c); err != nil {
		return nil, apierror.NewPersistence(err)
	}
	return categoriaToResponse(&c), nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	categorias, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, apierror.NewPersistence(err)
	}
	result := make([]dto.CategoriaResponse, 0, len(categorias))
	for i := range categorias {
		result = append(result, *categoriaToResponse(&categorias[i]))
	}
	return result, nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("Categoría", id.String())
		}
		return nil, apierror.NewPersistence(err)
	}

	if existing, err := s.repo.ObtenerPorNombre(ctx, req.Nombre); err == nil && existing != nil && existing.ID != id {
		return nil, apierror.NewConflict("Ya existe una categoría con el nombre \"" + req.Nombre + "\"")
	}

	c.Nombre = req.Nombre
	if req.ImageURL != nil {
		c.ImageURL = req.ImageURL
	}
	if err := s.repo.Actualizar(ctx, c); err != nil {
		return nil, apierror.NewPersistence(err)
	}
	return categoriaToResponse(c), nil
}

func (s *categoriaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound("Categoría", id.String())
		}
		return apierror.NewPersistence(err)
	}

	enUso, err := s.repo.EnUso(ctx, id)
	if err != nil {
		return apierror.NewPersistence(err)
	}
	if enUso {
		return apierror.NewConflict("La categoría está asignada a productos y no puede eliminarse")
	}

	if err := s.repo.Eliminar(ctx, id); err != nil {
		return apierror.NewPersistence(err)
	}
	return nil
}

func categoriaToResponse(c *model.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{ID: c.ID.String(), Nombre: c.Nombre, ImageURL: c.ImageURL}
}
