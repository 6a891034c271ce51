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

type EtiquetaService interface {
	Crear(ctx context.Context, req dto.CrearEtiquetaRequest) (*dto.EtiquetaResponse, error)
	Listar(ctx context.Context) ([]dto.EtiquetaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEtiquetaRequest) (*dto.EtiquetaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type etiquetaService struct {
	repo repository.EtiquetaRepository
}

func NewEtiquetaService(repo repository.EtiquetaRepository) EtiquetaService {
	return &etiquetaService{repo: repo}
}

func (s *etiquetaService) Crear(ctx context.Context, req dto.CrearEtiquetaRequest) (*dto.EtiquetaResponse, error) {
	if existing, err := s.repo.ObtenerPorNombre(ctx, req.Nombre); err == nil && existing != nil {
		return nil, apierror.NewConflict("Ya existe una etiqueta con el nombre \"" + req.Nombre + "\"")
	}

	e := model.Etiqueta{Nombre: req.Nombre}
	if err := s.repo.Crear(ctx, &e); err != nil {
		return nil, apierror.NewPersistence(err)
	}
	return &dto.EtiquetaResponse{ID: e.ID.String(), Nombre: e.Nombre}, nil
}

func (s *etiquetaService) Listar(ctx context.Context) ([]dto.EtiquetaResponse, error) {
	etiquetas, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, apierror.NewPersistence(err)
	}
	result := make([]dto.EtiquetaResponse, 0, len(etiquetas))
	for _, e := range etiquetas {
		result = append(result, dto.EtiquetaResponse{ID: e.ID.String(), Nombre: e.Nombre})
	}
	return result, nil
}

func (s *etiquetaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEtiquetaRequest) (*dto.EtiquetaResponse, error) {
	e, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("Etiqueta", id.String())
		}
		return nil, apierror.NewPersistence(err)
	}

	if existing, err := s.repo.ObtenerPorNombre(ctx, req.Nombre); err == nil && existing != nil && existing.ID != id {
		return nil, apierror.NewConflict("Ya existe una etiqueta con el nombre \"" + req.Nombre + "\"")
	}

	e.Nombre = req.Nombre
	if err := s.repo.Actualizar(ctx, e); err != nil {
		return nil, apierror.NewPersistence(err)
	}
	return &dto.EtiquetaResponse{ID: e.ID.String(), Nombre: e.Nombre}, nil
}

func (s *etiquetaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound("Etiqueta", id.String())
		}
		return apierror.NewPersistence(err)
	}

	enUso, err := s.repo.EnUso(ctx, id)
	if err != nil {
		return apierror.NewPersistence(err)
	}
	if enUso {
		return apierror.NewConflict("La etiqueta está asignada a productos y no puede eliminarse")
	}

	if err := s.repo.Eliminar(ctx, id); err != nil {
		return apierror.NewPersistence(err)
	}
	return nil
}
