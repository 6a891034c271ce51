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

// ClienteService manages showroom customers. Deleting a cliente with sale
// history is refused so past ventas keep a valid reference.
type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo      repository.ClienteRepository
	ventaRepo repository.VentaRepository
}

func NewClienteService(repo repository.ClienteRepository, ventaRepo repository.VentaRepository) ClienteService {
	return &clienteService{repo: repo, ventaRepo: ventaRepo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	c := model.Cliente{
		Nombre:          req.Nombre,
		Apodo:           req.Apodo,
		Whatsapp:        req.Whatsapp,
		Email:           req.Email,
		Genero:          req.Genero,
		Nivel:           "Nuevo",
		ProfileImageURL: req.ProfileImageURL,
	}
	if req.Nivel != nil {
		c.Nivel = *req.Nivel
	}
	if err := s.repo.Crear(ctx, &c); err != nil {
		return nil, apierror.NewPersistence(err)
	}
	return clienteToResponse(&c), nil
}

func (s *clienteService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("Cliente", id.String())
		}
		return nil, apierror.NewPersistence(err)
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, apierror.NewPersistence(err)
	}
	result := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		result = append(result, *clienteToResponse(&clientes[i]))
	}
	return result, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("Cliente", id.String())
		}
		return nil, apierror.NewPersistence(err)
	}

	c.Nombre = req.Nombre
	if req.Apodo != nil {
		c.Apodo = req.Apodo
	}
	if req.Whatsapp != nil {
		c.Whatsapp = req.Whatsapp
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Genero != nil {
		c.Genero = req.Genero
	}
	if req.Nivel != nil {
		c.Nivel = *req.Nivel
	}
	if req.ProfileImageURL != nil {
		c.ProfileImageURL = req.ProfileImageURL
	}

	if err := s.repo.Actualizar(ctx, c); err != nil {
		return nil, apierror.NewPersistence(err)
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound("Cliente", id.String())
		}
		return apierror.NewPersistence(err)
	}

	tieneVentas, err := s.ventaRepo.ExistsByClienteID(ctx, id)
	if err != nil {
		return apierror.NewPersistence(err)
	}
	if tieneVentas {
		return apierror.NewConflict("El cliente tiene ventas registradas y no puede eliminarse")
	}

	if err := s.repo.Eliminar(ctx, id); err != nil {
		return apierror.NewPersistence(err)
	}
	return nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:              c.ID.String(),
		Nombre:          c.Nombre,
		Apodo:           c.Apodo,
		Whatsapp:        c.Whatsapp,
		Email:           c.Email,
		Genero:          c.Genero,
		Nivel:           c.Nivel,
		ProfileImageURL: c.ProfileImageURL,
	}
}
