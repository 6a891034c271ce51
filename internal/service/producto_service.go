package service

import (
	"context"
	"errors"
	"strings"

	"github.com/msambrenil/OjitosSinUsuarios/internal/apierror"
	"github.com/msambrenil/OjitosSinUsuarios/internal/dto"
	"github.com/msambrenil/OjitosSinUsuarios/internal/model"
	"github.com/msambrenil/OjitosSinUsuarios/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoService covers product CRUD, the public catalog view and manual
// stock adjustments. Sale-driven stock changes never pass through here; they
// belong to VentaService.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	AjustarStock(ctx context.Context, id uuid.UUID, req dto.AjustarStockRequest) (*dto.ProductoResponse, error)
	Catalogo(ctx context.Context, filter dto.CatalogoFilter) ([]dto.CatalogoItemResponse, error)
	Movimientos(ctx context.Context, id uuid.UUID) ([]model.MovimientoStock, error)
}

type productoService struct {
	repo           repository.ProductoRepository
	categoriaRepo  repository.CategoriaRepository
	etiquetaRepo   repository.EtiquetaRepository
	movimientoRepo repository.MovimientoStockRepository
	configRepo     repository.ConfigRepository
}

func NewProductoService(
	repo repository.ProductoRepository,
	categoriaRepo repository.CategoriaRepository,
	etiquetaRepo repository.EtiquetaRepository,
	movimientoRepo repository.MovimientoStockRepository,
	configRepo repository.ConfigRepository,
) ProductoService {
	return &productoService{
		repo:           repo,
		categoriaRepo:  categoriaRepo,
		etiquetaRepo:   etiquetaRepo,
		movimientoRepo: movimientoRepo,
		configRepo:     configRepo,
	}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	categorias, err := s.resolveCategorias(ctx, req.CategoriaIDs)
	if err != nil {
		return nil, err
	}
	etiquetas, err := s.resolveEtiquetas(ctx, req.EtiquetaIDs)
	if err != nil {
		return nil, err
	}

	p := model.Producto{
		Nombre:          req.Nombre,
		PrecioRevista:   req.PrecioRevista,
		PrecioShowroom:  req.PrecioShowroom,
		PrecioFeria:     req.PrecioFeria,
		StockActual:     req.StockActual,
		StockCritico:    req.StockCritico,
		ImageURL:        req.ImageURL,
		CatalogImageURL: req.CatalogImageURL,
		CatalogPrice:    req.CatalogPrice,
		Categorias:      categorias,
		Etiquetas:       etiquetas,
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, apierror.NewPersistence(err)
	}
	return productoToResponse(&p), nil
}

func (s *productoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("Producto", id.String())
		}
		return nil, apierror.NewPersistence(err)
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.NewPersistence(err)
	}
	result := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		result = append(result, *productoToResponse(&productos[i]))
	}
	return result, nil
}

// Actualizar is a partial update: nil fields are left untouched. Stock may be
// set here directly (inventory correction without ledger semantics goes through
// AjustarStock instead, which records the movement).
func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("Producto", id.String())
		}
		return nil, apierror.NewPersistence(err)
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.PrecioRevista != nil {
		p.PrecioRevista = req.PrecioRevista
	}
	if req.PrecioShowroom != nil {
		p.PrecioShowroom = *req.PrecioShowroom
	}
	if req.PrecioFeria != nil {
		p.PrecioFeria = req.PrecioFeria
	}
	if req.StockActual != nil {
		p.StockActual = *req.StockActual
	}
	if req.StockCritico != nil {
		p.StockCritico = *req.StockCritico
	}
	if req.ImageURL != nil {
		p.ImageURL = req.ImageURL
	}
	if req.CatalogImageURL != nil {
		p.CatalogImageURL = req.CatalogImageURL
	}
	if req.CatalogPrice != nil {
		p.CatalogPrice = req.CatalogPrice
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apierror.NewPersistence(err)
	}

	if req.CategoriaIDs != nil {
		categorias, err := s.resolveCategorias(ctx, req.CategoriaIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceCategorias(ctx, p, categorias); err != nil {
			return nil, apierror.NewPersistence(err)
		}
		p.Categorias = categorias
	}
	if req.EtiquetaIDs != nil {
		etiquetas, err := s.resolveEtiquetas(ctx, req.EtiquetaIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceEtiquetas(ctx, p, etiquetas); err != nil {
			return nil, apierror.NewPersistence(err)
		}
		p.Etiquetas = etiquetas
	}

	return productoToResponse(p), nil
}

func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound("Producto", id.String())
		}
		return apierror.NewPersistence(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.NewPersistence(err)
	}
	return nil
}

// AjustarStock applies a signed manual correction with ledger trail. A
// negative delta reuses the guarded decrement, so stock cannot be adjusted
// below zero even racing against a concurrent sale.
func (s *productoService) AjustarStock(ctx context.Context, id uuid.UUID, req dto.AjustarStockRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("Producto", id.String())
		}
		return nil, apierror.NewPersistence(err)
	}
	if req.Delta == 0 {
		return nil, apierror.NewValidation("delta no puede ser 0", nil)
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		stockAntes := p.StockActual
		if antes, err := s.repo.FindByIDTx(tx, id); err == nil {
			stockAntes = antes.StockActual
		}

		if req.Delta > 0 {
			if err := s.repo.RestaurarStockTx(tx, id, req.Delta); err != nil {
				return err
			}
		} else {
			if err := s.repo.DescontarStockTx(tx, id, -req.Delta); err != nil {
				if errors.Is(err, repository.ErrStockInsuficiente) {
					return &apierror.InsufficientStockError{
						Producto:   p.Nombre,
						Disponible: stockAntes,
						Solicitado: -req.Delta,
					}
				}
				return err
			}
		}

		return s.movimientoRepo.CreateTx(tx, &model.MovimientoStock{
			ProductoID:    id,
			Tipo:          "ajuste_manual",
			Cantidad:      req.Delta,
			StockAnterior: stockAntes,
			StockNuevo:    stockAntes + req.Delta,
		})
	})
	if txErr != nil {
		return nil, wrapTxErr(txErr)
	}

	p, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewPersistence(err)
	}
	return productoToResponse(p), nil
}

// Catalogo builds the public product list. displayPrice is PrecioFeria while
// feria mode is active and the product has one, otherwise PrecioShowroom.
func (s *productoService) Catalogo(ctx context.Context, filter dto.CatalogoFilter) ([]dto.CatalogoItemResponse, error) {
	categoriaIDs, err := parseIDList(filter.CategoriaIDs)
	if err != nil {
		return nil, apierror.NewValidation("category_ids contiene un UUID inválido", nil)
	}
	etiquetaIDs, err := parseIDList(filter.EtiquetaIDs)
	if err != nil {
		return nil, apierror.NewValidation("tag_ids contiene un UUID inválido", nil)
	}

	cfg, err := s.configRepo.Obtener(ctx)
	if err != nil {
		return nil, apierror.NewPersistence(err)
	}

	productos, err := s.repo.ListCatalogo(ctx, strings.TrimSpace(filter.SearchTerm), categoriaIDs, etiquetaIDs)
	if err != nil {
		return nil, apierror.NewPersistence(err)
	}

	items := make([]dto.CatalogoItemResponse, 0, len(productos))
	for i := range productos {
		p := &productos[i]

		price := p.PrecioShowroom
		if cfg.IsFeriaModeActive && p.PrecioFeria != nil {
			price = *p.PrecioFeria
		}

		imageURL := p.ImageURL
		if p.CatalogImageURL != nil {
			imageURL = p.CatalogImageURL
		}

		status := ""
		switch {
		case p.StockActual == 0:
			status = "AGOTADO"
		case p.StockActual <= p.StockCritico:
			status = "Pocas unidades!"
		}

		items = append(items, dto.CatalogoItemResponse{
			ID:           p.ID.String(),
			Nombre:       p.Nombre,
			DisplayPrice: price,
			ImageURL:     imageURL,
			StockActual:  p.StockActual,
			StockCritico: p.StockCritico,
			StockStatus:  status,
		})
	}
	return items, nil
}

func (s *productoService) Movimientos(ctx context.Context, id uuid.UUID) ([]model.MovimientoStock, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("Producto", id.String())
		}
		return nil, apierror.NewPersistence(err)
	}
	movs, err := s.movimientoRepo.ListByProducto(ctx, id)
	if err != nil {
		return nil, apierror.NewPersistence(err)
	}
	return movs, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (s *productoService) resolveCategorias(ctx context.Context, ids []string) ([]model.Categoria, error) {
	if len(ids) == 0 {
		return []model.Categoria{}, nil
	}
	parsed, err := parseIDs(ids)
	if err != nil {
		return nil, apierror.NewValidation("category_ids contiene un UUID inválido", nil)
	}
	categorias, err := s.categoriaRepo.ObtenerPorIDs(ctx, parsed)
	if err != nil {
		return nil, apierror.NewPersistence(err)
	}
	if len(categorias) != len(parsed) {
		return nil, apierror.NewNotFound("Categoría", "")
	}
	return categorias, nil
}

func (s *productoService) resolveEtiquetas(ctx context.Context, ids []string) ([]model.Etiqueta, error) {
	if len(ids) == 0 {
		return []model.Etiqueta{}, nil
	}
	parsed, err := parseIDs(ids)
	if err != nil {
		return nil, apierror.NewValidation("tag_ids contiene un UUID inválido", nil)
	}
	etiquetas, err := s.etiquetaRepo.ObtenerPorIDs(ctx, parsed)
	if err != nil {
		return nil, apierror.NewPersistence(err)
	}
	if len(etiquetas) != len(parsed) {
		return nil, apierror.NewNotFound("Etiqueta", "")
	}
	return etiquetas, nil
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseIDList splits a comma-separated query value into UUIDs, ignoring empty
// segments.
func parseIDList(csv string) ([]uuid.UUID, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, nil
	}
	var ids []uuid.UUID
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	etiquetas := make([]dto.EtiquetaResponse, 0, len(p.Etiquetas))
	for _, e := range p.Etiquetas {
		etiquetas = append(etiquetas, dto.EtiquetaResponse{ID: e.ID.String(), Nombre: e.Nombre})
	}
	categorias := make([]dto.CategoriaResponse, 0, len(p.Categorias))
	for _, c := range p.Categorias {
		categorias = append(categorias, dto.CategoriaResponse{ID: c.ID.String(), Nombre: c.Nombre, ImageURL: c.ImageURL})
	}
	return &dto.ProductoResponse{
		ID:              p.ID.String(),
		Nombre:          p.Nombre,
		PrecioRevista:   p.PrecioRevista,
		PrecioShowroom:  p.PrecioShowroom,
		PrecioFeria:     p.PrecioFeria,
		StockActual:     p.StockActual,
		StockCritico:    p.StockCritico,
		ImageURL:        p.ImageURL,
		CatalogImageURL: p.CatalogImageURL,
		CatalogPrice:    p.CatalogPrice,
		Etiquetas:       etiquetas,
		Categorias:      categorias,
	}
}
