package service

import (
	"context"
	"errors"
	"time"

	"github.com/msambrenil/OjitosSinUsuarios/internal/apierror"
	"github.com/msambrenil/OjitosSinUsuarios/internal/dto"
	"github.com/msambrenil/OjitosSinUsuarios/internal/model"
	"github.com/msambrenil/OjitosSinUsuarios/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VentaService is the sale engine: it owns sale creation, the estado state
// machine and deletion, and it is the only writer of product stock besides the
// manual adjustment endpoint. Stock bookkeeping rule: a venta holds exactly one
// stock reservation per item while its estado is not Cancelado; Cancelado (and
// deletion) releases it. Cada operación multi-paso corre en una transacción.
type VentaService interface {
	Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	CambiarEstado(ctx context.Context, id uuid.UUID, nuevoEstado string) (*dto.VentaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Obtener(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	Listar(ctx context.Context, filter dto.VentaFilter) ([]dto.VentaResponse, error)
}

type ventaService struct {
	repo           repository.VentaRepository
	productoRepo   repository.ProductoRepository
	clienteRepo    repository.ClienteRepository
	movimientoRepo repository.MovimientoStockRepository
}

func NewVentaService(
	repo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
	movimientoRepo repository.MovimientoStockRepository,
) VentaService {
	return &ventaService{
		repo:           repo,
		productoRepo:   productoRepo,
		clienteRepo:    clienteRepo,
		movimientoRepo: movimientoRepo,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// wrapTxErr passes domain errors through untouched and wraps anything else
// (storage failures) as a PersistenceError. By the time it runs, the
// transaction has already been rolled back.
func wrapTxErr(err error) error {
	if err == nil {
		return nil
	}
	var nf *apierror.NotFoundError
	var is *apierror.InsufficientStockError
	var ve *apierror.ValidationError
	var ce *apierror.ConflictError
	if errors.As(err, &nf) || errors.As(err, &is) || errors.As(err, &ve) || errors.As(err, &ce) {
		return err
	}
	return apierror.NewPersistence(err)
}

// ── Registrar ────────────────────────────────────────────────────────────────
// Checkout. Pre-flight validation resolves client, products and prices outside
// the transaction; inside it every item decrements stock through a guarded
// UPDATE, so two concurrent sales of the same product cannot both pass the
// stock check. Any failure aborts with no partial stock mutation.

func (s *ventaService) Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, apierror.NewValidation("client_id inválido", nil)
	}
	cliente, err := s.clienteRepo.ObtenerPorID(ctx, clienteID)
	if err != nil {
		return nil, apierror.NewNotFound("Cliente", req.ClienteID)
	}

	type resolvedItem struct {
		productoID uuid.UUID
		nombre     string
		precio     decimal.Decimal
		cantidad   int
		subtotal   decimal.Decimal
	}

	var resolved []resolvedItem
	total := decimal.Zero

	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, apierror.NewValidation("product_id inválido", nil)
		}
		if item.Cantidad <= 0 {
			return nil, apierror.NewValidation("quantity debe ser un entero positivo", nil)
		}
		p, err := s.productoRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, apierror.NewNotFound("Producto", item.ProductoID)
		}
		if p.StockActual < item.Cantidad {
			return nil, &apierror.InsufficientStockError{
				Producto:   p.Nombre,
				Disponible: p.StockActual,
				Solicitado: item.Cantidad,
			}
		}

		// Frozen price snapshot: explicit override, or the showroom price.
		precio := p.PrecioShowroom
		if item.PrecioVenta != nil {
			precio = *item.PrecioVenta
		}
		subtotal := precio.Mul(decimal.NewFromInt(int64(item.Cantidad)))
		total = total.Add(subtotal)

		resolved = append(resolved, resolvedItem{
			productoID: pid,
			nombre:     p.Nombre,
			precio:     precio,
			cantidad:   item.Cantidad,
			subtotal:   subtotal,
		})
	}

	venta := model.Venta{
		ClienteID: clienteID,
		FechaAlta: time.Now(),
		Total:     total,
		Estado:    model.EstadoContactado,
	}
	for _, r := range resolved {
		venta.Items = append(venta.Items, model.VentaItem{
			ProductoID:  r.productoID,
			Cantidad:    r.cantidad,
			PrecioVenta: r.precio,
			Subtotal:    r.subtotal,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, &venta); err != nil {
			return err
		}
		for _, r := range resolved {
			if err := s.descontarItemTx(tx, venta.ID, r.productoID, r.nombre, r.cantidad, "venta"); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, wrapTxErr(txErr)
	}

	resp := ventaToResponse(&venta)
	resp.Cliente = cliente.Nombre
	for i, r := range resolved {
		resp.Items[i].Producto = r.nombre
	}
	return resp, nil
}

// descontarItemTx applies one guarded stock decrement plus its ledger row.
// The guard (stock_actual >= cantidad) is what keeps stock non-negative under
// concurrent writers; losing the race surfaces as InsufficientStock.
func (s *ventaService) descontarItemTx(tx *gorm.DB, ventaID, productoID uuid.UUID, nombre string, cantidad int, tipo string) error {
	stockAntes := 0
	if antes, err := s.productoRepo.FindByIDTx(tx, productoID); err == nil {
		stockAntes = antes.StockActual
		nombre = antes.Nombre
	}

	if err := s.productoRepo.DescontarStockTx(tx, productoID, cantidad); err != nil {
		if errors.Is(err, repository.ErrStockInsuficiente) {
			return &apierror.InsufficientStockError{
				Producto:   nombre,
				Disponible: stockAntes,
				Solicitado: cantidad,
			}
		}
		return err
	}

	vid := ventaID
	return s.movimientoRepo.CreateTx(tx, &model.MovimientoStock{
		ProductoID:    productoID,
		Tipo:          tipo,
		Cantidad:      -cantidad,
		StockAnterior: stockAntes,
		StockNuevo:    stockAntes - cantidad,
		VentaID:       &vid,
	})
}

// restaurarItemTx is the inverse: add the quantity back and record it.
func (s *ventaService) restaurarItemTx(tx *gorm.DB, ventaID, productoID uuid.UUID, cantidad int, tipo string) error {
	stockAntes := 0
	if antes, err := s.productoRepo.FindByIDTx(tx, productoID); err == nil {
		stockAntes = antes.StockActual
	}

	if err := s.productoRepo.RestaurarStockTx(tx, productoID, cantidad); err != nil {
		return err
	}

	vid := ventaID
	return s.movimientoRepo.CreateTx(tx, &model.MovimientoStock{
		ProductoID:    productoID,
		Tipo:          tipo,
		Cantidad:      cantidad,
		StockAnterior: stockAntes,
		StockNuevo:    stockAntes + cantidad,
		VentaID:       &vid,
	})
}

// ── CambiarEstado ────────────────────────────────────────────────────────────
// Any enumerated estado may follow any other; only crossing the Cancelado
// boundary touches stock. Re-setting the same estado is a no-op stock-wise.
//
// Reactivation (leaving Cancelado) re-validates against *current* stock and is
// atomic exactly like creation: if any item lacks stock the whole restock rolls
// back and the venta stays Cancelado.

func (s *ventaService) CambiarEstado(ctx context.Context, id uuid.UUID, nuevoEstado string) (*dto.VentaResponse, error) {
	if !model.EstadoValido(nuevoEstado) {
		return nil, apierror.NewValidation(
			"Estado \""+nuevoEstado+"\" no válido. Estados permitidos: Contactado, Armado, Entregado, Cobrado, Cancelado",
			nil)
	}

	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("Venta", id.String())
		}
		return nil, apierror.NewPersistence(err)
	}

	cancelando := nuevoEstado == model.EstadoCancelado && venta.Estado != model.EstadoCancelado
	reactivando := venta.Estado == model.EstadoCancelado && nuevoEstado != model.EstadoCancelado

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		switch {
		case cancelando:
			for _, item := range venta.Items {
				if err := s.restaurarItemTx(tx, venta.ID, item.ProductoID, item.Cantidad, "cancelacion"); err != nil {
					return err
				}
			}
		case reactivando:
			for _, item := range venta.Items {
				nombre := ""
				if item.Producto != nil {
					nombre = item.Producto.Nombre
				}
				if err := s.descontarItemTx(tx, venta.ID, item.ProductoID, nombre, item.Cantidad, "reactivacion"); err != nil {
					return err
				}
			}
		}
		return s.repo.UpdateEstadoTx(tx, venta.ID, nuevoEstado)
	})
	if txErr != nil {
		return nil, wrapTxErr(txErr)
	}

	venta.Estado = nuevoEstado
	return ventaToResponse(venta), nil
}

// ── Eliminar ─────────────────────────────────────────────────────────────────
// Mirrors the cancel effect: a venta that still holds stock releases it before
// the venta and its items are removed, all in one transaction. A venta already
// Cancelado released its stock when it was cancelled.

func (s *ventaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound("Venta", id.String())
		}
		return apierror.NewPersistence(err)
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if venta.Estado != model.EstadoCancelado {
			for _, item := range venta.Items {
				if err := s.restaurarItemTx(tx, venta.ID, item.ProductoID, item.Cantidad, "eliminacion"); err != nil {
					return err
				}
			}
		}
		return s.repo.DeleteTx(tx, venta.ID)
	})
	return wrapTxErr(txErr)
}

// ── Lecturas ─────────────────────────────────────────────────────────────────

func (s *ventaService) Obtener(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound("Venta", id.String())
		}
		return nil, apierror.NewPersistence(err)
	}
	return ventaToResponse(venta), nil
}

func (s *ventaService) Listar(ctx context.Context, filter dto.VentaFilter) ([]dto.VentaResponse, error) {
	if filter.Estado != "" && !model.EstadoValido(filter.Estado) {
		return nil, apierror.NewValidation("status de filtro no válido", nil)
	}
	ventas, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.NewPersistence(err)
	}
	result := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		result = append(result, *ventaToResponse(&ventas[i]))
	}
	return result, nil
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	items := make([]dto.ItemVentaResponse, 0, len(v.Items))
	for _, item := range v.Items {
		nombre := ""
		if item.Producto != nil {
			nombre = item.Producto.Nombre
		}
		items = append(items, dto.ItemVentaResponse{
			ID:          item.ID.String(),
			ProductoID:  item.ProductoID.String(),
			Producto:    nombre,
			Cantidad:    item.Cantidad,
			PrecioVenta: item.PrecioVenta,
			Subtotal:    item.Subtotal,
		})
	}
	clienteNombre := ""
	if v.Cliente != nil {
		clienteNombre = v.Cliente.Nombre
	}
	return &dto.VentaResponse{
		ID:        v.ID.String(),
		ClienteID: v.ClienteID.String(),
		Cliente:   clienteNombre,
		FechaAlta: v.FechaAlta.Format(time.RFC3339),
		Total:     v.Total,
		Estado:    v.Estado,
		Items:     items,
	}
}
