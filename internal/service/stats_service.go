package service

import (
	"context"
	"sort"

	"github.com/msambrenil/OjitosSinUsuarios/internal/apierror"
	"github.com/msambrenil/OjitosSinUsuarios/internal/dto"
	"github.com/msambrenil/OjitosSinUsuarios/internal/model"
	"github.com/msambrenil/OjitosSinUsuarios/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatsService is the read-only reporting engine. Every aggregate is computed
// on demand from current records — nothing is maintained incrementally, so the
// numbers cannot drift from the sale state machine. Financial aggregates
// exclude ventas in estado Cancelado.
type StatsService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	VentasPorPeriodo(ctx context.Context, period string) ([]dto.VentasPorPeriodo, error)
	TopProductos(ctx context.Context, by string, limit int) ([]dto.TopProductoResponse, error)
	TopClientes(ctx context.Context, by string, limit int) ([]dto.TopClienteResponse, error)
	StockSummary(ctx context.Context) (*dto.StockSummaryResponse, error)
}

type statsService struct {
	ventaRepo    repository.VentaRepository
	productoRepo repository.ProductoRepository
}

func NewStatsService(ventaRepo repository.VentaRepository, productoRepo repository.ProductoRepository) StatsService {
	return &statsService{ventaRepo: ventaRepo, productoRepo: productoRepo}
}

const defaultTopLimit = 5

// ── Dashboard ────────────────────────────────────────────────────────────────

// bucket sums count and total over the ventas whose estado passes the filter.
// Each dashboard card gets its own independent pass.
func bucket(ventas []model.Venta, match func(estado string) bool) dto.ResumenBucket {
	b := dto.ResumenBucket{TotalAmount: decimal.Zero}
	for i := range ventas {
		if match(ventas[i].Estado) {
			b.Count++
			b.TotalAmount = b.TotalAmount.Add(ventas[i].Total)
		}
	}
	return b
}

func (s *statsService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	ventas, err := s.ventaRepo.ListAll(ctx)
	if err != nil {
		return nil, apierror.NewPersistence(err)
	}

	entregado := func(e string) bool { return e == model.EstadoEntregado }

	return &dto.DashboardResponse{
		VentasEntregadas: bucket(ventas, entregado),
		VentasAEntregar: bucket(ventas, func(e string) bool {
			return e == model.EstadoContactado || e == model.EstadoArmado
		}),
		VentasPorArmar: bucket(ventas, func(e string) bool { return e == model.EstadoContactado }),
		VentasCobradas: bucket(ventas, func(e string) bool { return e == model.EstadoCobrado }),
		// Entregado y Cobrado son estados mutuamente excluyentes, por lo que
		// "a cobrar" coincide con "entregadas".
		VentasACobrar: bucket(ventas, entregado),
	}, nil
}

// ── Ventas por período ───────────────────────────────────────────────────────

func (s *statsService) VentasPorPeriodo(ctx context.Context, period string) ([]dto.VentasPorPeriodo, error) {
	var layout string
	switch period {
	case "day":
		layout = "2006-01-02"
	case "month":
		layout = "2006-01"
	case "year":
		layout = "2006"
	default:
		return nil, apierror.NewValidation("Parámetro 'period' debe ser 'day', 'month' o 'year'.", nil)
	}

	ventas, err := s.ventaRepo.ListAll(ctx)
	if err != nil {
		return nil, apierror.NewPersistence(err)
	}

	type agg struct {
		count int
		total decimal.Decimal
	}
	porPeriodo := make(map[string]*agg)
	for i := range ventas {
		if ventas[i].Estado == model.EstadoCancelado {
			continue
		}
		label := ventas[i].FechaAlta.Format(layout)
		a, ok := porPeriodo[label]
		if !ok {
			a = &agg{total: decimal.Zero}
			porPeriodo[label] = a
		}
		a.count++
		a.total = a.total.Add(ventas[i].Total)
	}

	labels := make([]string, 0, len(porPeriodo))
	for label := range porPeriodo {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	result := make([]dto.VentasPorPeriodo, 0, len(labels))
	for _, label := range labels {
		result = append(result, dto.VentasPorPeriodo{
			Periodo:     label,
			OrderCount:  porPeriodo[label].count,
			TotalVentas: porPeriodo[label].total,
		})
	}
	return result, nil
}

// ── Top productos ────────────────────────────────────────────────────────────

func (s *statsService) TopProductos(ctx context.Context, by string, limit int) ([]dto.TopProductoResponse, error) {
	if by != "quantity" && by != "value" {
		return nil, apierror.NewValidation("Parámetro 'by' debe ser 'quantity' o 'value'.", nil)
	}
	if limit <= 0 {
		limit = defaultTopLimit
	}

	ventas, err := s.ventaRepo.ListAll(ctx)
	if err != nil {
		return nil, apierror.NewPersistence(err)
	}

	type agg struct {
		nombre   string
		cantidad int
		valor    decimal.Decimal
	}
	porProducto := make(map[uuid.UUID]*agg)
	for i := range ventas {
		if ventas[i].Estado == model.EstadoCancelado {
			continue
		}
		for _, item := range ventas[i].Items {
			a, ok := porProducto[item.ProductoID]
			if !ok {
				a = &agg{valor: decimal.Zero}
				if item.Producto != nil {
					a.nombre = item.Producto.Nombre
				}
				porProducto[item.ProductoID] = a
			}
			a.cantidad += item.Cantidad
			a.valor = a.valor.Add(item.Subtotal)
		}
	}

	aggs := make([]*agg, 0, len(porProducto))
	for _, a := range porProducto {
		aggs = append(aggs, a)
	}
	// Descending by metric; ties broken by product name ascending so the
	// ordering is stable run to run.
	sort.Slice(aggs, func(i, j int) bool {
		if by == "quantity" {
			if aggs[i].cantidad != aggs[j].cantidad {
				return aggs[i].cantidad > aggs[j].cantidad
			}
		} else if !aggs[i].valor.Equal(aggs[j].valor) {
			return aggs[i].valor.GreaterThan(aggs[j].valor)
		}
		return aggs[i].nombre < aggs[j].nombre
	})
	if len(aggs) > limit {
		aggs = aggs[:limit]
	}

	result := make([]dto.TopProductoResponse, 0, len(aggs))
	for _, a := range aggs {
		r := dto.TopProductoResponse{Producto: a.nombre}
		if by == "quantity" {
			cantidad := a.cantidad
			r.TotalVendido = &cantidad
		} else {
			valor := a.valor
			r.TotalValor = &valor
		}
		result = append(result, r)
	}
	return result, nil
}

// ── Top clientes ─────────────────────────────────────────────────────────────

func (s *statsService) TopClientes(ctx context.Context, by string, limit int) ([]dto.TopClienteResponse, error) {
	if by != "frequency" && by != "value" {
		return nil, apierror.NewValidation("Parámetro 'by' debe ser 'frequency' o 'value'.", nil)
	}
	if limit <= 0 {
		limit = defaultTopLimit
	}

	ventas, err := s.ventaRepo.ListAll(ctx)
	if err != nil {
		return nil, apierror.NewPersistence(err)
	}

	type agg struct {
		nombre string
		count  int
		total  decimal.Decimal
	}
	porCliente := make(map[uuid.UUID]*agg)
	for i := range ventas {
		if ventas[i].Estado == model.EstadoCancelado {
			continue
		}
		a, ok := porCliente[ventas[i].ClienteID]
		if !ok {
			a = &agg{total: decimal.Zero}
			if ventas[i].Cliente != nil {
				a.nombre = ventas[i].Cliente.Nombre
			}
			porCliente[ventas[i].ClienteID] = a
		}
		a.count++
		a.total = a.total.Add(ventas[i].Total)
	}

	aggs := make([]*agg, 0, len(porCliente))
	for _, a := range porCliente {
		aggs = append(aggs, a)
	}
	sort.Slice(aggs, func(i, j int) bool {
		if by == "frequency" {
			if aggs[i].count != aggs[j].count {
				return aggs[i].count > aggs[j].count
			}
		} else if !aggs[i].total.Equal(aggs[j].total) {
			return aggs[i].total.GreaterThan(aggs[j].total)
		}
		return aggs[i].nombre < aggs[j].nombre
	})
	if len(aggs) > limit {
		aggs = aggs[:limit]
	}

	result := make([]dto.TopClienteResponse, 0, len(aggs))
	for _, a := range aggs {
		r := dto.TopClienteResponse{Cliente: a.nombre}
		if by == "frequency" {
			count := a.count
			r.OrderCount = &count
		} else {
			total := a.total
			r.TotalGastado = &total
		}
		result = append(result, r)
	}
	return result, nil
}

// ── Stock summary ────────────────────────────────────────────────────────────

func (s *statsService) StockSummary(ctx context.Context) (*dto.StockSummaryResponse, error) {
	criticos, err := s.productoRepo.ListCriticos(ctx)
	if err != nil {
		return nil, apierror.NewPersistence(err)
	}
	agotados, err := s.productoRepo.ListAgotados(ctx)
	if err != nil {
		return nil, apierror.NewPersistence(err)
	}

	resp := &dto.StockSummaryResponse{
		CriticalStock: make([]dto.ProductoResponse, 0, len(criticos)),
		OutOfStock:    make([]dto.ProductoResponse, 0, len(agotados)),
	}
	for i := range criticos {
		resp.CriticalStock = append(resp.CriticalStock, *productoToResponse(&criticos[i]))
	}
	for i := range agotados {
		resp.OutOfStock = append(resp.OutOfStock, *productoToResponse(&agotados[i]))
	}
	return resp, nil
}
