package tests

import (
	"context"
	"sort"

	"github.com/msambrenil/OjitosSinUsuarios/internal/dto"
	"github.com/msambrenil/OjitosSinUsuarios/internal/model"
	"github.com/msambrenil/OjitosSinUsuarios/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory ProductoRepository stub ────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	return r.sorted(func(*model.Producto) bool { return true }), nil
}

func (r *stubProductoRepo) ListCatalogo(_ context.Context, search string, _, _ []uuid.UUID) ([]model.Producto, error) {
	return r.sorted(func(*model.Producto) bool { return true }), nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) ReplaceCategorias(_ context.Context, p *model.Producto, categorias []model.Categoria) error {
	r.productos[p.ID].Categorias = categorias
	return nil
}

func (r *stubProductoRepo) ReplaceEtiquetas(_ context.Context, p *model.Producto, etiquetas []model.Etiqueta) error {
	r.productos[p.ID].Etiquetas = etiquetas
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) ListCriticos(_ context.Context) ([]model.Producto, error) {
	return r.sorted(func(p *model.Producto) bool {
		return p.StockActual > 0 && p.StockActual <= p.StockCritico
	}), nil
}

func (r *stubProductoRepo) ListAgotados(_ context.Context) ([]model.Producto, error) {
	return r.sorted(func(p *model.Producto) bool { return p.StockActual == 0 }), nil
}

func (r *stubProductoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) DescontarStockTx(_ *gorm.DB, id uuid.UUID, cantidad int) error {
	p, ok := r.productos[id]
	if !ok || p.StockActual < cantidad {
		return repository.ErrStockInsuficiente
	}
	p.StockActual -= cantidad
	return nil
}

func (r *stubProductoRepo) RestaurarStockTx(_ *gorm.DB, id uuid.UUID, cantidad int) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.StockActual += cantidad
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

func (r *stubProductoRepo) sorted(match func(*model.Producto) bool) []model.Producto {
	var result []model.Producto
	for _, p := range r.productos {
		if match(p) {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Nombre < result[j].Nombre })
	return result
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── In-memory VentaRepository stub ───────────────────────────────────────────

type stubVentaRepo struct {
	ventas map[uuid.UUID]*model.Venta
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *stubVentaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	for i := range v.Items {
		if v.Items[i].ID == uuid.Nil {
			v.Items[i].ID = uuid.New()
		}
		v.Items[i].VentaID = v.ID
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVentaRepo) List(_ context.Context, filter dto.VentaFilter) ([]model.Venta, error) {
	var result []model.Venta
	for _, v := range r.ventas {
		if filter.Estado != "" && v.Estado != filter.Estado {
			continue
		}
		if filter.ClienteID != "" && v.ClienteID.String() != filter.ClienteID {
			continue
		}
		result = append(result, *v)
	}
	return result, nil
}

func (r *stubVentaRepo) ListAll(_ context.Context) ([]model.Venta, error) {
	var result []model.Venta
	for _, v := range r.ventas {
		result = append(result, *v)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].FechaAlta.Before(result[j].FechaAlta) })
	return result, nil
}

func (r *stubVentaRepo) ExistsByClienteID(_ context.Context, clienteID uuid.UUID) (bool, error) {
	for _, v := range r.ventas {
		if v.ClienteID == clienteID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubVentaRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estado string) error {
	v, ok := r.ventas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Estado = estado
	return nil
}

func (r *stubVentaRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.ventas, id)
	return nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── In-memory ClienteRepository stub ─────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Crear(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) Listar(_ context.Context) ([]model.Cliente, error) {
	var result []model.Cliente
	for _, c := range r.clientes {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Nombre < result[j].Nombre })
	return result, nil
}

func (r *stubClienteRepo) Actualizar(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.clientes, id)
	return nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── In-memory MovimientoStockRepository stub ─────────────────────────────────

type stubMovimientoRepo struct {
	movimientos []model.MovimientoStock
}

func (r *stubMovimientoRepo) CreateTx(_ *gorm.DB, m *model.MovimientoStock) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubMovimientoRepo) ListByProducto(_ context.Context, productoID uuid.UUID) ([]model.MovimientoStock, error) {
	var result []model.MovimientoStock
	for _, m := range r.movimientos {
		if m.ProductoID == productoID {
			result = append(result, m)
		}
	}
	return result, nil
}

var _ repository.MovimientoStockRepository = (*stubMovimientoRepo)(nil)

// ── In-memory CategoriaRepository / EtiquetaRepository stubs ─────────────────

type stubCategoriaRepo struct {
	categorias map[uuid.UUID]*model.Categoria
	asignadas  map[uuid.UUID]bool // categoria → referenced by a product
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{
		categorias: make(map[uuid.UUID]*model.Categoria),
		asignadas:  make(map[uuid.UUID]bool),
	}
}

func (r *stubCategoriaRepo) Crear(_ context.Context, c *model.Categoria) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoriaRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.Categoria, error) {
	for _, c := range r.categorias {
		if c.Nombre == nombre {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoriaRepo) ObtenerPorIDs(_ context.Context, ids []uuid.UUID) ([]model.Categoria, error) {
	var result []model.Categoria
	for _, id := range ids {
		if c, ok := r.categorias[id]; ok {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (r *stubCategoriaRepo) Listar(_ context.Context) ([]model.Categoria, error) {
	var result []model.Categoria
	for _, c := range r.categorias {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Nombre < result[j].Nombre })
	return result, nil
}

func (r *stubCategoriaRepo) Actualizar(_ context.Context, c *model.Categoria) error {
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.categorias, id)
	return nil
}

func (r *stubCategoriaRepo) EnUso(_ context.Context, id uuid.UUID) (bool, error) {
	return r.asignadas[id], nil
}

var _ repository.CategoriaRepository = (*stubCategoriaRepo)(nil)

type stubEtiquetaRepo struct {
	etiquetas map[uuid.UUID]*model.Etiqueta
	asignadas map[uuid.UUID]bool
}

func newStubEtiquetaRepo() *stubEtiquetaRepo {
	return &stubEtiquetaRepo{
		etiquetas: make(map[uuid.UUID]*model.Etiqueta),
		asignadas: make(map[uuid.UUID]bool),
	}
}

func (r *stubEtiquetaRepo) Crear(_ context.Context, e *model.Etiqueta) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.etiquetas[e.ID] = e
	return nil
}

func (r *stubEtiquetaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Etiqueta, error) {
	e, ok := r.etiquetas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEtiquetaRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.Etiqueta, error) {
	for _, e := range r.etiquetas {
		if e.Nombre == nombre {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubEtiquetaRepo) ObtenerPorIDs(_ context.Context, ids []uuid.UUID) ([]model.Etiqueta, error) {
	var result []model.Etiqueta
	for _, id := range ids {
		if e, ok := r.etiquetas[id]; ok {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (r *stubEtiquetaRepo) Listar(_ context.Context) ([]model.Etiqueta, error) {
	var result []model.Etiqueta
	for _, e := range r.etiquetas {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Nombre < result[j].Nombre })
	return result, nil
}

func (r *stubEtiquetaRepo) Actualizar(_ context.Context, e *model.Etiqueta) error {
	r.etiquetas[e.ID] = e
	return nil
}

func (r *stubEtiquetaRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.etiquetas, id)
	return nil
}

func (r *stubEtiquetaRepo) EnUso(_ context.Context, id uuid.UUID) (bool, error) {
	return r.asignadas[id], nil
}

var _ repository.EtiquetaRepository = (*stubEtiquetaRepo)(nil)

// ── In-memory ConfigRepository stub ──────────────────────────────────────────

type stubConfigRepo struct {
	cfg model.Configuracion
}

func newStubConfigRepo() *stubConfigRepo {
	return &stubConfigRepo{cfg: model.Configuracion{
		ID:                uuid.New(),
		SiteName:          "Showroom Natura OjitOs",
		BrandColorPrimary: "#6750A4",
	}}
}

func (r *stubConfigRepo) Obtener(_ context.Context) (*model.Configuracion, error) {
	c := r.cfg
	return &c, nil
}

func (r *stubConfigRepo) Actualizar(_ context.Context, c *model.Configuracion) error {
	r.cfg = *c
	return nil
}

var _ repository.ConfigRepository = (*stubConfigRepo)(nil)

// ── Seed helpers ─────────────────────────────────────────────────────────────

func seedProducto(repo *stubProductoRepo, nombre string, precio string, stock, critico int) *model.Producto {
	p := &model.Producto{
		ID:             uuid.New(),
		Nombre:         nombre,
		PrecioShowroom: decimal.RequireFromString(precio),
		StockActual:    stock,
		StockCritico:   critico,
	}
	repo.productos[p.ID] = p
	return p
}

func seedCliente(repo *stubClienteRepo, nombre string) *model.Cliente {
	c := &model.Cliente{ID: uuid.New(), Nombre: nombre, Nivel: "Nuevo"}
	repo.clientes[c.ID] = c
	return c
}
