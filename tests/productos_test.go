package tests

import (
	"context"
	"testing"

	"github.com/msambrenil/OjitosSinUsuarios/internal/apierror"
	"github.com/msambrenil/OjitosSinUsuarios/internal/dto"
	"github.com/msambrenil/OjitosSinUsuarios/internal/model"
	"github.com/msambrenil/OjitosSinUsuarios/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildProductoSvc() (service.ProductoService, *stubProductoRepo, *stubCategoriaRepo, *stubEtiquetaRepo, *stubMovimientoRepo, *stubConfigRepo) {
	productoRepo := newStubProductoRepo()
	categoriaRepo := newStubCategoriaRepo()
	etiquetaRepo := newStubEtiquetaRepo()
	movRepo := &stubMovimientoRepo{}
	configRepo := newStubConfigRepo()
	svc := service.NewProductoService(productoRepo, categoriaRepo, etiquetaRepo, movRepo, configRepo)
	return svc, productoRepo, categoriaRepo, etiquetaRepo, movRepo, configRepo
}

func TestCrearProducto_ConAsociaciones(t *testing.T) {
	svc, _, categoriaRepo, etiquetaRepo, _, _ := buildProductoSvc()

	cat := &model.Categoria{ID: uuid.New(), Nombre: "Perfumería"}
	categoriaRepo.categorias[cat.ID] = cat
	tag := &model.Etiqueta{ID: uuid.New(), Nombre: "Novedad"}
	etiquetaRepo.etiquetas[tag.ID] = tag

	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:         "Perfume Kaiak",
		PrecioShowroom: decimal.RequireFromString("15900.00"),
		StockActual:    12,
		StockCritico:   3,
		CategoriaIDs:   []string{cat.ID.String()},
		EtiquetaIDs:    []string{tag.ID.String()},
	})
	require.NoError(t, err)
	require.Len(t, resp.Categorias, 1)
	assert.Equal(t, "Perfumería", resp.Categorias[0].Nombre)
	require.Len(t, resp.Etiquetas, 1)
	assert.Equal(t, "Novedad", resp.Etiquetas[0].Nombre)
}

func TestCrearProducto_CategoriaInexistente(t *testing.T) {
	svc, _, _, _, _, _ := buildProductoSvc()

	_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:         "Perfume Luna",
		PrecioShowroom: decimal.RequireFromString("12000.00"),
		CategoriaIDs:   []string{uuid.New().String()},
	})
	var nf *apierror.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestActualizarProducto_Parcial(t *testing.T) {
	svc, productoRepo, _, _, _, _ := buildProductoSvc()
	p := seedProducto(productoRepo, "Crema Tododia", "7990.00", 20, 5)

	nuevoNombre := "Crema Tododia Algodón"
	resp, err := svc.Actualizar(context.Background(), p.ID, dto.ActualizarProductoRequest{
		Nombre: &nuevoNombre,
	})
	require.NoError(t, err)
	assert.Equal(t, "Crema Tododia Algodón", resp.Nombre)
	// Untouched fields keep their values
	assert.Equal(t, "7990", resp.PrecioShowroom.String())
	assert.Equal(t, 20, resp.StockActual)
}

func TestAjustarStock_DeltaPositivoYNegativo(t *testing.T) {
	svc, productoRepo, _, _, movRepo, _ := buildProductoSvc()
	p := seedProducto(productoRepo, "Labial Una", "6500.00", 10, 2)

	resp, err := svc.AjustarStock(context.Background(), p.ID, dto.AjustarStockRequest{Delta: 5, Motivo: "reposición"})
	require.NoError(t, err)
	assert.Equal(t, 15, resp.StockActual)

	resp, err = svc.AjustarStock(context.Background(), p.ID, dto.AjustarStockRequest{Delta: -4, Motivo: "rotura"})
	require.NoError(t, err)
	assert.Equal(t, 11, resp.StockActual)

	require.Len(t, movRepo.movimientos, 2)
	assert.Equal(t, "ajuste_manual", movRepo.movimientos[0].Tipo)
	assert.Equal(t, 5, movRepo.movimientos[0].Cantidad)
	assert.Equal(t, -4, movRepo.movimientos[1].Cantidad)
	assert.Nil(t, movRepo.movimientos[1].VentaID)
}

func TestAjustarStock_NoPermiteNegativo(t *testing.T) {
	svc, productoRepo, _, _, _, _ := buildProductoSvc()
	p := seedProducto(productoRepo, "Jabón Ekos", "3000.00", 3, 1)

	_, err := svc.AjustarStock(context.Background(), p.ID, dto.AjustarStockRequest{Delta: -10})
	var is *apierror.InsufficientStockError
	require.ErrorAs(t, err, &is)
	assert.Equal(t, 3, productoRepo.productos[p.ID].StockActual)
}

func TestCatalogo_PrecioFeriaYStockStatus(t *testing.T) {
	svc, productoRepo, _, _, _, configRepo := buildProductoSvc()

	conFeria := seedProducto(productoRepo, "Con feria", "1000.00", 10, 2)
	feria := decimal.RequireFromString("800.00")
	conFeria.PrecioFeria = &feria

	seedProducto(productoRepo, "Sin feria", "500.00", 2, 3)
	seedProducto(productoRepo, "Agotado", "300.00", 0, 1)

	// Feria mode off: everyone shows showroom price
	items, err := svc.Catalogo(context.Background(), dto.CatalogoFilter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	byName := make(map[string]dto.CatalogoItemResponse)
	for _, it := range items {
		byName[it.Nombre] = it
	}
	assert.Equal(t, "1000", byName["Con feria"].DisplayPrice.String())

	// Feria mode on: products with a feria price switch to it
	configRepo.cfg.IsFeriaModeActive = true
	items, err = svc.Catalogo(context.Background(), dto.CatalogoFilter{})
	require.NoError(t, err)
	byName = make(map[string]dto.CatalogoItemResponse)
	for _, it := range items {
		byName[it.Nombre] = it
	}
	assert.Equal(t, "800", byName["Con feria"].DisplayPrice.String())
	// No feria price set — falls back to showroom
	assert.Equal(t, "500", byName["Sin feria"].DisplayPrice.String())

	// Stock badges
	assert.Equal(t, "", byName["Con feria"].StockStatus)
	assert.Equal(t, "Pocas unidades!", byName["Sin feria"].StockStatus)
	assert.Equal(t, "AGOTADO", byName["Agotado"].StockStatus)
}

func TestCatalogo_FiltroIDsInvalidos(t *testing.T) {
	svc, _, _, _, _, _ := buildProductoSvc()

	_, err := svc.Catalogo(context.Background(), dto.CatalogoFilter{CategoriaIDs: "no-es-uuid"})
	var ve *apierror.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestMovimientos_ProductoInexistente(t *testing.T) {
	svc, _, _, _, _, _ := buildProductoSvc()

	_, err := svc.Movimientos(context.Background(), uuid.New())
	var nf *apierror.NotFoundError
	require.ErrorAs(t, err, &nf)
}
