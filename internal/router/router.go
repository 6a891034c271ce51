package router

import (
	"time"

	"github.com/msambrenil/OjitosSinUsuarios/internal/config"
	"github.com/msambrenil/OjitosSinUsuarios/internal/handler"
	"github.com/msambrenil/OjitosSinUsuarios/internal/middleware"
	"github.com/msambrenil/OjitosSinUsuarios/internal/repository"
	"github.com/msambrenil/OjitosSinUsuarios/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productoRepo := repository.NewProductoRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	etiquetaRepo := repository.NewEtiquetaRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	movimientoRepo := repository.NewMovimientoStockRepository(db)
	configRepo := repository.NewConfigRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo, etiquetaRepo, movimientoRepo, configRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	etiquetaSvc := service.NewEtiquetaService(etiquetaRepo)
	clienteSvc := service.NewClienteService(clienteRepo, ventaRepo)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, clienteRepo, movimientoRepo)
	statsSvc := service.NewStatsService(ventaRepo, productoRepo)
	configSvc := service.NewConfigService(configRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productosH := handler.NewProductosHandler(productoSvc)
	catalogoH := handler.NewCatalogoHandler(productoSvc, rdb, time.Duration(cfg.CatalogCacheTTL)*time.Second)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	etiquetasH := handler.NewEtiquetasHandler(etiquetaSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	configH := handler.NewSiteConfigHandler(configSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")
	{
		api.GET("/config", configH.Obtener)
		api.PUT("/config", configH.Actualizar)

		api.POST("/products", productosH.Crear)
		api.GET("/products", productosH.Listar)
		api.GET("/products/:id", productosH.Obtener)
		api.PUT("/products/:id", productosH.Actualizar)
		api.DELETE("/products/:id", productosH.Eliminar)
		api.PATCH("/products/:id/stock", productosH.AjustarStock)
		api.GET("/products/:id/movements", productosH.Movimientos)

		api.GET("/catalog", catalogoH.Listar)

		api.POST("/categories", categoriasH.Crear)
		api.GET("/categories", categoriasH.Listar)
		api.PUT("/categories/:id", categoriasH.Actualizar)
		api.DELETE("/categories/:id", categoriasH.Eliminar)

		api.POST("/tags", etiquetasH.Crear)
		api.GET("/tags", etiquetasH.Listar)
		api.PUT("/tags/:id", etiquetasH.Actualizar)
		api.DELETE("/tags/:id", etiquetasH.Eliminar)

		api.POST("/clients", clientesH.Crear)
		api.GET("/clients", clientesH.Listar)
		api.GET("/clients/:id", clientesH.Obtener)
		api.PUT("/clients/:id", clientesH.Actualizar)
		api.DELETE("/clients/:id", clientesH.Eliminar)

		api.POST("/sales", ventasH.Registrar)
		api.GET("/sales", ventasH.Listar)
		api.GET("/sales/:id", ventasH.Obtener)
		api.PUT("/sales/:id", ventasH.CambiarEstado)
		api.DELETE("/sales/:id", ventasH.Eliminar)

		api.GET("/dashboard/summary", statsH.Dashboard)
		api.GET("/stats/sales_over_time", statsH.VentasPorPeriodo)
		api.GET("/stats/top_products", statsH.TopProductos)
		api.GET("/stats/top_clients", statsH.TopClientes)
		api.GET("/stats/stock_summary", statsH.StockSummary)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
