package router

import (
	"time"

	"kiosco/internal/config"
	"kiosco/internal/handler"
	"kiosco/internal/middleware"
	"kiosco/internal/repository"
	"kiosco/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// rdb may be nil; revoked sessions are then kept in process memory.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	if cfg.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimiter(cfg.RateLimitPerMin, time.Minute))
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)
	cajaRepo := repository.NewCajaRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	sesiones := repository.NewSesionStore(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, sesiones, cfg)
	clienteSvc := service.NewClienteService(clienteRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	productoSvc := service.NewProductoService(productoRepo)
	cajaSvc := service.NewCajaService(cajaRepo)
	ventaSvc := service.NewVentaService(facturaRepo, productoRepo, clienteRepo)
	facturaSvc := service.NewFacturaService(facturaRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, cfg.CookieSecure)
	clientesH := handler.NewClientesHandler(clienteSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	cajaH := handler.NewCajaHandler(cajaSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	facturasH := handler.NewFacturasHandler(facturaSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/register", middleware.LoginRateLimiter(), authH.Registrar)
	r.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	r.POST("/logout", authH.Logout)

	// Everything under /dashboard requires a session
	dash := r.Group("/dashboard", middleware.SesionAuth(cfg.JWTSecret, sesiones))
	{
		dash.GET("", dashboardH.Resumen)

		clientes := dash.Group("/clientes")
		{
			clientes.GET("", clientesH.Listar)
			clientes.POST("", clientesH.Crear)
			clientes.GET("/:id", clientesH.Obtener)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
		}

		prov := dash.Group("/proveedores")
		{
			prov.GET("", proveedoresH.Listar)
			prov.POST("", proveedoresH.Guardar)
			prov.GET("/:id", proveedoresH.Obtener)
			prov.PUT("/:id", proveedoresH.Actualizar)
			prov.DELETE("/:id", proveedoresH.Eliminar)
		}

		prods := dash.Group("/productos")
		{
			prods.GET("", productosH.Listar)
			prods.POST("", productosH.Crear)
			prods.GET("/:id", productosH.Obtener)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Eliminar)
		}

		cajas := dash.Group("/cajas")
		{
			cajas.GET("", cajaH.Listar)
			cajas.POST("/abrir", cajaH.Abrir)
			cajas.POST("/:id/cerrar", cajaH.Cerrar)
		}

		dash.GET("/ventas", ventasH.Catalogo)
		dash.POST("/ventas", ventasH.RegistrarVenta)

		fact := dash.Group("/facturas")
		{
			fact.GET("", facturasH.Listar)
			fact.GET("/:id", facturasH.Obtener)
			fact.GET("/:id/pdf", facturasH.DescargarPDF)
		}
	}

	return r
}
