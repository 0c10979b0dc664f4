package router

import (
	"time"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/config"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/handler"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/middleware"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/repository"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/service"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
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
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	fornecedorRepo := repository.NewFornecedorRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	vendaRepo := repository.NewVendaRepository(db)
	movimentacaoRepo := repository.NewMovimentacaoRepository(db)
	financeiroRepo := repository.NewFinanceiroRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, clienteRepo, cfg)
	produtoSvc := service.NewProdutoService(produtoRepo, categoriaRepo, rdb)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	fornecedorSvc := service.NewFornecedorService(fornecedorRepo)
	vendaSvc := service.NewVendaService(vendaRepo, produtoRepo, clienteRepo, movimentacaoRepo, financeiroRepo, dispatcher, cfg)
	estoqueSvc := service.NewEstoqueService(produtoRepo, movimentacaoRepo)
	financeiroSvc := service.NewFinanceiroService(financeiroRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo, clienteRepo, produtoRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	fornecedoresH := handler.NewFornecedoresHandler(fornecedorSvc)
	vendasH := handler.NewVendasHandler(vendaSvc)
	estoqueH := handler.NewEstoqueHandler(estoqueSvc)
	financeiroH := handler.NewFinanceiroHandler(financeiroSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Public catalog — the e-commerce storefront browses without a token
	r.GET("/api/produtos", produtosH.Listar)
	r.GET("/api/produtos/categorias", categoriasH.Listar)
	r.GET("/api/produtos/:id", produtosH.Obter)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("/api", jwtMW)
	{
		api.GET("/auth/me", authH.Me)

		backoffice := middleware.RequireRole(model.TipoAdmin, model.TipoVendedor)
		adminOnly := middleware.RequireRole(model.TipoAdmin)

		// Catalog writes
		api.POST("/produtos", backoffice, produtosH.Criar)
		api.PUT("/produtos/:id", backoffice, produtosH.Atualizar)
		api.DELETE("/produtos/:id", adminOnly, produtosH.Desativar)
		api.POST("/produtos/categorias", adminOnly, categoriasH.Criar)

		vendas := api.Group("/vendas", backoffice)
		{
			vendas.POST("", vendasH.Criar)
			vendas.GET("", vendasH.Listar)
			vendas.GET("/:id", vendasH.Obter)
			vendas.PATCH("/:id/status", vendasH.AtualizarStatus)
		}

		clientes := api.Group("/clientes", backoffice)
		{
			clientes.POST("", clientesH.Criar)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.Obter)
		}

		fornecedores := api.Group("/fornecedores", adminOnly)
		{
			fornecedores.POST("", fornecedoresH.Criar)
			fornecedores.GET("", fornecedoresH.Listar)
		}

		estoque := api.Group("/estoque", backoffice)
		{
			estoque.POST("/ajustes", estoqueH.Ajustar)
			estoque.GET("/movimentacoes", estoqueH.Movimentacoes)
			estoque.GET("/alertas", estoqueH.Alertas)
		}

		financeiro := api.Group("/financeiro", adminOnly)
		{
			financeiro.POST("/lancamentos", financeiroH.CriarLancamento)
			financeiro.GET("/lancamentos", financeiroH.Listar)
			financeiro.GET("/fluxo-caixa", financeiroH.FluxoCaixa)
		}

		dashboard := api.Group("/dashboard", backoffice)
		{
			dashboard.GET("/resumo", dashboardH.Resumo)
			dashboard.GET("/vendas-por-periodo", dashboardH.VendasPorPeriodo)
			dashboard.GET("/produtos-mais-vendidos", dashboardH.ProdutosMaisVendidos)
			dashboard.GET("/vendas-por-categoria", dashboardH.VendasPorCategoria)
			dashboard.GET("/vendas-por-genero", dashboardH.VendasPorGenero)
			dashboard.GET("/taxa-conversao", dashboardH.TaxaConversao)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
