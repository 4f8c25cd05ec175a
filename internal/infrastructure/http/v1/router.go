package v1

import (
	"github.com/gin-gonic/gin"

	"ricemill/internal/core/docnum"
	"ricemill/internal/domain"
	"ricemill/internal/domain/attendance"
	"ricemill/internal/domain/auth"
	"ricemill/internal/domain/broker"
	"ricemill/internal/domain/committee"
	"ricemill/internal/domain/deliveryorder"
	"ricemill/internal/domain/finance"
	"ricemill/internal/domain/inward"
	"ricemill/internal/domain/labor"
	"ricemill/internal/domain/milling"
	"ricemill/internal/domain/outward"
	"ricemill/internal/domain/party"
	"ricemill/internal/domain/purchase"
	"ricemill/internal/domain/reconcile"
	"ricemill/internal/domain/sale"
	"ricemill/internal/domain/staff"
	"ricemill/internal/infrastructure/http/v1/handlers"
	"ricemill/internal/infrastructure/http/v1/middleware"
	"ricemill/internal/infrastructure/storage/postgres"
	"ricemill/internal/infrastructure/storage/postgres/catalog_repo"
	"ricemill/internal/infrastructure/storage/postgres/document_repo"
	"ricemill/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (used by health checks)
	Pool *postgres.Pool

	// TxManager runs repository work in transactions
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// AuthService for login and token verification
	AuthService *auth.Service

	// Changes records entity mutations to the audit log
	Changes domain.ChangeLog
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints, no auth required
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	apiV1 := router.Group("/api/v1")
	{
		registerAuthRoutes(apiV1, cfg)

		protected := apiV1.Group("")
		protected.Use(middleware.Auth(cfg.AuthService))

		registerCatalogRoutes(protected, cfg)
		registerDocumentRoutes(protected, cfg)
		registerBalanceRoutes(protected, cfg)
	}

	return router
}

// registerAuthRoutes registers authentication endpoints. Login is
// public; /auth/me requires a valid token.
func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)

	rg.POST("/auth/login", authHandler.Login)

	protectedAuth := rg.Group("/auth")
	protectedAuth.Use(middleware.Auth(cfg.AuthService))
	protectedAuth.GET("/me", authHandler.Me)
}

// registerCatalogRoutes registers reference-data endpoints under /catalog.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()
	catalogs := rg.Group("/catalog")

	// --- PARTIES ---
	{
		repo := catalog_repo.NewPartyRepo(cfg.TxManager)
		service := party.NewService(repo, cfg.TxManager, cfg.Changes)
		handler := handlers.NewPartyHandler(baseHandler, service)
		RegisterResourceRoutes(catalogs.Group("/parties"), handler)
	}

	// --- BROKERS ---
	{
		repo := catalog_repo.NewBrokerRepo(cfg.TxManager)
		service := broker.NewService(repo, cfg.TxManager, cfg.Changes)
		handler := handlers.NewBrokerHandler(baseHandler, service)
		RegisterResourceRoutes(catalogs.Group("/brokers"), handler)
	}

	// --- COMMITTEE CENTERS ---
	{
		repo := catalog_repo.NewCommitteeRepo(cfg.TxManager)
		service := committee.NewService(repo, cfg.TxManager, cfg.Changes)
		handler := handlers.NewCommitteeHandler(baseHandler, service)
		RegisterResourceRoutes(catalogs.Group("/committee-centers"), handler)
	}

	// --- STAFF ---
	{
		repo := catalog_repo.NewStaffRepo(cfg.TxManager)
		service := staff.NewService(repo, cfg.TxManager, cfg.Changes)
		handler := handlers.NewStaffHandler(baseHandler, service)

		group := catalogs.Group("/staff")
		group.GET("/:id/salary-history", handler.SalaryHistory)
		RegisterResourceRoutes(group, handler)
	}

	// --- ATTENDANCE ---
	{
		repo := catalog_repo.NewAttendanceRepo(cfg.TxManager)
		service := attendance.NewService(repo, cfg.TxManager, cfg.Changes)
		handler := handlers.NewAttendanceHandler(baseHandler, service)

		group := rg.Group("/attendance")
		group.GET("/month-sheet", handler.MonthSheet)
		RegisterResourceRoutes(group, handler)
	}
}

// registerDocumentRoutes registers operational document endpoints.
// Slip-numbered documents live under /documents; delivery orders,
// attendance and transactions sit at the top level.
func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()
	docs := rg.Group("/documents")

	// --- DELIVERY ORDERS ---
	{
		repo := document_repo.NewDeliveryOrderRepo(cfg.TxManager)
		service := deliveryorder.NewService(repo, cfg.TxManager, cfg.Changes)
		handler := handlers.NewDeliveryOrderHandler(baseHandler, service)
		RegisterResourceRoutes(rg.Group("/delivery-orders"), handler)
	}

	// --- PURCHASES ---
	{
		repo := document_repo.NewPurchaseRepo(cfg.TxManager)
		gen := docnum.New(postgres.NewNumberLookup(cfg.TxManager, repo.TableName()))
		service := purchase.NewService(repo, cfg.TxManager, cfg.Changes, gen)
		handler := handlers.NewPurchaseHandler(baseHandler, service)
		RegisterResourceRoutes(docs.Group("/purchases"), handler)
	}

	// --- SALES ---
	{
		repo := document_repo.NewSaleRepo(cfg.TxManager)
		gen := docnum.New(postgres.NewNumberLookup(cfg.TxManager, repo.TableName()))
		service := sale.NewService(repo, cfg.TxManager, cfg.Changes, gen)
		handler := handlers.NewSaleHandler(baseHandler, service)
		RegisterResourceRoutes(docs.Group("/sales"), handler)
	}

	// --- INWARD RECEIPTS ---
	{
		repo := document_repo.NewInwardRepo(cfg.TxManager)
		gen := docnum.New(postgres.NewNumberLookup(cfg.TxManager, repo.TableName()))
		service := inward.NewService(repo, cfg.TxManager, cfg.Changes, gen)
		handler := handlers.NewInwardHandler(baseHandler, service)
		RegisterResourceRoutes(docs.Group("/inward"), handler)
	}

	// --- OUTWARD DISPATCHES ---
	{
		repo := document_repo.NewOutwardRepo(cfg.TxManager)
		gen := docnum.New(postgres.NewNumberLookup(cfg.TxManager, repo.TableName()))
		service := outward.NewService(repo, cfg.TxManager, cfg.Changes, gen)
		handler := handlers.NewOutwardHandler(baseHandler, service)
		RegisterResourceRoutes(docs.Group("/outward"), handler)
	}

	// --- MILLING RUNS ---
	{
		repo := document_repo.NewMillingRepo(cfg.TxManager)
		gen := docnum.New(postgres.NewNumberLookup(cfg.TxManager, repo.TableName()))
		service := milling.NewService(repo, cfg.TxManager, cfg.Changes, gen)
		handler := handlers.NewMillingHandler(baseHandler, service)
		RegisterResourceRoutes(docs.Group("/milling"), handler)
	}

	// --- LABOR COSTS ---
	{
		repo := document_repo.NewLaborRepo(cfg.TxManager)
		gen := docnum.New(postgres.NewNumberLookup(cfg.TxManager, repo.TableName()))
		service := labor.NewService(repo, cfg.TxManager, cfg.Changes, gen)
		handler := handlers.NewLaborHandler(baseHandler, service)
		RegisterResourceRoutes(docs.Group("/labor"), handler)
	}

	// --- TRANSACTIONS ---
	{
		repo := document_repo.NewTransactionRepo(cfg.TxManager)
		service := finance.NewService(repo, cfg.TxManager, cfg.Changes)
		handler := handlers.NewTransactionHandler(baseHandler, service)
		RegisterResourceRoutes(rg.Group("/transactions"), handler)
	}
}

// registerBalanceRoutes registers the reconciled delivery order balance view.
func registerBalanceRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	orders := document_repo.NewDeliveryOrderRepo(cfg.TxManager)
	receipts := document_repo.NewInwardRepo(cfg.TxManager)
	sales := document_repo.NewSaleRepo(cfg.TxManager)

	service := reconcile.NewService(orders, receipts, sales)
	handler := handlers.NewBalanceHandler(baseHandler, service)

	group := rg.Group("/delivery-orders/balance")
	group.GET("", handler.List)
	group.GET("/export", handler.Export)
}
