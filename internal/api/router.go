package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tgxchange/exchange-api/internal/api/handler"
	"github.com/tgxchange/exchange-api/internal/api/middleware"
	"github.com/tgxchange/exchange-api/internal/core/service"
	mongodb "github.com/tgxchange/exchange-api/internal/infrastructure/db/mongo"
	redisdb "github.com/tgxchange/exchange-api/internal/infrastructure/db/redis"
	"github.com/tgxchange/exchange-api/internal/infrastructure/notify"
	"github.com/tgxchange/exchange-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("exchange"))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	orders := mongodb.NewOrderRepository(db)
	guard := redisdb.NewCreateGuard(rdb)
	notifier := notify.NewTelegramNotifier(cfg.TelegramAPIBase, cfg.BotToken, cfg.AdminChatID, cfg.PublicName, log)

	quoteService := service.NewQuoteService(service.Pricing{
		BaseRubPerUSD: cfg.Pricing.BaseRubPerUSD,
		SpreadPct:     cfg.Pricing.SpreadPct,
		FeeFixedRub:   cfg.Pricing.FeeFixedRub,
	})
	addresses := cfg.Wallets.Addresses()
	orderService := service.NewOrderService(orders, quoteService, notifier, guard, addresses, log)
	identityService := service.NewIdentityService(users, cfg.BotToken, cfg.OperatorIDs(), log)

	meHandler := handler.NewMeHandler(addresses)
	quoteHandler := handler.NewQuoteHandler(quoteService)
	orderHandler := handler.NewOrderHandler(orderService)
	exportHandler := handler.NewExportHandler(orderService)

	auth := middleware.Auth(identityService)
	operatorOnly := middleware.RequireOperator()

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated API ---
	g := e.Group("/api", auth)
	g.GET("/me", meHandler.Get)
	g.GET("/quote", quoteHandler.Get)
	g.POST("/orders", orderHandler.Create)
	g.GET("/my-orders", orderHandler.ListMine)
	g.GET("/orders", orderHandler.ListAll, operatorOnly)
	g.POST("/orders/:id/status", orderHandler.SetStatus, operatorOnly)
	g.POST("/orders/:id/txid", orderHandler.SetTxid)
	g.GET("/export.csv", exportHandler.Export, operatorOnly)

	return e
}
