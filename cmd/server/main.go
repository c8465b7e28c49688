package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/smartfin/smartfin/internal/auth"
	"github.com/smartfin/smartfin/internal/config"
	"github.com/smartfin/smartfin/internal/handlers"
	"github.com/smartfin/smartfin/internal/middleware"
	"github.com/smartfin/smartfin/internal/service"
	"github.com/smartfin/smartfin/internal/smsparse"
	"github.com/smartfin/smartfin/internal/storage/sqlite"
	"github.com/smartfin/smartfin/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logging.Setup()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.SQLiteDBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.SQLiteDBPath)

	var parser smsparse.Parser
	if cfg.GeminiAPIKey != "" {
		parser = smsparse.NewGeminiParser(cfg.GeminiAPIKey, cfg.GeminiModel)
		slog.Info("SMS parsing enabled", "model", cfg.GeminiModel)
	} else {
		slog.Warn("GEMINI_API_KEY not set, SMS import disabled")
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)
	authenticator := auth.NewPasswordAuthenticator(store)

	groups := service.NewGroupService(store)
	splits := service.NewSplitService(store)
	ledger := service.NewLedgerService(store, parser)
	finance := service.NewFinanceService(store)

	authHandler := handlers.NewAuthHandler(authenticator, jwtManager, store)
	groupHandler := handlers.NewGroupHandler(groups, splits)
	ledgerHandler := handlers.NewLedgerHandler(ledger)
	financeHandler := handlers.NewFinanceHandler(finance)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Metrics())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("", middleware.RequireAuth(jwtManager))
	authed.GET("/me", authHandler.Me)
	authed.PUT("/me", authHandler.UpdateProfile)

	authed.GET("/groups", groupHandler.List)
	authed.POST("/groups", groupHandler.Create)
	authed.GET("/groups/:id", groupHandler.Get)
	authed.PUT("/groups/:id", groupHandler.Rename)
	authed.GET("/groups/:id/balances", groupHandler.Balances)
	authed.POST("/groups/:id/members", groupHandler.AddMember)
	authed.DELETE("/groups/:id/members/:memberId", groupHandler.RemoveMember)
	authed.POST("/groups/:id/expenses", groupHandler.CreateExpense)
	authed.PUT("/groups/:id/expenses/:txId", groupHandler.UpdateExpense)
	authed.DELETE("/groups/:id/expenses/:txId", groupHandler.DeleteExpense)
	authed.POST("/invites/redeem", groupHandler.RedeemInvite)

	authed.GET("/transactions", ledgerHandler.List)
	authed.POST("/transactions", ledgerHandler.Create)
	authed.PUT("/transactions/:id", ledgerHandler.Update)
	authed.DELETE("/transactions/:id", ledgerHandler.Delete)
	authed.GET("/summary", ledgerHandler.Summary)
	authed.POST("/sms/import", ledgerHandler.ImportSMS)

	authed.GET("/document", financeHandler.Document)
	authed.POST("/emis", financeHandler.AddEMI)
	authed.POST("/emis/:id/pay", financeHandler.MarkEMIPaid)
	authed.DELETE("/emis/:id", financeHandler.DeleteEMI)
	authed.POST("/budgets", financeHandler.AddBudget)
	authed.POST("/goals", financeHandler.AddGoal)
	authed.POST("/goals/:id/contribute", financeHandler.AddToGoal)
	authed.POST("/investments", financeHandler.AddInvestment)
	authed.PUT("/branding", financeHandler.UpdateBranding)
	authed.GET("/export", financeHandler.Export)
	authed.POST("/import", financeHandler.Import)

	addr := ":" + cfg.Port
	slog.Info("Server starting", "address", addr)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
