package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/fintrax/bank_transfer_app/internal/adapters/memory"
	"github.com/fintrax/bank_transfer_app/internal/core/domain"
	"github.com/fintrax/bank_transfer_app/internal/core/ports"
	"github.com/fintrax/bank_transfer_app/internal/core/services"
	"github.com/fintrax/bank_transfer_app/internal/dto"
	"github.com/fintrax/bank_transfer_app/internal/handlers"
	"github.com/fintrax/bank_transfer_app/internal/middleware"
	"github.com/fintrax/bank_transfer_app/pkg/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

func init() {
	// Balances serialize as JSON numbers, matching the browser client.
	decimal.MarshalJSONWithoutQuotes = true
}

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := dto.RegisterCustomValidators(); err != nil {
		logger.Error("Failed to register request validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// In-memory stores; nothing survives a restart.
	accountRepo := memory.NewAccountRepository()
	currencyRepo := memory.NewCurrencyRepository()
	rateRepo := memory.NewExchangeRateRepository()

	accountService := services.NewAccountService(accountRepo, currencyRepo)
	currencyService := services.NewCurrencyService(currencyRepo)
	rateService := services.NewExchangeRateService(rateRepo)
	transferService := services.NewTransferService(accountRepo, rateService)

	ctx := context.Background()
	if err := seedReferenceData(ctx, currencyRepo, rateRepo); err != nil {
		logger.Error("Failed to seed reference data", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.SeedDemoData {
		if err := seedDemoAccounts(ctx, accountService); err != nil {
			logger.Error("Failed to seed demo accounts", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Demo accounts seeded")
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, &ports.ServiceContainer{
		Account:      accountService,
		Currency:     currencyService,
		ExchangeRate: rateService,
		Transfer:     transferService,
	})

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// seedReferenceData registers the supported currencies and the static
// exchange-rate table. Rates are expressed against EUR, the base currency.
func seedReferenceData(ctx context.Context, currencyRepo ports.CurrencyRepository, rateRepo ports.ExchangeRateRepository) error {
	now := time.Now().UTC()
	audit := domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	currencies := []domain.Currency{
		{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", AuditFields: audit},
		{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", AuditFields: audit},
		{CurrencyCode: "GBP", Symbol: "£", Name: "Pound Sterling", AuditFields: audit},
	}
	for _, c := range currencies {
		if err := currencyRepo.SaveCurrency(ctx, c); err != nil {
			return err
		}
	}

	rates := []domain.ExchangeRate{
		{CurrencyCode: "EUR", Rate: decimal.NewFromFloat(1.0), AuditFields: audit},
		{CurrencyCode: "USD", Rate: decimal.NewFromFloat(1.08), AuditFields: audit},
		{CurrencyCode: "GBP", Rate: decimal.NewFromFloat(0.89), AuditFields: audit},
	}
	for _, r := range rates {
		if err := rateRepo.SaveExchangeRate(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

// seedDemoAccounts creates the two demo accounts the browser UI expects on a
// fresh start.
func seedDemoAccounts(ctx context.Context, accountService ports.AccountSvc) error {
	demo := []dto.CreateAccountRequest{
		{OwnerName: "John Doe", CurrencyCode: "USD", Balance: decimal.NewFromInt(5000)},
		{OwnerName: "Jane Smith", CurrencyCode: "EUR", Balance: decimal.NewFromInt(3000)},
	}
	for _, req := range demo {
		if _, err := accountService.CreateAccount(ctx, req); err != nil {
			return err
		}
	}
	return nil
}
