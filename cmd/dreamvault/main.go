package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	appBilling "github.com/TaskGlass/dreamvault/pkg/app/billing"
	appContent "github.com/TaskGlass/dreamvault/pkg/app/content"
	appDream "github.com/TaskGlass/dreamvault/pkg/app/dream"
	appInterpretation "github.com/TaskGlass/dreamvault/pkg/app/interpretation"
	appUsage "github.com/TaskGlass/dreamvault/pkg/app/usage"
	"github.com/TaskGlass/dreamvault/pkg/common"
	"github.com/TaskGlass/dreamvault/pkg/config"
	handlers "github.com/TaskGlass/dreamvault/pkg/handlers/http"
	"github.com/TaskGlass/dreamvault/pkg/infra/cache"
	"github.com/TaskGlass/dreamvault/pkg/infra/database"
	infraLogger "github.com/TaskGlass/dreamvault/pkg/infra/logger"
	_ "github.com/TaskGlass/dreamvault/pkg/infra/migrations"
	"github.com/TaskGlass/dreamvault/pkg/infra/providers"
	"github.com/TaskGlass/dreamvault/pkg/infra/providers/factory"
	infraRatelimit "github.com/TaskGlass/dreamvault/pkg/infra/ratelimit"
	"github.com/TaskGlass/dreamvault/pkg/infra/repository"
	"github.com/TaskGlass/dreamvault/pkg/infra/stripepay"
	"github.com/TaskGlass/dreamvault/pkg/middleware"
	"github.com/TaskGlass/dreamvault/pkg/ratelimit"
	"github.com/TaskGlass/dreamvault/pkg/server"
	"github.com/joho/godotenv"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	cacheClient, err := cache.NewClient(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TLS:      cfg.Redis.TLS,
	})
	if err != nil {
		logger.Fatalf("Failed to initialize cache: %v", err)
	}

	// repository
	usageRepository := repository.NewUsageRepository(db.DB)
	subscriptionRepository := repository.NewSubscriptionRepository(db.DB)
	dreamRepository := repository.NewDreamRepository(db.DB)

	// quota accounting
	planResolver := appUsage.NewPlanResolver(logger, subscriptionRepository)
	checker := appUsage.NewChecker(logger, usageRepository, planResolver, nil)
	releaser := appUsage.NewReleaser(logger, usageRepository, planResolver, nil)
	usageReader := appUsage.NewReader(logger, usageRepository, planResolver, nil)
	resetter := appUsage.NewResetter(logger, usageRepository, cfg.IsDevelopment(), nil)

	// completion provider behind a circuit breaker
	locator := factory.NewProviderLocator()
	rawProvider, err := locator.Get(cfg.Providers.Provider)
	if err != nil {
		logger.Fatalf("Failed to initialize completion provider: %v", err)
	}
	provider := providers.NewBreakerClient(
		cfg.Providers.Provider,
		rawProvider,
		parseDuration(cfg.Providers.Breaker.Timeout),
		cfg.Providers.Breaker.MaxFailures,
	)
	providerConfig := buildProviderConfig(cfg)

	// dream journal
	dreamCreator := appDream.NewCreator(logger, dreamRepository)
	dreamFinder := appDream.NewFinder(logger, dreamRepository)
	dreamDeleter := appDream.NewDeleter(logger, dreamRepository)

	interpreter := appInterpretation.NewInterpreter(
		logger, dreamRepository, checker, releaser, provider, cfg.Providers.Provider, providerConfig,
	)

	// daily content
	horoscoper := appContent.NewHoroscoper(
		logger, cacheClient, checker, releaser, provider, cfg.Providers.Provider, providerConfig, nil,
	)
	affirmer := appContent.NewAffirmer(
		logger, cacheClient, checker, releaser, provider, cfg.Providers.Provider, providerConfig, nil,
	)
	moonReader := appContent.NewMoonReader(logger, checker, nil)

	// billing
	stripeGateway := stripepay.NewGateway(stripepay.Config{
		SecretKey:     cfg.Stripe.SecretKey,
		WebhookSecret: cfg.Stripe.WebhookSecret,
		FrontendURL:   cfg.Stripe.FrontendURL,
	})
	checkoutStarter := appBilling.NewCheckoutStarter(logger, stripeGateway, cfg.Stripe.PlanPrices)
	portalOpener := appBilling.NewPortalOpener(logger, subscriptionRepository, stripeGateway)
	webhookProcessor := appBilling.NewWebhookProcessor(logger, subscriptionRepository, stripeGateway, cfg.Stripe.PlanPrices)

	// request rate limiting
	rateWindow, err := cfg.RateLimit.WindowDuration()
	if err != nil {
		logger.Fatalf("Invalid rate limit config: %v", err)
	}
	var rateLimitMiddleware middleware.Middleware
	if cfg.RateLimit.Distributed {
		redisLimiter := infraRatelimit.NewRedisLimiter(cacheClient.Redis(), nil)
		rateLimitMiddleware = middleware.NewRedisRateLimitMiddleware(logger, redisLimiter, cfg.RateLimit.Requests, rateWindow)
	} else {
		limiter := ratelimit.NewLimiter(nil)
		limiter.StartSweeper(common.RateLimitSweepInterval)
		defer limiter.Stop()
		rateLimitMiddleware = middleware.NewRateLimitMiddleware(logger, limiter, cfg.RateLimit.Requests, rateWindow)
	}

	middlewareTransport := middleware.Transport{
		AuthMiddleware:      middleware.NewAuthMiddleware(logger, cfg.Auth.JWTSecret),
		RateLimitMiddleware: rateLimitMiddleware,
		RecoveryMiddleware:  middleware.NewPanicRecoverMiddleware(logger),
	}

	handlerTransport := handlers.HandlerTransport{
		// Journal
		CreateDreamHandler: handlers.NewCreateDreamHandler(logger, dreamCreator),
		ListDreamsHandler:  handlers.NewListDreamsHandler(logger, dreamFinder),
		GetDreamHandler:    handlers.NewGetDreamHandler(logger, dreamFinder),
		DeleteDreamHandler: handlers.NewDeleteDreamHandler(logger, dreamDeleter),
		// Interpretation
		InterpretDreamHandler: handlers.NewInterpretDreamHandler(logger, interpreter),
		// Daily content
		GetHoroscopeHandler:   handlers.NewGetHoroscopeHandler(logger, horoscoper),
		GetAffirmationHandler: handlers.NewGetAffirmationHandler(logger, affirmer),
		GetMoonPhaseHandler:   handlers.NewGetMoonPhaseHandler(logger, moonReader),
		// Usage
		GetUsageHandler:   handlers.NewGetUsageHandler(logger, usageReader),
		ResetUsageHandler: handlers.NewResetUsageHandler(logger, resetter),
		// Billing
		BillingCheckoutHandler: handlers.NewBillingCheckoutHandler(logger, checkoutStarter),
		BillingPortalHandler:   handlers.NewBillingPortalHandler(logger, portalOpener),
		StripeWebhookHandler:   handlers.NewStripeWebhookHandler(logger, webhookProcessor),
	}

	srv := server.NewApiServer(server.ApiServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("failed to shut down server")
	}
}

func buildProviderConfig(cfg *config.Config) *providers.Config {
	providerCfg := cfg.Providers.OpenAI
	if cfg.Providers.Provider == factory.ProviderAnthropic {
		providerCfg = cfg.Providers.Anthropic
	}
	return &providers.Config{
		Credentials: providers.Credentials{ApiKey: providerCfg.APIKey},
		Model:       providerCfg.Model,
		MaxTokens:   providerCfg.MaxTokens,
		Temperature: providerCfg.Temperature,
	}
}

func parseDuration(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0
	}
	return d
}
