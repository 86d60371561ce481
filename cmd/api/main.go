package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Aijazali515/AgriFarma/internal/client"
	"github.com/Aijazali515/AgriFarma/internal/config"
	"github.com/Aijazali515/AgriFarma/internal/handler"
	"github.com/Aijazali515/AgriFarma/internal/notify"
	"github.com/Aijazali515/AgriFarma/internal/payment"
	"github.com/Aijazali515/AgriFarma/internal/repository"
	"github.com/Aijazali515/AgriFarma/internal/server"
	"github.com/Aijazali515/AgriFarma/internal/service"
	"github.com/Aijazali515/AgriFarma/internal/uploads"
)

func main() {
	seed := flag.Bool("seed", false, "seed the database with the admin account and demo data")
	adminEmail := flag.String("admin-email", "admin@agrifarma.local", "seeded admin email")
	adminPassword := flag.String("admin-password", "changeme123", "seeded admin password")
	flag.Parse()

	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := client.InitSqliteClient(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("init database", zap.Error(err))
	}

	if *seed {
		if err := client.Seed(db, *adminEmail, *adminPassword, logger); err != nil {
			logger.Fatal("seed database", zap.Error(err))
		}
	}

	store, err := uploads.NewStore(cfg.Uploads.Dir, cfg.Uploads.MaxSizeMB)
	if err != nil {
		logger.Fatal("init upload store", zap.Error(err))
	}

	var notifier notify.Notifier
	if cfg.SMTP.Suppress {
		notifier = notify.NewLogNotifier(logger)
	} else {
		notifier, err = notify.NewSMTPNotifier(cfg.SMTP)
		if err != nil {
			logger.Fatal("init smtp notifier", zap.Error(err))
		}
	}

	registry := payment.NewRegistry()
	registry.Register(payment.KindMock, payment.NewMockGateway(logger))
	registry.Register(payment.KindStripe, payment.NewStripeGateway())
	registry.Register(payment.KindJazzCash, payment.NewJazzCashGateway())
	processor := payment.NewProcessor(registry, payment.Kind(cfg.Payment.Gateway), cfg.Payment.Currency, logger)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	forumRepo := repository.NewForumRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	consultancyRepo := repository.NewConsultancyRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	resetRepo := repository.NewPasswordResetRepository(db)

	authService := service.NewAuthService(db, userRepo, resetRepo, notifier, cfg.JWT, cfg.BaseURL, logger)
	profileService := service.NewProfileService(userRepo, forumRepo)
	catalogService := service.NewCatalogService(productRepo, reviewRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	checkoutService := service.NewCheckoutService(db, cartRepo, orderRepo, productRepo, userRepo, processor, notifier, logger)
	orderService := service.NewOrderService(orderRepo)
	forumService := service.NewForumService(forumRepo)
	blogService := service.NewBlogService(blogRepo)
	consultancyService := service.NewConsultancyService(consultancyRepo)
	messageService := service.NewMessageService(messageRepo, userRepo)
	adminService := service.NewAdminService(
		userRepo, productRepo, orderRepo, reviewRepo, blogRepo, forumRepo, consultancyRepo,
		notifier, cfg.Report.LowInventoryThreshold, logger,
	)

	handlers := server.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Profile:     handler.NewProfileHandler(profileService, store),
		Shop:        handler.NewShopHandler(catalogService),
		Cart:        handler.NewCartHandler(cartService, checkoutService),
		Order:       handler.NewOrderHandler(orderService),
		Forum:       handler.NewForumHandler(forumService),
		Blog:        handler.NewBlogHandler(blogService, store),
		Consultancy: handler.NewConsultancyHandler(consultancyService, messageService),
		Admin:       handler.NewAdminHandler(adminService, consultancyService, cfg.Report.TrendDays),
		Media:       handler.NewMediaHandler(store),
		Search:      handler.NewSearchHandler(catalogService, forumService, blogService),
	}

	srv := server.NewServer(handlers, authService, logger)
	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	logger.Info("starting HTTP server", zap.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		logger.Fatal("HTTP server shutdown error", zap.Error(err))
	}
}

func newLogger(cfg config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zc := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
