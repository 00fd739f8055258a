// Package main is the entry point for the FarmLink API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/farmlink/backend/config"
	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/application/usecase/auth"
	"github.com/farmlink/backend/internal/application/usecase/contract"
	"github.com/farmlink/backend/internal/application/usecase/ledger"
	"github.com/farmlink/backend/internal/application/usecase/listing"
	"github.com/farmlink/backend/internal/application/usecase/user"
	"github.com/farmlink/backend/internal/infra/db"
	"github.com/farmlink/backend/internal/infra/server/router"
	"github.com/farmlink/backend/internal/integration/adapters"
	"github.com/farmlink/backend/internal/integration/email"
	"github.com/farmlink/backend/internal/integration/email/templates"
	"github.com/farmlink/backend/internal/integration/entrypoint/controller"
	"github.com/farmlink/backend/internal/integration/entrypoint/middleware"
	"github.com/farmlink/backend/internal/integration/persistence"
	"github.com/farmlink/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting FarmLink API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.ListingModel{},
		&model.ContractModel{},
		&model.TransactionModel{},
		&model.EmailJobModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize redis for the OTP store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}()

	// Create health controller with database health checker
	healthController := controller.NewHealthController(database.HealthCheck)

	// Create repositories
	userRepo := persistence.NewUserRepository(database.DB())
	tokenRepo := persistence.NewTokenRepository(database.DB())
	listingRepo := persistence.NewListingRepository(database.DB())
	contractRepo := persistence.NewContractRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	emailQueueRepo := persistence.NewEmailQueueRepository(database.DB())

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry, tokenRepo)
	otpService := adapters.NewOTPStore(redisClient, cfg.OTP.TTL)

	// Email delivery goes through a persisted queue drained by a
	// background worker, so a provider outage never fails a request.
	var emailService adapter.EmailService
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if cfg.Email.ResendAPIKey != "" {
		emailService = email.NewService(emailQueueRepo)

		if cfg.Email.WorkerEnabled {
			renderer, err := templates.NewRenderer()
			if err != nil {
				slog.Error("Failed to initialize email templates", "error", err)
				os.Exit(1)
			}
			emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
			emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
				PollInterval: cfg.Email.PollInterval,
				BatchSize:    cfg.Email.BatchSize,
			})
			go emailWorker.Start(workerCtx)
		} else {
			slog.Warn("Email worker disabled, queued emails will not be delivered by this instance")
		}
	} else {
		slog.Warn("RESEND_API_KEY not set, password reset codes will only be logged")
	}
	otpExpiresIn := fmt.Sprintf("%d minutes", int(cfg.OTP.TTL.Minutes()))

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, otpService, emailService, otpExpiresIn)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, otpService, tokenService)

	// Create profile use cases
	getProfileUseCase := user.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo)
	updateBankDetailsUseCase := user.NewUpdateBankDetailsUseCase(userRepo)

	// Create listing use cases
	createListingUseCase := listing.NewCreateListingUseCase(listingRepo)
	getListingUseCase := listing.NewGetListingUseCase(listingRepo)
	browseListingsUseCase := listing.NewBrowseListingsUseCase(listingRepo)
	listMyListingsUseCase := listing.NewListMyListingsUseCase(listingRepo)

	// Create contract use cases
	requestContractUseCase := contract.NewRequestContractUseCase(listingRepo, contractRepo)
	acceptContractUseCase := contract.NewAcceptContractUseCase(contractRepo)
	startDeliveryUseCase := contract.NewStartDeliveryUseCase(contractRepo)
	rejectContractUseCase := contract.NewRejectContractUseCase(contractRepo)
	completeContractUseCase := contract.NewCompleteContractUseCase(contractRepo)
	cancelContractUseCase := contract.NewCancelContractUseCase(contractRepo)
	getContractUseCase := contract.NewGetContractUseCase(contractRepo)
	listContractsUseCase := contract.NewListContractsUseCase(contractRepo)

	// Create ledger use cases
	recordTransactionUseCase := ledger.NewRecordTransactionUseCase(transactionRepo)
	listTransactionsUseCase := ledger.NewListTransactionsUseCase(transactionRepo)
	monthlySummaryUseCase := ledger.NewGetMonthlySummaryUseCase(transactionRepo)

	// Create controllers
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)
	userController := controller.NewUserController(
		getProfileUseCase,
		updateProfileUseCase,
		updateBankDetailsUseCase,
	)
	listingController := controller.NewListingController(
		createListingUseCase,
		getListingUseCase,
		browseListingsUseCase,
		listMyListingsUseCase,
	)
	contractController := controller.NewContractController(
		requestContractUseCase,
		acceptContractUseCase,
		startDeliveryUseCase,
		rejectContractUseCase,
		completeContractUseCase,
		cancelContractUseCase,
		getContractUseCase,
		listContractsUseCase,
	)
	transactionController := controller.NewTransactionController(
		recordTransactionUseCase,
		listTransactionsUseCase,
		monthlySummaryUseCase,
	)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		listingController,
		contractController,
		transactionController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
