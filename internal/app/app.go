package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/working2003/breedingo/internal/config"
	httpx "github.com/working2003/breedingo/internal/http"
	"github.com/working2003/breedingo/internal/http/handlers"
	"github.com/working2003/breedingo/internal/http/middleware"
	"github.com/working2003/breedingo/internal/infrastructure/auth"
	"github.com/working2003/breedingo/internal/infrastructure/database"
	"github.com/working2003/breedingo/internal/infrastructure/notifications"
	"github.com/working2003/breedingo/internal/infrastructure/repositories"
	"github.com/working2003/breedingo/internal/infrastructure/storage"
	"github.com/working2003/breedingo/internal/services"
)

// Run wires the dependencies and starts the HTTP server.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Infrastructure
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	otpProvider := notifications.NewTwilioVerifyService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioVerifySID, cfg.OTPChannel)
	imageStore := storage.NewFileImageStore(cfg.UploadsDir)

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	walletRepo := repositories.NewWalletRepository(gdb)
	listingRepo := repositories.NewListingRepository(gdb)
	breedingRepo := repositories.NewBreedingRepository(gdb)
	challengeStore := repositories.NewChallengeStore(rdb, cfg.OTPTTL)

	// Services
	otpSvc := services.NewOTPService(otpProvider, challengeStore, services.OTPConfig{
		TTL:         cfg.OTPTTL,
		MaxAttempts: cfg.OTPMaxAttempts,
	})
	authSvc := services.NewAuthService(userRepo, otpSvc, tokenSvc, cfg.TokenTTL)
	userSvc := services.NewUserService(userRepo, walletRepo, cfg.SignupBonus)
	walletSvc := services.NewWalletService(userRepo, walletRepo, cfg.ViewPrice)
	listingSvc := services.NewListingService(listingRepo, imageStore)

	// Handlers
	authH := handlers.NewAuthHandlers(authSvc)
	userH := handlers.NewUserHandlers(userSvc, walletSvc)
	listingH := handlers.NewListingHandlers(listingSvc)
	breedingH := handlers.NewBreedingHandlers(breedingRepo)

	authMW := middleware.AuthMiddleware(tokenSvc)
	r := httpx.BuildRouter(authH, userH, listingH, breedingH, authMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
