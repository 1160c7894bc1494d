package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/httpserver"
	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	lg := logger.New(cfg.LogLevel)
	defer lg.Sync()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		lg.Fatalw("db connect failed", "error", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}, &models.WishlistItem{}); err != nil {
		lg.Fatalw("automigrate failed", "error", err)
	}

	tokens, err := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		lg.Fatalw("token setup failed", "error", err)
	}

	users := store.NewUsers(db)
	seedSuperadmin(users, cfg, lg)

	router := httpserver.NewRouter(httpserver.Deps{
		Users:    users,
		Products: store.NewProducts(db),
		Orders:   store.NewOrders(db),
		Wishlist: store.NewWishlist(db),
		Tokens:   tokens,
		Log:      lg,
	})

	lg.Infow("listening", "port", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		lg.Fatalw("server stopped", "error", err)
	}
}

// seedSuperadmin makes sure a usable superadmin exists so approvals can start
// from an empty database. Skipped entirely unless configured.
func seedSuperadmin(users store.Users, cfg *config.Config, lg *zap.SugaredLogger) {
	if cfg.SuperadminEmail == "" || cfg.SuperadminPassword == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := users.ByEmail(ctx, cfg.SuperadminEmail); err == nil {
		return
	}
	hash, err := auth.HashPassword(cfg.SuperadminPassword)
	if err != nil {
		lg.Errorw("superadmin seed hash failed", "error", err)
		return
	}
	u := &models.User{
		Name:         "Super Admin",
		Email:        cfg.SuperadminEmail,
		PasswordHash: hash,
		Role:         models.RoleSuperadmin,
		IsApproved:   true,
		LastActivity: time.Now(),
	}
	if err := users.Create(ctx, u); err != nil {
		lg.Errorw("superadmin seed failed", "error", err)
		return
	}
	lg.Infow("seeded superadmin", "email", cfg.SuperadminEmail)
}
