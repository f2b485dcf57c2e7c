package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/parfin-app/parfin/infra"
	"github.com/parfin-app/parfin/pkg/config"
	"github.com/parfin-app/parfin/pkg/service"
	"github.com/parfin-app/parfin/webapi"
	"github.com/shopspring/decimal"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	handler := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	cfg, err := config.Load(logger, ".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infra.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	settingsSvc := service.NewSettingsService(
		infra.NewSettingsRepository(db),
		decimal.NewFromFloat(cfg.Exchange.DefaultRate),
		logger,
	)
	txRepo := infra.NewTransactionRepository(db)
	invRepo := infra.NewInvestmentRepository(db)
	userRepo := infra.NewUserRepository(db)

	userSvc := service.NewUserService(userRepo, logger)
	if err := userSvc.EnsureAdmin(context.Background(), cfg.Admin.Username, cfg.Admin.Password); err != nil {
		return fmt.Errorf("failed to ensure admin user: %w", err)
	}

	svcs := webapi.Services{
		Auth:         service.NewAuthService(userRepo, cfg.Jwt, logger),
		Users:        userSvc,
		Transactions: service.NewTransactionService(txRepo, logger),
		Investments:  service.NewInvestmentService(invRepo, logger),
		FixedItems:   service.NewFixedItemService(infra.NewFixedItemRepository(db), txRepo, logger),
		Settings:     settingsSvc,
		Stats:        service.NewStatsService(txRepo, invRepo, settingsSvc, logger),
	}

	app := webapi.NewApp(cfg, svcs)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	return app.Listen(addr)
}
