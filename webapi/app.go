// Package webapi assembles the fiber application from the route packages.
package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/parfin-app/parfin/pkg/config"
	"github.com/parfin-app/parfin/pkg/service"
	"github.com/parfin-app/parfin/webapi/auth"
	"github.com/parfin-app/parfin/webapi/common"
	"github.com/parfin-app/parfin/webapi/fixeditem"
	"github.com/parfin-app/parfin/webapi/investment"
	"github.com/parfin-app/parfin/webapi/settings"
	"github.com/parfin-app/parfin/webapi/stats"
	"github.com/parfin-app/parfin/webapi/transaction"
	"github.com/parfin-app/parfin/webapi/user"
)

// Services bundles everything the routes need.
type Services struct {
	Auth         *service.AuthService
	Users        *service.UserService
	Transactions *service.TransactionService
	Investments  *service.InvestmentService
	FixedItems   *service.FixedItemService
	Settings     *service.SettingsService
	Stats        *service.StatsService
}

// NewApp builds the fiber app with rate limiting, panic recovery and every
// route registered.
func NewApp(cfg *config.AppConfig, svcs Services) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("App is working! 🚀")
	})

	auth.Routes(app, svcs.Auth, cfg.Jwt)
	user.Routes(app, svcs.Users, cfg.Jwt)
	transaction.Routes(app, svcs.Transactions, cfg.Jwt)
	investment.Routes(app, svcs.Investments, cfg.Jwt)
	fixeditem.Routes(app, svcs.FixedItems, cfg.Jwt)
	settings.Routes(app, svcs.Settings, cfg.Jwt)
	stats.Routes(app, svcs.Stats, cfg.Jwt)

	return app
}
