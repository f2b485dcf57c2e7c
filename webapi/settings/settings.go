// Package settings exposes the household configuration endpoints.
package settings

import (
	"github.com/gofiber/fiber/v2"
	"github.com/parfin-app/parfin/pkg/config"
	"github.com/parfin-app/parfin/pkg/middleware"
	"github.com/parfin-app/parfin/pkg/service"
	"github.com/parfin-app/parfin/webapi/common"
	"github.com/shopspring/decimal"
)

func Routes(app *fiber.App, svc *service.SettingsService, cfg config.JwtConfig) {
	g := app.Group("/api/settings", middleware.JwtProtected(cfg))
	g.Get("/", Get(svc))
	g.Post("/update", Update(svc))
}

func Get(svc *service.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := svc.Get(c.Context())
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Settings", fiber.Map{
			"exchange_rate_usd_vnd": s.ExchangeRateUSDVND.InexactFloat64(),
			"language":              s.Language,
		})
	}
}

func Update(svc *service.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateInput](c)
		if input == nil {
			return err
		}
		ctx := c.Context()
		if input.ExchangeRateUSDVND > 0 {
			if err := svc.UpdateRate(ctx, decimal.NewFromFloat(input.ExchangeRateUSDVND)); err != nil {
				return common.ProblemJSON(c, err)
			}
		}
		if input.Language != "" {
			if err := svc.UpdateLanguage(ctx, input.Language); err != nil {
				return common.ProblemJSON(c, err)
			}
		}
		s, err := svc.Get(ctx)
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Settings updated", fiber.Map{
			"exchange_rate_usd_vnd": s.ExchangeRateUSDVND.InexactFloat64(),
			"language":              s.Language,
		})
	}
}
