// Package stats exposes the dashboard overview and portfolio endpoints.
package stats

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/parfin-app/parfin/pkg/config"
	"github.com/parfin-app/parfin/pkg/currency"
	"github.com/parfin-app/parfin/pkg/ledger"
	"github.com/parfin-app/parfin/pkg/middleware"
	"github.com/parfin-app/parfin/pkg/service"
	"github.com/parfin-app/parfin/webapi/common"
)

func Routes(app *fiber.App, svc *service.StatsService, cfg config.JwtConfig) {
	protected := middleware.JwtProtected(cfg)
	app.Get("/api/stats", protected, Overview(svc))
	app.Get("/api/stats/portfolio", protected, Portfolio(svc))
}

// Overview serves the dashboard payload: fund balances, period aggregates
// and the expense chart, in the requested display currency.
func Overview(svc *service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := service.StatsQuery{
			Period:  ledger.Period(c.Query("period", string(ledger.PeriodThisMonth))),
			Display: displayQuery(c),
		}
		if q.Period == ledger.PeriodCustom {
			start, end, err := customRange(c)
			if err != nil {
				return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid date range", err.Error())
			}
			q.CustomStart, q.CustomEnd = start, end
		}

		o, err := svc.Overview(c.Context(), common.HouseholdID, q)
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(o)
	}
}

// Portfolio serves the current holdings view.
func Portfolio(svc *service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Portfolio(c.Context(), common.HouseholdID, displayQuery(c))
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(p)
	}
}

func displayQuery(c *fiber.Ctx) currency.Code {
	return currency.Normalize(currency.Code(c.Query("currency", string(currency.VND))))
}

func customRange(c *fiber.Ctx) (start, end time.Time, err error) {
	start, err = time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		return
	}
	end, err = time.Parse("2006-01-02", c.Query("end_date"))
	return
}
