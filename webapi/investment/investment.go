// Package investment exposes the trade recording endpoints.
package investment

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/parfin-app/parfin/pkg/config"
	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/parfin-app/parfin/pkg/middleware"
	"github.com/parfin-app/parfin/pkg/service"
	"github.com/parfin-app/parfin/webapi/common"
	"github.com/shopspring/decimal"
)

func Routes(app *fiber.App, svc *service.InvestmentService, cfg config.JwtConfig) {
	g := app.Group("/api/investments", middleware.JwtProtected(cfg))
	g.Get("/", List(svc))
	g.Post("/", Create(svc))
	g.Delete("/:id", Delete(svc))
}

func List(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		trades, err := svc.List(c.Context(), common.HouseholdID)
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		out := make([]fiber.Map, len(trades))
		for i, t := range trades {
			out[i] = toMap(t)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Trades", out)
	}
}

func Create(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[Input](c)
		if input == nil {
			return err
		}
		date, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid date", err.Error())
		}
		t := domain.Trade{
			UserID:    common.HouseholdID,
			Date:      date,
			Symbol:    strings.ToUpper(strings.TrimSpace(input.Symbol)),
			AssetType: input.AssetType,
			Type:      domain.TradeType(input.Type),
			Quantity:  decimal.NewFromFloat(input.Quantity),
			Price:     decimal.NewFromFloat(input.Price),
			Fee:       decimal.NewFromFloat(input.Fee),
			Tax:       decimal.NewFromFloat(input.Tax),
		}
		if err := svc.Create(c.Context(), &t); err != nil {
			return common.ProblemJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Trade recorded", toMap(t))
	}
}

func Delete(svc *service.InvestmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid trade id", err.Error())
		}
		if err := svc.Delete(c.Context(), common.HouseholdID, id); err != nil {
			return common.ProblemJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Trade deleted", nil)
	}
}

func toMap(t domain.Trade) fiber.Map {
	return fiber.Map{
		"id":         t.ID,
		"date":       t.Date.Format("2006-01-02"),
		"symbol":     t.Symbol,
		"asset_type": t.AssetType,
		"type":       t.Type,
		"quantity":   t.Quantity.InexactFloat64(),
		"price":      t.Price.InexactFloat64(),
		"fee":        t.Fee.InexactFloat64(),
		"tax":        t.Tax.InexactFloat64(),
	}
}
