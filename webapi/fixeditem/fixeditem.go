// Package fixeditem exposes the recurring-transaction template endpoints.
package fixeditem

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/parfin-app/parfin/pkg/config"
	"github.com/parfin-app/parfin/pkg/currency"
	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/parfin-app/parfin/pkg/middleware"
	"github.com/parfin-app/parfin/pkg/service"
	"github.com/parfin-app/parfin/webapi/common"
	"github.com/shopspring/decimal"
)

func Routes(app *fiber.App, svc *service.FixedItemService, cfg config.JwtConfig) {
	g := app.Group("/api/fixed_items", middleware.JwtProtected(cfg))
	g.Get("/", List(svc))
	g.Post("/", Create(svc))
	g.Put("/:id", Update(svc))
	g.Delete("/:id", Delete(svc))
	g.Post("/generate", Generate(svc))
}

func List(svc *service.FixedItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.Context(), common.HouseholdID)
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		out := make([]fiber.Map, len(items))
		for i, f := range items {
			out[i] = toMap(f)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Fixed items", out)
	}
}

func Create(svc *service.FixedItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[Input](c)
		if input == nil {
			return err
		}
		f := input.toDomain()
		if err := svc.Create(c.Context(), &f); err != nil {
			return common.ProblemJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Fixed item created", toMap(f))
	}
}

func Update(svc *service.FixedItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid fixed item id", err.Error())
		}
		input, err := common.BindAndValidate[Input](c)
		if input == nil {
			return err
		}
		f := input.toDomain()
		f.ID = id
		if err := svc.Update(c.Context(), f); err != nil {
			return common.ProblemJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Fixed item updated", toMap(f))
	}
}

func Delete(svc *service.FixedItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid fixed item id", err.Error())
		}
		if err := svc.Delete(c.Context(), common.HouseholdID, id); err != nil {
			return common.ProblemJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Fixed item deleted", nil)
	}
}

// Generate materializes every template into a transaction dated by the body.
func Generate(svc *service.FixedItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[GenerateInput](c)
		if input == nil {
			return err
		}
		date, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid date", err.Error())
		}
		n, err := svc.Generate(c.Context(), common.HouseholdID, date)
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Fixed items generated", fiber.Map{"generated": n})
	}
}

func (in Input) toDomain() domain.FixedItem {
	return domain.FixedItem{
		UserID:              common.HouseholdID,
		Type:                domain.TransactionType(in.Type),
		Category:            domain.Category(in.Category),
		DestinationCategory: domain.Category(in.DestinationCategory),
		Amount:              decimal.NewFromFloat(in.Amount),
		Currency:            currency.Normalize(currency.Code(in.Currency)),
		Source:              domain.NormalizeMethod(domain.PaymentMethod(in.Source)),
		Destination:         domain.NormalizeMethod(domain.PaymentMethod(in.Destination)),
		Fund:                domain.ParseFund(in.Fund),
		Description:         in.Description,
	}
}

func toMap(f domain.FixedItem) fiber.Map {
	return fiber.Map{
		"id":                   f.ID,
		"type":                 f.Type,
		"category":             f.Category,
		"destination_category": f.DestinationCategory,
		"amount":               f.Amount.InexactFloat64(),
		"currency":             f.Currency,
		"source":               f.Source,
		"destination":          f.Destination,
		"fund":                 fundLabel(f.Fund),
		"description":          f.Description,
	}
}

// fundLabel keeps the no-fund case empty on the wire; clients treat any
// non-empty fund as a fund draw.
func fundLabel(b domain.FundBucket) string {
	if !b.IsFund() {
		return ""
	}
	return b.String()
}
