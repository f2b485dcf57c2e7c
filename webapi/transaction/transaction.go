// Package transaction exposes the cash movement endpoints plus export and
// import of the household ledger.
package transaction

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/parfin-app/parfin/pkg/config"
	"github.com/parfin-app/parfin/pkg/currency"
	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/parfin-app/parfin/pkg/middleware"
	"github.com/parfin-app/parfin/pkg/repository"
	"github.com/parfin-app/parfin/pkg/service"
	"github.com/parfin-app/parfin/webapi/common"
	"github.com/shopspring/decimal"
)

func Routes(app *fiber.App, svc *service.TransactionService, cfg config.JwtConfig) {
	protected := middleware.JwtProtected(cfg)
	g := app.Group("/api/transactions", protected)
	g.Get("/", List(svc))
	g.Post("/", Create(svc))
	g.Put("/:id", Update(svc))
	g.Delete("/:id", Delete(svc))

	app.Get("/api/export", protected, Export(svc))
	app.Post("/api/import", protected, Import(svc))
}

// List returns the household's transactions, optionally narrowed to a
// calendar month via ?month=YYYY-MM.
func List(svc *service.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := monthQuery(c)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid month", err.Error())
		}
		txs, err := svc.List(c.Context(), common.HouseholdID, filter)
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		out := make([]fiber.Map, len(txs))
		for i, t := range txs {
			out[i] = toMap(t)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions", out)
	}
}

func Create(svc *service.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[Input](c)
		if input == nil {
			return err
		}
		t, err := input.toDomain()
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid transaction", err.Error())
		}
		if err := svc.Create(c.Context(), &t); err != nil {
			return common.ProblemJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction created", toMap(t))
	}
}

func Update(svc *service.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid transaction id", err.Error())
		}
		input, err := common.BindAndValidate[Input](c)
		if input == nil {
			return err
		}
		t, err := input.toDomain()
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid transaction", err.Error())
		}
		t.ID = id
		if err := svc.Update(c.Context(), t); err != nil {
			return common.ProblemJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction updated", toMap(t))
	}
}

func Delete(svc *service.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid transaction id", err.Error())
		}
		if err := svc.Delete(c.Context(), common.HouseholdID, id); err != nil {
			return common.ProblemJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction deleted", nil)
	}
}

// Export streams the ledger as JSON or CSV (?format=json|csv&month=YYYY-MM).
func Export(svc *service.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := monthQuery(c)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid month", err.Error())
		}
		format := c.Query("format", "json")
		if format != "json" && format != "csv" {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid format", "format must be json or csv")
		}

		data, err := svc.Export(c.Context(), common.HouseholdID, filter, format)
		if err != nil {
			return common.ProblemJSON(c, err)
		}

		if format == "csv" {
			c.Set(fiber.HeaderContentType, "text/csv")
			c.Set(fiber.HeaderContentDisposition, `attachment; filename="transactions.csv"`)
		} else {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			c.Set(fiber.HeaderContentDisposition, `attachment; filename="transactions.json"`)
		}
		return c.Status(fiber.StatusOK).Send(data)
	}
}

// Import ingests a previously exported document. The batch is atomic.
func Import(svc *service.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ImportInput](c)
		if input == nil {
			return err
		}
		n, err := svc.Import(c.Context(), common.HouseholdID, input.Format, input.Data)
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions imported", fiber.Map{"imported": n})
	}
}

func monthQuery(c *fiber.Ctx) (repository.TransactionFilter, error) {
	month := c.Query("month")
	if month == "" {
		return repository.TransactionFilter{}, nil
	}
	return service.MonthFilter(month)
}

func (in Input) toDomain() (domain.Transaction, error) {
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return domain.Transaction{}, err
	}
	return domain.Transaction{
		UserID:              common.HouseholdID,
		Type:                domain.TransactionType(in.Type),
		Category:            domain.Category(in.Category),
		DestinationCategory: domain.Category(in.DestinationCategory),
		Amount:              decimal.NewFromFloat(in.Amount),
		Currency:            currency.Normalize(currency.Code(in.Currency)),
		Source:              domain.NormalizeMethod(domain.PaymentMethod(in.Source)),
		Destination:         domain.NormalizeMethod(domain.PaymentMethod(in.Destination)),
		Fund:                domain.ParseFund(in.Fund),
		Date:                date,
		Description:         in.Description,
	}, nil
}

func toMap(t domain.Transaction) fiber.Map {
	return fiber.Map{
		"id":                   t.ID,
		"type":                 t.Type,
		"category":             t.Category,
		"destination_category": t.DestinationCategory,
		"amount":               t.Amount.InexactFloat64(),
		"currency":             t.Currency,
		"source":               t.Source,
		"destination":          t.Destination,
		"fund":                 fundLabel(t.Fund),
		"date":                 t.Date.Format("2006-01-02"),
		"description":          t.Description,
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
