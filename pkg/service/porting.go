package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/parfin-app/parfin/pkg/currency"
	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/parfin-app/parfin/pkg/repository"
	"github.com/shopspring/decimal"
)

// TransactionRecord is the flat interchange shape used by export and import.
// It carries the allocation fields too, so a ledger with allocations restores
// from its own export; documents without those columns still import.
type TransactionRecord struct {
	ID                  int64   `json:"id,omitempty"`
	Date                string  `json:"date"`
	Type                string  `json:"type"`
	Category            string  `json:"category"`
	DestinationCategory string  `json:"destination_category,omitempty"`
	Amount              float64 `json:"amount"`
	Currency            string  `json:"currency"`
	Source              string  `json:"source"`
	Destination         string  `json:"destination,omitempty"`
	Fund                string  `json:"fund,omitempty"`
	Description         string  `json:"description"`
}

var csvHeader = []string{
	"id", "date", "type", "category", "destination_category",
	"amount", "currency", "source", "destination", "fund", "description",
}

// Export renders transactions as JSON or CSV.
func (s *TransactionService) Export(ctx context.Context, userID int64, filter repository.TransactionFilter, format string) ([]byte, error) {
	txs, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	records := make([]TransactionRecord, len(txs))
	for i, t := range txs {
		records[i] = TransactionRecord{
			ID:                  t.ID,
			Date:                t.Date.Format("2006-01-02"),
			Type:                string(t.Type),
			Category:            string(t.Category),
			DestinationCategory: string(t.DestinationCategory),
			Amount:              t.Amount.InexactFloat64(),
			Currency:            string(t.Currency),
			Source:              string(t.Source),
			Destination:         string(t.Destination),
			Fund:                fundName(t.Fund),
			Description:         t.Description,
		}
	}

	if format == "csv" {
		var sb strings.Builder
		w := csv.NewWriter(&sb)
		if err := w.Write(csvHeader); err != nil {
			return nil, err
		}
		for _, r := range records {
			row := []string{
				fmt.Sprintf("%d", r.ID), r.Date, r.Type, r.Category, r.DestinationCategory,
				decimal.NewFromFloat(r.Amount).String(), r.Currency, r.Source,
				r.Destination, r.Fund, r.Description,
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		return []byte(sb.String()), nil
	}

	return json.MarshalIndent(records, "", "  ")
}

// Import ingests transactions from a JSON array or CSV document. Each record
// passes the same validation as a form submission; the whole batch is
// rejected on the first bad record so a partial import never goes
// unnoticed.
func (s *TransactionService) Import(ctx context.Context, userID int64, format, data string) (int, error) {
	var records []TransactionRecord
	switch format {
	case "json":
		if err := json.Unmarshal([]byte(data), &records); err != nil {
			return 0, fmt.Errorf("parse json import: %w", err)
		}
	case "csv":
		parsed, err := parseCSVRecords(data)
		if err != nil {
			return 0, err
		}
		records = parsed
	default:
		return 0, fmt.Errorf("unsupported import format %q", format)
	}

	txs := make([]domain.Transaction, 0, len(records))
	for i, r := range records {
		t, err := r.toTransaction(userID)
		if err != nil {
			return 0, fmt.Errorf("record %d: %w", i+1, err)
		}
		if err := validateTransaction(t); err != nil {
			return 0, fmt.Errorf("record %d: %w", i+1, err)
		}
		txs = append(txs, t)
	}

	if err := s.repo.CreateBatch(ctx, txs); err != nil {
		return 0, err
	}
	s.logger.Info("transactions imported", "count", len(txs), "format", format)
	return len(txs), nil
}

func parseCSVRecords(data string) ([]TransactionRecord, error) {
	r := csv.NewReader(strings.NewReader(data))
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv import: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	col := map[string]int{}
	for i, name := range rows[0] {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []TransactionRecord
	for _, row := range rows[1:] {
		amount, err := decimal.NewFromString(field(row, "amount"))
		if err != nil {
			return nil, fmt.Errorf("bad amount %q: %w", field(row, "amount"), err)
		}
		records = append(records, TransactionRecord{
			Date:                field(row, "date"),
			Type:                field(row, "type"),
			Category:            field(row, "category"),
			DestinationCategory: field(row, "destination_category"),
			Amount:              amount.InexactFloat64(),
			Currency:            field(row, "currency"),
			Source:              field(row, "source"),
			Destination:         field(row, "destination"),
			Fund:                field(row, "fund"),
			Description:         field(row, "description"),
		})
	}
	return records, nil
}

func (r TransactionRecord) toTransaction(userID int64) (domain.Transaction, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("bad date %q: %w", r.Date, err)
	}
	return domain.Transaction{
		UserID:              userID,
		Type:                domain.TransactionType(r.Type),
		Category:            domain.Category(r.Category),
		DestinationCategory: domain.Category(r.DestinationCategory),
		Amount:              decimal.NewFromFloat(r.Amount),
		Currency:            currency.Normalize(currency.Code(r.Currency)),
		Source:              domain.NormalizeMethod(domain.PaymentMethod(r.Source)),
		Destination:         domain.NormalizeMethod(domain.PaymentMethod(r.Destination)),
		Fund:                domain.ParseFund(r.Fund),
		Date:                date,
		Description:         r.Description,
	}, nil
}

// fundName renders a bucket for the wire: named funds by name, the general
// pool as the empty string.
func fundName(b domain.FundBucket) string {
	if !b.IsFund() {
		return ""
	}
	return b.String()
}
