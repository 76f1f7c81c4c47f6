package profit

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/profit-tracker/backend/internal/domain/entity"
)

// InitialBalanceRowDate marks the first export row, which carries the initial balance.
const InitialBalanceRowDate = "INITIAL_BALANCE"

// ExportRow is one line of an entries export.
type ExportRow struct {
	Date                  string
	FinalBalance          decimal.Decimal
	FinalBalanceFormatted string
	Profit                decimal.Decimal
	ProfitFormatted       string
	Tags                  string
	Notes                 string
}

// BuildExportRows returns the initial balance row followed by one row per entry in date
// order, each with its computed profit. Tags are joined with "; ".
func BuildExportRows(entries Entries, initial decimal.Decimal, currency entity.Currency) []ExportRow {
	series := NewSeries(entries, initial)
	rows := make([]ExportRow, 0, len(entries)+1)
	rows = append(rows, ExportRow{
		Date:                  InitialBalanceRowDate,
		FinalBalance:          initial,
		FinalBalanceFormatted: FormatMoney(initial, currency),
		Profit:                decimal.Zero,
		ProfitFormatted:       FormatMoney(decimal.Zero, currency),
		Notes:                 "Initial balance",
	})

	for _, key := range series.Keys() {
		entry := entries[key]
		profit := series.ProfitFor(key)
		rows = append(rows, ExportRow{
			Date:                  key,
			FinalBalance:          entry.FinalBalance,
			FinalBalanceFormatted: FormatMoney(entry.FinalBalance, currency),
			Profit:                profit,
			ProfitFormatted:       FormatMoney(profit, currency),
			Tags:                  strings.Join(entry.Tags, "; "),
			Notes:                 entry.Notes,
		})
	}
	return rows
}

var currencySymbols = map[entity.Currency]string{
	entity.CurrencyBRL: "R$",
	entity.CurrencyUSD: "US$",
	entity.CurrencyEUR: "€",
}

// FormatMoney renders an amount in the pt-BR style used by the app, e.g. "R$ 1.234,56" or
// "-US$ 10,00".
func FormatMoney(amount decimal.Decimal, currency entity.Currency) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = string(currency)
	}

	fixed := amount.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if amount.Round(2).IsNegative() {
		sign = "-"
	}
	return sign + symbol + " " + grouped.String() + "," + frac
}
