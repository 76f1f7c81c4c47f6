package profit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profit-tracker/backend/internal/domain/entity"
)

func TestBuildExportRows(t *testing.T) {
	entries, initial := marchScenario()
	withTags(entries, "2024-03-04", "scalp", "news")
	e := entries["2024-03-04"]
	e.Notes = "CPI day"
	entries["2024-03-04"] = e

	rows := BuildExportRows(entries, initial, entity.CurrencyBRL)

	require.Len(t, rows, 3)
	assert.Equal(t, InitialBalanceRowDate, rows[0].Date)
	assert.True(t, rows[0].FinalBalance.Equal(dec(1000)))
	assert.Equal(t, "R$ 1.000,00", rows[0].FinalBalanceFormatted)
	assert.True(t, rows[0].Profit.IsZero())

	assert.Equal(t, "2024-03-01", rows[1].Date)
	assert.True(t, rows[1].Profit.Equal(dec(100)))

	assert.Equal(t, "2024-03-04", rows[2].Date)
	assert.Equal(t, "R$ 50,00", rows[2].ProfitFormatted)
	assert.Equal(t, "scalp; news", rows[2].Tags)
	assert.Equal(t, "CPI day", rows[2].Notes)
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   float64
		currency entity.Currency
		want     string
	}{
		{1234.56, entity.CurrencyBRL, "R$ 1.234,56"},
		{-10, entity.CurrencyUSD, "-US$ 10,00"},
		{1234567.8, entity.CurrencyEUR, "€ 1.234.567,80"},
		{0.5, entity.CurrencyBRL, "R$ 0,50"},
		{999, entity.CurrencyBRL, "R$ 999,00"},
		{-0.001, entity.CurrencyBRL, "R$ 0,00"},
		{12, entity.Currency("GBP"), "GBP 12,00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(dec(tt.amount), tt.currency))
		})
	}
}
