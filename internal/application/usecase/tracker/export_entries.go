package tracker

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/profit-tracker/backend/internal/application/adapter"
	domainerror "github.com/profit-tracker/backend/internal/domain/error"
	"github.com/profit-tracker/backend/internal/domain/profit"
	"github.com/profit-tracker/backend/internal/domain/valueobject"
)

// Export formats.
const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"
)

var exportHeader = []string{
	"date",
	"final_balance",
	"final_balance_formatted",
	"profit",
	"profit_formatted",
	"tags",
	"notes",
}

// ExportEntriesInput represents the input for exporting entries.
type ExportEntriesInput struct {
	DashboardID uuid.UUID
	UserID      uuid.UUID
	Format      string // csv (default) or json
}

// ExportEntriesOutput is a ready to download file.
type ExportEntriesOutput struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportEntriesUseCase exports every entry with its computed profit, preceded by the
// initial balance row.
type ExportEntriesUseCase struct {
	loader *SnapshotLoader
	clock  adapter.Clock
}

// NewExportEntriesUseCase creates a new ExportEntriesUseCase instance.
func NewExportEntriesUseCase(loader *SnapshotLoader, clock adapter.Clock) *ExportEntriesUseCase {
	return &ExportEntriesUseCase{
		loader: loader,
		clock:  clock,
	}
}

// Execute renders the export.
func (uc *ExportEntriesUseCase) Execute(ctx context.Context, input ExportEntriesInput) (*ExportEntriesOutput, error) {
	format := input.Format
	if format == "" {
		format = ExportFormatCSV
	}
	if format != ExportFormatCSV && format != ExportFormatJSON {
		return nil, domainerror.NewTrackerError(
			domainerror.ErrCodeInvalidExportFormat,
			"format must be: csv or json",
			domainerror.ErrInvalidExportFormat,
		)
	}

	snapshot, err := uc.loader.Load(ctx, input.DashboardID, input.UserID)
	if err != nil {
		return nil, err
	}

	rows := profit.BuildExportRows(snapshot.Entries, snapshot.Initial, snapshot.Currency)
	filename := fmt.Sprintf("profit_tracker_export_%s.%s", valueobject.DateKeyOf(uc.clock.Now()), format)

	if format == ExportFormatJSON {
		body, err := json.MarshalIndent(toExportRecords(rows), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode export: %w", err)
		}
		return &ExportEntriesOutput{Filename: filename, ContentType: "application/json", Body: body}, nil
	}

	body, err := encodeCSV(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return &ExportEntriesOutput{Filename: filename, ContentType: "text/csv", Body: body}, nil
}

type exportRecord struct {
	Date                  string  `json:"date"`
	FinalBalance          float64 `json:"final_balance"`
	FinalBalanceFormatted string  `json:"final_balance_formatted"`
	Profit                float64 `json:"profit"`
	ProfitFormatted       string  `json:"profit_formatted"`
	Tags                  string  `json:"tags"`
	Notes                 string  `json:"notes"`
}

func toExportRecords(rows []profit.ExportRow) []exportRecord {
	records := make([]exportRecord, len(rows))
	for i, r := range rows {
		records[i] = exportRecord{
			Date:                  r.Date,
			FinalBalance:          r.FinalBalance.InexactFloat64(),
			FinalBalanceFormatted: r.FinalBalanceFormatted,
			Profit:                r.Profit.InexactFloat64(),
			ProfitFormatted:       r.ProfitFormatted,
			Tags:                  r.Tags,
			Notes:                 r.Notes,
		}
	}
	return records
}

func encodeCSV(rows []profit.ExportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.Date,
			r.FinalBalance.StringFixed(2),
			r.FinalBalanceFormatted,
			r.Profit.StringFixed(2),
			r.ProfitFormatted,
			r.Tags,
			r.Notes,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
