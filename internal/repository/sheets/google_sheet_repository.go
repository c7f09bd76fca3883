package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mamadbah2/plantio/internal/config"
)

// Repository defines the spreadsheet operations used by the export sink.
type Repository interface {
	ReplaceRange(ctx context.Context, sheetRange string, rows [][]string) error
}

// GoogleSheetRepository implements Repository using the official Google Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed repository instance.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger, opts ...option.ClientOption) (*GoogleSheetRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(opts) == 0 {
		opts = []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsPath)}
	}
	opts = append(opts, option.WithScopes(sheetsapi.SpreadsheetsScope))

	service, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// ReplaceRange clears sheetRange and writes rows starting at its top-left cell.
// Values are written RAW so the sheet keeps dates and amounts as typed.
func (r *GoogleSheetRepository) ReplaceRange(ctx context.Context, sheetRange string, rows [][]string) error {
	if sheetRange == "" {
		return fmt.Errorf("sheetRange must not be empty")
	}

	clearCall := r.service.Spreadsheets.Values.Clear(r.spreadsheetID, sheetRange, &sheetsapi.ClearValuesRequest{}).Context(ctx)
	if _, err := clearCall.Do(); err != nil {
		return fmt.Errorf("clear range %s: %w", sheetRange, err)
	}

	payload := &sheetsapi.ValueRange{Values: toValues(rows)}
	update := r.service.Spreadsheets.Values.Update(r.spreadsheetID, sheetRange, payload).
		ValueInputOption("RAW").
		Context(ctx)

	if _, err := update.Do(); err != nil {
		return fmt.Errorf("write range %s: %w", sheetRange, err)
	}

	r.logger.Debug("sheet range replaced", zap.String("range", sheetRange), zap.Int("rows", len(rows)))
	return nil
}

func toValues(rows [][]string) [][]interface{} {
	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		cells := make([]interface{}, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell)
		}
		values = append(values, cells)
	}
	return values
}
