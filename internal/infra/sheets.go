// README: Google Sheets service initialisation for the booking log.
package infra

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// NewSheetsService creates a Sheets API client. Credentials resolution follows
// the same rules as the Firebase client: explicit file if given, ADC otherwise.
func NewSheetsService(ctx context.Context, credentialsFile string) (*sheets.Service, error) {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets.NewService: %w", err)
	}
	return svc, nil
}
