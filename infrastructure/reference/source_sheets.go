package reference

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const defaultSheetRange = "A:Z"

// GoogleSheetsReader authenticates with a service account key file.
type GoogleSheetsReader struct {
	credentialsFile string
}

func NewGoogleSheetsReader(credentialsFile string) *GoogleSheetsReader {
	return &GoogleSheetsReader{credentialsFile: credentialsFile}
}

func (r *GoogleSheetsReader) ReadRange(ctx context.Context, spreadsheetID, a1Range string) ([][]string, error) {
	if r.credentialsFile == "" {
		return nil, newMappingError(ErrSourceNotFound, spreadsheetID, "REFERENCE_CREDENTIALS_FILE is not set")
	}

	jsonKey, err := os.ReadFile(r.credentialsFile)
	if err != nil {
		return nil, newMappingError(ErrSourceNotFound, spreadsheetID, fmt.Sprintf("unable to read service account key file: %v", err))
	}

	jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, newMappingError(ErrUnreadable, spreadsheetID, fmt.Sprintf("unable to parse service account key: %v", err))
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, newMappingError(ErrUnreadable, spreadsheetID, fmt.Sprintf("unable to create sheets service: %v", err))
	}

	resp, err := srv.Spreadsheets.Values.Get(spreadsheetID, a1Range).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			return nil, newMappingError(ErrSourceNotFound, spreadsheetID, apiErr.Message)
		}
		return nil, newMappingError(ErrUnreadable, spreadsheetID, err.Error())
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, values := range resp.Values {
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = fmt.Sprint(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseSheetsSource splits sheets://{spreadsheetID}/{range}. The range is optional.
func parseSheetsSource(source string) (spreadsheetID, a1Range string) {
	rest := strings.TrimPrefix(source, sheetsScheme)
	spreadsheetID, a1Range, _ = strings.Cut(rest, "/")
	if a1Range == "" {
		a1Range = defaultSheetRange
	}
	return spreadsheetID, a1Range
}

func readSheet(ctx context.Context, reader SheetsReader, source string) ([][]string, error) {
	spreadsheetID, a1Range := parseSheetsSource(source)
	if spreadsheetID == "" {
		return nil, newMappingError(ErrSourceNotFound, source, "missing spreadsheet id")
	}

	rows, err := reader.ReadRange(ctx, spreadsheetID, a1Range)
	if err != nil {
		var mappingErr *MappingError
		if errors.As(err, &mappingErr) {
			mappingErr.Source = source
			return nil, mappingErr
		}
		return nil, newMappingError(ErrUnreadable, source, err.Error())
	}
	return rows, nil
}
