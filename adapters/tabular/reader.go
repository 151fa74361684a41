package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"voyage/domain/passenger"
	"voyage/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Required dataset columns. Header matching is case-insensitive; extra
// columns are ignored.
var requiredColumns = []string{
	"passengerid", "survived", "pclass", "name", "sex", "age", "sibsp", "parch", "fare",
}

// DataReader loads the passenger manifest from a CSV file, an XLSX file, or
// an HTTP(S) URL serving CSV.
type DataReader struct {
	locator  string
	fileType string // "csv", "xlsx" or "url"
}

// NewDataReader creates a reader for the given resource locator.
func NewDataReader(locator string) *DataReader {
	fileType := "csv"
	if strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://") {
		fileType = "url"
	} else if strings.ToLower(filepath.Ext(locator)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &DataReader{locator: locator, fileType: fileType}
}

// Locator returns the resource locator this reader was built for.
func (r *DataReader) Locator() string {
	return r.locator
}

// Read loads the passenger records. It fails with DATA_UNAVAILABLE when the
// resource cannot be fetched or parsed, SCHEMA_MISMATCH when a required
// column is absent, and EMPTY_INPUT when no data rows follow the header.
func (r *DataReader) Read() ([]passenger.Passenger, error) {
	log.Printf("[DataReader] Loading %s dataset: %s", r.fileType, r.locator)
	start := time.Now()

	var rows [][]string
	var err error
	switch r.fileType {
	case "url":
		rows, err = r.fetchCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, err
	}

	records, err := parseRows(rows)
	if err != nil {
		return nil, err
	}

	log.Printf("[DataReader] Loaded %d passengers in %.2fms", len(records), float64(time.Since(start).Nanoseconds())/1e6)
	return records, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.locator)
	if err != nil {
		return nil, errors.DataUnavailable(fmt.Sprintf("failed to open CSV file %s", r.locator), err)
	}
	defer file.Close()
	return decodeCSV(file)
}

func (r *DataReader) fetchCSVRows() ([][]string, error) {
	resp, err := http.Get(r.locator)
	if err != nil {
		return nil, errors.DataUnavailable(fmt.Sprintf("failed to fetch %s", r.locator), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.DataUnavailable(fmt.Sprintf("unexpected status %d fetching %s", resp.StatusCode, r.locator), nil)
	}
	return decodeCSV(resp.Body)
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.locator)
	if err != nil {
		return nil, errors.DataUnavailable(fmt.Sprintf("failed to open Excel file %s", r.locator), err)
	}
	defer f.Close()

	// Always use Sheet1
	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.DataUnavailable("failed to read Sheet1", err)
	}
	return rows, nil
}

func decodeCSV(src io.Reader) ([][]string, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; parseRows pads them

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.DataUnavailable("failed to parse CSV data", err)
	}
	return rows, nil
}

// parseRows turns raw header+data rows into typed passenger records.
func parseRows(rows [][]string) ([]passenger.Passenger, error) {
	if len(rows) == 0 {
		return nil, errors.EmptyInput("dataset has no rows")
	}

	colIndex := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		colIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			return nil, errors.SchemaMismatch(fmt.Sprintf("required column %q is missing", col))
		}
	}

	if len(rows) < 2 {
		return nil, errors.EmptyInput("dataset has a header but no data rows")
	}

	records := make([]passenger.Passenger, 0, len(rows)-1)
	for rowNum, row := range rows[1:] {
		cell := func(col string) string {
			i := colIndex[col]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		id, err := strconv.Atoi(cell("passengerid"))
		if err != nil {
			return nil, errors.SchemaMismatch(fmt.Sprintf("row %d: invalid passenger id %q", rowNum+2, cell("passengerid")))
		}
		class, err := strconv.Atoi(cell("pclass"))
		if err != nil {
			return nil, errors.SchemaMismatch(fmt.Sprintf("row %d: invalid pclass %q", rowNum+2, cell("pclass")))
		}
		survived, err := parseSurvived(cell("survived"))
		if err != nil {
			return nil, errors.SchemaMismatch(fmt.Sprintf("row %d: invalid survived flag %q", rowNum+2, cell("survived")))
		}
		sibsp, err := parseCount(cell("sibsp"))
		if err != nil {
			return nil, errors.SchemaMismatch(fmt.Sprintf("row %d: invalid sibsp %q", rowNum+2, cell("sibsp")))
		}
		parch, err := parseCount(cell("parch"))
		if err != nil {
			return nil, errors.SchemaMismatch(fmt.Sprintf("row %d: invalid parch %q", rowNum+2, cell("parch")))
		}

		records = append(records, passenger.Passenger{
			ID:       id,
			Class:    class,
			Sex:      passenger.NormalizeSex(cell("sex")),
			Age:      parseOptionalFloat(cell("age")),
			Survived: survived,
			SibSp:    sibsp,
			Parch:    parch,
			Fare:     parseOptionalFloat(cell("fare")),
			Name:     cell("name"),
		})
	}

	return records, nil
}

// parseOptionalFloat treats blank cells as absent, never zero.
func parseOptionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

func parseSurvived(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return strconv.ParseBool(strings.ToLower(s))
}

func parseCount(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("not a non-negative integer: %q", s)
	}
	return n, nil
}
