package tabular

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"qareview/domain/core"
	"qareview/domain/review"
	"qareview/internal"
	"qareview/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Required columns of the evaluation dataset schema
const (
	ColQuestion    = "question"
	ColGroundTruth = "gt_answer"
	ColCategory    = "category"
	ColChatbot     = "chatbot"
	ColError       = "error"
)

var requiredColumns = []string{ColQuestion, ColGroundTruth, ColCategory, ColChatbot, ColError}

// DataReader handles reading CSV and Excel dataset files
type DataReader struct {
	filePath string
	fileType string // "csv" or "xlsx"
	logger   *internal.Logger
}

// NewDataReader creates a new data reader that handles both CSV and Excel files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" {
		fileType = "xlsx"
	}
	return &DataReader{filePath: filePath, fileType: fileType, logger: internal.DefaultLogger}
}

// Source identifies the underlying file for report metadata
func (r *DataReader) Source() string {
	return r.filePath
}

// ReadDataset reads the dataset into rows, enforcing the schema contract
func (r *DataReader) ReadDataset(ctx context.Context) ([]review.Row, error) {
	if _, err := os.Stat(r.filePath); err != nil {
		return nil, errors.InputInvalid("dataset file not found: "+r.filePath, core.ErrDatasetUnreadable)
	}

	var raw [][]string
	var err error
	switch r.fileType {
	case "xlsx":
		raw, err = r.readExcelRows()
	default:
		raw, err = r.readCSVRows()
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.parseRows(raw)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("%s file processed (%d data rows): %s", strings.ToUpper(r.fileType), len(rows), r.filePath)
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.InputInvalid("failed to open CSV file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.InputInvalid("failed to read CSV file", err)
	}
	return rows, nil
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.InputInvalid("failed to open Excel file", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.InputInvalid("failed to read Sheet1", err)
	}
	return rows, nil
}

// parseRows converts raw string rows into domain rows. The first row must be
// the header; zero data rows is valid and yields an empty slice.
func (r *DataReader) parseRows(raw [][]string) ([]review.Row, error) {
	if len(raw) == 0 {
		return nil, errors.InputInvalid("dataset file has no header row", core.ErrDatasetUnreadable)
	}

	colIndex := make(map[string]int, len(raw[0]))
	for i, header := range raw[0] {
		colIndex[strings.TrimSpace(header)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			return nil, errors.ColumnMissing(col)
		}
	}

	cell := func(row []string, col string) string {
		i := colIndex[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rows := make([]review.Row, 0, len(raw)-1)
	for i := 1; i < len(raw); i++ {
		row := review.Row{
			Question:    cell(raw[i], ColQuestion),
			GroundTruth: cell(raw[i], ColGroundTruth),
			Category:    cell(raw[i], ColCategory),
			Chatbot:     cell(raw[i], ColChatbot),
		}

		if v := cell(raw[i], ColError); v != "" {
			code, err := parseErrorCode(v)
			if err != nil {
				return nil, errors.InputInvalid("invalid error code", core.NewInvalidErrorCodeError(v, i+1))
			}
			row.ErrorCode = &code
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// parseErrorCode accepts integer codes 1-5, tolerating the float spelling
// ("2.0") that spreadsheet exports of a nullable integer column produce
func parseErrorCode(v string) (int, error) {
	code, err := strconv.Atoi(v)
	if err != nil {
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, core.ErrInvalidErrorCode
		}
		code = int(f)
	}
	if !review.ValidCauseCode(code) {
		return 0, core.ErrInvalidErrorCode
	}
	return code, nil
}
