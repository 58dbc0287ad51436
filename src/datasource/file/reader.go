package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/tealeg/xlsx"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnsupportedFormat reports a table file extension this package cannot
// handle.
var ErrUnsupportedFormat = errors.New("file: unsupported table format")

// MissingTokens are the cell values treated as missing when loading raw
// tables: gota's defaults plus the empty cell and NULL.
var MissingTokens = []string{"", "NA", "NaN", "NULL", "<nil>"}

// loadOptions are shared by the CSV and XLSX paths so both formats agree on
// missing-value handling and type detection.
func loadOptions() []dataframe.LoadOption {
	return []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(MissingTokens),
	}
}

// LoadTable reads a raw measurement table into a DataFrame. The format
// follows the extension, .csv or .xlsx. A missing file keeps its
// fs.ErrNotExist identity through the returned error so callers can tell
// "no such file" from a corrupt one.
func LoadTable(path string) (dataframe.DataFrame, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx":
		return loadXLSX(path)
	default:
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func loadCSV(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	// Raw exports saved on Windows often carry a byte order mark; decode it
	// away before the CSV parser sees the header row.
	decoded := transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	df := dataframe.ReadCSV(decoded, loadOptions()...)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parse %s: %w", path, df.Err)
	}
	return df, nil
}

func loadXLSX(path string) (dataframe.DataFrame, error) {
	workbook, err := xlsx.OpenFile(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open %s: %w", path, err)
	}
	if len(workbook.Sheets) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("parse %s: workbook has no sheets", path)
	}

	records, err := sheetRecords(workbook.Sheets[0])
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parse %s: %w", path, err)
	}

	df := dataframe.LoadRecords(records, loadOptions()...)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parse %s: %w", path, df.Err)
	}
	return df, nil
}

// sheetRecords flattens a sheet into header-plus-rows records. The first row
// is the header; short rows are padded with empty cells so every record
// matches the header width, and rows with no content at all are dropped.
func sheetRecords(sheet *xlsx.Sheet) ([][]string, error) {
	if len(sheet.Rows) == 0 {
		return nil, errors.New("sheet is empty")
	}

	header := cellValues(sheet.Rows[0])
	if len(header) == 0 {
		return nil, errors.New("sheet has no header row")
	}

	records := make([][]string, 0, len(sheet.Rows))
	records = append(records, header)
	for _, row := range sheet.Rows[1:] {
		values := cellValues(row)
		if len(values) > len(header) {
			values = values[:len(header)]
		}
		for len(values) < len(header) {
			values = append(values, "")
		}

		empty := true
		for _, v := range values {
			if v != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}
		records = append(records, values)
	}
	return records, nil
}

func cellValues(row *xlsx.Row) []string {
	values := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		values[i] = cell.Value
	}
	return values
}
