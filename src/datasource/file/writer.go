package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"
)

// SaveTable persists a processed DataFrame to path, header row first and no
// index column. The format follows the extension, .csv or .xlsx. A failed
// save removes the partially written file.
func SaveTable(df dataframe.DataFrame, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return saveCSV(df, path)
	case ".xlsx":
		return saveXLSX(df, path)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func saveCSV(df dataframe.DataFrame, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := df.WriteCSV(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func saveXLSX(df dataframe.DataFrame, path string) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	const sheetName = "Sheet1"

	names := df.Names()
	for i, name := range names {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := workbook.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	for colIdx, name := range names {
		column := df.Col(name)
		for rowIdx := 0; rowIdx < column.Len(); rowIdx++ {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			if err := workbook.SetCellValue(sheetName, cell, column.Val(rowIdx)); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
		}
	}

	if err := workbook.SaveAs(path); err != nil {
		os.Remove(path)
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
