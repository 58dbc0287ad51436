package processor

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"PenguinPrep/src/config"
	"PenguinPrep/src/utils"
)

// Sentinel failures callers can test with errors.Is.
var (
	ErrMissingColumn = errors.New("processor: required column not found")
	ErrZeroVariance  = errors.New("processor: column has no variance")
	ErrEmptyTable    = errors.New("processor: no rows to process")
)

// Result is the outcome of one preprocessing run.
type Result struct {
	// Table is the processed frame that gets persisted: the original
	// columns, the appended *_encoded columns, and the numeric features
	// standardized in place.
	Table dataframe.DataFrame
	// Features and Target are the model-ready projections of Table.
	Features dataframe.DataFrame
	Target   series.Series
	// Encodings maps each categorical column to its value→code table.
	Encodings map[string]map[string]int

	MissingBefore int
	MissingAfter  int
	RowsDropped   int
}

// FeatureColumns lists the model feature columns in report order: the
// standardized numerics first, then the encoded categoricals except the
// target.
func FeatureColumns(cfg *config.Config) []string {
	features := make([]string, 0, len(cfg.NumericColumns)+len(cfg.CategoricalColumns))
	features = append(features, cfg.NumericColumns...)
	for _, col := range cfg.CategoricalColumns {
		if col == cfg.TargetColumn {
			continue
		}
		features = append(features, cfg.EncodedName(col))
	}
	return features
}

// Preprocess runs the cleaning, encoding and scaling stages over a raw
// measurement table: rows with missing cells are dropped, every categorical
// column gains an integer-coded copy, and the numeric feature columns are
// standardized in place. The stage report lines go to stdout; any stage
// error stops the run with nothing mutated in the caller's frame.
func Preprocess(df dataframe.DataFrame, cfg *config.Config) (*Result, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("preprocess: %w", df.Err)
	}

	missingBefore := CountMissing(df)
	fmt.Printf("Missing values before: %d\n", missingBefore)

	table, dropped := DropMissing(df)
	if table.Err != nil {
		return nil, fmt.Errorf("drop missing rows: %w", table.Err)
	}
	if table.Nrow() == 0 {
		return nil, fmt.Errorf("drop missing rows: %w", ErrEmptyTable)
	}
	missingAfter := CountMissing(table)
	fmt.Printf("Missing values after: %d\n", missingAfter)

	encodings := make(map[string]map[string]int, len(cfg.CategoricalColumns))
	for _, col := range cfg.CategoricalColumns {
		encoded, mapping, err := EncodeColumn(table, col, cfg.EncodedSuffix)
		if err != nil {
			return nil, err
		}
		table = encoded
		encodings[col] = mapping
	}

	table, err := Standardize(table, cfg.NumericColumns)
	if err != nil {
		return nil, err
	}

	rows, cols := table.Dims()
	fmt.Printf("Final dataset shape: %s\n", utils.FormatShape(rows, cols))

	features := table.Select(FeatureColumns(cfg))
	if features.Err != nil {
		return nil, fmt.Errorf("select feature columns: %w", features.Err)
	}
	target := table.Col(cfg.EncodedName(cfg.TargetColumn))
	if target.Err != nil {
		return nil, fmt.Errorf("select target column: %w", target.Err)
	}

	fmt.Printf("Feature matrix shape: %s\n", utils.FormatShape(features.Nrow(), features.Ncol()))
	fmt.Printf("Target distribution: %s\n", FormatDistribution(ClassDistribution(target)))

	return &Result{
		Table:         table,
		Features:      features,
		Target:        target,
		Encodings:     encodings,
		MissingBefore: missingBefore,
		MissingAfter:  missingAfter,
		RowsDropped:   dropped,
	}, nil
}

// ClassDistribution counts rows per target code.
func ClassDistribution(target series.Series) map[int]int {
	dist := make(map[int]int)
	for i := 0; i < target.Len(); i++ {
		code, err := target.Elem(i).Int()
		if err != nil {
			continue
		}
		dist[code]++
	}
	return dist
}

// FormatDistribution renders a code→count map in ascending code order.
func FormatDistribution(dist map[int]int) string {
	codes := make([]int, 0, len(dist))
	for code := range dist {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = fmt.Sprintf("%d: %d", code, dist[code])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
