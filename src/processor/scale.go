package processor

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"

	"PenguinPrep/src/utils"
)

// Standardize replaces every named column with (x-mean)/std, where std is
// the population standard deviation (divisor n). Mean and std are fitted on
// the rows of this frame and applied in the same pass.
//
// A column with no variance aborts with ErrZeroVariance instead of emitting
// a silent all-zero feature: a constant measurement column means the input
// is corrupt.
func Standardize(df dataframe.DataFrame, cols []string) (dataframe.DataFrame, error) {
	out := df
	for _, col := range cols {
		if !utils.HasColumn(out, col) {
			return df, fmt.Errorf("standardize %q: %w", col, ErrMissingColumn)
		}

		values := out.Col(col).Float()
		if len(values) == 0 {
			return df, fmt.Errorf("standardize %q: %w", col, ErrEmptyTable)
		}
		for _, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return df, fmt.Errorf("standardize %q: column has missing or non-finite values", col)
			}
		}

		mean, std := stat.PopMeanStdDev(values, nil)
		if std == 0 {
			return df, fmt.Errorf("standardize %q: %w", col, ErrZeroVariance)
		}

		scaled := make([]float64, len(values))
		for i, v := range values {
			scaled[i] = (v - mean) / std
		}
		out = out.Mutate(series.New(scaled, series.Float, col))
		if out.Err != nil {
			return df, fmt.Errorf("standardize %q: %w", col, out.Err)
		}
	}
	return out, nil
}
