package processor

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"PenguinPrep/src/utils"
)

// LabelEncode assigns every distinct value an integer code in first-seen
// order: 0 for the first distinct value from the top, 1 for the next new
// one, and so on. The codes are deterministic for a given input and form a
// bijection between the distinct values and 0..k-1.
func LabelEncode(values []string) ([]int, map[string]int) {
	codes := make([]int, len(values))
	mapping := make(map[string]int)
	for i, v := range values {
		code, seen := mapping[v]
		if !seen {
			code = len(mapping)
			mapping[v] = code
		}
		codes[i] = code
	}
	return codes, mapping
}

// EncodeColumn appends an integer-coded copy of a categorical column named
// <col><suffix> and returns the value→code mapping. The original column is
// retained so the processed table stays human-readable.
func EncodeColumn(df dataframe.DataFrame, col, suffix string) (dataframe.DataFrame, map[string]int, error) {
	if !utils.HasColumn(df, col) {
		return df, nil, fmt.Errorf("encode %q: %w", col, ErrMissingColumn)
	}

	codes, mapping := LabelEncode(df.Col(col).Records())
	out := df.Mutate(series.New(codes, series.Int, col+suffix))
	if out.Err != nil {
		return df, nil, fmt.Errorf("encode %q: %w", col, out.Err)
	}
	return out, mapping, nil
}
