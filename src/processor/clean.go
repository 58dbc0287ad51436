package processor

import (
	"github.com/go-gota/gota/dataframe"
)

// CountMissing returns the number of missing cells in the frame.
func CountMissing(df dataframe.DataFrame) int {
	count := 0
	for _, name := range df.Names() {
		for _, missing := range df.Col(name).IsNaN() {
			if missing {
				count++
			}
		}
	}
	return count
}

// MissingByColumn returns missing-cell counts for every column that has at
// least one missing value.
func MissingByColumn(df dataframe.DataFrame) map[string]int {
	counts := make(map[string]int)
	for _, name := range df.Names() {
		for _, missing := range df.Col(name).IsNaN() {
			if missing {
				counts[name]++
			}
		}
	}
	return counts
}

// DropMissing removes every row that has at least one missing cell and
// returns the filtered frame plus the number of rows removed. No values are
// imputed; incomplete measurements simply leave the dataset.
func DropMissing(df dataframe.DataFrame) (dataframe.DataFrame, int) {
	rows := df.Nrow()
	hasMissing := make([]bool, rows)
	for _, name := range df.Names() {
		for i, missing := range df.Col(name).IsNaN() {
			if missing {
				hasMissing[i] = true
			}
		}
	}

	keep := make([]int, 0, rows)
	for i, missing := range hasMissing {
		if !missing {
			keep = append(keep, i)
		}
	}
	if len(keep) == rows {
		return df, 0
	}
	return df.Subset(keep), rows - len(keep)
}
