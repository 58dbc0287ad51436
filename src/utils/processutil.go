package utils

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
)

func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// HasColumn reports whether the frame carries a column with the given name.
func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// FormatShape renders a (rows, cols) pair the way the run report prints
// table shapes.
func FormatShape(rows, cols int) string {
	return fmt.Sprintf("(%d, %d)", rows, cols)
}
