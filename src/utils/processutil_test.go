package utils

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	t.Parallel()

	assert.True(t, Contains([]string{"csv", "xlsx"}, "xlsx"))
	assert.False(t, Contains([]string{"csv", "xlsx"}, "parquet"))
	assert.True(t, Contains([]int{1, 2, 3}, 2))
	assert.False(t, Contains(nil, 7))
}

func TestHasColumn(t *testing.T) {
	t.Parallel()

	df := dataframe.New(
		series.New([]string{"Adelie"}, series.String, "species"),
		series.New([]float64{39.1}, series.Float, "bill_length_mm"),
	)
	assert.True(t, HasColumn(df, "species"))
	assert.True(t, HasColumn(df, "bill_length_mm"))
	assert.False(t, HasColumn(df, "body_mass_g"))
}

func TestFormatShape(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(342, 10)", FormatShape(342, 10))
	assert.Equal(t, "(0, 0)", FormatShape(0, 0))
}
