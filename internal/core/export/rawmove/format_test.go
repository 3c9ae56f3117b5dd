package rawmove

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeusync/moco/internal/core/axis"
)

func TestFormat(t *testing.T) {
	table := Table{
		Components: []axis.ComponentKind{axis.PosX, axis.RotY},
		Rows: [][]float64{
			{0, math.Pi / 2},
			{1.25, -math.Pi},
			{123456789.123, 0},
		},
	}

	want := "0.0             90.0            \n" +
		"1.25            -180.0          \n" +
		"123456789.12    0.0             \n"
	assert.Equal(t, want, string(Format(table)))
}

func TestFormatEmpty(t *testing.T) {
	assert.Empty(t, Format(Table{}))
	assert.Equal(t, "\n\n", string(Format(Table{Rows: [][]float64{{}, {}}})))
}

func TestField(t *testing.T) {
	assert.Equal(t, "0.0         ", Field(0))
	assert.Equal(t, "1e-05       ", Field(0.00001))
	assert.Equal(t, "0.3333333333", Field(1.0/3))
	assert.Len(t, Field(-1234567.891011), FieldWidth)
}
