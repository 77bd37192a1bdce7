package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardScaler_FitTransform(t *testing.T) {
	X := [][]float64{
		{1, 10, 5},
		{2, 20, 5},
		{3, 30, 5},
	}

	scaler := &StandardScaler{}
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{2, 20, 5}, scaler.Mean, 1e-12)
	// Популяционная дисперсия: ((1-2)^2+0+(3-2)^2)/3
	assert.InDelta(t, 2.0/3.0, scaler.Var[0], 1e-12)
	assert.InDelta(t, math.Sqrt(2.0/3.0), scaler.Scale[0], 1e-12)
	assert.Equal(t, 1.0, scaler.Scale[2], "zero variance column keeps scale 1")
	assert.Equal(t, 3, scaler.NSamples)

	for j := 0; j < 2; j++ {
		sum := 0.0
		for i := range scaled {
			sum += scaled[i][j]
		}
		assert.InDelta(t, 0, sum/3, 1e-12)
	}
	for i := range scaled {
		assert.Equal(t, 0.0, scaled[i][2])
	}

	// Исходная матрица не меняется
	assert.Equal(t, 1.0, X[0][0])
}

func TestStandardScaler_Errors(t *testing.T) {
	scaler := &StandardScaler{}

	_, err := scaler.Transform([][]float64{{1}})
	assert.Error(t, err, "transform before fit")

	assert.Error(t, scaler.Fit(nil))
	assert.Error(t, scaler.Fit([][]float64{{1, 2}, {3}}))

	require.NoError(t, scaler.Fit([][]float64{{1, 2}, {3, 4}}))
	_, err = scaler.Transform([][]float64{{1, 2, 3}})
	assert.Error(t, err)
}
