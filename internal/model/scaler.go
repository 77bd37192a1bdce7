package model

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// StandardScaler приводит признаки к нулевому среднему и единичной дисперсии
type StandardScaler struct {
	Mean     []float64
	Scale    []float64
	Var      []float64
	NSamples int
}

// Fit считает среднее и популяционное стандартное отклонение по каждой колонке.
// Колонки с нулевой дисперсией получают масштаб 1.
func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("cannot fit scaler on empty data")
	}
	d := len(X[0])

	s.Mean = make([]float64, d)
	s.Scale = make([]float64, d)
	s.Var = make([]float64, d)
	s.NSamples = len(X)

	column := make([]float64, len(X))
	for j := 0; j < d; j++ {
		for i, row := range X {
			if len(row) != d {
				return fmt.Errorf("row %d has %d features, expected %d", i, len(row), d)
			}
			column[i] = row[j]
		}
		mean, variance := stat.PopMeanVariance(column, nil)
		s.Mean[j] = mean
		s.Var[j] = variance
		s.Scale[j] = math.Sqrt(variance)
		if s.Scale[j] < 10*math.SmallestNonzeroFloat64 || math.IsNaN(s.Scale[j]) {
			s.Scale[j] = 1
		}
	}
	return nil
}

// Transform возвращает масштабированную копию X
func (s *StandardScaler) Transform(X [][]float64) ([][]float64, error) {
	if s.Mean == nil {
		return nil, errors.New("scaler is not fitted")
	}

	out := make([][]float64, len(X))
	for i, row := range X {
		if len(row) != len(s.Mean) {
			return nil, fmt.Errorf("row %d has %d features, expected %d", i, len(row), len(s.Mean))
		}
		scaled := make([]float64, len(row))
		for j, v := range row {
			scaled[j] = (v - s.Mean[j]) / s.Scale[j]
		}
		out[i] = scaled
	}
	return out, nil
}

// FitTransform - Fit и Transform на одних данных
func (s *StandardScaler) FitTransform(X [][]float64) ([][]float64, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}
