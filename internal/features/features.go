// Package features строит признаки классификатора из таблицы транзакций.
package features

import (
	"fmt"
	"math"
	"sort"

	"bank-aml-pod/internal/dataset"
)

// Имена признаков в порядке колонок матрицы
const (
	AmountLog   = "amount_log"
	IsForeign   = "is_foreign"
	Hour        = "hour"
	AmountRatio = "amount_ratio"
)

var Names = []string{AmountLog, IsForeign, Hour, AmountRatio}

// Matrix - признаки по строкам; Rows[i] соответствует i-й транзакции
type Matrix struct {
	Names []string
	Rows  [][]float64
}

// Prepare строит признаки: ln(1+amount), флаг зарубежной операции,
// час операции и отношение суммы к медиане. Масштабирование не выполняется.
func Prepare(table *dataset.Table) (*Matrix, error) {
	amounts, err := table.Float64Column(dataset.ColumnAmount)
	if err != nil {
		return nil, err
	}
	foreign, err := table.BoolColumn(dataset.ColumnIsForeign)
	if err != nil {
		return nil, err
	}
	timestamps, err := table.TimeColumn(dataset.ColumnTimestamp)
	if err != nil {
		return nil, err
	}
	if len(amounts) == 0 {
		return nil, dataset.ErrEmptyDataset
	}

	median := Median(amounts)
	if median == 0 {
		return nil, fmt.Errorf("median amount is zero, amount_ratio is undefined")
	}

	rows := make([][]float64, len(amounts))
	for i, amount := range amounts {
		rows[i] = []float64{
			math.Log1p(amount),
			boolToFloat(foreign[i]),
			float64(timestamps[i].Hour()),
			amount / median,
		}
	}

	return &Matrix{Names: append([]string(nil), Names...), Rows: rows}, nil
}

// Labels читает колонку suspicious_flag как 0/1
func Labels(table *dataset.Table) ([]float64, error) {
	flags, err := table.BoolColumn(dataset.ColumnSuspiciousFlag)
	if err != nil {
		return nil, err
	}
	labels := make([]float64, len(flags))
	for i, flag := range flags {
		labels[i] = boolToFloat(flag)
	}
	return labels, nil
}

// Median - медиана со средним двух центральных значений для чётного n
func Median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func boolToFloat(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
