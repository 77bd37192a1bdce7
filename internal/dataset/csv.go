package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"bank-aml-pod/internal/models"
)

// Имена колонок файла транзакций
const (
	ColumnTransactionID  = "transaction_id"
	ColumnTimestamp      = "timestamp"
	ColumnAmount         = "amount"
	ColumnCurrency       = "currency"
	ColumnOrigin         = "origin"
	ColumnDestination    = "destination"
	ColumnIsForeign      = "is_foreign"
	ColumnSuspiciousFlag = "suspicious_flag"
)

// Header - порядок колонок при записи
var Header = []string{
	ColumnTransactionID,
	ColumnTimestamp,
	ColumnAmount,
	ColumnCurrency,
	ColumnOrigin,
	ColumnDestination,
	ColumnIsForeign,
	ColumnSuspiciousFlag,
}

// TimestampLayout - формат времени в файле (без зоны, как "настенное" время)
const TimestampLayout = "2006-01-02 15:04:05.000000"

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

var (
	ErrMissingColumn = errors.New("missing column")
	ErrEmptyDataset  = errors.New("dataset has no rows")
)

// WriteFile записывает транзакции в CSV, создавая директорию и перезаписывая файл
func WriteFile(path string, txs []*models.Transaction) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create dataset directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}

	if err := Write(file, txs); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Write записывает транзакции в CSV с заголовком
func Write(w io.Writer, txs []*models.Transaction) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, tx := range txs {
		record := []string{
			tx.TransactionID,
			tx.Timestamp.Format(TimestampLayout),
			strconv.FormatFloat(tx.Amount, 'f', 2, 64),
			tx.Currency,
			tx.Origin,
			tx.Destination,
			formatBool(tx.IsForeign),
			formatBool(tx.SuspiciousFlag),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write transaction %s: %w", tx.TransactionID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Table - прочитанный CSV с доступом к колонкам по имени
type Table struct {
	header []string
	index  map[string]int
	rows   [][]string
}

// ReadFile читает CSV файл транзакций
func ReadFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Read читает CSV с заголовком. Строки с неверным числом полей - ошибка.
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	return &Table{header: header, index: index, rows: rows}, nil
}

// Len возвращает число строк без заголовка
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns возвращает заголовок таблицы
func (t *Table) Columns() []string {
	return append([]string(nil), t.header...)
}

func (t *Table) column(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	return i, nil
}

// StringColumn возвращает значения колонки как есть
func (t *Table) StringColumn(name string) ([]string, error) {
	col, err := t.column(name)
	if err != nil {
		return nil, err
	}
	values := make([]string, len(t.rows))
	for i, row := range t.rows {
		values[i] = row[col]
	}
	return values, nil
}

// Float64Column разбирает колонку как числа
func (t *Table) Float64Column(name string) ([]float64, error) {
	col, err := t.column(name)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(t.rows))
	for i, row := range t.rows {
		v, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", i+1, name, err)
		}
		values[i] = v
	}
	return values, nil
}

// BoolColumn разбирает колонку как флаги (0/1, true/false)
func (t *Table) BoolColumn(name string) ([]bool, error) {
	col, err := t.column(name)
	if err != nil {
		return nil, err
	}
	values := make([]bool, len(t.rows))
	for i, row := range t.rows {
		v, err := parseBool(row[col])
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", i+1, name, err)
		}
		values[i] = v
	}
	return values, nil
}

// TimeColumn разбирает колонку как время
func (t *Table) TimeColumn(name string) ([]time.Time, error) {
	col, err := t.column(name)
	if err != nil {
		return nil, err
	}
	values := make([]time.Time, len(t.rows))
	for i, row := range t.rows {
		v, err := parseTimestamp(row[col])
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", i+1, name, err)
		}
		values[i] = v
	}
	return values, nil
}

// Transactions декодирует все строки в модели транзакций
func (t *Table) Transactions() ([]*models.Transaction, error) {
	ids, err := t.StringColumn(ColumnTransactionID)
	if err != nil {
		return nil, err
	}
	timestamps, err := t.TimeColumn(ColumnTimestamp)
	if err != nil {
		return nil, err
	}
	amounts, err := t.Float64Column(ColumnAmount)
	if err != nil {
		return nil, err
	}
	currencies, err := t.StringColumn(ColumnCurrency)
	if err != nil {
		return nil, err
	}
	origins, err := t.StringColumn(ColumnOrigin)
	if err != nil {
		return nil, err
	}
	destinations, err := t.StringColumn(ColumnDestination)
	if err != nil {
		return nil, err
	}
	foreign, err := t.BoolColumn(ColumnIsForeign)
	if err != nil {
		return nil, err
	}
	suspicious, err := t.BoolColumn(ColumnSuspiciousFlag)
	if err != nil {
		return nil, err
	}

	txs := make([]*models.Transaction, t.Len())
	for i := range txs {
		txs[i] = &models.Transaction{
			TransactionID:  ids[i],
			Timestamp:      timestamps[i],
			Amount:         amounts[i],
			Currency:       currencies[i],
			Origin:         origins[i],
			Destination:    destinations[i],
			IsForeign:      foreign[i],
			SuspiciousFlag: suspicious[i],
		}
	}
	return txs, nil
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func parseBool(s string) (bool, error) {
	switch s {
	case "1", "1.0":
		return true, nil
	case "0", "0.0":
		return false, nil
	}
	return strconv.ParseBool(s)
}

func parseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, s)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
