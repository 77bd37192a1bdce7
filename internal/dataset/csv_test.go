package dataset

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bank-aml-pod/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransactions() []*models.Transaction {
	return []*models.Transaction{
		{
			TransactionID:  "TX_Bank_A_00000",
			Timestamp:      time.Date(2024, 3, 10, 2, 15, 30, 0, time.UTC),
			Amount:         9120.5,
			Currency:       "EUR",
			Origin:         "CUST_1234",
			Destination:    "BENEF_6001",
			IsForeign:      true,
			SuspiciousFlag: true,
		},
		{
			TransactionID:  "TX_Bank_A_00001",
			Timestamp:      time.Date(2024, 3, 11, 14, 0, 0, 0, time.UTC),
			Amount:         120.0,
			Currency:       "USD",
			Origin:         "ENTITY_Y",
			Destination:    "BENEF_7002",
			IsForeign:      false,
			SuspiciousFlag: true,
		},
	}
}

func TestWrite_HeaderAndFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleTransactions()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "transaction_id,timestamp,amount,currency,origin,destination,is_foreign,suspicious_flag", lines[0])
	assert.Equal(t, "TX_Bank_A_00000,2024-03-10 02:15:30.000000,9120.50,EUR,CUST_1234,BENEF_6001,1,1", lines[1])
	assert.Equal(t, "TX_Bank_A_00001,2024-03-11 14:00:00.000000,120.00,USD,ENTITY_Y,BENEF_7002,0,1", lines[2])
}

func TestWriteFile_CreatesDirectoryAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank_a_pod", "transactions.csv")

	require.NoError(t, WriteFile(path, sampleTransactions()))
	require.NoError(t, WriteFile(path, sampleTransactions()[:1]))

	table, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestReadFile_Transactions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	expected := sampleTransactions()
	require.NoError(t, WriteFile(path, expected))

	table, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Header, table.Columns())

	txs, err := table.Transactions()
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, expected[0], txs[0])
	assert.Equal(t, expected[1], txs[1])
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRead_Empty(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestRead_MalformedRow(t *testing.T) {
	input := "amount,is_foreign,timestamp\n10.0,1\n"
	_, err := Read(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse csv")
}

func TestTable_MissingColumn(t *testing.T) {
	table, err := Read(strings.NewReader("amount,timestamp\n10.0,2024-01-01 10:00:00\n"))
	require.NoError(t, err)

	_, err = table.BoolColumn(ColumnIsForeign)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "is_foreign")
}

func TestTable_ParseErrors(t *testing.T) {
	table, err := Read(strings.NewReader("amount,is_foreign,timestamp\nabc,maybe,yesterday\n"))
	require.NoError(t, err)

	_, err = table.Float64Column(ColumnAmount)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `row 1, column "amount"`)

	_, err = table.BoolColumn(ColumnIsForeign)
	assert.Error(t, err)

	_, err = table.TimeColumn(ColumnTimestamp)
	assert.Error(t, err)
}

func TestTable_TimestampLayouts(t *testing.T) {
	input := "timestamp\n2024-01-01 23:10:00\n2024-01-01 05:10:00.123456\n2024-01-01T12:00:00Z\n"
	table, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	values, err := table.TimeColumn(ColumnTimestamp)
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, 23, values[0].Hour())
	assert.Equal(t, 5, values[1].Hour())
	assert.Equal(t, 12, values[2].Hour())
}

func TestTable_BoolValues(t *testing.T) {
	table, err := Read(strings.NewReader("is_foreign\n1\n0\ntrue\nFalse\n"))
	require.NoError(t, err)

	values, err := table.BoolColumn(ColumnIsForeign)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, false}, values)
}
