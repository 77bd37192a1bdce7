package generator

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bank-aml-pod/internal/dataset"
	"bank-aml-pod/internal/fraud"
	"bank-aml-pod/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referenceTime = time.Date(2025, 6, 30, 15, 0, 0, 0, time.UTC)

func newTestGenerator(t *testing.T, records int, seed uint64) *TransactionGenerator {
	gen, err := NewTransactionGenerator(Options{
		Records:  records,
		Seed:     seed,
		BankName: "Bank_A",
		Now:      referenceTime,
	})
	require.NoError(t, err)
	return gen
}

// expectedLabel - независимая запись правила разметки
func expectedLabel(tx *models.Transaction) bool {
	if fraud.IsRiskyEntity(tx.Origin) {
		return true
	}
	hour := tx.Timestamp.Hour()
	return tx.IsForeign && tx.Amount > 8000 && (hour < 6 || hour > 20)
}

func TestNewTransactionGenerator(t *testing.T) {
	gen := newTestGenerator(t, 10, 42)
	require.NotNil(t, gen)
	assert.NotNil(t, gen.rand)
	assert.NotNil(t, gen.rule)
}

func TestNewTransactionGenerator_InvalidOptions(t *testing.T) {
	_, err := NewTransactionGenerator(Options{Records: -1, BankName: "Bank_A"})
	assert.Error(t, err)

	_, err = NewTransactionGenerator(Options{Records: 10})
	assert.ErrorIs(t, err, ErrInvalidBankName)

	_, err = NewTransactionGenerator(Options{Records: MaxRecords + 1, BankName: "Bank_A"})
	assert.Error(t, err)
}

func TestValidateBankName(t *testing.T) {
	valid := []string{"Bank_A", "bank-b", "B42"}
	for _, name := range valid {
		assert.NoError(t, ValidateBankName(name), name)
	}

	invalid := []string{"", "../evil", "..", "a/b", `a\b`, "Bank A", "bank.a", strings.Repeat("x", 65)}
	for _, name := range invalid {
		err := ValidateBankName(name)
		assert.ErrorIs(t, err, ErrInvalidBankName, "name %q", name)

		_, err = NewTransactionGenerator(Options{Records: 5, BankName: name})
		assert.ErrorIs(t, err, ErrInvalidBankName, "name %q", name)
	}
}

func TestWithinDir(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, WithinDir(dir, filepath.Join(dir, "bank_a_pod", "transactions.csv")))
	assert.True(t, WithinDir(dir, filepath.Join(dir, "..a_pod", "transactions.csv")))
	assert.False(t, WithinDir(dir, filepath.Join(dir, "..", "other", "transactions.csv")))
	assert.False(t, WithinDir(dir, filepath.Dir(dir)))
	assert.False(t, WithinDir("data", "/etc/passwd"))
	assert.True(t, WithinDir("data", filepath.Join("data", "bank_a_pod", "transactions.csv")))
}

func TestTransactionGenerator_Generate_LabelsMatchRule(t *testing.T) {
	gen := newTestGenerator(t, 3000, 42)

	txs, err := gen.Generate()
	require.NoError(t, err)
	require.Len(t, txs, 3000)

	for _, tx := range txs {
		assert.Equal(t, expectedLabel(tx), tx.SuspiciousFlag, "Transaction %s has wrong label", tx.TransactionID)
	}
}

func TestTransactionGenerator_Generate_RiskyShare(t *testing.T) {
	for _, seed := range []uint64{1, 42, 99} {
		gen := newTestGenerator(t, 5000, seed)
		txs, err := gen.Generate()
		require.NoError(t, err)

		risky := 0
		for _, tx := range txs {
			if fraud.IsRiskyEntity(tx.Origin) {
				risky++
				assert.True(t, tx.SuspiciousFlag)
			}
		}

		// 3% ± 1% при n=5000 (~4 стандартных отклонения)
		share := float64(risky) / float64(len(txs))
		assert.InDelta(t, 0.03, share, 0.01, "seed %d", seed)
	}
}

func TestTransactionGenerator_Generate_Deterministic(t *testing.T) {
	first, err := newTestGenerator(t, 500, 7).Generate()
	require.NoError(t, err)
	second, err := newTestGenerator(t, 500, 7).Generate()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := newTestGenerator(t, 500, 8).Generate()
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestTransactionGenerator_TransactionFields(t *testing.T) {
	gen := newTestGenerator(t, 1000, 42)
	txs, err := gen.Generate()
	require.NoError(t, err)

	currencies := make(map[string]int)
	foreign := 0
	for i, tx := range txs {
		assert.Equal(t, fmt.Sprintf("TX_Bank_A_%05d", i), tx.TransactionID)
		assert.Greater(t, tx.Amount, 0.0)
		assert.InDelta(t, roundToTwoDecimals(tx.Amount), tx.Amount, 1e-9)
		assert.True(t, strings.HasPrefix(tx.Destination, "BENEF_"))
		assert.True(t, strings.HasPrefix(tx.Origin, "CUST_") || fraud.IsRiskyEntity(tx.Origin))
		assert.False(t, tx.Timestamp.After(referenceTime))
		assert.True(t, tx.Timestamp.After(referenceTime.AddDate(0, 0, -(HistoryDays+1))))
		currencies[tx.Currency]++
		if tx.IsForeign {
			foreign++
		}
	}

	assert.Len(t, currencies, 3)
	assert.Greater(t, currencies["EUR"], currencies["USD"])
	assert.Greater(t, currencies["USD"], currencies["GBP"])
	assert.InDelta(t, ForeignShare, float64(foreign)/float64(len(txs)), 0.06)
}

func TestTransactionGenerator_GenerateToDir(t *testing.T) {
	dir := t.TempDir()
	gen := newTestGenerator(t, 300, 42)

	txs, stats, err := gen.GenerateToDir(dir)
	require.NoError(t, err)

	expectedPath := filepath.Join(dir, "bank_a_pod", "transactions.csv")
	assert.Equal(t, expectedPath, stats.Path)
	assert.Equal(t, 300, stats.Records)

	suspicious := 0
	for _, tx := range txs {
		if tx.SuspiciousFlag {
			suspicious++
		}
	}
	assert.Equal(t, suspicious, stats.SuspiciousCount)
	assert.InDelta(t, float64(suspicious)/300.0, stats.SuspiciousRate(), 1e-12)

	table, err := dataset.ReadFile(expectedPath)
	require.NoError(t, err)
	read, err := table.Transactions()
	require.NoError(t, err)
	require.Len(t, read, 300)
	for i := range read {
		assert.Equal(t, txs[i].SuspiciousFlag, read[i].SuspiciousFlag)
		assert.Equal(t, txs[i].Timestamp.Hour(), read[i].Timestamp.Hour())
		assert.Equal(t, expectedLabel(read[i]), read[i].SuspiciousFlag)
	}
}

func TestTransactionGenerator_GenerateToDir_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, dataset.WriteFile(blocker, nil))

	gen := newTestGenerator(t, 10, 42)
	_, _, err := gen.GenerateToDir(blocker)
	assert.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "bank_b_pod", "transactions.csv"), OutputPath("data", "Bank_B"))
	assert.Equal(t, "bank_a_pod", PodDir("Bank_A"))
}

func TestStats_SuspiciousRate_Empty(t *testing.T) {
	assert.Equal(t, 0.0, Stats{}.SuspiciousRate())
}

func TestRoundToTwoDecimals(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Simple", 123.456, 123.46},
		{"Simple", 123.454, 123.45},
		{"Large", 1000000.123, 1000000.12},
		{"Small", 0.001, 0.00},
		{"Integer", 100.0, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, roundToTwoDecimals(tt.input), 0.001)
		})
	}
}
