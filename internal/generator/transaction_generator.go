package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"bank-aml-pod/internal/dataset"
	"bank-aml-pod/internal/fraud"
	"bank-aml-pod/internal/models"
)

const (
	AmountMu       = 5.0 // Параметры логнормального распределения сумм
	AmountSigma    = 1.5
	ForeignShare   = 0.3
	HistoryDays    = 90
	MaxRecords     = 1_000_000 // Верхняя граница размера одного набора
	DatasetFile    = "transactions.csv"
	minimumAmount  = 0.01
	secondsPerDay  = 24 * 60 * 60
	customerIDBase = 1000
	customerIDSpan = 9000
	benefIDBase    = 5000
	benefIDSpan    = 5000
)

var (
	ErrInvalidBankName = errors.New("invalid bank name")
	ErrOutsideDataDir  = errors.New("path is outside of data directory")
)

// Имя банка становится частью пути, поэтому допускаются только буквы, цифры, '_' и '-'
var bankNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Currencies и CurrencyWeights задают распределение валют
var (
	Currencies      = []string{"EUR", "USD", "GBP"}
	CurrencyWeights = []float64{0.6, 0.3, 0.1}
)

// Options - параметры генерации для одного банка
type Options struct {
	Records  int
	Seed     uint64
	BankName string
	Now      time.Time // Опорное время; нулевое значение - time.Now()
}

// Stats - итог генерации
type Stats struct {
	Records         int
	SuspiciousCount int
	RiskyCount      int
	Path            string
}

// SuspiciousRate возвращает наблюдаемую долю подозрительных транзакций
func (s Stats) SuspiciousRate() float64 {
	if s.Records == 0 {
		return 0
	}
	return float64(s.SuspiciousCount) / float64(s.Records)
}

type TransactionGenerator struct {
	opts     Options
	rand     *rand.Rand
	amount   distuv.LogNormal
	foreign  distuv.Bernoulli
	currency distuv.Categorical
	rule     *fraud.LabelingRule
}

// NewTransactionGenerator создает генератор с собственным источником случайности
func NewTransactionGenerator(opts Options) (*TransactionGenerator, error) {
	if opts.Records < 0 || opts.Records > MaxRecords {
		return nil, fmt.Errorf("records must be in [0, %d], got %d", MaxRecords, opts.Records)
	}
	if err := ValidateBankName(opts.BankName); err != nil {
		return nil, err
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	rule, err := fraud.NewLabelingRule()
	if err != nil {
		return nil, err
	}

	src := rand.NewPCG(opts.Seed, opts.Seed)
	return &TransactionGenerator{
		opts:     opts,
		rand:     rand.New(src),
		amount:   distuv.LogNormal{Mu: AmountMu, Sigma: AmountSigma, Src: src},
		foreign:  distuv.Bernoulli{P: ForeignShare, Src: src},
		currency: distuv.NewCategorical(CurrencyWeights, src),
		rule:     rule,
	}, nil
}

// Generate генерирует размеченные транзакции
func (g *TransactionGenerator) Generate() ([]*models.Transaction, error) {
	txs := make([]*models.Transaction, 0, g.opts.Records)
	for i := 0; i < g.opts.Records; i++ {
		tx, err := g.generateTransaction(i)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// GenerateToDir генерирует транзакции и записывает их в <dir>/<bank>_pod/transactions.csv
func (g *TransactionGenerator) GenerateToDir(dir string) ([]*models.Transaction, Stats, error) {
	txs, err := g.Generate()
	if err != nil {
		return nil, Stats{}, err
	}

	path := OutputPath(dir, g.opts.BankName)
	if !WithinDir(dir, path) {
		return nil, Stats{}, fmt.Errorf("%w: %s", ErrOutsideDataDir, path)
	}
	if err := dataset.WriteFile(path, txs); err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{Records: len(txs), Path: path}
	for _, tx := range txs {
		if tx.SuspiciousFlag {
			stats.SuspiciousCount++
		}
		if fraud.IsRiskyEntity(tx.Origin) {
			stats.RiskyCount++
		}
	}
	return txs, stats, nil
}

// OutputPath возвращает путь к файлу транзакций банка
func OutputPath(dir, bankName string) string {
	return filepath.Join(dir, PodDir(bankName), DatasetFile)
}

// ValidateBankName проверяет, что имя банка можно использовать в имени директории
func ValidateBankName(name string) error {
	if !bankNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidBankName, name)
	}
	return nil
}

// WithinDir сообщает, лежит ли path внутри dir после очистки обоих путей
func WithinDir(dir, path string) bool {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// PodDir возвращает имя директории банка, например "bank_a_pod"
func PodDir(bankName string) string {
	return strings.ToLower(bankName) + "_pod"
}

func (g *TransactionGenerator) generateTransaction(i int) (*models.Transaction, error) {
	// Время: случайный день за последние 90 дней и случайное время суток
	daysAgo := g.rand.IntN(HistoryDays + 1)
	secondsAgo := g.rand.IntN(secondsPerDay)
	timestamp := g.opts.Now.
		AddDate(0, 0, -daysAgo).
		Add(-time.Duration(secondsAgo) * time.Second)

	tx := &models.Transaction{
		TransactionID: fmt.Sprintf("TX_%s_%05d", g.opts.BankName, i),
		Timestamp:     timestamp,
		Amount:        g.generateAmount(),
		IsForeign:     g.foreign.Rand() == 1,
	}

	// Приоритет: известный рисковый контрагент, затем правило
	if g.rand.Float64() < fraud.RiskyEntityShare {
		tx.Origin = fraud.RiskyEntities[g.rand.IntN(len(fraud.RiskyEntities))]
		tx.SuspiciousFlag = true
	} else {
		tx.Origin = fmt.Sprintf("CUST_%d", customerIDBase+g.rand.IntN(customerIDSpan))
		suspicious, err := g.rule.IsSuspicious(tx.Amount, tx.IsForeign, timestamp.Hour())
		if err != nil {
			return nil, err
		}
		tx.SuspiciousFlag = suspicious
	}

	tx.Currency = Currencies[int(g.currency.Rand())]
	tx.Destination = fmt.Sprintf("BENEF_%d", benefIDBase+g.rand.IntN(benefIDSpan))

	return tx, nil
}

// generateAmount возвращает положительную сумму с двумя знаками
func (g *TransactionGenerator) generateAmount() float64 {
	return math.Max(roundToTwoDecimals(g.amount.Rand()), minimumAmount)
}

// roundToTwoDecimals округляет число до 2 знаков после запятой
func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
