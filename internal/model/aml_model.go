package model

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"bank-aml-pod/internal/dataset"
	"bank-aml-pod/internal/features"
	"bank-aml-pod/internal/models"
)

var ErrModelNotTrained = errors.New("model not trained yet")

// Options - параметры локальной модели
type Options struct {
	BankName     string
	ArtifactPath string
	Seed         uint64
	MaxIter      int
	Alpha        float64
	Tol          float64
}

// AMLModel - локальная модель выявления подозрительных транзакций одного банка
type AMLModel struct {
	opts       Options
	classifier *SGDClassifier
	scaler     *StandardScaler
	isTrained  bool
	trainedAt  time.Time
}

// NewAMLModel создает необученную модель
func NewAMLModel(opts Options) *AMLModel {
	if opts.ArtifactPath == "" {
		opts.ArtifactPath = "model_state.json"
	}

	classifier := NewSGDClassifier(opts.Seed)
	if opts.MaxIter > 0 {
		classifier.MaxIter = opts.MaxIter
	}
	if opts.Alpha > 0 {
		classifier.Alpha = opts.Alpha
	}
	if opts.Tol > 0 {
		classifier.Tol = opts.Tol
	}

	return &AMLModel{
		opts:       opts,
		classifier: classifier,
		scaler:     &StandardScaler{},
	}
}

// Train обучает модель на CSV файле банка и сохраняет артефакт.
// Точность считается на обучающей выборке.
func (m *AMLModel) Train(dataPath string) (*models.TrainingSummary, error) {
	log.Printf("[AML Model] Training on %s...", filepath.Base(dataPath))

	table, err := dataset.ReadFile(dataPath)
	if err != nil {
		return nil, err
	}

	summary, err := m.fit(table)
	if err != nil {
		return nil, err
	}
	summary.DataPath = dataPath

	if err := m.Save(m.opts.ArtifactPath); err != nil {
		return nil, err
	}
	summary.ArtifactPath = m.opts.ArtifactPath

	log.Printf("[AML Model] Training complete: accuracy=%.3f, detected=%d/%d, model saved as '%s'",
		summary.Accuracy, summary.PredictedSuspicious, summary.ActualSuspicious, m.opts.ArtifactPath)
	return summary, nil
}

func (m *AMLModel) fit(table *dataset.Table) (*models.TrainingSummary, error) {
	matrix, err := features.Prepare(table)
	if err != nil {
		return nil, err
	}
	labels, err := features.Labels(table)
	if err != nil {
		return nil, err
	}

	// Обучаем копии: при ошибке ранее обученная модель остается согласованной
	scaler := &StandardScaler{}
	scaled, err := scaler.FitTransform(matrix.Rows)
	if err != nil {
		return nil, err
	}
	classifier := *m.classifier
	if err := classifier.Fit(scaled, labels); err != nil {
		return nil, fmt.Errorf("failed to fit classifier: %w", err)
	}
	m.scaler = scaler
	m.classifier = &classifier
	m.isTrained = true
	m.trainedAt = time.Now().UTC()

	predicted := m.classifier.Predict(scaled)
	summary := &models.TrainingSummary{
		Records:    len(labels),
		Iterations: m.classifier.NIter,
	}
	correct := 0
	for i := range labels {
		if predicted[i] == labels[i] {
			correct++
		}
		if predicted[i] == 1 {
			summary.PredictedSuspicious++
		}
		if labels[i] == 1 {
			summary.ActualSuspicious++
		}
	}
	summary.Accuracy = float64(correct) / float64(len(labels))

	return summary, nil
}

// IsTrained сообщает, обучена ли модель
func (m *AMLModel) IsTrained() bool {
	return m.isTrained
}

// BankName возвращает банк, которому принадлежит модель
func (m *AMLModel) BankName() string {
	return m.opts.BankName
}

// Weights возвращает коэффициенты и свободный член для будущего федеративного обучения
func (m *AMLModel) Weights() (*models.Weights, error) {
	if !m.isTrained {
		return nil, ErrModelNotTrained
	}

	return &models.Weights{
		Coef:         [][]float64{append([]float64(nil), m.classifier.Coef...)},
		Intercept:    []float64{m.classifier.Intercept},
		FeatureNames: append([]string(nil), features.Names...),
		BankName:     m.opts.BankName,
	}, nil
}

// PredictTable возвращает метки 0/1 для таблицы транзакций
func (m *AMLModel) PredictTable(table *dataset.Table) ([]float64, error) {
	if !m.isTrained {
		return nil, ErrModelNotTrained
	}

	matrix, err := features.Prepare(table)
	if err != nil {
		return nil, err
	}
	scaled, err := m.scaler.Transform(matrix.Rows)
	if err != nil {
		return nil, err
	}
	return m.classifier.Predict(scaled), nil
}

// Artifact возвращает сериализуемое состояние модели
func (m *AMLModel) Artifact() (*Artifact, error) {
	if !m.isTrained {
		return nil, ErrModelNotTrained
	}

	return &Artifact{
		SchemaVersion: SchemaVersion,
		BankName:      m.opts.BankName,
		FeatureNames:  append([]string(nil), features.Names...),
		Classifier: ClassifierState{
			Loss:      "log_loss",
			Penalty:   "l2",
			Alpha:     m.classifier.Alpha,
			Coef:      [][]float64{append([]float64(nil), m.classifier.Coef...)},
			Intercept: []float64{m.classifier.Intercept},
			Classes:   []int{0, 1},
			NIter:     m.classifier.NIter,
		},
		Scaler: ScalerState{
			Mean:     append([]float64(nil), m.scaler.Mean...),
			Scale:    append([]float64(nil), m.scaler.Scale...),
			Var:      append([]float64(nil), m.scaler.Var...),
			NSamples: m.scaler.NSamples,
		},
		TrainedAt: m.trainedAt,
	}, nil
}

// Save записывает артефакт модели
func (m *AMLModel) Save(path string) error {
	artifact, err := m.Artifact()
	if err != nil {
		return err
	}
	return SaveArtifact(path, artifact)
}

// LoadModel восстанавливает обученную модель из артефакта
func LoadModel(path string) (*AMLModel, error) {
	artifact, err := LoadArtifact(path)
	if err != nil {
		return nil, err
	}

	m := NewAMLModel(Options{BankName: artifact.BankName, ArtifactPath: path})
	m.classifier.Alpha = artifact.Classifier.Alpha
	m.classifier.Coef = append([]float64(nil), artifact.Classifier.Coef[0]...)
	m.classifier.Intercept = artifact.Classifier.Intercept[0]
	m.classifier.NIter = artifact.Classifier.NIter
	m.scaler.Mean = append([]float64(nil), artifact.Scaler.Mean...)
	m.scaler.Scale = append([]float64(nil), artifact.Scaler.Scale...)
	m.scaler.Var = append([]float64(nil), artifact.Scaler.Var...)
	m.scaler.NSamples = artifact.Scaler.NSamples
	m.isTrained = true
	m.trainedAt = artifact.TrainedAt

	return m, nil
}
