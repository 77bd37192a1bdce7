package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"bank-aml-pod/internal/models"
)

// SaveDataset сохраняет сведения о сгенерированном наборе данных
func (s *SQLiteStorage) SaveDataset(info *models.DatasetInfo) error {
	query := `
		INSERT INTO datasets (
			dataset_id, bank_name, seed, records, suspicious_count,
			risky_count, suspicious_rate, path, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := info.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return retryOperation(func() error {
		_, err := s.DB.Exec(
			query,
			info.DatasetID, info.BankName, int64(info.Seed), info.Records, info.SuspiciousCount,
			info.RiskyCount, info.SuspiciousRate, info.Path, createdAt,
		)
		return err
	}, defaultRetries, defaultRetryDelay)
}

// SaveTrainingRun сохраняет результат обучения; коэффициенты хранятся как JSON массив
func (s *SQLiteStorage) SaveTrainingRun(run *models.TrainingRun) error {
	coef, err := json.Marshal(run.Coef)
	if err != nil {
		return fmt.Errorf("failed to marshal coef: %w", err)
	}

	query := `
		INSERT INTO training_runs (
			run_id, bank_name, data_path, artifact_path, records, accuracy,
			predicted_suspicious, actual_suspicious, iterations, coef, intercept, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return retryOperation(func() error {
		_, err := s.DB.Exec(
			query,
			run.RunID, run.BankName, run.Summary.DataPath, run.Summary.ArtifactPath,
			run.Summary.Records, run.Summary.Accuracy, run.Summary.PredictedSuspicious,
			run.Summary.ActualSuspicious, run.Summary.Iterations, string(coef), run.Intercept, createdAt,
		)
		return err
	}, defaultRetries, defaultRetryDelay)
}
