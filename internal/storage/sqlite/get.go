package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"bank-aml-pod/internal/models"
)

const trainingRunColumns = `
	run_id, bank_name, data_path, artifact_path, records, accuracy,
	predicted_suspicious, actual_suspicious, iterations, coef, intercept, created_at`

// rowScanner - общий интерфейс sql.Row и sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrainingRun(row rowScanner) (*models.TrainingRun, error) {
	var run models.TrainingRun
	var coef string
	err := row.Scan(
		&run.RunID, &run.BankName, &run.Summary.DataPath, &run.Summary.ArtifactPath,
		&run.Summary.Records, &run.Summary.Accuracy, &run.Summary.PredictedSuspicious,
		&run.Summary.ActualSuspicious, &run.Summary.Iterations, &coef, &run.Intercept, &run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(coef), &run.Coef); err != nil {
		return nil, fmt.Errorf("failed to unmarshal coef of run %s: %w", run.RunID, err)
	}
	return &run, nil
}

// GetTrainingRun получает обучение по run_id
func (s *SQLiteStorage) GetTrainingRun(runID string) (*models.TrainingRun, error) {
	query := `SELECT ` + trainingRunColumns + ` FROM training_runs WHERE run_id = ?`

	run, err := scanTrainingRun(s.DB.QueryRow(query, runID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// GetLatestTrainingRun получает последнее обучение банка
func (s *SQLiteStorage) GetLatestTrainingRun(bankName string) (*models.TrainingRun, error) {
	query := `SELECT ` + trainingRunColumns + `
		FROM training_runs
		WHERE bank_name = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	run, err := scanTrainingRun(s.DB.QueryRow(query, bankName))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// GetAllTrainingRuns получает последние обучения, новые первыми
func (s *SQLiteStorage) GetAllTrainingRuns(limit int) ([]*models.TrainingRun, error) {
	query := `SELECT ` + trainingRunColumns + `
		FROM training_runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?`

	rows, err := s.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*models.TrainingRun
	for rows.Next() {
		run, err := scanTrainingRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// GetAllDatasets получает последние наборы данных, новые первыми
func (s *SQLiteStorage) GetAllDatasets(limit int) ([]*models.DatasetInfo, error) {
	query := `
		SELECT dataset_id, bank_name, seed, records, suspicious_count,
		       risky_count, suspicious_rate, path, created_at
		FROM datasets
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := s.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var datasets []*models.DatasetInfo
	for rows.Next() {
		var info models.DatasetInfo
		var seed int64
		err := rows.Scan(
			&info.DatasetID, &info.BankName, &seed, &info.Records, &info.SuspiciousCount,
			&info.RiskyCount, &info.SuspiciousRate, &info.Path, &info.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		info.Seed = uint64(seed)
		datasets = append(datasets, &info)
	}

	return datasets, rows.Err()
}
