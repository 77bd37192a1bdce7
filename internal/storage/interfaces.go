package storage

import (
	"bank-aml-pod/internal/models"
)

// TrainingRepository определяет интерфейс для хранения истории генерации и обучения
type TrainingRepository interface {
	// SaveDataset сохраняет сведения о сгенерированном наборе данных
	SaveDataset(info *models.DatasetInfo) error

	// GetAllDatasets получает последние наборы данных
	GetAllDatasets(limit int) ([]*models.DatasetInfo, error)

	// SaveTrainingRun сохраняет результат обучения
	SaveTrainingRun(run *models.TrainingRun) error

	// GetTrainingRun получает обучение по run_id; nil, если не найдено
	GetTrainingRun(runID string) (*models.TrainingRun, error)

	// GetLatestTrainingRun получает последнее обучение банка; nil, если обучений не было
	GetLatestTrainingRun(bankName string) (*models.TrainingRun, error)

	// GetAllTrainingRuns получает последние обучения
	GetAllTrainingRuns(limit int) ([]*models.TrainingRun, error)

	// ClearAll удаляет всю историю
	ClearAll() error
}
