package services

import (
	"context"

	"bank-aml-pod/internal/models"
)

// PodService определяет операции пода банка: генерация данных, обучение и выдача весов
type PodService interface {
	// GenerateDataset генерирует размеченный набор транзакций банка
	GenerateDataset(ctx context.Context, req *models.DatasetRequest) (*models.DatasetInfo, error)

	// TrainModel обучает локальную модель и публикует её веса
	TrainModel(ctx context.Context, req *models.TrainRequest) (*models.TrainingRun, error)

	// GetWeights возвращает веса последней обученной модели
	GetWeights(ctx context.Context) (*models.Weights, error)

	// GetTrainingRuns возвращает историю обучений
	GetTrainingRuns(limit int) ([]*models.TrainingRun, error)

	// GetTrainingRun возвращает обучение по run_id; nil, если не найдено
	GetTrainingRun(runID string) (*models.TrainingRun, error)

	// GetDatasets возвращает историю генерации
	GetDatasets(limit int) ([]*models.DatasetInfo, error)

	// ClearHistory удаляет историю из БД и кеш весов
	ClearHistory() error
}
