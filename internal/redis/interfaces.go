package redis

import (
	"bank-aml-pod/internal/models"
)

// ClientInterface определяет интерфейс для работы с Redis.
// Реализуется типом Client
type ClientInterface interface {
	// SaveWeights сохраняет веса модели банка
	SaveWeights(bankName string, weights *models.Weights) error

	// GetWeights получает веса модели банка из кеша
	GetWeights(bankName string) (*models.Weights, error)

	// IncrementTrainingStats увеличивает счетчик обучений банка
	IncrementTrainingStats(bankName string) error

	// GetTrainingCount получает количество обучений банка
	GetTrainingCount(bankName string) (int64, error)

	// ClearModelData очищает данные моделей
	ClearModelData() error

	// Close закрывает соединение с Redis
	Close() error
}

// Убеждаемся, что Client реализует ClientInterface
var _ ClientInterface = (*Client)(nil)
