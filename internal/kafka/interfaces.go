package kafka

import (
	"bank-aml-pod/internal/models"
)

// Producer определяет интерфейс для публикации весов модели в Kafka
type Producer interface {
	SendWeightsEvent(event *models.WeightsEvent) error

	Close() error
}
