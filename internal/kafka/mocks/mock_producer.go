package mocks

import (
	"bank-aml-pod/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockProducer является моком для kafka.Producer интерфейса
type MockProducer struct {
	mock.Mock
}

// SendWeightsEvent мок для SendWeightsEvent
func (m *MockProducer) SendWeightsEvent(event *models.WeightsEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// Close мок для Close
func (m *MockProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}
