package mocks

import (
	"bank-aml-pod/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockClientInterface является моком для redis.ClientInterface интерфейса
type MockClientInterface struct {
	mock.Mock
}

func (m *MockClientInterface) SaveWeights(bankName string, weights *models.Weights) error {
	args := m.Called(bankName, weights)
	return args.Error(0)
}

func (m *MockClientInterface) GetWeights(bankName string) (*models.Weights, error) {
	args := m.Called(bankName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Weights), args.Error(1)
}

func (m *MockClientInterface) IncrementTrainingStats(bankName string) error {
	args := m.Called(bankName)
	return args.Error(0)
}

func (m *MockClientInterface) GetTrainingCount(bankName string) (int64, error) {
	args := m.Called(bankName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientInterface) ClearModelData() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockClientInterface) Close() error {
	args := m.Called()
	return args.Error(0)
}
