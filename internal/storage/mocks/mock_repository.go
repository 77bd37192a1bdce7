package mocks

import (
	"bank-aml-pod/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockTrainingRepository является моком для storage.TrainingRepository интерфейса
type MockTrainingRepository struct {
	mock.Mock
}

func (m *MockTrainingRepository) SaveDataset(info *models.DatasetInfo) error {
	args := m.Called(info)
	return args.Error(0)
}

func (m *MockTrainingRepository) GetAllDatasets(limit int) ([]*models.DatasetInfo, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DatasetInfo), args.Error(1)
}

func (m *MockTrainingRepository) SaveTrainingRun(run *models.TrainingRun) error {
	args := m.Called(run)
	return args.Error(0)
}

func (m *MockTrainingRepository) GetTrainingRun(runID string) (*models.TrainingRun, error) {
	args := m.Called(runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrainingRun), args.Error(1)
}

func (m *MockTrainingRepository) GetLatestTrainingRun(bankName string) (*models.TrainingRun, error) {
	args := m.Called(bankName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrainingRun), args.Error(1)
}

func (m *MockTrainingRepository) GetAllTrainingRuns(limit int) ([]*models.TrainingRun, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TrainingRun), args.Error(1)
}

func (m *MockTrainingRepository) ClearAll() error {
	args := m.Called()
	return args.Error(0)
}
