package mocks

import (
	"context"

	"bank-aml-pod/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockPodService является моком для services.PodService интерфейса
type MockPodService struct {
	mock.Mock
}

func (m *MockPodService) GenerateDataset(ctx context.Context, req *models.DatasetRequest) (*models.DatasetInfo, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DatasetInfo), args.Error(1)
}

func (m *MockPodService) TrainModel(ctx context.Context, req *models.TrainRequest) (*models.TrainingRun, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrainingRun), args.Error(1)
}

func (m *MockPodService) GetWeights(ctx context.Context) (*models.Weights, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Weights), args.Error(1)
}

func (m *MockPodService) GetTrainingRuns(limit int) ([]*models.TrainingRun, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TrainingRun), args.Error(1)
}

func (m *MockPodService) GetTrainingRun(runID string) (*models.TrainingRun, error) {
	args := m.Called(runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrainingRun), args.Error(1)
}

func (m *MockPodService) GetDatasets(limit int) ([]*models.DatasetInfo, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DatasetInfo), args.Error(1)
}

func (m *MockPodService) ClearHistory() error {
	args := m.Called()
	return args.Error(0)
}
