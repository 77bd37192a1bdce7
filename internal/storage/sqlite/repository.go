package sqlite

import (
	"bank-aml-pod/internal/models"
	"bank-aml-pod/internal/storage"
)

// Repository реализует интерфейс TrainingRepository для SQLite
type Repository struct {
	storage *SQLiteStorage
}

// NewRepository создает новый репозиторий SQLite
func NewRepository(storage *SQLiteStorage) storage.TrainingRepository {
	return &Repository{storage: storage}
}

func (r *Repository) SaveDataset(info *models.DatasetInfo) error {
	return r.storage.SaveDataset(info)
}

func (r *Repository) GetAllDatasets(limit int) ([]*models.DatasetInfo, error) {
	return r.storage.GetAllDatasets(limit)
}

func (r *Repository) SaveTrainingRun(run *models.TrainingRun) error {
	return r.storage.SaveTrainingRun(run)
}

func (r *Repository) GetTrainingRun(runID string) (*models.TrainingRun, error) {
	return r.storage.GetTrainingRun(runID)
}

func (r *Repository) GetLatestTrainingRun(bankName string) (*models.TrainingRun, error) {
	return r.storage.GetLatestTrainingRun(bankName)
}

func (r *Repository) GetAllTrainingRuns(limit int) ([]*models.TrainingRun, error) {
	return r.storage.GetAllTrainingRuns(limit)
}

func (r *Repository) ClearAll() error {
	return r.storage.ClearAll()
}
