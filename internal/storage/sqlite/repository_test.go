package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"bank-aml-pod/internal/config"
	"bank-aml-pod/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*SQLiteStorage, func()) {
	cfg := &config.Config{
		DB: config.DBConfig{
			DBPath: filepath.Join(t.TempDir(), "test.db"),
		},
	}

	db, err := NewConnection(cfg)
	require.NoError(t, err)

	return db, func() { db.Close() }
}

func testRun(runID, bank string, createdAt time.Time) *models.TrainingRun {
	return &models.TrainingRun{
		RunID:    runID,
		BankName: bank,
		Summary: models.TrainingSummary{
			DataPath:            "./data/bank_a_pod/transactions.csv",
			ArtifactPath:        "model_state.json",
			Records:             3000,
			Accuracy:            0.971,
			PredictedSuspicious: 12,
			ActualSuspicious:    95,
			Iterations:          9,
		},
		Coef:      []float64{0.5, -0.25, 0.125, 1.5},
		Intercept: -3.75,
		CreatedAt: createdAt,
	}
}

func TestNewConnection_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pod.db")
	db, err := NewConnection(&config.Config{DB: config.DBConfig{DBPath: path}})
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)
}

func TestNewConnection_InMemory(t *testing.T) {
	db, err := NewConnection(&config.Config{DB: config.DBConfig{DBPath: ":memory:"}})
	require.NoError(t, err)
	defer db.Close()

	var count int
	err = db.DB.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('datasets', 'training_runs')`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSQLiteStorage_InitSchemaIdempotent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	assert.NoError(t, db.initSchema())
}

func TestRepository_TrainingRuns(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewRepository(db)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveTrainingRun(testRun("run_1", "Bank_A", base)))
	require.NoError(t, repo.SaveTrainingRun(testRun("run_2", "Bank_B", base.Add(time.Minute))))
	require.NoError(t, repo.SaveTrainingRun(testRun("run_3", "Bank_A", base.Add(2*time.Minute))))

	run, err := repo.GetTrainingRun("run_1")
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, "Bank_A", run.BankName)
	assert.Equal(t, []float64{0.5, -0.25, 0.125, 1.5}, run.Coef)
	assert.Equal(t, -3.75, run.Intercept)
	assert.Equal(t, 3000, run.Summary.Records)
	assert.InDelta(t, 0.971, run.Summary.Accuracy, 1e-12)
	assert.Equal(t, 12, run.Summary.PredictedSuspicious)
	assert.Equal(t, 95, run.Summary.ActualSuspicious)
	assert.True(t, base.Equal(run.CreatedAt))

	latest, err := repo.GetLatestTrainingRun("Bank_A")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "run_3", latest.RunID)

	runs, err := repo.GetAllTrainingRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run_3", runs[0].RunID)
	assert.Equal(t, "run_2", runs[1].RunID)
}

func TestRepository_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewRepository(db)

	run, err := repo.GetTrainingRun("missing")
	assert.NoError(t, err)
	assert.Nil(t, run)

	latest, err := repo.GetLatestTrainingRun("Bank_Z")
	assert.NoError(t, err)
	assert.Nil(t, latest)

	runs, err := repo.GetAllTrainingRuns(10)
	assert.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRepository_DuplicateRunID(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewRepository(db)

	run := testRun("run_dup", "Bank_A", time.Now().UTC())
	require.NoError(t, repo.SaveTrainingRun(run))
	assert.Error(t, repo.SaveTrainingRun(run))
}

func TestRepository_Datasets(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewRepository(db)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, bank := range []string{"Bank_A", "Bank_B"} {
		err := repo.SaveDataset(&models.DatasetInfo{
			DatasetID:       "ds_" + bank,
			BankName:        bank,
			Seed:            uint64(42 + i),
			Records:         3000,
			SuspiciousCount: 90 + i,
			RiskyCount:      88,
			SuspiciousRate:  0.03,
			Path:            "./data/" + bank + "/transactions.csv",
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	datasets, err := repo.GetAllDatasets(10)
	require.NoError(t, err)
	require.Len(t, datasets, 2)
	assert.Equal(t, "ds_Bank_B", datasets[0].DatasetID)
	assert.Equal(t, uint64(43), datasets[0].Seed)
	assert.Equal(t, 91, datasets[0].SuspiciousCount)
	assert.Equal(t, "ds_Bank_A", datasets[1].DatasetID)
}

func TestRepository_ClearAll(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewRepository(db)

	require.NoError(t, repo.SaveTrainingRun(testRun("run_1", "Bank_A", time.Now().UTC())))
	require.NoError(t, repo.SaveDataset(&models.DatasetInfo{DatasetID: "ds_1", BankName: "Bank_A", Path: "x"}))

	require.NoError(t, repo.ClearAll())

	runs, err := repo.GetAllTrainingRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
	datasets, err := repo.GetAllDatasets(10)
	require.NoError(t, err)
	assert.Empty(t, datasets)
}
