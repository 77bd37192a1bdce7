package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"bank-aml-pod/internal/config"
	"bank-aml-pod/internal/features"
	"bank-aml-pod/internal/generator"
	"bank-aml-pod/internal/kafka"
	"bank-aml-pod/internal/logger"
	"bank-aml-pod/internal/model"
	"bank-aml-pod/internal/models"
	"bank-aml-pod/internal/redis"
	"bank-aml-pod/internal/storage"

	"github.com/google/uuid"
)

const serviceName = "model-service"

var (
	ErrDatasetNotFound = errors.New("dataset not found")
	ErrInvalidDataPath = errors.New("data path must be inside data directory")
)

// PodServiceImpl реализует интерфейс PodService.
// Kafka продюсер и Redis клиент опциональны.
type PodServiceImpl struct {
	cfg         *config.Config
	repo        storage.TrainingRepository
	producer    kafka.Producer
	redisClient redis.ClientInterface

	mu    sync.Mutex
	model *model.AMLModel
	now   func() time.Time
}

// NewPodService создает сервис пода. Если артефакт модели уже есть на диске, модель восстанавливается из него
func NewPodService(cfg *config.Config, repo storage.TrainingRepository, producer kafka.Producer, redisClient redis.ClientInterface) PodService {
	s := &PodServiceImpl{
		cfg:         cfg,
		repo:        repo,
		producer:    producer,
		redisClient: redisClient,
		now:         time.Now,
	}
	s.restoreModel()
	return s
}

func (s *PodServiceImpl) restoreModel() {
	path := s.cfg.Model.ArtifactPath
	if _, err := os.Stat(path); err != nil {
		return
	}

	m, err := model.LoadModel(path)
	if err != nil {
		log.Printf("Warning: failed to load model artifact %s: %v", path, err)
		return
	}
	if m.BankName() != s.cfg.Model.BankName {
		log.Printf("Warning: artifact %s belongs to %s, expected %s", path, m.BankName(), s.cfg.Model.BankName)
		return
	}

	s.model = m
	log.Printf("Model of %s restored from %s", m.BankName(), path)
}

// GenerateDataset генерирует набор данных в <DATA_DIR>/<bank>_pod/transactions.csv
func (s *PodServiceImpl) GenerateDataset(ctx context.Context, req *models.DatasetRequest) (*models.DatasetInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := req.Records
	if records == 0 {
		records = s.cfg.Generator.Records
	}
	seed := req.Seed
	if seed == 0 {
		seed = s.defaultSeed(req.BankName)
	}

	gen, err := generator.NewTransactionGenerator(generator.Options{
		Records:  records,
		Seed:     seed,
		BankName: req.BankName,
		Now:      s.now(),
	})
	if err != nil {
		return nil, err
	}

	// Запись файла банка и обучение сериализованы одним мьютексом
	s.mu.Lock()
	_, stats, err := gen.GenerateToDir(s.cfg.Data.Dir)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	info := &models.DatasetInfo{
		DatasetID:       "ds_" + uuid.New().String(),
		BankName:        req.BankName,
		Seed:            seed,
		Records:         stats.Records,
		SuspiciousCount: stats.SuspiciousCount,
		RiskyCount:      stats.RiskyCount,
		SuspiciousRate:  stats.SuspiciousRate(),
		Path:            stats.Path,
		CreatedAt:       s.now().UTC(),
	}

	logger.LogEvent(logger.EventDatasetGenerated, serviceName, "generator", map[string]interface{}{
		"dataset_id":      info.DatasetID,
		"bank_name":       info.BankName,
		"records":         info.Records,
		"suspicious_rate": info.SuspiciousRate,
	})

	if err := s.repo.SaveDataset(info); err != nil {
		return nil, fmt.Errorf("failed to save dataset info: %w", err)
	}
	logger.LogEvent(logger.EventDBUpdated, serviceName, "sqlite", map[string]interface{}{
		"dataset_id": info.DatasetID,
	})

	return info, nil
}

func (s *PodServiceImpl) defaultSeed(bankName string) uint64 {
	for _, bank := range s.cfg.Generator.Banks {
		if bank.Name == bankName {
			return bank.Seed
		}
	}
	return s.cfg.Model.Seed
}

// TrainModel обучает модель на файле банка, сохраняет запуск в БД,
// кеширует веса в Redis и публикует их в Kafka
func (s *PodServiceImpl) TrainModel(ctx context.Context, req *models.TrainRequest) (*models.TrainingRun, error) {
	dataPath := s.cfg.Model.DataPath
	if req != nil && req.DataPath != "" {
		resolved, err := s.resolveDataPath(req.DataPath)
		if err != nil {
			return nil, err
		}
		dataPath = resolved
	}

	if _, err := os.Stat(dataPath); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, dataPath)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bankName := s.cfg.Model.BankName
	logger.LogEvent(logger.EventTrainingStarted, serviceName, "model", map[string]interface{}{
		"bank_name": bankName,
		"data_path": dataPath,
	})

	m := model.NewAMLModel(model.Options{
		BankName:     bankName,
		ArtifactPath: s.cfg.Model.ArtifactPath,
		Seed:         s.cfg.Model.Seed,
		MaxIter:      s.cfg.Model.MaxIter,
		Alpha:        s.cfg.Model.Alpha,
		Tol:          s.cfg.Model.Tol,
	})
	summary, err := m.Train(dataPath)
	if err != nil {
		return nil, err
	}
	s.model = m

	logger.LogEvent(logger.EventModelSaved, serviceName, "model", map[string]interface{}{
		"artifact_path": summary.ArtifactPath,
	})

	weights, err := m.Weights()
	if err != nil {
		return nil, err
	}

	run := &models.TrainingRun{
		RunID:     "run_" + uuid.New().String(),
		BankName:  bankName,
		Summary:   *summary,
		Coef:      weights.Coef[0],
		Intercept: weights.Intercept[0],
		CreatedAt: s.now().UTC(),
	}

	logger.LogEvent(logger.EventTrainingCompleted, serviceName, "model", map[string]interface{}{
		"run_id":               run.RunID,
		"accuracy":             summary.Accuracy,
		"predicted_suspicious": summary.PredictedSuspicious,
		"actual_suspicious":    summary.ActualSuspicious,
	})

	if err := s.repo.SaveTrainingRun(run); err != nil {
		return nil, fmt.Errorf("failed to save training run: %w", err)
	}
	logger.LogEvent(logger.EventDBUpdated, serviceName, "sqlite", map[string]interface{}{
		"run_id": run.RunID,
	})

	s.cacheWeights(weights)
	s.publishWeights(run, weights.FeatureNames)

	return run, nil
}

// resolveDataPath разрешает путь из запроса относительно DATA_DIR и не выпускает его за пределы директории
func (s *PodServiceImpl) resolveDataPath(path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.cfg.Data.Dir, path)
	}
	if !generator.WithinDir(s.cfg.Data.Dir, path) {
		return "", fmt.Errorf("%w: %s", ErrInvalidDataPath, path)
	}
	return filepath.Clean(path), nil
}

// cacheWeights сохраняет веса в Redis; ошибки не прерывают обучение
func (s *PodServiceImpl) cacheWeights(weights *models.Weights) {
	if s.redisClient == nil {
		return
	}

	if err := s.redisClient.SaveWeights(weights.BankName, weights); err != nil {
		log.Printf("Warning: failed to cache weights in Redis: %v", err)
		return
	}
	if err := s.redisClient.IncrementTrainingStats(weights.BankName); err != nil {
		log.Printf("Warning: failed to increment training stats: %v", err)
	}
	count, err := s.redisClient.GetTrainingCount(weights.BankName)
	if err != nil {
		log.Printf("Warning: failed to read training stats: %v", err)
	}

	logger.LogEvent(logger.EventWeightsCached, serviceName, "redis", map[string]interface{}{
		"bank_name":      weights.BankName,
		"training_count": count,
	})
}

// publishWeights отправляет веса в Kafka; ошибки не прерывают обучение
func (s *PodServiceImpl) publishWeights(run *models.TrainingRun, featureNames []string) {
	if s.producer == nil {
		return
	}

	event := &models.WeightsEvent{
		EventID:   "evt_" + uuid.New().String(),
		EventType: kafka.EventWeightsReady,
		Timestamp: s.now(),
		Data: models.WeightsEventData{
			RunID:        run.RunID,
			BankName:     run.BankName,
			FeatureNames: featureNames,
			Coef:         run.Coef,
			Intercept:    run.Intercept,
			Records:      run.Summary.Records,
			Accuracy:     run.Summary.Accuracy,
		},
	}

	if err := s.producer.SendWeightsEvent(event); err != nil {
		log.Printf("Warning: failed to publish weights to Kafka: %v", err)
		return
	}

	logger.LogEvent(logger.EventWeightsPublished, serviceName, "kafka", map[string]interface{}{
		"event_id": event.EventID,
		"run_id":   run.RunID,
	})
}

// GetWeights возвращает веса живой модели, а если она не обучена -
// веса из Redis или последнего запуска в БД
func (s *PodServiceImpl) GetWeights(ctx context.Context) (*models.Weights, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	current := s.model
	s.mu.Unlock()

	bankName := s.cfg.Model.BankName
	if current != nil && current.IsTrained() {
		weights, err := current.Weights()
		if err != nil {
			return nil, err
		}
		logger.LogEvent(logger.EventWeightsExported, serviceName, "model", map[string]interface{}{
			"bank_name": bankName,
			"source":    "model",
		})
		return weights, nil
	}

	if s.redisClient != nil {
		cached, err := s.redisClient.GetWeights(bankName)
		if err != nil {
			log.Printf("Warning: failed to read cached weights: %v", err)
		} else if cached != nil {
			logger.LogEvent(logger.EventWeightsExported, serviceName, "redis", map[string]interface{}{
				"bank_name": bankName,
				"source":    "redis",
			})
			return cached, nil
		}
	}

	run, err := s.repo.GetLatestTrainingRun(bankName)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, model.ErrModelNotTrained
	}

	logger.LogEvent(logger.EventWeightsExported, serviceName, "sqlite", map[string]interface{}{
		"bank_name": bankName,
		"source":    "sqlite",
		"run_id":    run.RunID,
	})
	return &models.Weights{
		Coef:         [][]float64{run.Coef},
		Intercept:    []float64{run.Intercept},
		FeatureNames: append([]string(nil), features.Names...),
		BankName:     run.BankName,
	}, nil
}

// GetTrainingRuns возвращает историю обучений
func (s *PodServiceImpl) GetTrainingRuns(limit int) ([]*models.TrainingRun, error) {
	return s.repo.GetAllTrainingRuns(limit)
}

// GetTrainingRun возвращает обучение по run_id
func (s *PodServiceImpl) GetTrainingRun(runID string) (*models.TrainingRun, error) {
	return s.repo.GetTrainingRun(runID)
}

// GetDatasets возвращает историю генерации
func (s *PodServiceImpl) GetDatasets(limit int) ([]*models.DatasetInfo, error) {
	return s.repo.GetAllDatasets(limit)
}

// ClearHistory удаляет историю из БД и кеш весов. Живая модель и артефакт на диске сохраняются
func (s *PodServiceImpl) ClearHistory() error {
	if err := s.repo.ClearAll(); err != nil {
		return err
	}
	if s.redisClient != nil {
		if err := s.redisClient.ClearModelData(); err != nil {
			log.Printf("Warning: failed to clear Redis model data: %v", err)
		}
	}

	logger.LogEvent(logger.EventDBUpdated, serviceName, "sqlite", map[string]interface{}{
		"action": "history_cleared",
	})
	return nil
}
