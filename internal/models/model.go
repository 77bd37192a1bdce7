package models

import (
	"time"
)

// Weights - коэффициенты классификатора в форме, пригодной для JSON
// Coef имеет форму [1][n_features], как у бинарного линейного классификатора
type Weights struct {
	Coef         [][]float64 `json:"coef"`
	Intercept    []float64   `json:"intercept"`
	FeatureNames []string    `json:"feature_names,omitempty"`
	BankName     string      `json:"bank_name,omitempty"`
}

// TrainingSummary - результат одного обучения на локальных данных
type TrainingSummary struct {
	DataPath            string  `json:"data_path"`
	ArtifactPath        string  `json:"artifact_path"`
	Records             int     `json:"records"`
	Accuracy            float64 `json:"accuracy"`
	PredictedSuspicious int     `json:"predicted_suspicious"`
	ActualSuspicious    int     `json:"actual_suspicious"`
	Iterations          int     `json:"iterations"`
}

// TrainRequest представляет запрос на обучение модели. DataPath должен лежать внутри DATA_DIR
type TrainRequest struct {
	DataPath string `json:"data_path"`
}

// TrainingRun - запись об обучении в БД
type TrainingRun struct {
	RunID     string          `json:"run_id" db:"run_id"`
	BankName  string          `json:"bank_name" db:"bank_name"`
	Summary   TrainingSummary `json:"summary"`
	Coef      []float64       `json:"coef" db:"coef"`
	Intercept float64         `json:"intercept" db:"intercept"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// WeightsEvent представляет событие готовности весов в Kafka
type WeightsEvent struct {
	EventID   string           `json:"event_id"`
	EventType string           `json:"event_type"`
	Timestamp time.Time        `json:"timestamp"`
	Data      WeightsEventData `json:"data"`
}

// WeightsEventData представляет данные весов в Kafka
type WeightsEventData struct {
	RunID        string    `json:"run_id"`
	BankName     string    `json:"bank_name"`
	FeatureNames []string  `json:"feature_names"`
	Coef         []float64 `json:"coef"`
	Intercept    float64   `json:"intercept"`
	Records      int       `json:"records"`
	Accuracy     float64   `json:"accuracy"`
}
