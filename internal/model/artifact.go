package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SchemaVersion - версия формата файла модели
const SchemaVersion = 1

var ErrUnsupportedSchema = errors.New("unsupported model artifact schema")

// Artifact - сериализованное состояние модели: классификатор и скейлер вместе
type Artifact struct {
	SchemaVersion int             `json:"schema_version"`
	BankName      string          `json:"bank_name"`
	FeatureNames  []string        `json:"feature_names"`
	Classifier    ClassifierState `json:"classifier"`
	Scaler        ScalerState     `json:"scaler"`
	TrainedAt     time.Time       `json:"trained_at"`
}

type ClassifierState struct {
	Loss      string      `json:"loss"`
	Penalty   string      `json:"penalty"`
	Alpha     float64     `json:"alpha"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
	Classes   []int       `json:"classes"`
	NIter     int         `json:"n_iter"`
}

type ScalerState struct {
	Mean     []float64 `json:"mean"`
	Scale    []float64 `json:"scale"`
	Var      []float64 `json:"var"`
	NSamples int       `json:"n_samples"`
}

// SaveArtifact записывает артефакт в JSON, перезаписывая существующий файл
func SaveArtifact(path string, artifact *Artifact) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create artifact directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	return nil
}

// LoadArtifact читает артефакт и проверяет версию и размерности
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to unmarshal artifact: %w", err)
	}

	if artifact.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("%w: version %d", ErrUnsupportedSchema, artifact.SchemaVersion)
	}
	if err := artifact.validate(); err != nil {
		return nil, err
	}

	return &artifact, nil
}

func (a *Artifact) validate() error {
	d := len(a.FeatureNames)
	if len(a.Classifier.Coef) != 1 || len(a.Classifier.Coef[0]) != d {
		return fmt.Errorf("artifact coef must have shape [1][%d]", d)
	}
	if len(a.Classifier.Intercept) != 1 {
		return fmt.Errorf("artifact intercept must have length 1, got %d", len(a.Classifier.Intercept))
	}
	if len(a.Scaler.Mean) != d || len(a.Scaler.Scale) != d {
		return fmt.Errorf("artifact scaler must have %d features", d)
	}
	return nil
}
