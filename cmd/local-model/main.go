package main

import (
	"fmt"
	"log"

	"bank-aml-pod/internal/config"
	"bank-aml-pod/internal/model"
)

// Обучает локальную модель на MODEL_DATA_PATH и печатает веса, готовые к обмену
func main() {
	cfg := config.Load()

	m := model.NewAMLModel(model.Options{
		BankName:     cfg.Model.BankName,
		ArtifactPath: cfg.Model.ArtifactPath,
		Seed:         cfg.Model.Seed,
		MaxIter:      cfg.Model.MaxIter,
		Alpha:        cfg.Model.Alpha,
		Tol:          cfg.Model.Tol,
	})

	summary, err := m.Train(cfg.Model.DataPath)
	if err != nil {
		log.Fatalf("Failed to train model: %v", err)
	}

	fmt.Println("[AML Model] Training complete!")
	fmt.Printf("    Accuracy: %.3f\n", summary.Accuracy)
	fmt.Printf("    Suspicious transactions detected: %d / %d\n", summary.PredictedSuspicious, summary.ActualSuspicious)
	fmt.Printf("[AML Model] Model saved as '%s'\n", summary.ArtifactPath)

	weights, err := m.Weights()
	if err != nil {
		log.Fatalf("Failed to export weights: %v", err)
	}

	fmt.Println("\n[Model Weights Ready for Sharing]")
	fmt.Printf("Coefficients shape: %d\n", len(weights.Coef[0]))
	fmt.Printf("Intercept: %v\n", weights.Intercept)
}
