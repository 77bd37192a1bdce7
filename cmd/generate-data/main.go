package main

import (
	"fmt"
	"log"

	"bank-aml-pod/internal/config"
	"bank-aml-pod/internal/generator"
)

// Генерирует транзакции для каждого банка из GENERATOR_BANKS в DATA_DIR
func main() {
	cfg := config.Load()

	fmt.Println("=== Generating Synthetic Banking Data ===")
	for _, bank := range cfg.Generator.Banks {
		gen, err := generator.NewTransactionGenerator(generator.Options{
			Records:  cfg.Generator.Records,
			Seed:     bank.Seed,
			BankName: bank.Name,
		})
		if err != nil {
			log.Fatalf("Failed to create generator for %s: %v", bank.Name, err)
		}

		_, stats, err := gen.GenerateToDir(cfg.Data.Dir)
		if err != nil {
			log.Fatalf("Failed to generate data for %s: %v", bank.Name, err)
		}

		fmt.Printf("[+] Created %d transactions for %s\n", stats.Records, bank.Name)
		fmt.Printf("    Suspicious rate: %.1f%%\n", stats.SuspiciousRate()*100)
		fmt.Printf("    Saved to: %s\n", stats.Path)
	}
	fmt.Println("\nData generation complete! Ready for model training.")
}
