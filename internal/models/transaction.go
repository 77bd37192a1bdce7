package models

import (
	"time"
)

// Transaction представляет синтетическую банковскую транзакцию с эталонной меткой
type Transaction struct {
	TransactionID  string    `json:"transaction_id"`
	Timestamp      time.Time `json:"timestamp"`
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	IsForeign      bool      `json:"is_foreign"`
	SuspiciousFlag bool      `json:"suspicious_flag"`
}

// DatasetRequest представляет запрос на генерацию набора данных
type DatasetRequest struct {
	BankName string `json:"bank_name" binding:"required,max=64"`
	Seed     uint64 `json:"seed"`
	Records  int    `json:"records" binding:"omitempty,gt=0,lte=1000000"`
}

// DatasetInfo описывает сгенерированный файл транзакций
type DatasetInfo struct {
	DatasetID       string    `json:"dataset_id" db:"dataset_id"`
	BankName        string    `json:"bank_name" db:"bank_name"`
	Seed            uint64    `json:"seed" db:"seed"`
	Records         int       `json:"records" db:"records"`
	SuspiciousCount int       `json:"suspicious_count" db:"suspicious_count"`
	RiskyCount      int       `json:"risky_count" db:"risky_count"`
	SuspiciousRate  float64   `json:"suspicious_rate" db:"suspicious_rate"`
	Path            string    `json:"path" db:"path"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
