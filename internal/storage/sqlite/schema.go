package sqlite

// initSchema инициализирует схему БД
func (s *SQLiteStorage) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS datasets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		dataset_id TEXT UNIQUE NOT NULL,
		bank_name TEXT NOT NULL,
		seed INTEGER NOT NULL,
		records INTEGER NOT NULL,
		suspicious_count INTEGER NOT NULL,
		risky_count INTEGER NOT NULL,
		suspicious_rate REAL NOT NULL,
		path TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS training_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT UNIQUE NOT NULL,
		bank_name TEXT NOT NULL,
		data_path TEXT NOT NULL,
		artifact_path TEXT NOT NULL,
		records INTEGER NOT NULL,
		accuracy REAL NOT NULL,
		predicted_suspicious INTEGER NOT NULL,
		actual_suspicious INTEGER NOT NULL,
		iterations INTEGER NOT NULL,
		coef TEXT NOT NULL,
		intercept REAL NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_datasets_bank ON datasets(bank_name);
	CREATE INDEX IF NOT EXISTS idx_datasets_created_at ON datasets(created_at);
	CREATE INDEX IF NOT EXISTS idx_runs_bank ON training_runs(bank_name);
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON training_runs(created_at);
	`

	_, err := s.DB.Exec(query)
	return err
}
