package sqlite

// ClearAll удаляет историю генерации и обучения
func (s *SQLiteStorage) ClearAll() error {
	return retryOperation(func() error {
		_, err := s.DB.Exec(`DELETE FROM training_runs; DELETE FROM datasets;`)
		return err
	}, defaultRetries, defaultRetryDelay)
}
