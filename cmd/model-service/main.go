package main

import "bank-aml-pod/internal/bootstrap/modelservice"

// @title Bank AML Pod API
// @version 1.0
// @description Локальный под банка: генерация синтетических транзакций, обучение модели и выдача весов
// @host localhost:8090
// @BasePath /api/v1
func main() { modelservice.StartModelService() }
