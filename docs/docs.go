// Package docs содержит описание REST API для swagger, зарегистрированное через swag
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/datasets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["datasets"],
                "summary": "Получить список наборов данных",
                "parameters": [
                    {"type": "integer", "default": 100, "description": "Лимит результатов (максимум 500)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Список наборов данных", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "description": "Генерирует размеченные синтетические транзакции банка и записывает их в <DATA_DIR>/<bank>_pod/transactions.csv. Если seed не указан, используется seed банка из конфигурации.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["datasets"],
                "summary": "Сгенерировать набор транзакций",
                "parameters": [
                    {"description": "Параметры генерации", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.DatasetRequest"}}
                ],
                "responses": {
                    "201": {"description": "Набор данных создан", "schema": {"$ref": "#/definitions/models.DatasetInfo"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/model/runs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["model"],
                "summary": "Получить историю обучений",
                "parameters": [
                    {"type": "integer", "default": 100, "description": "Лимит результатов (максимум 500)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Список обучений", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "description": "Удаляет наборы данных и обучения из БД и веса из Redis. Обученная модель и файлы на диске сохраняются.",
                "produces": ["application/json"],
                "tags": ["model"],
                "summary": "Очистить историю",
                "responses": {
                    "200": {"description": "История очищена", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/model/runs/{run_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["model"],
                "summary": "Получить обучение",
                "parameters": [
                    {"type": "string", "description": "ID обучения", "name": "run_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Обучение", "schema": {"$ref": "#/definitions/models.TrainingRun"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/model/train": {
            "post": {
                "description": "Обучает логистическую регрессию на файле банка, сохраняет артефакт модели и публикует веса. Без data_path используется MODEL_DATA_PATH; относительный data_path разрешается от DATA_DIR и не может выходить за его пределы.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["model"],
                "summary": "Обучить локальную модель",
                "parameters": [
                    {"description": "Путь к данным", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/models.TrainRequest"}}
                ],
                "responses": {
                    "201": {"description": "Результат обучения", "schema": {"$ref": "#/definitions/models.TrainingRun"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Dataset Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/model/weights": {
            "get": {
                "description": "Возвращает coef формы [1][4] и intercept длины 1 для будущей агрегации",
                "produces": ["application/json"],
                "tags": ["model"],
                "summary": "Получить веса модели",
                "responses": {
                    "200": {"description": "Веса модели", "schema": {"$ref": "#/definitions/models.Weights"}},
                    "409": {"description": "Model Not Trained", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "models.DatasetInfo": {
            "type": "object",
            "properties": {
                "bank_name": {"type": "string"},
                "created_at": {"type": "string"},
                "dataset_id": {"type": "string"},
                "path": {"type": "string"},
                "records": {"type": "integer"},
                "risky_count": {"type": "integer"},
                "seed": {"type": "integer"},
                "suspicious_count": {"type": "integer"},
                "suspicious_rate": {"type": "number"}
            }
        },
        "models.DatasetRequest": {
            "type": "object",
            "required": ["bank_name"],
            "properties": {
                "bank_name": {"type": "string", "maxLength": 64, "pattern": "^[A-Za-z0-9_-]+$"},
                "records": {"type": "integer", "minimum": 1, "maximum": 1000000},
                "seed": {"type": "integer"}
            }
        },
        "models.TrainRequest": {
            "type": "object",
            "properties": {
                "data_path": {"type": "string"}
            }
        },
        "models.TrainingRun": {
            "type": "object",
            "properties": {
                "bank_name": {"type": "string"},
                "coef": {"type": "array", "items": {"type": "number"}},
                "created_at": {"type": "string"},
                "intercept": {"type": "number"},
                "run_id": {"type": "string"},
                "summary": {"$ref": "#/definitions/models.TrainingSummary"}
            }
        },
        "models.TrainingSummary": {
            "type": "object",
            "properties": {
                "accuracy": {"type": "number"},
                "actual_suspicious": {"type": "integer"},
                "artifact_path": {"type": "string"},
                "data_path": {"type": "string"},
                "iterations": {"type": "integer"},
                "predicted_suspicious": {"type": "integer"},
                "records": {"type": "integer"}
            }
        },
        "models.Weights": {
            "type": "object",
            "properties": {
                "bank_name": {"type": "string"},
                "coef": {"type": "array", "items": {"type": "array", "items": {"type": "number"}}},
                "feature_names": {"type": "array", "items": {"type": "string"}},
                "intercept": {"type": "array", "items": {"type": "number"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8090",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Bank AML Pod API",
	Description:      "Локальный под банка: генерация синтетических транзакций, обучение модели и выдача весов",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
