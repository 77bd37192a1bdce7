package rest

import (
	"errors"
	"net/http"
	"strconv"

	"bank-aml-pod/internal/dataset"
	"bank-aml-pod/internal/generator"
	"bank-aml-pod/internal/model"
	"bank-aml-pod/internal/models"
	"bank-aml-pod/internal/services"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	podService services.PodService
}

// NewHandlers создает обработчики REST API
func NewHandlers(podService services.PodService) *Handlers {
	return &Handlers{podService: podService}
}

// GenerateDataset генерирует набор транзакций банка
// @Summary Сгенерировать набор транзакций
// @Description Генерирует размеченные синтетические транзакции банка и записывает их в <DATA_DIR>/<bank>_pod/transactions.csv. Если seed не указан, используется seed банка из конфигурации.
// @Tags datasets
// @Accept json
// @Produce json
// @Param request body models.DatasetRequest true "Параметры генерации"
// @Success 201 {object} models.DatasetInfo "Набор данных создан"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /datasets [post]
func (h *Handlers) GenerateDataset(c *gin.Context) {
	var req models.DatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := h.podService.GenerateDataset(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err, "Failed to generate dataset")
		return
	}

	c.JSON(http.StatusCreated, info)
}

// GetDatasets возвращает историю генерации
// @Summary Получить список наборов данных
// @Tags datasets
// @Produce json
// @Param limit query int false "Лимит результатов (максимум 500)" default(100)
// @Success 200 {object} map[string]interface{} "Список наборов данных"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /datasets [get]
func (h *Handlers) GetDatasets(c *gin.Context) {
	datasets, err := h.podService.GetDatasets(parseLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get datasets"})
		return
	}

	if datasets == nil {
		datasets = []*models.DatasetInfo{}
	}
	c.JSON(http.StatusOK, gin.H{"datasets": datasets})
}

// TrainModel обучает локальную модель
// @Summary Обучить локальную модель
// @Description Обучает логистическую регрессию на файле банка, сохраняет артефакт модели и публикует веса. Без data_path используется MODEL_DATA_PATH; относительный data_path разрешается от DATA_DIR и не может выходить за его пределы.
// @Tags model
// @Accept json
// @Produce json
// @Param request body models.TrainRequest false "Путь к данным"
// @Success 201 {object} models.TrainingRun "Результат обучения"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Dataset Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /model/train [post]
func (h *Handlers) TrainModel(c *gin.Context) {
	var req models.TrainRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	run, err := h.podService.TrainModel(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err, "Failed to train model")
		return
	}

	c.JSON(http.StatusCreated, run)
}

// GetWeights возвращает веса модели
// @Summary Получить веса модели
// @Description Возвращает coef формы [1][4] и intercept длины 1 для будущей агрегации
// @Tags model
// @Produce json
// @Success 200 {object} models.Weights "Веса модели"
// @Failure 409 {object} map[string]string "Model Not Trained"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /model/weights [get]
func (h *Handlers) GetWeights(c *gin.Context) {
	weights, err := h.podService.GetWeights(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to get weights")
		return
	}

	c.JSON(http.StatusOK, weights)
}

// GetTrainingRuns возвращает историю обучений
// @Summary Получить историю обучений
// @Tags model
// @Produce json
// @Param limit query int false "Лимит результатов (максимум 500)" default(100)
// @Success 200 {object} map[string]interface{} "Список обучений"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /model/runs [get]
func (h *Handlers) GetTrainingRuns(c *gin.Context) {
	runs, err := h.podService.GetTrainingRuns(parseLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get training runs"})
		return
	}

	if runs == nil {
		runs = []*models.TrainingRun{}
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// GetTrainingRun возвращает обучение по run_id
// @Summary Получить обучение
// @Tags model
// @Produce json
// @Param run_id path string true "ID обучения"
// @Success 200 {object} models.TrainingRun "Обучение"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /model/runs/{run_id} [get]
func (h *Handlers) GetTrainingRun(c *gin.Context) {
	run, err := h.podService.GetTrainingRun(c.Param("run_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get training run"})
		return
	}

	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Training run not found"})
		return
	}

	c.JSON(http.StatusOK, run)
}

// ClearHistory очищает историю генерации и обучения
// @Summary Очистить историю
// @Description Удаляет наборы данных и обучения из БД и веса из Redis. Обученная модель и файлы на диске сохраняются.
// @Tags model
// @Produce json
// @Success 200 {object} map[string]interface{} "История очищена"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /model/runs [delete]
func (h *Handlers) ClearHistory(c *gin.Context) {
	if err := h.podService.ClearHistory(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "History cleared successfully"})
}

func parseLimit(c *gin.Context) int {
	limit := 100
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}
	return limit
}

// writeError переводит ошибки сервиса в HTTP статусы
func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrDatasetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, dataset.ErrMissingColumn), errors.Is(err, dataset.ErrEmptyDataset),
		errors.Is(err, generator.ErrInvalidBankName), errors.Is(err, services.ErrInvalidDataPath):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrModelNotTrained):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
