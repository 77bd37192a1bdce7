package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bank-aml-pod/internal/models"

	redisv9 "github.com/redis/go-redis/v9"
)

// WeightsTTL - время жизни закешированных весов
const WeightsTTL = time.Hour

func weightsKey(bankName string) string {
	return fmt.Sprintf("model:%s:weights", bankName)
}

// SaveWeights сохраняет веса модели банка в Redis с TTL 1 час
func (c *Client) SaveWeights(bankName string, weights *models.Weights) error {
	ctx := context.Background()

	data, err := json.Marshal(weights)
	if err != nil {
		return fmt.Errorf("failed to marshal weights: %w", err)
	}

	return c.rdb.Set(ctx, weightsKey(bankName), data, WeightsTTL).Err()
}

// GetWeights получает веса модели банка; nil, если в кеше ничего нет
func (c *Client) GetWeights(bankName string) (*models.Weights, error) {
	ctx := context.Background()

	data, err := c.rdb.Get(ctx, weightsKey(bankName)).Result()
	if err == redisv9.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get weights: %w", err)
	}

	var weights models.Weights
	if err := json.Unmarshal([]byte(data), &weights); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weights: %w", err)
	}

	return &weights, nil
}
