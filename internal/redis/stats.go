package redis

import (
	"context"
	"fmt"

	redisv9 "github.com/redis/go-redis/v9"
)

func trainingCountKey(bankName string) string {
	return fmt.Sprintf("model:%s:training_count", bankName)
}

// IncrementTrainingStats увеличивает счетчик обучений банка
func (c *Client) IncrementTrainingStats(bankName string) error {
	ctx := context.Background()
	return c.rdb.Incr(ctx, trainingCountKey(bankName)).Err()
}

// GetTrainingCount получает количество обучений банка
func (c *Client) GetTrainingCount(bankName string) (int64, error) {
	ctx := context.Background()
	count, err := c.rdb.Get(ctx, trainingCountKey(bankName)).Int64()
	if err == redisv9.Nil {
		return 0, nil
	}
	return count, err
}
