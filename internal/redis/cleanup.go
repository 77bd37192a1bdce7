package redis

import (
	"context"
	"fmt"
)

// ClearModelData удаляет закешированные веса и счетчики всех банков
func (c *Client) ClearModelData() error {
	ctx := context.Background()

	iter := c.rdb.Scan(ctx, 0, "model:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan model keys: %w", err)
	}

	return nil
}
