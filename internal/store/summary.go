package store

import (
	"context"
	"strconv"
	"time"

	"area-accuracy/internal/accuracy"

	"github.com/redis/go-redis/v9"
)

const summaryKeyPrefix = "areaacc:summary:"

// 文档注释：最新评估汇总发布到 Redis 哈希
// 约束：每个任务一个键，后写覆盖；ttl <= 0 时不设过期。
type SummaryCache struct {
	rc  *redis.Client
	ttl time.Duration
}

func NewSummaryCache(rc *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{rc: rc, ttl: ttl}
}

// SummaryKey：areaacc:summary:<strategy>:<nodecount>:<params>
func SummaryKey(strategy string, nodeCount int, params string) string {
	return summaryKeyPrefix + strategy + ":" + strconv.Itoa(nodeCount) + ":" + params
}

func summaryFields(runID string, r *accuracy.Result, at time.Time) map[string]any {
	return map[string]any{
		"run_id":         runID,
		"node_count":     r.NodeCount,
		"weighted_index": strconv.FormatFloat(r.WeightedIndex, 'f', -1, 64),
		"max_index":      strconv.FormatFloat(r.MaxPossibleIndex, 'f', -1, 64),
		"percentage":     strconv.FormatFloat(r.Percentage, 'f', -1, 64),
		"avg_depth":      strconv.FormatFloat(r.AverageDepth, 'f', -1, 64),
		"max_depth":      r.MaxDepth,
		"unresolved":     len(r.Warnings),
		"updated_at":     at.UTC().Format(time.RFC3339),
	}
}

// Publish：写入汇总哈希并刷新过期时间
func (c *SummaryCache) Publish(ctx context.Context, key, runID string, r *accuracy.Result) error {
	pipe := c.rc.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, summaryFields(runID, r, time.Now()))
	if c.ttl > 0 {
		pipe.Expire(ctx, key, c.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}
