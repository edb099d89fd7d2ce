package migrate

import (
	"context"
	"database/sql"

	"area-accuracy/internal/logger"
)

// 文档注释：创建评估结果表与索引
// 约束：使用 IF NOT EXISTS，重复执行无副作用；仅创建最小必需结构。
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS _area_accuracy_runs (
            run_id TEXT PRIMARY KEY,
            strategy TEXT NOT NULL,
            node_count INT NOT NULL,
            params TEXT[] NOT NULL,
            max_prefix INT NOT NULL,
            ref_digest TEXT NOT NULL,
            test_digest TEXT NOT NULL,
            node_total INT NOT NULL,
            weighted_index DOUBLE PRECISION NOT NULL,
            max_index DOUBLE PRECISION NOT NULL,
            percentage DOUBLE PRECISION NOT NULL,
            avg_depth DOUBLE PRECISION NOT NULL,
            histogram INT[] NOT NULL,
            unresolved INT NOT NULL DEFAULT 0,
            active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_area_runs_job ON _area_accuracy_runs(strategy, node_count, params, created_at DESC)`,
	}
	for i, s := range stmts {
		logger.L().Debug("schema_exec", "idx", i)
		if _, err := db.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	logger.L().Debug("schema_done")
	return nil
}
