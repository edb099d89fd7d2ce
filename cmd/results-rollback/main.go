package main

import (
	"context"
	"os"

	"area-accuracy/internal/config"
	"area-accuracy/internal/logger"
	"area-accuracy/internal/migrate"
	"area-accuracy/internal/store"
	"area-accuracy/internal/utils"

	"github.com/joho/godotenv"
)

// 文档注释：评估记录保留窗口
// 背景：按 (strategy, node_count, params) 分组，保留最近 RESULTS_KEEP_N 条记录为 active，其余置为 inactive。
// 约束：RESULTS_STRATEGY 为空时作用于全部策略；仅作用于 _area_accuracy_runs。
func main() {
	_ = godotenv.Load(".env")
	l := logger.Setup()
	cfg := config.Load()
	strategy := os.Getenv("RESULTS_STRATEGY")

	db, err := utils.OpenPostgresFromEnv()
	if err != nil {
		l.Error("db_open_error", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	ctx := context.Background()
	if err := migrate.EnsureSchema(ctx, db); err != nil {
		l.Error("schema_error", "err", err)
		os.Exit(1)
	}
	n, err := store.AttachDB(db).RetainLatest(ctx, strategy, cfg.KeepRuns)
	if err != nil {
		l.Error("results_rollback_error", "err", err)
		os.Exit(1)
	}
	l.Info("results_rollback_done", "strategy", strategy, "keep", cfg.KeepRuns, "changed", n)
}
