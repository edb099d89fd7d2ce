// 包 store：评估结果的持久化（PostgreSQL）与最新汇总发布（Redis）
package store

import (
	"context"
	"database/sql"
	"fmt"

	"area-accuracy/internal/accuracy"
	"area-accuracy/internal/logger"

	"github.com/lib/pq"
)

// Store：数据库访问入口，持有连接池
type Store struct {
	db *sql.DB
}

func AttachDB(db *sql.DB) *Store { return &Store{db: db} }

// Close：关闭数据库连接
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) DB() *sql.DB { return s.db }

// Run：一次评估任务的持久化记录
type Run struct {
	ID         string
	Strategy   string
	NodeCount  int
	Params     []string
	MaxPrefix  int
	RefDigest  uint64
	TestDigest uint64
	Result     *accuracy.Result
}

// SaveRun：写入一条评估记录
func (s *Store) SaveRun(ctx context.Context, r Run) error {
	res := r.Result
	params := r.Params
	if params == nil {
		params = []string{}
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO _area_accuracy_runs(
            run_id, strategy, node_count, params, max_prefix, ref_digest, test_digest,
            node_total, weighted_index, max_index, percentage, avg_depth, histogram, unresolved)
        VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		r.ID, r.Strategy, r.NodeCount, pq.Array(params), r.MaxPrefix,
		digestHex(r.RefDigest), digestHex(r.TestDigest),
		res.NodeCount, res.WeightedIndex, res.MaxPossibleIndex, res.Percentage, res.AverageDepth,
		pq.Array(toInt64s(res.Counts())), len(res.Warnings),
	)
	if err != nil {
		return err
	}
	logger.L().Debug("run_saved", "run_id", r.ID, "strategy", r.Strategy, "node_count", r.NodeCount)
	return nil
}

// 文档注释：保留窗口
// 约束：按 (strategy, node_count, params) 分组，最新 keep 条记录为 active，其余置为 inactive；strategy 为空时作用于全部分组。
func (s *Store) RetainLatest(ctx context.Context, strategy string, keep int) (int64, error) {
	q := `WITH ranked AS (
            SELECT run_id, ROW_NUMBER() OVER(PARTITION BY strategy, node_count, params ORDER BY created_at DESC) AS rn
            FROM _area_accuracy_runs
            WHERE $1 = '' OR strategy = $1
          )
          UPDATE _area_accuracy_runs r
          SET active = (ranked.rn <= $2)
          FROM ranked
          WHERE r.run_id = ranked.run_id AND r.active <> (ranked.rn <= $2)`
	res, err := s.db.ExecContext(ctx, q, strategy, keep)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func digestHex(d uint64) string { return fmt.Sprintf("%016x", d) }

func toInt64s(in []int) []int64 {
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}
