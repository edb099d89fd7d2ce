// 包 pipeline：单个评估任务的编排（构建 → 加载 → 评估 → 输出）
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"area-accuracy/internal/accuracy"
	"area-accuracy/internal/area"
	"area-accuracy/internal/builder"
	"area-accuracy/internal/dataset"
	"area-accuracy/internal/jobs"
	"area-accuracy/internal/logger"
	"area-accuracy/internal/metrics"
	"area-accuracy/internal/report"
	"area-accuracy/internal/store"

	"github.com/google/uuid"
)

// Deps：任务执行依赖；Store 与 Summary 为 nil 时跳过对应输出
type Deps struct {
	Weights   accuracy.WeightTable
	Workers   int
	Builder   builder.Builder
	Store     *store.Store
	Summary   *store.SummaryCache
	Stdout    io.Writer
	StatsFile string
}

// Outcome：任务结果
type Outcome struct {
	RunID  string
	Result *accuracy.Result
}

// 文档注释：执行单个评估任务
// 约束：构建、加载、评估、CSV 写入失败时返回错误；数据库与 Redis 输出失败只记录日志，不影响任务结果。
func Run(ctx context.Context, j jobs.Job, d Deps) (*Outcome, error) {
	start := time.Now()
	l := logger.L().With("job", j.Name())
	lay := j.Layout
	l.Info("job_begin", "reference", lay.ReferenceCoordsPath(), "test", lay.TestCoordsPath())

	if d.Builder.Enabled() {
		for _, p := range []string{lay.ReferenceCoordsPath(), lay.TestCoordsPath()} {
			if err := d.Builder.Build(ctx, p, j.MaxPrefix); err != nil {
				return nil, err
			}
		}
		l.Info("areas_built")
	}

	coords, err := dataset.LoadCoords(lay.ReferenceCoordsPath())
	if err != nil {
		return nil, err
	}
	refDoc, err := dataset.LoadAreas(lay.ReferenceAreaPath())
	if err != nil {
		return nil, err
	}
	testDoc, err := dataset.LoadAreas(lay.TestAreaPath())
	if err != nil {
		return nil, err
	}
	ref, err := area.LoadPartition("reference", refDoc.Entries)
	if err != nil {
		return nil, err
	}
	test, err := area.LoadPartition("test", testDoc.Entries)
	if err != nil {
		return nil, err
	}
	l.Debug("partitions_loaded", "points", len(coords.Points), "reference_areas", ref.Len(), "test_areas", test.Len())

	res, err := accuracy.NewScorer(d.Weights, ref, test, coords.Points, accuracy.WithWorkers(d.Workers)).Evaluate()
	if err != nil {
		return nil, err
	}
	runID := uuid.NewString()

	if d.Stdout != nil {
		report.PrintStats(d.Stdout, lay.NodeCount, res)
	}
	if d.StatsFile != "" {
		if err := report.AppendCSV(d.StatsFile, report.Row(j, res)); err != nil {
			return nil, fmt.Errorf("stats csv %s: %w", d.StatsFile, err)
		}
	}
	metrics.ObserveResult(lay.Strategy, lay.NodeCount, j.ParamKey(), res)

	if d.Store != nil {
		err := d.Store.SaveRun(ctx, store.Run{
			ID:         runID,
			Strategy:   lay.Strategy,
			NodeCount:  lay.NodeCount,
			Params:     lay.Params,
			MaxPrefix:  j.MaxPrefix,
			RefDigest:  refDoc.Digest,
			TestDigest: testDoc.Digest,
			Result:     res,
		})
		if err != nil {
			l.Error("run_save_error", "err", err)
		}
	}
	if d.Summary != nil {
		key := store.SummaryKey(lay.Strategy, lay.NodeCount, j.ParamKey())
		if err := d.Summary.Publish(ctx, key, runID, res); err != nil {
			l.Error("summary_publish_error", "key", key, "err", err)
		}
	}

	dur := time.Since(start)
	metrics.EvalDurationMs.Observe(float64(dur.Milliseconds()))
	l.Info("job_done",
		"run_id", runID,
		"points", res.NodeCount,
		"percentage", res.Percentage,
		"avg_depth", res.AverageDepth,
		"unresolved", len(res.Warnings),
		"duration_ms", dur.Milliseconds(),
	)
	return &Outcome{RunID: runID, Result: res}, nil
}
