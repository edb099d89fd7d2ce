package metrics

import (
	"strconv"

	"area-accuracy/internal/accuracy"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry：独立注册表，批处理结束时整体写出到 textfile
var Registry = prometheus.NewRegistry()

var (
	JobsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "areaacc_jobs_total",
		Help: "Evaluation jobs by outcome",
	}, []string{"status"})
	PointsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "areaacc_points_total",
		Help: "Total number of reference points evaluated",
	})
	UnresolvedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "areaacc_unresolved_points_total",
		Help: "Points that matched no area, by partition",
	}, []string{"partition"})
	MismatchDepth = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "areaacc_mismatch_depth",
		Help:    "Distribution of not-matching suffix lengths",
		Buckets: []float64{0, 1, 2, 3, 4, 6, 8, 11},
	})
	AccuracyPercent = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "areaacc_accuracy_percent",
		Help: "Weighted accuracy index in percent of the maximum",
	}, []string{"strategy", "node_count", "params"})
	AverageDepth = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "areaacc_average_mismatch_depth",
		Help: "Average not-matching suffix length",
	}, []string{"strategy", "node_count", "params"})
	EvalDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "areaacc_eval_duration_ms",
		Help:    "Job duration in milliseconds (load, score, report)",
		Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000, 60000},
	})
)

func init() {
	Registry.MustRegister(JobsTotal)
	Registry.MustRegister(PointsTotal)
	Registry.MustRegister(UnresolvedTotal)
	Registry.MustRegister(MismatchDepth)
	Registry.MustRegister(AccuracyPercent)
	Registry.MustRegister(AverageDepth)
	Registry.MustRegister(EvalDurationMs)
}

// ObserveResult：记录单个任务的评估结果
func ObserveResult(strategy string, nodeCount int, params string, r *accuracy.Result) {
	PointsTotal.Add(float64(r.NodeCount))
	for p, n := range r.Unresolved() {
		UnresolvedTotal.WithLabelValues(p).Add(float64(n))
	}
	for d, c := range r.Histogram {
		for i := 0; i < c; i++ {
			MismatchDepth.Observe(float64(d))
		}
	}
	nc := strconv.Itoa(nodeCount)
	AccuracyPercent.WithLabelValues(strategy, nc, params).Set(r.Percentage)
	AverageDepth.WithLabelValues(strategy, nc, params).Set(r.AverageDepth)
}

// 文档注释：写出 node_exporter textfile
// 约束：path 为空时不写；写入先落临时文件再重命名，由 prometheus.WriteToTextfile 保证。
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, Registry)
}
