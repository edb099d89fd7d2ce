package accuracy

import (
	"fmt"
	"sync"

	"area-accuracy/internal/area"
	"area-accuracy/internal/logger"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Option：评估器可选参数
type Option func(*Scorer)

// WithWorkers：按连续分块并行判定点归属；n <= 1 时单线程
func WithWorkers(n int) Option {
	return func(s *Scorer) {
		if n > 1 {
			s.workers = n
		}
	}
}

// 文档注释：精度评估器
// 背景：参考划分与测试划分对同一批参考点分别判定区域编码，按尾部失配深度聚合为直方图与加权指标。
// 约束：两个划分与点集在评估期间只读；评估不做 I/O，未命中事件只写日志与结果中的告警列表。
type Scorer struct {
	weights WeightTable
	ref     *area.Partition
	test    *area.Partition
	points  []area.Point
	workers int
}

func NewScorer(weights WeightTable, ref, test *area.Partition, points []area.Point, opts ...Option) *Scorer {
	s := &Scorer{weights: weights, ref: ref, test: test, points: points, workers: 1}
	for _, o := range opts {
		o(s)
	}
	return s
}

// partial：单个分块的局部直方图与告警
type partial struct {
	counts   []int
	warnings []UnresolvedPoint
	err      error
}

// Evaluate：单次遍历点集并生成结果记录
// 约束：空点集、点维度不一致、最大可能指标为 0 时返回 ErrInvalidInput；包含判定错误中止评估。
func (s *Scorer) Evaluate() (*Result, error) {
	if s.ref == nil || s.test == nil {
		return nil, fmt.Errorf("%w: missing partition", area.ErrInvalidInput)
	}
	if err := validatePoints(s.points); err != nil {
		return nil, err
	}
	parts := s.run()
	var counts []int
	var warnings []UnresolvedPoint
	for _, p := range parts {
		if p.err != nil {
			return nil, p.err
		}
		counts = mergeCounts(counts, p.counts)
		warnings = append(warnings, p.warnings...)
	}
	for _, w := range warnings {
		logger.L().Warn("point_unresolved", "partition", w.Partition, "index", w.Index, "coords", w.Point)
	}
	return s.aggregate(counts, warnings)
}

// run：按分块执行判定；分块连续且按点下标排序，合并结果与单线程一致
func (s *Scorer) run() []partial {
	workers := s.workers
	if workers > len(s.points) {
		workers = len(s.points)
	}
	if workers <= 1 {
		return []partial{s.scoreRange(0, len(s.points))}
	}
	chunk := (len(s.points) + workers - 1) / workers
	parts := make([]partial, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		lo := i * chunk
		hi := lo + chunk
		if hi > len(s.points) {
			hi = len(s.points)
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(idx, lo, hi int) {
			defer wg.Done()
			parts[idx] = s.scoreRange(lo, hi)
		}(i, lo, hi)
	}
	wg.Wait()
	logger.L().Debug("eval_workers_done", "workers", workers, "chunk", chunk)
	return parts
}

func (s *Scorer) scoreRange(lo, hi int) partial {
	var out partial
	for i := lo; i < hi; i++ {
		pt := s.points[i]
		refCode, ok, err := s.ref.Resolve(pt)
		if err != nil {
			out.err = fmt.Errorf("point %d: %w", i, err)
			return out
		}
		if !ok {
			out.warnings = append(out.warnings, UnresolvedPoint{Index: i, Partition: s.ref.Name(), Point: pt})
		}
		testCode, ok, err := s.test.Resolve(pt)
		if err != nil {
			out.err = fmt.Errorf("point %d: %w", i, err)
			return out
		}
		if !ok {
			out.warnings = append(out.warnings, UnresolvedPoint{Index: i, Partition: s.test.Name(), Point: pt})
		}
		d := MismatchDepth(refCode, testCode)
		for len(out.counts) <= d {
			out.counts = append(out.counts, 0)
		}
		out.counts[d]++
	}
	return out
}

func (s *Scorer) aggregate(counts []int, warnings []UnresolvedPoint) (*Result, error) {
	total := len(s.points)
	maxIndex := s.weights.Weight(0) * float64(total)
	if maxIndex == 0 {
		return nil, fmt.Errorf("%w: maximum possible index is 0 (weight(0)=%v)", area.ErrInvalidInput, s.weights.Weight(0))
	}
	res := &Result{
		NodeCount:        total,
		Histogram:        make(map[int]int, len(counts)),
		MaxPossibleIndex: maxIndex,
		Warnings:         warnings,
	}
	for d, c := range counts {
		if c == 0 {
			continue
		}
		res.Histogram[d] = c
		res.MaxDepth = d
	}
	res.WeightedIndex = WeightedIndex(counts, s.weights)
	res.Percentage = res.WeightedIndex / maxIndex * 100
	res.AverageDepth = averageDepth(counts)
	return res, nil
}

// WeightedIndex：Σ count(d)·weight(d)
func WeightedIndex(counts []int, w WeightTable) float64 {
	if len(counts) == 0 {
		return 0
	}
	c := make([]float64, len(counts))
	wv := make([]float64, len(counts))
	for d, n := range counts {
		c[d] = float64(n)
		wv[d] = w.Weight(d)
	}
	return floats.Dot(c, wv)
}

// averageDepth：以点数为权的深度均值，即 Σ count(d)·d / Σ count(d)
func averageDepth(counts []int) float64 {
	depths := make([]float64, len(counts))
	c := make([]float64, len(counts))
	for d, n := range counts {
		depths[d] = float64(d)
		c[d] = float64(n)
	}
	return stat.Mean(depths, c)
}

func mergeCounts(dst, src []int) []int {
	for len(dst) < len(src) {
		dst = append(dst, 0)
	}
	for d, n := range src {
		dst[d] += n
	}
	return dst
}

func validatePoints(points []area.Point) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: empty point list", area.ErrInvalidInput)
	}
	dims := len(points[0])
	if dims == 0 {
		return fmt.Errorf("%w: point 0 has no coordinates", area.ErrInvalidInput)
	}
	for i, p := range points {
		if len(p) != dims {
			return fmt.Errorf("%w: point %d has %d dimensions, expected %d", area.ErrInvalidInput, i, len(p), dims)
		}
	}
	return nil
}
