package accuracy

import "area-accuracy/internal/area"

// UnresolvedPoint：某点在一个划分中没有命中任何区域（非致命，编码按 NoMatch 参与评分）
type UnresolvedPoint struct {
	Index     int
	Partition string
	Point     area.Point
}

// 文档注释：一次评估的结果记录
// 约束：一次遍历内计算完毕，之后只读；Histogram 仅包含出现过的深度。
type Result struct {
	NodeCount        int
	Histogram        map[int]int
	MaxDepth         int
	WeightedIndex    float64
	MaxPossibleIndex float64
	Percentage       float64
	AverageDepth     float64
	Warnings         []UnresolvedPoint
}

// Count：深度 d 的点数，未出现的深度为 0
func (r *Result) Count(depth int) int { return r.Histogram[depth] }

// Share：深度 d 的点数占总点数的百分比
func (r *Result) Share(depth int) float64 {
	if r.NodeCount == 0 {
		return 0
	}
	return float64(r.Histogram[depth]) / float64(r.NodeCount) * 100
}

// Counts：深度 0..MaxDepth 的稠密计数
func (r *Result) Counts() []int {
	out := make([]int, r.MaxDepth+1)
	for d := range out {
		out[d] = r.Histogram[d]
	}
	return out
}

// Unresolved：按划分名称统计未命中的点数
func (r *Result) Unresolved() map[string]int {
	out := make(map[string]int)
	for _, w := range r.Warnings {
		out[w.Partition]++
	}
	return out
}
