package accuracy

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"area-accuracy/internal/area"

	"gopkg.in/yaml.v3"
)

// 文档注释：失配深度 → 权重 的全函数
// 约束：表外深度（含负数）权重恒为 0；构建后只读。
type WeightTable struct {
	w []float64
}

// NewWeightTable：按深度 0..len-1 给出权重
func NewWeightTable(weights ...float64) WeightTable {
	return WeightTable{w: append([]float64(nil), weights...)}
}

// DefaultWeights：深度 0..11 对应权重 11..0
func DefaultWeights() WeightTable {
	w := make([]float64, 12)
	for i := range w {
		w[i] = float64(11 - i)
	}
	return WeightTable{w: w}
}

func (t WeightTable) Weight(depth int) float64 {
	if depth < 0 || depth >= len(t.w) {
		return 0
	}
	return t.w[depth]
}

// Len：显式配置的深度个数
func (t WeightTable) Len() int { return len(t.w) }

// ParseWeights：解析逗号分隔的权重列表，例如 "11,10,9"
func ParseWeights(s string) (WeightTable, error) {
	parts := strings.Split(s, ",")
	w := make([]float64, 0, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return WeightTable{}, fmt.Errorf("%w: weight %d %q: %v", area.ErrInvalidInput, i, p, err)
		}
		w = append(w, v)
	}
	return WeightTable{w: w}, nil
}

type weightsFile struct {
	Weights yaml.Node `yaml:"weights"`
}

// 文档注释：从 YAML 文件加载权重表
// 约束：weights 可以是列表（按深度顺序）或稀疏映射（深度: 权重），映射中未出现的深度权重为 0。
func LoadWeightsFile(path string) (WeightTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return WeightTable{}, fmt.Errorf("%w: weights file: %v", area.ErrInvalidInput, err)
	}
	var f weightsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return WeightTable{}, fmt.Errorf("%w: weights file %s: %v", area.ErrInvalidInput, path, err)
	}
	switch f.Weights.Kind {
	case yaml.SequenceNode:
		var list []float64
		if err := f.Weights.Decode(&list); err != nil {
			return WeightTable{}, fmt.Errorf("%w: weights file %s: %v", area.ErrInvalidInput, path, err)
		}
		return WeightTable{w: list}, nil
	case yaml.MappingNode:
		var sparse map[int]float64
		if err := f.Weights.Decode(&sparse); err != nil {
			return WeightTable{}, fmt.Errorf("%w: weights file %s: %v", area.ErrInvalidInput, path, err)
		}
		maxDepth := -1
		for d := range sparse {
			if d < 0 {
				return WeightTable{}, fmt.Errorf("%w: weights file %s: negative depth %d", area.ErrInvalidInput, path, d)
			}
			if d > maxDepth {
				maxDepth = d
			}
		}
		w := make([]float64, maxDepth+1)
		for d, v := range sparse {
			w[d] = v
		}
		return WeightTable{w: w}, nil
	}
	return WeightTable{}, fmt.Errorf("%w: weights file %s: missing weights list or map", area.ErrInvalidInput, path)
}
