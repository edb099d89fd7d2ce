package area

import "fmt"

// BoundKind：边界类型（最小/最大）
type BoundKind int

const (
	Min BoundKind = iota
	Max
)

func (k BoundKind) String() string {
	if k == Max {
		return "max"
	}
	return "min"
}

// Point：n 维坐标点；维度由数据集固定，加载后只读
type Point []float64

// bound：单一维度的边界对，has* 标记是否已设置
type bound struct {
	min, max       float64
	hasMin, hasMax bool
}

// 文档注释：轴对齐超矩形区域
// 背景：区域编码为从根区域出发的层级路径，较短编码是共享前缀的较长编码的祖先。
// 约束：边界在加载期间写入，加载完成后只读；判定时两端均为闭区间。
type Region struct {
	code   string
	bounds map[int]*bound
	dims   int
}

func NewRegion(code string) *Region {
	return &Region{code: code, bounds: make(map[int]*bound)}
}

func (r *Region) Code() string { return r.code }

// Dimensions：已引用的最大维度下标 + 1
func (r *Region) Dimensions() int { return r.dims }

// SetBoundary：记录单个边界；同一 (维度, 类型) 重复写入时以最后一次为准，最小/最大写入顺序不限
func (r *Region) SetBoundary(dimension int, kind BoundKind, value float64) {
	b, ok := r.bounds[dimension]
	if !ok {
		b = &bound{}
		r.bounds[dimension] = b
	}
	if kind == Max {
		b.max, b.hasMax = value, true
	} else {
		b.min, b.hasMin = value, true
	}
	if dimension+1 > r.dims {
		r.dims = dimension + 1
	}
}

// Bounds：返回维度 d 的边界对；任一端未设置时 ok 为 false
func (r *Region) Bounds(d int) (lo, hi float64, ok bool) {
	b, found := r.bounds[d]
	if !found || !b.hasMin || !b.hasMax {
		return 0, 0, false
	}
	return b.min, b.max, true
}

// Complete：检查 0..Dimensions()-1 每个维度的两端边界均已设置
func (r *Region) Complete() error {
	for d := 0; d < r.dims; d++ {
		if err := r.checkBound(d); err != nil {
			return err
		}
	}
	return nil
}

func (r *Region) checkBound(d int) error {
	b, ok := r.bounds[d]
	if !ok || !b.hasMin {
		return &MissingBoundaryError{Code: r.code, Dimension: d, Kind: Min}
	}
	if !b.hasMax {
		return &MissingBoundaryError{Code: r.code, Dimension: d, Kind: Max}
	}
	return nil
}

// 文档注释：点包含判定（闭区间）
// 约束：点的每个维度都必须有完整边界，否则返回 MissingBoundaryError；
// 点的维度少于区域定义的维度视为维度不一致（ErrInvalidInput）。
func (r *Region) Contains(p Point) (bool, error) {
	if len(p) < r.dims {
		return false, fmt.Errorf("%w: point has %d dimensions, area %q defines %d", ErrInvalidInput, len(p), r.code, r.dims)
	}
	inside := true
	for d, c := range p {
		if err := r.checkBound(d); err != nil {
			return false, err
		}
		b := r.bounds[d]
		if c < b.min || c > b.max {
			inside = false
		}
	}
	return inside, nil
}

// Overlaps：两个区域在所有公共维度上内部相交时返回 true；仅共享边界面不算重叠，边界不完整的维度不参与判定
func (r *Region) Overlaps(o *Region) bool {
	dims := r.dims
	if o.dims < dims {
		dims = o.dims
	}
	compared := 0
	for d := 0; d < dims; d++ {
		alo, ahi, ok1 := r.Bounds(d)
		blo, bhi, ok2 := o.Bounds(d)
		if !ok1 || !ok2 {
			continue
		}
		if ahi <= blo || bhi <= alo {
			return false
		}
		compared++
	}
	return compared > 0
}
