package area

import "fmt"

// NoMatch：点不落在任何区域内时返回的编码
const NoMatch = "-1"

// Boundary：解码后的单个边界三元组
type Boundary struct {
	Dimension int
	Kind      BoundKind
	Value     float64
}

// AreaEntry：解码后的区域记录；同一编码可出现多次，边界累加
type AreaEntry struct {
	Code       string
	Boundaries []Boundary
}

// CodePair：两个区域编码（用于重叠诊断）
type CodePair struct {
	A, B string
}

// 文档注释：区域划分（编码 → 区域）
// 背景：一次加载构建、之后只读，可在并行判定中共享。
// 约束：判定按编码首次出现的顺序线性扫描，区域重叠时先出现者胜出。
type Partition struct {
	name    string
	regions map[string]*Region
	order   []string
}

// LoadPartition：由解码后的区域记录构建划分
// 约束：编码为空或维度为负时返回 ErrInvalidInput；编码首次出现时创建区域，后续记录累加边界
func LoadPartition(name string, entries []AreaEntry) (*Partition, error) {
	p := &Partition{name: name, regions: make(map[string]*Region, len(entries))}
	for i, e := range entries {
		if e.Code == "" {
			return nil, fmt.Errorf("%w: %s entry %d has empty area code", ErrInvalidInput, name, i)
		}
		r, ok := p.regions[e.Code]
		if !ok {
			r = NewRegion(e.Code)
			p.regions[e.Code] = r
			p.order = append(p.order, e.Code)
		}
		for _, b := range e.Boundaries {
			if b.Dimension < 0 {
				return nil, fmt.Errorf("%w: %s area %q has negative dimension %d", ErrInvalidInput, name, e.Code, b.Dimension)
			}
			r.SetBoundary(b.Dimension, b.Kind, b.Value)
		}
	}
	return p, nil
}

func (p *Partition) Name() string { return p.name }

func (p *Partition) Len() int { return len(p.order) }

// Codes：按首次出现顺序返回全部编码
func (p *Partition) Codes() []string {
	return append([]string(nil), p.order...)
}

func (p *Partition) Region(code string) (*Region, bool) {
	r, ok := p.regions[code]
	return r, ok
}

// Dimensions：所有区域中最大的维度数
func (p *Partition) Dimensions() int {
	n := 0
	for _, r := range p.regions {
		if r.Dimensions() > n {
			n = r.Dimensions()
		}
	}
	return n
}

// Resolve：返回首个包含该点的区域编码；无命中时返回 NoMatch 且 ok 为 false
// 约束：边界缺失等包含判定错误直接返回，由调用方中止本次评估
func (p *Partition) Resolve(pt Point) (code string, ok bool, err error) {
	for _, c := range p.order {
		in, err := p.regions[c].Contains(pt)
		if err != nil {
			return NoMatch, false, fmt.Errorf("%s: %w", p.name, err)
		}
		if in {
			return c, true, nil
		}
	}
	return NoMatch, false, nil
}

// Overlaps：返回内部相交的区域对，按加载顺序排列
func (p *Partition) Overlaps() []CodePair {
	var out []CodePair
	for i := 0; i < len(p.order); i++ {
		a := p.regions[p.order[i]]
		for j := i + 1; j < len(p.order); j++ {
			b := p.regions[p.order[j]]
			if a.Overlaps(b) {
				out = append(out, CodePair{A: a.Code(), B: b.Code()})
			}
		}
	}
	return out
}
