package dataset

import (
	"path/filepath"
	"strconv"
)

// DefaultReferenceStrategy：参考（完整视图）策略的目录名
const DefaultReferenceStrategy = "sendAll"

const (
	coordsPrefix = "coords_"
	areasPrefix  = "areas_"
	docSuffix    = ".xml"
)

// 文档注释：数据目录约定
// 约束：参考数据位于 <base>/<reference>/，测试数据位于 <base>/<strategy>/<p1>/<p2>.../；
// 文件名为 coords_<N>.xml 与 areas_coords_<N>.xml。
type Layout struct {
	BaseDir   string
	Reference string
	Strategy  string
	NodeCount int
	Params    []string
}

func (l Layout) reference() string {
	if l.Reference == "" {
		return DefaultReferenceStrategy
	}
	return l.Reference
}

func (l Layout) coordsName() string {
	return coordsPrefix + strconv.Itoa(l.NodeCount) + docSuffix
}

func (l Layout) testDir() string {
	parts := append([]string{l.BaseDir, l.Strategy}, l.Params...)
	return filepath.Join(parts...)
}

func (l Layout) ReferenceCoordsPath() string {
	return filepath.Join(l.BaseDir, l.reference(), l.coordsName())
}

func (l Layout) ReferenceAreaPath() string {
	return filepath.Join(l.BaseDir, l.reference(), areasPrefix+l.coordsName())
}

func (l Layout) TestCoordsPath() string {
	return filepath.Join(l.testDir(), l.coordsName())
}

func (l Layout) TestAreaPath() string {
	return filepath.Join(l.testDir(), areasPrefix+l.coordsName())
}

// AreaPathFor：坐标文档对应的区域文档路径（同目录，加 areas_ 前缀）
func AreaPathFor(coordsPath string) string {
	return filepath.Join(filepath.Dir(coordsPath), areasPrefix+filepath.Base(coordsPath))
}
