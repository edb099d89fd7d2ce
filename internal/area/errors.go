package area

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingBoundary：区域在被查询的维度上缺少最小或最大边界
	ErrMissingBoundary = errors.New("missing boundary")
	// ErrInvalidInput：输入数据结构错误（空点集、维度不一致、文档缺失或格式错误）
	ErrInvalidInput = errors.New("invalid input")
)

// MissingBoundaryError：记录缺失边界的区域编码、维度与边界类型
type MissingBoundaryError struct {
	Code      string
	Dimension int
	Kind      BoundKind
}

func (e *MissingBoundaryError) Error() string {
	return fmt.Sprintf("area %q: %s boundary for dimension %d not set", e.Code, e.Kind, e.Dimension)
}

func (e *MissingBoundaryError) Unwrap() error { return ErrMissingBoundary }
