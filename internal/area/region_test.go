package area

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func square(code string, lo, hi float64) *Region {
	r := NewRegion(code)
	r.SetBoundary(0, Min, lo)
	r.SetBoundary(0, Max, hi)
	r.SetBoundary(1, Min, lo)
	r.SetBoundary(1, Max, hi)
	return r
}

// 边界两端均为闭区间
func TestRegionContainsInclusive(t *testing.T) {
	r := square("0", 0, 10)

	cases := []struct {
		name string
		p    Point
		want bool
	}{
		{"interior", Point{5, 5}, true},
		{"min corner", Point{0, 0}, true},
		{"max corner", Point{10, 10}, true},
		{"mixed edge", Point{0, 10}, true},
		{"below min", Point{-0.0001, 5}, false},
		{"above max", Point{5, 10.0001}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.Contains(tc.p)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRegionSetBoundaryLastWriteWins(t *testing.T) {
	r := NewRegion("1")
	r.SetBoundary(0, Max, 3)
	r.SetBoundary(0, Min, 1)
	r.SetBoundary(0, Max, 2)

	lo, hi, ok := r.Bounds(0)
	require.True(t, ok)
	require.Equal(t, 1.0, lo)
	require.Equal(t, 2.0, hi)
	require.Equal(t, 1, r.Dimensions())
}

func TestRegionContainsMissingBoundary(t *testing.T) {
	r := NewRegion("01")
	r.SetBoundary(0, Min, 0)
	r.SetBoundary(0, Max, 1)
	r.SetBoundary(1, Min, 0)

	_, err := r.Contains(Point{0.5, 0.5})
	require.ErrorIs(t, err, ErrMissingBoundary)

	var mb *MissingBoundaryError
	require.True(t, errors.As(err, &mb))
	require.Equal(t, "01", mb.Code)
	require.Equal(t, 1, mb.Dimension)
	require.Equal(t, Max, mb.Kind)

	require.ErrorIs(t, r.Complete(), ErrMissingBoundary)
}

// 点的维度多于区域定义：多出的维度没有边界
func TestRegionContainsExtraDimension(t *testing.T) {
	r := square("0", 0, 1)
	_, err := r.Contains(Point{0.5, 0.5, 0.5})
	require.ErrorIs(t, err, ErrMissingBoundary)
}

func TestRegionContainsDimensionMismatch(t *testing.T) {
	r := square("0", 0, 1)
	_, err := r.Contains(Point{0.5})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegionOverlaps(t *testing.T) {
	a := square("a", 0, 5)
	b := square("b", 5, 10)
	c := square("c", 4, 6)

	require.False(t, a.Overlaps(b), "shared face is not an overlap")
	require.True(t, a.Overlaps(c))
	require.True(t, c.Overlaps(b))
}
