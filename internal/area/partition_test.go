package area

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func box(code string, xlo, xhi, ylo, yhi float64) AreaEntry {
	return AreaEntry{Code: code, Boundaries: []Boundary{
		{Dimension: 0, Kind: Min, Value: xlo},
		{Dimension: 0, Kind: Max, Value: xhi},
		{Dimension: 1, Kind: Min, Value: ylo},
		{Dimension: 1, Kind: Max, Value: yhi},
	}}
}

func TestLoadPartitionAccumulatesBoundaries(t *testing.T) {
	entries := []AreaEntry{
		{Code: "10", Boundaries: []Boundary{{0, Min, 0}, {0, Max, 1}}},
		box("11", 1, 2, 0, 1),
		{Code: "10", Boundaries: []Boundary{{1, Min, 0}, {1, Max, 1}}},
	}
	p, err := LoadPartition("test", entries)
	require.NoError(t, err)
	require.Equal(t, 2, p.Len())
	require.Equal(t, []string{"10", "11"}, p.Codes())
	require.Equal(t, 2, p.Dimensions())

	r, ok := p.Region("10")
	require.True(t, ok)
	require.NoError(t, r.Complete())
}

func TestLoadPartitionRejectsBadEntries(t *testing.T) {
	_, err := LoadPartition("ref", []AreaEntry{{Code: ""}})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = LoadPartition("ref", []AreaEntry{{Code: "0", Boundaries: []Boundary{{-1, Min, 0}}}})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestPartitionResolve(t *testing.T) {
	p, err := LoadPartition("test", []AreaEntry{
		box("00", 0, 5, 0, 5),
		box("01", 0, 5, 5, 10),
		box("1", 5, 10, 0, 10),
	})
	require.NoError(t, err)

	code, ok, err := p.Resolve(Point{1, 1})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "00", code)

	code, ok, err = p.Resolve(Point{7, 9})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "1", code)

	// 共享边界上的点归属先加载的区域
	code, ok, err = p.Resolve(Point{2, 5})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "00", code)
}

func TestPartitionResolveNoMatch(t *testing.T) {
	p, err := LoadPartition("test", []AreaEntry{box("0", 0, 1, 0, 1)})
	require.NoError(t, err)

	code, ok, err := p.Resolve(Point{3, 3})
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, NoMatch, code)
}

func TestPartitionResolveMissingBoundary(t *testing.T) {
	p, err := LoadPartition("ref", []AreaEntry{
		{Code: "0", Boundaries: []Boundary{{0, Min, 0}, {0, Max, 1}, {1, Min, 0}}},
	})
	require.NoError(t, err)

	_, _, err = p.Resolve(Point{0.5, 0.5})
	require.ErrorIs(t, err, ErrMissingBoundary)
}

func TestPartitionOverlaps(t *testing.T) {
	p, err := LoadPartition("test", []AreaEntry{
		box("00", 0, 5, 0, 5),
		box("01", 0, 5, 5, 10),
		box("x", 4, 6, 4, 6),
	})
	require.NoError(t, err)
	require.Equal(t, []CodePair{{"00", "x"}, {"01", "x"}}, p.Overlaps())
}
