package accuracy

import (
	"math/rand"
	"testing"

	"area-accuracy/internal/area"

	"github.com/stretchr/testify/require"
)

func TestMismatchDepth(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"101", "001", 1},
		{"aaa", "bbb", 3},
		{"0110", "0110", 0},
		{"0", "01", 1},
		{"0", "00", 0},
		{"1101", "01", 0},
		{"1100", "01", 2},
		{"10", "01", 2},
		{area.NoMatch, "01", 1},
		{area.NoMatch, "11", 1},
		{area.NoMatch, "00", 2},
		{area.NoMatch, area.NoMatch, 0},
		{"", "0101", 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, MismatchDepth(tc.a, tc.b), "%q vs %q", tc.a, tc.b)
	}
}

func randomCode(rnd *rand.Rand) string {
	n := 1 + rnd.Intn(8)
	b := make([]byte, n)
	for i := range b {
		b[i] = '0' + byte(rnd.Intn(2))
	}
	return string(b)
}

// 自身比较为 0、对称、深度不超过较短编码长度
func TestMismatchDepthProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		a, b := randomCode(rnd), randomCode(rnd)

		require.Equal(t, 0, MismatchDepth(a, a))
		require.Equal(t, MismatchDepth(a, b), MismatchDepth(b, a))

		short := len(a)
		if len(b) < short {
			short = len(b)
		}
		require.LessOrEqual(t, MismatchDepth(a, b), short)
	}
}
