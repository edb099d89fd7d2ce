package accuracy

// 文档注释：失配深度（尾部对齐）
// 约束：比较的是尾部而非前缀，与既有统计数据逐字符一致。
// 约束：n = 两编码中较短者的字符数；从最长公共尾部长度 n 开始递减，首个相等的尾部长度 m 给出深度 n-m；
// 不存在任何长度 ≥1 的相等尾部时深度为 n。NoMatch 编码按普通字符串参与比较。
func MismatchDepth(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}
	for i := 0; i < n; i++ {
		m := n - i
		if equalRunes(ra[len(ra)-m:], rb[len(rb)-m:]) {
			return i
		}
	}
	return n
}

func equalRunes(x, y []rune) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
