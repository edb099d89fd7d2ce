// 包 report：评估结果的控制台输出与 CSV 统计行追加
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"area-accuracy/internal/accuracy"
	"area-accuracy/internal/jobs"
)

// PrintStats：打印直方图与汇总
func PrintStats(w io.Writer, nodeCount int, r *accuracy.Result) {
	fmt.Fprintf(w, "###### STATS for %d ######\n", nodeCount)
	for d := 0; d <= r.MaxDepth; d++ {
		fmt.Fprintf(w, "%d:%d(%s%%)\n", d, r.Count(d), floatString(r.Share(d)))
	}
	fmt.Fprintln(w, "------------------")
	fmt.Fprintf(w, "%s of %s -> %s%%\n", number(r.WeightedIndex), number(r.MaxPossibleIndex), floatString(r.Percentage))
	fmt.Fprintf(w, "AverageBitError: %s\n", floatString(r.AverageDepth))
	if n := len(r.Warnings); n > 0 {
		fmt.Fprintf(w, "Unresolved: %d\n", n)
	}
	fmt.Fprintln(w, "##################")
}

// 文档注释：统计 CSV 行
// 约束：列顺序固定为 策略、节点数、参数1..3（不足补空串）、平均失配深度、深度 0..MaxDepth 的计数；下游分析脚本依赖此布局。
func Row(j jobs.Job, r *accuracy.Result) []string {
	row := []string{j.Layout.Strategy, strconv.Itoa(j.Layout.NodeCount)}
	for i := 0; i < jobs.MaxParamSlots; i++ {
		if i < len(j.Layout.Params) {
			row = append(row, j.Layout.Params[i])
		} else {
			row = append(row, "")
		}
	}
	row = append(row, floatString(r.AverageDepth))
	for _, c := range r.Counts() {
		row = append(row, strconv.Itoa(c))
	}
	return row
}

// AppendCSV：以追加方式写入一行，文件不存在时创建
func AppendCSV(path string, row []string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(f)
	if err := cw.Write(row); err != nil {
		_ = f.Close()
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// floatString：浮点数始终带小数部分，例如 1 → "1.0"，0.25 → "0.25"
func floatString(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// number：整数值不带小数，其余同 floatString
func number(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return floatString(v)
}
