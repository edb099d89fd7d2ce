// 包 jobs：把命令行给出的策略、节点数与参数取值展开为逐个评估任务
package jobs

import (
	"fmt"
	"strconv"
	"strings"

	"area-accuracy/internal/area"
	"area-accuracy/internal/dataset"
)

// MaxParamSlots：CSV 行中预留的策略参数列数
const MaxParamSlots = 3

// DefaultMaxPrefix：区域构建的默认最大前缀长度（位）
const DefaultMaxPrefix = 4

// Job：一次独立的评估任务
type Job struct {
	Layout    dataset.Layout
	MaxPrefix int
}

// Name：日志与指标中使用的任务标识，例如 simplifyCoords/2000/limitCoords;10
func (j Job) Name() string {
	return j.Layout.Strategy + "/" + strconv.Itoa(j.Layout.NodeCount) + "/" + j.ParamKey()
}

// ParamKey：参数按 ; 连接
func (j Job) ParamKey() string { return strings.Join(j.Layout.Params, ";") }

// Request：未展开的命令行输入
type Request struct {
	BaseDir    string
	Reference  string
	Strategies string
	NodeCounts string
	Parameters string
	MaxPrefix  int
}

// 文档注释：展开任务集合
// 约束：策略与节点数为逗号分隔列表；参数为至多 3 个以 ; 分隔的槽位，每个槽位为逗号分隔取值；
// 展开顺序为 策略 → 节点数 → 槽位1 → 槽位2 → 槽位3（最内层变化最快）。空取值、非数字节点数、超过 3 个槽位返回 ErrInvalidInput。
func Expand(req Request) ([]Job, error) {
	strategies, err := splitValues("strategy", req.Strategies)
	if err != nil {
		return nil, err
	}
	countStrs, err := splitValues("nodecount", req.NodeCounts)
	if err != nil {
		return nil, err
	}
	counts := make([]int, 0, len(countStrs))
	for _, c := range countStrs {
		n, err := strconv.Atoi(c)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: nodecount %q", area.ErrInvalidInput, c)
		}
		counts = append(counts, n)
	}
	slots := strings.Split(req.Parameters, ";")
	if len(slots) > MaxParamSlots {
		return nil, fmt.Errorf("%w: %d parameter slots, at most %d supported", area.ErrInvalidInput, len(slots), MaxParamSlots)
	}
	values := make([][]string, 0, len(slots))
	for i, s := range slots {
		v, err := splitValues(fmt.Sprintf("parameter %d", i+1), s)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	maxPrefix := req.MaxPrefix
	if maxPrefix <= 0 {
		maxPrefix = DefaultMaxPrefix
	}
	var out []Job
	for _, s := range strategies {
		for _, n := range counts {
			for _, params := range product(values) {
				out = append(out, Job{
					Layout: dataset.Layout{
						BaseDir:   req.BaseDir,
						Reference: req.Reference,
						Strategy:  s,
						NodeCount: n,
						Params:    params,
					},
					MaxPrefix: maxPrefix,
				})
			}
		}
	}
	return out, nil
}

// StatsFileName：统计 CSV 文件名，由原始命令行取值拼接
func StatsFileName(strategies, nodeCounts string, maxPrefix int) string {
	return "stats_" + strategies + "_" + nodeCounts + "_" + strconv.Itoa(maxPrefix) + ".csv"
}

func splitValues(what, s string) ([]string, error) {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("%w: empty %s value in %q", area.ErrInvalidInput, what, s)
		}
		out = append(out, p)
	}
	return out, nil
}

// product：各槽位取值的笛卡尔积，最后一个槽位变化最快
func product(values [][]string) [][]string {
	out := [][]string{{}}
	for _, slot := range values {
		next := make([][]string, 0, len(out)*len(slot))
		for _, prefix := range out {
			for _, v := range slot {
				combo := append(append([]string(nil), prefix...), v)
				next = append(next, combo)
			}
		}
		out = next
	}
	return out
}
