// 包 config：从环境变量读取评估工具配置；解析失败时静默回退默认值
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"area-accuracy/internal/accuracy"
	"area-accuracy/internal/dataset"
)

// Config：评估工具运行参数
type Config struct {
	Workers           int
	Weights           string
	WeightsFile       string
	ReferenceStrategy string
	BuilderCmd        string
	BuilderTimeout    time.Duration
	StatsDir          string
	MetricsTextfile   string
	PGEnable          bool
	RedisEnable       bool
	RedisTTL          time.Duration
	KeepRuns          int
}

// 文档注释：读取环境变量
// 约束：EVAL_WORKERS、AREA_BUILDER_TIMEOUT_S、RESULTS_REDIS_TTL_S、RESULTS_KEEP_N 须为正整数，否则使用默认值。
func Load() Config {
	c := Config{
		Workers:           1,
		Weights:           os.Getenv("WEIGHTS"),
		WeightsFile:       os.Getenv("WEIGHTS_FILE"),
		ReferenceStrategy: os.Getenv("REFERENCE_STRATEGY"),
		BuilderCmd:        os.Getenv("AREA_BUILDER_CMD"),
		BuilderTimeout:    10 * time.Minute,
		StatsDir:          os.Getenv("STATS_DIR"),
		MetricsTextfile:   os.Getenv("METRICS_TEXTFILE"),
		PGEnable:          envBool("RESULTS_PG_ENABLE"),
		RedisEnable:       envBool("RESULTS_REDIS_ENABLE"),
		RedisTTL:          7 * 24 * time.Hour,
		KeepRuns:          10,
	}
	if n := envInt("EVAL_WORKERS"); n > 0 {
		c.Workers = n
	}
	if n := envInt("AREA_BUILDER_TIMEOUT_S"); n > 0 {
		c.BuilderTimeout = time.Duration(n) * time.Second
	}
	if n := envInt("RESULTS_REDIS_TTL_S"); n > 0 {
		c.RedisTTL = time.Duration(n) * time.Second
	}
	if n := envInt("RESULTS_KEEP_N"); n > 0 {
		c.KeepRuns = n
	}
	if c.ReferenceStrategy == "" {
		c.ReferenceStrategy = dataset.DefaultReferenceStrategy
	}
	if c.StatsDir == "" {
		c.StatsDir = "."
	}
	return c
}

// WeightTable：WEIGHTS_FILE 优先，其次 WEIGHTS，均未配置时使用默认表
func (c Config) WeightTable() (accuracy.WeightTable, error) {
	if c.WeightsFile != "" {
		return accuracy.LoadWeightsFile(c.WeightsFile)
	}
	if strings.TrimSpace(c.Weights) != "" {
		return accuracy.ParseWeights(c.Weights)
	}
	return accuracy.DefaultWeights(), nil
}

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	return strings.EqualFold(os.Getenv(key), "true")
}
