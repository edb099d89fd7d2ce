// 程序入口：读取配置、展开任务、逐个评估区域划分精度；评估逻辑在 internal/pipeline
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"area-accuracy/internal/builder"
	"area-accuracy/internal/config"
	"area-accuracy/internal/jobs"
	"area-accuracy/internal/logger"
	"area-accuracy/internal/metrics"
	"area-accuracy/internal/migrate"
	"area-accuracy/internal/pipeline"
	"area-accuracy/internal/store"
	"area-accuracy/internal/utils"

	"github.com/joho/godotenv"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  area-accuracy [options] <gvbDataBaseDirectory> <strategyName> <nodecount> <parameter>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  e.g. area-accuracy -p 4 ./simulations/gvbData simplifyCoords 2000 \"limitCoords;10,50,100\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("area-accuracy", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	maxPrefix := jobs.DefaultMaxPrefix
	fs.IntVar(&maxPrefix, "p", jobs.DefaultMaxPrefix, "maximum prefix length in bits")
	fs.IntVar(&maxPrefix, "maxprefix", jobs.DefaultMaxPrefix, "maximum prefix length in bits")
	envFile := fs.String("env", "", "additional .env file")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			usage(stdout, fs)
			return exitOK
		}
		fmt.Fprintf(stderr, "%v\n\n", err)
		usage(stderr, fs)
		return exitUsage
	}
	if fs.NArg() != 4 {
		fmt.Fprintln(stderr, "Missing file argument (try --help)")
		return exitUsage
	}

	_ = godotenv.Load(".env")
	if *envFile != "" {
		if err := godotenv.Overload(*envFile); err != nil {
			fmt.Fprintf(stderr, "env file %s: %v\n", *envFile, err)
			return exitUsage
		}
	}
	l := logger.Setup()
	cfg := config.Load()
	l.Debug("config_loaded", "workers", cfg.Workers, "reference", cfg.ReferenceStrategy, "stats_dir", cfg.StatsDir)

	weights, err := cfg.WeightTable()
	if err != nil {
		l.Error("weights_error", "err", err)
		return exitError
	}
	baseDir, strategies, nodeCounts, params := fs.Arg(0), fs.Arg(1), fs.Arg(2), fs.Arg(3)
	js, err := jobs.Expand(jobs.Request{
		BaseDir:    baseDir,
		Reference:  cfg.ReferenceStrategy,
		Strategies: strategies,
		NodeCounts: nodeCounts,
		Parameters: params,
		MaxPrefix:  maxPrefix,
	})
	if err != nil {
		l.Error("jobs_expand_error", "err", err)
		return exitUsage
	}
	l.Info("jobs_expanded", "count", len(js))

	ctx := context.Background()
	deps := pipeline.Deps{
		Weights:   weights,
		Workers:   cfg.Workers,
		Builder:   builder.Builder{Command: cfg.BuilderCmd, Timeout: cfg.BuilderTimeout},
		Stdout:    stdout,
		StatsFile: filepath.Join(cfg.StatsDir, jobs.StatsFileName(strategies, nodeCounts, maxPrefix)),
	}
	if cfg.PGEnable {
		if st := openStore(ctx); st != nil {
			defer st.Close()
			deps.Store = st
		}
	} else {
		l.Info("results_pg_disabled")
	}
	if cfg.RedisEnable {
		rc := utils.OpenRedisFromEnv()
		defer rc.Close()
		if err := rc.Ping(ctx).Err(); err != nil {
			l.Error("redis_ping_error", "err", err)
		} else {
			l.Info("redis_ping_ok")
			deps.Summary = store.NewSummaryCache(rc, cfg.RedisTTL)
		}
	} else {
		l.Info("results_redis_disabled")
	}

	failed := 0
	for _, j := range js {
		fmt.Fprintf(stdout, "Testing %s against %s\n", j.Layout.ReferenceCoordsPath(), j.Layout.TestCoordsPath())
		if _, err := pipeline.Run(ctx, j, deps); err != nil {
			failed++
			metrics.JobsTotal.WithLabelValues("error").Inc()
			l.Error("job_error", "job", j.Name(), "err", err)
			continue
		}
		metrics.JobsTotal.WithLabelValues("ok").Inc()
	}
	if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
		l.Error("metrics_textfile_error", "path", cfg.MetricsTextfile, "err", err)
	}
	l.Info("jobs_done", "total", len(js), "failed", failed)
	if failed > 0 {
		return exitError
	}
	return exitOK
}

// openStore：打开数据库并确保表结构；失败时返回 nil，评估继续但不落库
func openStore(ctx context.Context) *store.Store {
	l := logger.L()
	db, err := utils.OpenPostgresFromEnv()
	if err != nil {
		l.Error("db_open_error", "err", err)
		return nil
	}
	if err := db.PingContext(ctx); err != nil {
		l.Error("db_ping_error", "err", err)
		_ = db.Close()
		return nil
	}
	if err := migrate.EnsureSchema(ctx, db); err != nil {
		l.Error("schema_error", "err", err)
		_ = db.Close()
		return nil
	}
	l.Info("db_open_ok")
	return store.AttachDB(db)
}
