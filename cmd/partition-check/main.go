// 区域划分诊断：统计区域数量与维度，列出边界缺失的区域、相互重叠的区域对，
// 可选地统计坐标文件中无法解析的点
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"area-accuracy/internal/area"
	"area-accuracy/internal/dataset"
	"area-accuracy/internal/logger"

	"github.com/joho/godotenv"
)

const (
	exitOK       = 0
	exitFindings = 1
	exitUsage    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("partition-check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", "", "additional .env file")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: partition-check [--env file] <areaFile> [coordsFile]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
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

	doc, err := dataset.LoadAreas(fs.Arg(0))
	if err != nil {
		l.Error("areas_load_error", "path", fs.Arg(0), "err", err)
		return exitFindings
	}
	p, err := area.LoadPartition(fs.Arg(0), doc.Entries)
	if err != nil {
		l.Error("partition_error", "path", fs.Arg(0), "err", err)
		return exitFindings
	}
	fmt.Fprintf(stdout, "regions: %d\n", p.Len())
	fmt.Fprintf(stdout, "dimensions: %d\n", p.Dimensions())
	fmt.Fprintf(stdout, "digest: %016x\n", doc.Digest)

	findings := 0
	for _, code := range p.Codes() {
		r, _ := p.Region(code)
		if err := r.Complete(); err != nil {
			findings++
			fmt.Fprintf(stdout, "incomplete: %v\n", err)
		}
	}
	for _, pair := range p.Overlaps() {
		findings++
		fmt.Fprintf(stdout, "overlap: %s %s\n", pair.A, pair.B)
	}

	if fs.NArg() == 2 {
		cd, err := dataset.LoadCoords(fs.Arg(1))
		if err != nil {
			l.Error("coords_load_error", "path", fs.Arg(1), "err", err)
			return exitFindings
		}
		unresolved, failed := 0, 0
		for i, pt := range cd.Points {
			_, ok, err := p.Resolve(pt)
			switch {
			case err != nil:
				failed++
				l.Debug("point_resolve_error", "index", i, "err", err)
			case !ok:
				unresolved++
				l.Debug("point_unresolved", "index", i, "point", pt)
			}
		}
		fmt.Fprintf(stdout, "points: %d\n", len(cd.Points))
		fmt.Fprintf(stdout, "unresolved: %d\n", unresolved)
		if failed > 0 {
			fmt.Fprintf(stdout, "resolve errors: %d\n", failed)
		}
		findings += unresolved + failed
	}

	l.Info("partition_check_done", "path", fs.Arg(0), "findings", findings)
	if findings > 0 {
		return exitFindings
	}
	return exitOK
}
