package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"area-accuracy/internal/accuracy"
	"area-accuracy/internal/area"

	"github.com/stretchr/testify/require"
)

func TestWriteTextfile(t *testing.T) {
	r := &accuracy.Result{
		NodeCount:    3,
		Histogram:    map[int]int{0: 2, 1: 1},
		MaxDepth:     1,
		Percentage:   96.9,
		AverageDepth: 0.33,
		Warnings:     []accuracy.UnresolvedPoint{{Index: 2, Partition: "test", Point: area.Point{9, 9}}},
	}
	ObserveResult("simplifyCoords", 3, "10", r)
	JobsTotal.WithLabelValues("ok").Inc()

	path := filepath.Join(t.TempDir(), "areaacc.prom")
	require.NoError(t, WriteTextfile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)
	require.True(t, strings.Contains(out, `areaacc_accuracy_percent{node_count="3",params="10",strategy="simplifyCoords"} 96.9`), out)
	require.Contains(t, out, `areaacc_unresolved_points_total{partition="test"}`)
	require.Contains(t, out, "areaacc_mismatch_depth_count")
	require.Contains(t, out, `areaacc_jobs_total{status="ok"}`)
}

func TestWriteTextfileDisabled(t *testing.T) {
	require.NoError(t, WriteTextfile(""))
}
