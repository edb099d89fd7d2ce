package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"area-accuracy/internal/accuracy"
	"area-accuracy/internal/area"
	"area-accuracy/internal/dataset"
	"area-accuracy/internal/jobs"

	"github.com/stretchr/testify/require"
)

const refAreas = `<arealist>
  <area><prefix>0</prefix>
    <min dimension="0">0</min><max dimension="0">10</max>
    <min dimension="1">0</min><max dimension="1">10</max>
  </area>
</arealist>`

const testAreas = `<arealist>
  <area><prefix>00</prefix>
    <min dimension="0">0</min><max dimension="0">5</max>
    <min dimension="1">0</min><max dimension="1">5</max>
  </area>
  <area><prefix>01</prefix>
    <min dimension="0">0</min><max dimension="0">5</max>
    <min dimension="1">5</min><max dimension="1">10</max>
  </area>
  <area><prefix>1</prefix>
    <min dimension="0">5</min><max dimension="0">10</max>
    <min dimension="1">0</min><max dimension="1">10</max>
  </area>
</arealist>`

const coords = `<nodelist>
  <node><coord>1</coord><coord>1</coord></node>
  <node><coord>1</coord><coord>7</coord></node>
  <node><coord>7</coord><coord>3</coord></node>
  <node><coord>2</coord><coord>2</coord></node>
</nodelist>`

func writeDoc(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func fixture(t *testing.T) jobs.Job {
	t.Helper()
	base := t.TempDir()
	j := jobs.Job{
		Layout:    dataset.Layout{BaseDir: base, Strategy: "simplifyCoords", NodeCount: 4, Params: []string{"limitCoords", "10"}},
		MaxPrefix: 4,
	}
	writeDoc(t, j.Layout.ReferenceCoordsPath(), coords)
	writeDoc(t, j.Layout.ReferenceAreaPath(), refAreas)
	writeDoc(t, j.Layout.TestCoordsPath(), coords)
	writeDoc(t, j.Layout.TestAreaPath(), testAreas)
	return j
}

func TestRunEndToEnd(t *testing.T) {
	j := fixture(t)
	statsFile := filepath.Join(t.TempDir(), "stats.csv")
	var out bytes.Buffer

	o, err := Run(context.Background(), j, Deps{
		Weights:   accuracy.DefaultWeights(),
		Workers:   2,
		Stdout:    &out,
		StatsFile: statsFile,
	})
	require.NoError(t, err)
	require.NotEmpty(t, o.RunID)
	require.Equal(t, map[int]int{0: 2, 1: 2}, o.Result.Histogram)
	require.InDelta(t, 42.0/44.0*100, o.Result.Percentage, 1e-9)

	require.True(t, strings.HasPrefix(out.String(), "###### STATS for 4 ######\n0:2(50.0%)\n1:2(50.0%)\n"), out.String())

	b, err := os.ReadFile(statsFile)
	require.NoError(t, err)
	require.Equal(t, "simplifyCoords,4,limitCoords,10,,0.5,2,2\n", string(b))
}

func TestRunMissingTestAreas(t *testing.T) {
	j := fixture(t)
	require.NoError(t, os.Remove(j.Layout.TestAreaPath()))

	_, err := Run(context.Background(), j, Deps{Weights: accuracy.DefaultWeights()})
	require.ErrorIs(t, err, area.ErrInvalidInput)
}
