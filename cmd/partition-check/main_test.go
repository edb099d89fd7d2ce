package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

const clean = `<arealist>
  <area><prefix>0</prefix><min dimension="0">0</min><max dimension="0">5</max></area>
  <area><prefix>1</prefix><min dimension="0">5</min><max dimension="0">10</max></area>
</arealist>`

const broken = `<arealist>
  <area><prefix>0</prefix><min dimension="0">0</min><max dimension="0">6</max></area>
  <area><prefix>1</prefix><min dimension="0">4</min><max dimension="0">10</max></area>
  <area><prefix>2</prefix><min dimension="0">20</min></area>
</arealist>`

const nodes = `<nodelist>
  <node><coord>1</coord></node>
  <node><coord>9</coord></node>
  <node><coord>42</coord></node>
</nodelist>`

func TestCheckClean(t *testing.T) {
	dir := t.TempDir()
	areas := writeDoc(t, dir, "areas.xml", clean)
	var out, errOut bytes.Buffer

	require.Equal(t, exitOK, run([]string{areas}, &out, &errOut))
	require.Contains(t, out.String(), "regions: 2\n")
	require.Contains(t, out.String(), "dimensions: 1\n")
	require.NotContains(t, out.String(), "overlap:")
}

func TestCheckFindings(t *testing.T) {
	dir := t.TempDir()
	areas := writeDoc(t, dir, "areas.xml", broken)
	var out, errOut bytes.Buffer

	require.Equal(t, exitFindings, run([]string{areas}, &out, &errOut))
	require.Contains(t, out.String(), "regions: 3\n")
	require.Contains(t, out.String(), "overlap: 0 1\n")
	require.Contains(t, out.String(), "incomplete:")
}

func TestCheckUnresolvedPoints(t *testing.T) {
	dir := t.TempDir()
	areas := writeDoc(t, dir, "areas.xml", clean)
	coords := writeDoc(t, dir, "coords.xml", nodes)
	var out, errOut bytes.Buffer

	require.Equal(t, exitFindings, run([]string{areas, coords}, &out, &errOut))
	require.Contains(t, out.String(), "points: 3\n")
	require.Contains(t, out.String(), "unresolved: 1\n")
}

func TestCheckUsage(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Equal(t, exitUsage, run(nil, &out, &errOut))
	require.Contains(t, errOut.String(), "Usage: partition-check")
	require.Equal(t, exitFindings, run([]string{filepath.Join(t.TempDir(), "missing.xml")}, &out, &errOut))
}
