package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(strings.NewReader(stdin), &stdout, &stderr)
	err := app.Run(append([]string{"msetctl"}, args...))
	return stdout.String(), err
}

func TestCount(t *testing.T) {
	a := writeFile(t, "a.txt", "pear apple\nfig apple\n")
	b := writeFile(t, "b.txt", "apple fig\tkiwi")
	out, err := runApp(t, "", "count", a, b)
	require.NoError(t, err)
	assert.Equal(t, "apple\t3\nfig\t2\nkiwi\t1\npear\t1\n", out)
}

func TestCountTop(t *testing.T) {
	out, err := runApp(t, "b a c b a b d", "count", "--top", "2")
	require.NoError(t, err)
	assert.Equal(t, "b\t3\na\t2\n", out)

	out, err = runApp(t, "x y", "count", "--top", "5")
	require.NoError(t, err)
	assert.Equal(t, "x\t1\ny\t1\n", out)

	_, err = runApp(t, "", "count", "--top", "-1")
	require.Error(t, err)
}

func TestCountFold(t *testing.T) {
	out, err := runApp(t, "Apple APPLE äpple Straße strasse", "count", "--fold")
	require.NoError(t, err)
	assert.Equal(t, "apple\t3\nstrasse\t2\n", out)
}

func TestCountStdinDash(t *testing.T) {
	f := writeFile(t, "f.txt", "one two")
	out, err := runApp(t, "two three", "count", "-j", "1", f, "-")
	require.NoError(t, err)
	assert.Equal(t, "one\t1\nthree\t1\ntwo\t2\n", out)
}

func TestCountStdinRepeated(t *testing.T) {
	out, err := runApp(t, "a b a c a", "count", "-", "-", "-")
	require.NoError(t, err)
	assert.Equal(t, "a\t3\nb\t1\nc\t1\n", out)
}

func TestStats(t *testing.T) {
	out, err := runApp(t, "c a b a d a", "stats", "--quantile", "0.9", "--quantile", "0")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"total\t6",
		"distinct\t4",
		"min\ta",
		"max\td",
		"median\ta",
		"p0.9\td",
		"p0\ta",
		"",
	}, "\n"), out)

	out, err = runApp(t, "", "stats")
	require.NoError(t, err)
	assert.Equal(t, "total\t0\ndistinct\t0\n", out)

	_, err = runApp(t, "a", "stats", "--quantile", "2")
	require.Error(t, err)
}

func TestTree(t *testing.T) {
	out, err := runApp(t, "b a c", "--balancer", "none", "tree")
	require.NoError(t, err)
	assert.Contains(t, out, "b ×1 (h=2)")
	assert.Contains(t, out, "a ×1 (h=1)")
	assert.Contains(t, out, "c ×1 (h=1)")
}

func TestBalancerFromEnv(t *testing.T) {
	t.Setenv("MSETCTL_BALANCER", "none")
	out, err := runApp(t, "a b c d", "tree")
	require.NoError(t, err)
	assert.Contains(t, out, "a ×1 (h=4)")

	t.Setenv("MSETCTL_BALANCER", "avl")
	out, err = runApp(t, "a b c d", "tree")
	require.NoError(t, err)
	assert.Contains(t, out, "b ×1 (h=3)")
}

func TestErrors(t *testing.T) {
	_, err := runApp(t, "", "--balancer", "splay", "count")
	require.ErrorContains(t, err, "--balancer")

	_, err = runApp(t, "", "count", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	_, err = runApp(t, "", "count", "--jobs", "0")
	require.Error(t, err)
}
