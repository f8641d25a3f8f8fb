package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/bintree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	configTag = "" // do not pick up the user's configuration
	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseSpec(t *testing.T) {
	spec, err := parseSpec("lr=x=y")
	require.NoError(t, err)
	assert.Equal(t, nodeSpec{path: "LR", value: "x=y"}, spec)

	spec, err = parseSpec(".=root")
	require.NoError(t, err)
	assert.Equal(t, "", spec.path)

	spec, err = parseSpec("=root")
	require.NoError(t, err)
	assert.Equal(t, "root", spec.value)

	_, err = parseSpec("LX=1")
	assert.Error(t, err)
	_, err = parseSpec("L")
	assert.Error(t, err)
}

func TestBuildTreeIgnoresSpecOrder(t *testing.T) {
	specs := []nodeSpec{{"LR", "c"}, {"", "a"}, {"L", "b"}, {"R", "d"}, {"L", "B"}}
	alloc := &bintree.CountingAllocator[string]{}
	tree, err := buildTree(specs, bintree.WithAllocator[string](alloc))
	require.NoError(t, err)
	var out strings.Builder
	require.NoError(t, tree.Print(bintree.Prefix, &out, bintree.Here()))
	assert.Equal(t, "( a ( B ( c ) ) ( d ) )", out.String())
	assert.Equal(t, 4, tree.Len())
	require.NoError(t, tree.Destroy())
	assert.Equal(t, 0, alloc.Live())
}

func TestBuildTreeMissingParent(t *testing.T) {
	tree, err := buildTree([]nodeSpec{{"LL", "x"}})
	assert.ErrorContains(t, err, `parent "L" is missing`)
	assert.Equal(t, 1, tree.Len())
}

func TestBuildCommand(t *testing.T) {
	out, err := run(t, "build", "--order", "infix", "--stats", ".=R", "L=L")
	require.NoError(t, err)
	assert.Contains(t, out, "( ( L ) R )")
	assert.Contains(t, out, "allocs=2 frees=2 live=0 double-frees=0")
}

func TestBuildCommandList(t *testing.T) {
	out, err := run(t, "build", "--list", "--hex", ".=a", "R=b", "RL=c")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "( 61 ( 62 ( 63 ) ) )", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "PATH"))
	assert.Equal(t, ".      1  61", lines[2])
	assert.Equal(t, "RL     3  63", lines[4])
}

func TestBuildCommandDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.dot")
	out, err := run(t, "build", "--dump", path, "--parents", ".=R", "R=x")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `1:right -> 2 [color="#10c94b"];`)
	assert.Contains(t, string(data), `2 -> 1 [color="#c95410"];`)
}

func TestBuildCommandErrors(t *testing.T) {
	_, err := run(t, "build", "--order", "levelorder", ".=x")
	assert.Error(t, err)
	_, err = run(t, "build", "RR=x")
	assert.Error(t, err)
	_, err = run(t, "build")
	assert.Error(t, err)
	_, err = run(t, "--trace", "verbose", "build", ".=x")
	assert.ErrorContains(t, err, "unknown trace level")
}

func TestDemoCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.dot")
	out, err := run(t, "demo", "--out", path, "--trace", "Debug")
	require.NoError(t, err)
	assert.Contains(t, out, "( 1 ( 2 ) )")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "digraph {\n\tbgcolor=\"#393f87\"\n"))
	assert.Contains(t, string(data), `1:left -> 2 [color="#10c94b"];`)
}

func TestConsoleFit(t *testing.T) {
	con := newConsole(&bytes.Buffer{})
	assert.Equal(t, "short", con.fit("short", 10))
	assert.Equal(t, "abcd…", con.fit("abcdefghij", 5))
}
