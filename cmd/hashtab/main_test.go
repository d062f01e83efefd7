package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/graph-guard/hashtab/pkg/cli"
	"github.com/stretchr/testify/require"
)

func TestExecStdin(t *testing.T) {
	var out bytes.Buffer
	ok := execute(&out, strings.NewReader(strings.Join([]string{
		"---",
		"capacity: 4",
		"---",
		`{"op":"insert","key":"x","value":1}`,
		`{"op":"insert","key":"y","value":2}`,
		`{"op":"insert","key":"z","value":3}`,
		`{"op":"stats"}`,
	}, "\n")), cli.CommandExec{})
	require.True(t, ok)
	require.Equal(t, strings.Join([]string{
		`insert "x": ok`,
		`insert "y": ok`,
		`insert "z": ok`,
		`stats: len=3 cap=8 used_slots=3 longest_chain=1`,
	}, "\n")+"\n", out.String())
}

func TestExecConfigAndScriptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.yaml"),
		[]byte("kind: text\nlog-level: error\n"),
		0o644,
	))
	scriptPath := filepath.Join(dir, "ops.jsonl")
	require.NoError(t, os.WriteFile(
		scriptPath,
		[]byte(`{"op":"insert","key":"k","value":"v"}`+"\n"+
			`{"op":"get","key":"k"}`+"\n"),
		0o644,
	))

	var out bytes.Buffer
	ok := execute(&out, nil, cli.CommandExec{
		ConfigDirPath: dir,
		ScriptPath:    scriptPath,
	})
	require.True(t, ok)
	require.Equal(t, "insert \"k\": ok\nget \"k\": \"v\"\n", out.String())
}

func TestExecErrors(t *testing.T) {
	for _, td := range []struct {
		name   string
		stdin  string
		expect string
	}{
		{"header", "---\ncapacity: x\n---\n", "parsing script header: "},
		{"header_kind", "---\nkind: float\n---\n", "applying script header: "},
		{"script", `{"op":"nope"}`, "parsing script: line 1: "},
	} {
		t.Run(td.name, func(t *testing.T) {
			var out bytes.Buffer
			ok := execute(&out, strings.NewReader(td.stdin), cli.CommandExec{})
			require.False(t, ok)
			require.True(t, strings.HasPrefix(out.String(), td.expect),
				"unexpected output: %q", out.String())
		})
	}

	var out bytes.Buffer
	ok := execute(&out, nil, cli.CommandExec{
		ConfigDirPath: t.TempDir(),
	})
	require.False(t, ok)
	require.Equal(t, "reading config: missing config.yaml\n", out.String())
}

func TestFill(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.yml"),
		[]byte("capacity: 1\nkind: text\nmemory-limit: 1 MiB\nlog-level: error\n"),
		0o644,
	))

	var out bytes.Buffer
	require.True(t, fill(&out, cli.CommandFill{ConfigDirPath: dir, N: 1000}))
	o := out.String()
	require.Contains(t, o, "keys:          1,000\n")
	require.Contains(t, o, "capacity:      2,048\n")
	require.Contains(t, o, "resizes:       11\n")
	require.Contains(t, o, " of 1.0 MB\n")
}
