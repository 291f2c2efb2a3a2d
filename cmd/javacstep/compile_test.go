package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFakeCompiler creates a shell script that prints to both streams and
// exits with the supplied code.
func writeFakeCompiler(t *testing.T, dir string, stdout, stderr string, code int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	script := fmt.Sprintf("#!/bin/sh\nprintf '%%s' '%s'\nprintf '%%s' '%s' >&2\nexit %d\n", stdout, stderr, code)
	path := filepath.Join(dir, "fake-javac")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func writeCompileConfig(t *testing.T, dir, compiler string, extra string) string {
	t.Helper()
	cfg := strings.Join([]string{
		`version: "1.0"`,
		`target: //java/com/foo:bar`,
		`compiler: ` + compiler,
		`sources:`,
		`  - src/Foo.java`,
		`output: out/classes`,
		`source_level: "8"`,
		`target_level: "8"`,
		extra,
	}, "\n")
	path := filepath.Join(dir, "javacstep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return path
}

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCompileSuccess(t *testing.T) {
	dir := t.TempDir()
	compiler := writeFakeCompiler(t, dir, "noise", "warning: noise", 0)
	cfgPath := writeCompileConfig(t, dir, compiler, "")

	stdout, stderr, err := runRoot(t, "compile", "-c", cfgPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "compiled //java/com/foo:bar")
	require.NotContains(t, stdout, "noise")
	require.NotContains(t, stderr, "noise")

	info, statErr := os.Stat(filepath.Join(dir, "out", "classes"))
	require.NoError(t, statErr)
	require.True(t, info.IsDir())
}

func TestCompileFailureMirrorsExitCode(t *testing.T) {
	dir := t.TempDir()
	compiler := writeFakeCompiler(t, dir, "compiler says hi", "Foo.java:1: error: package a.b does not exist", 3)
	cfgPath := writeCompileConfig(t, dir, compiler, "suggestions:\n  a.b: //lib:ab\n")

	_, stderr, err := runRoot(t, "compile", "--config", cfgPath)
	require.Error(t, err)

	var exitErr *exitCodeError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 3, exitErr.code)

	outIdx := strings.Index(stderr, "compiler says hi")
	errIdx := strings.Index(stderr, "package a.b does not exist")
	require.GreaterOrEqual(t, outIdx, 0)
	require.Greater(t, errIdx, outIdx)
	require.Contains(t, stderr, "//lib:ab")
}

func TestCompileSilentSuppressesSummary(t *testing.T) {
	dir := t.TempDir()
	compiler := writeFakeCompiler(t, dir, "", "", 0)
	cfgPath := writeCompileConfig(t, dir, compiler, "")

	stdout, _, err := runRoot(t, "--verbosity", "silent", "compile", "-c", cfgPath)
	require.NoError(t, err)
	require.Empty(t, stdout)
}

func TestCompilePrintCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeCompileConfig(t, dir, "/opt/jdk/bin/javac", "debug: true\n")

	stdout, _, err := runRoot(t, "compile", "-c", cfgPath, "--print-command")
	require.NoError(t, err)
	require.Equal(t, "/opt/jdk/bin/javac -source 8 -target 8 -g -d out/classes src/Foo.java\n", stdout)

	_, statErr := os.Stat(filepath.Join(dir, "out"))
	require.True(t, os.IsNotExist(statErr))
}

func TestCompileRequiresConfig(t *testing.T) {
	_, _, err := runRoot(t, "compile")
	require.Error(t, err)
}

func TestCompileMissingConfigFile(t *testing.T) {
	_, _, err := runRoot(t, "compile", "-c", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "config file does not exist")
}

func TestCompileInvalidVerbosity(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeCompileConfig(t, dir, "javac", "")

	_, _, err := runRoot(t, "--verbosity", "loud", "compile", "-c", cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown verbosity")
}

func TestResolveWorkDir(t *testing.T) {
	base := t.TempDir()
	cfgPath := filepath.Join(base, "cfg.yaml")

	got, err := resolveWorkDir(cfgPath, "")
	require.NoError(t, err)
	require.Equal(t, base, got)

	got, err = resolveWorkDir(cfgPath, "sub")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(base, "sub"), got)

	abs := filepath.Join(base, "abs")
	got, err = resolveWorkDir(cfgPath, abs)
	require.NoError(t, err)
	require.Equal(t, abs, got)
}
