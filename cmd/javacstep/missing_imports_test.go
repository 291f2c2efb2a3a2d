package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const diagnostics = `Foo.java:3: error: package javax.annotation.concurrent does not exist
import javax.annotation.concurrent.Immutable;
Foo.java:9: error: cannot access com.facebook.Raz
Foo.java:12: error: cannot find symbol
  symbol:   class ImmutableSet
Foo.java:14: error: cannot find symbol
  symbol:   class ImmutableSet
`

func TestMissingImportsFromStdin(t *testing.T) {
	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetErr(out)
	root.SetIn(strings.NewReader(diagnostics))
	root.SetArgs([]string{"missing-imports", "-"})

	require.NoError(t, root.Execute())
	require.Equal(t, "ImmutableSet\ncom.facebook.Raz\njavax.annotation.concurrent\n", out.String())
}

func TestMissingImportsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "javac.err")
	require.NoError(t, os.WriteFile(path, []byte("error: package a.b does not exist\r\n"), 0o644))

	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"missing-imports", path})

	require.NoError(t, root.Execute())
	require.Equal(t, "a.b\n", out.String())
}

func TestMissingImportsNoMatches(t *testing.T) {
	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetErr(out)
	root.SetIn(strings.NewReader(""))
	root.SetArgs([]string{"missing-imports"})

	require.NoError(t, root.Execute())
	require.Empty(t, out.String())
}

func TestMissingImportsMissingFile(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"missing-imports", filepath.Join(t.TempDir(), "absent")})

	err := root.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "read diagnostics")
}
