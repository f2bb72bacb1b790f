package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `theme: ansi
tracing:
  adapter: logrus
tracelevel:
  root: Error
`

const testSheet = `# test sheet
ident: attr:bold;
call > ident: fg:red;
`

const testTree = `(file (call (ident) (args (ident))))`

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// run executes tsscheck with args and returns its output. Flag values are
// reset first, as cobra keeps them between executions.
func run(t *testing.T, args ...string) (string, error) {
	dir := t.TempDir()
	conf := writeFile(t, dir, "tsscheck.yaml", testConfig)
	for _, cmd := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		resetFlags(cmd.Flags())
		resetFlags(cmd.PersistentFlags())
	}
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(append(args, "--config", conf))
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func TestLint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.check")
	defer teardown()
	//
	sheet := writeFile(t, t.TempDir(), "ok.tss", testSheet)
	out, err := run(t, "lint", sheet)
	require.NoError(t, err)
	assert.Contains(t, out, "ok.tss: ok, 2 rules")
}

func TestLintPrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.check")
	defer teardown()
	//
	sheet := writeFile(t, t.TempDir(), "ok.tss", testSheet)
	out, err := run(t, "lint", "--print", sheet)
	require.NoError(t, err)
	assert.Contains(t, out, "call > ident: fg:red;\n")
}

func TestLintReportsErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.check")
	defer teardown()
	//
	sheet := writeFile(t, t.TempDir(), "broken.tss", "ident: fg:red;\ncall > : bold;\n")
	out, err := run(t, "lint", sheet)
	assert.ErrorIs(t, err, errLint)
	assert.Contains(t, out, "broken.tss: tss:2:")
}

func TestLintBuiltins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.check")
	defer teardown()
	//
	out, err := run(t, "lint", "--builtin")
	require.NoError(t, err)
	assert.Contains(t, out, "builtin:tss: ok")
	assert.Contains(t, out, "builtin:toml: ok")
}

func TestLintWithoutInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.check")
	defer teardown()
	//
	_, err := run(t, "lint")
	assert.Error(t, err)
}

func TestResolveSExpr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.check")
	defer teardown()
	//
	dir := t.TempDir()
	sheet := writeFile(t, dir, "test.tss", testSheet)
	tree := writeFile(t, dir, "tree.sexpr", testTree)
	out, err := run(t, "resolve", "--sexpr", "--explain", "--sheet", sheet, tree)
	require.NoError(t, err)
	t.Logf("\n%s", out)
	assert.Contains(t, out, "ident {fg:red, attr:bold}")
	assert.Contains(t, out, "ident {attr:bold}")
	assert.Contains(t, out, "  1  call > ident: fg:red;")
}

func TestResolveLenient(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.check")
	defer teardown()
	//
	dir := t.TempDir()
	sheet := writeFile(t, dir, "broken.tss", "ident fg:red")
	tree := writeFile(t, dir, "tree.sexpr", testTree)
	_, err := run(t, "resolve", "--sexpr", "--sheet", sheet, tree)
	require.Error(t, err)
	out, err := run(t, "resolve", "--sexpr", "--lenient", "--sheet", sheet, tree)
	require.NoError(t, err)
	assert.Contains(t, out, "continuing with empty stylesheet")
	assert.NotContains(t, out, "{")
}

func TestResolveGoSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.check")
	defer teardown()
	//
	dir := t.TempDir()
	sheet := writeFile(t, dir, "go.tss", "comment: comment;\nfunction_declaration > identifier: fg:yellow, attr:bold;\n")
	src := writeFile(t, dir, "main.go", "package main\n\n// hello\nfunc main() {}\n")
	out, err := run(t, "resolve", "--sheet", sheet, src)
	require.NoError(t, err)
	assert.Contains(t, out, "identifier {fg:yellow, attr:bold}")
	assert.Contains(t, out, "comment {")
}

func TestThemes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.check")
	defer teardown()
	//
	out, err := run(t, "themes")
	require.NoError(t, err)
	assert.Contains(t, out, "ansi\n")
	assert.Contains(t, out, "monokai\n")
	out, err = run(t, "themes", "ansi")
	require.NoError(t, err)
	assert.Contains(t, out, "keyword")
	_, err = run(t, "themes", "no-such-theme")
	assert.Error(t, err)
}

func TestResolveTOMLWithBuiltin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.check")
	defer teardown()
	//
	doc := writeFile(t, t.TempDir(), "app.toml", "[server]\nport = 8080\n")
	out, err := run(t, "resolve", "--sheet", "builtin:toml", doc)
	require.NoError(t, err)
	assert.Contains(t, out, "bare_key {fg:blue, attr:bold}")
	assert.Contains(t, out, "integer {")
}
