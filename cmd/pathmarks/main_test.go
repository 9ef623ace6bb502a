package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nikbrunner/pathmarks/internal/picker"
	"github.com/nikbrunner/pathmarks/internal/preview"
	"github.com/nikbrunner/pathmarks/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"gotest.tools/v3/fs"
)

type stubPicker struct {
	action picker.Action
}

func (s stubPicker) Pick(items []preview.Candidate) (picker.Result[preview.Candidate], error) {
	if s.action == picker.ActionNone || len(items) == 0 {
		return picker.Result[preview.Candidate]{}, nil
	}
	return picker.Result[preview.Candidate]{Action: s.action, Items: items[:1]}, nil
}

type cli struct {
	t  *testing.T
	db string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("EDITOR", "")

	orig := newPicker
	t.Cleanup(func() { newPicker = orig })
	newPicker = func(*cobra.Command) service.Picker { return stubPicker{action: picker.ActionAccept} }

	return &cli{t: t, db: filepath.Join(t.TempDir(), "pathmarks.db")}
}

// exec runs the CLI with args and returns stdout, stderr and the exit code.
func (c *cli) exec(args ...string) (string, string, int) {
	c.t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--db", c.db}, args...))

	code := run(&stderr)
	return stdout.String(), stderr.String(), code
}

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func workspace(t *testing.T) string {
	t.Helper()
	dir := fs.NewDir(t, "ws",
		fs.WithFile("notes.md", "# notes\n"),
		fs.WithDir("src"),
	)
	root, err := filepath.EvalSymlinks(dir.Path())
	assert.NilError(t, err)
	return root
}

func TestAddListRemove(t *testing.T) {
	c := newCLI(t)
	root := workspace(t)
	src := filepath.Join(root, "src")

	out, _, code := c.exec("add", src, "-n", "source", "-d", "project sources")
	assert.Equal(t, code, ExitSuccess)
	assert.Equal(t, out, "Bookmark added\n")

	out, _, code = c.exec("list")
	assert.Equal(t, code, ExitSuccess)
	assert.Equal(t, out, "id: 1, name: source, path: "+src+", description: project sources\n")

	out, _, _ = c.exec("list", "-p")
	assert.Equal(t, out, src+"\n")

	out, _, code = c.exec("remove", "1")
	assert.Equal(t, code, ExitSuccess)
	assert.Equal(t, out, "Bookmark removed\n")

	_, errOut, code := c.exec("remove", "1")
	assert.Equal(t, code, ExitError)
	assert.Check(t, is.Contains(errOut, "Error: "))
	assert.Check(t, is.Contains(errOut, "1"))
}

func TestAdd_Duplicate(t *testing.T) {
	c := newCLI(t)
	root := workspace(t)

	_, _, code := c.exec("add", root)
	assert.Equal(t, code, ExitSuccess)

	_, errOut, code := c.exec("add", root)
	assert.Equal(t, code, ExitError)
	assert.Check(t, is.Contains(errOut, "path already bookmarked"))
}

func TestAdd_NameDoesNotLeakBetweenRuns(t *testing.T) {
	c := newCLI(t)
	root := workspace(t)

	c.exec("add", filepath.Join(root, "src"), "-n", "source")
	c.exec("add", filepath.Join(root, "notes.md"))

	out, _, _ := c.exec("list")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, len(lines), 2)
	assert.Check(t, is.Contains(lines[1], "name: None"))
}

func TestUpdate(t *testing.T) {
	c := newCLI(t)
	root := workspace(t)
	c.exec("add", filepath.Join(root, "src"), "-n", "source")

	out, _, code := c.exec("update", "1", "-d", "sources")
	assert.Equal(t, code, ExitSuccess)
	assert.Equal(t, out, "Bookmark updated\n")

	out, _, _ = c.exec("list")
	assert.Check(t, is.Contains(out, "name: source"))
	assert.Check(t, is.Contains(out, "description: sources"))
}

func TestRemove_InvalidID(t *testing.T) {
	c := newCLI(t)

	_, errOut, code := c.exec("remove", "abc")
	assert.Equal(t, code, ExitError)
	assert.Equal(t, errOut, "Error: invalid id \"abc\"\n")
}

func TestCheck(t *testing.T) {
	c := newCLI(t)
	root := workspace(t)
	notes := filepath.Join(root, "notes.md")

	out, errOut, code := c.exec("check", notes)
	assert.Equal(t, code, ExitNotBookmarked)
	assert.Equal(t, out, "")
	assert.Equal(t, errOut, "")

	c.exec("add", notes)

	out, _, code = c.exec("check", notes)
	assert.Equal(t, code, ExitSuccess)
	assert.Equal(t, out, "")
}

func TestCheck_StoreError(t *testing.T) {
	c := newCLI(t)
	// a directory where the database file should be
	c.db = t.TempDir()

	_, errOut, code := c.exec("check", "/")
	assert.Equal(t, code, ExitStoreError)
	assert.Check(t, is.Contains(errOut, "Error: "))
}

func TestCheck_ConfigError(t *testing.T) {
	c := newCLI(t)
	dir := fs.NewDir(t, "cfg", fs.WithFile("config.yaml", "picker_height: 0\n"))

	_, errOut, code := c.exec("check", "--config", dir.Join("config.yaml"), "/")
	assert.Equal(t, code, ExitStoreError)
	assert.Check(t, is.Contains(errOut, "picker_height"))

	// other commands keep the general error code
	_, _, code = c.exec("list", "--config", dir.Join("config.yaml"))
	assert.Equal(t, code, ExitError)
}

func TestCommand(t *testing.T) {
	c := newCLI(t)
	root := workspace(t)
	c.exec("add", filepath.Join(root, "src"))

	out, _, code := c.exec("command")
	assert.Equal(t, code, ExitSuccess)
	assert.Equal(t, out, "cd "+filepath.Join(root, "src")+"\n")
}

func TestCommand_EditorFromConfig(t *testing.T) {
	c := newCLI(t)
	root := workspace(t)
	t.Setenv("PATHMARKS_EDITOR", "nvim")
	c.exec("add", filepath.Join(root, "notes.md"))

	out, _, _ := c.exec("command")
	assert.Equal(t, out, "nvim "+filepath.Join(root, "notes.md")+"\n")
}

func TestDefaultPrintsPath(t *testing.T) {
	c := newCLI(t)
	root := workspace(t)
	c.exec("add", filepath.Join(root, "notes.md"))

	out, _, code := c.exec()
	assert.Equal(t, code, ExitSuccess)
	assert.Equal(t, out, filepath.Join(root, "notes.md")+"\n")
}

func TestDefault_Cancelled(t *testing.T) {
	c := newCLI(t)
	root := workspace(t)
	c.exec("add", root)
	newPicker = func(*cobra.Command) service.Picker { return stubPicker{} }

	out, _, code := c.exec()
	assert.Equal(t, code, ExitSuccess)
	assert.Equal(t, out, "\n")
}

func TestExportImport(t *testing.T) {
	c := newCLI(t)
	root := workspace(t)
	c.exec("add", filepath.Join(root, "src"), "-n", "source")

	file := filepath.Join(t.TempDir(), "bookmarks.html")
	_, errOut, code := c.exec("export", file)
	assert.Equal(t, code, ExitSuccess)
	assert.Check(t, is.Contains(errOut, "Exported to"))

	data, err := os.ReadFile(file)
	assert.NilError(t, err)
	assert.Check(t, is.Contains(string(data), "source</A>"))

	other := newCLI(t)
	out, _, code := other.exec("import", file)
	assert.Equal(t, code, ExitSuccess)
	assert.Equal(t, out, "Imported 1 bookmarks (0 skipped)\n")
}

func TestPrune_DryRun(t *testing.T) {
	c := newCLI(t)
	root := workspace(t)
	gone := filepath.Join(root, "gone.txt")
	assert.NilError(t, os.WriteFile(gone, []byte("x"), 0o644))
	c.exec("add", gone)
	assert.NilError(t, os.Remove(gone))

	out, _, code := c.exec("prune", "--dry-run")
	assert.Equal(t, code, ExitSuccess)
	assert.Equal(t, out, "Would remove 1: "+gone+"\n1 stale bookmarks\n")

	out, _, _ = c.exec("prune")
	assert.Equal(t, out, "Removed 1: "+gone+"\nPruned 1 bookmarks\n")
}
