package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fixturegen/pkg/errors"
	"github.com/matzehuels/fixturegen/pkg/fixture"
	fio "github.com/matzehuels/fixturegen/pkg/io"
)

// execute runs the root built by newRoot with args and returns stdout.
func execute(t *testing.T, newRoot func(*CLI) *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&out, &logs, LogInfo)
	root := newRoot(c)
	root.SetArgs(args)
	root.SetErr(&logs)
	err := c.Execute(context.Background(), root)
	return out.String(), err
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}

func TestColorsCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, (*CLI).ColorsCommand, "3", "--dir", dir, "--seed", "7")
	if err != nil {
		t.Fatalf("generate-colors 3: %v", err)
	}

	path := filepath.Join(dir, "colors-3.json")
	p, err := fio.ImportPalette(path)
	if err != nil {
		t.Fatalf("ImportPalette: %v", err)
	}
	if p.Len() != 3 {
		t.Errorf("palette has %d colors, want 3", p.Len())
	}
	if !strings.Contains(out, "generating 3 colors") {
		t.Errorf("output should announce generation, got %q", out)
	}
	if !strings.Contains(out, path) {
		t.Errorf("output should name %s, got %q", path, out)
	}
}

func TestColorsCommandDefaultCount(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, (*CLI).ColorsCommand, "--dir", dir); err != nil {
		t.Fatalf("generate-colors: %v", err)
	}
	if got := listDir(t, dir); len(got) != 1 || got[0] != "colors-40.json" {
		t.Errorf("files = %v, want [colors-40.json]", got)
	}
}

func TestColorsCommandRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"not a number", []string{"ten"}},
		{"zero", []string{"0"}},
		{"negative", []string{"-3"}},
		{"too many", []string{"3", "4"}},
		{"over capacity", []string{"16777217"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			args := append([]string{"--dir", dir, "--"}, tt.args...)
			_, err := execute(t, (*CLI).ColorsCommand, args...)
			if !errors.Is(err, errors.ErrCodeInvalidArgument) {
				t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidArgument)
			}
			if files := listDir(t, dir); len(files) != 0 {
				t.Errorf("no file should be created, got %v", files)
			}
		})
	}
}

func TestGraphCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, (*CLI).GraphCommand, "4", "10", "0", "0", "--dir", dir, "--seed", "1")
	if err != nil {
		t.Fatalf("generate-graph 4 10 0 0: %v", err)
	}

	path := filepath.Join(dir, "testData-4-10-0-0.json")
	doc, err := fio.ImportGraph(path)
	if err != nil {
		t.Fatalf("ImportGraph: %v", err)
	}
	opts := fixture.Options{NodeCount: 4, NumLimit: 10}
	if err := fixture.Check(doc, opts); err != nil {
		t.Errorf("Check: %v", err)
	}
	for i, l := range doc.Links {
		if l.ID != 5+i {
			t.Errorf("link %d id = %d, want %d", i, l.ID, 5+i)
		}
	}
	for _, want := range []string{"nodeCount", "numLimit", "clusterCount", "pieChartCount", path} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGraphCommandCollision(t *testing.T) {
	dir := t.TempDir()
	args := []string{"4", "10", "2", "1", "--dir", dir}
	if _, err := execute(t, (*CLI).GraphCommand, args...); err != nil {
		t.Fatalf("first run: %v", err)
	}
	before, _ := os.ReadFile(filepath.Join(dir, "testData-4-10-2-1.json"))

	_, err := execute(t, (*CLI).GraphCommand, args...)
	if !errors.Is(err, errors.ErrCodeOutputCollision) {
		t.Fatalf("second run error = %v, want %s", err, errors.ErrCodeOutputCollision)
	}
	after, _ := os.ReadFile(filepath.Join(dir, "testData-4-10-2-1.json"))
	if !bytes.Equal(before, after) {
		t.Error("existing fixture was modified")
	}
	if files := listDir(t, dir); len(files) != 1 {
		t.Errorf("files = %v, want only the first fixture", files)
	}
}

func TestGraphCommandDefaults(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, (*CLI).GraphCommand, "6", "--dir", dir); err != nil {
		t.Fatalf("generate-graph 6: %v", err)
	}
	if got := listDir(t, dir); len(got) != 1 || got[0] != "testData-6-50-0-0.json" {
		t.Errorf("files = %v, want [testData-6-50-0-0.json]", got)
	}
}

func TestGraphCommandSimple(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, (*CLI).GraphCommand, "--simple", "5", "--dir", dir); err != nil {
		t.Fatalf("generate-graph --simple 5: %v", err)
	}

	files := listDir(t, dir)
	if len(files) != 1 || !regexp.MustCompile(`^testData-5-\d+\.json$`).MatchString(files[0]) {
		t.Fatalf("files = %v, want testData-5-<unix>.json", files)
	}
	doc, err := fio.ImportGraph(filepath.Join(dir, files[0]))
	if err != nil {
		t.Fatalf("ImportGraph: %v", err)
	}
	if err := fixture.Check(doc, fixture.Options{NodeCount: 5, Simple: true}); err != nil {
		t.Errorf("Check: %v", err)
	}
}

func TestGraphCommandRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"too many", []string{"4", "10", "0", "0", "9"}},
		{"too many simple", []string{"--simple", "4", "10"}},
		{"single node", []string{"1"}},
		{"negative numLimit", []string{"--", "4", "-1"}},
		{"not a number", []string{"4", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			args := append([]string{"--dir", dir}, tt.args...)
			_, err := execute(t, (*CLI).GraphCommand, args...)
			if !errors.Is(err, errors.ErrCodeInvalidArgument) {
				t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidArgument)
			}
			if files := listDir(t, dir); len(files) != 0 {
				t.Errorf("no file should be created, got %v", files)
			}
		})
	}
}

func TestGraphCommandPreset(t *testing.T) {
	dir := t.TempDir()
	preset := filepath.Join(t.TempDir(), "preset.toml")
	if err := os.WriteFile(preset, []byte("num_limit = 7\ncluster_count = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, (*CLI).GraphCommand, "8", "--preset", preset, "--dir", dir); err != nil {
		t.Fatalf("generate-graph --preset: %v", err)
	}
	if got := listDir(t, dir); len(got) != 1 || got[0] != "testData-8-7-3-0.json" {
		t.Errorf("files = %v, want [testData-8-7-3-0.json]", got)
	}
}

func TestRootCommand(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, (*CLI).RootCommand, "graph", "4", "--dir", dir); err != nil {
		t.Fatalf("fixturegen graph 4: %v", err)
	}
	if _, err := execute(t, (*CLI).RootCommand, "colors", "2", "--dir", dir); err != nil {
		t.Fatalf("fixturegen colors 2: %v", err)
	}
	if got := listDir(t, dir); len(got) != 2 {
		t.Errorf("files = %v, want two fixtures", got)
	}

	out, err := execute(t, (*CLI).RootCommand, "version")
	if err != nil {
		t.Fatalf("fixturegen version: %v", err)
	}
	if !strings.Contains(out, "version:") {
		t.Errorf("version output = %q", out)
	}
}

func TestPreviewDOT(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, (*CLI).GraphCommand, "5", "9", "2", "1", "--dir", dir, "--seed", "3"); err != nil {
		t.Fatalf("generate-graph: %v", err)
	}
	if _, err := execute(t, (*CLI).ColorsCommand, "2", "--dir", dir, "--seed", "3"); err != nil {
		t.Fatalf("generate-colors: %v", err)
	}
	input := filepath.Join(dir, "testData-5-9-2-1.json")

	out, err := execute(t, (*CLI).RootCommand, "preview", input,
		"--format", "dot", "--output", "-", "--palette", filepath.Join(dir, "colors-2.json"))
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.HasPrefix(out, "graph G {") {
		t.Errorf("preview output is not DOT:\n%s", out)
	}
	if strings.Count(out, " -- ") != 4 {
		t.Errorf("preview should draw 4 links:\n%s", out)
	}
	if strings.Contains(out, `fillcolor="#000000"`) {
		t.Error("every node is clustered, none should be black")
	}
}

func TestPreviewWritesFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, (*CLI).GraphCommand, "4", "--dir", dir); err != nil {
		t.Fatalf("generate-graph: %v", err)
	}
	input := filepath.Join(dir, "testData-4-50-0-0.json")

	if _, err := execute(t, (*CLI).RootCommand, "preview", input, "-f", "dot"); err != nil {
		t.Fatalf("preview: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "testData-4-50-0-0.dot")); err != nil {
		t.Errorf("preview file missing: %v", err)
	}
}

func TestPreviewRejects(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, (*CLI).ColorsCommand, "2", "--dir", dir); err != nil {
		t.Fatalf("generate-colors: %v", err)
	}
	colors := filepath.Join(dir, "colors-2.json")

	_, err := execute(t, (*CLI).RootCommand, "preview", colors, "-f", "dot", "-o", "-")
	if !errors.Is(err, errors.ErrCodeInvalidFixture) {
		t.Errorf("palette input error = %v, want %s", err, errors.ErrCodeInvalidFixture)
	}

	_, err = execute(t, (*CLI).RootCommand, "preview", colors, "-f", "png")
	if !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("png format error = %v, want %s", err, errors.ErrCodeInvalidArgument)
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, (*CLI).RootCommand, "graph", "6", "20", "3", "2", "--dir", dir); err != nil {
		t.Fatalf("graph: %v", err)
	}
	if _, err := execute(t, (*CLI).RootCommand, "colors", "5", "--dir", dir); err != nil {
		t.Fatalf("colors: %v", err)
	}

	out, err := execute(t, (*CLI).RootCommand, "inspect", filepath.Join(dir, "testData-6-20-3-2.json"))
	if err != nil {
		t.Fatalf("inspect graph: %v", err)
	}
	for _, want := range []string{"valid graph fixture", "nodes", "links"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}

	out, err = execute(t, (*CLI).RootCommand, "inspect", filepath.Join(dir, "colors-5.json"))
	if err != nil {
		t.Fatalf("inspect colors: %v", err)
	}
	if !strings.Contains(out, "valid palette fixture") {
		t.Errorf("inspect output:\n%s", out)
	}
}

func TestInspectNameMismatch(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, (*CLI).GraphCommand, "4", "10", "0", "0", "--dir", dir); err != nil {
		t.Fatalf("generate-graph: %v", err)
	}
	renamed := filepath.Join(dir, "testData-5-10-0-0.json")
	if err := os.Rename(filepath.Join(dir, "testData-4-10-0-0.json"), renamed); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, (*CLI).RootCommand, "inspect", renamed)
	if !errors.Is(err, errors.ErrCodeInvalidFixture) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidFixture)
	}
}
