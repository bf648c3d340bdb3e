package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/observability"
)

// captureUI redirects status output to a buffer for the duration of the test.
func captureUI(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := uiOut
	uiOut = &buf
	t.Cleanup(func() { uiOut = prev })
	return &buf
}

// runCLI executes the root command with args and stdin and returns stdout.
// The config file is pinned to a missing path so the host configuration
// never leaks into tests.
func runCLI(t *testing.T, stdin string, args ...string) (*CLI, string, error) {
	t.Helper()
	captureUI(t)
	t.Cleanup(observability.Reset)

	var logs, out bytes.Buffer
	c := New(&logs, LogInfo)
	t.Cleanup(func() { _ = c.Close() })

	root := c.RootCommand()
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.Execute()
	return c, out.String(), err
}

// writeFile writes content to a fresh temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const triangleJSON = `{
  "vertices": [{"id": "1"}, {"id": "2"}, {"id": "3"}],
  "edges": [{"from": "1", "to": "2"}, {"from": "2", "to": "3"}, {"from": "1", "to": "3"}]
}`

const pathJSON = `{
  "vertices": [
    {"id": "1", "color": "#FF6B6B"},
    {"id": "2", "color": "#FF6B6B"},
    {"id": "3", "color": "#FF6B6B"}
  ],
  "edges": [{"from": "1", "to": "2"}, {"from": "2", "to": "3"}]
}`

func mustReadGraph(t *testing.T, s string) *graph.Graph {
	t.Helper()
	g, err := graph.ReadJSON(strings.NewReader(s))
	if err != nil {
		t.Fatalf("ReadJSON: %v\n%s", err, s)
	}
	return g
}
