package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	cerrors "github.com/matzehuels/chromatic/pkg/errors"
)

// ReadJSON decodes a snapshot from r and builds a validated graph.
func ReadJSON(r io.Reader) (*Graph, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidInput, err, "decode graph")
	}
	return FromSnapshot(s)
}

// WriteJSON encodes the graph snapshot to w, indented for readability.
func WriteJSON(g *Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g.Snapshot()); err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	return nil
}

// ImportJSON reads a graph from a JSON file.
func ImportJSON(path string) (*Graph, error) {
	if err := cerrors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cerrors.Wrap(cerrors.ErrCodeFileNotFound, err, "graph file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// ExportJSON writes a graph to a JSON file with 0644 permissions.
func ExportJSON(g *Graph, path string) error {
	if err := cerrors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(g, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
