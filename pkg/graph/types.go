package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/chromatic/pkg/palette"
)

// Reserved JSON keys. Metadata entries with these names are ignored on write.
const (
	keyID    = "id"
	keyColor = "color"
	keyFrom  = "from"
	keyTo    = "to"
)

// ID identifies a vertex. Numeric IDs from JSON input are stored in their
// decimal text form, so 1 and "1" name the same vertex.
type ID string

func (id ID) String() string { return string(id) }

// MarshalJSON writes the ID as a string.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil || n == "" {
		return fmt.Errorf("vertex id must be a string or number, got %s", b)
	}
	*id = ID(n.String())
	return nil
}

// Metadata stores arbitrary key-value pairs attached to vertices or edges.
// It is never nil on values held by a [Graph].
type Metadata map[string]any

// Clone returns a shallow copy of m. A nil map clones to an empty map.
func (m Metadata) Clone() Metadata {
	out := make(Metadata, len(m))
	maps.Copy(out, m)
	return out
}

// Merge returns the union of m and other. Keys in other win.
func (m Metadata) Merge(other Metadata) Metadata {
	out := m.Clone()
	maps.Copy(out, other)
	return out
}

// Vertex is a node of the graph.
type Vertex struct {
	ID    ID            // Immutable once added to a graph
	Color palette.Color // palette.None when uncolored
	Meta  Metadata      // Auxiliary fields (never nil after AddVertex)
}

// IsColored reports whether the vertex holds a color.
func (v Vertex) IsColored() bool { return !v.Color.IsNone() }

// Clone returns a copy of v with its own metadata map.
func (v Vertex) Clone() Vertex {
	v.Meta = v.Meta.Clone()
	return v
}

// MarshalJSON writes the vertex as a flat object. Metadata fields are merged
// with id and color; the reserved keys always win.
func (v Vertex) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(v.Meta)+2)
	maps.Copy(out, v.Meta)
	out[keyID] = v.ID
	if v.IsColored() {
		out[keyColor] = string(v.Color)
	} else {
		out[keyColor] = nil
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads a flat vertex object. Fields other than id and color go
// into Meta.
func (v *Vertex) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	idRaw, ok := raw[keyID]
	if !ok {
		return fmt.Errorf("vertex is missing %q", keyID)
	}
	var out Vertex
	if err := json.Unmarshal(idRaw, &out.ID); err != nil {
		return err
	}
	if c, ok := raw[keyColor]; ok {
		var s *string
		if err := json.Unmarshal(c, &s); err != nil {
			return fmt.Errorf("vertex %s: color must be a string or null", out.ID)
		}
		if s != nil {
			out.Color = palette.Normalize(palette.Color(*s))
		}
	}
	meta, err := decodeExtra(raw, keyID, keyColor)
	if err != nil {
		return fmt.Errorf("vertex %s: %w", out.ID, err)
	}
	out.Meta = meta
	*v = out
	return nil
}

// Edge is an undirected connection between two vertices. From and To keep the
// order they were given in, but equality and lookup ignore it.
type Edge struct {
	From ID
	To   ID
	Meta Metadata // Auxiliary fields (never nil after AddEdge)
}

// Connects reports whether e joins a and b in either direction.
func (e Edge) Connects(a, b ID) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// HasEndpoint reports whether id is one of the edge's endpoints.
func (e Edge) HasEndpoint(id ID) bool { return e.From == id || e.To == id }

// Other returns the endpoint opposite id. The result is undefined when id is
// not an endpoint.
func (e Edge) Other(id ID) ID {
	if e.From == id {
		return e.To
	}
	return e.From
}

// Clone returns a copy of e with its own metadata map.
func (e Edge) Clone() Edge {
	e.Meta = e.Meta.Clone()
	return e
}

func (e Edge) String() string { return fmt.Sprintf("%s-%s", e.From, e.To) }

// MarshalJSON writes the edge as a flat object merged with its metadata.
func (e Edge) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Meta)+2)
	maps.Copy(out, e.Meta)
	out[keyFrom] = e.From
	out[keyTo] = e.To
	return json.Marshal(out)
}

// UnmarshalJSON reads a flat edge object. Fields other than from and to go
// into Meta.
func (e *Edge) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var out Edge
	for key, dst := range map[string]*ID{keyFrom: &out.From, keyTo: &out.To} {
		r, ok := raw[key]
		if !ok {
			return fmt.Errorf("edge is missing %q", key)
		}
		if err := json.Unmarshal(r, dst); err != nil {
			return err
		}
	}
	meta, err := decodeExtra(raw, keyFrom, keyTo)
	if err != nil {
		return fmt.Errorf("edge %s: %w", out, err)
	}
	out.Meta = meta
	*e = out
	return nil
}

func decodeExtra(raw map[string]json.RawMessage, reserved ...string) (Metadata, error) {
	meta := Metadata{}
	for k, r := range raw {
		if slices.Contains(reserved, k) {
			continue
		}
		var v any
		if err := json.Unmarshal(r, &v); err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		meta[k] = v
	}
	return meta, nil
}

// pair is the order-independent key of an edge.
type pair struct{ lo, hi ID }

func pairOf(a, b ID) pair {
	if b < a {
		a, b = b, a
	}
	return pair{a, b}
}
