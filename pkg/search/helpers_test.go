package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/observability"
	"github.com/matzehuels/chromatic/pkg/palette"
)

var (
	red  = palette.Master[0]
	cyan = palette.Master[1]
	blue = palette.Master[2]
)

// stepClock advances by step on every reading.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

type recordingHooks struct {
	observability.NoopSearchHooks
	mu        sync.Mutex
	started   []string
	completed []observability.SearchEvent
	steps     []observability.SearchEvent
	repairs   int
}

func (h *recordingHooks) OnSearchStart(_ context.Context, strategy string, _, _ int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started = append(h.started, strategy)
}

func (h *recordingHooks) OnSearchComplete(_ context.Context, ev observability.SearchEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completed = append(h.completed, ev)
}

func (h *recordingHooks) OnEscalationStep(_ context.Context, ev observability.SearchEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.steps = append(h.steps, ev)
}

func (h *recordingHooks) OnRepairComplete(context.Context, int, int, int, int, time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.repairs++
}

func snapshot(t *testing.T, ids []graph.ID, pairs [][2]graph.ID) graph.Snapshot {
	t.Helper()
	s := graph.Snapshot{}
	for _, id := range ids {
		s.Vertices = append(s.Vertices, graph.Vertex{ID: id, Meta: graph.Metadata{}})
	}
	for _, p := range pairs {
		s.Edges = append(s.Edges, graph.Edge{From: p[0], To: p[1], Meta: graph.Metadata{}})
	}
	if err := graph.ValidateSnapshot(s.Vertices, s.Edges); err != nil {
		t.Fatalf("invalid test snapshot: %v", err)
	}
	return s
}

func path3(t *testing.T) graph.Snapshot {
	return snapshot(t, []graph.ID{"1", "2", "3"}, [][2]graph.ID{{"1", "2"}, {"2", "3"}})
}

func triangle(t *testing.T) graph.Snapshot {
	return snapshot(t, []graph.ID{"1", "2", "3"}, [][2]graph.ID{{"1", "2"}, {"2", "3"}, {"1", "3"}})
}

func colored(s graph.Snapshot, colors ...palette.Color) graph.Snapshot {
	out := graph.Snapshot{Edges: s.Edges, Tag: s.Tag}
	for i, v := range s.Vertices {
		v = v.Clone()
		if i < len(colors) {
			v.Color = colors[i]
		}
		out.Vertices = append(out.Vertices, v)
	}
	return out
}

func testEngine(opts ...Option) *Engine {
	return New(append([]Option{WithSeed(42), WithHooks(observability.NoopSearchHooks{})}, opts...)...)
}

func assertValid(t *testing.T, vs []graph.Vertex, es []graph.Edge) {
	t.Helper()
	if n := graph.ConflictCount(vs, es); n != 0 {
		t.Errorf("ConflictCount = %d, want 0", n)
	}
	for _, v := range vs {
		if !v.IsColored() {
			t.Errorf("vertex %s is uncolored", v.ID)
		}
	}
}
