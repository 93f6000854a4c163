package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/thermograph/core"
)

// TestAddVertex_Basics covers insertion, idempotency, and the empty-ID guard.
func TestAddVertex_Basics(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("AddVertex(A): unexpected error %v", err)
	}
	if !g.HasVertex("A") {
		t.Error("HasVertex(A) = false; want true")
	}
	// re-adding preserves attributes
	if err := g.SetVertexAttr("A", "mass", 2.5); err != nil {
		t.Fatalf("SetVertexAttr: %v", err)
	}
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("re-AddVertex(A): %v", err)
	}
	if v, ok := g.VertexAttr("A", "mass"); !ok || v != 2.5 {
		t.Errorf("VertexAttr after re-add = (%v, %v); want (2.5, true)", v, ok)
	}
	// empty ID rejected
	if err := g.AddVertex(""); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Errorf("empty ID: want ErrEmptyVertexID, got %v", err)
	}
}

// TestAddEdge_Policies verifies loop and multi-edge policy enforcement.
func TestAddEdge_Policies(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("A", "A"); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Errorf("self-loop: want ErrLoopNotAllowed, got %v", err)
	}
	if _, err := g.AddEdge("A", "B"); err != nil {
		t.Fatalf("AddEdge(A,B): %v", err)
	}
	if _, err := g.AddEdge("A", "B"); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Errorf("parallel edge: want ErrMultiEdgeNotAllowed, got %v", err)
	}
	// undirected graphs reject the mirrored duplicate too
	if _, err := g.AddEdge("B", "A"); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Errorf("mirrored duplicate: want ErrMultiEdgeNotAllowed, got %v", err)
	}

	gm := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	if _, err := gm.AddEdge("X", "X"); err != nil {
		t.Errorf("loop with WithLoops: unexpected error %v", err)
	}
	if _, err := gm.AddEdge("X", "Y"); err != nil {
		t.Fatal(err)
	}
	if _, err := gm.AddEdge("X", "Y"); err != nil {
		t.Errorf("parallel with WithMultiEdges: unexpected error %v", err)
	}
	if got := gm.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount = %d; want 3", got)
	}
}

// TestEdgeIDs_Deterministic checks the textual ID sequence and sorted enumeration.
func TestEdgeIDs_Deterministic(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	e1, _ := g.AddEdge("A", "B")
	e2, _ := g.AddEdge("B", "C")
	if e1 != "e1" || e2 != "e2" {
		t.Errorf("edge IDs = %s, %s; want e1, e2", e1, e2)
	}
	var ids []string
	for _, e := range g.Edges() {
		ids = append(ids, e.ID)
	}
	if want := []string{"e1", "e2"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("Edges order = %v; want %v", ids, want)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(g.Vertices(), want) {
		t.Errorf("Vertices = %v; want %v", g.Vertices(), want)
	}
}

// TestOutEdges_Orientation distinguishes directed from undirected incidence.
func TestOutEdges_Orientation(t *testing.T) {
	gd := core.NewGraph(core.WithDirected(true))
	gd.AddEdge("A", "B")
	gd.AddEdge("B", "A")
	out, err := gd.OutEdges("A")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].To != "B" {
		t.Errorf("directed OutEdges(A) = %v; want single A→B", out)
	}
	in, err := gd.InEdges("A")
	if err != nil {
		t.Fatal(err)
	}
	if len(in) != 1 || in[0].From != "B" {
		t.Errorf("directed InEdges(A) = %v; want single B→A", in)
	}

	gu := core.NewGraph()
	gu.AddEdge("A", "B")
	out, err = gu.OutEdges("B")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Errorf("undirected OutEdges(B) = %d edges; want 1", len(out))
	}

	if _, err = gu.OutEdges("missing"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("missing vertex: want ErrVertexNotFound, got %v", err)
	}
}

// TestAttrs_Accumulate covers comma-ok reads and additive writes.
func TestAttrs_Accumulate(t *testing.T) {
	g := core.NewGraph()
	eid, _ := g.AddEdge("A", "B")

	if _, ok := g.VertexAttr("A", "heat"); ok {
		t.Error("unset vertex attr should read as absent")
	}
	if err := g.AddVertexAttr("A", "heat", 1.5); err != nil {
		t.Fatal(err)
	}
	if err := g.AddVertexAttr("A", "heat", 0.5); err != nil {
		t.Fatal(err)
	}
	if v, ok := g.VertexAttr("A", "heat"); !ok || v != 2.0 {
		t.Errorf("accumulated vertex attr = (%v, %v); want (2, true)", v, ok)
	}

	if err := g.SetEdgeAttr(eid, "heat", 3); err != nil {
		t.Fatal(err)
	}
	if v, ok := g.EdgeAttr(eid, "heat"); !ok || v != 3 {
		t.Errorf("edge attr = (%v, %v); want (3, true)", v, ok)
	}
	if err := g.SetEdgeAttr("nope", "heat", 1); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Errorf("missing edge: want ErrEdgeNotFound, got %v", err)
	}
	if err := g.AddVertexAttr("nope", "heat", 1); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("missing vertex: want ErrVertexNotFound, got %v", err)
	}
}

// TestCloneStructure verifies flag, vertex, edge-ID preservation and attribute isolation.
func TestCloneStructure(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	e1, _ := g.AddEdge("A", "B")
	g.AddEdge("A", "B")
	g.AddVertex("Z")
	g.SetVertexAttr("A", "mass", 9)
	g.SetEdgeAttr(e1, "mass", 9)

	c := g.CloneStructure()
	if !c.Directed() || !c.Multigraph() {
		t.Error("clone must preserve directed/multi flags")
	}
	if !reflect.DeepEqual(c.Vertices(), g.Vertices()) {
		t.Errorf("clone vertices = %v; want %v", c.Vertices(), g.Vertices())
	}
	if c.EdgeCount() != g.EdgeCount() {
		t.Errorf("clone edges = %d; want %d", c.EdgeCount(), g.EdgeCount())
	}
	if _, err := c.GetEdge(e1); err != nil {
		t.Errorf("clone must preserve edge IDs: %v", err)
	}
	// attributes are not carried
	if _, ok := c.VertexAttr("A", "mass"); ok {
		t.Error("clone must not carry vertex attributes")
	}
	if _, ok := c.EdgeAttr(e1, "mass"); ok {
		t.Error("clone must not carry edge attributes")
	}
	// mutating the clone leaves the original untouched
	c.SetVertexAttr("A", "mass", 1)
	if v, _ := g.VertexAttr("A", "mass"); v != 9 {
		t.Errorf("original attr changed to %v after clone mutation", v)
	}
	// new edges on the clone continue the ID sequence without collision
	e3, err := c.AddEdge("A", "Z")
	if err != nil {
		t.Fatal(err)
	}
	if e3 != "e3" {
		t.Errorf("clone next edge ID = %s; want e3", e3)
	}
}

// TestClear resets catalogs but keeps configuration flags.
func TestClear(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	g.AddEdge("A", "B")
	g.Clear()
	if g.VertexCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("after Clear: V=%d E=%d; want 0, 0", g.VertexCount(), g.EdgeCount())
	}
	if !g.Directed() || !g.Looped() {
		t.Error("Clear must preserve configuration flags")
	}
	if eid, _ := g.AddEdge("A", "A"); eid != "e1" {
		t.Errorf("edge IDs must resume from e1, got %s", eid)
	}
}
