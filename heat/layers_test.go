package heat

import (
	"testing"

	"github.com/katalvlaran/thermograph/core"
	"github.com/katalvlaran/thermograph/edgebfs"
)

// groups drains a layerIter into a slice of "from→to" groups.
func groups(t *testing.T, g *core.Graph, source string) [][]string {
	t.Helper()
	arcs, err := edgebfs.Traverse(g, []string{source})
	if err != nil {
		t.Fatal(err)
	}
	layers := newLayerIter(arcs, source)

	var out [][]string
	for group, ok := layers.Next(); ok; group, ok = layers.Next() {
		pairs := make([]string, 0, len(group))
		for _, a := range group {
			pairs = append(pairs, a.From+"→"+a.To)
		}
		out = append(out, pairs)
	}

	return out
}

// TestLayers_Path splits a directed path into one group per edge.
func TestLayers_Path(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "D")

	got := groups(t, g, "A")
	want := [][]string{{"A→B"}, {"B→C"}, {"C→D"}}
	assertGroups(t, got, want)
}

// TestLayers_Diamond groups parallel frontiers together, including the
// cross edge discovered at the same depth.
func TestLayers_Diamond(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "D")
	g.AddEdge("C", "D")

	got := groups(t, g, "A")
	want := [][]string{{"A→B", "A→C"}, {"B→D", "C→D"}}
	assertGroups(t, got, want)
}

// TestLayers_IsolatedSource yields one empty terminal group.
func TestLayers_IsolatedSource(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("A")

	got := groups(t, g, "A")
	if len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("isolated source groups = %v; want one empty group", got)
	}
}

// TestLayers_Cycle: the undirected 4-cycle from a corner gives two groups of
// two edges each.
func TestLayers_Cycle(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "D")
	g.AddEdge("D", "A")

	got := groups(t, g, "A")
	want := [][]string{{"A→B", "A→D"}, {"B→C", "D→C"}}
	assertGroups(t, got, want)
}

func assertGroups(t *testing.T, got, want [][]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("group count = %d (%v); want %d (%v)", len(got), got, len(want), want)
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("group %d = %v; want %v", i, got[i], want[i])
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("group %d arc %d = %s; want %s", i, j, got[i][j], want[i][j])
			}
		}
	}
}
