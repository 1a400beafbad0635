package compute

import (
	"cmp"

	"dsa/internal/graph"
	"dsa/internal/tree/heap"
	"dsa/internal/unionfind"
)

// Tree is a minimum spanning tree.
type Tree struct {
	Edges       []graph.Edge `json:"edges"`
	TotalWeight float64      `json:"total_weight"`
}

func (t *Tree) add(e graph.Edge) {
	t.Edges = append(t.Edges, e)
	t.TotalWeight += e.Weight
}

func byWeight(a, b graph.Edge) int { return cmp.Compare(a.Weight, b.Weight) }

func checkMST(g graph.Graph) error {
	if err := requireNonEmpty(g); err != nil {
		return err
	}
	if err := requireUndirected(g); err != nil {
		return err
	}
	if !g.Weighted() {
		return ErrNeedWeighted
	}
	c, err := NewComponents(g)
	if err != nil {
		return err
	}
	if c.Count() > 1 {
		return ErrDisconnected
	}
	return nil
}

// Prim grows the tree from vertex 0, always taking the lightest edge that
// crosses the cut.
func Prim(g graph.Graph) (Tree, error) {
	if err := checkMST(g); err != nil {
		return Tree{}, err
	}
	var tree Tree
	in := make([]bool, g.VertexCount())
	crossing := heap.NewFunc(heap.Min, byWeight)

	enter := func(id int) {
		in[id] = true
		for _, e := range g.Adjacent(id) {
			if !in[e.To.ID] {
				crossing.Push(e)
			}
		}
	}
	enter(0)
	for len(tree.Edges) < g.VertexCount()-1 {
		e, ok := crossing.Pop()
		if !ok {
			break
		}
		if in[e.To.ID] {
			continue
		}
		tree.add(e)
		enter(e.To.ID)
	}
	return tree, nil
}

// Kruskal takes edges lightest first, skipping any that would close a cycle.
func Kruskal(g graph.Graph) (Tree, error) {
	if err := checkMST(g); err != nil {
		return Tree{}, err
	}
	uf, err := unionfind.NewIndexed(vertexID)
	if err != nil {
		return Tree{}, err
	}
	var tree Tree
	edges := heap.FromFunc(g.Edges(), heap.Min, byWeight)
	for len(tree.Edges) < g.VertexCount()-1 {
		e, ok := edges.Pop()
		if !ok {
			break
		}
		if uf.Connected(e.From, e.To) {
			continue
		}
		uf.Union(e.From, e.To)
		tree.add(e)
	}
	return tree, nil
}
