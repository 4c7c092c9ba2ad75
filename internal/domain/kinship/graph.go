// Package kinship implements the relationship graph over a record index:
// graph construction, shortest-path queries, classification of adjacent
// pairs into gendered relationship labels, and path rendering.
//
// The graph is undirected and unweighted.  Edge semantics (who is whose
// spouse or parent) are never stored on the graph; they are recovered on
// demand from the family records by the Classifier.
package kinship

import "github.com/baobabprince/HebrewFamilyTree/internal/domain/tree"

// Graph is a simple undirected graph over individual identifiers.
//
// Neighbor lists are kept in edge insertion order and nodes in node
// insertion order, so BFS traversal, and therefore which of several
// equally-short paths is returned, is deterministic for a given record
// set.  Tests rely on this.
type Graph struct {
	order []string
	adj   map[string][]string
	nbr   map[string]map[string]struct{}
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		adj: make(map[string][]string),
		nbr: make(map[string]map[string]struct{}),
	}
}

// AddNode inserts a node.  Re-adding an existing node is a no-op.
func (g *Graph) AddNode(id string) {
	if _, ok := g.nbr[id]; ok {
		return
	}
	g.order = append(g.order, id)
	g.nbr[id] = make(map[string]struct{})
}

// AddEdge inserts an undirected edge, creating missing endpoints.  Repeat
// edges and self loops are no-ops: the graph stays simple.
func (g *Graph) AddEdge(a, b string) {
	if a == b || a == "" || b == "" {
		return
	}
	g.AddNode(a)
	g.AddNode(b)
	if _, ok := g.nbr[a][b]; ok {
		return
	}
	g.nbr[a][b] = struct{}{}
	g.nbr[b][a] = struct{}{}
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
}

// HasNode reports whether id is a node.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nbr[id]
	return ok
}

// HasEdge reports whether an edge connects a and b.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.nbr[a][b]
	return ok
}

// Nodes returns all node identifiers in insertion order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Neighbors returns the neighbor identifiers of id in edge insertion order.
func (g *Graph) Neighbors(id string) []string {
	out := make([]string, len(g.adj[id]))
	copy(out, g.adj[id])
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, neighbors := range g.adj {
		n += len(neighbors)
	}
	return n / 2
}

// BuildGraph derives the relationship graph from a record index:
//
//  1. One node per known individual (individuals never referenced by any
//     family remain isolated nodes).
//  2. A spouse edge for every family whose husband and wife both resolve.
//  3. A parent-child edge for every resolving parent × resolving child.
//
// Dangling references degrade to "no edge"; construction never fails.
// Genealogical exports are routinely incomplete and a partially-connected
// graph is more useful than no graph.
func BuildGraph(idx *tree.Index) *Graph {
	g := NewGraph()

	for _, ind := range idx.Individuals() {
		g.AddNode(ind.ID)
	}

	resolves := func(id string) bool {
		if id == "" {
			return false
		}
		_, ok := idx.Individual(id)
		return ok
	}

	for _, fam := range idx.Families() {
		if resolves(fam.HusbandID) && resolves(fam.WifeID) {
			g.AddEdge(fam.HusbandID, fam.WifeID)
		}
		for _, parent := range fam.Parents() {
			if !resolves(parent) {
				continue
			}
			for _, child := range fam.ChildIDs {
				if resolves(child) {
					g.AddEdge(parent, child)
				}
			}
		}
	}

	return g
}
