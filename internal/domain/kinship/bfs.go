package kinship

// ShortestPath returns a shortest path from source to target as an ordered
// identifier sequence, with path[0] == source and path[len-1] == target.
// The distance in relationship edges is len(path)-1; distance and path come
// out of the same traversal, so the two can never disagree.
//
// ok is false (and the path nil) when either endpoint is not a node or no
// path exists.  Neither case is an error: unknown individuals and
// disconnected components are expected in real record sets.
//
// When several shortest paths exist the one discovered first wins, which is
// deterministic because neighbor iteration follows edge insertion order.
func (g *Graph) ShortestPath(source, target string) ([]string, bool) {
	if !g.HasNode(source) || !g.HasNode(target) {
		return nil, false
	}
	if source == target {
		return []string{source}, true
	}

	// BFS with parent pointers; parent doubles as the visited set.
	parent := map[string]string{source: source}
	queue := []string{source}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range g.adj[current] {
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = current
			if next == target {
				return reconstruct(parent, source, target), true
			}
			queue = append(queue, next)
		}
	}

	return nil, false
}

// reconstruct walks parent pointers from target back to source and reverses.
func reconstruct(parent map[string]string, source, target string) []string {
	var rev []string
	for at := target; ; at = parent[at] {
		rev = append(rev, at)
		if at == source {
			break
		}
	}
	path := make([]string, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}
	return path
}

// Distance returns the shortest-path distance between source and target.
// ok is false under the same conditions as ShortestPath.
func (g *Graph) Distance(source, target string) (int, bool) {
	path, ok := g.ShortestPath(source, target)
	if !ok {
		return 0, false
	}
	return len(path) - 1, true
}

// Distances returns the distance from source to every reachable node,
// including source itself at distance 0.  Unknown sources yield an empty
// map.  Unreachable nodes are simply absent from the result.
func (g *Graph) Distances(source string) map[string]int {
	dist := make(map[string]int)
	if !g.HasNode(source) {
		return dist
	}

	dist[source] = 0
	queue := []string{source}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range g.adj[current] {
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[current] + 1
			queue = append(queue, next)
		}
	}
	return dist
}
