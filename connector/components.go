package connector

import "sort"

// Components returns the connected components of the graph as sorted slices
// of node ids, in order of their smallest member id.
//
// Discovery is an iterative depth-first traversal over the adjacency map
// with an explicit stack, never recursion, so memory stays bounded on
// pathological inputs.
//
// Time: O(N + E). Memory: O(N).
func (g *Graph) Components() [][]string {
	seen := make(map[string]bool, len(g.order))
	var comps [][]string

	for _, start := range g.order {
		if seen[start] {
			continue
		}
		var comp []string
		stack := []string{start}
		seen[start] = true
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, id)
			for _, e := range g.adjacency[id] {
				if !seen[e.To] {
					seen[e.To] = true
					stack = append(stack, e.To)
				}
			}
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps
}
