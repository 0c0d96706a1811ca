package search_test

import "github.com/katalvlaran/statespace/search"

// graph is a tiny explicit-adjacency problem used across the engine tests.
type graph struct {
	start, goal string
	adj         map[string][]string
	h           map[string]float64
}

func (g graph) Initial() string              { return g.start }
func (g graph) IsGoal(s string) bool         { return s == g.goal }
func (g graph) Successors(s string) []string { return g.adj[s] }
func (g graph) Heuristic(s string) float64   { return g.h[s] }

// undirected builds a symmetric adjacency map from edge pairs, preserving
// insertion order per vertex.
func undirected(edges ...[2]string) map[string][]string {
	adj := make(map[string][]string)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}

	return adj
}

// reports collects every Report handed to it.
type reports struct {
	got []search.Report
}

func (r *reports) RecordRun(rep search.Report) { r.got = append(r.got, rep) }
