// This file contains thin wrappers around the graph module
// for managing graph structures in the tournament data.
package internal

import (
	"iter"

	"github.com/dominikbraun/graph"
)

// A DependencyGraph is a directed graph whose edges point
// from a node to the nodes that depend on its outcome.
//
// Nodes are hashed by the key function passed to
// NewDependencyGraph.
type DependencyGraph[K comparable, T any] struct {
	graph.Graph[K, T]
	key           func(T) K
	adjancencyMap map[K]map[K]graph.Edge[K]
}

func NewDependencyGraph[K comparable, T any](key func(T) K) *DependencyGraph[K, T] {
	return &DependencyGraph[K, T]{
		Graph: graph.New(key, graph.Directed(), graph.Acyclic()),
		key:   key,
	}
}

// Adds the node unless it is already present
func (g *DependencyGraph[K, T]) AddNode(node T) {
	_, err := g.Vertex(g.key(node))
	if err == nil {
		return
	}
	_ = g.Graph.AddVertex(node)
	g.adjancencyMap = nil
}

// Adds an edge from source to target.
// Both nodes are added if they are missing.
func (g *DependencyGraph[K, T]) AddEdge(source, target T) error {
	g.AddNode(source)
	g.AddNode(target)
	g.adjancencyMap = nil
	return g.Graph.AddEdge(g.key(source), g.key(target))
}

func (g *DependencyGraph[K, T]) BreadthSearchIter(start T) iter.Seq2[T, int] {
	iterator := func(yield func(v T, depth int) bool) {
		visitor := func(key K, depth int) bool {
			v, _ := g.Vertex(key)
			return !yield(v, depth)
		}
		_ = graph.BFSWithDepth(g.Graph, g.key(start), visitor)
	}
	return iterator
}

// Returns the nodes that are on the outgoing edges of the given
// source node (the dependants).
func (g *DependencyGraph[K, T]) GetDependants(source T) []T {
	if g.adjancencyMap == nil {
		// The adjacency map is cached until the next
		// node or edge is added
		g.adjancencyMap, _ = g.Graph.AdjacencyMap()
	}

	outEdges := g.adjancencyMap[g.key(source)]
	dependants := make([]T, 0, len(outEdges))
	for k := range outEdges {
		dependant, _ := g.Vertex(k)
		dependants = append(dependants, dependant)
	}

	return dependants
}
