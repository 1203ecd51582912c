package core

import "github.com/ezBadminton/goversus/internal"

func matchKey(m *Match) string {
	return m.ID
}

// The EliminationGraph has all matches of a tournament as its
// nodes. The edges between the nodes model the path that the
// winners take towards the final like a conventional
// tournament tree.
//
// Only rounds that have been built are part of the graph.
type EliminationGraph struct {
	*internal.DependencyGraph[string, *Match]
}

func NewEliminationGraph(t *Tournament) *EliminationGraph {
	graph := &EliminationGraph{
		DependencyGraph: internal.NewDependencyGraph(matchKey),
	}

	for i, round := range t.Rounds {
		for _, m := range round.Matches {
			graph.AddNode(m)
		}
		if i == 0 {
			continue
		}
		linkMatches(t.Rounds[i-1].Matches, round.Matches, graph)
	}

	return graph
}

// The winners of the matches 2k and 2k+1 meet in match k of
// the following round. A trailing bye carries a single winner.
func linkMatches(round, followingRound []*Match, graph *EliminationGraph) {
	for i, m := range round {
		following := i >> 1
		if following >= len(followingRound) {
			break
		}
		_ = graph.AddEdge(m, followingRound[following])
	}
}

// Returns the matches the item took part in, from its first
// round match up to the match it lost or the last match it
// has reached so far. Byes are included.
//
// Returns nil when the item is not in the tournament.
func Journey(t *Tournament, itemId string) []*Match {
	if t == nil || len(t.Rounds) == 0 {
		return nil
	}

	var start *Match
	for _, m := range t.Rounds[0].Matches {
		if m.Contains(itemId) {
			start = m
			break
		}
	}
	if start == nil {
		return nil
	}

	graph := NewEliminationGraph(t)

	journey := make([]*Match, 0, len(t.Rounds))
	for m := range graph.BreadthSearchIter(start) {
		if !m.Contains(itemId) {
			break
		}
		journey = append(journey, m)
	}

	return journey
}
