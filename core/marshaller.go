package core

import (
	"encoding/json"
)

// The JSON form of a tournament is a rendering payload. Items are
// listed once and matches refer to them by their ID. An empty ID
// stands for a missing opponent or winner.

func marshalItemRef(item *Item) string {
	if item == nil {
		return ""
	}
	return item.ID
}

func marshalMatch(match *Match) map[string]any {
	result := map[string]any{
		"id":     match.ID,
		"p1":     marshalItemRef(match.P1),
		"p2":     marshalItemRef(match.P2),
		"winner": marshalItemRef(match.Winner),
	}
	return result
}

func marshalRounds(rounds []*Round) [][]map[string]any {
	marshalled := make([][]map[string]any, len(rounds))
	for i, round := range rounds {
		roundMatches := make([]map[string]any, len(round.Matches))
		for i, match := range round.Matches {
			roundMatches[i] = marshalMatch(match)
		}
		marshalled[i] = roundMatches
	}
	return marshalled
}

func marshalRankings(t *Tournament) []map[string]any {
	placements := Rankings(t)
	rankings := make([]map[string]any, len(placements))
	for i, p := range placements {
		rankings[i] = map[string]any{
			"rank": p.Rank,
			"item": p.Item.ID,
		}
	}
	return rankings
}

func marshalTournament(t *Tournament) map[string]any {
	progress := GetProgress(t)
	result := map[string]any{
		"id":           t.ID,
		"title":        t.Title,
		"items":        t.Items,
		"rounds":       marshalRounds(t.Rounds),
		"currentRound": t.CurrentRoundIndex,
		"completed":    t.Completed,
		"winner":       marshalItemRef(t.Winner),
		"progress": map[string]int{
			"total":     progress.Total,
			"completed": progress.Completed,
			"remaining": progress.Remaining,
		},
		"rankings": marshalRankings(t),
	}
	return result
}

func (t *Tournament) MarshalJSON() ([]byte, error) {
	anymap := marshalTournament(t)
	return json.Marshal(anymap)
}
