package core

import "slices"

// A Placement is an item's final rank in a tournament
type Placement struct {
	Rank int
	Item *Item
}

// Ranks the items of a completed tournament according to how
// far they reached. The winner comes first, then the loser of
// the final, then the losers of the semi-finals tied on the
// same rank, and so on.
//
// Tied items share a rank and the following rank is skipped
// accordingly (e.g. 1, 2, 3, 3, 5).
//
// Returns an empty slice when the tournament is not completed.
func Rankings(t *Tournament) []Placement {
	tiedRanks := TiedRanks(t)
	if len(tiedRanks) == 0 {
		return []Placement{}
	}

	placements := make([]Placement, 0, len(t.Items))
	rank := 1
	for _, tie := range tiedRanks {
		for _, item := range tie {
			placements = append(placements, Placement{Rank: rank, Item: item})
		}
		rank += len(tie)
	}

	return placements
}

// Returns the ranks of a completed tournament as a slice of
// slices of items.
//
// A slice with multiple items in it means the rank is tied
// between them. The order within a tie is the match order
// of the round.
func TiedRanks(t *Tournament) [][]*Item {
	if t == nil || !t.Completed || t.Winner == nil {
		return nil
	}

	ranks := make([][]*Item, 0, len(t.Rounds)+1)
	ranks = append(ranks, []*Item{t.Winner})

	for _, r := range slices.Backward(t.Rounds) {
		ranks = append(ranks, r.Losers())
	}

	return RemoveDoubleRanks(ranks)
}

// Keeps only the first occurrence of each item and drops
// ranks that end up empty
func RemoveDoubleRanks(ranks [][]*Item) [][]*Item {
	found := make(map[string]struct{})
	cleanedRanks := make([][]*Item, 0, len(ranks))

	for _, r := range ranks {
		cleanedRank := make([]*Item, 0, len(r))
		for _, item := range r {
			_, ok := found[item.ID]
			if !ok {
				cleanedRank = append(cleanedRank, item)
				found[item.ID] = struct{}{}
			}
		}
		if len(cleanedRank) > 0 {
			cleanedRanks = append(cleanedRanks, cleanedRank)
		}
	}
	return cleanedRanks
}
