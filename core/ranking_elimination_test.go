package core

import (
	"math/rand"
	"slices"
	"testing"
)

func TestRankingsProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 2; n <= 40; n += 1 {
		items, _ := ItemSlice(n)
		o := newTestOrganizer(int64(100 + n))
		tournament, _ := o.Build("Properties", items)
		tournament = playOut(t, o, tournament, randomWins(rng))

		rankings := Rankings(tournament)
		if len(rankings) != n {
			t.Fatalf("%v items produced %v placements", n, len(rankings))
		}
		if rankings[0].Rank != 1 || rankings[0].Item.ID != tournament.Winner.ID {
			t.Fatal("the winner is not ranked first")
		}

		ranked := make(map[string]struct{})
		for i, p := range rankings {
			if i > 0 && p.Rank < rankings[i-1].Rank {
				t.Fatal("the ranks are not non-decreasing")
			}
			if p.Rank > i+1 {
				t.Fatal("a rank skips more places than there are tied items")
			}
			if _, ok := ranked[p.Item.ID]; ok {
				t.Fatalf("item %v is ranked twice", p.Item.ID)
			}
			ranked[p.Item.ID] = struct{}{}
		}
	}
}

func TestCompetitionRanking(t *testing.T) {
	items, _ := ItemSlice(8)
	o := newTestOrganizer(8)
	tournament, _ := o.Build("Competition", items)
	tournament = playOut(t, o, tournament, firstWins)

	ranks := make([]int, 0, 8)
	for _, p := range Rankings(tournament) {
		ranks = append(ranks, p.Rank)
	}

	expected := []int{1, 2, 3, 3, 5, 5, 5, 5}
	if !slices.Equal(ranks, expected) {
		t.Fatalf("unexpected ranks %v", ranks)
	}

	tiedRanks := TiedRanks(tournament)
	if len(tiedRanks) != 4 || len(tiedRanks[2]) != 2 || len(tiedRanks[3]) != 4 {
		t.Fatal("the tied ranks do not group the losers by round")
	}

	// Quarter-final losers in match order
	for i, item := range tiedRanks[3] {
		if item != tournament.Rounds[0].Matches[i].Loser() {
			t.Fatal("the tied rank does not keep the match order")
		}
	}
}

// Byes never add a phantom competitor to the rankings
func TestRankingsWithByes(t *testing.T) {
	items, _ := ItemSlice(5)
	o := newTestOrganizer(5)
	tournament, _ := o.Build("Byes", items)
	tournament = playOut(t, o, tournament, func(m *Match) *Item { return m.P2 })

	rankings := Rankings(tournament)
	if len(rankings) != 5 {
		t.Fatal("the byes changed the number of placements")
	}
	for _, p := range rankings {
		if p.Item == nil {
			t.Fatal("a bye was ranked")
		}
	}

	// The bye item won the final against the winner of the
	// other second round match
	byeItem := tournament.Items[4]
	if tournament.Winner.ID != byeItem.ID {
		t.Fatal("the item that entered the final as second opponent did not win")
	}

	ranks := make([]int, 0, 5)
	for _, p := range rankings {
		ranks = append(ranks, p.Rank)
	}
	if !slices.Equal(ranks, []int{1, 2, 3, 4, 4}) {
		t.Fatalf("unexpected ranks %v", ranks)
	}
}

func TestRankingsIncomplete(t *testing.T) {
	if len(Rankings(nil)) != 0 || TiedRanks(nil) != nil {
		t.Fatal("a nil tournament has rankings")
	}

	items, _ := ItemSlice(4)
	tournament, _ := newTestOrganizer(4).Build("Incomplete", items)
	if len(Rankings(tournament)) != 0 {
		t.Fatal("a new tournament has rankings")
	}
}

func TestRemoveDoubleRanks(t *testing.T) {
	items, _ := ItemSlice(3)
	a, b, c := items[0], items[1], items[2]

	cleaned := RemoveDoubleRanks([][]*Item{{a}, {b, a}, {}, {c, b}})
	if len(cleaned) != 3 || len(cleaned[1]) != 1 || cleaned[1][0] != b || cleaned[2][0] != c {
		t.Fatal("double ranks were not removed")
	}
}
