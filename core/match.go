package core

import (
	"iter"
	"strings"
)

// A match between two items.
//
// Matches are values of a tournament state. Resolving a match
// produces a new Match, the old one is left as it is.
type Match struct {
	ID string

	// The first opponent
	P1 *Item
	// The second opponent or nil when P1 has a bye
	P2 *Item

	// The item that won the match or nil when the
	// match is not resolved yet.
	// A bye match is created with P1 as the winner.
	Winner *Item
}

func NewMatch(id string, p1, p2 *Item) *Match {
	return &Match{ID: id, P1: p1, P2: p2}
}

// Creates a match where the item advances without
// an opponent
func NewByeMatch(id string, p1 *Item) *Match {
	return &Match{ID: id, P1: p1, Winner: p1}
}

func (m *Match) IsBye() bool {
	return m.P2 == nil
}

func (m *Match) IsResolved() bool {
	return m.Winner != nil
}

// Returns the item that lost the match.
// Byes and unresolved matches have no loser.
func (m *Match) Loser() *Item {
	if m.Winner == nil || m.P2 == nil {
		return nil
	}
	if m.Winner.ID == m.P1.ID {
		return m.P2
	}
	return m.P1
}

// Returns true when the item with the given ID occupies
// one of the two slots
func (m *Match) Contains(itemId string) bool {
	return m.slotOf(itemId) != nil
}

// Returns the match's own pointer for the item with the
// given ID or nil if it does not take part in the match
func (m *Match) slotOf(itemId string) *Item {
	for item := range m.Items() {
		if item.ID == itemId {
			return item
		}
	}
	return nil
}

// An iterator over the present opponents
func (m *Match) Items() iter.Seq[*Item] {
	return func(yield func(*Item) bool) {
		if !yield(m.P1) {
			return
		}
		if m.P2 != nil {
			yield(m.P2)
		}
	}
}

func (m *Match) String() string {
	var sb strings.Builder
	sb.WriteString(m.P1.DisplayName())
	sb.WriteString(" vs. ")
	if m.P2 == nil {
		sb.WriteString("[Bye]")
	} else {
		sb.WriteString(m.P2.DisplayName())
	}

	if m.Winner != nil {
		sb.WriteString("\t-> ")
		sb.WriteString(m.Winner.DisplayName())
	}

	return sb.String()
}

// A Round is a list of matches that are all resolved before
// the next round is built.
// The order of the matches determines the pairings of
// the next round.
type Round struct {
	Matches []*Match
}

// Returns the index of the match with the given ID or -1
func (r *Round) IndexOf(matchId string) int {
	for i, m := range r.Matches {
		if m.ID == matchId {
			return i
		}
	}
	return -1
}

// Returns true when all matches of the round are resolved
func (r *Round) MatchesComplete() bool {
	for _, m := range r.Matches {
		if !m.IsResolved() {
			return false
		}
	}
	return true
}

// Returns the winners of the resolved matches in match order
func (r *Round) Winners() []*Item {
	winners := make([]*Item, 0, len(r.Matches))
	for _, m := range r.Matches {
		if m.Winner != nil {
			winners = append(winners, m.Winner)
		}
	}
	return winners
}

// Returns the losers of the resolved matches in match order
func (r *Round) Losers() []*Item {
	losers := make([]*Item, 0, len(r.Matches))
	for _, m := range r.Matches {
		if loser := m.Loser(); loser != nil {
			losers = append(losers, loser)
		}
	}
	return losers
}

// Returns a copy of the round with the match at index i
// replaced. The receiver is not modified.
func (r *Round) with(i int, match *Match) *Round {
	matches := make([]*Match, len(r.Matches))
	copy(matches, r.Matches)
	matches[i] = match
	return &Round{Matches: matches}
}
