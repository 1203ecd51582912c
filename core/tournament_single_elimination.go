package core

import (
	"log/slog"

	"github.com/ezBadminton/goversus/internal"
)

// Builds a new tournament from the items.
//
// The items are shuffled once and paired in the shuffled
// order. When the number of items is odd the last one
// advances with a bye.
//
// Errors when there are fewer than two items or when
// the item IDs are not unique.
func (o *Organizer) Build(title string, items []*Item) (*Tournament, error) {
	if len(items) < 2 {
		return nil, ErrTooFewEntries
	}
	if err := checkItems(items); err != nil {
		return nil, err
	}

	shuffled := internal.Shuffled(items, o.rng)

	firstRound := &Round{Matches: o.createPairedMatches(shuffled)}

	tournament := &Tournament{
		ID:     o.ids.NextId(),
		Title:  title,
		Items:  shuffled,
		Rounds: []*Round{firstRound},
	}

	o.logger.Debug("tournament built",
		slog.String("tournament_id", tournament.ID),
		slog.Int("items", len(items)),
		slog.Int("matches", len(firstRound.Matches)),
	)

	return tournament, nil
}

// Creates matches with the items taken pair-wise from
// the entries. An unpaired last entry gets a bye.
func (o *Organizer) createPairedMatches(entries []*Item) []*Match {
	matches := make([]*Match, 0, (len(entries)+1)>>1)
	for i := 0; i < len(entries); i += 2 {
		var match *Match
		if i+1 < len(entries) {
			match = NewMatch(o.ids.NextId(), entries[i], entries[i+1])
		} else {
			match = NewByeMatch(o.ids.NextId(), entries[i])
		}
		matches = append(matches, match)
	}

	return matches
}

// Declares the winner of a match in the active round and
// returns the resulting tournament state.
//
// When the match completes the round the next round is
// built from the round's winners or, if it was the final,
// the tournament is marked as completed.
//
// A matchId that is not in the active round leaves the
// state unchanged and returns a copy of it without error.
// Resolving an already resolved match returns
// ErrMatchResolved and a winner that is not one of the
// opponents returns ErrNotInMatch. In both cases the given
// state is returned as it is.
//
// The given tournament is never modified.
func (o *Organizer) Resolve(t *Tournament, matchId string, winner *Item) (*Tournament, error) {
	if t == nil {
		return nil, ErrNoTournament
	}

	round := t.CurrentRound()
	index := round.IndexOf(matchId)
	if index == -1 {
		return t.Clone(), nil
	}

	match := round.Matches[index]
	if match.IsResolved() {
		return t, ErrMatchResolved
	}
	if winner == nil {
		return t, ErrNotInMatch
	}
	winnerSlot := match.slotOf(winner.ID)
	if winnerSlot == nil {
		return t, ErrNotInMatch
	}

	resolved := *match
	resolved.Winner = winnerSlot

	activeRound := round.with(index, &resolved)
	next := t.Clone()
	next.Rounds[next.CurrentRoundIndex] = activeRound

	if !activeRound.MatchesComplete() {
		return next, nil
	}

	if len(activeRound.Matches) == 1 {
		next.Completed = true
		next.Winner = winnerSlot

		o.logger.Info("tournament completed",
			slog.String("tournament_id", next.ID),
			slog.String("winner_id", winnerSlot.ID),
			slog.Int("rounds", len(next.Rounds)),
		)

		return next, nil
	}

	followingRound := &Round{Matches: o.createPairedMatches(activeRound.Winners())}
	next.Rounds = append(next.Rounds, followingRound)
	next.CurrentRoundIndex += 1

	o.logger.Debug("round complete",
		slog.String("tournament_id", next.ID),
		slog.Int("round", next.CurrentRoundIndex),
		slog.Int("next_matches", len(followingRound.Matches)),
	)

	return next, nil
}

// Returns the first unresolved match of the active round.
//
// Returns nil when the tournament is nil or completed or
// when the active round has no unresolved match left.
func NextMatch(t *Tournament) *Match {
	if t == nil || t.Completed {
		return nil
	}

	for _, m := range t.CurrentRound().Matches {
		if !m.IsResolved() {
			return m
		}
	}

	return nil
}
