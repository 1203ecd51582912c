package core

import (
	"errors"
	"log/slog"
	"math/rand"

	"github.com/ezBadminton/goversus/internal"
)

var (
	ErrTooFewEntries = errors.New("not enough entries for this tournament mode")
	ErrDuplicateItem = errors.New("duplicate item id")
	ErrNilItem       = errors.New("nil item")
	ErrNoTournament  = errors.New("no tournament")
	ErrMatchResolved = errors.New("match already resolved")
	ErrNotInMatch    = errors.New("winner is not an opponent of the match")
)

// A Tournament is one state of a single elimination bracket.
//
// States are immutable. The Organizer produces a new state
// for every resolved match and shares the unchanged rounds
// and matches with the previous one.
type Tournament struct {
	ID    string
	Title string

	// All competitors in the shuffled order that was used
	// to pair the first round
	Items []*Item

	// The rounds built so far. Rounds are only ever appended.
	Rounds []*Round

	// Index of the active round. It always points at the
	// last round.
	CurrentRoundIndex int

	// True when the final is resolved
	Completed bool

	// The winner of the final. Set when Completed is true.
	Winner *Item
}

// Returns the active round
func (t *Tournament) CurrentRound() *Round {
	return t.Rounds[t.CurrentRoundIndex]
}

// Returns the match with the given ID from any round
func (t *Tournament) Match(matchId string) *Match {
	for _, r := range t.Rounds {
		if i := r.IndexOf(matchId); i != -1 {
			return r.Matches[i]
		}
	}
	return nil
}

// Returns the item with the given ID or nil
func (t *Tournament) Item(itemId string) *Item {
	for _, item := range t.Items {
		if item.ID == itemId {
			return item
		}
	}
	return nil
}

// Returns a copy of the tournament that owns its slices of
// items and rounds. The rounds, matches and items themselves
// are shared.
func (t *Tournament) Clone() *Tournament {
	clone := *t
	clone.Items = append([]*Item(nil), t.Items...)
	clone.Rounds = make([]*Round, len(t.Rounds), len(t.Rounds)+1)
	copy(clone.Rounds, t.Rounds)
	return &clone
}

// The Progress of a tournament counts the decided contests.
// Byes are not counted because nobody votes on them.
type Progress struct {
	Total     int
	Completed int
	Remaining int
}

func GetProgress(t *Tournament) Progress {
	if t == nil {
		return Progress{}
	}

	total := max(len(t.Items)-1, 0)
	completed := 0
	for _, r := range t.Rounds {
		for _, m := range r.Matches {
			if m.IsResolved() && !m.IsBye() {
				completed += 1
			}
		}
	}

	return Progress{
		Total:     total,
		Completed: completed,
		Remaining: total - completed,
	}
}

// The Organizer builds tournaments and resolves their matches.
//
// It holds the identifier generator and the random source so
// that brackets are reproducible when both are fixed.
// An Organizer is not safe for concurrent use.
type Organizer struct {
	ids    IdGenerator
	rng    *rand.Rand
	logger *slog.Logger
}

type Option func(o *Organizer)

func WithIdGenerator(ids IdGenerator) Option {
	return func(o *Organizer) {
		o.ids = ids
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(o *Organizer) {
		o.rng = rng
	}
}

// Seeds the random source that shuffles the entries
func WithSeed(seed int64) Option {
	return WithRand(internal.NewRand(seed))
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *Organizer) {
		o.logger = logger
	}
}

// Creates an Organizer. Without options it generates UUIDs
// and shuffles with a clock seeded random source.
func NewOrganizer(options ...Option) *Organizer {
	o := &Organizer{}
	for _, option := range options {
		option(o)
	}

	if o.ids == nil {
		o.ids = internal.UUIDGenerator{}
	}
	if o.rng == nil {
		o.rng = internal.NewTimeRand()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	return o
}

// Returns an error when an item is nil or two items share an ID
func checkItems(items []*Item) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item == nil {
			return ErrNilItem
		}
		if _, ok := seen[item.ID]; ok {
			return ErrDuplicateItem
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}
