package core

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKind = errors.New("unknown item kind")
)

// The kind of content an Item carries.
//
// The set of kinds is closed. Renderers should switch over
// all three of them.
type Kind int

const (
	KindText Kind = iota
	KindImage
	KindVideo
)

// Kinds lists every valid Kind
var Kinds = []Kind{KindText, KindImage, KindVideo}

func (k Kind) String() string {
	switch k {
	case KindText:
		return "TEXT"
	case KindImage:
		return "IMAGE"
	case KindVideo:
		return "VIDEO"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) IsValid() bool {
	return k >= KindText && k <= KindVideo
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// Accepts the tokens produced by MarshalText. "YOUTUBE" is
// read as KindVideo for lists saved before videos were
// generalized.
func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

func ParseKind(token string) (Kind, error) {
	switch token {
	case "TEXT":
		return KindText, nil
	case "IMAGE":
		return KindImage, nil
	case "VIDEO", "YOUTUBE":
		return KindVideo, nil
	}
	return KindText, fmt.Errorf("%w: %q", ErrUnknownKind, token)
}

// An IdGenerator hands out identifiers that are unique
// within one tournament.
type IdGenerator interface {
	NextId() string
}

// An Item is one competitor of a tournament.
//
// Items are shared by pointer between tournament states
// and must not be modified after creation.
type Item struct {
	ID string `json:"id"`
	// A URL for images and videos or the literal text
	Content string `json:"content"`
	// Optional display string
	Label string `json:"label,omitempty"`
	Kind  Kind   `json:"type"`
}

func NewItem(ids IdGenerator, content, label string, kind Kind) *Item {
	return &Item{
		ID:      ids.NextId(),
		Content: content,
		Label:   label,
		Kind:    kind,
	}
}

// Returns the label or the content when there is no label
func (i *Item) DisplayName() string {
	if i.Label != "" {
		return i.Label
	}
	return i.Content
}

func (i *Item) Equal(other *Item) bool {
	if i == nil || other == nil {
		return i == other
	}
	return *i == *other
}

func (i *Item) String() string {
	return fmt.Sprintf("[%v] %v", i.Kind, i.DisplayName())
}
