// Package entry turns user input into tournament items.
//
// It covers manual entry, bulk pasting of newline separated
// lines, the {title, items} draft file and display titles
// for the items of a match.
package entry

import (
	"errors"
	"strings"

	"github.com/ezBadminton/goversus/core"
)

var (
	ErrEmptyContent = errors.New("item content is empty")
)

// Hosts whose links are treated as videos
var VideoHosts = []string{"youtube.com", "youtu.be"}

// File extensions whose links are treated as images
var ImageExtensions = []string{".jpeg", ".jpg", ".gif", ".png"}

// Returns the kind of content a pasted line most likely is
func Classify(line string) core.Kind {
	for _, host := range VideoHosts {
		if strings.Contains(line, host) {
			return core.KindVideo
		}
	}

	lower := strings.ToLower(line)
	for _, ext := range ImageExtensions {
		if strings.HasSuffix(lower, ext) {
			return core.KindImage
		}
	}

	return core.KindText
}

// Creates one item per non-blank line of the text.
// The lines are trimmed and classified with Classify.
func ParseBulk(text string, ids core.IdGenerator) []*core.Item {
	lines := strings.Split(text, "\n")
	items := make([]*core.Item, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, core.NewItem(ids, line, "", Classify(line)))
	}
	return items
}

// Creates an item from manual entry
func NewItem(ids core.IdGenerator, content, label string, kind core.Kind) (*core.Item, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if !kind.IsValid() {
		return nil, core.ErrUnknownKind
	}
	return core.NewItem(ids, content, strings.TrimSpace(label), kind), nil
}
