package entry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ezBadminton/goversus/core"
)

var (
	ErrMissingItems = errors.New("draft has no items field")
)

const DefaultTitle = "Untitled Tournament"

// A Draft is a tournament before its bracket exists. It is the
// only state that is saved to and loaded from files.
type Draft struct {
	Title string       `json:"title"`
	Items []*core.Item `json:"items"`
}

type draftFile struct {
	Title string        `json:"title"`
	Items *[]*core.Item `json:"items"`
}

// Writes the draft as indented JSON
func Export(w io.Writer, draft *Draft) error {
	items := draft.Items
	if items == nil {
		items = []*core.Item{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(&Draft{Title: draft.Title, Items: items})
	if err != nil {
		return fmt.Errorf("failed to export draft: %w", err)
	}
	return nil
}

// Reads a draft written by Export.
//
// A missing title is read as an empty title. A missing items
// field rejects the draft with ErrMissingItems. Items without
// an ID get a new one from ids.
func Import(r io.Reader, ids core.IdGenerator) (*Draft, error) {
	var file draftFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to import draft: %w", err)
	}

	if file.Items == nil {
		return nil, ErrMissingItems
	}

	items := make([]*core.Item, 0, len(*file.Items))
	seen := make(map[string]struct{}, len(*file.Items))
	for _, item := range *file.Items {
		if item == nil {
			continue
		}
		if item.ID == "" {
			item.ID = ids.NextId()
		}
		if _, ok := seen[item.ID]; ok {
			return nil, fmt.Errorf("failed to import draft: %w: %v", core.ErrDuplicateItem, item.ID)
		}
		seen[item.ID] = struct{}{}
		items = append(items, item)
	}

	draft := &Draft{Title: file.Title, Items: items}
	return draft, nil
}

// Appends items to the draft
func (d *Draft) Add(items ...*core.Item) {
	d.Items = append(d.Items, items...)
}

// Removes the item with the given ID. Returns false when the
// draft has no such item.
func (d *Draft) Remove(itemId string) bool {
	for i, item := range d.Items {
		if item.ID == itemId {
			d.Items = append(d.Items[:i:i], d.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Builds the tournament of the draft. An empty title is
// replaced by DefaultTitle.
func (d *Draft) Start(o *core.Organizer) (*core.Tournament, error) {
	title := d.Title
	if title == "" {
		title = DefaultTitle
	}
	return o.Build(title, d.Items)
}
