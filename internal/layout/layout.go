// Package layout reads and writes inventory layout documents. A layout is a
// YAML description of an inventory's size and the contents of its occupied
// or filtered slots:
//
//	id: 0192f0c4-7d0e-7b4a-9d57-0b9d2f5c0e11
//	size: 5
//	slots:
//	  - index: 1
//	    item: B
//	    count: 2
//	  - index: 2
//	    filter: C
//	  - index: 3
//	    item: A
//
// A slot entry with an item and no count holds a single unit.
package layout

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/stockpile/internal/catalog"
	"github.com/mesh-intelligence/stockpile/pkg/inventory"
)

// ErrInvalidDocument is returned for structurally invalid layouts.
var ErrInvalidDocument = errors.New("invalid layout document")

// Document is the serialized form of a layout.
type Document struct {
	ID    string      `yaml:"id,omitempty" json:"id,omitempty"`
	Size  int         `yaml:"size" json:"size"`
	Slots []SlotEntry `yaml:"slots,omitempty" json:"slots,omitempty"`
}

// SlotEntry describes one slot. Count is nil when the document omits it.
type SlotEntry struct {
	Index  int    `yaml:"index" json:"index"`
	Item   string `yaml:"item,omitempty" json:"item,omitempty"`
	Count  *uint  `yaml:"count,omitempty" json:"count,omitempty"`
	Filter string `yaml:"filter,omitempty" json:"filter,omitempty"`
}

// Layout is a decoded inventory together with its identifier.
type Layout struct {
	ID        uuid.UUID
	Inventory *inventory.Inventory[catalog.Item]
}

// Load opens path and decodes it with Decode.
func Load(path string, cat *catalog.Catalog) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer f.Close()

	return Decode(f, cat)
}

// Decode reads a YAML layout from r and builds its inventory, resolving item
// and filter names through cat. A document without an id is assigned a new
// UUID v7. On error no layout is returned.
func Decode(r io.Reader, cat *catalog.Catalog) (*Layout, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return Build(doc, cat)
}

// Build constructs a Layout from an already parsed document.
func Build(doc Document, cat *catalog.Catalog) (*Layout, error) {
	id, err := parseID(doc.ID)
	if err != nil {
		return nil, err
	}

	inv, err := inventory.New[catalog.Item](doc.Size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	seen := make(map[int]bool, len(doc.Slots))
	for n, e := range doc.Slots {
		if seen[e.Index] {
			return nil, fmt.Errorf("%w: slot entry %d: index %d listed twice", ErrInvalidDocument, n, e.Index)
		}
		seen[e.Index] = true

		slot, err := buildSlot(e, cat)
		if err != nil {
			return nil, fmt.Errorf("slot entry %d: %w", n, err)
		}
		if err := inv.Set(e.Index, slot); err != nil {
			return nil, fmt.Errorf("slot entry %d: %w", n, err)
		}
	}

	return &Layout{ID: id, Inventory: inv}, nil
}

func parseID(raw string) (uuid.UUID, error) {
	if raw == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return uuid.Nil, fmt.Errorf("generate layout id: %w", err)
		}
		return id, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: id: %v", ErrInvalidDocument, err)
	}
	return id, nil
}

func buildSlot(e SlotEntry, cat *catalog.Catalog) (inventory.Slot[catalog.Item], error) {
	var slot inventory.Slot[catalog.Item]
	if e.Item != "" {
		it, err := cat.Lookup(e.Item)
		if err != nil {
			return slot, err
		}
		if e.Count == nil {
			slot = inventory.NewSingle(&it)
		} else {
			slot, err = inventory.NewSlot(&it, *e.Count)
			if err != nil {
				return slot, err
			}
		}
	}
	if e.Filter != "" {
		f, err := cat.Lookup(e.Filter)
		if err != nil {
			return slot, fmt.Errorf("filter: %w", err)
		}
		slot = slot.WithFilter(f)
	}
	return slot, nil
}

// Document returns the serialized form of the layout's current arrangement.
// Only slots that hold items or carry a filter are listed.
func (l *Layout) Document() Document {
	doc := Document{ID: l.ID.String(), Size: l.Inventory.Size()}
	for i, s := range l.Inventory.All() {
		if s.IsEmpty() && !s.HasFilter() {
			continue
		}
		e := SlotEntry{Index: i}
		if it, ok := s.Item(); ok {
			count := s.Count()
			e.Item = it.Name
			e.Count = &count
		}
		if f, ok := s.Filter(); ok {
			e.Filter = f.Name
		}
		doc.Slots = append(doc.Slots, e)
	}
	return doc
}

// Encode writes the layout as a YAML document to w.
func Encode(w io.Writer, l *Layout) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l.Document()); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return enc.Close()
}
