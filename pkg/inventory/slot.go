package inventory

import (
	"errors"
	"fmt"
	"strings"
)

// Slot construction errors.
var (
	ErrCountExceedsStack = errors.New("count exceeds item's maximum stack size")
)

// Slot is a single storage position: an optional item, the number of units
// held, and an optional filter. Slot is an immutable value; the zero Slot is
// empty and unfiltered.
//
// A Slot holds an item exactly when its count is non-zero, and the count
// never exceeds the item's MaxStackSize. The filter is independent of the
// contents.
type Slot[T Item[T]] struct {
	item      T
	count     uint
	filter    T
	hasFilter bool
}

// NewSlot creates a slot holding count units of item. A nil item or a zero
// count yields an empty slot. Returns ErrCountExceedsStack if item is non-nil
// and count is larger than its MaxStackSize.
func NewSlot[T Item[T]](item *T, count uint) (Slot[T], error) {
	if item != nil {
		if limit := (*item).MaxStackSize(); count > limit {
			return Slot[T]{}, fmt.Errorf("%w: %d > %d", ErrCountExceedsStack, count, limit)
		}
	}
	if item == nil || count == 0 {
		return Slot[T]{}, nil
	}
	return Slot[T]{item: *item, count: count}, nil
}

// NewSingle creates a slot holding one unit of item. The slot is empty when
// item is nil or cannot be stacked at all.
func NewSingle[T Item[T]](item *T) Slot[T] {
	if item == nil || (*item).MaxStackSize() == 0 {
		return Slot[T]{}
	}
	return Slot[T]{item: *item, count: 1}
}

// Empty returns an empty, unfiltered slot.
func Empty[T Item[T]]() Slot[T] {
	return Slot[T]{}
}

// WithFilter returns a copy of the slot filtered to the given item.
func (s Slot[T]) WithFilter(filter T) Slot[T] {
	s.filter = filter
	s.hasFilter = true
	return s
}

// WithoutFilter returns a copy of the slot with its filter removed.
func (s Slot[T]) WithoutFilter() Slot[T] {
	var zero T
	s.filter = zero
	s.hasFilter = false
	return s
}

// Item returns the held item and whether the slot holds one.
func (s Slot[T]) Item() (T, bool) {
	return s.item, s.count > 0
}

// Count returns the number of units held.
func (s Slot[T]) Count() uint {
	return s.count
}

// Filter returns the filter item and whether the slot is filtered.
func (s Slot[T]) Filter() (T, bool) {
	return s.filter, s.hasFilter
}

// IsEmpty reports whether the slot holds no units.
func (s Slot[T]) IsEmpty() bool {
	return s.count == 0
}

// HasFilter reports whether the slot is reserved for a filter item.
func (s Slot[T]) HasFilter() bool {
	return s.hasFilter
}

// Compare orders slots by rank. A positive result means s ranks ahead of
// other. Any non-empty slot ranks ahead of an empty one, and two empty
// slots are equivalent. Non-empty slots are ranked by their items alone;
// count and filter do not participate.
func (s Slot[T]) Compare(other Slot[T]) int {
	switch {
	case s.IsEmpty() && other.IsEmpty():
		return 0
	case s.IsEmpty():
		return -1
	case other.IsEmpty():
		return 1
	}
	return s.item.Compare(other.item)
}

// Less reports whether s ranks behind other.
func (s Slot[T]) Less(other Slot[T]) bool { return s.Compare(other) < 0 }

// Greater reports whether s ranks ahead of other.
func (s Slot[T]) Greater(other Slot[T]) bool { return s.Compare(other) > 0 }

// LessOrEqual reports whether s does not rank ahead of other.
func (s Slot[T]) LessOrEqual(other Slot[T]) bool { return s.Compare(other) <= 0 }

// GreaterOrEqual reports whether s does not rank behind other.
func (s Slot[T]) GreaterOrEqual(other Slot[T]) bool { return s.Compare(other) >= 0 }

// String renders the slot as "{filter} (0)", "[item] (count/max)" or
// "[ ] (0)". A filtered slot shows its filter even when it holds items.
func (s Slot[T]) String() string {
	var b strings.Builder
	switch {
	case s.hasFilter:
		b.WriteString("{" + s.filter.String() + "}")
	case !s.IsEmpty():
		b.WriteString("[" + s.item.String() + "]")
	default:
		b.WriteString("[ ]")
	}
	if s.IsEmpty() {
		b.WriteString(" (0)")
	} else {
		fmt.Fprintf(&b, " (%d/%d)", s.count, s.item.MaxStackSize())
	}
	return b.String()
}
