package inventory

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Inventory errors.
var (
	ErrIndexOutOfRange = errors.New("slot index out of range")
	ErrInvalidSize     = errors.New("inventory size must not be negative")
)

// Inventory is a fixed-length sequence of slots. The size is set by New and
// never changes. Inventory is not safe for concurrent use.
type Inventory[T Item[T]] struct {
	slots []Slot[T]
}

// New creates an inventory of size empty, unfiltered slots.
// Returns ErrInvalidSize if size is negative.
func New[T Item[T]](size int) (*Inventory[T], error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Inventory[T]{slots: make([]Slot[T], size)}, nil
}

// Size returns the number of slots.
func (inv *Inventory[T]) Size() int {
	return len(inv.slots)
}

// Get returns the slot at index i.
// Returns ErrIndexOutOfRange if i is not in [0, Size()).
func (inv *Inventory[T]) Get(i int) (Slot[T], error) {
	if err := inv.checkIndex(i); err != nil {
		return Slot[T]{}, err
	}
	return inv.slots[i], nil
}

// Set replaces the slot at index i.
// Returns ErrIndexOutOfRange if i is not in [0, Size()).
func (inv *Inventory[T]) Set(i int, slot Slot[T]) error {
	if err := inv.checkIndex(i); err != nil {
		return err
	}
	inv.slots[i] = slot
	return nil
}

// Swap exchanges the slots at indices i and j. Both indices are validated
// before anything moves; on error the inventory is unchanged.
func (inv *Inventory[T]) Swap(i, j int) error {
	if err := inv.checkIndex(i); err != nil {
		return err
	}
	if err := inv.checkIndex(j); err != nil {
		return err
	}
	if i != j {
		inv.slots[i], inv.slots[j] = inv.slots[j], inv.slots[i]
	}
	return nil
}

// Sort orders the unfiltered slots so that higher ranked slots come first
// and empty slots trail. Filtered slots never move and act as barriers: the
// slots between two filtered slots are sorted among themselves only. Equal
// slots keep their relative order.
func (inv *Inventory[T]) Sort() {
	start := 0
	for i := 0; i <= len(inv.slots); i++ {
		if i == len(inv.slots) || inv.slots[i].hasFilter {
			insertionSort(inv.slots[start:i])
			start = i + 1
		}
	}
}

// Compress sorts all unfiltered slots as a single sequence, skipping over
// filtered slots. Filtered slots stay where they are, but items may move
// past them, which packs every item toward the front of the inventory.
func (inv *Inventory[T]) Compress() {
	open := make([]int, 0, len(inv.slots))
	for i, s := range inv.slots {
		if !s.hasFilter {
			open = append(open, i)
		}
	}
	for k := 1; k < len(open); k++ {
		cur := inv.slots[open[k]]
		m := k
		for ; m > 0 && cur.Greater(inv.slots[open[m-1]]); m-- {
			inv.slots[open[m]] = inv.slots[open[m-1]]
		}
		inv.slots[open[m]] = cur
	}
}

// All returns an iterator over the slots and their indices in order.
func (inv *Inventory[T]) All() iter.Seq2[int, Slot[T]] {
	return func(yield func(int, Slot[T]) bool) {
		for i, s := range inv.slots {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Slots returns a copy of the slots in order.
func (inv *Inventory[T]) Slots() []Slot[T] {
	out := make([]Slot[T], len(inv.slots))
	copy(out, inv.slots)
	return out
}

// String renders every slot, joined by ", ".
func (inv *Inventory[T]) String() string {
	parts := make([]string, len(inv.slots))
	for i, s := range inv.slots {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

func (inv *Inventory[T]) checkIndex(i int) error {
	if i < 0 || i >= len(inv.slots) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(inv.slots))
	}
	return nil
}

// insertionSort stably moves each slot left past the slots it ranks ahead of.
func insertionSort[T Item[T]](run []Slot[T]) {
	for i := 1; i < len(run); i++ {
		cur := run[i]
		j := i
		for ; j > 0 && cur.Greater(run[j-1]); j-- {
			run[j] = run[j-1]
		}
		run[j] = cur
	}
}
