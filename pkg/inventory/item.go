package inventory

// Item is the capability a concrete item type must provide to be stored in a
// Slot. T is the concrete type itself, so comparisons only ever happen
// between items of the same kind:
//
//	type Ore struct{ Name string }
//
//	func (o Ore) Compare(other Ore) int { return strings.Compare(o.Name, other.Name) }
//	func (o Ore) MaxStackSize() uint    { return 64 }
//	func (o Ore) String() string        { return o.Name }
type Item[T any] interface {
	// Compare returns a negative number when the receiver orders before
	// other, zero when they are equivalent, and a positive number otherwise.
	Compare(other T) int

	// MaxStackSize returns the most units of this item one slot may hold.
	// Zero means the item can never occupy a slot.
	MaxStackSize() uint

	// String returns the display form used when rendering slots.
	String() string
}
