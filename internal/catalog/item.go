// Package catalog provides the concrete item type used by the stockpile CLI
// and the item catalog that assigns stack sizes to item names.
package catalog

import "strings"

// Item is a named item. Items order by name.
type Item struct {
	Name     string
	MaxStack uint
}

// Compare orders items lexically by name.
func (i Item) Compare(other Item) int {
	return strings.Compare(i.Name, other.Name)
}

// MaxStackSize returns the configured stack size.
func (i Item) MaxStackSize() uint {
	return i.MaxStack
}

// String returns the item name.
func (i Item) String() string {
	return i.Name
}
