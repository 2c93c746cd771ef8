// Package inventory provides a generic, fixed-capacity inventory of item
// stacks. An Inventory is a sequence of Slots; each Slot holds up to the
// item's maximum stack size of a single item, and may carry a filter that
// pins it in place when the inventory is sorted.
//
// Inventory performs no internal locking. Callers that share an inventory
// across goroutines wrap it in a Guarded.
package inventory
