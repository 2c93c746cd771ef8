package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Config keys read by FromConfig.
const (
	KeyDefaultMaxStack = "default_max_stack"
	KeyStrictItems     = "strict_items"
	KeyItems           = "items"
)

// DefaultMaxStack is the stack size of items the catalog does not list.
const DefaultMaxStack = 10

// Catalog errors.
var (
	ErrUnknownItem      = errors.New("unknown item")
	ErrDuplicateItem    = errors.New("duplicate item")
	ErrInvalidName      = errors.New("item name must not be empty")
	ErrInvalidStackSize = errors.New("stack size must not be negative")
)

// Entry overrides the stack size of one item name.
type Entry struct {
	Name     string `mapstructure:"name" yaml:"name" json:"name"`
	MaxStack uint   `mapstructure:"max_stack" yaml:"max_stack" json:"max_stack"`
}

// configEntry is Entry as written in config.yaml. The stack size is signed so
// a negative value is rejected rather than wrapped.
type configEntry struct {
	Name     string `mapstructure:"name"`
	MaxStack int    `mapstructure:"max_stack"`
}

// Catalog maps item names to stack sizes. A strict catalog only knows the
// names it lists; otherwise unlisted names get the default stack size.
type Catalog struct {
	defaultMax uint
	strict     bool
	stacks     map[string]uint
}

// New builds a catalog. Returns ErrInvalidName for a blank entry name and
// ErrDuplicateItem when a name is listed twice.
func New(defaultMax uint, strict bool, entries []Entry) (*Catalog, error) {
	c := &Catalog{
		defaultMax: defaultMax,
		strict:     strict,
		stacks:     make(map[string]uint, len(entries)),
	}
	for i, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrInvalidName)
		}
		if _, ok := c.stacks[name]; ok {
			return nil, fmt.Errorf("entry %d: %w: %q", i, ErrDuplicateItem, name)
		}
		c.stacks[name] = e.MaxStack
	}
	return c, nil
}

// FromConfig builds a catalog from the default_max_stack, strict_items and
// items keys of v. Returns ErrInvalidStackSize for a negative
// default_max_stack or item max_stack.
func FromConfig(v *viper.Viper) (*Catalog, error) {
	v.SetDefault(KeyDefaultMaxStack, DefaultMaxStack)

	defaultMax := v.GetInt(KeyDefaultMaxStack)
	if defaultMax < 0 {
		return nil, fmt.Errorf("%s: %w: %d", KeyDefaultMaxStack, ErrInvalidStackSize, defaultMax)
	}

	var raw []configEntry
	if err := v.UnmarshalKey(KeyItems, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", KeyItems, err)
	}
	entries := make([]Entry, 0, len(raw))
	for i, e := range raw {
		if e.MaxStack < 0 {
			return nil, fmt.Errorf("entry %d: %w: %d", i, ErrInvalidStackSize, e.MaxStack)
		}
		entries = append(entries, Entry{Name: e.Name, MaxStack: uint(e.MaxStack)})
	}
	return New(uint(defaultMax), v.GetBool(KeyStrictItems), entries)
}

// Lookup returns the item for name.
// Returns ErrInvalidName for a blank name and ErrUnknownItem when a strict
// catalog does not list it.
func (c *Catalog) Lookup(name string) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, ErrInvalidName
	}
	if size, ok := c.stacks[name]; ok {
		return Item{Name: name, MaxStack: size}, nil
	}
	if c.strict {
		return Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, name)
	}
	return Item{Name: name, MaxStack: c.defaultMax}, nil
}

// Entries returns the listed items sorted by name.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.stacks))
	for name, size := range c.stacks {
		out = append(out, Entry{Name: name, MaxStack: size})
	}
	slices.SortFunc(out, func(a, b Entry) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// DefaultMax returns the stack size used for unlisted names.
func (c *Catalog) DefaultMax() uint {
	return c.defaultMax
}

// Strict reports whether unlisted names are rejected.
func (c *Catalog) Strict() bool {
	return c.strict
}
