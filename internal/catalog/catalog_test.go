package catalog

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockpile/pkg/inventory"
)

func TestItemSatisfiesInventoryItem(t *testing.T) {
	var _ inventory.Item[Item] = Item{}

	a := Item{Name: "A", MaxStack: 10}
	b := Item{Name: "B", MaxStack: 1}
	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
	assert.Zero(t, a.Compare(Item{Name: "A", MaxStack: 99}), "stack size does not affect order")
	assert.Equal(t, "A", a.String())
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{
			name:    "no entries",
			entries: nil,
		},
		{
			name:    "distinct entries",
			entries: []Entry{{Name: "Iron", MaxStack: 64}, {Name: "Sword", MaxStack: 1}},
		},
		{
			name:    "blank name rejected",
			entries: []Entry{{Name: "  ", MaxStack: 5}},
			wantErr: ErrInvalidName,
		},
		{
			name:    "duplicate name rejected",
			entries: []Entry{{Name: "Iron", MaxStack: 64}, {Name: "Iron", MaxStack: 32}},
			wantErr: ErrDuplicateItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(DefaultMaxStack, false, tt.entries)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Len(t, c.Entries(), len(tt.entries))
		})
	}
}

func TestLookup(t *testing.T) {
	entries := []Entry{{Name: "Sword", MaxStack: 1}, {Name: "Iron", MaxStack: 64}}

	t.Run("listed name uses its stack size", func(t *testing.T) {
		c, err := New(10, false, entries)
		require.NoError(t, err)
		it, err := c.Lookup("Iron")
		require.NoError(t, err)
		assert.Equal(t, Item{Name: "Iron", MaxStack: 64}, it)
	})

	t.Run("unlisted name uses default", func(t *testing.T) {
		c, err := New(10, false, entries)
		require.NoError(t, err)
		it, err := c.Lookup(" Gold ")
		require.NoError(t, err)
		assert.Equal(t, Item{Name: "Gold", MaxStack: 10}, it)
	})

	t.Run("strict catalog rejects unlisted name", func(t *testing.T) {
		c, err := New(10, true, entries)
		require.NoError(t, err)
		_, err = c.Lookup("Gold")
		assert.ErrorIs(t, err, ErrUnknownItem)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		c, err := New(10, false, nil)
		require.NoError(t, err)
		_, err = c.Lookup("")
		assert.ErrorIs(t, err, ErrInvalidName)
	})
}

func TestEntriesSorted(t *testing.T) {
	c, err := New(10, false, []Entry{{Name: "c", MaxStack: 1}, {Name: "a", MaxStack: 2}, {Name: "b", MaxStack: 3}})
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Name: "a", MaxStack: 2}, {Name: "b", MaxStack: 3}, {Name: "c", MaxStack: 1}}, c.Entries())
}

func TestFromConfig(t *testing.T) {
	t.Run("reads items and defaults", func(t *testing.T) {
		v := viper.New()
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(strings.NewReader(`
default_max_stack: 16
strict_items: true
items:
  - name: Sword
    max_stack: 1
  - name: Arrow
    max_stack: 64
`)))

		c, err := FromConfig(v)
		require.NoError(t, err)
		assert.Equal(t, uint(16), c.DefaultMax())
		assert.True(t, c.Strict())
		assert.Equal(t, []Entry{{Name: "Arrow", MaxStack: 64}, {Name: "Sword", MaxStack: 1}}, c.Entries())
	})

	t.Run("empty config uses default stack size", func(t *testing.T) {
		c, err := FromConfig(viper.New())
		require.NoError(t, err)
		assert.Equal(t, uint(DefaultMaxStack), c.DefaultMax())
		assert.False(t, c.Strict())
		assert.Empty(t, c.Entries())
	})

	negative := []struct {
		name    string
		config  string
		wantMsg string
	}{
		{
			name:    "negative default stack size rejected",
			config:  "default_max_stack: -5\n",
			wantMsg: KeyDefaultMaxStack,
		},
		{
			name:    "negative item stack size rejected",
			config:  "items:\n  - name: Iron\n    max_stack: 64\n  - name: Ore\n    max_stack: -3\n",
			wantMsg: "entry 1",
		},
	}
	for _, tt := range negative {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.SetConfigType("yaml")
			require.NoError(t, v.ReadConfig(strings.NewReader(tt.config)))

			c, err := FromConfig(v)
			assert.ErrorIs(t, err, ErrInvalidStackSize)
			assert.ErrorContains(t, err, tt.wantMsg)
			assert.Nil(t, c)
		})
	}

	t.Run("zero stack size is allowed", func(t *testing.T) {
		v := viper.New()
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(strings.NewReader("items:\n  - name: Ghost\n    max_stack: 0\n")))

		c, err := FromConfig(v)
		require.NoError(t, err)
		assert.Equal(t, []Entry{{Name: "Ghost", MaxStack: 0}}, c.Entries())
	})
}
