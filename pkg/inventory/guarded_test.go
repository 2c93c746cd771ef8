package inventory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGuardedConcurrentAccess(t *testing.T) {
	g := NewGuarded(exampleInventory(t))

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range 50 {
				switch (w + n) % 3 {
				case 0:
					_ = g.Update(func(inv *Inventory[testItem]) error {
						inv.Sort()
						return nil
					})
				case 1:
					_ = g.Update(func(inv *Inventory[testItem]) error {
						return inv.Swap(0, 4)
					})
				default:
					g.View(func(inv *Inventory[testItem]) {
						_ = inv.String()
					})
				}
			}
		}()
	}
	wg.Wait()

	g.View(func(inv *Inventory[testItem]) {
		assert.Equal(t, 5, inv.Size())
		s, err := inv.Get(2)
		require.NoError(t, err)
		assert.True(t, s.HasFilter(), "filtered slot must not move")
	})
}

func TestGuardedUpdateReturnsError(t *testing.T) {
	g := NewGuarded(exampleInventory(t))
	err := g.Update(func(inv *Inventory[testItem]) error {
		return inv.Swap(0, 99)
	})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, "[ ] (0), [B] (2/10), {C} (0), [A] (1/10), [ ] (0)", g.String())
}
