package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockpile/internal/layout"
)

// slotView is the JSON form of one slot.
type slotView struct {
	Index    int    `json:"index"`
	Display  string `json:"display"`
	Item     string `json:"item,omitempty"`
	Count    uint   `json:"count"`
	MaxStack uint   `json:"max_stack,omitempty"`
	Filter   string `json:"filter,omitempty"`
}

// layoutView is the JSON form of a layout.
type layoutView struct {
	ID      string     `json:"id"`
	Size    int        `json:"size"`
	Display string     `json:"display"`
	Slots   []slotView `json:"slots"`
}

func newLayoutView(l *layout.Layout) layoutView {
	v := layoutView{
		ID:      l.ID.String(),
		Size:    l.Inventory.Size(),
		Display: l.Inventory.String(),
		Slots:   make([]slotView, 0, l.Inventory.Size()),
	}
	for i, s := range l.Inventory.All() {
		sv := slotView{Index: i, Display: s.String(), Count: s.Count()}
		if it, ok := s.Item(); ok {
			sv.Item = it.Name
			sv.MaxStack = it.MaxStackSize()
		}
		if f, ok := s.Filter(); ok {
			sv.Filter = f.Name
		}
		v.Slots = append(v.Slots, sv)
	}
	return v
}

// render writes the layout in the selected output mode.
func (a *app) render(cmd *cobra.Command, l *layout.Layout) error {
	out := cmd.OutOrStdout()
	switch {
	case a.flags.jsonMode:
		data, err := json.MarshalIndent(newLayoutView(l), "", "  ")
		if err != nil {
			return sysError(fmt.Errorf("marshal layout: %w", err))
		}
		fmt.Fprintln(out, string(data))
	case a.flags.yamlMode:
		if err := layout.Encode(out, l); err != nil {
			return sysError(err)
		}
	default:
		fmt.Fprintln(out, l.Inventory.String())
	}
	return nil
}
