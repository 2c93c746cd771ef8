package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/stockpile/internal/layout"
	"github.com/mesh-intelligence/stockpile/internal/paths"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <layout>",
		Short: "Render a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.loadLayout(args[0])
			if err != nil {
				return err
			}
			return a.render(cmd, l)
		},
	}
}

func newSwapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "swap <layout> <i> <j>",
		Short: "Swap two slots of a layout and render the result",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := strconv.Atoi(args[1])
			if err != nil {
				return userError(fmt.Errorf("slot index %q: %w", args[1], err))
			}
			j, err := strconv.Atoi(args[2])
			if err != nil {
				return userError(fmt.Errorf("slot index %q: %w", args[2], err))
			}

			l, err := a.loadLayout(args[0])
			if err != nil {
				return err
			}
			if err := l.Inventory.Swap(i, j); err != nil {
				return userError(fmt.Errorf("swap: %w", err))
			}
			a.logger.Info("slots swapped",
				zap.Stringer("layout_id", l.ID),
				zap.Int("i", i),
				zap.Int("j", j))
			return a.render(cmd, l)
		},
	}
}

func newSortCmd(a *app) *cobra.Command {
	var compress bool

	cmd := &cobra.Command{
		Use:   "sort <layout>",
		Short: "Sort a layout and render the result",
		Long: "Sort orders the slots between filtered slots, leaving filtered slots in place.\n" +
			"With --compress, items may also move past filtered slots.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.loadLayout(args[0])
			if err != nil {
				return err
			}
			if compress {
				l.Inventory.Compress()
			} else {
				l.Inventory.Sort()
			}
			a.logger.Info("layout sorted",
				zap.Stringer("layout_id", l.ID),
				zap.Bool("compress", compress))
			return a.render(cmd, l)
		},
	}
	cmd.Flags().BoolVar(&compress, "compress", false, "sort across filtered slots")
	return cmd
}

// loadLayout resolves a layout argument and decodes it with the configured
// catalog. Decoding failures are user errors.
func (a *app) loadLayout(arg string) (*layout.Layout, error) {
	path, err := paths.ResolveLayoutPath(arg, a.config.GetString(cfgKeyLayoutDir))
	if err != nil {
		return nil, sysError(fmt.Errorf("resolve layout path: %w", err))
	}

	l, err := layout.Load(path, a.catalog)
	if err != nil {
		return nil, userError(err)
	}

	a.logger.Debug("layout loaded",
		zap.String("path", path),
		zap.Stringer("layout_id", l.ID),
		zap.Int("size", l.Inventory.Size()))
	return l, nil
}
