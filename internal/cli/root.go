// Package cli implements the stockpile command-line interface: loading
// inventory layouts, rearranging them, and rendering the result.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/stockpile/internal/catalog"
	"github.com/mesh-intelligence/stockpile/internal/logging"
	"github.com/mesh-intelligence/stockpile/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// ErrConflictingOutput is returned when more than one output mode is requested.
var ErrConflictingOutput = errors.New("--json and --yaml are mutually exclusive")

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	logLevel  string
	jsonMode  bool
	yamlMode  bool
}

// app is the state shared by the commands of one root command.
type app struct {
	flags     rootFlags
	configDir string
	config    *viper.Viper
	catalog   *catalog.Catalog
	logger    *zap.Logger
	newLogger func(level string) (*zap.Logger, error)
}

// NewRootCmd creates the top-level "stockpile" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root, _ := newRoot()
	return root
}

func newRoot() (*cobra.Command, *app) {
	a := &app{logger: zap.NewNop(), newLogger: logging.New}

	root := &cobra.Command{
		Use:   "stockpile",
		Short: "Inspect and rearrange stackable-item inventories",
		Long: "Stockpile loads inventory layouts from YAML files, swaps and sorts\n" +
			"their slots, and renders the result. Filtered slots keep their position.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsSetup(cmd) {
				return nil
			}
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default: warn)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVar(&a.flags.yamlMode, "yaml", false, "output as a layout YAML document")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newSwapCmd(a))
	root.AddCommand(newSortCmd(a))
	root.AddCommand(newItemsCmd(a))

	return root, a
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root, a := newRoot()
	if code := execute(root, a, os.Stderr); code != exitSuccess {
		os.Exit(code)
	}
}

// execute runs root, flushes the logger whether or not the command failed,
// and returns the exit code.
func execute(root *cobra.Command, a *app, stderr io.Writer) int {
	err := root.Execute()
	_ = a.logger.Sync()
	if err != nil {
		fmt.Fprintln(stderr, "stockpile:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// skipsSetup reports whether cmd runs without config, logger or catalog:
// version, help, and the shell completion commands.
func skipsSetup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "version", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}

// setup resolves the config directory, loads config.yaml, and builds the
// logger and item catalog.
func (a *app) setup(cmd *cobra.Command) error {
	if a.flags.jsonMode && a.flags.yamlMode {
		return userError(ErrConflictingOutput)
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = configDir

	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	a.config = cfg

	level := cfg.GetString(cfgKeyLogLevel)
	if cmd.Flags().Changed("log-level") {
		level = a.flags.logLevel
	}
	logger, err := a.newLogger(level)
	if err != nil {
		return userError(err)
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))

	cat, err := catalog.FromConfig(cfg)
	if err != nil {
		return userError(fmt.Errorf("load item catalog: %w", err))
	}
	a.catalog = cat

	a.logger.Debug("configuration loaded",
		zap.String("config_dir", configDir),
		zap.Uint("default_max_stack", cat.DefaultMax()),
		zap.Int("catalog_items", len(cat.Entries())))
	return nil
}

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error returned by a command to an exit code. Errors that
// carry no code (argument validation by cobra) are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
