// Package cli implements the records command-line interface: a harness that
// builds records from pkg/types, applies assignments and reports their slots.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mesh-intelligence/records/internal/paths"
	"github.com/mesh-intelligence/records/pkg/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps a command error to the process exit code. Errors raised by
// cobra itself (unknown flags, bad arguments) count as user errors.
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

// app holds global flag values and the state resolved before a subcommand runs.
type app struct {
	configDir string
	jsonMode  bool

	v      *viper.Viper
	cfg    types.Config
	logger *slog.Logger
}

// NewRootCmd creates the top-level "records" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "records",
		Short: "Inspect fixed-arity numeric records",
		Long: "Records builds a three-slot numeric record in either the tuple or the\n" +
			"array layout, applies item=value assignments and reports every slot,\n" +
			"the sum and whether the record is still in its default state.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.String("variant", "", "storage variant: tuple or array (default: array)")
	pf.String("log-level", "", "log level: debug, info, warn or error (default: info)")
	pf.BoolVar(&a.jsonMode, "json", false, "output in JSON format")

	// Flags take precedence over env and config.yaml once bound.
	_ = a.v.BindPFlag(cfgKeyVariant, pf.Lookup("variant"))
	_ = a.v.BindPFlag(cfgKeyLogLevel, pf.Lookup("log-level"))

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newItemsCmd(a))
	root.AddCommand(newEvalCmd(a))

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return exitCode(err)
}

// setup resolves the config directory, loads configuration and builds the
// logger. The version command needs none of it.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = configDir

	cfg, err := loadConfig(a.v, configDir)
	if err != nil {
		return userError(err)
	}
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	a.logger.Debug("configuration loaded",
		"config_dir", configDir,
		"variant", cfg.Variant,
		"log_level", cfg.LogLevel,
	)
	return nil
}
