// SPDX-License-Identifier: MIT

// Package cli implements the lvunit command tree.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/lvunit/format"
	"github.com/katalvlaran/lvunit/internal/config"
	"github.com/katalvlaran/lvunit/internal/logger"
	"github.com/katalvlaran/lvunit/quantity"
	"github.com/katalvlaran/lvunit/unit"
	"github.com/katalvlaran/lvunit/unit/catalog"
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// Execute runs lvunit with the process arguments and exits non-zero on error.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	a.close()
	if err != nil {
		return 1
	}

	return 0
}

// app is the state shared by subcommands once the root pre-run has set it up.
type app struct {
	cfg     config.Config
	reg     *unit.Registry
	form    *format.Formatter
	cleanup func() error
}

func newRootCmd(a *app) *cobra.Command {
	var flags config.Config

	cmd := &cobra.Command{
		Use:          "lvunit",
		Short:        "Dimensional analysis and unit conversion",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return a.setup(c, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&flags.Debug, "debug", false, "verbose logging (env LVUNIT_DEBUG)")
	pf.StringVar(&flags.Catalog, "catalog", "", "YAML unit catalogue to load (env LVUNIT_CATALOG)")
	pf.StringVar(&flags.LogDir, "log-dir", "", "write lvunit.log to this directory (env LVUNIT_LOG_DIR)")
	pf.IntVar(&flags.Precision, "precision", format.DefaultPrecision, "significant digits (env LVUNIT_PRECISION)")
	pf.StringVar(&flags.DimStyle, "dim-style", "plain", "dimension style: plain or fraction (env LVUNIT_DIM_STYLE)")

	cmd.AddCommand(convertCmd(a), bestCmd(a), unitsCmd(a), dimCmd(a), versionCmd())
	return cmd
}

// setup merges environment and flags, installs the logger, builds the
// registry (standard units plus the optional catalogue) and the formatter.
func (a *app) setup(c *cobra.Command, flags config.Config) error {
	cfg, err := config.Parse()
	if err != nil {
		return err
	}
	fs := c.Flags()
	if fs.Changed("debug") {
		cfg.Debug = flags.Debug
	}
	if fs.Changed("catalog") {
		cfg.Catalog = flags.Catalog
	}
	if fs.Changed("log-dir") {
		cfg.LogDir = flags.LogDir
	}
	if fs.Changed("precision") {
		cfg.Precision = flags.Precision
	}
	if fs.Changed("dim-style") {
		cfg.DimStyle = flags.DimStyle
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	// Registered while the logger still discards.
	reg := unit.NewRegistry()
	if err := unit.RegisterStandard(reg); err != nil {
		return err
	}

	lc := cfg.Logger()
	lc.Stderr = c.ErrOrStderr()
	cleanup, err := logger.Setup(lc)
	if err != nil {
		return fmt.Errorf("logger setup: %w", err)
	}
	a.cleanup = cleanup

	if cfg.Catalog != "" {
		if _, err := catalog.Load(cfg.Catalog, reg); err != nil {
			return err
		}
	}
	a.reg = reg
	a.form = format.New(append(cfg.FormatOptions(), format.WithRegistry(reg))...)
	logger.L().Info("command.start", "cmd", c.CommandPath(), "catalog", cfg.Catalog)

	return nil
}

func (a *app) close() {
	if a.cleanup == nil {
		return
	}
	logger.L().Info("command.done")
	_ = a.cleanup()
	a.cleanup = nil
}

// quantity parses "<value>" in the unit expression expr.
func (a *app) quantity(value, expr string) (quantity.Quantity, error) {
	x, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("invalid value %q: %w", value, err)
	}
	u, err := a.reg.Parse(expr)
	if err != nil {
		return quantity.Quantity{}, err
	}

	return u.New(x)
}

// describe renders a unit symbolically: "10^3 m", "m^2 kg s^-3", "1".
func (a *app) describe(u unit.Unit) string {
	d := a.form.Dim(u.Dim())
	switch {
	case u.Scale() == 0 && d == "":
		return "1"
	case u.Scale() == 0:
		return d
	case d == "":
		return fmt.Sprintf("10^%d", u.Scale())
	default:
		return fmt.Sprintf("10^%d %s", u.Scale(), d)
	}
}
