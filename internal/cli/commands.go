// Package cli implements the ircor command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ircor/corr"
	"github.com/katalvlaran/ircor/internal/config"
)

// Version is overridden at build time:
//
//	go build -ldflags "-X github.com/katalvlaran/ircor/internal/cli.Version=v1.2.3"
var Version = "dev"

// ErrCoefficientFailed is returned after rendering when a coefficient named
// on the command line rejected the input.
var ErrCoefficientFailed = errors.New("coefficient rejected the input")

// app carries the state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand builds the ircor command tree reading from stdin and
// writing results to stdout and diagnostics to stderr.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "ircor",
		Short: "Rank correlation coefficients for comparing system rankings",
		Long: `ircor compares two score lists over the same items with Kendall's tau
family and the AP correlation family, which weighs agreement at the top of
the ranking more heavily.

Commands:
  compute   Compute one or more coefficients
  list      List the available coefficients`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./ircor.yaml or $HOME/.config/ircor/ircor.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(a.computeCommand())
	root.AddCommand(a.listCommand())
	root.AddCommand(versionCommand())

	return root
}

// setup loads configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	lvl, err := cfg.SlogLevel()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = NewLogger(cmd.ErrOrStderr(), lvl, cfg.Log.Format)
	a.logger.Debug("configuration loaded",
		"format", cfg.Output.Format, "decreasing", cfg.Decreasing, "log_level", lvl.String())

	return nil
}

type computeFlags struct {
	x, y       string
	input      string
	format     string
	increasing bool
}

func (a *app) computeCommand() *cobra.Command {
	f := &computeFlags{}

	names := make([]string, 0, len(corr.Coefficients()))
	for _, c := range corr.Coefficients() {
		names = append(names, c.String())
	}

	cmd := &cobra.Command{
		Use:   "compute [coefficient...]",
		Short: "Compute coefficients between two score lists",
		Long: `Compute the named coefficients, or all of them when none is named.

x is the reference (true) scoring and y the estimate. By default larger
values rank higher; pass --increasing when the inputs are ranks with 1 best.
Coefficients that do not accept ties report an error for tied input while
the others are still computed.`,
		Example: `  ircor compute --x 0.9,0.4,0.7,0.2 --y 0.8,0.5,0.6,0.1
  ircor compute tau_b tauap_b --input run.yaml --format json`,
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompute(cmd, f, args)
		},
	}

	cmd.Flags().StringVar(&f.x, "x", "", "reference scores, comma-separated")
	cmd.Flags().StringVar(&f.y, "y", "", "estimated scores, comma-separated")
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "YAML file with x, y and optional coefficients (- for stdin)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: text, json or yaml (default from config)")
	cmd.Flags().BoolVar(&f.increasing, "increasing", false, "treat smaller values as better (rank lists)")

	return cmd
}

func (a *app) runCompute(cmd *cobra.Command, f *computeFlags, args []string) error {
	in, err := readInput(cmd, f)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = in.Coefficients
	}

	coefs, err := parseCoefficients(args)
	if err != nil {
		return err
	}

	format := a.cfg.Output.Format
	if f.format != "" {
		fv := strings.ToLower(strings.TrimSpace(f.format))
		if !slices.Contains(config.Formats, fv) {
			return fmt.Errorf("%w: %q", config.ErrInvalidFormat, f.format)
		}
		format = fv
	}

	decreasing := a.cfg.Decreasing
	if cmd.Flags().Changed("increasing") {
		decreasing = !f.increasing
	}

	if _, _, err := corr.Validate(in.X, in.Y, corr.Permissive); err != nil {
		return err
	}
	a.logger.Debug("input loaded", "n", len(in.X), "coefficients", len(coefs), "decreasing", decreasing)

	results, err := computeResults(cmd.Context(), coefs, in.X, in.Y, corr.WithDecreasing(decreasing))
	if err != nil {
		return err
	}

	rep := Report{N: len(in.X), Decreasing: decreasing, Results: make([]Row, 0, len(results))}
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			a.logger.Warn("coefficient rejected input", "coefficient", r.Coefficient.String(), "error", r.Err)
		}
		rep.Results = append(rep.Results, NewRow(r))
	}

	if err := Render(cmd.OutOrStdout(), format, rep); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if failed > 0 && len(args) > 0 {
		return fmt.Errorf("%w: %d of %d", ErrCoefficientFailed, failed, len(results))
	}

	return nil
}

// readInput resolves --x/--y or --input into one Input.
func readInput(cmd *cobra.Command, f *computeFlags) (*Input, error) {
	if f.input != "" {
		if f.x != "" || f.y != "" {
			return nil, ErrMixedInput
		}

		return LoadInput(f.input, cmd.InOrStdin())
	}
	if f.x == "" && f.y == "" {
		return nil, ErrNoInput
	}

	x, err := ParseValues(f.x)
	if err != nil {
		return nil, fmt.Errorf("--x: %w", err)
	}
	y, err := ParseValues(f.y)
	if err != nil {
		return nil, fmt.Errorf("--y: %w", err)
	}

	return &Input{X: x, Y: y}, nil
}

// parseCoefficients resolves names in order, dropping repeats. No names
// selects every coefficient.
func parseCoefficients(names []string) ([]corr.Coefficient, error) {
	if len(names) == 0 {
		return corr.Coefficients(), nil
	}

	out := make([]corr.Coefficient, 0, len(names))
	for _, name := range names {
		c, err := corr.ParseCoefficient(name)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}

	return out, nil
}

// computeResults evaluates each coefficient in its own goroutine. A
// coefficient error is recorded in its Result; only cancellation aborts.
func computeResults(ctx context.Context, coefs []corr.Coefficient, x, y []float64, opts ...corr.Option) ([]corr.Result, error) {
	results := make([]corr.Result, len(coefs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range coefs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := corr.Compute(c, x, y, opts...)
			results[i] = corr.Result{Coefficient: c, Value: v, Err: err}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available coefficients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTIES")
			for _, c := range corr.Coefficients() {
				fmt.Fprintf(tw, "%s\t%s\n", c, tiesAllowed(c.Profile()))
			}

			return tw.Flush()
		},
	}
}

func tiesAllowed(p corr.Profile) string {
	switch p {
	case corr.Strict:
		return "none"
	case corr.Asymmetric:
		return "y only"
	default:
		return "x and y"
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// version needs neither configuration nor a logger
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ircor %s\n", Version)
		},
	}
}
