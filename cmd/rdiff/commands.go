package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/rdiff/internal/autodiff"
	"github.com/born-ml/rdiff/internal/autodiff/ops"
	"github.com/born-ml/rdiff/internal/gradcheck"
)

// options are the flags shared by every command.
type options struct {
	mode    string
	prec    uint
	verbose bool
}

func (o *options) config(order int) (autodiff.Config, error) {
	mode, err := autodiff.ParseMode(o.mode)
	if err != nil {
		return autodiff.Config{}, err
	}
	return autodiff.Config{Order: order, Mode: mode}, nil
}

func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "rdiff",
		Short:         "Reverse-mode derivatives of special functions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.mode, "mode", autodiff.DefaultConfig().Mode.String(), "graph construction mode: eager or expression")
	root.PersistentFlags().UintVar(&opts.prec, "prec", 0, "mantissa bits for arbitrary precision (0 for float64)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress")

	root.AddCommand(
		newEvalCmd(opts),
		newCheckCmd(opts),
		newListCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rdiff %s\n", version)
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the functions eval and check accept",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			for _, fn := range autodiff.Functions() {
				fmt.Fprintf(w, "%-20s %d\n", fn.Name, fn.Arity)
			}
		},
	}
}

func newEvalCmd(opts *options) *cobra.Command {
	var order int
	cmd := &cobra.Command{
		Use:   "eval FUNCTION ARG...",
		Short: "Evaluate a function and its derivatives",
		Long: "Evaluate a function at the given arguments and print its derivatives\n" +
			"up to --order with respect to each differentiable argument.",
		Example: "  rdiff eval tgamma 5\n  rdiff eval --order 3 lgamma 2.5\n  rdiff eval --prec 256 powm1 1.5 0.25",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := autodiff.LookupFunction(args[0])
			if !ok {
				return fmt.Errorf("%w: %q (see rdiff list)", autodiff.ErrUnknownFunction, args[0])
			}
			vals, err := parseArgs(args[1:])
			if err != nil {
				return err
			}
			if len(vals) != fn.Arity {
				return fmt.Errorf("%s takes %d arguments, got %d", fn.Name, fn.Arity, len(vals))
			}
			cfg, err := opts.config(order)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.prec == 0 {
				return evaluate(w, func() *autodiff.Tape[float64] { return autodiff.NewFloat64(cfg) }, fn, vals, order)
			}
			return evaluate(w, func() *autodiff.Tape[*big.Float] { return autodiff.NewBig(opts.prec, cfg) }, fn, vals, order)
		},
	}
	cmd.Flags().IntVarP(&order, "order", "n", 1, "highest derivative order")
	// Arguments may be negative; stop flag parsing at FUNCTION.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func parseArgs(args []string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return vals, nil
}

// evaluate prints fn(vals) and, for each differentiable argument, its
// derivatives up to order. Each argument gets a fresh tape on which it is
// the only variable.
func evaluate[T any](w io.Writer, newTape func() *autodiff.Tape[T], fn autodiff.Function, vals []float64, order int) error {
	tape := newTape()
	y := autodiff.Call(tape, fn.Name, constants(tape, vals, -1)...)
	if err := y.Err(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s(%s) = %s\n", fn.Name, joinFloats(vals), y)

	rule := ops.Lookup(fn.Kind)
	for i := range vals {
		if !rule.Differentiable(len(fn.Fixed) + i) {
			continue
		}
		tape := newTape()
		args := constants(tape, vals, i)
		y := autodiff.Call(tape, fn.Name, args...)
		d, err := autodiff.Derivatives(y, args[i], order)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		for k, v := range d {
			fmt.Fprintf(w, "  d%s/dx%d%s = %s\n", power(k+1), i+1, power(k+1), tape.Library().Format(v))
		}
	}
	return nil
}

// constants puts vals on tape, all constants except position wrt.
func constants[T any](tape *autodiff.Tape[T], vals []float64, wrt int) []*autodiff.Var[T] {
	vars := make([]*autodiff.Var[T], len(vals))
	for i, v := range vals {
		if i == wrt {
			vars[i] = tape.VarFloat(v)
		} else {
			vars[i] = tape.ConstFloat(v)
		}
	}
	return vars
}

func power(k int) string {
	if k == 1 {
		return ""
	}
	return "^" + strconv.Itoa(k)
}

func joinFloats(vals []float64) string {
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(s, ", ")
}

var errCheckFailed = errors.New("derivative check failed")

func newCheckCmd(opts *options) *cobra.Command {
	cfg := gradcheck.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "check [FUNCTION...]",
		Short: "Compare derivatives with finite differences on random samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			tapeCfg, err := opts.config(1)
			if err != nil {
				return err
			}
			cfg.Logger = opts.logger(cmd.ErrOrStderr())

			if opts.prec == 0 {
				return runChecks(cmd.Context(), cmd.OutOrStdout(), func() *autodiff.Tape[float64] {
					return autodiff.NewFloat64(tapeCfg)
				}, args, cfg)
			}
			return runChecks(cmd.Context(), cmd.OutOrStdout(), func() *autodiff.Tape[*big.Float] {
				return autodiff.NewBig(opts.prec, tapeCfg)
			}, args, cfg)
		},
	}
	cmd.Flags().IntVar(&cfg.Samples, "samples", cfg.Samples, "points per function")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "sampler seed")
	cmd.Flags().Float64Var(&cfg.Tol.Rel, "rel", cfg.Tol.Rel, "relative tolerance")
	cmd.Flags().Float64Var(&cfg.Tol.Abs, "abs", cfg.Tol.Abs, "absolute tolerance")
	cmd.Flags().IntVar(&cfg.Parallel.NumWorkers, "workers", cfg.Parallel.NumWorkers, "concurrent samples")
	return cmd
}

func runChecks[T any](ctx context.Context, w io.Writer, newTape func() *autodiff.Tape[T], names []string, cfg gradcheck.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg.Parallel.Enabled = cfg.Parallel.NumWorkers > 1

	var reports []gradcheck.Report
	if len(names) == 0 {
		var err error
		if reports, err = gradcheck.SweepAll(ctx, newTape, cfg); err != nil {
			return err
		}
	}
	for _, name := range names {
		fn, ok := autodiff.LookupFunction(name)
		if !ok {
			return fmt.Errorf("%w: %q", autodiff.ErrUnknownFunction, name)
		}
		dom, ok := gradcheck.Domains[name]
		if !ok {
			return fmt.Errorf("no sampling domain for %q", name)
		}
		rep, err := gradcheck.Sweep(ctx, newTape, fn, dom, cfg)
		if err != nil {
			return err
		}
		reports = append(reports, rep)
	}

	failed := 0
	for _, r := range reports {
		status := "ok"
		if !r.Passed() {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(w, "%-4s %-20s %d/%d\n", status, r.Function, len(r.Samples)-r.Failed, len(r.Samples))
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d functions", errCheckFailed, failed, len(reports))
	}
	return nil
}
