// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ava-labs/fixedpoint/params"
)

// intType is a [pflag.Value] accepting only the keys of [calculators].
type intType string

var _ pflag.Value = (*intType)(nil)

func (t *intType) String() string { return string(*t) }
func (*intType) Type() string     { return "type" }

func (t *intType) Set(s string) error {
	if _, ok := calculators[s]; !ok {
		return fmt.Errorf("%w %q; must be one of %s", errUnknownType, s, strings.Join(typeNames(), "|"))
	}
	*t = intType(s)
	return nil
}

type options struct {
	typ      intType
	host     bool
	logLevel string
	scale    string
	log      logging.Logger
}

func (o *options) register(flags *pflag.FlagSet) {
	o.typ = "i128"
	flags.Var(&o.typ, "type", fmt.Sprintf("Integer type of all operands (%s)", strings.Join(typeNames(), "|")))
	flags.BoolVar(&o.host, "host", false, "Use the host contract, escalating to a wider type on intermediate overflow")
	flags.StringVar(&o.logLevel, "log-level", logging.Info.LowerString(), "Logging level")
	flags.StringVar(&o.scale, "scale", fmt.Sprint(params.Stroop), "Denominator used when only two operands are provided")
}

// newRootCmd returns the fpcalc command tree, constructing its logger with
// `newLogger` once flags are parsed.
func newRootCmd(newLogger func(logging.Level) logging.Logger) *cobra.Command {
	opts := new(options)
	root := &cobra.Command{
		Use:           "fpcalc",
		Short:         "Rounded fixed-point multiplication and division",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			lvl, err := logging.ToLevel(opts.logLevel)
			if err != nil {
				return err
			}
			opts.log = newLogger(lvl)
			return nil
		},
	}
	opts.register(root.PersistentFlags())

	for _, op := range operations {
		root.AddCommand(newOperationCmd(opts, op))
	}
	root.AddCommand(newWidthsCmd(opts))
	return root
}

func newOperationCmd(opts *options, op operation) *cobra.Command {
	expr := "X*Y/DENOMINATOR"
	if op.div {
		expr = "X*DENOMINATOR/Y"
	}
	return &cobra.Command{
		Use:   op.name + " X Y [DENOMINATOR]",
		Short: fmt.Sprintf("Compute %s(%s)", op.rounding, expr),
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				args = append(args, opts.scale)
			}
			var operands [3]*big.Int
			for i, a := range args {
				b, err := parseOperand(a)
				if err != nil {
					return err
				}
				operands[i] = b
			}

			log := opts.log.With(
				zap.String("type", string(opts.typ)),
				zap.String("op", op.name),
				zap.Bool("host", opts.host),
				zap.Stringer("x", operands[0]),
				zap.Stringer("y", operands[1]),
				zap.Stringer("denominator", operands[2]),
			)
			log.Debug("Computing")

			calc := calculators[string(opts.typ)]
			q, err := calc.compute(op, opts.host, operands[0], operands[1], operands[2])
			if err != nil {
				log.Warn("Computation failed", zap.Error(err))
				return err
			}
			log.Debug("Computed", zap.Stringer("result", q))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), q)
			return err
		},
	}
}

func newWidthsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "widths",
		Short: "List the widths at which each integer type is computed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range typeNames() {
				calc := calculators[name]
				if _, err := fmt.Fprintf(out, "%s\ttiers=%s\trecoverable=%s\thost=%s\n",
					name,
					joinWidths(params.Chain(calc.width)),
					joinWidths(calc.widths(false)),
					joinWidths(calc.widths(true)),
				); err != nil {
					return err
				}
			}
			opts.log.Debug("Listed widths", zap.Int("types", len(calculators)))
			return nil
		},
	}
}

func joinWidths(ws []params.Width) string {
	s := make([]string, len(ws))
	for i, w := range ws {
		s[i] = w.String()
	}
	return strings.Join(s, ">")
}
