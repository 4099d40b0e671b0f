package cmd

import (
	"fmt"
	"strconv"

	"github.com/govalues/decimal"
	"github.com/spf13/cobra"

	mxerrors "github.com/msto63/mathsex/foundation/core/errors"
	"github.com/msto63/mathsex/foundation/utils/fractionx"
)

func (a *app) fractionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:     "fraction",
		Aliases: []string{"frac"},
		Short:   "Rechnen mit Brüchen",
		Long: `Rechnet exakt mit Brüchen n/d. Jeder Bruch wird als Zähler und
Nenner übergeben, der Nenner muss positiv sein.

Beispiele:
  mathsex fraction add 1 2 1 3
  mathsex fraction decimal 1 3 --scale 4
  mathsex fraction from-float 0.75`,
	}

	c.AddCommand(
		a.fractionBinaryCmd("add", "Summe zweier Brüche", "+", fractionx.Fraction.Add),
		a.fractionBinaryCmd("sub", "Differenz zweier Brüche", "-", fractionx.Fraction.Sub),
		a.fractionBinaryCmd("mul", "Produkt zweier Brüche", "*", fractionx.Fraction.Mul),
		a.fractionBinaryCmd("div", "Quotient zweier Brüche", "/", fractionx.Fraction.Div),
		a.fractionCmpCmd(),
		a.fractionUnaryCmd("simplify", "Bruch kürzen", func(f fractionx.Fraction) (fractionx.Fraction, error) {
			return f.Simplify(), nil
		}),
		a.fractionUnaryCmd("inc", "Zähler um eins erhöhen", fractionx.Fraction.Inc),
		a.fractionUnaryCmd("dec", "Zähler um eins verringern", fractionx.Fraction.Dec),
		a.fractionFloatCmd(),
		a.fractionDecimalCmd(),
		a.fractionFromFloatCmd(),
		a.fractionFromDecimalCmd(),
	)
	return c
}

// fractionResult renders f together with its fixed-point form
func (a *app) fractionResult(expr string, f fractionx.Fraction) Result {
	return Result{
		Expression: expr,
		Value:      f.String(),
		Decimal:    f.FormatFixed(a.settings.OutputScale),
	}
}

func (a *app) fractionBinaryCmd(name, short, symbol string, fn func(x, y fractionx.Fraction) (fractionx.Fraction, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <n1> <d1> <n2> <d2>",
		Short: short,
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "fraction."+name, func() (Result, error) {
				fs, err := parseFractions(args)
				if err != nil {
					return Result{}, err
				}
				res, err := fn(fs[0], fs[1])
				if err != nil {
					return Result{}, err
				}
				return a.fractionResult(fmt.Sprintf("%s %s %s", fs[0], symbol, fs[1]), res), nil
			})
		},
	}
}

func (a *app) fractionCmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <n1> <d1> <n2> <d2>",
		Short: "Vergleicht zwei Brüche (-1, 0, 1)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "fraction.cmp", func() (Result, error) {
				fs, err := parseFractions(args)
				if err != nil {
					return Result{}, err
				}
				return Result{
					Expression: fmt.Sprintf("cmp(%s, %s)", fs[0], fs[1]),
					Value:      strconv.Itoa(fs[0].Cmp(fs[1])),
				}, nil
			})
		},
	}
}

func (a *app) fractionUnaryCmd(name, short string, fn func(f fractionx.Fraction) (fractionx.Fraction, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <n> <d>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "fraction."+name, func() (Result, error) {
				fs, err := parseFractions(args)
				if err != nil {
					return Result{}, err
				}
				res, err := fn(fs[0])
				if err != nil {
					return Result{}, err
				}
				return a.fractionResult(fmt.Sprintf("%s(%s)", name, fs[0]), res), nil
			})
		},
	}
}

func (a *app) fractionFloatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "float <n> <d>",
		Short: "Bruch als Gleitkommazahl",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "fraction.float", func() (Result, error) {
				fs, err := parseFractions(args)
				if err != nil {
					return Result{}, err
				}
				return Result{
					Expression: fs[0].String(),
					Value:      strconv.FormatFloat(fs[0].Float64(), 'g', -1, 64),
				}, nil
			})
		},
	}
}

func (a *app) fractionDecimalCmd() *cobra.Command {
	var scale int

	cmd := &cobra.Command{
		Use:   "decimal <n> <d>",
		Short: "Bruch als Festkommazahl (halb auf gerade gerundet)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "fraction.decimal", func() (Result, error) {
				fs, err := parseFractions(args)
				if err != nil {
					return Result{}, err
				}
				s := scale
				if !cmd.Flags().Changed("scale") {
					s = a.settings.OutputScale
				}
				d, err := fs[0].Decimal(s)
				if err != nil {
					return Result{}, err
				}
				return Result{
					Expression: fs[0].String(),
					Value:      d.String(),
				}, nil
			})
		},
	}

	cmd.Flags().IntVar(&scale, "scale", 0, "Nachkommastellen (0-18, default: output.scale)")
	return cmd
}

func (a *app) fractionFromFloatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-float <x>",
		Short: "Gleitkommazahl als gekürzter Bruch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "fraction.from_float", func() (Result, error) {
				v, err := parseFloat(args[0])
				if err != nil {
					return Result{}, err
				}
				f, err := fractionx.FromFloat(v)
				if err != nil {
					return Result{}, err
				}
				return Result{
					Expression: strconv.FormatFloat(v, 'g', -1, 64),
					Value:      f.String(),
				}, nil
			})
		},
	}
}

func (a *app) fractionFromDecimalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-decimal <x>",
		Short: "Dezimalzahl exakt als gekürzter Bruch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "fraction.from_decimal", func() (Result, error) {
				d, err := decimal.Parse(args[0])
				if err != nil {
					return Result{}, mxerrors.InvalidFormat(mxerrors.ModuleCLI, args[0], "decimal number")
				}
				f, err := fractionx.FromDecimal(d)
				if err != nil {
					return Result{}, err
				}
				return Result{
					Expression: d.String(),
					Value:      f.String(),
				}, nil
			})
		},
	}
}
