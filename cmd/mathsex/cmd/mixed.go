package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mathsex/foundation/utils/fractionx"
)

func (a *app) mixedCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "mixed",
		Short: "Rechnen mit gemischten Zahlen",
		Long: `Rechnet mit gemischten Zahlen "w n/d" aus einem positiven Ganzteil
und einem positiven Bruch.

Beispiele:
  mathsex mixed to-fraction 2 1 3
  mathsex mixed add 1 1 2 2 1 3`,
	}

	c.AddCommand(
		a.mixedToFractionCmd(),
		a.mixedBinaryCmd("add", "Summe zweier gemischter Zahlen", "+", fractionx.MixedNumber.Add),
		a.mixedBinaryCmd("sub", "Differenz zweier gemischter Zahlen", "-", fractionx.MixedNumber.Sub),
	)
	return c
}

func (a *app) mixedToFractionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-fraction <whole> <n> <d>",
		Short: "Gemischte Zahl als unechter Bruch",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "mixed.to_fraction", func() (Result, error) {
				ms, err := parseMixedNumbers(args)
				if err != nil {
					return Result{}, err
				}
				f, err := ms[0].ToFraction()
				if err != nil {
					return Result{}, err
				}
				return a.fractionResult(ms[0].String(), f), nil
			})
		},
	}
}

func (a *app) mixedBinaryCmd(name, short, symbol string, fn func(x, y fractionx.MixedNumber) (fractionx.MixedNumber, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <w1> <n1> <d1> <w2> <n2> <d2>",
		Short: short,
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "mixed."+name, func() (Result, error) {
				ms, err := parseMixedNumbers(args)
				if err != nil {
					return Result{}, err
				}
				res, err := fn(ms[0], ms[1])
				if err != nil {
					return Result{}, err
				}
				out := Result{
					Expression: fmt.Sprintf("%s %s %s", ms[0], symbol, ms[1]),
					Value:      res.String(),
				}
				if f, err := res.ToFraction(); err == nil {
					out.Decimal = f.FormatFixed(a.settings.OutputScale)
				}
				return out, nil
			})
		},
	}
}
