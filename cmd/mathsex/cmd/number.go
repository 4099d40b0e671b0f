package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mathsex/foundation/utils/numberx"
)

func (a *app) gcdCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "gcd <a> <b>",
		Aliases: []string{"hcf"},
		Short:   "Größter gemeinsamer Teiler",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "gcd", func() (Result, error) {
				n, err := parseInts(args)
				if err != nil {
					return Result{}, err
				}
				return Result{
					Expression: fmt.Sprintf("gcd(%d, %d)", n[0], n[1]),
					Value:      strconv.FormatInt(numberx.GCD(n[0], n[1]), 10),
				}, nil
			})
		},
	}
}

func (a *app) lcmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lcm <a> <b>",
		Short: "Kleinstes gemeinsames Vielfaches",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "lcm", func() (Result, error) {
				n, err := parseInts(args)
				if err != nil {
					return Result{}, err
				}
				l, err := numberx.LCM(n[0], n[1])
				if err != nil {
					return Result{}, err
				}
				return Result{
					Expression: fmt.Sprintf("lcm(%d, %d)", n[0], n[1]),
					Value:      strconv.FormatInt(l, 10),
				}, nil
			})
		},
	}
}

func (a *app) factorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factors <n>",
		Short: "Alle positiven Teiler in aufsteigender Reihenfolge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "factors", func() (Result, error) {
				n, err := parseInt(args[0])
				if err != nil {
					return Result{}, err
				}
				factors, err := numberx.Factors(n)
				if err != nil {
					return Result{}, err
				}
				values := make([]string, len(factors))
				for i, f := range factors {
					values[i] = strconv.FormatInt(f, 10)
				}
				return Result{
					Expression: fmt.Sprintf("factors(%d)", n),
					Value:      strings.Join(values, " "),
					Values:     values,
				}, nil
			})
		},
	}
}

func (a *app) primeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prime <n>",
		Short: "Prüft, ob n eine Primzahl ist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "prime", func() (Result, error) {
				n, err := parseInt(args[0])
				if err != nil {
					return Result{}, err
				}
				return Result{
					Expression: fmt.Sprintf("prime(%d)", n),
					Value:      strconv.FormatBool(numberx.IsPrime(n)),
				}, nil
			})
		},
	}
}

func (a *app) factorialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factorial <n>",
		Short: "Fakultät n! (höchstens 20! passt in 64 Bit)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "factorial", func() (Result, error) {
				n, err := parseInt(args[0])
				if err != nil {
					return Result{}, err
				}
				f, err := numberx.Factorial(n)
				if err != nil {
					return Result{}, err
				}
				return Result{
					Expression: fmt.Sprintf("%d!", n),
					Value:      strconv.FormatInt(f, 10),
				}, nil
			})
		},
	}
}

func (a *app) averageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "average <x>...",
		Short: "Arithmetisches Mittel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "average", func() (Result, error) {
				values := make([]float64, len(args))
				for i, arg := range args {
					v, err := parseFloat(arg)
					if err != nil {
						return Result{}, err
					}
					values[i] = v
				}
				avg, err := numberx.Average(values...)
				if err != nil {
					return Result{}, err
				}
				return Result{
					Expression: fmt.Sprintf("average(%s)", strings.Join(args, ", ")),
					Value:      strconv.FormatFloat(avg, 'g', -1, 64),
				}, nil
			})
		},
	}
}
