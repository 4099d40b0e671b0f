package cmd

import (
	"strconv"
	"strings"

	mxerrors "github.com/msto63/mathsex/foundation/core/errors"
	"github.com/msto63/mathsex/foundation/utils/fractionx"
)

func parseInt(arg string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, mxerrors.InvalidFormat(mxerrors.ModuleCLI, arg, "64-bit integer")
	}
	return n, nil
}

func parseInts(args []string) ([]int64, error) {
	out := make([]int64, len(args))
	for i, arg := range args {
		n, err := parseInt(arg)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func parseFloat(arg string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return 0, mxerrors.InvalidFormat(mxerrors.ModuleCLI, arg, "decimal number")
	}
	return v, nil
}

// parseFractions reads consecutive numerator/denominator pairs
func parseFractions(args []string) ([]fractionx.Fraction, error) {
	ints, err := parseInts(args)
	if err != nil {
		return nil, err
	}
	out := make([]fractionx.Fraction, 0, len(ints)/2)
	for i := 0; i+1 < len(ints); i += 2 {
		f, err := fractionx.New(ints[i], ints[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// parseMixedNumbers reads consecutive whole/numerator/denominator triples
func parseMixedNumbers(args []string) ([]fractionx.MixedNumber, error) {
	ints, err := parseInts(args)
	if err != nil {
		return nil, err
	}
	out := make([]fractionx.MixedNumber, 0, len(ints)/3)
	for i := 0; i+2 < len(ints); i += 3 {
		m, err := fractionx.NewMixedParts(ints[i], ints[i+1], ints[i+2])
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
