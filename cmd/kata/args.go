package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func execute(root *cobra.Command, args []string) error {
	root.SetArgs(negativeArgs(root, args))
	return root.Execute()
}

// negativeArgs moves bare negative numbers behind a "--" so pflag reads them
// as positional arguments rather than shorthand flags. Values of flags that
// take an argument (--year -5) stay where they are.
func negativeArgs(root *cobra.Command, args []string) []string {
	cmd, _, err := root.Find(args)
	if err != nil {
		return args
	}

	var rest, numbers []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			numbers = append(numbers, args[i+1:]...)
			break
		}
		if isNegativeNumber(arg) {
			numbers = append(numbers, arg)
			continue
		}
		rest = append(rest, arg)
		if takesValue(cmd, arg) && i+1 < len(args) {
			i++
			rest = append(rest, args[i])
		}
	}
	if len(numbers) == 0 {
		return args
	}
	return append(append(rest, "--"), numbers...)
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

func takesValue(cmd *cobra.Command, arg string) bool {
	if !strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") {
		return false
	}

	name := strings.TrimLeft(arg, "-")
	f := cmd.Flags().Lookup(name)
	if f == nil {
		f = cmd.InheritedFlags().Lookup(name)
	}
	if f == nil && !strings.HasPrefix(arg, "--") && len(name) == 1 {
		f = cmd.Flags().ShorthandLookup(name)
		if f == nil {
			f = cmd.InheritedFlags().ShorthandLookup(name)
		}
	}
	return f != nil && f.NoOptDefVal == ""
}

// parseFinite parses s as a float, rejecting NaN and the infinities.
func parseFinite(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
