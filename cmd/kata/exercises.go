package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rl1809/kata/internal/adapter/timer"
	"github.com/rl1809/kata/internal/core/domain"
	"github.com/rl1809/kata/internal/core/service"
)

func newFormatCmd() *cobra.Command {
	var toUpper bool

	cmd := &cobra.Command{
		Use:   "format <text>",
		Short: "Upper-case text, or lower-case it with --to-upper=false",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out string
			if cmd.Flags().Changed("to-upper") {
				out = service.FormatString(args[0], toUpper)
			} else {
				out = service.FormatString(args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&toUpper, "to-upper", true, "upper-case when true, lower-case when false")
	return cmd
}

func newFilterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filter <items-json>",
		Short: "Keep items rated 4 or more",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var items []domain.RatedItem
			if err := decodeArg(args[0], &items); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), service.FilterByRating(items))
		},
	}
}

func newConcatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "concat [array-json]...",
		Short: "Concatenate JSON arrays one level deep",
		RunE: func(cmd *cobra.Command, args []string) error {
			arrays := make([][]json.RawMessage, len(args))
			for i, arg := range args {
				if err := decodeArg(arg, &arrays[i]); err != nil {
					return err
				}
			}
			return printJSON(cmd.OutOrStdout(), service.ConcatenateArrays(arrays...))
		},
	}
}

func newVehicleCmd() *cobra.Command {
	var (
		brand string
		year  int
		model string
	)

	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Print vehicle info, plus the model line when --model is set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if !cmd.Flags().Changed("model") {
				domain.NewVehicle(brand, year).GetInfo(w)
				return nil
			}
			car := domain.NewCar(brand, year, model)
			car.GetInfo(w)
			car.GetModel(w)
			return nil
		},
	}

	cmd.Flags().StringVar(&brand, "make", "", "manufacturer")
	cmd.Flags().IntVar(&year, "year", 0, "model year")
	cmd.Flags().StringVar(&model, "model", "", "car model")
	return cmd
}

func newProcessCmd() *cobra.Command {
	var asText bool

	cmd := &cobra.Command{
		Use:     "process <value>",
		Short:   "Length of text, or twice a finite number",
		Example: "  kata process hello\n  kata process -5\n  kata process --text 10",
		Args:    cobra.ExactArgs(1),
		RunE:    func(cmd *cobra.Command, args []string) error {
			var v domain.Value = domain.Text(args[0])
			if !asText {
				if n, ok := parseFinite(args[0]); ok {
					v = domain.Number(n)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatNumber(service.ProcessValue(v)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asText, "text", false, "treat the argument as text even when it looks numeric")
	return cmd
}

func newExpensiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expensive <products-json>",
		Short: "Print the first product with the highest price, or null",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var products []domain.Product
			if err := decodeArg(args[0], &products); err != nil {
				return err
			}
			p, ok := service.GetMostExpensiveProduct(products)
			if !ok {
				return printJSON(cmd.OutOrStdout(), nil)
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
}

func newDayTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day-type <day>",
		Short: "Classify a day as Weekday or Weekend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseDay(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), service.GetDayType(day))
			return nil
		},
	}
}

func newSquareCmd(a *app) *cobra.Command {
	var delay time.Duration

	cmd := &cobra.Command{
		Use:     "square <n>",
		Short:   "Square n after the configured delay; non-positive n fails at once",
		Example: "  kata square 5\n  kata square -1 --delay 10ms",
		Args:    cobra.ExactArgs(1),
		RunE:    func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse n: %w", err)
			}
			if !cmd.Flags().Changed("delay") {
				delay = a.cfg.Square.Delay
			}

			sq := service.NewSquarer(timer.NewWallScheduler(), delay, a.logger)
			result, err := sq.SquareAsync(n).Await(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatNumber(result))
			return nil
		},
	}

	cmd.Flags().DurationVar(&delay, "delay", service.DefaultSquareDelay, "delay before the result is ready")
	return cmd
}

func decodeArg(arg string, v any) error {
	if err := json.Unmarshal([]byte(arg), v); err != nil {
		return fmt.Errorf("decode argument: %w", err)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
