package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rl1809/kata/internal/adapter/timer"
	"github.com/rl1809/kata/internal/core/domain"
	"github.com/rl1809/kata/internal/core/service"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every exercise on its sample input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sq := service.NewSquarer(timer.NewWallScheduler(), a.cfg.Square.Delay, a.logger)
			return runDemo(cmd, sq)
		},
	}
}

func runDemo(cmd *cobra.Command, sq *service.Squarer) error {
	w := cmd.OutOrStdout()

	section(w, "formatString")
	fmt.Fprintf(w, "%q\n", service.FormatString("Hello One"))
	fmt.Fprintf(w, "%q\n", service.FormatString("Hello One", true))
	fmt.Fprintf(w, "%q\n", service.FormatString("Hello One", false))

	section(w, "filterByRating")
	books := []domain.RatedItem{
		{Title: "Book A", Rating: 4.5},
		{Title: "Book B", Rating: 3.2},
		{Title: "Book C", Rating: 5.0},
	}
	if err := printJSON(w, service.FilterByRating(books)); err != nil {
		return err
	}

	section(w, "concatenateArrays")
	if err := printJSON(w, service.ConcatenateArrays([]string{"a", "b"}, []string{"c"})); err != nil {
		return err
	}
	if err := printJSON(w, service.ConcatenateArrays([]int{1, 2}, []int{3, 4}, []int{5})); err != nil {
		return err
	}

	section(w, "Vehicle / Car")
	car := domain.NewCar("Toyota", 2020, "Corolla")
	car.GetInfo(w)
	car.GetModel(w)

	section(w, "processValue")
	fmt.Fprintln(w, formatNumber(service.ProcessValue(domain.Text("hello"))))
	fmt.Fprintln(w, formatNumber(service.ProcessValue(domain.Number(10))))

	section(w, "getMostExpensiveProduct")
	products := []domain.Product{
		{Name: "Pen", Price: 10},
		{Name: "Notebook", Price: 25},
		{Name: "Bag", Price: 50},
	}
	p, ok := service.GetMostExpensiveProduct(products)
	if ok {
		if err := printJSON(w, p); err != nil {
			return err
		}
	}

	section(w, "getDayType")
	fmt.Fprintln(w, service.GetDayType(domain.Monday))
	fmt.Fprintln(w, service.GetDayType(domain.Sunday))

	section(w, "squareAsync")
	result, err := sq.SquareAsync(4).Await(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(w, formatNumber(result))
	if _, err := sq.SquareAsync(-3).Await(cmd.Context()); err != nil {
		fmt.Fprintln(w, "Error:", err)
	}
	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n--- %s ---\n", title)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
