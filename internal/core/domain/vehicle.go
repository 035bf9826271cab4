package domain

import (
	"fmt"
	"io"
)

type Vehicle struct {
	make string
	year int
}

func NewVehicle(brand string, year int) Vehicle {
	return Vehicle{make: brand, year: year}
}

// Info returns the line GetInfo prints, without the trailing newline.
func (v Vehicle) Info() string {
	return fmt.Sprintf("Make: %s, Year: %d", v.make, v.year)
}

func (v Vehicle) GetInfo(w io.Writer) {
	fmt.Fprintln(w, v.Info())
}

// Car extends Vehicle with a model. It adds GetModel and keeps the
// embedded GetInfo as is.
type Car struct {
	Vehicle
	model string
}

func NewCar(brand string, year int, model string) Car {
	return Car{Vehicle: NewVehicle(brand, year), model: model}
}

func (c Car) ModelInfo() string {
	return "Model: " + c.model
}

func (c Car) GetModel(w io.Writer) {
	fmt.Fprintln(w, c.ModelInfo())
}
