package domain

import (
	"bytes"
	"testing"
)

func TestVehicle_GetInfo(t *testing.T) {
	var buf bytes.Buffer
	NewVehicle("Toyota", 2020).GetInfo(&buf)

	if buf.String() != "Make: Toyota, Year: 2020\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestCar_GetModel(t *testing.T) {
	var buf bytes.Buffer
	NewCar("Honda", 2018, "Civic").GetModel(&buf)

	if buf.String() != "Model: Civic\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestCar_KeepsBaseInfo(t *testing.T) {
	var buf bytes.Buffer
	car := NewCar("Honda", 2018, "Civic")
	car.GetInfo(&buf)
	car.GetModel(&buf)

	want := "Make: Honda, Year: 2018\nModel: Civic\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
