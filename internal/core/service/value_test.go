package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rl1809/kata/internal/core/domain"
)

func TestProcessValue(t *testing.T) {
	cases := []struct {
		name  string
		value domain.Value
		want  float64
	}{
		{"text length", domain.Text("hello"), 5},
		{"empty text", domain.Text(""), 0},
		{"multibyte text counts characters", domain.Text("héllo"), 5},
		{"number doubled", domain.Number(10), 20},
		{"negative number", domain.Number(-2.5), -5},
		{"zero", domain.Number(0), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ProcessValue(c.value))
		})
	}
}

func TestProcessValue_NilPanics(t *testing.T) {
	assert.Panics(t, func() { ProcessValue(nil) })
}
