package service

import (
	"fmt"
	"unicode/utf8"

	"github.com/rl1809/kata/internal/core/domain"
)

// ProcessValue returns the length of a Text in Unicode code points, or twice
// a Number. Text length is not UTF-16 based: "😀" counts as 1.
func ProcessValue(v domain.Value) float64 {
	switch v := v.(type) {
	case domain.Text:
		return float64(utf8.RuneCountInString(string(v)))
	case domain.Number:
		return float64(v) * 2
	default:
		panic(fmt.Sprintf("%v: %T", domain.ErrUnknownValue, v))
	}
}
