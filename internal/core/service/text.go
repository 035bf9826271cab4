package service

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatString upper-cases input unless toUpper is given as false.
// Only the first flag is considered.
func FormatString(input string, toUpper ...bool) string {
	if len(toUpper) > 0 && !toUpper[0] {
		return cases.Lower(language.Und).String(input)
	}
	return cases.Upper(language.Und).String(input)
}
