package service

import (
	"fmt"

	"github.com/rl1809/kata/internal/core/domain"
)

func GetDayType(day domain.Day) domain.DayType {
	switch day {
	case domain.Saturday, domain.Sunday:
		return domain.Weekend
	case domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday:
		return domain.Weekday
	}
	panic(fmt.Sprintf("%v: %d", domain.ErrUnknownDay, int(day)))
}
