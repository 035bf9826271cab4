package service

import "github.com/rl1809/kata/internal/core/domain"

const MinRating = 4

func FilterByRating(items []domain.RatedItem) []domain.RatedItem {
	return Filter(items, func(item domain.RatedItem) bool {
		return item.Rating >= MinRating
	})
}
