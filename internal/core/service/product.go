package service

import "github.com/rl1809/kata/internal/core/domain"

// GetMostExpensiveProduct returns the first product with the highest price.
// ok is false for an empty list.
func GetMostExpensiveProduct(products []domain.Product) (domain.Product, bool) {
	if len(products) == 0 {
		return domain.Product{}, false
	}

	highest := products[0]
	for _, p := range products {
		if p.Price > highest.Price {
			highest = p
		}
	}
	return highest, true
}
