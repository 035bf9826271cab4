package domain

type RatedItem struct {
	Title  string  `json:"title"`
	Rating float64 `json:"rating"`
}
