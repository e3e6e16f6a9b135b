// Package catalog defines the product model shared by the AI bridge, the
// search pipeline, and the demo catalog, plus the price ordering used by the
// dashboard grid.
package catalog

import (
	"math"
	"sort"
)

// Offer is a single store listing for a product.
type Offer struct {
	Store    string  `json:"store"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	URL      string  `json:"url"`
	InStock  bool    `json:"inStock"`
}

// Product is a normalized search result. After normalization a product always
// carries at least one offer; an empty Image means the image resolver should
// be asked for one.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Image    string   `json:"image"`
	Category string   `json:"category"`
	Rating   float64  `json:"rating"`
	Features []string `json:"features"`
	Offers   []Offer  `json:"offers"`
}

// BestPrice returns the lowest known offer price, or +Inf when no offer
// carries a usable price. Prices at or below zero are the "unknown" sentinel.
func (p Product) BestPrice() float64 {
	best := math.Inf(1)
	for _, o := range p.Offers {
		if o.Price > 0 && o.Price < best {
			best = o.Price
		}
	}
	return best
}

// SortByBestPrice orders products ascending by their best known price.
// Products with no usable price sort after every priced product. The sort is
// stable so ties keep their original relative order.
func SortByBestPrice(products []Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].BestPrice() < products[j].BestPrice()
	})
}
