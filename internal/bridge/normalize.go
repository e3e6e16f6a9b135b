package bridge

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"pricenexus/internal/catalog"
)

const (
	defaultRating   = 4.0
	defaultCategory = "General"
	defaultCurrency = "INR"
	maxFeatures     = 2
)

// NormalizeProducts shapes raw model text into catalog products. It never
// fails: unparseable input yields an empty slice, entries without a name are
// dropped, and every surviving product ends up with at least one offer.
// groundingURLs are citation links returned alongside the response, used as
// the offer URL of last resort before a generic search link.
func NormalizeProducts(raw string, groundingURLs []string) []catalog.Product {
	var envelope struct {
		Products []map[string]interface{} `json:"products"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &envelope); err != nil {
		return nil
	}

	batch := time.Now().UnixMilli()
	var out []catalog.Product
	for i, entry := range envelope.Products {
		name, _ := entry["name"].(string)
		if strings.TrimSpace(name) == "" {
			continue
		}

		p := catalog.Product{
			Name:     name,
			Rating:   defaultRating,
			Category: defaultCategory,
		}
		if r, ok := entry["rating"].(float64); ok {
			p.Rating = r
		}
		if c, ok := entry["category"].(string); ok && c != "" {
			p.Category = c
		}
		if img, ok := entry["image"].(string); ok {
			p.Image = img
		}
		if list, ok := entry["features"].([]interface{}); ok {
			for _, f := range list {
				if s, ok := f.(string); ok {
					p.Features = append(p.Features, s)
				}
				if len(p.Features) == maxFeatures {
					break
				}
			}
		}
		if p.Features == nil {
			p.Features = []string{}
		}

		if id, ok := entry["id"].(string); ok && id != "" {
			p.ID = id
		} else {
			// Batch timestamp plus position keeps ids unique within one
			// result set.
			p.ID = fmt.Sprintf("gemini-live-%d-%d", batch, i)
		}

		p.Offers = decodeOffers(entry["offers"])
		if len(p.Offers) == 0 {
			p.Offers = []catalog.Offer{synthesizeOffer(entry, name, groundingURLs)}
		}

		out = append(out, p)
	}
	return out
}

// decodeOffers maps the source's offers verbatim into typed offers. A
// non-numeric price becomes the zero sentinel (unknown).
func decodeOffers(v interface{}) []catalog.Offer {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var offers []catalog.Offer
	for _, item := range list {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		o := catalog.Offer{Currency: defaultCurrency}
		if s, ok := m["store"].(string); ok {
			o.Store = s
		}
		if pr, ok := m["price"].(float64); ok {
			o.Price = pr
		}
		if cur, ok := m["currency"].(string); ok && cur != "" {
			o.Currency = cur
		}
		if u, ok := m["url"].(string); ok {
			o.URL = u
		}
		if st, ok := m["inStock"].(bool); ok {
			o.InStock = st
		}
		offers = append(offers, o)
	}
	return offers
}

// synthesizeOffer fabricates the single fallback offer for an entry whose
// source provided none. Price comes from the entry's best numeric signal,
// else zero; the URL prefers the first grounding link.
func synthesizeOffer(entry map[string]interface{}, name string, groundingURLs []string) catalog.Offer {
	price := 0.0
	if pr, ok := entry["price"].(float64); ok && pr > 0 {
		price = pr
	}

	link := ""
	if len(groundingURLs) > 0 {
		link = groundingURLs[0]
	}
	if link == "" {
		link = "https://www.google.com/search?q=" + url.QueryEscape(name)
	}

	return catalog.Offer{
		Store:    "Best Online Deal",
		Price:    price,
		Currency: defaultCurrency,
		URL:      link,
		InStock:  true,
	}
}
