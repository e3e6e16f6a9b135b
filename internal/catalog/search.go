package catalog

import "strings"

// minWordLen filters out filler words like "a", "an", "of" before matching.
const minWordLen = 3

// Search filters products by case-insensitive keyword match. The query is
// split into words of at least three characters; a product matches when any
// such word is a substring of its name, category, or features. A query that
// tokenizes to no usable words matches the whole list.
func Search(products []Product, query string) []Product {
	lower := strings.ToLower(strings.TrimSpace(query))
	if lower == "" {
		return nil
	}

	var words []string
	for _, w := range strings.Fields(lower) {
		if len(w) >= minWordLen {
			words = append(words, w)
		}
	}

	var matched []Product
	for _, p := range products {
		text := strings.ToLower(p.Name + " " + p.Category + " " + strings.Join(p.Features, " "))
		if len(words) == 0 {
			matched = append(matched, p)
			continue
		}
		for _, w := range words {
			if strings.Contains(text, w) {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}
