package images

import "strings"

// Category-themed stock photos used when no real or generated image is
// available. A given product id always maps to the same placeholder.
var placeholderSets = map[string][]string{
	"Audio": {
		"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1583394838336-acd977736f90?w=800&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1524678606372-56527bb42343?w=800&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?w=800&auto=format&fit=crop&q=80",
	},
	"Electronics": {
		"https://images.unsplash.com/photo-1550009158-9ebf69173e03?w=800&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1498049860654-af1a5c5668ba?w=800&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1525547719571-a2d4ac8945e2?w=800&auto=format&fit=crop&q=80",
	},
	"Gaming": {
		"https://images.unsplash.com/photo-1542751371-adc38448a05e?w=800&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1605901309584-818e25960b8f?w=800&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1593305841991-05c2e4078995?w=800&auto=format&fit=crop&q=80",
	},
	"Laptops": {
		"https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=800&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1517336714731-489689fd1ca4?w=800&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1611186871348-b1ce696e52c9?w=800&auto=format&fit=crop&q=80",
	},
	"Smartphones": {
		"https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=800&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=800&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1567581935884-3349723552ca?w=800&auto=format&fit=crop&q=80",
	},
	"Fashion": {
		"https://images.unsplash.com/photo-1445205170230-053b83016050?w=800&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?w=800&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1523381210434-271e8be1f52b?w=800&auto=format&fit=crop&q=80",
	},
	"Home": {
		"https://images.unsplash.com/photo-1484101403633-562f891dc89a?w=800&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1583847661884-62756cf5e6a9?w=800&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1513694203232-719a280e022f?w=800&auto=format&fit=crop&q=80",
	},
	"Beauty": {
		"https://images.unsplash.com/photo-1596462502278-27bfdd403348?w=800&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1571781926291-280553da7566?w=800&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1616683693504-3ea7e9ad6fec?w=800&auto=format&fit=crop&q=80",
	},
	"Default": {
		"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800&auto=format&fit=crop&q=80",
		"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800&auto=format&fit=crop&q=80",
	},
}

// placeholderKey buckets a free-text category into one of the stock sets.
func placeholderKey(category string) string {
	if category == "" {
		return "Default"
	}
	c := strings.ToLower(category)
	switch {
	case containsAny(c, "audio", "headphone", "earbud", "speaker"):
		return "Audio"
	case containsAny(c, "gaming", "console", "controller"):
		return "Gaming"
	case containsAny(c, "laptop", "computer", "pc"):
		return "Laptops"
	case containsAny(c, "phone", "mobile", "android", "iphone"):
		return "Smartphones"
	case containsAny(c, "fashion", "clothing", "shoe", "wear"):
		return "Fashion"
	case containsAny(c, "home", "kitchen", "appliance"):
		return "Home"
	case containsAny(c, "beauty", "makeup", "skin"):
		return "Beauty"
	default:
		return "Electronics"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// hashID is a djb2-style hash over the product id, computed in 32-bit
// arithmetic so the same id always lands on the same placeholder.
func hashID(id string) int {
	var h int32
	for _, c := range id {
		h = int32(c) + ((h << 5) - h)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v)
}

// Placeholder picks a deterministic stock image for a product that has no
// usable image. The same id always maps to the same placeholder.
func Placeholder(category, productID string) string {
	set, ok := placeholderSets[placeholderKey(category)]
	if !ok {
		set = placeholderSets["Default"]
	}
	return set[hashID(productID)%len(set)]
}
