package catalog

// Demo returns the built-in catalog used when the AI bridge yields nothing.
// Prices are in INR and only roughly current; this data exists so the demo
// stays usable without an API key.
func Demo() []Product {
	return []Product{
		{
			ID:       "1",
			Name:     "Sony WH-CH520 Wireless Headphones",
			Image:    "https://m.media-amazon.com/images/I/41lArSiD5hL._SX450_.jpg",
			Category: "Audio",
			Rating:   4.4,
			Features: []string{"50-hour Battery", "Lightweight", "Multipoint Connection"},
			Offers: []Offer{
				{Store: "Amazon.in", Price: 3990, URL: "https://www.amazon.in/s?k=Sony+WH-CH520", Currency: "INR", InStock: true},
				{Store: "Flipkart", Price: 3499, URL: "https://www.flipkart.com/search?q=Sony+WH-CH520", Currency: "INR", InStock: true},
				{Store: "Croma", Price: 3999, URL: "https://www.croma.com/search/?text=Sony+WH-CH520", Currency: "INR", InStock: true},
			},
		},
		{
			ID:       "2",
			Name:     "Sony WH-1000XM5 Noise Cancelling",
			Image:    "https://m.media-amazon.com/images/I/51SKmu2G9FL._SL1000_.jpg",
			Category: "Electronics",
			Rating:   4.8,
			Features: []string{"Best-in-class ANC", "30hr Battery", "Alexa Built-in"},
			Offers: []Offer{
				{Store: "Amazon.in", Price: 26990, URL: "https://www.amazon.in/s?k=Sony+WH-1000XM5", Currency: "INR", InStock: true},
				{Store: "Reliance Digital", Price: 26990, URL: "https://www.reliancedigital.in/search?q=Sony+WH-1000XM5", Currency: "INR", InStock: true},
			},
		},
		{
			ID:       "3",
			Name:     "Sony WH-CH720N Noise Cancelling",
			Image:    "https://m.media-amazon.com/images/I/51+t0-N8ZUL._SX679_.jpg",
			Category: "Audio",
			Rating:   4.5,
			Features: []string{"V1 Processor", "35hr Battery", "Dual Noise Sensor"},
			Offers: []Offer{
				{Store: "Amazon.in", Price: 9990, URL: "https://www.amazon.in/s?k=Sony+WH-CH720N", Currency: "INR", InStock: true},
				{Store: "Flipkart", Price: 7990, URL: "https://www.flipkart.com/search?q=Sony+WH-CH720N", Currency: "INR", InStock: true},
			},
		},
		{
			ID:       "p1",
			Name:     "Apple iPhone 15 (128 GB)",
			Image:    "https://m.media-amazon.com/images/I/71d7rfEX06L._SX679_.jpg",
			Category: "Smartphones",
			Rating:   4.6,
			Features: []string{"Dynamic Island", "48MP Main Camera", "USB-C"},
			Offers: []Offer{
				{Store: "Amazon.in", Price: 71999, URL: "https://www.amazon.in/s?k=iphone+15", Currency: "INR", InStock: true},
				{Store: "Flipkart", Price: 65999, URL: "https://www.flipkart.com/search?q=iphone+15", Currency: "INR", InStock: true},
			},
		},
		{
			ID:       "p2",
			Name:     "Samsung Galaxy S24 Ultra",
			Image:    "https://m.media-amazon.com/images/I/71CXhVxpW0L._SX679_.jpg",
			Category: "Smartphones",
			Rating:   4.9,
			Features: []string{"Galaxy AI", "200MP Camera", "Titanium Frame"},
			Offers: []Offer{
				{Store: "Amazon.in", Price: 129999, URL: "https://www.amazon.in/s?k=s24+ultra", Currency: "INR", InStock: true},
				{Store: "Samsung Shop", Price: 129999, URL: "https://www.samsung.com/in", Currency: "INR", InStock: true},
			},
		},
		{
			ID:       "p3",
			Name:     "OnePlus 12 (16GB RAM)",
			Image:    "https://m.media-amazon.com/images/I/717Qo4MH97L._SX679_.jpg",
			Category: "Smartphones",
			Rating:   4.5,
			Features: []string{"Snapdragon 8 Gen 3", "Hasselblad Camera", "100W Charging"},
			Offers: []Offer{
				{Store: "Amazon.in", Price: 64999, URL: "https://www.amazon.in/s?k=oneplus+12", Currency: "INR", InStock: true},
				{Store: "OnePlus Store", Price: 64999, URL: "https://www.oneplus.in", Currency: "INR", InStock: true},
			},
		},
		{
			ID:       "s1",
			Name:     "Nike Air Jordan 1 Retro High",
			Image:    "https://static.nike.com/a/images/t_PDP_1280_v1/custom-nike-dunk-high-by-you-shoes.png",
			Category: "Fashion",
			Rating:   4.7,
			Features: []string{"Leather Upper", "Air Cushioning", "Classic Design"},
			Offers: []Offer{
				{Store: "Nike.com", Price: 16995, URL: "https://www.nike.com/in", Currency: "INR", InStock: true},
				{Store: "VegNonVeg", Price: 18000, URL: "https://www.vegnonveg.com", Currency: "INR", InStock: true},
			},
		},
		{
			ID:       "s2",
			Name:     "Adidas Ultraboost Light",
			Image:    "https://assets.adidas.com/images/Ultraboost_Light_Shoes_Black_HQ6339_01_standard.jpg",
			Category: "Fashion",
			Rating:   4.5,
			Features: []string{"Light BOOST", "Primeknit", "Running"},
			Offers: []Offer{
				{Store: "Adidas", Price: 18999, URL: "https://www.adidas.co.in", Currency: "INR", InStock: true},
				{Store: "Myntra", Price: 15000, URL: "https://www.myntra.com", Currency: "INR", InStock: true},
			},
		},
		{
			ID:       "s3",
			Name:     "Puma Velocity Nitro 2",
			Image:    "https://images.puma.com/image/upload/global/195337/01/sv01/fnd/IND/fmt/png/Velocity-NITRO-2-Men",
			Category: "Fashion",
			Rating:   4.4,
			Features: []string{"Nitro Foam", "PUMAGRIP", "Breathable Mesh"},
			Offers: []Offer{
				{Store: "Puma", Price: 8999, URL: "https://in.puma.com", Currency: "INR", InStock: true},
				{Store: "Amazon", Price: 6500, URL: "https://www.amazon.in", Currency: "INR", InStock: true},
			},
		},
		{
			ID:       "g1",
			Name:     "Sony INZONE H3 Gaming Headset",
			Image:    "https://m.media-amazon.com/images/I/61M4+w+gK6L._SX679_.jpg",
			Category: "Gaming",
			Rating:   4.1,
			Features: []string{"360 Spatial Sound", "Flip-up Mic", "PC/PS5"},
			Offers: []Offer{
				{Store: "Amazon.in", Price: 6990, URL: "https://www.amazon.in/s?k=Sony+INZONE+H3", Currency: "INR", InStock: true},
				{Store: "JioMart", Price: 6499, URL: "https://www.jiomart.com/search/Sony%20INZONE%20H3", Currency: "INR", InStock: true},
			},
		},
		{
			ID:       "w1",
			Name:     "Fossil Gen 6 Smartwatch",
			Image:    "https://m.media-amazon.com/images/I/61M-rP-vLGL._SX679_.jpg",
			Category: "Fashion",
			Rating:   4.0,
			Features: []string{"Wear OS", "Fast Charging", "SpO2"},
			Offers: []Offer{
				{Store: "Amazon.in", Price: 23995, URL: "https://www.amazon.in", Currency: "INR", InStock: true},
				{Store: "Fossil", Price: 23995, URL: "https://www.fossil.com", Currency: "INR", InStock: true},
			},
		},
		{
			ID:       "b1",
			Name:     "American Tourister Backpack",
			Image:    "https://m.media-amazon.com/images/I/81k1q6k7gmL._SX679_.jpg",
			Category: "Bags",
			Rating:   4.3,
			Features: []string{"32L Capacity", "Laptop Compartment", "Water Resistant"},
			Offers: []Offer{
				{Store: "Amazon.in", Price: 1599, URL: "https://www.amazon.in", Currency: "INR", InStock: true},
				{Store: "Flipkart", Price: 1499, URL: "https://www.flipkart.com", Currency: "INR", InStock: true},
			},
		},
		{
			ID:       "g2",
			Name:     "Ray-Ban Aviator Sunglasses",
			Image:    "https://m.media-amazon.com/images/I/51w+jXq+K+L._UX679_.jpg",
			Category: "Fashion",
			Rating:   4.6,
			Features: []string{"UV Protection", "Metal Frame", "Classic Style"},
			Offers: []Offer{
				{Store: "Lenskart", Price: 8590, URL: "https://www.lenskart.com", Currency: "INR", InStock: true},
				{Store: "Amazon", Price: 7800, URL: "https://www.amazon.in", Currency: "INR", InStock: true},
			},
		},
	}
}
