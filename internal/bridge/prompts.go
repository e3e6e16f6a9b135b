package bridge

import (
	"fmt"
	"strings"

	"pricenexus/internal/catalog"
)

// chatPersona is the fixed system instruction for the shopping assistant.
const chatPersona = "You are PriceNexus AI, a concise and expert shopping assistant for the Indian market."

// searchPrompt instructs the model to act as an e-commerce aggregator and
// answer in strict JSON. The output schema mirrors catalog.Product so the
// normalizer's happy path is a straight decode.
func searchPrompt(query string) string {
	return fmt.Sprintf(`You are a high-performance e-commerce API aggregator.
User Query: %q

ACTION: Perform a live Google Search for "%s buy online price india" to find current product listings AND images.

DATA EXTRACTION RULES:
1. Identify EXACTLY 10-12 DISTINCT and RELEVANT product models matching %q.
2. For EACH product, find the single BEST available price/offer.
3. EXTRACT the specific current price in INR.
4. EXTRACT the direct product URL.
5. EXTRACT the ACTUAL product image URL.
6. GENERATE a concise list of key features (max 2 items).

OUTPUT FORMAT: Strictly VALID JSON.
{
  "products": [
    {
      "id": "unique_id_string",
      "name": "Exact Product Name",
      "image": "https://valid-image-url...",
      "category": "Category Name",
      "rating": 4.5,
      "features": ["Feature 1", "Feature 2"],
      "offers": [
        {
          "store": "Amazon.in",
          "price": 9999,
          "currency": "INR",
          "url": "https://www.amazon.in/...",
          "inStock": true
        }
      ]
    }
  ]
}`, query, query, query)
}

// analysisPrompt asks for a short verdict on the product's offers.
func analysisPrompt(p catalog.Product) string {
	var offers strings.Builder
	for _, o := range p.Offers {
		fmt.Fprintf(&offers, "%s: ₹%.0f\n", o.Store, o.Price)
	}
	return fmt.Sprintf("Analyze this deal for the Indian market: Product: %s\nOffers:\n%sVerdict: Great Buy, Fair Price, or Wait? Max 40 words.", p.Name, offers.String())
}

// imagePrompt asks for a clean catalog-style product shot.
func imagePrompt(productName string) string {
	return fmt.Sprintf("High-quality product photography of %s on a white background.", productName)
}
