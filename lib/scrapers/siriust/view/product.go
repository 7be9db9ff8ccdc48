package view

import (
	"strconv"
	"strings"
	"wishlist-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

type Product struct {
	Url         string
	Name        string
	Price       string
	RatingValue string
	ReviewCount int
	InStock     int
	// every itemprop -> content pair in the product's microdata
	Attributes map[string]string
	Reviews    []Review
}

// itemprops maps the itemprop of every node to its content attribute,
// nodes without an itemprop are ignored. Later nodes win on duplicate keys.
func itemprops(nodes []*html.Node) map[string]string {
	props := map[string]string{}
	for _, n := range nodes {
		prop, _ := htmlutil.Attr(n, "itemprop")
		if prop == "" {
			continue
		}
		content, _ := htmlutil.Attr(n, "content")
		props[prop] = content
	}
	return props
}

const productBlock = `[itemtype*="schema.org/Product"]`

// ParseProduct reads the schema.org/Product microdata of a product page, its
// stock count and, if the product has any, its reviews.
func ParseProduct(doc *goquery.Document) (Product, error) {
	block := doc.Find(productBlock).First()
	if block.Length() == 0 {
		return Product{}, &MissingFieldError{Page: "product", Field: productBlock}
	}

	metas := htmlutil.Leaves(htmlutil.ElementChildren(block.Get(0)), "meta")
	attrs := itemprops(metas)

	product := Product{
		Name:        attrs["name"],
		Price:       attrs["price"],
		RatingValue: attrs["ratingValue"],
		InStock:     CountInStock(doc),
		Attributes:  attrs,
	}
	if product.Name == "" {
		product.Name = htmlutil.CleanText(doc.Find("h1").First().Text())
	}

	reviewCount := strings.TrimSpace(attrs["reviewCount"])
	if reviewCount == "" {
		product.ReviewCount = 0
		product.RatingValue = "0"
		return product, nil
	}

	product.ReviewCount, _ = strconv.Atoi(reviewCount)
	product.Reviews = ParseReviews(doc)
	return product, nil
}
