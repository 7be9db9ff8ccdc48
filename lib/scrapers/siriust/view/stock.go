package view

import (
	"strings"
	"wishlist-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// the site prints this next to every store the product is missing from
const absentToken = "отсутствует"

// CountInStock counts the stores listed in the product's features that have
// the product. Any out-of-stock marker on the page makes the count 0.
func CountInStock(doc *goquery.Document) int {
	if doc.Find(`[class*="out-of-stock"]`).Length() > 0 {
		return 0
	}

	count := 0
	doc.Find(`div[id*="content_features"] > div > *`).Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		text := htmlutil.GetText(node)
		if children := htmlutil.ElementChildren(node); len(children) > 0 {
			text = htmlutil.GetText(children[len(children)-1])
		}
		if strings.Contains(text, absentToken) {
			return
		}
		count++
	})
	return count
}
