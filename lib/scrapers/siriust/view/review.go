package view

import (
	"wishlist-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

type Review struct {
	RatingValue string
	Content     string
	Reviewer    string
	Published   string
	// every itemprop -> content pair in the review's microdata
	Attributes map[string]string
}

func firstOf(attrs map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := attrs[k]; v != "" {
			return v
		}
	}
	return ""
}

// ParseReviews reads every schema.org Review inside the first block of the
// page's post list. It returns an empty list if there is no post list.
func ParseReviews(doc *goquery.Document) []Review {
	list := doc.Find(`[id*="posts_list_"] > div`).First()

	reviews := []Review{}
	list.Find(`[itemtype*="/Review"]`).Each(func(_ int, s *goquery.Selection) {
		leaves := htmlutil.Leaves(htmlutil.ElementChildren(s.Get(0)))
		attrs := itemprops(leaves)
		reviews = append(reviews, Review{
			RatingValue: attrs["ratingValue"],
			Content:     firstOf(attrs, "reviewBody", "itemReviewed"),
			Reviewer:    firstOf(attrs, "author", "name"),
			Published:   attrs["datePublished"],
			Attributes:  attrs,
		})
	})
	return reviews
}
