package scraper

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("services/wishlist/scraper")
var meter = otel.Meter("services/wishlist/scraper")

var productsCounter, _ = meter.Int64Counter(
	"wishlist.products_scraped",
	metric.WithDescription("the number of wishlist products scraped"),
)
var reviewsCounter, _ = meter.Int64Counter(
	"wishlist.reviews_scraped",
	metric.WithDescription("the number of product reviews scraped"),
)
var failedWritesCounter, _ = meter.Int64Counter(
	"wishlist.failed_writes",
	metric.WithDescription("the number of rows that could not be persisted"),
)
