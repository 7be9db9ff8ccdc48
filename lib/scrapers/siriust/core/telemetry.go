package core

import (
	"wishlist-scraper/lib/restyutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("lib/scrapers/siriust/core")
var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput records the full HTTP exchanges of every client
// created afterwards into `out`.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
