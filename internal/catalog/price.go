package catalog

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CallForPrice is the sentinel feed price meaning "price on request".
const CallForPrice = 700000

var pricePrinter = message.NewPrinter(language.English)

// DisplayPrice formats a price for the report. The sentinel value renders
// as "Call for Price"; any other value as a comma-grouped whole-rupee
// amount. Sorting must always use the numeric value, never this string.
func DisplayPrice(p Float) string {
	if !p.Valid {
		return ""
	}
	if p.Value == CallForPrice {
		return "Call for Price"
	}
	return pricePrinter.Sprintf("₹%d", int64(math.Round(p.Value)))
}
