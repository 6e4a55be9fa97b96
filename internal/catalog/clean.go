package catalog

// clean.go derives the gemstone report table from the raw feed export.
//
// The derivation is pure: given the same raw table it always produces the
// same cleaned table, and no raw row is ever mutated.

import "strings"

const (
	// attributeSet is the Magento attribute set the report is limited to.
	attributeSet = "Gemstones"

	// skuMarker must appear somewhere in the SKU of a loose gemstone.
	skuMarker = "GP"

	// pendantMarker excludes mounted pieces that leak into the export.
	pendantMarker = "pendant"

	// productURLBase prefixes the feed's url_key to form the product page.
	productURLBase = "https://www.gempundit.com/products/"
)

// MeasureColumns are the numeric report columns. After Clean, every cell in
// these columns is either a canonical number or empty (absent, never zero).
var MeasureColumns = []string{"carat_weight", "weight_ratti", "price"}

// Clean filters the raw feed down to sellable loose gemstones and reshapes
// the row data:
//
//   - keeps rows with attribute_set_id "Gemstones", a SKU containing "GP",
//     qty > 0, is_in_stock = 1, a product type that does not mention
//     "pendant" (case-insensitively) and price > 0
//   - coerces carat_weight, weight_ratti and price to canonical numerics
//   - rewrites url_key to an absolute product page URL
//   - rewrites image to an absolute CDN URL (see ImageURL)
//
// Conditions and rewrites whose column is missing from the export are
// skipped rather than failing the whole load.
func Clean(t *Table) *Table {
	kept := t.Filter(func(row []string) bool { return keepRow(t, row) })

	urlIdx, hasURL := kept.Col("url_key")
	imgIdx, hasImg := kept.Col("image")

	out := &Table{Columns: kept.Columns, index: kept.index}
	out.Rows = make([][]string, 0, kept.Len())
	for _, row := range kept.Rows {
		clean := make([]string, len(kept.Columns))
		copy(clean, row)

		for _, col := range MeasureColumns {
			if i, ok := kept.Col(col); ok && i < len(clean) {
				clean[i] = ParseFloat(clean[i]).String()
			}
		}
		if hasURL {
			clean[urlIdx] = productURLBase + strings.TrimLeft(clean[urlIdx], "/")
		}
		if hasImg {
			clean[imgIdx] = ImageURL(clean[imgIdx])
		}
		out.Rows = append(out.Rows, clean)
	}
	return out
}

func keepRow(t *Table, row []string) bool {
	if t.HasCol("attribute_set_id") && t.Value(row, "attribute_set_id") != attributeSet {
		return false
	}
	if t.HasCol("sku") && !strings.Contains(t.Value(row, "sku"), skuMarker) {
		return false
	}
	if t.HasCol("qty") {
		qty := t.Float(row, "qty")
		if !qty.Valid || qty.Value <= 0 {
			return false
		}
	}
	if t.HasCol("is_in_stock") {
		stock := t.Float(row, "is_in_stock")
		if !stock.Valid || stock.Value != 1 {
			return false
		}
	}
	if t.HasCol("product_type") {
		pt := strings.ToLower(t.Value(row, "product_type"))
		if strings.Contains(pt, pendantMarker) {
			return false
		}
	}
	if t.HasCol("price") {
		price := t.Float(row, "price")
		if !price.Valid || price.Value <= 0 {
			return false
		}
	}
	return true
}
