package catalog

import "strings"

const (
	// cdnBase is the Magento media root on the image CDN.
	cdnBase = "https://imgcdn1.gempundit.com/media/catalog/product"

	// brandPrefix is the two-letter prefix every asset carries on the CDN.
	brandPrefix = "gp"
)

// ImageURL rebuilds the absolute CDN URL for a product image from the raw
// feed reference.
//
// The feed stores either a bare filename or a partial path such as
// "g/p/gp123.jpg". On the CDN the file always carries the "gp" prefix and
// lives under the Magento two-level directory named after the first two
// characters of the filename, so the name is normalized before the path is
// rebuilt:
//
//	"g/p/GPX1.JPG" -> ".../g/p/gpx1.jpg"
//	"123.jpg"      -> ".../g/p/gp123.jpg"
//	""             -> ""
//
// Some rows omit the prefix even though the served asset has it; adding it
// back is a heuristic over inconsistent feed data, not a guaranteed-correct
// transform.
func ImageURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	// Keep only the last path segment.
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.ToLower(s)

	if !strings.HasPrefix(s, brandPrefix) {
		s = brandPrefix + s
	}

	if len(s) >= 2 {
		return cdnBase + "/" + s[0:1] + "/" + s[1:2] + "/" + s
	}
	return cdnBase + "/" + s
}
