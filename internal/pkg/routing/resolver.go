// Package routing maps complaint categories to the canonical keys used to
// look up the responsible department.
package routing

// FallbackKey receives every category that has no entry in the table.
const FallbackKey = "others"

// categoryMap is the fixed category table. All known categories map to
// themselves; the identity mapping is kept explicit so the set of accepted
// categories is visible in one place.
var categoryMap = map[string]string{
	"library":     "library",
	"transport":   "transport",
	"hostel":      "hostel",
	"auditorium":  "auditorium",
	"canteen":     "canteen",
	"it_support":  "it_support",
	"examination": "examination",
	"maintenance": "maintenance",
	"others":      "others",
}

// CanonicalKey resolves a raw category string to its department lookup key.
// Unrecognized categories land in the others bucket.
func CanonicalKey(category string) string {
	if key, ok := categoryMap[category]; ok {
		return key
	}
	return FallbackKey
}

// Categories returns the set of known category names.
func Categories() []string {
	keys := make([]string, 0, len(categoryMap))
	for k := range categoryMap {
		keys = append(keys, k)
	}
	return keys
}
