package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalKey_KnownCategoriesMapToThemselves(t *testing.T) {
	for _, category := range Categories() {
		assert.Equal(t, category, CanonicalKey(category))
	}
}

func TestCanonicalKey_UnknownCategoriesFallBackToOthers(t *testing.T) {
	for _, category := range []string{"swimming_pool", "LIBRARY", "Library", "it support", "", "sports"} {
		assert.Equal(t, FallbackKey, CanonicalKey(category), "category %q", category)
	}
}

func TestCategories_CoversTheFixedSet(t *testing.T) {
	expected := []string{
		"library", "transport", "hostel", "auditorium", "canteen",
		"it_support", "examination", "maintenance", "others",
	}

	assert.ElementsMatch(t, expected, Categories())
}
