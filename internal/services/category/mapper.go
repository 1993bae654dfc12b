// Package category maps merchants to reward categories. A merchant is
// identified by its display name plus the type tags its place source
// supplies; the mapping produces an optional brand-specific category
// (direct overrides like "Starbucks") and a type-derived default category.
package category

import "strings"

// FallbackCategory is returned when neither the name nor the types resolve
// to anything known.
const FallbackCategory = "Other purchases"

// Normalize canonicalizes text for brand matching: lower-case, drop "&",
// then drop every remaining non-alphanumeric rune. "McDonald's" and
// "mcdonalds" normalize identically.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", "")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MapPlaceToCategories resolves a merchant name and its ordered type tags to
// (brandCategory, default category). brandOK reports whether a brand
// override matched; the default category falls back to FallbackCategory.
// The two passes are independent: a brand match does not suppress the type
// lookup.
func MapPlaceToCategories(name string, types []string) (brand string, brandOK bool, def string) {
	if name == "" && len(types) == 0 {
		return "", false, FallbackCategory
	}

	nameLower := strings.ToLower(name)
	nameNorm := Normalize(name)

	// Brand pass: normalized containment first, earliest table entry wins.
	for _, bm := range normalizedBrandOverrides {
		if bm.Keyword != "" && strings.Contains(nameNorm, bm.Keyword) {
			brand, brandOK = bm.Category, true
			break
		}
	}
	// Legacy lowercase substring pass, kept as a fallback for inputs the
	// normalized tables disagree on.
	if !brandOK {
		for _, bm := range brandOverrides {
			if strings.Contains(nameLower, bm.Keyword) {
				brand, brandOK = bm.Category, true
				break
			}
		}
	}

	// Type pass: the caller's type order determines precedence.
	def = FallbackCategory
	for _, t := range types {
		if cat, ok := typeCategoryIndex[t]; ok {
			def = cat
			break
		}
	}

	return brand, brandOK, def
}

// MapPlaceToCategory collapses MapPlaceToCategories into the single best
// category: brand override if any, else the type-derived default.
func MapPlaceToCategory(name string, types []string) string {
	brand, ok, def := MapPlaceToCategories(name, types)
	if ok {
		return brand
	}
	return def
}

// CategoriesToCheck returns the non-empty categories for a merchant in
// precedence order, ready for the reward scorer's search-term expansion.
func CategoriesToCheck(name string, types []string) []string {
	brand, ok, def := MapPlaceToCategories(name, types)
	cats := make([]string, 0, 2)
	if ok {
		cats = append(cats, brand)
	}
	if def != "" {
		cats = append(cats, def)
	}
	return cats
}
