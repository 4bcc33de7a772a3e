package underwriting

// Category is the closed set of insurance categories an order can fall into.
// Orders carry a free-text category; classification is total and defaults to
// CategoryOther, so the zero value is the safe fallback.
type Category int

const (
	// CategoryOther is the generic bucket for any product that is not life,
	// home, or auto insurance. Unmatched and empty text resolves here.
	CategoryOther Category = iota

	// CategoryLife covers life insurance products.
	CategoryLife

	// CategoryHome covers residential insurance products.
	CategoryHome

	// CategoryAuto covers vehicle insurance products.
	CategoryAuto
)

// getCategoryNames returns the enumeration names for each category.
func getCategoryNames() map[Category]string {
	return map[Category]string{
		CategoryOther: "OTHER",
		CategoryLife:  "LIFE",
		CategoryHome:  "HOME",
		CategoryAuto:  "AUTO",
	}
}

// getCategoryDisplayNames returns the localized display names used by sales
// channels. These are matched as a fallback when the enumeration name does not.
func getCategoryDisplayNames() map[Category]string {
	return map[Category]string{
		CategoryOther: "OUTRO",
		CategoryLife:  "VIDA",
		CategoryHome:  "RESIDENCIAL",
		CategoryAuto:  "AUTO",
	}
}

// String returns the enumeration name of the category.
func (c Category) String() string {
	if name, ok := getCategoryNames()[c]; ok {
		return name
	}
	return "OTHER"
}

// DisplayName returns the localized display name of the category.
func (c Category) DisplayName() string {
	if name, ok := getCategoryDisplayNames()[c]; ok {
		return name
	}
	return getCategoryDisplayNames()[CategoryOther]
}

// CategoryFromText classifies free-text category input. Matching is
// case-insensitive against enumeration names first, then against localized
// display names. Unmatched or empty text resolves to CategoryOther; the
// function never fails.
func CategoryFromText(text string) Category {
	if text == "" {
		return CategoryOther
	}

	for category, name := range getCategoryNames() {
		if equalFold(name, text) {
			return category
		}
	}

	for category, displayName := range getCategoryDisplayNames() {
		if equalFold(displayName, text) {
			return category
		}
	}

	return CategoryOther
}
