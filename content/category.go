package content

// Category is a news category, in the form it is transmitted on the wire.
// The values are the Arabic category names used by the remote service, with
// the exception of the regional "SE" code.
type Category string

const (
	// All is a client-side sentinel. It is never sent to the server; a list
	// request for All simply omits the category filter.
	All           Category = "الكل"
	Breaking      Category = "عاجل"
	Politics      Category = "سياسة"
	Economy       Category = "اقتصاد"
	Sports        Category = "رياضة"
	Technology    Category = "تكنولوجيا"
	Health        Category = "صحة"
	Culture       Category = "ثقافة"
	Sweden        Category = "SE"
	International Category = "دولي"
)

var categories = []Category{
	All,
	Breaking,
	Politics,
	Economy,
	Sports,
	Technology,
	Health,
	Culture,
	Sweden,
	International,
}

// Categories returns the known categories, in display order.
func Categories() []Category {
	c := make([]Category, len(categories))
	copy(c, categories)

	return c
}

// IsAll returns true if the category is the client-side "all" sentinel.
func (c Category) IsAll() bool {
	return c == All || c == ""
}

// Valid returns true if the category is part of the known set.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}

	return false
}

func (c Category) String() string {
	return string(c)
}
