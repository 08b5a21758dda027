// Package spend tracks expenses: keyword categorization, aggregation,
// insight derivation and recurring-subscription detection over a
// persisted ledger.
package spend

import "strings"

// Category pairs a spending category with the keywords that map a
// transaction description onto it.
type Category struct {
	Name     string
	Keywords []string
}

// CategoryOther is the fallback for descriptions no keyword matches.
const CategoryOther = "Other"

// DefaultCategories is the built-in categorization table. Order matters:
// the first category whose keyword matches wins.
var DefaultCategories = []Category{
	{Name: "Food & Dining", Keywords: []string{"restaurant", "food", "cafe", "grocery", "meal", "lunch", "dinner", "breakfast", "pizza", "burger", "starbucks", "mcdonald", "subway"}},
	{Name: "Transportation", Keywords: []string{"uber", "lyft", "gas", "fuel", "parking", "metro", "bus", "train", "taxi", "car", "auto"}},
	{Name: "Entertainment", Keywords: []string{"netflix", "spotify", "movie", "theater", "concert", "game", "steam", "ps", "xbox", "entertainment"}},
	{Name: "Shopping", Keywords: []string{"amazon", "walmart", "target", "mall", "store", "shop", "clothing", "fashion", "ebay"}},
	{Name: "Bills & Utilities", Keywords: []string{"electric", "water", "gas", "internet", "phone", "utility", "bill", "rent", "mortgage"}},
	{Name: "Healthcare", Keywords: []string{"hospital", "doctor", "pharmacy", "medical", "health", "medicine", "dental", "cvs", "walgreens"}},
	{Name: "Education", Keywords: []string{"tuition", "school", "course", "book", "education", "university", "college"}},
	{Name: CategoryOther, Keywords: nil},
}

// WithExtraKeywords returns a copy of the table with user-supplied
// keywords appended to their categories. Unknown category names are
// ignored.
func WithExtraKeywords(table []Category, extra map[string][]string) []Category {
	out := make([]Category, len(table))
	for i, c := range table {
		kws := c.Keywords
		if add := extra[c.Name]; len(add) > 0 {
			kws = append(append([]string(nil), kws...), add...)
		}
		out[i] = Category{Name: c.Name, Keywords: kws}
	}
	return out
}

// Categorize maps a description onto a category by case-insensitive
// substring match, checked in table order. It always returns a category.
func Categorize(table []Category, description string) string {
	lower := strings.ToLower(description)
	for _, c := range table {
		for _, kw := range c.Keywords {
			if strings.Contains(lower, kw) {
				return c.Name
			}
		}
	}
	return CategoryOther
}
