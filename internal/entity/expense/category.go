package expense

import "max.ks1230/expense-tracker/internal/utils"

type Category string

const (
	Food           Category = "Food"
	Transportation Category = "Transportation"
	Housing        Category = "Housing"
	Entertainment  Category = "Entertainment"
	Shopping       Category = "Shopping"
	Utilities      Category = "Utilities"
	Healthcare     Category = "Healthcare"
	Education      Category = "Education"
	Other          Category = "Other"
)

// Categories is the closed set every record belongs to, in display order.
var Categories = []Category{
	Food, Transportation, Housing, Entertainment,
	Shopping, Utilities, Healthcare, Education, Other,
}

func (c Category) Valid() bool {
	return utils.Contains(Categories, c)
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", ErrUnknownCategory
	}
	return c, nil
}

// CategoryNames returns the labels of Categories, for prompts and messages.
func CategoryNames() []string {
	names := make([]string, 0, len(Categories))
	for _, c := range Categories {
		names = append(names, string(c))
	}
	return names
}
