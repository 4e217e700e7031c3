package enums

import "fmt"

// ProductCategory groups catalog entries for storefront filtering.
type ProductCategory string

const (
	ProductCategoryWebsites  ProductCategory = "websites"
	ProductCategoryTemplates ProductCategory = "templates"
	ProductCategoryMobile    ProductCategory = "mobile"
)

var validProductCategories = []ProductCategory{
	ProductCategoryWebsites,
	ProductCategoryTemplates,
	ProductCategoryMobile,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
