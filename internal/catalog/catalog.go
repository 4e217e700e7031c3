package catalog

import (
	"github.com/benjaminbelloeil/portfolio-api/internal/cart"
	"github.com/benjaminbelloeil/portfolio-api/pkg/enums"
)

// Product is one storefront listing.
type Product struct {
	ID          int                   `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Price       string                `json:"price"`
	Image       string                `json:"image"`
	Category    enums.ProductCategory `json:"category"`
	Rating      float64               `json:"rating"`
	Reviews     int                   `json:"reviews"`
	Features    []string              `json:"features"`
}

// CartProduct converts a listing into the cart's product shape.
func (p Product) CartProduct() cart.Product {
	return cart.Product{ID: p.ID, Title: p.Title, Price: p.Price, Image: p.Image}
}

// The catalog is static: listings change with deployments, not at runtime.
var products = []Product{
	{
		ID:          1,
		Title:       "HTML Starter Website",
		Description: "A basic yet professional HTML website template.",
		Price:       "$50",
		Image:       "/assets/projects/ComingSoon.png",
		Category:    enums.ProductCategoryWebsites,
		Rating:      4.5,
		Reviews:     34,
		Features:    []string{"Responsive Layout", "Basic Navigation", "Static Pages"},
	},
	{
		ID:          2,
		Title:       "CSS Enhanced Website",
		Description: "A visually appealing website styled with CSS.",
		Price:       "$75",
		Image:       "/assets/projects/ComingSoon.png",
		Category:    enums.ProductCategoryTemplates,
		Rating:      4.7,
		Reviews:     45,
		Features:    []string{"Stylish Layouts", "Mobile-Friendly", "Easy Customization"},
	},
	{
		ID:          3,
		Title:       "JavaScript Dynamic Website",
		Description: "An interactive website template powered by JavaScript.",
		Price:       "$100",
		Image:       "/assets/projects/ComingSoon.png",
		Category:    enums.ProductCategoryWebsites,
		Rating:      4.8,
		Reviews:     56,
		Features:    []string{"Interactive Elements", "Form Validation", "Dynamic Updates"},
	},
	{
		ID:          4,
		Title:       "Swift iOS App Template",
		Description: "A user-friendly iOS app template built with Swift.",
		Price:       "$150",
		Image:       "/assets/projects/ComingSoon.png",
		Category:    enums.ProductCategoryMobile,
		Rating:      4.9,
		Reviews:     78,
		Features:    []string{"Clean Interface", "Smooth Animations", "Easy Deployment"},
	},
}

// Products returns every listing in display order.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// ProductsByCategory filters listings to one category.
func ProductsByCategory(category enums.ProductCategory) []Product {
	out := []Product{}
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// FindProduct looks a listing up by id.
func FindProduct(id int) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
