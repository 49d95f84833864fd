package domain

import (
	"errors"
	"strings"
)

// Category groups products on the menu.
type Category string

const (
	CategoryBurger  Category = "BURGER"
	CategorySide    Category = "SIDE"
	CategoryDrink   Category = "DRINK"
	CategoryDessert Category = "DESSERT"
	CategoryPizza   Category = "PIZZA"
)

var ErrInvalidCategory = errors.New("invalid product category")

// Categories lists every known category in menu order.
func Categories() []Category {
	return []Category{CategoryBurger, CategorySide, CategoryDrink, CategoryDessert, CategoryPizza}
}

// ParseCategory matches raw against the known categories, ignoring case and surrounding space.
func ParseCategory(raw string) (Category, error) {
	candidate := Category(strings.ToUpper(strings.TrimSpace(raw)))
	for _, c := range Categories() {
		if c == candidate {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}

// Product is an item that can be ordered.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    Category
}

// NewProduct builds a product from its attributes.
func NewProduct(id, name, description string, price float64, category Category) *Product {
	return &Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
	}
}

func (p *Product) Rename(name string) { p.Name = name }

func (p *Product) Describe(description string) { p.Description = description }

func (p *Product) Reprice(price float64) { p.Price = price }

func (p *Product) Recategorize(category Category) { p.Category = category }

// Clone returns a copy of the product.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}
