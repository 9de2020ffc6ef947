package models

// Product is one entry of the storefront catalog. The catalog is loaded once
// at process start and is immutable for the lifetime of the process.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	InStock     *bool    `json:"in_stock,omitempty"`
	Popularity  int      `json:"popularity,omitempty"`
}

// Available reports whether the product can currently be ordered. Only an
// explicit in_stock=false marks a product unavailable; absent means in stock.
func (p Product) Available() bool {
	return p.InStock == nil || *p.InStock
}
