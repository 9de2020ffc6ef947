package handlers

type ProductResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	InStock     bool    `json:"in_stock"`
	Popularity  int     `json:"popularity"`
	WhatsAppURL string  `json:"whatsapp_url"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta"`
}

type CategoryResponse struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount int    `json:"product_count"`
}

type CartItemRequest struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,gt=0"`
}

// CartQuantityRequest carries the new quantity for a line item. Zero or
// negative removes the line, so no validation tag here.
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartItemResponse struct {
	Product   ProductResponse `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal float64         `json:"line_total"`
}

type CartResponse struct {
	SessionID string             `json:"session_id"`
	Items     []CartItemResponse `json:"items"`
	Total     float64            `json:"total"`
	ItemCount int                `json:"item_count"`
}

type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type AuthResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type RegisterResult struct {
	Message      string `json:"message"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type WhatsAppLinkResult struct {
	URL string `json:"url"`
}

type StatsResponse struct {
	TotalProducts      int            `json:"total_products"`
	CountByCategory    map[string]int `json:"count_by_category"`
	OutOfStockCount    int            `json:"out_of_stock_count"`
	MostPopularProduct struct {
		ID         int    `json:"id"`
		Name       string `json:"name"`
		Popularity int    `json:"popularity"`
	} `json:"most_popular_product"`
	ActiveCartSessions int `json:"active_cart_sessions"`
}
