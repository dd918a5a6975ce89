package checkout

// CheckoutRequest mirrors the storefront's cart payload. Numeric fields are
// pointers so an absent field is distinguishable from an explicit zero; a
// free promotional item (price 0) is valid, a missing price is not.
type CheckoutRequest struct {
	CartItems []CartItem `json:"cartItems"`
}

type CartItem struct {
	Name     string   `json:"name" validate:"required"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	Quantity *int64   `json:"quantity" validate:"required,gte=1"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}
