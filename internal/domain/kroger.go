package domain

// KrogerTokenResponse is the payload returned by the OAuth2
// client-credentials token endpoint
type KrogerTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int    `json:"expires_in,omitempty"`
}

// KrogerLocationsResponse is the envelope returned by the locations endpoint
type KrogerLocationsResponse struct {
	Data []KrogerLocation `json:"data"`
}

// KrogerLocation represents a single store location from the Kroger API
type KrogerLocation struct {
	LocationID string        `json:"locationId"`
	Name       string        `json:"name"`
	Address    KrogerAddress `json:"address"`
}

// KrogerAddress holds the address fields we care about
type KrogerAddress struct {
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	ZipCode      string `json:"zipCode,omitempty"`
}

// KrogerProductsResponse is the envelope returned by the products endpoint
type KrogerProductsResponse struct {
	Data []KrogerProduct `json:"data"`
}

// KrogerProduct represents a single product search result
type KrogerProduct struct {
	ProductID   string       `json:"productId,omitempty"`
	Description string       `json:"description,omitempty"`
	Items       []KrogerItem `json:"items"`
}

// KrogerItem is one sellable variant of a product at a location
type KrogerItem struct {
	Price KrogerPrice `json:"price"`
}

// KrogerPrice holds the listed prices for an item
type KrogerPrice struct {
	Regular float64 `json:"regular"`
	Promo   float64 `json:"promo,omitempty"`
}
