package models

// LineItemInput is one offering in a product create/update payload. The kind
// is derived from the product's category, never supplied by the client.
type LineItemInput struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required"`
}

// CreateProductRequest is the request body for POST /product. Images are
// uploaded separately and arrive here as resolved URLs.
type CreateProductRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Address     string          `json:"address" binding:"required"`
	CategoryID  string          `json:"category" binding:"required"`
	DistrictID  string          `json:"location" binding:"required"`
	VenueID     string          `json:"business" binding:"required"`
	Items       []LineItemInput `json:"items"`
	ImageURLs   []string        `json:"image_urls"`
}
