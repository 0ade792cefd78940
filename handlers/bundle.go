package handlers

// HandlerBundle groups all endpoint handlers into one struct so route
// registration only needs a single dependency.
type HandlerBundle struct {
	Auth    *AuthHandler
	User    *UserHandler
	Booking *BookingHandler
	Product *ProductHandler
	Catalog *CatalogHandler
	Content *ContentHandler
	Stats   *StatsHandler
}
