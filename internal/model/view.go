package model

// ProductFieldNames lists, in order, the fields exposed for a product.
var ProductFieldNames = []string{"id", "name", "description", "price", "stock"}

// ProductView is the wire representation of a product.
type ProductView struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

// NewProductView projects a product onto its wire representation.
func NewProductView(p Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
	}
}

// NewProductViews projects each product. The result is never nil so an
// empty list encodes as [].
func NewProductViews(products []Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p))
	}
	return views
}

// MessageResponse is returned for actions that have no resource body.
type MessageResponse struct {
	Message string `json:"message"`
}
