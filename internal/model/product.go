package model

// Product represents an inventory item stored in the products table.
// Nullable columns are pointers so that NULL survives a round trip.
type Product struct {
	ID          int64    `db:"id"`
	Name        string   `db:"name"`
	Description *string  `db:"description"`
	Price       *float64 `db:"price"`
	Stock       *int     `db:"stock"`
}

// ProductFields is the client-supplied field mapping used to create or
// update a product. A nil field was not supplied.
type ProductFields struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

// NewProduct builds an unsaved product from the supplied fields.
// Unsupplied fields are left at their zero value, which stores as NULL
// for the nullable columns and as an empty name otherwise.
func NewProduct(fields ProductFields) Product {
	p := Product{
		Description: fields.Description,
		Price:       fields.Price,
		Stock:       fields.Stock,
	}
	if fields.Name != nil {
		p.Name = *fields.Name
	}
	return p
}

// MergeTruthy overwrites the name, description, stock and price of p with
// the supplied values, skipping any that are nil, empty or zero.
// A zero price or stock therefore cannot be written through this merge.
func (p *Product) MergeTruthy(fields ProductFields) {
	if fields.Name != nil && *fields.Name != "" {
		p.Name = *fields.Name
	}
	if fields.Description != nil && *fields.Description != "" {
		p.Description = fields.Description
	}
	if fields.Stock != nil && *fields.Stock != 0 {
		p.Stock = fields.Stock
	}
	if fields.Price != nil && *fields.Price != 0 {
		p.Price = fields.Price
	}
}

// MergePresent overwrites every field that was supplied, including empty
// strings and zeroes.
func (p *Product) MergePresent(fields ProductFields) {
	if fields.Name != nil {
		p.Name = *fields.Name
	}
	if fields.Description != nil {
		p.Description = fields.Description
	}
	if fields.Stock != nil {
		p.Stock = fields.Stock
	}
	if fields.Price != nil {
		p.Price = fields.Price
	}
}
