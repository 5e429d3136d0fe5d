package domain

// Product is a catalog item.
//
// Price has no lower bound: a negative price is accepted.
type Product struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name" validate:"notblank"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock"`
}

var productMessages = fieldMessages{
	"name.notblank": "name must not be blank",
}

// Validate checks the field constraints of p.
func (p *Product) Validate() error {
	return validateStruct(p, productMessages)
}

// ApplyUpdate overwrites every mutable field of p with the value from in.
func (p *Product) ApplyUpdate(in *Product) {
	p.Name = in.Name
	p.Category = in.Category
	p.Price = in.Price
	p.Stock = in.Stock
}
