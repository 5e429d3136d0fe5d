package domain

// Course is a unit of study offered for credit.
type Course struct {
	ID          int64   `json:"id"`
	Code        string  `json:"code" validate:"notblank"`
	Title       string  `json:"title" validate:"notblank"`
	Description *string `json:"description"`
	Credit      *int    `json:"credit" validate:"omitnil,gt=0"`
}

var courseMessages = fieldMessages{
	"code.notblank":  "code must not be blank",
	"title.notblank": "title must not be blank",
	"credit.gt":      "credit must be positive",
}

// Validate checks the field constraints of c.
func (c *Course) Validate() error {
	return validateStruct(c, courseMessages)
}

// ApplyUpdate overwrites every mutable field of c with the value from in.
// The identity is kept.
func (c *Course) ApplyUpdate(in *Course) {
	c.Code = in.Code
	c.Title = in.Title
	c.Description = in.Description
	c.Credit = in.Credit
}
