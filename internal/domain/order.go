package domain

import (
	"strings"
	"time"
)

// DefaultOrderStatus is assigned to orders created without a status.
const DefaultOrderStatus = "CREATED"

// Order is a customer purchase. Status is free text (CREATED, PAID,
// CANCELED, ...). CreatedAt is assigned by the server once and never changes.
type Order struct {
	ID           int64     `json:"id"`
	OrderNumber  string    `json:"orderNumber" validate:"notblank"`
	CustomerName string    `json:"customerName" validate:"notblank"`
	TotalAmount  *float64  `json:"totalAmount" validate:"omitnil,gte=0"`
	Status       *string   `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

var orderMessages = fieldMessages{
	"orderNumber.notblank":  "orderNumber must not be blank",
	"customerName.notblank": "customerName must not be blank",
	"totalAmount.gte":       "totalAmount must be zero or positive",
}

// Validate checks the field constraints of o.
func (o *Order) Validate() error {
	return validateStruct(o, orderMessages)
}

// PrepareForCreate assigns the server-side fields of a new order. Any
// client-supplied creation time is discarded; the status defaults to
// DefaultOrderStatus only when absent or blank.
func (o *Order) PrepareForCreate(now time.Time) {
	o.CreatedAt = now.UTC().Truncate(time.Microsecond)
	if o.Status == nil || strings.TrimSpace(*o.Status) == "" {
		status := DefaultOrderStatus
		o.Status = &status
	}
}

// ApplyUpdate overwrites every mutable field of o with the value from in.
// The identity and CreatedAt are kept.
func (o *Order) ApplyUpdate(in *Order) {
	o.OrderNumber = in.OrderNumber
	o.CustomerName = in.CustomerName
	o.TotalAmount = in.TotalAmount
	o.Status = in.Status
}
