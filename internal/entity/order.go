package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a pending order for data transfer between layers.
type Order struct {
	ID               uuid.UUID  `json:"id"`
	OrderNumber      string     `json:"order_number"`
	PhoneNumber      string     `json:"phone_number"`
	ShippingPhone    *string    `json:"shipping_phone,omitempty"`
	CustomerName     string     `json:"customer_name"`
	ShippingAddress  string     `json:"shipping_address"`
	City             *string    `json:"city,omitempty"`
	ProcessingStatus string     `json:"processing_status"`
	TrackingNumber   *string    `json:"tracking_number,omitempty"`
	Carrier          *string    `json:"carrier,omitempty"`
	ShippingStatus   string     `json:"shipping_status"`
	ShippedAt        *time.Time `json:"shipped_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
