package entity

import "github.com/dfrestrepo/guia-notify/constants"

// ShipmentRecord holds the facts extracted from one guide document.
// Immutable after extraction; the source file is deleted by the pipeline
// once processing finishes, so only the capped excerpt survives for audit.
type ShipmentRecord struct {
	TrackingNumber  string            `json:"tracking_number"`
	Carrier         constants.Carrier `json:"carrier"`
	CustomerName    string            `json:"customer_name,omitempty"`
	CustomerPhone   string            `json:"customer_phone,omitempty"` // 57-prefixed digits
	ShippingAddress string            `json:"shipping_address,omitempty"`
	City            string            `json:"city,omitempty"`
	Department      string            `json:"department,omitempty"`
	RawExcerpt      string            `json:"raw_excerpt,omitempty"` // capped at 1000 chars
}

// MatchTier names the resolver strategy that produced a CustomerMatch.
type MatchTier string

const (
	MatchByPhone   MatchTier = "phone"
	MatchByName    MatchTier = "name"
	MatchByAddress MatchTier = "address"
)

// CustomerMatch is the result of resolving a ShipmentRecord to an order.
type CustomerMatch struct {
	OrderID         string    `json:"order_id"`
	OrderNumber     string    `json:"order_number"`
	Phone           string    `json:"phone"`
	CustomerName    string    `json:"customer_name"`
	ShippingAddress string    `json:"shipping_address"`
	Confidence      int       `json:"confidence"` // 100 phone, 80 name, 60 address
	MatchedBy       MatchTier `json:"matched_by"`
}
