package constants

// ProcessingStatus is the canonical lifecycle status for rows in orders.
type ProcessingStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    ProcessingStatus = "pending"
	StatusConfirmed  ProcessingStatus = "confirmed"  // eligible for guide matching
	StatusProcessing ProcessingStatus = "processing" // eligible for guide matching
	StatusCancelled  ProcessingStatus = "cancelled"
	StatusDelivered  ProcessingStatus = "delivered"
)

// ShippingStatus tracks the notification/shipment side of an order.
type ShippingStatus string

const (
	ShippingPending ShippingStatus = "pending"
	ShippingShipped ShippingStatus = "shipped"
)

// EligibleStatuses are the processing statuses a guide may still match
// against. Orders outside this set, or with a tracking number already
// assigned, are never re-notified.
func EligibleStatuses() []string {
	return []string{string(StatusConfirmed), string(StatusProcessing)}
}

// DocClass is the tri-state classification computed before extraction.
type DocClass string

const (
	DocCarrierGuide DocClass = "carrier_guide"
	DocChatFormat   DocClass = "alternate_chat_format"
	DocUnknown      DocClass = "unknown"
)
