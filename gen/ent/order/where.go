// Code generated by ent, DO NOT EDIT.

package order

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dfrestrepo/guia-notify/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldID, id))
}

// OrderNumber applies equality check predicate on the "order_number" field. It's identical to OrderNumberEQ.
func OrderNumber(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldOrderNumber, v))
}

// PhoneNumber applies equality check predicate on the "phone_number" field. It's identical to PhoneNumberEQ.
func PhoneNumber(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPhoneNumber, v))
}

// ShippingPhone applies equality check predicate on the "shipping_phone" field. It's identical to ShippingPhoneEQ.
func ShippingPhone(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldShippingPhone, v))
}

// CustomerName applies equality check predicate on the "customer_name" field. It's identical to CustomerNameEQ.
func CustomerName(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCustomerName, v))
}

// ShippingAddress applies equality check predicate on the "shipping_address" field. It's identical to ShippingAddressEQ.
func ShippingAddress(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldShippingAddress, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCity, v))
}

// ProcessingStatus applies equality check predicate on the "processing_status" field. It's identical to ProcessingStatusEQ.
func ProcessingStatus(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldProcessingStatus, v))
}

// TrackingNumber applies equality check predicate on the "tracking_number" field. It's identical to TrackingNumberEQ.
func TrackingNumber(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTrackingNumber, v))
}

// Carrier applies equality check predicate on the "carrier" field. It's identical to CarrierEQ.
func Carrier(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCarrier, v))
}

// ShippingStatus applies equality check predicate on the "shipping_status" field. It's identical to ShippingStatusEQ.
func ShippingStatus(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldShippingStatus, v))
}

// ShippedAt applies equality check predicate on the "shipped_at" field. It's identical to ShippedAtEQ.
func ShippedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldShippedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrderNumberEQ applies the EQ predicate on the "order_number" field.
func OrderNumberEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldOrderNumber, v))
}

// OrderNumberNEQ applies the NEQ predicate on the "order_number" field.
func OrderNumberNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldOrderNumber, v))
}

// OrderNumberIn applies the In predicate on the "order_number" field.
func OrderNumberIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldOrderNumber, vs...))
}

// OrderNumberNotIn applies the NotIn predicate on the "order_number" field.
func OrderNumberNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldOrderNumber, vs...))
}

// OrderNumberGT applies the GT predicate on the "order_number" field.
func OrderNumberGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldOrderNumber, v))
}

// OrderNumberGTE applies the GTE predicate on the "order_number" field.
func OrderNumberGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldOrderNumber, v))
}

// OrderNumberLT applies the LT predicate on the "order_number" field.
func OrderNumberLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldOrderNumber, v))
}

// OrderNumberLTE applies the LTE predicate on the "order_number" field.
func OrderNumberLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldOrderNumber, v))
}

// OrderNumberContains applies the Contains predicate on the "order_number" field.
func OrderNumberContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldOrderNumber, v))
}

// OrderNumberHasPrefix applies the HasPrefix predicate on the "order_number" field.
func OrderNumberHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldOrderNumber, v))
}

// OrderNumberHasSuffix applies the HasSuffix predicate on the "order_number" field.
func OrderNumberHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldOrderNumber, v))
}

// OrderNumberEqualFold applies the EqualFold predicate on the "order_number" field.
func OrderNumberEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldOrderNumber, v))
}

// OrderNumberContainsFold applies the ContainsFold predicate on the "order_number" field.
func OrderNumberContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldOrderNumber, v))
}

// PhoneNumberEQ applies the EQ predicate on the "phone_number" field.
func PhoneNumberEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldPhoneNumber, v))
}

// PhoneNumberNEQ applies the NEQ predicate on the "phone_number" field.
func PhoneNumberNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldPhoneNumber, v))
}

// PhoneNumberIn applies the In predicate on the "phone_number" field.
func PhoneNumberIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldPhoneNumber, vs...))
}

// PhoneNumberNotIn applies the NotIn predicate on the "phone_number" field.
func PhoneNumberNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldPhoneNumber, vs...))
}

// PhoneNumberGT applies the GT predicate on the "phone_number" field.
func PhoneNumberGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldPhoneNumber, v))
}

// PhoneNumberGTE applies the GTE predicate on the "phone_number" field.
func PhoneNumberGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldPhoneNumber, v))
}

// PhoneNumberLT applies the LT predicate on the "phone_number" field.
func PhoneNumberLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldPhoneNumber, v))
}

// PhoneNumberLTE applies the LTE predicate on the "phone_number" field.
func PhoneNumberLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldPhoneNumber, v))
}

// PhoneNumberContains applies the Contains predicate on the "phone_number" field.
func PhoneNumberContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldPhoneNumber, v))
}

// PhoneNumberHasPrefix applies the HasPrefix predicate on the "phone_number" field.
func PhoneNumberHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldPhoneNumber, v))
}

// PhoneNumberHasSuffix applies the HasSuffix predicate on the "phone_number" field.
func PhoneNumberHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldPhoneNumber, v))
}

// PhoneNumberEqualFold applies the EqualFold predicate on the "phone_number" field.
func PhoneNumberEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldPhoneNumber, v))
}

// PhoneNumberContainsFold applies the ContainsFold predicate on the "phone_number" field.
func PhoneNumberContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldPhoneNumber, v))
}

// ShippingPhoneEQ applies the EQ predicate on the "shipping_phone" field.
func ShippingPhoneEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldShippingPhone, v))
}

// ShippingPhoneNEQ applies the NEQ predicate on the "shipping_phone" field.
func ShippingPhoneNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldShippingPhone, v))
}

// ShippingPhoneIn applies the In predicate on the "shipping_phone" field.
func ShippingPhoneIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldShippingPhone, vs...))
}

// ShippingPhoneNotIn applies the NotIn predicate on the "shipping_phone" field.
func ShippingPhoneNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldShippingPhone, vs...))
}

// ShippingPhoneGT applies the GT predicate on the "shipping_phone" field.
func ShippingPhoneGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldShippingPhone, v))
}

// ShippingPhoneGTE applies the GTE predicate on the "shipping_phone" field.
func ShippingPhoneGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldShippingPhone, v))
}

// ShippingPhoneLT applies the LT predicate on the "shipping_phone" field.
func ShippingPhoneLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldShippingPhone, v))
}

// ShippingPhoneLTE applies the LTE predicate on the "shipping_phone" field.
func ShippingPhoneLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldShippingPhone, v))
}

// ShippingPhoneContains applies the Contains predicate on the "shipping_phone" field.
func ShippingPhoneContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldShippingPhone, v))
}

// ShippingPhoneHasPrefix applies the HasPrefix predicate on the "shipping_phone" field.
func ShippingPhoneHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldShippingPhone, v))
}

// ShippingPhoneHasSuffix applies the HasSuffix predicate on the "shipping_phone" field.
func ShippingPhoneHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldShippingPhone, v))
}

// ShippingPhoneIsNil applies the IsNil predicate on the "shipping_phone" field.
func ShippingPhoneIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldShippingPhone))
}

// ShippingPhoneNotNil applies the NotNil predicate on the "shipping_phone" field.
func ShippingPhoneNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldShippingPhone))
}

// ShippingPhoneEqualFold applies the EqualFold predicate on the "shipping_phone" field.
func ShippingPhoneEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldShippingPhone, v))
}

// ShippingPhoneContainsFold applies the ContainsFold predicate on the "shipping_phone" field.
func ShippingPhoneContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldShippingPhone, v))
}

// CustomerNameEQ applies the EQ predicate on the "customer_name" field.
func CustomerNameEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCustomerName, v))
}

// CustomerNameNEQ applies the NEQ predicate on the "customer_name" field.
func CustomerNameNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCustomerName, v))
}

// CustomerNameIn applies the In predicate on the "customer_name" field.
func CustomerNameIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCustomerName, vs...))
}

// CustomerNameNotIn applies the NotIn predicate on the "customer_name" field.
func CustomerNameNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCustomerName, vs...))
}

// CustomerNameGT applies the GT predicate on the "customer_name" field.
func CustomerNameGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCustomerName, v))
}

// CustomerNameGTE applies the GTE predicate on the "customer_name" field.
func CustomerNameGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCustomerName, v))
}

// CustomerNameLT applies the LT predicate on the "customer_name" field.
func CustomerNameLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCustomerName, v))
}

// CustomerNameLTE applies the LTE predicate on the "customer_name" field.
func CustomerNameLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCustomerName, v))
}

// CustomerNameContains applies the Contains predicate on the "customer_name" field.
func CustomerNameContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldCustomerName, v))
}

// CustomerNameHasPrefix applies the HasPrefix predicate on the "customer_name" field.
func CustomerNameHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldCustomerName, v))
}

// CustomerNameHasSuffix applies the HasSuffix predicate on the "customer_name" field.
func CustomerNameHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldCustomerName, v))
}

// CustomerNameEqualFold applies the EqualFold predicate on the "customer_name" field.
func CustomerNameEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldCustomerName, v))
}

// CustomerNameContainsFold applies the ContainsFold predicate on the "customer_name" field.
func CustomerNameContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldCustomerName, v))
}

// ShippingAddressEQ applies the EQ predicate on the "shipping_address" field.
func ShippingAddressEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldShippingAddress, v))
}

// ShippingAddressNEQ applies the NEQ predicate on the "shipping_address" field.
func ShippingAddressNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldShippingAddress, v))
}

// ShippingAddressIn applies the In predicate on the "shipping_address" field.
func ShippingAddressIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldShippingAddress, vs...))
}

// ShippingAddressNotIn applies the NotIn predicate on the "shipping_address" field.
func ShippingAddressNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldShippingAddress, vs...))
}

// ShippingAddressGT applies the GT predicate on the "shipping_address" field.
func ShippingAddressGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldShippingAddress, v))
}

// ShippingAddressGTE applies the GTE predicate on the "shipping_address" field.
func ShippingAddressGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldShippingAddress, v))
}

// ShippingAddressLT applies the LT predicate on the "shipping_address" field.
func ShippingAddressLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldShippingAddress, v))
}

// ShippingAddressLTE applies the LTE predicate on the "shipping_address" field.
func ShippingAddressLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldShippingAddress, v))
}

// ShippingAddressContains applies the Contains predicate on the "shipping_address" field.
func ShippingAddressContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldShippingAddress, v))
}

// ShippingAddressHasPrefix applies the HasPrefix predicate on the "shipping_address" field.
func ShippingAddressHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldShippingAddress, v))
}

// ShippingAddressHasSuffix applies the HasSuffix predicate on the "shipping_address" field.
func ShippingAddressHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldShippingAddress, v))
}

// ShippingAddressEqualFold applies the EqualFold predicate on the "shipping_address" field.
func ShippingAddressEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldShippingAddress, v))
}

// ShippingAddressContainsFold applies the ContainsFold predicate on the "shipping_address" field.
func ShippingAddressContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldShippingAddress, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldCity, v))
}

// CityIsNil applies the IsNil predicate on the "city" field.
func CityIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldCity))
}

// CityNotNil applies the NotNil predicate on the "city" field.
func CityNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldCity))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldCity, v))
}

// ProcessingStatusEQ applies the EQ predicate on the "processing_status" field.
func ProcessingStatusEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldProcessingStatus, v))
}

// ProcessingStatusNEQ applies the NEQ predicate on the "processing_status" field.
func ProcessingStatusNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldProcessingStatus, v))
}

// ProcessingStatusIn applies the In predicate on the "processing_status" field.
func ProcessingStatusIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusNotIn applies the NotIn predicate on the "processing_status" field.
func ProcessingStatusNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusGT applies the GT predicate on the "processing_status" field.
func ProcessingStatusGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldProcessingStatus, v))
}

// ProcessingStatusGTE applies the GTE predicate on the "processing_status" field.
func ProcessingStatusGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldProcessingStatus, v))
}

// ProcessingStatusLT applies the LT predicate on the "processing_status" field.
func ProcessingStatusLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldProcessingStatus, v))
}

// ProcessingStatusLTE applies the LTE predicate on the "processing_status" field.
func ProcessingStatusLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldProcessingStatus, v))
}

// ProcessingStatusContains applies the Contains predicate on the "processing_status" field.
func ProcessingStatusContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldProcessingStatus, v))
}

// ProcessingStatusHasPrefix applies the HasPrefix predicate on the "processing_status" field.
func ProcessingStatusHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldProcessingStatus, v))
}

// ProcessingStatusHasSuffix applies the HasSuffix predicate on the "processing_status" field.
func ProcessingStatusHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldProcessingStatus, v))
}

// ProcessingStatusEqualFold applies the EqualFold predicate on the "processing_status" field.
func ProcessingStatusEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldProcessingStatus, v))
}

// ProcessingStatusContainsFold applies the ContainsFold predicate on the "processing_status" field.
func ProcessingStatusContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldProcessingStatus, v))
}

// TrackingNumberEQ applies the EQ predicate on the "tracking_number" field.
func TrackingNumberEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTrackingNumber, v))
}

// TrackingNumberNEQ applies the NEQ predicate on the "tracking_number" field.
func TrackingNumberNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldTrackingNumber, v))
}

// TrackingNumberIn applies the In predicate on the "tracking_number" field.
func TrackingNumberIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldTrackingNumber, vs...))
}

// TrackingNumberNotIn applies the NotIn predicate on the "tracking_number" field.
func TrackingNumberNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldTrackingNumber, vs...))
}

// TrackingNumberGT applies the GT predicate on the "tracking_number" field.
func TrackingNumberGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldTrackingNumber, v))
}

// TrackingNumberGTE applies the GTE predicate on the "tracking_number" field.
func TrackingNumberGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldTrackingNumber, v))
}

// TrackingNumberLT applies the LT predicate on the "tracking_number" field.
func TrackingNumberLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldTrackingNumber, v))
}

// TrackingNumberLTE applies the LTE predicate on the "tracking_number" field.
func TrackingNumberLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldTrackingNumber, v))
}

// TrackingNumberContains applies the Contains predicate on the "tracking_number" field.
func TrackingNumberContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldTrackingNumber, v))
}

// TrackingNumberHasPrefix applies the HasPrefix predicate on the "tracking_number" field.
func TrackingNumberHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldTrackingNumber, v))
}

// TrackingNumberHasSuffix applies the HasSuffix predicate on the "tracking_number" field.
func TrackingNumberHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldTrackingNumber, v))
}

// TrackingNumberIsNil applies the IsNil predicate on the "tracking_number" field.
func TrackingNumberIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldTrackingNumber))
}

// TrackingNumberNotNil applies the NotNil predicate on the "tracking_number" field.
func TrackingNumberNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldTrackingNumber))
}

// TrackingNumberEqualFold applies the EqualFold predicate on the "tracking_number" field.
func TrackingNumberEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldTrackingNumber, v))
}

// TrackingNumberContainsFold applies the ContainsFold predicate on the "tracking_number" field.
func TrackingNumberContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldTrackingNumber, v))
}

// CarrierEQ applies the EQ predicate on the "carrier" field.
func CarrierEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCarrier, v))
}

// CarrierNEQ applies the NEQ predicate on the "carrier" field.
func CarrierNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCarrier, v))
}

// CarrierIn applies the In predicate on the "carrier" field.
func CarrierIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCarrier, vs...))
}

// CarrierNotIn applies the NotIn predicate on the "carrier" field.
func CarrierNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCarrier, vs...))
}

// CarrierGT applies the GT predicate on the "carrier" field.
func CarrierGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCarrier, v))
}

// CarrierGTE applies the GTE predicate on the "carrier" field.
func CarrierGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCarrier, v))
}

// CarrierLT applies the LT predicate on the "carrier" field.
func CarrierLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCarrier, v))
}

// CarrierLTE applies the LTE predicate on the "carrier" field.
func CarrierLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCarrier, v))
}

// CarrierContains applies the Contains predicate on the "carrier" field.
func CarrierContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldCarrier, v))
}

// CarrierHasPrefix applies the HasPrefix predicate on the "carrier" field.
func CarrierHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldCarrier, v))
}

// CarrierHasSuffix applies the HasSuffix predicate on the "carrier" field.
func CarrierHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldCarrier, v))
}

// CarrierIsNil applies the IsNil predicate on the "carrier" field.
func CarrierIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldCarrier))
}

// CarrierNotNil applies the NotNil predicate on the "carrier" field.
func CarrierNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldCarrier))
}

// CarrierEqualFold applies the EqualFold predicate on the "carrier" field.
func CarrierEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldCarrier, v))
}

// CarrierContainsFold applies the ContainsFold predicate on the "carrier" field.
func CarrierContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldCarrier, v))
}

// ShippingStatusEQ applies the EQ predicate on the "shipping_status" field.
func ShippingStatusEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldShippingStatus, v))
}

// ShippingStatusNEQ applies the NEQ predicate on the "shipping_status" field.
func ShippingStatusNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldShippingStatus, v))
}

// ShippingStatusIn applies the In predicate on the "shipping_status" field.
func ShippingStatusIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldShippingStatus, vs...))
}

// ShippingStatusNotIn applies the NotIn predicate on the "shipping_status" field.
func ShippingStatusNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldShippingStatus, vs...))
}

// ShippingStatusGT applies the GT predicate on the "shipping_status" field.
func ShippingStatusGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldShippingStatus, v))
}

// ShippingStatusGTE applies the GTE predicate on the "shipping_status" field.
func ShippingStatusGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldShippingStatus, v))
}

// ShippingStatusLT applies the LT predicate on the "shipping_status" field.
func ShippingStatusLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldShippingStatus, v))
}

// ShippingStatusLTE applies the LTE predicate on the "shipping_status" field.
func ShippingStatusLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldShippingStatus, v))
}

// ShippingStatusContains applies the Contains predicate on the "shipping_status" field.
func ShippingStatusContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldShippingStatus, v))
}

// ShippingStatusHasPrefix applies the HasPrefix predicate on the "shipping_status" field.
func ShippingStatusHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldShippingStatus, v))
}

// ShippingStatusHasSuffix applies the HasSuffix predicate on the "shipping_status" field.
func ShippingStatusHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldShippingStatus, v))
}

// ShippingStatusEqualFold applies the EqualFold predicate on the "shipping_status" field.
func ShippingStatusEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldShippingStatus, v))
}

// ShippingStatusContainsFold applies the ContainsFold predicate on the "shipping_status" field.
func ShippingStatusContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldShippingStatus, v))
}

// ShippedAtEQ applies the EQ predicate on the "shipped_at" field.
func ShippedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldShippedAt, v))
}

// ShippedAtNEQ applies the NEQ predicate on the "shipped_at" field.
func ShippedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldShippedAt, v))
}

// ShippedAtIn applies the In predicate on the "shipped_at" field.
func ShippedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldShippedAt, vs...))
}

// ShippedAtNotIn applies the NotIn predicate on the "shipped_at" field.
func ShippedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldShippedAt, vs...))
}

// ShippedAtGT applies the GT predicate on the "shipped_at" field.
func ShippedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldShippedAt, v))
}

// ShippedAtGTE applies the GTE predicate on the "shipped_at" field.
func ShippedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldShippedAt, v))
}

// ShippedAtLT applies the LT predicate on the "shipped_at" field.
func ShippedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldShippedAt, v))
}

// ShippedAtLTE applies the LTE predicate on the "shipped_at" field.
func ShippedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldShippedAt, v))
}

// ShippedAtIsNil applies the IsNil predicate on the "shipped_at" field.
func ShippedAtIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldShippedAt))
}

// ShippedAtNotNil applies the NotNil predicate on the "shipped_at" field.
func ShippedAtNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldShippedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Order) predicate.Order {
	return predicate.Order(sql.NotPredicates(p))
}
