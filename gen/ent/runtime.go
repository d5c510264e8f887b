// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dfrestrepo/guia-notify/db/ent/schema"
	"github.com/dfrestrepo/guia-notify/gen/ent/order"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	orderFields := schema.Order{}.Fields()
	_ = orderFields
	// orderDescOrderNumber is the schema descriptor for order_number field.
	orderDescOrderNumber := orderFields[1].Descriptor()
	// order.OrderNumberValidator is a validator for the "order_number" field. It is called by the builders before save.
	order.OrderNumberValidator = orderDescOrderNumber.Validators[0].(func(string) error)
	// orderDescPhoneNumber is the schema descriptor for phone_number field.
	orderDescPhoneNumber := orderFields[2].Descriptor()
	// order.PhoneNumberValidator is a validator for the "phone_number" field. It is called by the builders before save.
	order.PhoneNumberValidator = orderDescPhoneNumber.Validators[0].(func(string) error)
	// orderDescCustomerName is the schema descriptor for customer_name field.
	orderDescCustomerName := orderFields[4].Descriptor()
	// order.CustomerNameValidator is a validator for the "customer_name" field. It is called by the builders before save.
	order.CustomerNameValidator = orderDescCustomerName.Validators[0].(func(string) error)
	// orderDescShippingAddress is the schema descriptor for shipping_address field.
	orderDescShippingAddress := orderFields[5].Descriptor()
	// order.ShippingAddressValidator is a validator for the "shipping_address" field. It is called by the builders before save.
	order.ShippingAddressValidator = orderDescShippingAddress.Validators[0].(func(string) error)
	// orderDescProcessingStatus is the schema descriptor for processing_status field.
	orderDescProcessingStatus := orderFields[7].Descriptor()
	// order.DefaultProcessingStatus holds the default value on creation for the processing_status field.
	order.DefaultProcessingStatus = orderDescProcessingStatus.Default.(string)
	// orderDescShippingStatus is the schema descriptor for shipping_status field.
	orderDescShippingStatus := orderFields[10].Descriptor()
	// order.DefaultShippingStatus holds the default value on creation for the shipping_status field.
	order.DefaultShippingStatus = orderDescShippingStatus.Default.(string)
	// orderDescCreatedAt is the schema descriptor for created_at field.
	orderDescCreatedAt := orderFields[12].Descriptor()
	// order.DefaultCreatedAt holds the default value on creation for the created_at field.
	order.DefaultCreatedAt = orderDescCreatedAt.Default.(func() time.Time)
	// orderDescUpdatedAt is the schema descriptor for updated_at field.
	orderDescUpdatedAt := orderFields[13].Descriptor()
	// order.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	order.DefaultUpdatedAt = orderDescUpdatedAt.Default.(func() time.Time)
	// order.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	order.UpdateDefaultUpdatedAt = orderDescUpdatedAt.UpdateDefault.(func() time.Time)
	// orderDescID is the schema descriptor for id field.
	orderDescID := orderFields[0].Descriptor()
	// order.DefaultID holds the default value on creation for the id field.
	order.DefaultID = orderDescID.Default.(func() uuid.UUID)
}
