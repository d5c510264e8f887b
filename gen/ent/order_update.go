// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dfrestrepo/guia-notify/gen/ent/order"
	"github.com/dfrestrepo/guia-notify/gen/ent/predicate"
)

// OrderUpdate is the builder for updating Order entities.
type OrderUpdate struct {
	config
	hooks    []Hook
	mutation *OrderMutation
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdate) Where(ps ...predicate.Order) *OrderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrderNumber sets the "order_number" field.
func (_u *OrderUpdate) SetOrderNumber(v string) *OrderUpdate {
	_u.mutation.SetOrderNumber(v)
	return _u
}

// SetNillableOrderNumber sets the "order_number" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableOrderNumber(v *string) *OrderUpdate {
	if v != nil {
		_u.SetOrderNumber(*v)
	}
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *OrderUpdate) SetPhoneNumber(v string) *OrderUpdate {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *OrderUpdate) SetNillablePhoneNumber(v *string) *OrderUpdate {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// SetShippingPhone sets the "shipping_phone" field.
func (_u *OrderUpdate) SetShippingPhone(v string) *OrderUpdate {
	_u.mutation.SetShippingPhone(v)
	return _u
}

// SetNillableShippingPhone sets the "shipping_phone" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableShippingPhone(v *string) *OrderUpdate {
	if v != nil {
		_u.SetShippingPhone(*v)
	}
	return _u
}

// ClearShippingPhone clears the value of the "shipping_phone" field.
func (_u *OrderUpdate) ClearShippingPhone() *OrderUpdate {
	_u.mutation.ClearShippingPhone()
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *OrderUpdate) SetCustomerName(v string) *OrderUpdate {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCustomerName(v *string) *OrderUpdate {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// SetShippingAddress sets the "shipping_address" field.
func (_u *OrderUpdate) SetShippingAddress(v string) *OrderUpdate {
	_u.mutation.SetShippingAddress(v)
	return _u
}

// SetNillableShippingAddress sets the "shipping_address" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableShippingAddress(v *string) *OrderUpdate {
	if v != nil {
		_u.SetShippingAddress(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *OrderUpdate) SetCity(v string) *OrderUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCity(v *string) *OrderUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *OrderUpdate) ClearCity() *OrderUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *OrderUpdate) SetProcessingStatus(v string) *OrderUpdate {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableProcessingStatus(v *string) *OrderUpdate {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetTrackingNumber sets the "tracking_number" field.
func (_u *OrderUpdate) SetTrackingNumber(v string) *OrderUpdate {
	_u.mutation.SetTrackingNumber(v)
	return _u
}

// SetNillableTrackingNumber sets the "tracking_number" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableTrackingNumber(v *string) *OrderUpdate {
	if v != nil {
		_u.SetTrackingNumber(*v)
	}
	return _u
}

// ClearTrackingNumber clears the value of the "tracking_number" field.
func (_u *OrderUpdate) ClearTrackingNumber() *OrderUpdate {
	_u.mutation.ClearTrackingNumber()
	return _u
}

// SetCarrier sets the "carrier" field.
func (_u *OrderUpdate) SetCarrier(v string) *OrderUpdate {
	_u.mutation.SetCarrier(v)
	return _u
}

// SetNillableCarrier sets the "carrier" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCarrier(v *string) *OrderUpdate {
	if v != nil {
		_u.SetCarrier(*v)
	}
	return _u
}

// ClearCarrier clears the value of the "carrier" field.
func (_u *OrderUpdate) ClearCarrier() *OrderUpdate {
	_u.mutation.ClearCarrier()
	return _u
}

// SetShippingStatus sets the "shipping_status" field.
func (_u *OrderUpdate) SetShippingStatus(v string) *OrderUpdate {
	_u.mutation.SetShippingStatus(v)
	return _u
}

// SetNillableShippingStatus sets the "shipping_status" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableShippingStatus(v *string) *OrderUpdate {
	if v != nil {
		_u.SetShippingStatus(*v)
	}
	return _u
}

// SetShippedAt sets the "shipped_at" field.
func (_u *OrderUpdate) SetShippedAt(v time.Time) *OrderUpdate {
	_u.mutation.SetShippedAt(v)
	return _u
}

// SetNillableShippedAt sets the "shipped_at" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableShippedAt(v *time.Time) *OrderUpdate {
	if v != nil {
		_u.SetShippedAt(*v)
	}
	return _u
}

// ClearShippedAt clears the value of the "shipped_at" field.
func (_u *OrderUpdate) ClearShippedAt() *OrderUpdate {
	_u.mutation.ClearShippedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrderUpdate) SetUpdatedAt(v time.Time) *OrderUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdate) Mutation() *OrderMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := order.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdate) check() error {
	if v, ok := _u.mutation.OrderNumber(); ok {
		if err := order.OrderNumberValidator(v); err != nil {
			return &ValidationError{Name: "order_number", err: fmt.Errorf(`ent: validator failed for field "Order.order_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhoneNumber(); ok {
		if err := order.PhoneNumberValidator(v); err != nil {
			return &ValidationError{Name: "phone_number", err: fmt.Errorf(`ent: validator failed for field "Order.phone_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CustomerName(); ok {
		if err := order.CustomerNameValidator(v); err != nil {
			return &ValidationError{Name: "customer_name", err: fmt.Errorf(`ent: validator failed for field "Order.customer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ShippingAddress(); ok {
		if err := order.ShippingAddressValidator(v); err != nil {
			return &ValidationError{Name: "shipping_address", err: fmt.Errorf(`ent: validator failed for field "Order.shipping_address": %w`, err)}
		}
	}
	return nil
}

func (_u *OrderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrderNumber(); ok {
		_spec.SetField(order.FieldOrderNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(order.FieldPhoneNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShippingPhone(); ok {
		_spec.SetField(order.FieldShippingPhone, field.TypeString, value)
	}
	if _u.mutation.ShippingPhoneCleared() {
		_spec.ClearField(order.FieldShippingPhone, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(order.FieldCustomerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShippingAddress(); ok {
		_spec.SetField(order.FieldShippingAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(order.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(order.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(order.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrackingNumber(); ok {
		_spec.SetField(order.FieldTrackingNumber, field.TypeString, value)
	}
	if _u.mutation.TrackingNumberCleared() {
		_spec.ClearField(order.FieldTrackingNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Carrier(); ok {
		_spec.SetField(order.FieldCarrier, field.TypeString, value)
	}
	if _u.mutation.CarrierCleared() {
		_spec.ClearField(order.FieldCarrier, field.TypeString)
	}
	if value, ok := _u.mutation.ShippingStatus(); ok {
		_spec.SetField(order.FieldShippingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShippedAt(); ok {
		_spec.SetField(order.FieldShippedAt, field.TypeTime, value)
	}
	if _u.mutation.ShippedAtCleared() {
		_spec.ClearField(order.FieldShippedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderUpdateOne is the builder for updating a single Order entity.
type OrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderMutation
}

// SetOrderNumber sets the "order_number" field.
func (_u *OrderUpdateOne) SetOrderNumber(v string) *OrderUpdateOne {
	_u.mutation.SetOrderNumber(v)
	return _u
}

// SetNillableOrderNumber sets the "order_number" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableOrderNumber(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetOrderNumber(*v)
	}
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *OrderUpdateOne) SetPhoneNumber(v string) *OrderUpdateOne {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillablePhoneNumber(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// SetShippingPhone sets the "shipping_phone" field.
func (_u *OrderUpdateOne) SetShippingPhone(v string) *OrderUpdateOne {
	_u.mutation.SetShippingPhone(v)
	return _u
}

// SetNillableShippingPhone sets the "shipping_phone" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableShippingPhone(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetShippingPhone(*v)
	}
	return _u
}

// ClearShippingPhone clears the value of the "shipping_phone" field.
func (_u *OrderUpdateOne) ClearShippingPhone() *OrderUpdateOne {
	_u.mutation.ClearShippingPhone()
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *OrderUpdateOne) SetCustomerName(v string) *OrderUpdateOne {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCustomerName(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// SetShippingAddress sets the "shipping_address" field.
func (_u *OrderUpdateOne) SetShippingAddress(v string) *OrderUpdateOne {
	_u.mutation.SetShippingAddress(v)
	return _u
}

// SetNillableShippingAddress sets the "shipping_address" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableShippingAddress(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetShippingAddress(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *OrderUpdateOne) SetCity(v string) *OrderUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCity(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *OrderUpdateOne) ClearCity() *OrderUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *OrderUpdateOne) SetProcessingStatus(v string) *OrderUpdateOne {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableProcessingStatus(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetTrackingNumber sets the "tracking_number" field.
func (_u *OrderUpdateOne) SetTrackingNumber(v string) *OrderUpdateOne {
	_u.mutation.SetTrackingNumber(v)
	return _u
}

// SetNillableTrackingNumber sets the "tracking_number" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableTrackingNumber(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetTrackingNumber(*v)
	}
	return _u
}

// ClearTrackingNumber clears the value of the "tracking_number" field.
func (_u *OrderUpdateOne) ClearTrackingNumber() *OrderUpdateOne {
	_u.mutation.ClearTrackingNumber()
	return _u
}

// SetCarrier sets the "carrier" field.
func (_u *OrderUpdateOne) SetCarrier(v string) *OrderUpdateOne {
	_u.mutation.SetCarrier(v)
	return _u
}

// SetNillableCarrier sets the "carrier" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCarrier(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetCarrier(*v)
	}
	return _u
}

// ClearCarrier clears the value of the "carrier" field.
func (_u *OrderUpdateOne) ClearCarrier() *OrderUpdateOne {
	_u.mutation.ClearCarrier()
	return _u
}

// SetShippingStatus sets the "shipping_status" field.
func (_u *OrderUpdateOne) SetShippingStatus(v string) *OrderUpdateOne {
	_u.mutation.SetShippingStatus(v)
	return _u
}

// SetNillableShippingStatus sets the "shipping_status" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableShippingStatus(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetShippingStatus(*v)
	}
	return _u
}

// SetShippedAt sets the "shipped_at" field.
func (_u *OrderUpdateOne) SetShippedAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetShippedAt(v)
	return _u
}

// SetNillableShippedAt sets the "shipped_at" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableShippedAt(v *time.Time) *OrderUpdateOne {
	if v != nil {
		_u.SetShippedAt(*v)
	}
	return _u
}

// ClearShippedAt clears the value of the "shipped_at" field.
func (_u *OrderUpdateOne) ClearShippedAt() *OrderUpdateOne {
	_u.mutation.ClearShippedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrderUpdateOne) SetUpdatedAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdateOne) Mutation() *OrderMutation {
	return _u.mutation
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdateOne) Where(ps ...predicate.Order) *OrderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderUpdateOne) Select(field string, fields ...string) *OrderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Order entity.
func (_u *OrderUpdateOne) Save(ctx context.Context) (*Order, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdateOne) SaveX(ctx context.Context) *Order {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := order.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdateOne) check() error {
	if v, ok := _u.mutation.OrderNumber(); ok {
		if err := order.OrderNumberValidator(v); err != nil {
			return &ValidationError{Name: "order_number", err: fmt.Errorf(`ent: validator failed for field "Order.order_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhoneNumber(); ok {
		if err := order.PhoneNumberValidator(v); err != nil {
			return &ValidationError{Name: "phone_number", err: fmt.Errorf(`ent: validator failed for field "Order.phone_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CustomerName(); ok {
		if err := order.CustomerNameValidator(v); err != nil {
			return &ValidationError{Name: "customer_name", err: fmt.Errorf(`ent: validator failed for field "Order.customer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ShippingAddress(); ok {
		if err := order.ShippingAddressValidator(v); err != nil {
			return &ValidationError{Name: "shipping_address", err: fmt.Errorf(`ent: validator failed for field "Order.shipping_address": %w`, err)}
		}
	}
	return nil
}

func (_u *OrderUpdateOne) sqlSave(ctx context.Context) (_node *Order, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Order.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, order.FieldID)
		for _, f := range fields {
			if !order.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != order.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrderNumber(); ok {
		_spec.SetField(order.FieldOrderNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(order.FieldPhoneNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShippingPhone(); ok {
		_spec.SetField(order.FieldShippingPhone, field.TypeString, value)
	}
	if _u.mutation.ShippingPhoneCleared() {
		_spec.ClearField(order.FieldShippingPhone, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(order.FieldCustomerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShippingAddress(); ok {
		_spec.SetField(order.FieldShippingAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(order.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(order.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(order.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrackingNumber(); ok {
		_spec.SetField(order.FieldTrackingNumber, field.TypeString, value)
	}
	if _u.mutation.TrackingNumberCleared() {
		_spec.ClearField(order.FieldTrackingNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Carrier(); ok {
		_spec.SetField(order.FieldCarrier, field.TypeString, value)
	}
	if _u.mutation.CarrierCleared() {
		_spec.ClearField(order.FieldCarrier, field.TypeString)
	}
	if value, ok := _u.mutation.ShippingStatus(); ok {
		_spec.SetField(order.FieldShippingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShippedAt(); ok {
		_spec.SetField(order.FieldShippedAt, field.TypeTime, value)
	}
	if _u.mutation.ShippedAtCleared() {
		_spec.ClearField(order.FieldShippedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Order{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
