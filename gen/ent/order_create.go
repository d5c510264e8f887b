// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dfrestrepo/guia-notify/gen/ent/order"
	"github.com/google/uuid"
)

// OrderCreate is the builder for creating a Order entity.
type OrderCreate struct {
	config
	mutation *OrderMutation
	hooks    []Hook
}

// SetOrderNumber sets the "order_number" field.
func (_c *OrderCreate) SetOrderNumber(v string) *OrderCreate {
	_c.mutation.SetOrderNumber(v)
	return _c
}

// SetPhoneNumber sets the "phone_number" field.
func (_c *OrderCreate) SetPhoneNumber(v string) *OrderCreate {
	_c.mutation.SetPhoneNumber(v)
	return _c
}

// SetShippingPhone sets the "shipping_phone" field.
func (_c *OrderCreate) SetShippingPhone(v string) *OrderCreate {
	_c.mutation.SetShippingPhone(v)
	return _c
}

// SetNillableShippingPhone sets the "shipping_phone" field if the given value is not nil.
func (_c *OrderCreate) SetNillableShippingPhone(v *string) *OrderCreate {
	if v != nil {
		_c.SetShippingPhone(*v)
	}
	return _c
}

// SetCustomerName sets the "customer_name" field.
func (_c *OrderCreate) SetCustomerName(v string) *OrderCreate {
	_c.mutation.SetCustomerName(v)
	return _c
}

// SetShippingAddress sets the "shipping_address" field.
func (_c *OrderCreate) SetShippingAddress(v string) *OrderCreate {
	_c.mutation.SetShippingAddress(v)
	return _c
}

// SetCity sets the "city" field.
func (_c *OrderCreate) SetCity(v string) *OrderCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCity(v *string) *OrderCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetProcessingStatus sets the "processing_status" field.
func (_c *OrderCreate) SetProcessingStatus(v string) *OrderCreate {
	_c.mutation.SetProcessingStatus(v)
	return _c
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_c *OrderCreate) SetNillableProcessingStatus(v *string) *OrderCreate {
	if v != nil {
		_c.SetProcessingStatus(*v)
	}
	return _c
}

// SetTrackingNumber sets the "tracking_number" field.
func (_c *OrderCreate) SetTrackingNumber(v string) *OrderCreate {
	_c.mutation.SetTrackingNumber(v)
	return _c
}

// SetNillableTrackingNumber sets the "tracking_number" field if the given value is not nil.
func (_c *OrderCreate) SetNillableTrackingNumber(v *string) *OrderCreate {
	if v != nil {
		_c.SetTrackingNumber(*v)
	}
	return _c
}

// SetCarrier sets the "carrier" field.
func (_c *OrderCreate) SetCarrier(v string) *OrderCreate {
	_c.mutation.SetCarrier(v)
	return _c
}

// SetNillableCarrier sets the "carrier" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCarrier(v *string) *OrderCreate {
	if v != nil {
		_c.SetCarrier(*v)
	}
	return _c
}

// SetShippingStatus sets the "shipping_status" field.
func (_c *OrderCreate) SetShippingStatus(v string) *OrderCreate {
	_c.mutation.SetShippingStatus(v)
	return _c
}

// SetNillableShippingStatus sets the "shipping_status" field if the given value is not nil.
func (_c *OrderCreate) SetNillableShippingStatus(v *string) *OrderCreate {
	if v != nil {
		_c.SetShippingStatus(*v)
	}
	return _c
}

// SetShippedAt sets the "shipped_at" field.
func (_c *OrderCreate) SetShippedAt(v time.Time) *OrderCreate {
	_c.mutation.SetShippedAt(v)
	return _c
}

// SetNillableShippedAt sets the "shipped_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableShippedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetShippedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrderCreate) SetCreatedAt(v time.Time) *OrderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCreatedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OrderCreate) SetUpdatedAt(v time.Time) *OrderCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableUpdatedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrderCreate) SetID(v uuid.UUID) *OrderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OrderCreate) SetNillableID(v *uuid.UUID) *OrderCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the OrderMutation object of the builder.
func (_c *OrderCreate) Mutation() *OrderMutation {
	return _c.mutation
}

// Save creates the Order in the database.
func (_c *OrderCreate) Save(ctx context.Context) (*Order, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderCreate) SaveX(ctx context.Context) *Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrderCreate) defaults() {
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		v := order.DefaultProcessingStatus
		_c.mutation.SetProcessingStatus(v)
	}
	if _, ok := _c.mutation.ShippingStatus(); !ok {
		v := order.DefaultShippingStatus
		_c.mutation.SetShippingStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := order.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := order.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := order.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderCreate) check() error {
	if _, ok := _c.mutation.OrderNumber(); !ok {
		return &ValidationError{Name: "order_number", err: errors.New(`ent: missing required field "Order.order_number"`)}
	}
	if v, ok := _c.mutation.OrderNumber(); ok {
		if err := order.OrderNumberValidator(v); err != nil {
			return &ValidationError{Name: "order_number", err: fmt.Errorf(`ent: validator failed for field "Order.order_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PhoneNumber(); !ok {
		return &ValidationError{Name: "phone_number", err: errors.New(`ent: missing required field "Order.phone_number"`)}
	}
	if v, ok := _c.mutation.PhoneNumber(); ok {
		if err := order.PhoneNumberValidator(v); err != nil {
			return &ValidationError{Name: "phone_number", err: fmt.Errorf(`ent: validator failed for field "Order.phone_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CustomerName(); !ok {
		return &ValidationError{Name: "customer_name", err: errors.New(`ent: missing required field "Order.customer_name"`)}
	}
	if v, ok := _c.mutation.CustomerName(); ok {
		if err := order.CustomerNameValidator(v); err != nil {
			return &ValidationError{Name: "customer_name", err: fmt.Errorf(`ent: validator failed for field "Order.customer_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ShippingAddress(); !ok {
		return &ValidationError{Name: "shipping_address", err: errors.New(`ent: missing required field "Order.shipping_address"`)}
	}
	if v, ok := _c.mutation.ShippingAddress(); ok {
		if err := order.ShippingAddressValidator(v); err != nil {
			return &ValidationError{Name: "shipping_address", err: fmt.Errorf(`ent: validator failed for field "Order.shipping_address": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		return &ValidationError{Name: "processing_status", err: errors.New(`ent: missing required field "Order.processing_status"`)}
	}
	if _, ok := _c.mutation.ShippingStatus(); !ok {
		return &ValidationError{Name: "shipping_status", err: errors.New(`ent: missing required field "Order.shipping_status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Order.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Order.updated_at"`)}
	}
	return nil
}

func (_c *OrderCreate) sqlSave(ctx context.Context) (*Order, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrderCreate) createSpec() (*Order, *sqlgraph.CreateSpec) {
	var (
		_node = &Order{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(order.Table, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OrderNumber(); ok {
		_spec.SetField(order.FieldOrderNumber, field.TypeString, value)
		_node.OrderNumber = value
	}
	if value, ok := _c.mutation.PhoneNumber(); ok {
		_spec.SetField(order.FieldPhoneNumber, field.TypeString, value)
		_node.PhoneNumber = value
	}
	if value, ok := _c.mutation.ShippingPhone(); ok {
		_spec.SetField(order.FieldShippingPhone, field.TypeString, value)
		_node.ShippingPhone = &value
	}
	if value, ok := _c.mutation.CustomerName(); ok {
		_spec.SetField(order.FieldCustomerName, field.TypeString, value)
		_node.CustomerName = value
	}
	if value, ok := _c.mutation.ShippingAddress(); ok {
		_spec.SetField(order.FieldShippingAddress, field.TypeString, value)
		_node.ShippingAddress = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(order.FieldCity, field.TypeString, value)
		_node.City = &value
	}
	if value, ok := _c.mutation.ProcessingStatus(); ok {
		_spec.SetField(order.FieldProcessingStatus, field.TypeString, value)
		_node.ProcessingStatus = value
	}
	if value, ok := _c.mutation.TrackingNumber(); ok {
		_spec.SetField(order.FieldTrackingNumber, field.TypeString, value)
		_node.TrackingNumber = &value
	}
	if value, ok := _c.mutation.Carrier(); ok {
		_spec.SetField(order.FieldCarrier, field.TypeString, value)
		_node.Carrier = &value
	}
	if value, ok := _c.mutation.ShippingStatus(); ok {
		_spec.SetField(order.FieldShippingStatus, field.TypeString, value)
		_node.ShippingStatus = value
	}
	if value, ok := _c.mutation.ShippedAt(); ok {
		_spec.SetField(order.FieldShippedAt, field.TypeTime, value)
		_node.ShippedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OrderCreateBulk is the builder for creating many Order entities in bulk.
type OrderCreateBulk struct {
	config
	err      error
	builders []*OrderCreate
}

// Save creates the Order entities in the database.
func (_c *OrderCreateBulk) Save(ctx context.Context) ([]*Order, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Order, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OrderCreateBulk) SaveX(ctx context.Context) []*Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
