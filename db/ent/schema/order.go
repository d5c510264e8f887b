package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/dfrestrepo/guia-notify/constants"
)

type Order struct{ ent.Schema }

func (Order) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "orders"},
	}
}

func (Order) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("order_number").NotEmpty().Unique(),
		field.String("phone_number").NotEmpty(),
		field.String("shipping_phone").Optional().Nillable(),
		field.String("customer_name").NotEmpty(),
		field.String("shipping_address").NotEmpty(),
		field.String("city").Optional().Nillable(),
		field.String("processing_status").
			Default(string(constants.StatusPending)),
		field.String("tracking_number").Optional().Nillable(),
		field.String("carrier").Optional().Nillable(),
		field.String("shipping_status").
			Default(string(constants.ShippingPending)),
		field.Time("shipped_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Order) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_number"),
		index.Fields("phone_number"),
		index.Fields("processing_status", "created_at"),
	}
}
