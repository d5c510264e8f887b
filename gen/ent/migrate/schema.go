// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// OrdersColumns holds the columns for the "orders" table.
	OrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "order_number", Type: field.TypeString, Unique: true},
		{Name: "phone_number", Type: field.TypeString},
		{Name: "shipping_phone", Type: field.TypeString, Nullable: true},
		{Name: "customer_name", Type: field.TypeString},
		{Name: "shipping_address", Type: field.TypeString},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "processing_status", Type: field.TypeString, Default: "pending"},
		{Name: "tracking_number", Type: field.TypeString, Nullable: true},
		{Name: "carrier", Type: field.TypeString, Nullable: true},
		{Name: "shipping_status", Type: field.TypeString, Default: "pending"},
		{Name: "shipped_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OrdersTable holds the schema information for the "orders" table.
	OrdersTable = &schema.Table{
		Name:       "orders",
		Columns:    OrdersColumns,
		PrimaryKey: []*schema.Column{OrdersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "order_order_number",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[1]},
			},
			{
				Name:    "order_phone_number",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[2]},
			},
			{
				Name:    "order_processing_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[7], OrdersColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		OrdersTable,
	}
)

func init() {
	OrdersTable.Annotation = &entsql.Annotation{
		Table: "orders",
	}
}
