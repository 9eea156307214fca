package schema

import (
	"github.com/go-openapi/inflect"

	"github.com/syssam/persist"
	"github.com/syssam/persist/schema/field"
)

// TableName returns the default table name of an entity: its name in
// snake_case, pluralized.
//
//	schema.TableName("OrderItem") // "order_items"
func TableName(entity string) string {
	return inflect.Pluralize(inflect.Underscore(entity))
}

// TableBuilder is a fluent builder for Table descriptors.
//
//	orders, err := schema.Define("orders").
//		ID("id", field.TypeInt64).
//		Column("orderNumber", field.TypeString).
//		Join(schema.NewAssociationTable("order_items", "order_id",
//			schema.NewColumn("id", field.TypeInt64),
//			schema.NewColumn("product", field.TypeString),
//		)).
//		Table()
type TableBuilder struct {
	name         string
	id           IdColumn
	columns      []Column
	associations []AssociationTable
	errs         []error
}

// Define returns a builder for the table with the given name.
func Define(name string) *TableBuilder {
	return &TableBuilder{name: name}
}

// DefineEntity returns a builder for the table of the given entity,
// named by TableName.
func DefineEntity(entity string) *TableBuilder {
	return Define(TableName(entity))
}

// ID declares the id column at the current column position.
func (b *TableBuilder) ID(name string, typ field.Type) *TableBuilder {
	if !b.id.IsZero() {
		b.errs = append(b.errs, persist.NewMetadataError(b.name, name, "id column already declared as "+b.id.name))
		return b
	}
	b.id = NewIdColumn(name, typ)
	b.columns = append(b.columns, b.id.Column)
	return b
}

// Column appends a column.
func (b *TableBuilder) Column(name string, typ field.Type) *TableBuilder {
	b.columns = append(b.columns, NewColumn(name, typ))
	return b
}

// Join appends an association table.
func (b *TableBuilder) Join(a AssociationTable) *TableBuilder {
	b.associations = append(b.associations, a)
	return b
}

// Table validates and returns the described table.
func (b *TableBuilder) Table() (*Table, error) {
	if len(b.errs) > 0 {
		return nil, persist.NewAggregateError(b.errs...)
	}
	return NewTable(b.name, b.id, b.columns, b.associations...)
}

// MustTable is like Table but panics on error.
func (b *TableBuilder) MustTable() *Table {
	t, err := b.Table()
	if err != nil {
		panic(err)
	}
	return t
}
