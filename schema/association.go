package schema

import "slices"

// AssociationTable describes a table joined to its owner by a foreign key
// that references the owner's id column.
type AssociationTable struct {
	name       string
	joinColumn string
	columns    []Column
}

// NewAssociationTable returns an association table. The given columns are
// qualified with the association's table name.
//
//	schema.NewAssociationTable("order_items", "order_id",
//		schema.NewColumn("id", field.TypeInt64),
//		schema.NewColumn("product", field.TypeString),
//	)
func NewAssociationTable(name, joinColumn string, columns ...Column) AssociationTable {
	qualified := make([]Column, len(columns))
	for i, c := range columns {
		qualified[i] = c.qualify(name)
	}
	return AssociationTable{name: name, joinColumn: joinColumn, columns: qualified}
}

// Name returns the name of the joined table.
func (a AssociationTable) Name() string { return a.name }

// JoinColumn returns the foreign key column of the joined table.
func (a AssociationTable) JoinColumn() string { return a.joinColumn }

// Columns returns the columns of the joined table in declaration order.
func (a AssociationTable) Columns() []Column { return slices.Clone(a.columns) }

// AssociationTables holds the association tables of an entity.
type AssociationTables struct {
	tables []AssociationTable
}

// NewAssociationTables returns a collection holding the given tables.
func NewAssociationTables(tables ...AssociationTable) AssociationTables {
	return AssociationTables{tables: slices.Clone(tables)}
}

// IsEmpty reports whether the collection holds no tables.
func (a AssociationTables) IsEmpty() bool { return len(a.tables) == 0 }

// Len returns the number of tables.
func (a AssociationTables) Len() int { return len(a.tables) }

// Tables returns the association tables in declaration order.
func (a AssociationTables) Tables() []AssociationTable { return slices.Clone(a.tables) }

// AllColumns returns the columns of every table, in table order and then
// column order within each table.
func (a AssociationTables) AllColumns() []Column {
	var n int
	for _, t := range a.tables {
		n += len(t.columns)
	}
	columns := make([]Column, 0, n)
	for _, t := range a.tables {
		columns = append(columns, t.columns...)
	}
	return columns
}
