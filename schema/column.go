package schema

import "github.com/syssam/persist/schema/field"

// Column describes a single mapped column.
type Column struct {
	name  string
	typ   field.Type
	table string // owning association table, empty for the entity's own columns
}

// NewColumn returns a column with the given name and type.
func NewColumn(name string, typ field.Type) Column {
	return Column{name: name, typ: typ}
}

// Name returns the column name.
func (c Column) Name() string { return c.name }

// Type returns the column data type.
func (c Column) Type() field.Type { return c.typ }

// Table returns the name of the association table owning the column,
// or an empty string for a column of the entity's own table.
func (c Column) Table() string { return c.table }

// Ref returns the column reference as written in a projection list.
// Association columns are qualified with their table name.
func (c Column) Ref() string {
	if c.table == "" {
		return c.name
	}
	return c.table + "." + c.name
}

func (c Column) qualify(table string) Column {
	c.table = table
	return c
}

// IdColumn is the column identifying a row of its table. It is used both
// in the projection and in the WHERE predicate.
type IdColumn struct {
	Column
}

// NewIdColumn returns an id column with the given name and type.
func NewIdColumn(name string, typ field.Type) IdColumn {
	return IdColumn{Column: NewColumn(name, typ)}
}

// IsZero reports whether the id column is unset.
func (c IdColumn) IsZero() bool { return c.name == "" }
