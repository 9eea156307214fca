package schema

import (
	"slices"

	"github.com/syssam/persist"
)

// Entity is implemented by anything that can describe the persistent
// shape of a mapped entity.
type Entity interface {
	Table() (*Table, error)
}

// EntityFunc is an adapter to allow the use of ordinary functions as Entity.
type EntityFunc func() (*Table, error)

// Table calls f().
func (f EntityFunc) Table() (*Table, error) { return f() }

// Table describes a mapped entity: its table name, its columns in
// declaration order, its id column and the tables associated with it.
// A Table is immutable once created.
type Table struct {
	name         string
	columns      []Column
	id           IdColumn
	associations AssociationTables
}

// NewTable returns a validated table descriptor. The id column is expected
// among columns at its declared position; when it is missing there, it is
// placed first. The returned error matches persist.ErrMalformedMetadata
// when the descriptor is not well-formed.
func NewTable(name string, id IdColumn, columns []Column, associations ...AssociationTable) (*Table, error) {
	cols := slices.Clone(columns)
	if !id.IsZero() && !slices.ContainsFunc(cols, func(c Column) bool { return c.name == id.name }) {
		cols = append([]Column{id.Column}, cols...)
	}
	for i := range cols {
		cols[i].table = ""
	}
	t := &Table{
		name:         name,
		columns:      cols,
		id:           id,
		associations: NewAssociationTables(associations...),
	}
	if res := Validate(t); res.HasErrors() {
		return nil, res.Err()
	}
	return t, nil
}

// MustTable is like NewTable but panics on error.
func MustTable(name string, id IdColumn, columns []Column, associations ...AssociationTable) *Table {
	t, err := NewTable(name, id, columns, associations...)
	if err != nil {
		panic(err)
	}
	return t
}

// Table returns t itself, so a descriptor can be used wherever an Entity
// is expected.
func (t *Table) Table() (*Table, error) {
	if t == nil {
		return nil, persist.NewMetadataError("", "", "table descriptor is nil")
	}
	return t, nil
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Columns returns the table's own columns in declaration order, the id
// column included. Association columns are not part of the result.
func (t *Table) Columns() []Column { return slices.Clone(t.columns) }

// IdColumn returns the id column of the table.
func (t *Table) IdColumn() IdColumn { return t.id }

// HasIdColumn reports whether the table declares an id column.
func (t *Table) HasIdColumn() bool { return !t.id.IsZero() }

// ContainsAssociation reports whether the table has one or more
// association tables.
func (t *Table) ContainsAssociation() bool { return !t.associations.IsEmpty() }

// Associations returns the association table collection.
func (t *Table) Associations() AssociationTables { return t.associations }

// AssociationTables returns the association tables in declaration order.
func (t *Table) AssociationTables() []AssociationTable { return t.associations.Tables() }

// AssociationTablesColumns returns the columns of all association tables,
// in association order and then column order.
func (t *Table) AssociationTablesColumns() []Column { return t.associations.AllColumns() }
