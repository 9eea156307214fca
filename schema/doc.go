// Package schema provides the metadata model describing how an entity is
// mapped onto tables.
//
// A Table holds the entity's table name, its columns in declaration order,
// exactly one id column and zero or more association tables. Each
// AssociationTable is joined to the owning table by a join column that
// references the owner's id:
//
//	orders := schema.Define("orders").
//	    ID("id", field.TypeInt64).
//	    Column("orderNumber", field.TypeString).
//	    Join(schema.NewAssociationTable("order_items", "order_id",
//	        schema.NewColumn("id", field.TypeInt64),
//	        schema.NewColumn("product", field.TypeString),
//	        schema.NewColumn("quantity", field.TypeInt),
//	    )).
//	    MustTable()
//
// Descriptors are immutable and validated when built. A descriptor that has
// no id column, duplicate column names or invalid identifiers is rejected
// with an error matching persist.ErrMalformedMetadata.
//
// How descriptors are obtained (struct tags, schema files, code) is up to
// the caller; anything implementing Entity can supply one.
package schema
