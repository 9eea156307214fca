// Package sql renders SQL statements from schema descriptors.
//
// The SelectBuilder produces a SELECT fetching a single entity by its id,
// joining every association table of the entity with a LEFT JOIN:
//
//	orders := schema.Define("orders").
//	    ID("id", field.TypeInt64).
//	    Column("orderNumber", field.TypeString).
//	    Join(schema.NewAssociationTable("order_items", "order_id",
//	        schema.NewColumn("id", field.TypeInt64),
//	        schema.NewColumn("product", field.TypeString),
//	    )).
//	    MustTable()
//
//	query, err := sql.BuildSelect(orders, 1)
//	// SELECT id, orderNumber, order_items.id, order_items.product FROM orders
//	//   LEFT JOIN order_items ON orders.id = order_items.order_id WHERE id = 1
//
// # Literals
//
// The id value is inlined into the statement. Values of textual columns
// (string, text, uuid, enum) are wrapped in single quotes; other values are
// written in their default string form:
//
//	WHERE code = 'A-42'   // field.TypeString
//	WHERE id = 42         // field.TypeInt64
//
// Absent values (nil, nil pointers, NULL driver.Valuer values) and values
// that do not fit the column type are rejected with an error matching
// persist.ErrInvalidIdentifier. Integer columns reject fractional values. Quotes inside string values are not
// escaped; the statements are not meant for untrusted input.
//
// # Logging
//
// Builders created with WithLogger emit a debug record per statement:
//
//	b := sql.NewSelectBuilder(sql.WithLogger(slog.Default()))
package sql
