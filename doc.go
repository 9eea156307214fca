// Package persist maps entity metadata onto SQL statements.
//
// The metadata model lives in package schema (tables, columns, id columns
// and association tables) and package schema/field (column data types).
// Statements are rendered by package dialect/sql.
//
// This package holds the errors shared by those packages. Failures caused
// by an unusable id value match ErrInvalidIdentifier; failures caused by a
// descriptor that breaks the metadata invariants match ErrMalformedMetadata.
package persist
