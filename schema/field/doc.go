// Package field defines the column data types understood by the metadata
// model.
//
// A column's Type decides how a literal value for that column is written
// into generated SQL:
//
//	field.TypeString.Textual()  // true:  id = '42'
//	field.TypeInt64.Textual()   // false: id = 42
//
// Types can also be parsed from their names or from common SQL spellings:
//
//	t, err := field.ParseType("varchar(255)") // field.TypeString
package field
