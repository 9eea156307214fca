package sql_test

import (
	"context"
	dbsql "database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/syssam/persist/dialect/sql"
	"github.com/syssam/persist/schema"
	"github.com/syssam/persist/schema/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *dbsql.DB {
	t.Helper()
	db, err := dbsql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// Every connection to :memory: opens a new database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	for _, stmt := range []string{
		`CREATE TABLE orders (id INTEGER PRIMARY KEY, orderNumber TEXT NOT NULL)`,
		`CREATE TABLE order_items (item_id INTEGER PRIMARY KEY, product TEXT, quantity INTEGER, order_id INTEGER REFERENCES orders(id))`,
		`CREATE TABLE customers (code TEXT PRIMARY KEY, name TEXT)`,
		`INSERT INTO orders (id, orderNumber) VALUES (1, 'A-1'), (2, 'A-2')`,
		`INSERT INTO order_items (item_id, product, quantity, order_id) VALUES (10, 'pen', 3, 1), (11, 'ink', 1, 1)`,
		`INSERT INTO customers (code, name) VALUES ('c-1', 'Ada'), ('c-2', 'Grace')`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	return db
}

// countRows runs query and returns the number of rows and columns it yields.
func countRows(t *testing.T, db *dbsql.DB, query string) (rows, columns int) {
	t.Helper()
	rs, err := db.QueryContext(context.Background(), query)
	require.NoError(t, err, query)
	defer rs.Close()
	cols, err := rs.Columns()
	require.NoError(t, err)
	for rs.Next() {
		rows++
	}
	require.NoError(t, rs.Err())
	return rows, len(cols)
}

// TestBuildSelectRunsOnSQLite executes built statements to check they are
// valid SQL and select what they describe.
func TestBuildSelectRunsOnSQLite(t *testing.T) {
	t.Parallel()

	db := openSQLite(t)
	orders := schema.Define("orders").
		ID("id", field.TypeInt64).
		Column("orderNumber", field.TypeString).
		Join(schema.NewAssociationTable("order_items", "order_id",
			schema.NewColumn("item_id", field.TypeInt64),
			schema.NewColumn("product", field.TypeString),
			schema.NewColumn("quantity", field.TypeInt),
		)).
		MustTable()
	customers := schema.Define("customers").
		ID("code", field.TypeString).
		Column("name", field.TypeString).
		MustTable()

	t.Run("order_with_items", func(t *testing.T) {
		query, err := sql.BuildSelect(orders, 1)
		require.NoError(t, err)
		rows, cols := countRows(t, db, query)
		assert.Equal(t, 2, rows)
		assert.Equal(t, 5, cols)
	})

	t.Run("order_without_items", func(t *testing.T) {
		query, err := sql.BuildSelect(orders, 2)
		require.NoError(t, err)
		rows, _ := countRows(t, db, query)
		assert.Equal(t, 1, rows, "LEFT JOIN keeps the order row")
	})

	t.Run("unknown_order", func(t *testing.T) {
		query, err := sql.BuildSelect(orders, 3)
		require.NoError(t, err)
		rows, _ := countRows(t, db, query)
		assert.Zero(t, rows)
	})

	t.Run("textual_id", func(t *testing.T) {
		query, err := sql.BuildSelect(customers, "c-2")
		require.NoError(t, err)

		var code, name string
		require.NoError(t, db.QueryRow(query).Scan(&code, &name))
		assert.Equal(t, "c-2", code)
		assert.Equal(t, "Grace", name)
	})
}
