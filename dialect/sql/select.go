package sql

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/syssam/persist"
	"github.com/syssam/persist/schema"
)

// SelectBuilder renders SELECT statements fetching one entity by its id.
// It holds no per-call state; the zero value is ready to use and a single
// builder may be shared by concurrent callers.
type SelectBuilder struct {
	logger *slog.Logger
}

// SelectOption configures the SelectBuilder.
type SelectOption func(*SelectBuilder)

// WithLogger sets the logger receiving a debug record for every built
// statement. By default nothing is logged.
func WithLogger(l *slog.Logger) SelectOption {
	return func(b *SelectBuilder) {
		b.logger = l
	}
}

// NewSelectBuilder returns a SelectBuilder configured with the given options.
func NewSelectBuilder(opts ...SelectOption) SelectBuilder {
	var b SelectBuilder
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// BuildSelect builds the statement with the default SelectBuilder.
func BuildSelect(e schema.Entity, id any) (string, error) {
	return SelectBuilder{}.Build(e, id)
}

// Build returns the statement selecting the entity described by e whose
// id column equals id:
//
//	SELECT id, orderNumber, order_items.id, order_items.product FROM orders
//	LEFT JOIN order_items ON orders.id = order_items.order_id WHERE id = 1
//
// The statement is returned on a single line. The id value is inlined;
// it is quoted when the id column is textual.
func (b SelectBuilder) Build(e schema.Entity, id any) (string, error) {
	if e == nil {
		return "", persist.NewMetadataError("", "", "entity is nil")
	}
	t, err := e.Table()
	if err != nil {
		return "", fmt.Errorf("sql: resolving table: %w", err)
	}
	if t == nil {
		return "", persist.NewMetadataError("", "", "table descriptor is nil")
	}
	if !t.HasIdColumn() {
		return "", persist.NewMetadataError(t.Name(), "", "table has no id column")
	}

	idColumn := t.IdColumn()
	value, err := renderLiteral(idColumn.Type(), id)
	if err != nil {
		if errors.Is(err, errAbsent) {
			// Typed nil pointers and NULL valuers are reported as absent.
			id = nil
		}
		return "", persist.NewIdentifierError(t.Name(), idColumn.Name(), id, err)
	}

	q := selectQuery{
		projection: columnRefs(t.Columns()),
		table:      t.Name(),
		where:      predicate{column: idColumn.Name(), value: value},
	}
	if t.ContainsAssociation() {
		q.projection = append(q.projection, columnRefs(t.AssociationTablesColumns())...)
		for _, a := range t.AssociationTables() {
			q.joins = append(q.joins, leftJoin{
				table: a.Name(),
				left:  t.Name() + "." + idColumn.Name(),
				right: a.Name() + "." + a.JoinColumn(),
			})
		}
	}

	query := q.String()
	if b.logger != nil {
		b.logger.Debug("select query built", "table", t.Name(), "joins", len(q.joins), "query", query)
	}
	return query, nil
}

func columnRefs(columns []schema.Column) []string {
	refs := make([]string, len(columns))
	for i, c := range columns {
		refs[i] = c.Ref()
	}
	return refs
}

// selectQuery is a rendered-fragment view of a SELECT statement.
type selectQuery struct {
	projection []string
	table      string
	joins      []leftJoin
	where      predicate
}

type leftJoin struct {
	table       string
	left, right string
}

type predicate struct {
	column, value string
}

// String renders the statement. The projection groups are joined with the
// same delimiter as the columns inside each group.
func (q selectQuery) String() string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(q.projection, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(q.table)
	for _, j := range q.joins {
		sb.WriteString(" LEFT JOIN ")
		sb.WriteString(j.table)
		sb.WriteString(" ON ")
		sb.WriteString(j.left)
		sb.WriteString(" = ")
		sb.WriteString(j.right)
	}
	sb.WriteString(" WHERE ")
	sb.WriteString(q.where.column)
	sb.WriteString(" = ")
	sb.WriteString(q.where.value)
	return sb.String()
}
