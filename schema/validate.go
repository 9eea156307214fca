package schema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/syssam/persist"
)

// identifierRe allows alphanumeric + underscores, starting with a letter or underscore.
var identifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// maxIdentifierLen is the maximum length allowed for a table or column name.
const maxIdentifierLen = 128

// ValidationResult holds the results of descriptor validation.
type ValidationResult struct {
	Errors   []*persist.MetadataError
	Warnings []*persist.MetadataError
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Err returns the validation errors as a single error, or nil.
func (r *ValidationResult) Err() error {
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return persist.NewAggregateError(errs...)
}

// String returns a human-readable summary of the validation result.
func (r *ValidationResult) String() string {
	var sb strings.Builder
	if len(r.Errors) > 0 {
		sb.WriteString("Errors:\n")
		for _, e := range r.Errors {
			sb.WriteString("  - ")
			sb.WriteString(e.Error())
			sb.WriteString("\n")
		}
	}
	if len(r.Warnings) > 0 {
		sb.WriteString("Warnings:\n")
		for _, w := range r.Warnings {
			sb.WriteString("  - ")
			sb.WriteString(w.Error())
			sb.WriteString("\n")
		}
	}
	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}
	return sb.String()
}

func (r *ValidationResult) errorf(table, column, format string, args ...any) {
	r.Errors = append(r.Errors, persist.NewMetadataError(table, column, fmt.Sprintf(format, args...)))
}

func (r *ValidationResult) warnf(table, column, format string, args ...any) {
	r.Warnings = append(r.Warnings, persist.NewMetadataError(table, column, fmt.Sprintf(format, args...)))
}

func checkIdentifier(name string) string {
	switch {
	case name == "":
		return "name is empty"
	case len(name) > maxIdentifierLen:
		return fmt.Sprintf("name must be at most %d characters", maxIdentifierLen)
	case !identifierRe.MatchString(name):
		return fmt.Sprintf("name %q must match [a-zA-Z_][a-zA-Z0-9_]*", name)
	}
	return ""
}

// Validate validates a single table descriptor.
func Validate(t *Table) *ValidationResult {
	result := &ValidationResult{}
	if t == nil {
		result.errorf("", "", "table descriptor is nil")
		return result
	}

	if msg := checkIdentifier(t.name); msg != "" {
		result.errorf(t.name, "", "table %s", msg)
	}

	// Check for the id column
	if t.id.IsZero() {
		result.errorf(t.name, "", "table has no id column")
	} else if !t.id.typ.Valid() {
		result.errorf(t.name, t.id.name, "id column has invalid type")
	}

	// Check own columns
	colNames := make(map[string]Column, len(t.columns))
	for _, c := range t.columns {
		if msg := checkIdentifier(c.name); msg != "" {
			result.errorf(t.name, c.name, "column %s", msg)
			continue
		}
		if _, ok := colNames[c.name]; ok {
			result.errorf(t.name, c.name, "duplicate column name")
			continue
		}
		if !c.typ.Valid() {
			result.errorf(t.name, c.name, "column has invalid type")
		}
		colNames[c.name] = c
	}
	if !t.id.IsZero() {
		c, ok := colNames[t.id.name]
		switch {
		case !ok:
			result.errorf(t.name, t.id.name, "id column is not declared among the table columns")
		case c.typ != t.id.typ:
			result.errorf(t.name, t.id.name, "id column type %s does not match column type %s", t.id.typ, c.typ)
		}
		if len(t.columns) == 1 && ok {
			result.warnf(t.name, "", "table has no columns besides the id column")
		}
	}

	validateAssociations(t, result)
	return result
}

func validateAssociations(t *Table, result *ValidationResult) {
	names := make(map[string]bool, t.associations.Len())
	for _, a := range t.associations.tables {
		if msg := checkIdentifier(a.name); msg != "" {
			result.errorf(t.name, "", "association table %s", msg)
			continue
		}
		if names[a.name] {
			result.errorf(t.name, "", "duplicate association table %q", a.name)
			continue
		}
		names[a.name] = true
		if a.name == t.name {
			result.warnf(t.name, "", "association table %q joins the table to itself", a.name)
		}
		if msg := checkIdentifier(a.joinColumn); msg != "" {
			result.errorf(a.name, "", "join column %s", msg)
		}
		if len(a.columns) == 0 {
			result.warnf(a.name, "", "association table has no columns")
		}
		seen := make(map[string]bool, len(a.columns))
		for _, c := range a.columns {
			if msg := checkIdentifier(c.name); msg != "" {
				result.errorf(a.name, c.name, "column %s", msg)
				continue
			}
			if seen[c.name] {
				result.errorf(a.name, c.name, "duplicate column name")
				continue
			}
			seen[c.name] = true
			if !c.typ.Valid() {
				result.errorf(a.name, c.name, "column has invalid type")
			}
		}
	}
}

// ValidateTables validates all given table descriptors.
func ValidateTables(tables []*Table) *ValidationResult {
	result := &ValidationResult{}

	tableNames := make(map[string]bool)
	for _, t := range tables {
		if t != nil {
			// Check for duplicate table names
			if tableNames[t.name] {
				result.errorf(t.name, "", "duplicate table name")
			}
			tableNames[t.name] = true
		}

		tableResult := Validate(t)
		result.Errors = append(result.Errors, tableResult.Errors...)
		result.Warnings = append(result.Warnings, tableResult.Warnings...)
	}
	return result
}
