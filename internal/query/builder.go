package query

import (
	"fmt"
	"strings"
)

// Builder accumulates a conjunctive WHERE clause with positional
// PostgreSQL placeholders. Filters that receive a zero value are skipped,
// so an empty filter query matches everything.
type Builder struct {
	conds []string
	args  []any
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) placeholder(value any) string {
	b.args = append(b.args, value)
	return fmt.Sprintf("$%d", len(b.args))
}

// Substring adds a case-insensitive containment test on a text column.
// Works for direct columns and joined relation columns alike.
func (b *Builder) Substring(column, value string) *Builder {
	if value == "" {
		return b
	}
	ph := b.placeholder("%" + value + "%")
	b.conds = append(b.conds, column+" ILIKE "+ph)
	return b
}

// EqualInt adds an equality test on an integer column when the filter
// value is present.
func (b *Builder) EqualInt(column string, value *int) *Builder {
	if value == nil {
		return b
	}
	ph := b.placeholder(*value)
	b.conds = append(b.conds, column+" = "+ph)
	return b
}

// EqualBool adds an equality test on a boolean column when the filter
// value is present.
func (b *Builder) EqualBool(column string, value *bool) *Builder {
	if value == nil {
		return b
	}
	ph := b.placeholder(*value)
	b.conds = append(b.conds, column+" = "+ph)
	return b
}

// Where renders the accumulated predicate, with a leading space, or an
// empty string when no filter is active.
func (b *Builder) Where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// Args returns the accumulated placeholder values.
func (b *Builder) Args() []any {
	return b.args
}

// OrderClause resolves p.SortBy through the sortable whitelist, which maps
// exposed field names (including relation aliases like "role" or
// "category") to qualified column expressions. Unknown names fall back to
// the tiebreak column alone; the tiebreak is always appended so identical
// queries return rows in the same order.
func OrderClause(p Params, sortable map[string]string, tiebreak string) string {
	direction := "ASC"
	if p.SortDirection == SortDesc {
		direction = "DESC"
	}

	if column, ok := sortable[p.SortBy]; ok && p.SortBy != "" {
		return " ORDER BY " + column + " " + direction + ", " + tiebreak + " ASC"
	}
	return " ORDER BY " + tiebreak + " ASC"
}

// Paginate appends LIMIT/OFFSET placeholders for the requested page.
func (b *Builder) Paginate(p Params) string {
	limit := b.placeholder(p.PageSize)
	offset := b.placeholder(p.Offset())
	return " LIMIT " + limit + " OFFSET " + offset
}
