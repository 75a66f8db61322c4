// Package query implements the shared filter/sort/paginate layer used by
// every list endpoint. Repositories assemble a conjunctive predicate with
// Builder, count matches before paginating, and wrap the page in a
// PagedResult.
package query

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Params is the pagination and sorting portion of every filter query.
// SortBy is matched against a per-entity column whitelist; unknown names
// are ignored rather than rejected.
type Params struct {
	Page          int           `query:"page" validate:"omitempty,gte=1"`
	PageSize      int           `query:"page_size" validate:"omitempty,gte=1,lte=100"`
	SortBy        string        `query:"sort_by" validate:"omitempty,max=50"`
	SortDirection SortDirection `query:"sort_direction" validate:"omitempty,oneof=asc desc"`
}

// Normalize fills in the defaults for fields the client omitted.
func (p *Params) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.SortDirection == "" {
		p.SortDirection = SortAsc
	}
}

// Offset returns the row offset of the requested page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}
