package query

import (
	"reflect"
	"testing"
)

func TestBuilderEmpty(t *testing.T) {
	b := NewBuilder()
	if b.Where() != "" {
		t.Fatalf("expected empty where clause, got %q", b.Where())
	}
	if len(b.Args()) != 0 {
		t.Fatalf("expected no args, got %v", b.Args())
	}
}

func TestBuilderSkipsZeroValues(t *testing.T) {
	b := NewBuilder()
	b.Substring("name", "").EqualInt("quantity", nil).EqualBool("is_active", nil)

	if b.Where() != "" {
		t.Fatalf("zero-valued filters should be skipped, got %q", b.Where())
	}
}

func TestBuilderConjunction(t *testing.T) {
	active := true
	quantity := 5

	b := NewBuilder()
	b.Substring("u.user_name", "ali").
		EqualBool("u.is_active", &active).
		EqualInt("s.quantity", &quantity)

	want := " WHERE u.user_name ILIKE $1 AND u.is_active = $2 AND s.quantity = $3"
	if b.Where() != want {
		t.Fatalf("expected %q, got %q", want, b.Where())
	}

	wantArgs := []any{"%ali%", true, 5}
	if !reflect.DeepEqual(b.Args(), wantArgs) {
		t.Fatalf("expected args %v, got %v", wantArgs, b.Args())
	}
}

func TestBuilderPaginatePlaceholdersContinue(t *testing.T) {
	b := NewBuilder()
	b.Substring("name", "abc")

	p := Params{Page: 2, PageSize: 10}
	clause := b.Paginate(p)

	if clause != " LIMIT $2 OFFSET $3" {
		t.Fatalf("unexpected pagination clause: %q", clause)
	}
	wantArgs := []any{"%abc%", 10, 10}
	if !reflect.DeepEqual(b.Args(), wantArgs) {
		t.Fatalf("expected args %v, got %v", wantArgs, b.Args())
	}
}

func TestOrderClauseWhitelist(t *testing.T) {
	sortable := map[string]string{
		"name": "c.name",
		"role": "r.name",
	}

	cases := []struct {
		name string
		p    Params
		want string
	}{
		{"known column", Params{SortBy: "name", SortDirection: SortAsc}, " ORDER BY c.name ASC, c.id ASC"},
		{"relation alias desc", Params{SortBy: "role", SortDirection: SortDesc}, " ORDER BY r.name DESC, c.id ASC"},
		{"unknown column", Params{SortBy: "password", SortDirection: SortAsc}, " ORDER BY c.id ASC"},
		{"no sort", Params{SortDirection: SortAsc}, " ORDER BY c.id ASC"},
	}

	for _, tc := range cases {
		if got := OrderClause(tc.p, sortable, "c.id"); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
