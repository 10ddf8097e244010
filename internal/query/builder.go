// Package query turns sparse per-entity filter options into parameterized
// SQL. Building is pure: a Build function never touches the database, always
// returns the same statement for the same options, and binds every
// user-supplied scalar as a positional argument instead of interpolating it.
package query

import (
	"fmt"
	"strconv"
	"strings"
)

// statement accumulates the pieces of a SELECT while keeping the bound
// arguments ordered. Predicates combine with AND; anything else (the OR fan
// out of a name search, the exclusive chain of tag filters) is the caller's
// business.
type statement struct {
	columns   []string
	from      string
	joins     []string
	where     []string
	args      []any
	paginated bool
	limit     int
	offset    int
}

func newStatement(table string, columns ...string) *statement {
	return &statement{from: table, columns: columns}
}

// arg binds a value and returns its placeholder ("$1", "$2", ...). Binding
// the same value twice yields two placeholders; callers that want to reuse
// one placeholder reuse the returned string instead.
func (s *statement) arg(v any) string {
	s.args = append(s.args, v)
	return "$" + strconv.Itoa(len(s.args))
}

// project appends extra output columns, used when a join drags a bridging
// column (e.g. join_phrase) into the result set.
func (s *statement) project(columns ...string) {
	s.columns = append(s.columns, columns...)
}

func (s *statement) leftJoin(table, on string) {
	s.joins = append(s.joins, fmt.Sprintf("LEFT JOIN %s ON %s", table, on))
}

func (s *statement) and(cond string) {
	s.where = append(s.where, cond)
}

// searchName adds the case-insensitive regex match over the three localized
// name sub-fields, OR-combined. A single bound parameter backs all three
// comparisons.
func (s *statement) searchName(table, term string) {
	p := s.arg(term)
	s.and(fmt.Sprintf(
		"(lower(%[1]s.name_native) ~ lower(%[2]s) OR lower(%[1]s.name_romanized) ~ lower(%[2]s) OR lower(%[1]s.name_english) ~ lower(%[2]s))",
		table, p))
}

// defaultPerPage bounds a paginated result set when per_page is absent.
const defaultPerPage = 50

// paginate applies LIMIT/OFFSET only when at least one of page/per_page is
// present; otherwise the result stays unbounded. Offsets count whole pages:
// page 0 (or absent) starts at row 0. Negative values would render invalid
// SQL, so they read as absent.
func (s *statement) paginate(page, perPage *int) {
	if page == nil && perPage == nil {
		return
	}
	pp := defaultPerPage
	if perPage != nil && *perPage >= 0 {
		pp = *perPage
	}
	p := 0
	if page != nil && *page >= 0 {
		p = *page
	}
	s.paginated = true
	s.limit = pp
	s.offset = p * pp
}

// SQL renders the accumulated statement.
func (s *statement) SQL() string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(s.columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(s.from)
	for _, j := range s.joins {
		b.WriteString(" ")
		b.WriteString(j)
	}
	if len(s.where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(s.where, " AND "))
	}
	if s.paginated {
		fmt.Fprintf(&b, " LIMIT %d OFFSET %d", s.limit, s.offset)
	}
	return b.String()
}
