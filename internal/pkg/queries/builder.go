package queries

import (
	"fmt"
	"strconv"
	"strings"
)

// Filter collects WHERE conditions. Each "?" in a condition becomes the
// next positional placeholder.
type Filter struct {
	conditions []string
	args       []interface{}
}

// NewFilter starts the placeholder count after the given number of
// already bound arguments.
func NewFilter(args ...interface{}) *Filter {
	return &Filter{args: args}
}

func (f *Filter) Add(condition string, args ...interface{}) {
	var builder strings.Builder
	next := len(f.args)
	for _, r := range condition {
		if r == '?' {
			next++
			builder.WriteString("$" + strconv.Itoa(next))
			continue
		}
		builder.WriteRune(r)
	}
	f.conditions = append(f.conditions, builder.String())
	f.args = append(f.args, args...)
}

// Where returns the conditions joined with AND, prefixed by the given
// keyword, or an empty string when there are none.
func (f *Filter) Where(keyword string) string {
	if len(f.conditions) == 0 {
		return ""
	}
	return " " + keyword + " " + strings.Join(f.conditions, " AND ")
}

func (f *Filter) Args() []interface{} {
	return f.args
}

// Page appends LIMIT and OFFSET placeholders and returns the clause
// together with the full argument list.
func (f *Filter) Page(limit, offset int) (string, []interface{}) {
	n := len(f.args)
	args := append(append([]interface{}{}, f.args...), limit, offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2), args
}

// OrderBy resolves sortBy through the allowed column map so user input
// never reaches the SQL text.
func OrderBy(columns map[string]string, sortBy, sortOrder, fallback string) string {
	column, ok := columns[sortBy]
	if !ok {
		column = columns[fallback]
	}
	direction := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		direction = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", column, direction)
}
