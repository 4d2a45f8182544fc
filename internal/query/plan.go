package query

import (
	"net/url"
	"strconv"
	"strings"

	postgrest "github.com/supabase-community/postgrest-go"
)

// Filter is a single column predicate rendered as column=operator.value.
type Filter struct {
	Column   string
	Operator string
	Value    string
	Values   []string // used by "in"
}

// Order is a single ordering term.
type Order struct {
	Column    string
	Ascending bool
}

// Plan is an inspectable description of one backend request. Builders in this package
// produce plans; the store executes them through postgrest-go.
type Plan struct {
	Table   string
	Columns string
	Count   string // "exact" asks the backend for the total matching rows
	Head    bool   // count only, no rows

	// Filters are AND-ed. The owner filter is always first.
	Filters []Filter
	// And holds predicates that cannot be keyed by column because the column already
	// carries a filter. Or holds alternatives of which at least one must match.
	And []string
	Or  []string

	Order  *Order
	Offset int
	Limit  int // 0 means unbounded
}

// Logic returns the body of the or=(...) parameter, or "" when the plan has none.
func (p Plan) Logic() string {
	switch {
	case len(p.And) == 0 && len(p.Or) == 0:
		return ""
	case len(p.And) == 0:
		return strings.Join(p.Or, ",")
	}
	clauses := append([]string(nil), p.And...)
	if len(p.Or) > 0 {
		clauses = append(clauses, "or("+strings.Join(p.Or, ",")+")")
	}
	return "and(" + strings.Join(clauses, ",") + ")"
}

// Apply issues the plan as a select on qb.
func (p Plan) Apply(qb *postgrest.QueryBuilder) *postgrest.FilterBuilder {
	fb := qb.Select(p.Columns, p.Count, p.Head)
	fb = p.ApplyFilters(fb)
	if p.Order != nil {
		fb = fb.Order(p.Order.Column, &postgrest.OrderOpts{Ascending: p.Order.Ascending})
	}
	if p.Limit > 0 {
		fb = fb.Range(p.Offset, p.Offset+p.Limit-1, "")
	}
	return fb
}

// ApplyFilters adds the plan's predicates to an existing builder, e.g. an update or delete.
func (p Plan) ApplyFilters(fb *postgrest.FilterBuilder) *postgrest.FilterBuilder {
	for _, f := range p.Filters {
		switch f.Operator {
		case "eq":
			fb = fb.Eq(f.Column, f.Value)
		case "in":
			fb = fb.In(f.Column, f.Values)
		case "ilike":
			fb = fb.Ilike(f.Column, f.Value)
		case "gte":
			fb = fb.Gte(f.Column, f.Value)
		case "lte":
			fb = fb.Lte(f.Column, f.Value)
		}
	}
	if logic := p.Logic(); logic != "" {
		fb = fb.Or(logic, "")
	}
	return fb
}

// Values renders the plan as PostgREST query parameters.
func (p Plan) Values() url.Values {
	v := url.Values{}
	if p.Columns != "" {
		v.Set("select", p.Columns)
	}
	for _, f := range p.Filters {
		if f.Operator == "in" {
			v.Set(f.Column, "in.("+joinInValues(f.Values)+")")
			continue
		}
		v.Set(f.Column, f.Operator+"."+f.Value)
	}
	if logic := p.Logic(); logic != "" {
		v.Set("or", "("+logic+")")
	}
	if p.Order != nil {
		dir := "desc"
		if p.Order.Ascending {
			dir = "asc"
		}
		v.Set("order", p.Order.Column+"."+dir)
	}
	if p.Limit > 0 {
		v.Set("offset", strconv.Itoa(p.Offset))
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	return v
}

// String is the encoded form of Values, handy for logging.
func (p Plan) String() string {
	return p.Table + "?" + p.Values().Encode()
}

func (p *Plan) eq(column, value string) {
	p.Filters = append(p.Filters, Filter{Column: column, Operator: "eq", Value: value})
}

func (p *Plan) in(column string, values []string) {
	p.Filters = append(p.Filters, Filter{Column: column, Operator: "in", Values: values})
}

func (p *Plan) filter(column, operator, value string) {
	p.Filters = append(p.Filters, Filter{Column: column, Operator: operator, Value: value})
}

// joinInValues quotes values that would break the in.(...) list.
func joinInValues(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		if strings.ContainsAny(v, ",()") {
			quoted[i] = `"` + v + `"`
		} else {
			quoted[i] = v
		}
	}
	return strings.Join(quoted, ",")
}
