// Package filters maps a job application filter set to and from URL query parameters.
//
// The same encoding is used for API requests and for shareable view URLs, so
// Decode(Encode(v, f)) must give back f for any filter set whose values carry no commas.
// Commas inside scalar values are not escaped.
package filters

import (
	"net/url"
	"strings"

	"jobtracker/api-gateway/models"
)

// Query parameter keys owned by the codec.
const (
	KeyStatus         = "status"
	KeyPriority       = "priority"
	KeyEmploymentType = "employment_type"
	KeyCompanyName    = "company_name"
	KeySearch         = "search"
	KeyDateFrom       = "date_from"
	KeyDateTo         = "date_to"
)

var ownedKeys = []string{
	KeyStatus, KeyPriority, KeyEmploymentType, KeyCompanyName, KeySearch, KeyDateFrom, KeyDateTo,
}

// Filters is the structured form of "which applications to include".
// A nil slice or empty string means the field is not set.
type Filters struct {
	Status         []models.ApplicationStatus `json:"status,omitempty"`
	Priority       []models.Priority          `json:"priority,omitempty"`
	EmploymentType []models.EmploymentType    `json:"employment_type,omitempty"`
	CompanyName    string                     `json:"company_name,omitempty"`
	Search         string                     `json:"search,omitempty"`
	DateFrom       string                     `json:"date_from,omitempty"`
	DateTo         string                     `json:"date_to,omitempty"`
}

// IsZero reports whether no field is set.
func (f Filters) IsZero() bool {
	return len(f.Status) == 0 && len(f.Priority) == 0 && len(f.EmploymentType) == 0 &&
		f.CompanyName == "" && f.Search == "" && f.DateFrom == "" && f.DateTo == ""
}

// DateWindow returns the application_date bounds of the filter set.
func (f Filters) DateWindow() DateWindow {
	return DateWindow{From: f.DateFrom, To: f.DateTo}
}

// DateWindow bounds application_date inclusively. Empty bounds are open.
type DateWindow struct {
	From string
	To   string
}

// Encode returns a copy of base with every filter key replaced by the fields set in f.
// Keys the codec does not own are left as they are.
func Encode(base url.Values, f Filters) url.Values {
	params := url.Values{}
	for k, vs := range base {
		params[k] = append([]string(nil), vs...)
	}
	for _, k := range ownedKeys {
		params.Del(k)
	}

	setList(params, KeyStatus, f.Status)
	setList(params, KeyPriority, f.Priority)
	setList(params, KeyEmploymentType, f.EmploymentType)
	setScalar(params, KeyCompanyName, f.CompanyName)
	setScalar(params, KeySearch, f.Search)
	setScalar(params, KeyDateFrom, f.DateFrom)
	setScalar(params, KeyDateTo, f.DateTo)
	return params
}

// Decode reads a filter set from query parameters.
func Decode(params url.Values) Filters {
	return Filters{
		Status:         splitList[models.ApplicationStatus](params.Get(KeyStatus)),
		Priority:       splitList[models.Priority](params.Get(KeyPriority)),
		EmploymentType: splitList[models.EmploymentType](params.Get(KeyEmploymentType)),
		CompanyName:    params.Get(KeyCompanyName),
		Search:         params.Get(KeySearch),
		DateFrom:       params.Get(KeyDateFrom),
		DateTo:         params.Get(KeyDateTo),
	}
}

// CountOptions tunes Count.
type CountOptions struct {
	// IncludeSearch counts a non-empty search as one active filter.
	IncludeSearch bool
}

// Count returns the number of active filters shown on a badge. Each selected enum value
// counts on its own.
func Count(f Filters, opts CountOptions) int {
	total := len(f.Status) + len(f.Priority) + len(f.EmploymentType)
	if f.CompanyName != "" {
		total++
	}
	if f.DateFrom != "" {
		total++
	}
	if f.DateTo != "" {
		total++
	}
	if opts.IncludeSearch && f.Search != "" {
		total++
	}
	return total
}

func setList[T ~string](params url.Values, key string, values []T) {
	if len(values) == 0 {
		return
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	params.Set(key, strings.Join(parts, ","))
}

func setScalar(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func splitList[T ~string](raw string) []T {
	if raw == "" {
		return nil
	}
	var out []T
	for _, part := range strings.Split(raw, ",") {
		if part != "" {
			out = append(out, T(part))
		}
	}
	return out
}
