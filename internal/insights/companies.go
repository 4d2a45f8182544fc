// Package insights derives the company and analytics views from already-fetched records.
// Everything here is pure: callers pass the records and the current time.
package insights

import (
	"sort"
	"time"

	"jobtracker/api-gateway/models"
)

// FollowUpAfter is how long an Applied application may wait before a follow-up is due.
const FollowUpAfter = 7 * 24 * time.Hour

const playbookSize = 3

// Company rolls up every application sent to one organisation.
type Company struct {
	Name           string                     `json:"name"`
	Location       string                     `json:"location,omitempty"`
	PrimaryContact string                     `json:"primary_contact,omitempty"`
	PrimaryEmail   string                     `json:"primary_email,omitempty"`
	Roles          []string                   `json:"roles"`
	Statuses       []models.ApplicationStatus `json:"statuses"`
	LatestUpdate   time.Time                  `json:"latest_update"`
	FollowUpDue    bool                       `json:"follow_up_due"`
}

// Contact prefers the email over the contact name.
func (c Company) Contact() string {
	if c.PrimaryEmail != "" {
		return c.PrimaryEmail
	}
	return c.PrimaryContact
}

// Active reports whether any application at the company is still open.
func (c Company) Active() bool {
	for _, s := range c.Statuses {
		if !s.Closed() {
			return true
		}
	}
	return false
}

// PlaybookItem is a suggested follow-up.
type PlaybookItem struct {
	Company string `json:"company"`
	Contact string `json:"contact,omitempty"`
}

type CompanyOverview struct {
	Companies       []Company      `json:"companies"`
	ActiveProspects int            `json:"active_prospects"`
	WarmContacts    int            `json:"warm_contacts"`
	FollowUpsDue    int            `json:"follow_ups_due"`
	Playbook        []PlaybookItem `json:"playbook"`
}

// Companies groups apps by company name, most recently updated first.
func Companies(apps []models.JobApplication, now time.Time) []Company {
	index := map[string]int{}
	var out []Company
	for _, app := range apps {
		updated := app.UpdatedAt
		if updated.IsZero() {
			updated = now
		}

		i, ok := index[app.CompanyName]
		if !ok {
			i = len(out)
			index[app.CompanyName] = i
			out = append(out, Company{Name: app.CompanyName, LatestUpdate: updated})
		}
		c := &out[i]

		if c.Location == "" {
			c.Location = models.StringValue(app.Location)
		}
		if c.PrimaryContact == "" {
			c.PrimaryContact = models.StringValue(app.ContactPerson)
		}
		if c.PrimaryEmail == "" {
			c.PrimaryEmail = models.StringValue(app.ContactEmail)
		}
		c.Roles = appendUnique(c.Roles, app.PositionTitle)
		c.Statuses = appendUnique(c.Statuses, app.Status)
		if updated.After(c.LatestUpdate) {
			c.LatestUpdate = updated
		}
		if followUpDue(app, now) {
			c.FollowUpDue = true
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].LatestUpdate.After(out[b].LatestUpdate)
	})
	return out
}

// Overview summarises the company list.
func Overview(apps []models.JobApplication, now time.Time) CompanyOverview {
	companies := Companies(apps, now)
	o := CompanyOverview{Companies: companies, Playbook: []PlaybookItem{}}
	for _, c := range companies {
		if c.Active() {
			o.ActiveProspects++
		}
		if c.Contact() != "" {
			o.WarmContacts++
		}
		if c.FollowUpDue {
			o.FollowUpsDue++
			if len(o.Playbook) < playbookSize {
				o.Playbook = append(o.Playbook, PlaybookItem{Company: c.Name, Contact: c.Contact()})
			}
		}
	}
	return o
}

// followUpDue is true for an Applied application sent more than FollowUpAfter ago.
// An unparsable application date never triggers a follow-up.
func followUpDue(app models.JobApplication, now time.Time) bool {
	if app.Status != models.StatusApplied {
		return false
	}
	applied, err := time.Parse(models.DateLayout, app.ApplicationDate)
	if err != nil {
		return false
	}
	return now.Sub(applied) > FollowUpAfter
}

func appendUnique[T comparable](list []T, v T) []T {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
