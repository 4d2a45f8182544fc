package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"jobtracker/api-gateway/client"
	"jobtracker/api-gateway/internal/filters"
	"jobtracker/api-gateway/internal/query"
	"jobtracker/api-gateway/models"
)

// filterFlags registers the filter set shared by list-style commands.
type filterFlags struct {
	statuses   []string
	priorities []string
	types      []string
	company    string
	search     string
	from       string
	to         string
}

func (ff *filterFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringSliceVar(&ff.statuses, "status", nil, "only these statuses")
	flags.StringSliceVar(&ff.priorities, "priority", nil, "only these priorities")
	flags.StringSliceVar(&ff.types, "employment-type", nil, "only these employment types")
	flags.StringVar(&ff.company, "company", "", "company name contains")
	flags.StringVar(&ff.search, "search", "", "search company, position, location and notes")
	flags.StringVar(&ff.from, "from", "", "applied on or after (YYYY-MM-DD)")
	flags.StringVar(&ff.to, "to", "", "applied on or before (YYYY-MM-DD)")
}

func (ff *filterFlags) filters() (filters.Filters, error) {
	var (
		f   filters.Filters
		err error
	)
	if f.Status, err = parseEnums(ff.statuses, models.ApplicationStatus.Valid, "status"); err != nil {
		return f, err
	}
	if f.Priority, err = parseEnums(ff.priorities, models.Priority.Valid, "priority"); err != nil {
		return f, err
	}
	if f.EmploymentType, err = parseEnums(ff.types, models.EmploymentType.Valid, "employment type"); err != nil {
		return f, err
	}
	if err := checkDate(ff.from); err != nil {
		return f, err
	}
	if err := checkDate(ff.to); err != nil {
		return f, err
	}
	f.CompanyName = strings.TrimSpace(ff.company)
	f.Search = strings.TrimSpace(ff.search)
	f.DateFrom = ff.from
	f.DateTo = ff.to
	return f, nil
}

func (a *cli) listCmd() *cobra.Command {
	var (
		ff        filterFlags
		page      int
		limit     int
		sortField string
		asc       bool
		all       bool
		showQuery bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := ff.filters()
			if err != nil {
				return err
			}
			params := query.ListParams{Page: page, Limit: limit, Filters: f, Sort: query.DefaultSort}
			if sortField != "" {
				if !query.Sortable(sortField) {
					return fmt.Errorf("cannot sort by %q", sortField)
				}
				params.Sort.Field = sortField
			}
			if asc {
				params.Sort.Direction = query.Asc
			}
			if showQuery {
				fmt.Fprintln(a.out, params.Values().Encode())
				return nil
			}

			active := filters.Count(f, filters.CountOptions{IncludeSearch: true})
			if all {
				if !cmd.Flags().Changed("limit") {
					params.Limit = query.MaxLimit
				}
				apps, err := a.client.AllApplications(cmd.Context(), params)
				if err != nil {
					return err
				}
				return a.render(apps, func(w *tabwriter.Writer) {
					applicationTable(w, apps, active)
					fmt.Fprintf(w, "%d %s\n", len(apps), pluralize(len(apps), "application"))
				})
			}

			p, err := a.client.ListApplications(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.render(p, func(w *tabwriter.Writer) {
				applicationTable(w, p.Data, active)
				fmt.Fprintf(w, "page %d of %d, %d %s\n", p.Page, p.TotalPages, p.Count, pluralize(p.Count, "application"))
			})
		},
	}
	ff.register(cmd)
	flags := cmd.Flags()
	flags.IntVar(&page, "page", query.DefaultPage, "page number")
	flags.IntVar(&limit, "limit", query.DefaultLimit, "page size")
	flags.StringVar(&sortField, "sort", "", "sort column (default created_at)")
	flags.BoolVar(&asc, "asc", false, "sort ascending")
	flags.BoolVar(&all, "all", false, "fetch every page")
	flags.BoolVar(&showQuery, "query", false, "print the shareable query string and exit")
	return cmd
}

func applicationTable(w *tabwriter.Writer, apps []models.JobApplication, activeFilters int) {
	if activeFilters > 0 {
		fmt.Fprintf(w, "%d active %s\n", activeFilters, pluralize(activeFilters, "filter"))
	}
	row(w, "ID", "COMPANY", "POSITION", "STATUS", "PRIORITY", "APPLIED")
	for _, app := range apps {
		row(w, app.ID, app.CompanyName, app.PositionTitle, app.Status.Presentation().Label, app.Priority, app.ApplicationDate)
	}
}

func (a *cli) showCmd() *cobra.Command {
	var activityLimit int
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one application with its recent activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := a.client.GetApplication(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			activity, err := a.client.ApplicationActivity(cmd.Context(), args[0], activityLimit)
			if err != nil {
				return err
			}
			out := struct {
				Application *models.JobApplication    `json:"application"`
				Activity    []models.ActivityLogEntry `json:"activity"`
			}{app, activity}
			return a.render(out, func(w *tabwriter.Writer) {
				row(w, "Company", app.CompanyName)
				row(w, "Position", app.PositionTitle)
				row(w, "Status", app.Status.Presentation().Label)
				row(w, "Priority", app.Priority)
				row(w, "Type", app.EmploymentType)
				row(w, "Applied", app.ApplicationDate)
				row(w, "Location", dash(models.StringValue(app.Location)))
				row(w, "Salary", dash(models.StringValue(app.SalaryRange)))
				row(w, "Contact", dash(models.StringValue(app.ContactPerson)))
				row(w, "Email", dash(models.StringValue(app.ContactEmail)))
				row(w, "URL", dash(models.StringValue(app.JobURL)))
				row(w, "Notes", dash(models.StringValue(app.Notes)))
				if len(activity) > 0 {
					fmt.Fprintln(w)
					activityTable(w, activity)
				}
			})
		},
	}
	cmd.Flags().IntVar(&activityLimit, "activity", 10, "number of activity entries")
	return cmd
}

func (a *cli) addCmd() *cobra.Command {
	var (
		in                               client.ApplicationInput
		status, priority, employmentType string
		jobURL, location, salary         string
		notes, contact, email            string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if status != "" && !models.ApplicationStatus(status).Valid() {
				return fmt.Errorf("unknown status %q", status)
			}
			if priority != "" && !models.Priority(priority).Valid() {
				return fmt.Errorf("unknown priority %q", priority)
			}
			if employmentType != "" && !models.EmploymentType(employmentType).Valid() {
				return fmt.Errorf("unknown employment type %q", employmentType)
			}
			if err := checkDate(in.ApplicationDate); err != nil {
				return err
			}
			in.Status = models.ApplicationStatus(status)
			in.Priority = models.Priority(priority)
			in.EmploymentType = models.EmploymentType(employmentType)
			in.JobURL = optional(cmd, "url", jobURL)
			in.Location = optional(cmd, "location", location)
			in.SalaryRange = optional(cmd, "salary", salary)
			in.Notes = optional(cmd, "notes", notes)
			in.ContactPerson = optional(cmd, "contact", contact)
			in.ContactEmail = optional(cmd, "email", email)

			app, err := a.client.CreateApplication(cmd.Context(), in)
			if err != nil {
				return err
			}
			return a.render(app, func(w *tabwriter.Writer) {
				row(w, "Created", app.ID, app.CompanyName, app.PositionTitle, app.Status)
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&in.CompanyName, "company", "", "company name")
	flags.StringVar(&in.PositionTitle, "position", "", "position title")
	flags.StringVar(&in.ApplicationDate, "date", "", "application date (YYYY-MM-DD, default today)")
	flags.StringVar(&status, "status", "", "status (default Applied)")
	flags.StringVar(&priority, "priority", "", "priority (default Medium)")
	flags.StringVar(&employmentType, "employment-type", "", "employment type (default Full-time)")
	flags.StringVar(&jobURL, "url", "", "job posting URL")
	flags.StringVar(&location, "location", "", "location")
	flags.StringVar(&salary, "salary", "", "salary range")
	flags.StringVar(&notes, "notes", "", "notes")
	flags.StringVar(&contact, "contact", "", "contact person")
	flags.StringVar(&email, "email", "", "contact email")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("position")
	return cmd
}

func (a *cli) setStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <status> <id>...",
		Short: "Move one or more applications to a status",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := models.ApplicationStatus(args[0])
			if !status.Valid() {
				return fmt.Errorf("unknown status %q", args[0])
			}
			patch := map[string]interface{}{"status": status}
			ids := args[1:]

			var updated []models.JobApplication
			if len(ids) == 1 {
				app, err := a.client.UpdateApplication(cmd.Context(), ids[0], patch)
				if err != nil {
					return err
				}
				updated = []models.JobApplication{*app}
			} else {
				apps, err := a.client.BulkUpdate(cmd.Context(), ids, patch)
				if err != nil {
					return err
				}
				updated = apps
			}
			return a.render(updated, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "%d %s moved to %s\n", len(updated), pluralize(len(updated), "application"), status)
			})
		},
	}
}

func (a *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete applications and their interviews",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deleted := 1
			if len(args) == 1 {
				if err := a.client.DeleteApplication(cmd.Context(), args[0]); err != nil {
					return err
				}
			} else {
				n, err := a.client.BulkDelete(cmd.Context(), args)
				if err != nil {
					return err
				}
				deleted = n
			}
			out := map[string]int{"deleted": deleted}
			return a.render(out, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "%d %s deleted\n", deleted, pluralize(deleted, "application"))
			})
		},
	}
}

// parseEnums accepts values case-sensitively, as the API does.
func parseEnums[T ~string](raw []string, valid func(T) bool, what string) ([]T, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		v := T(strings.TrimSpace(r))
		if !valid(v) {
			return nil, fmt.Errorf("unknown %s %q", what, r)
		}
		out = append(out, v)
	}
	return out, nil
}

func checkDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(models.DateLayout, s); err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return nil
}

// optional returns nil unless the flag was given.
func optional(cmd *cobra.Command, flag, value string) *string {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &value
}

func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
