package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"jobtracker/api-gateway/client"
	"jobtracker/api-gateway/internal/filters"
	"jobtracker/api-gateway/internal/insights"
	"jobtracker/api-gateway/internal/query"
	"jobtracker/api-gateway/models"
)

const (
	timeLayout     = "2006-01-02 15:04"
	recapActivity  = 200
	displayTimeFmt = "Mon 02 Jan 15:04"
)

func (a *cli) interviewsCmd() *cobra.Command {
	var params query.InterviewParams
	cmd := &cobra.Command{
		Use:   "interviews",
		Short: "List interviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			interviews, err := a.client.ListInterviews(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.render(interviews, func(w *tabwriter.Writer) {
				row(w, "WHEN", "TYPE", "COMPANY", "POSITION", "STATUS", "MINUTES")
				for _, iv := range interviews {
					company, position := "-", "-"
					if iv.JobApplication != nil {
						company, position = iv.JobApplication.CompanyName, iv.JobApplication.PositionTitle
					}
					row(w, iv.ScheduledDate.Local().Format(displayTimeFmt), iv.InterviewType.Presentation().Label,
						company, position, iv.Status, iv.DurationMinutes)
				}
			})
		},
	}
	cmd.Flags().StringVar(&params.JobApplicationID, "application", "", "only interviews of this application")
	cmd.Flags().BoolVar(&params.UpcomingOnly, "upcoming", false, "only scheduled interviews from now on")
	return cmd
}

func (a *cli) scheduleCmd() *cobra.Command {
	var (
		in                        client.InterviewInput
		kind, at                  string
		interviewer, email, notes string
	)
	cmd := &cobra.Command{
		Use:   "schedule <application-id>",
		Short: "Schedule an interview for an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseTime(at)
			if err != nil {
				return err
			}
			in.JobApplicationID = args[0]
			in.InterviewType = models.InterviewType(kind)
			in.ScheduledDate = when
			in.InterviewerName = optional(cmd, "interviewer", interviewer)
			in.InterviewerEmail = optional(cmd, "interviewer-email", email)
			in.Notes = optional(cmd, "notes", notes)

			iv, err := a.client.CreateInterview(cmd.Context(), in)
			if err != nil {
				return err
			}
			return a.render(iv, func(w *tabwriter.Writer) {
				row(w, "Scheduled", iv.InterviewType.Presentation().Label, iv.ScheduledDate.Local().Format(displayTimeFmt), iv.ID)
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&kind, "type", string(models.InterviewPhone), "Phone, Video, In-person, Technical or Final")
	flags.StringVar(&at, "at", "", "start time, RFC 3339 or YYYY-MM-DD HH:MM local time")
	flags.IntVar(&in.DurationMinutes, "duration", 60, "length in minutes")
	flags.StringVar(&interviewer, "interviewer", "", "interviewer name")
	flags.StringVar(&email, "interviewer-email", "", "interviewer email")
	flags.StringVar(&notes, "notes", "", "notes")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}

func (a *cli) activityCmd() *cobra.Command {
	var (
		limit       int
		application string
	)
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the activity log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				entries []models.ActivityLogEntry
				err     error
			)
			if application != "" {
				entries, err = a.client.ApplicationActivity(cmd.Context(), application, limit)
			} else {
				entries, err = a.client.ActivityLog(cmd.Context(), limit)
			}
			if err != nil {
				return err
			}
			return a.render(entries, func(w *tabwriter.Writer) {
				activityTable(w, entries)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", query.DefaultActivityLimit, "number of entries")
	cmd.Flags().StringVar(&application, "application", "", "only entries of this application")
	return cmd
}

func activityTable(w *tabwriter.Writer, entries []models.ActivityLogEntry) {
	row(w, "WHEN", "EVENT", "COMPANY", "DESCRIPTION")
	for _, e := range entries {
		company, _ := e.Subject()
		row(w, e.CreatedAt.Local().Format(displayTimeFmt), e.ActionType.Presentation().Label, dash(company), e.Description)
	}
}

func (a *cli) statsCmd() *cobra.Command {
	var window filters.DateWindow
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkDate(window.From); err != nil {
				return err
			}
			if err := checkDate(window.To); err != nil {
				return err
			}
			stats, err := a.client.DashboardStats(cmd.Context(), window)
			if err != nil {
				return err
			}
			return a.render(stats, func(w *tabwriter.Writer) {
				row(w, "Total", stats.TotalApplications)
				row(w, models.StatusApplied.Presentation().Label, stats.Applied)
				row(w, models.StatusInterview.Presentation().Label, stats.Interviews)
				row(w, models.StatusOffer.Presentation().Label, stats.Offers)
				row(w, models.StatusAccepted.Presentation().Label, stats.Accepted)
				row(w, models.StatusRejected.Presentation().Label, stats.Rejected)
				row(w, models.StatusWithdrawn.Presentation().Label, stats.Withdrawn)
				row(w, "Upcoming interviews", stats.UpcomingInterviews)
				row(w, "Response rate", fmt.Sprintf("%.2f%%", stats.ResponseRate))
			})
		},
	}
	cmd.Flags().StringVar(&window.From, "from", "", "applied on or after (YYYY-MM-DD)")
	cmd.Flags().StringVar(&window.To, "to", "", "applied on or before (YYYY-MM-DD)")
	return cmd
}

func (a *cli) companiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "companies",
		Short: "Group applications by company and suggest follow-ups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			apps, err := a.client.AllApplications(cmd.Context(), query.ListParams{Sort: query.DefaultSort})
			if err != nil {
				return err
			}
			overview := insights.Overview(apps, a.now())
			return a.render(overview, func(w *tabwriter.Writer) {
				row(w, "COMPANY", "ROLES", "STATUSES", "CONTACT", "UPDATED", "FOLLOW UP")
				for _, c := range overview.Companies {
					statuses := make([]string, len(c.Statuses))
					for i, s := range c.Statuses {
						statuses[i] = s.Presentation().Label
					}
					followUp := ""
					if c.FollowUpDue {
						followUp = "due"
					}
					row(w, c.Name, strings.Join(c.Roles, ", "), strings.Join(statuses, ", "),
						dash(c.Contact()), c.LatestUpdate.Local().Format(models.DateLayout), dash(followUp))
				}
				fmt.Fprintf(w, "\n%d active, %d warm contacts, %d follow-ups due\n",
					overview.ActiveProspects, overview.WarmContacts, overview.FollowUpsDue)
				for _, item := range overview.Playbook {
					fmt.Fprintf(w, "follow up with %s (%s)\n", item.Company, dash(item.Contact))
				}
			})
		},
	}
}

func (a *cli) analyticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show conversion rates, the funnel and the weekly recap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				stats    *models.DashboardStats
				apps     []models.JobApplication
				upcoming []models.Interview
				activity []models.ActivityLogEntry
			)
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() (err error) {
				stats, err = a.client.DashboardStats(ctx, filters.DateWindow{})
				return err
			})
			g.Go(func() (err error) {
				apps, err = a.client.AllApplications(ctx, query.ListParams{Sort: query.DefaultSort})
				return err
			})
			g.Go(func() (err error) {
				upcoming, err = a.client.ListInterviews(ctx, query.InterviewParams{UpcomingOnly: true})
				return err
			})
			g.Go(func() (err error) {
				activity, err = a.client.ActivityLog(ctx, recapActivity)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			report := insights.Analyze(*stats, apps, upcoming, activity, a.now())
			return a.render(report, func(w *tabwriter.Writer) {
				row(w, "Response rate", fmt.Sprintf("%.2f%%", report.ResponseRate))
				row(w, "Interview conversion", fmt.Sprintf("%d%%", report.InterviewConversion))
				row(w, "Offer rate", fmt.Sprintf("%d%%", report.OfferRate))
				row(w, "Active pipeline", report.ActivePipeline)
				row(w, "Awaiting response", report.AwaitingResponse)
				row(w, "Stale follow-ups", report.StaleFollowUps)
				fmt.Fprintln(w)
				for _, s := range report.Funnel {
					row(w, s.Stage.Presentation().Label, s.Value, fmt.Sprintf("%d%%", s.Percent))
				}
				fmt.Fprintln(w)
				for _, line := range append(report.Momentum, report.WeeklyRecap...) {
					fmt.Fprintln(w, line)
				}
			})
		},
	}
}

// parseTime accepts RFC 3339 or a local "YYYY-MM-DD HH:MM".
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(timeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, want RFC 3339 or %q", s, timeLayout)
	}
	return t, nil
}
