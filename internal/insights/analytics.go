package insights

import (
	"fmt"
	"math"
	"time"

	"jobtracker/api-gateway/models"
)

// FunnelStage is one step of the Applied → Interview → Offer → Accepted funnel.
// Percent is relative to the first stage.
type FunnelStage struct {
	Stage   models.ApplicationStatus `json:"stage"`
	Value   int                      `json:"value"`
	Percent int                      `json:"percent"`
}

type Analytics struct {
	ResponseRate        float64       `json:"response_rate"`
	InterviewConversion int           `json:"interview_conversion"`
	OfferRate           int           `json:"offer_rate"`
	ActivePipeline      int           `json:"active_pipeline"`
	AwaitingResponse    int           `json:"awaiting_response"`
	StaleFollowUps      int           `json:"stale_follow_ups"`
	UpcomingInterviews  int           `json:"upcoming_interviews"`
	Funnel              []FunnelStage `json:"funnel"`
	Momentum            []string      `json:"momentum"`
	WeeklyRecap         []string      `json:"weekly_recap"`
}

// Analyze combines the dashboard stats with the fetched applications, upcoming
// interviews and activity.
func Analyze(stats models.DashboardStats, apps []models.JobApplication, upcoming []models.Interview, activity []models.ActivityLogEntry, now time.Time) Analytics {
	a := Analytics{
		ResponseRate:        stats.ResponseRate,
		InterviewConversion: percent(stats.Interviews, stats.Applied),
		OfferRate:           percent(stats.Offers, stats.TotalApplications),
		UpcomingInterviews:  len(upcoming),
	}
	for _, app := range apps {
		if !app.Status.Closed() {
			a.ActivePipeline++
		}
		if app.Status == models.StatusApplied {
			a.AwaitingResponse++
		}
		if followUpDue(app, now) {
			a.StaleFollowUps++
		}
	}

	a.Funnel = funnel(stats)
	a.Momentum = momentum(stats, a)
	a.WeeklyRecap = weeklyRecap(activity, now)
	return a
}

func funnel(stats models.DashboardStats) []FunnelStage {
	stages := []FunnelStage{
		{Stage: models.StatusApplied, Value: stats.Applied},
		{Stage: models.StatusInterview, Value: stats.Interviews},
		{Stage: models.StatusOffer, Value: stats.Offers},
		{Stage: models.StatusAccepted, Value: stats.Accepted},
	}
	baseline := stages[0].Value
	if baseline == 0 {
		baseline = 1
	}
	for i := range stages {
		if i == 0 {
			stages[i].Percent = 100
			continue
		}
		stages[i].Percent = int(math.Round(float64(stages[i].Value) / float64(baseline) * 100))
	}
	return stages
}

func momentum(stats models.DashboardStats, a Analytics) []string {
	lines := []string{
		fmt.Sprintf("Response rate is %s%% with %d interviews on the calendar.", formatRate(stats.ResponseRate), stats.Interviews),
		fmt.Sprintf("%d upcoming %s scheduled; prioritise prep for the nearest date.", a.UpcomingInterviews, plural(a.UpcomingInterviews, "interview")),
	}
	if a.AwaitingResponse > 0 {
		n := a.StaleFollowUps
		lines = append(lines, fmt.Sprintf("%d %s %s been waiting more than a week. Time for a follow-up.",
			n, plural(n, "application"), hasHave(n)))
	} else {
		lines = append(lines, "All pending applications have received recent follow-ups.")
	}
	return lines
}

// weeklyRecap counts the activity of the last seven days.
func weeklyRecap(activity []models.ActivityLogEntry, now time.Time) []string {
	since := now.Add(-FollowUpAfter)
	counts := map[models.ActivityType]int{}
	for _, e := range activity {
		if !e.CreatedAt.Before(since) {
			counts[e.ActionType]++
		}
	}
	return []string{
		fmt.Sprintf("Applications added in the last 7 days: %d.", counts[models.ActivityApplicationCreated]),
		fmt.Sprintf("Interviews scheduled this week: %d.", counts[models.ActivityInterviewScheduled]),
		fmt.Sprintf("Status updates logged: %d.", counts[models.ActivityStatusChange]),
	}
}

// percent is round(part/whole*100), 0 when whole is 0.
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

func formatRate(rate float64) string {
	return fmt.Sprintf("%g", rate)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func hasHave(n int) string {
	if n == 1 {
		return "has"
	}
	return "have"
}
