// Package stats computes the dashboard summary.
package stats

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"jobtracker/api-gateway/internal/filters"
	"jobtracker/api-gateway/models"
)

// Source is the subset of the store the dashboard reads from.
type Source interface {
	CountApplications(ctx context.Context, ownerID string, w filters.DateWindow) (int, error)
	ApplicationStatuses(ctx context.Context, ownerID string, w filters.DateWindow) ([]models.ApplicationStatus, error)
	CountUpcomingInterviews(ctx context.Context, ownerID string, now time.Time) (int, error)
}

// Dashboard runs the three reads concurrently. The first failure cancels the rest.
// Upcoming interviews ignore the date window.
func Dashboard(ctx context.Context, src Source, ownerID string, w filters.DateWindow, now time.Time) (models.DashboardStats, error) {
	var (
		total    int
		statuses []models.ApplicationStatus
		upcoming int
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = src.CountApplications(ctx, ownerID, w)
		return err
	})
	g.Go(func() (err error) {
		statuses, err = src.ApplicationStatuses(ctx, ownerID, w)
		return err
	})
	g.Go(func() (err error) {
		upcoming, err = src.CountUpcomingInterviews(ctx, ownerID, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, err
	}
	return Compute(total, statuses, upcoming), nil
}

// Compute tallies statuses. The response rate counts applications that heard back
// (Interview, Offer or Rejected) as a percentage of total, to two decimals.
func Compute(total int, statuses []models.ApplicationStatus, upcoming int) models.DashboardStats {
	s := models.DashboardStats{TotalApplications: total, UpcomingInterviews: upcoming}
	for _, st := range statuses {
		switch st {
		case models.StatusApplied:
			s.Applied++
		case models.StatusInterview:
			s.Interviews++
		case models.StatusOffer:
			s.Offers++
		case models.StatusAccepted:
			s.Accepted++
		case models.StatusRejected:
			s.Rejected++
		case models.StatusWithdrawn:
			s.Withdrawn++
		}
	}
	if total > 0 {
		responded := s.Interviews + s.Offers + s.Rejected
		s.ResponseRate = round2(float64(responded) / float64(total) * 100)
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
