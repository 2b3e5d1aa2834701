package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/goodservices/internal/logger"
	"github.com/sbilibin2017/goodservices/internal/models"
)

//go:generate mockgen -source=stats.go -destination=mock_stats.go -package=services

const monthLayout = "2006-01"

// StatsReader groups rows by calendar month over a half-open time range.
type StatsReader interface {
	PublishedByMonth(ctx context.Context, from, to time.Time, filter models.StatsFilter) ([]models.MonthCount, error)
	CompletedByMonth(ctx context.Context, from, to time.Time, filter models.StatsFilter) ([]models.MonthCount, error)
}

// StatsQuery selects an inclusive month range, optional filters and a table page.
type StatsQuery struct {
	StartMonth string // YYYY-MM
	EndMonth   string // YYYY-MM
	Filter     models.StatsFilter
	Page       int
	Size       int
}

// StatsService computes monthly published/completed reports.
type StatsService struct {
	reader StatsReader
}

func NewStatsService(reader StatsReader) *StatsService {
	return &StatsService{reader: reader}
}

// monthRange resolves [first day of start, first day after end) in UTC.
// The exclusive bound is the first day of the month following end, so the
// whole last month is covered.
func monthRange(startMonth, endMonth string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(monthLayout, startMonth, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, validationError("start_month", "must be in YYYY-MM format")
	}
	end, err := time.ParseInLocation(monthLayout, endMonth, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, validationError("end_month", "must be in YYYY-MM format")
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, validationError("start_month", "must not be after end_month")
	}
	return start, end.AddDate(0, 1, 0), nil
}

// monthsBetween lists every month in [from, to) as YYYY-MM, oldest first.
func monthsBetween(from, to time.Time) []string {
	var months []string
	for m := from; m.Before(to); m = m.AddDate(0, 1, 0) {
		months = append(months, m.Format(monthLayout))
	}
	return months
}

func countsByMonth(rows []models.MonthCount) map[string]int {
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Month] += row.Count
	}
	return out
}

// Monthly builds the zero-filled chart and the paginated table for an admin.
func (svc *StatsService) Monthly(ctx context.Context, actor models.Actor, q StatsQuery) (*models.MonthlyReport, error) {
	log := logger.FromContext(ctx)

	if !actor.IsAdmin() {
		log.Warnw("stats requested by non-admin", "actor", actor.UserID)
		return nil, ErrAdminOnly
	}
	if err := checkPage(q.Page, q.Size); err != nil {
		return nil, err
	}
	from, to, err := monthRange(q.StartMonth, q.EndMonth)
	if err != nil {
		return nil, err
	}

	published, err := svc.reader.PublishedByMonth(ctx, from, to, q.Filter)
	if err != nil {
		log.Errorw("failed to count published requests", "err", err)
		return nil, err
	}
	completed, err := svc.reader.CompletedByMonth(ctx, from, to, q.Filter)
	if err != nil {
		log.Errorw("failed to count completed services", "err", err)
		return nil, err
	}

	publishedByMonth := countsByMonth(published)
	completedByMonth := countsByMonth(completed)

	months := monthsBetween(from, to)
	chart := models.MonthlyChart{
		Months:    months,
		Published: make([]int, len(months)),
		Completed: make([]int, len(months)),
	}
	rows := make([]models.MonthlyStat, len(months))
	for i, m := range months {
		chart.Published[i] = publishedByMonth[m]
		chart.Completed[i] = completedByMonth[m]
		rows[i] = models.MonthlyStat{
			Month:          m,
			PublishedCount: chart.Published[i],
			CompletedCount: chart.Completed[i],
		}
	}

	offset := models.Offset(q.Page, q.Size)
	var pageRows []models.MonthlyStat
	if offset >= 0 && offset < len(rows) {
		end := min(offset+q.Size, len(rows))
		pageRows = rows[offset:end]
	}

	return &models.MonthlyReport{
		Chart: chart,
		Table: models.NewPage(pageRows, len(rows), q.Page, q.Size),
	}, nil
}
