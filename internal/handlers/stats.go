package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/goodservices/internal/models"
	"github.com/sbilibin2017/goodservices/internal/services"
)

//go:generate mockgen -source=stats.go -destination=mock_stats.go -package=handlers

// MonthlyStatsGetter computes the monthly report.
type MonthlyStatsGetter interface {
	Monthly(ctx context.Context, actor models.Actor, q services.StatsQuery) (*models.MonthlyReport, error)
}

// ChartData represents the report as parallel series
// swagger:model ChartData
type ChartData struct {
	Months    []string `json:"months"`
	Published []int    `json:"published"`
	Completed []int    `json:"completed"`
}

// MonthlyStatItem represents one month of the table
// swagger:model MonthlyStatItem
type MonthlyStatItem struct {
	Month          string `json:"month"`
	PublishedCount int    `json:"publishedCount"`
	CompletedCount int    `json:"completedCount"`
}

// MonthlyStatsResponse represents the monthly report
// swagger:model MonthlyStatsResponse
type MonthlyStatsResponse struct {
	ChartData  ChartData         `json:"chart_data"`
	Items      []MonthlyStatItem `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// NewMonthlyStatsHandler returns monthly published/completed counts.
// @Summary Monthly statistics
// @Description Requests published and services completed per month for an inclusive month range. Admin only.
// @Tags stats
// @Produce json
// @Param start_month query string true "First month, YYYY-MM"
// @Param end_month query string true "Last month, YYYY-MM"
// @Param city_id query int false "City id"
// @Param service_type_id query int false "Service type id"
// @Param page query int false "Page, from 1" default(1)
// @Param size query int false "Page size, 1-100" default(10)
// @Success 200 {object} handlers.MonthlyStatsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid month range"
// @Failure 403 {object} handlers.ErrorResponse "Admin role required"
// @Router /stats/monthly [get]
// @Security BearerAuth
func NewMonthlyStatsHandler(svc MonthlyStatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFrom(w, r)
		if !ok {
			return
		}
		page, size, err := queryPage(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		q := services.StatsQuery{
			StartMonth: r.URL.Query().Get("start_month"),
			EndMonth:   r.URL.Query().Get("end_month"),
			Page:       page,
			Size:       size,
		}
		if q.Filter.CityID, err = queryInt64Ptr(r, "city_id"); err != nil {
			writeError(w, r, err)
			return
		}
		if q.Filter.ServiceTypeID, err = queryInt64Ptr(r, "service_type_id"); err != nil {
			writeError(w, r, err)
			return
		}

		report, err := svc.Monthly(r.Context(), actor, q)
		if err != nil {
			writeError(w, r, err)
			return
		}

		items := make([]MonthlyStatItem, 0, len(report.Table.Items))
		for _, row := range report.Table.Items {
			items = append(items, MonthlyStatItem{
				Month:          row.Month,
				PublishedCount: row.PublishedCount,
				CompletedCount: row.CompletedCount,
			})
		}
		writeJSON(w, http.StatusOK, MonthlyStatsResponse{
			ChartData: ChartData{
				Months:    report.Chart.Months,
				Published: report.Chart.Published,
				Completed: report.Chart.Completed,
			},
			Items:      items,
			Total:      report.Table.Total,
			Page:       report.Table.Page,
			Size:       report.Table.Size,
			TotalPages: report.Table.TotalPages,
		})
	}
}
