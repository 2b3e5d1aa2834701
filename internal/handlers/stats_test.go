package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/goodservices/internal/models"
	"github.com/sbilibin2017/goodservices/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockMonthlyStatsGetter(ctrl)
	handler := NewMonthlyStatsHandler(svc)
	admin := models.Actor{UserID: 100, Username: "root", Role: models.RoleAdmin}

	t.Run("report", func(t *testing.T) {
		city := int64(3)
		svc.EXPECT().Monthly(gomock.Any(), admin, services.StatsQuery{
			StartMonth: "2025-01",
			EndMonth:   "2025-02",
			Filter:     models.StatsFilter{CityID: &city},
			Page:       1,
			Size:       10,
		}).Return(&models.MonthlyReport{
			Chart: models.MonthlyChart{
				Months:    []string{"2025-01", "2025-02"},
				Published: []int{4, 0},
				Completed: []int{1, 2},
			},
			Table: models.NewPage([]models.MonthlyStat{
				{Month: "2025-01", PublishedCount: 4, CompletedCount: 1},
				{Month: "2025-02", PublishedCount: 0, CompletedCount: 2},
			}, 2, 1, 10),
		}, nil)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodGet, "/stats/monthly?start_month=2025-01&end_month=2025-02&city_id=3", nil, &admin, ""))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp MonthlyStatsResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, []string{"2025-01", "2025-02"}, resp.ChartData.Months)
		assert.Equal(t, []int{4, 0}, resp.ChartData.Published)
		assert.Equal(t, []int{1, 2}, resp.ChartData.Completed)
		require.Len(t, resp.Items, 2)
		assert.Equal(t, 2, resp.Items[1].CompletedCount)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, 1, resp.TotalPages)
	})

	t.Run("non admin", func(t *testing.T) {
		svc.EXPECT().Monthly(gomock.Any(), alice, gomock.Any()).Return(nil, services.ErrAdminOnly)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodGet, "/stats/monthly?start_month=2025-01&end_month=2025-02", nil, &alice, ""))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("bad service type", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, newRequest(http.MethodGet, "/stats/monthly?start_month=2025-01&end_month=2025-02&service_type_id=x", nil, &admin, ""))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
