package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/goodservices/internal/models"
)

//go:generate mockgen -source=data.go -destination=mock_data.go -package=handlers

// ReferenceLister lists the reference data.
type ReferenceLister interface {
	ListCities(ctx context.Context) ([]models.City, error)
	ListServiceTypes(ctx context.Context) ([]models.ServiceType, error)
}

// CityResponse represents a city
// swagger:model CityResponse
type CityResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ProvinceID   int64  `json:"province_id"`
	ProvinceName string `json:"province_name"`
}

// ServiceTypeResponse represents a service category
// swagger:model ServiceTypeResponse
type ServiceTypeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewListCitiesHandler lists cities.
// @Summary List cities
// @Tags data
// @Produce json
// @Success 200 {array} handlers.CityResponse
// @Router /data/cities [get]
func NewListCitiesHandler(svc ReferenceLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cities, err := svc.ListCities(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		out := make([]CityResponse, 0, len(cities))
		for _, c := range cities {
			out = append(out, CityResponse{ID: c.CityID, Name: c.Name, ProvinceID: c.ProvinceID, ProvinceName: c.ProvinceName})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// NewListServiceTypesHandler lists service categories.
// @Summary List service types
// @Tags data
// @Produce json
// @Success 200 {array} handlers.ServiceTypeResponse
// @Router /data/service-types [get]
func NewListServiceTypesHandler(svc ReferenceLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types, err := svc.ListServiceTypes(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		out := make([]ServiceTypeResponse, 0, len(types))
		for _, st := range types {
			out = append(out, ServiceTypeResponse{ID: st.ServiceTypeID, Name: st.Name, Description: st.Description})
		}
		writeJSON(w, http.StatusOK, out)
	}
}
