package models

// City is a city a request can be published in.
type City struct {
	CityID       int64  `json:"id" db:"city_id"`
	Name         string `json:"name" db:"name"`
	ProvinceID   int64  `json:"province_id" db:"province_id"`
	ProvinceName string `json:"province_name" db:"province_name"`
}

// ServiceType is a service category.
type ServiceType struct {
	ServiceTypeID int64  `json:"id" db:"service_type_id"`
	Name          string `json:"name" db:"name"`
	Description   string `json:"description" db:"description"`
}
