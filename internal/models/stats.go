package models

// MonthCount is one grouped row of a monthly count query.
type MonthCount struct {
	Month string `db:"month"` // YYYY-MM
	Count int    `db:"count"`
}

// StatsFilter narrows statistics to one city and/or service type.
type StatsFilter struct {
	CityID        *int64
	ServiceTypeID *int64
}

// MonthlyStat is one row of the monthly report.
type MonthlyStat struct {
	Month          string `json:"month"`
	PublishedCount int    `json:"publishedCount"`
	CompletedCount int    `json:"completedCount"`
}

// MonthlyChart holds the report as parallel series.
type MonthlyChart struct {
	Months    []string `json:"months"`
	Published []int    `json:"published"`
	Completed []int    `json:"completed"`
}

// MonthlyReport is the output of the aggregation engine.
type MonthlyReport struct {
	Chart MonthlyChart      `json:"chart_data"`
	Table Page[MonthlyStat] `json:"table"`
}
